package palette

// Spec is a command descriptor without its action, as declared by a host
// before bindings are known.
type Spec struct {
	ID          string
	Label       string
	Description string
	Keywords    []string
	Category    Category
	Icon        string
	Shortcut    string
}

// BuildRegistry binds each spec to actions[spec.ID]. Specs without a bound
// action keep a nil Action; repeated ids after the first are dropped.
func BuildRegistry(specs []Spec, actions map[string]func()) []Command {
	out := make([]Command, 0, len(specs))
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		if seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		out = append(out, Command{
			ID:          s.ID,
			Label:       s.Label,
			Description: s.Description,
			Keywords:    append([]string(nil), s.Keywords...),
			Category:    s.Category,
			Icon:        s.Icon,
			Shortcut:    s.Shortcut,
			Action:      actions[s.ID],
		})
	}
	return out
}
