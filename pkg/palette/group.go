package palette

// Group is a labelled run of commands for display. Search results use a
// single group with an empty label.
type Group struct {
	Label    string
	Commands []Command
}

// GroupCommands arranges cmds for display. With an active query the ranked
// order is kept in one unlabelled group, which may be empty. Without one,
// commands are partitioned by category label in first-seen order.
func GroupCommands(cmds []Command, hasActiveQuery bool) []Group {
	if hasActiveQuery {
		return []Group{{Commands: cmds}}
	}

	var groups []Group
	index := make(map[string]int)
	for _, c := range cmds {
		label := CategoryLabel(c.Category)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, Group{Label: label})
		}
		groups[i].Commands = append(groups[i].Commands, c)
	}
	return groups
}

// Flatten concatenates the commands of groups in display order.
func Flatten(groups []Group) []Command {
	n := 0
	for _, g := range groups {
		n += len(g.Commands)
	}
	out := make([]Command, 0, n)
	for _, g := range groups {
		out = append(out, g.Commands...)
	}
	return out
}

// ResolveRecent maps recency ids back to commands, skipping ids that are no
// longer in the registry.
func ResolveRecent(ids []string, cmds []Command) []Command {
	if len(ids) == 0 {
		return nil
	}
	byID := make(map[string]Command, len(cmds))
	for _, c := range cmds {
		if _, dup := byID[c.ID]; !dup {
			byID[c.ID] = c
		}
	}
	out := make([]Command, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			out = append(out, c)
		}
	}
	return out
}
