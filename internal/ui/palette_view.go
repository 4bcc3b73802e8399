package ui

import (
	"strings"

	"github.com/oakwood-commons/folio/pkg/fuzzy"
	"github.com/oakwood-commons/folio/pkg/palette"
)

const (
	selectedMarker = "▸ "
	recentLabel    = "Recent"
	emptyTitle     = "No commands found"
	emptyHint      = `Try searching for "theme", "navigate", or "contact"`
)

// paletteRow is one rendered line of the list. The window follows the row
// marked selected.
type paletteRow struct {
	text     string
	selected bool
}

// renderPalette draws the input line, the grouped results and a divider
// into width x height cells.
func renderPalette(c *palette.Controller, input string, st Styles, width, height int) string {
	divider := st.Border.Render(strings.Repeat("─", max(width, 0)))
	lines := []string{" " + input, divider}
	listHeight := max(height-len(lines), 1)

	rows := paletteRows(c, st, width)
	lines = append(lines, windowRows(rows, listHeight)...)
	return strings.Join(lines, "\n")
}

func paletteRows(c *palette.Controller, st Styles, width int) []paletteRow {
	results := c.Results()
	if c.HasActiveQuery() && len(results) == 0 {
		return []paletteRow{
			{},
			{text: centered(st.Body.Render(emptyTitle), len(emptyTitle), width)},
			{text: centered(st.Subtle.Render(emptyHint), len(emptyHint), width)},
		}
	}

	var rows []paletteRow
	if !c.HasActiveQuery() {
		if recent := c.RecentCommands(); len(recent) > 0 {
			rows = append(rows, paletteRow{text: " " + st.GroupLabel.Render(recentLabel)})
			for _, cmd := range recent {
				rows = append(rows, paletteRow{text: renderRecent(cmd, st, width)})
			}
		}
	}

	selectedID := ""
	if cmd, ok := c.SelectedCommand(); ok {
		selectedID = cmd.ID
	}
	for _, g := range c.Groups() {
		if g.Label != "" {
			rows = append(rows, paletteRow{text: " " + st.GroupLabel.Render(g.Label)})
		}
		for _, cmd := range g.Commands {
			sel := cmd.ID == selectedID
			rows = append(rows, paletteRow{
				text:     renderItem(cmd, c.Query(), sel, st, width),
				selected: sel,
			})
		}
	}
	return rows
}

// windowRows returns at most n rows, scrolled so the selected row is visible.
func windowRows(rows []paletteRow, n int) []string {
	start := 0
	if len(rows) > n {
		for i, r := range rows {
			if r.selected && i >= n {
				start = i - n + 1
				break
			}
		}
	}
	end := min(start+n, len(rows))
	out := make([]string, 0, end-start)
	for _, r := range rows[start:end] {
		out = append(out, r.text)
	}
	return out
}

func renderItem(cmd palette.Command, query string, selected bool, st Styles, width int) string {
	base := st.Item
	marker := "  "
	if selected {
		base = st.Selected
		marker = selectedMarker
	}

	var label strings.Builder
	for _, seg := range fuzzy.Highlight(cmd.Label, strings.TrimSpace(query)) {
		if seg.Highlight {
			label.WriteString(st.Highlight.Render(seg.Text))
			continue
		}
		label.WriteString(base.Render(seg.Text))
	}

	left := " " + st.Shortcut.Render(marker) + iconOf(cmd) + " " + label.String()
	if cmd.Description != "" {
		left += "  " + st.Description.Render(cmd.Description)
	}
	right := ""
	if cmd.Shortcut != "" {
		right = st.Shortcut.Render(cmd.Shortcut) + " "
	}
	return joinEnds(left, right, width)
}

func renderRecent(cmd palette.Command, st Styles, width int) string {
	return fitWidth("   "+iconOf(cmd)+" "+st.Subtle.Render(cmd.Label), width)
}

func iconOf(cmd palette.Command) string {
	if cmd.Icon == "" {
		return "•"
	}
	return cmd.Icon
}

func centered(s string, w, width int) string {
	pad := max((width-w)/2, 0)
	return strings.Repeat(" ", pad) + s
}
