package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// panel draws content inside a rounded border of exactly width x height
// cells, with title embedded in the top edge. Lines are clipped or padded
// by display width, so styled content keeps its escape sequences.
func panel(title, content string, width, height int, border lipgloss.Style) string {
	if width < 4 {
		width = 4
	}
	if height < 2 {
		height = 2
	}
	b := lipgloss.RoundedBorder()
	inner := width - 2
	paint := border.Render

	top := b.Top + " " + title + " "
	if title == "" {
		top = ""
	}
	top = ansi.Truncate(top, inner, "")
	top += strings.Repeat(b.Top, max(0, inner-ansi.StringWidth(top)))

	lines := strings.Split(content, "\n")
	rows := height - 2
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}

	var out strings.Builder
	out.WriteString(paint(b.TopLeft + top + b.TopRight))
	out.WriteString("\n")
	for _, line := range lines {
		out.WriteString(paint(b.Left))
		out.WriteString(fitWidth(line, inner))
		out.WriteString(paint(b.Right))
		out.WriteString("\n")
	}
	out.WriteString(paint(b.BottomLeft + strings.Repeat(b.Bottom, inner) + b.BottomRight))
	return out.String()
}

// fitWidth truncates or right-pads s to exactly w display cells.
func fitWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > w {
		s = ansi.Truncate(s, w, "…")
	}
	return s + strings.Repeat(" ", max(0, w-ansi.StringWidth(s)))
}

// joinEnds places left and right on one line of width w, right-aligned.
func joinEnds(left, right string, w int) string {
	gap := w - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return fitWidth(left, w)
	}
	return left + strings.Repeat(" ", gap) + right
}
