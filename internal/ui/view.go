package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

const paletteTitle = "Command Palette"

func (m *Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true
	return v
}

// Render draws the full screen: header, section tabs, the section body or
// the palette, a status line and key hints.
func (m *Model) Render() string {
	if m.Quitting {
		return ""
	}
	st := m.styles()
	w := max(m.Width, 20)
	bodyHeight := max(m.Height-4, 3)

	lines := []string{
		m.renderHeader(st, w),
		fitWidth(m.renderTabs(st), w),
	}

	if m.Palette.IsOpen() {
		content := renderPalette(m.Palette, m.inputLine(st), st, w-2, bodyHeight-2)
		lines = append(lines, panel(st.Title.Render(paletteTitle), content, w, bodyHeight, st.Border))
	} else {
		title := ""
		body := ""
		if s, ok := m.CurrentSection(); ok {
			title = st.Title.Render(s.Title)
			body = st.Body.Render(wrapText(strings.TrimRight(s.Body, "\n"), w-4))
		}
		lines = append(lines, panel(title, indent(body, 1), w, bodyHeight, st.Border))
	}

	status := ""
	if m.Status != "" {
		if m.StatusErr {
			status = st.StatusError.Render("✗ " + m.Status)
		} else {
			status = st.Status.Render("✓ " + m.Status)
		}
	}
	lines = append(lines, fitWidth(status, w), fitWidth(st.Footer.Render(m.hints()), w))
	return strings.Join(lines, "\n")
}

func (m *Model) renderHeader(st Styles, w int) string {
	left := st.Title.Render(m.Content.Owner)
	if m.Content.Role != "" {
		left += st.Subtle.Render(" · " + m.Content.Role)
	}
	right := ""
	if m.Themes != nil {
		right = st.Subtle.Render(m.Themes.Title() + " · " + m.Themes.Accent())
	}
	return joinEnds(left, right, w)
}

func (m *Model) renderTabs(st Styles) string {
	tabs := make([]string, 0, len(m.Content.Sections))
	for i, s := range m.Content.Sections {
		if i == m.Section {
			tabs = append(tabs, st.ActiveTab.Render("["+s.Title+"]"))
			continue
		}
		tabs = append(tabs, st.Tab.Render(" "+s.Title+" "))
	}
	return strings.Join(tabs, " ")
}

func (m *Model) hints() string {
	if m.Palette.IsOpen() {
		return "↑↓ navigate  ↵ select  esc close"
	}
	return m.ToggleKey + " commands  ←→ sections  t theme  q quit"
}

// inputLine shows the query. Plain output skips the text input's virtual
// cursor so snapshots stay stable.
func (m *Model) inputLine(st Styles) string {
	if !st.NoColor {
		return m.Input.View()
	}
	if q := m.Palette.Query(); q != "" {
		return m.Input.Prompt + q
	}
	return m.Input.Prompt + m.Input.Placeholder
}

// wrapText wraps s on word boundaries, breaking long words at width.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Wrap(s, width, "")
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
