package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/folio/internal/theme"
)

// Styles are derived from the current theme on every render so theme and
// accent commands take effect immediately.
type Styles struct {
	NoColor bool

	Border      lipgloss.Style
	Title       lipgloss.Style
	Subtle      lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Body        lipgloss.Style
	GroupLabel  lipgloss.Style
	Item        lipgloss.Style
	Selected    lipgloss.Style
	Highlight   lipgloss.Style
	Description lipgloss.Style
	Shortcut    lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Footer      lipgloss.Style
}

// NewStyles maps theme colors onto styles. With noColor every style renders
// text unchanged.
func NewStyles(c theme.Colors, noColor bool) Styles {
	plain := lipgloss.NewStyle()
	if noColor {
		return Styles{
			NoColor: true, Border: plain, Title: plain, Subtle: plain, Tab: plain,
			ActiveTab: plain, Body: plain, GroupLabel: plain, Item: plain,
			Selected: plain, Highlight: plain, Description: plain, Shortcut: plain,
			Status: plain, StatusError: plain, Footer: plain,
		}
	}
	return Styles{
		Border:      plain.Foreground(c.BorderLight),
		Title:       plain.Foreground(c.Accent).Bold(true),
		Subtle:      plain.Foreground(c.TextSecondary),
		Tab:         plain.Foreground(c.TextSecondary),
		ActiveTab:   plain.Foreground(c.Accent).Bold(true).Underline(true),
		Body:        plain.Foreground(c.Text),
		GroupLabel:  plain.Foreground(c.TextSecondary).Bold(true),
		Item:        plain.Foreground(c.Text),
		Selected:    plain.Foreground(c.Text).Background(c.BgTertiary).Bold(true),
		Highlight:   plain.Foreground(c.AccentAlt).Bold(true),
		Description: plain.Foreground(c.TextSecondary),
		Shortcut:    plain.Foreground(c.Accent),
		Status:      plain.Foreground(c.AccentAlt),
		StatusError: plain.Foreground(lipgloss.Color("#ef4444")),
		Footer:      plain.Foreground(c.TextSecondary),
	}
}

func (m *Model) styles() Styles {
	if m.Themes == nil {
		return NewStyles(theme.Colors{}, true)
	}
	return NewStyles(m.Themes.Colors(), m.NoColor)
}
