// Package theme tracks the active color theme and accent and persists the
// choice across runs.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/folio/internal/config"
	"github.com/oakwood-commons/folio/pkg/palette"
)

// Storage keys for the persisted selection.
const (
	ThemeKey  = "portfolio-theme"
	AccentKey = "portfolio-accent"
)

// Built-in fallbacks used when neither storage nor config names a known
// entry.
const (
	DefaultTheme  = "neo-dark"
	DefaultAccent = "blue"
)

// builtinOrder is the cycle order of the stock themes. Extra themes from
// config follow in name order.
var builtinOrder = []string{"neo-dark", "minimal-light", "aurora"}

var (
	ErrUnknownTheme  = errors.New("unknown theme")
	ErrUnknownAccent = errors.New("unknown accent")
)

// Colors are the resolved colors of the current theme and accent.
type Colors struct {
	Bg            color.Color
	BgSecondary   color.Color
	BgTertiary    color.Color
	Text          color.Color
	TextSecondary color.Color
	Border        color.Color
	BorderLight   color.Color
	Accent        color.Color
	AccentAlt     color.Color
}

// Manager owns the current theme and accent.
type Manager struct {
	themes  map[string]config.ThemeColors
	accents map[string]config.AccentColors
	order   []string
	storage palette.Storage
	log     logr.Logger

	theme  string
	accent string
}

// Option configures a Manager.
type Option func(*Manager)

// WithStorage persists the selection through s.
func WithStorage(s palette.Storage) Option {
	return func(m *Manager) { m.storage = s }
}

// WithLogger sets the logger used for persistence failures.
func WithLogger(log logr.Logger) Option {
	return func(m *Manager) { m.log = log }
}

// NewManager builds a Manager from the configured themes and accents. The
// persisted selection wins over cfg.UI; unknown names fall back.
func NewManager(cfg config.Config, opts ...Option) *Manager {
	m := &Manager{
		themes:  cfg.Themes,
		accents: cfg.Accents,
		log:     logr.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if len(m.themes) == 0 {
		m.themes = builtinThemes()
	}
	if len(m.accents) == 0 {
		m.accents = builtinAccents()
	}
	m.order = cycleOrder(m.themes)

	m.theme = m.pick(m.load(ThemeKey), cfg.UI.Theme, DefaultTheme, func(n string) bool { _, ok := m.themes[n]; return ok })
	m.accent = m.pick(m.load(AccentKey), cfg.UI.Accent, DefaultAccent, func(n string) bool { _, ok := m.accents[n]; return ok })
	if _, ok := m.themes[m.theme]; !ok {
		m.theme = m.order[0]
	}
	if _, ok := m.accents[m.accent]; !ok {
		m.accent = m.AccentNames()[0]
	}
	return m
}

func (m *Manager) pick(persisted, configured, fallback string, known func(string) bool) string {
	for _, name := range []string{persisted, configured} {
		if name != "" && known(name) {
			return name
		}
	}
	return fallback
}

func (m *Manager) load(key string) string {
	if m.storage == nil {
		return ""
	}
	v, ok, err := m.storage.Get(key)
	if err != nil {
		m.log.V(1).Info("theme preference unreadable", "key", key, "error", err.Error())
		return ""
	}
	if !ok {
		return ""
	}
	return strings.TrimSpace(string(v))
}

func (m *Manager) save(key, val string) {
	if m.storage == nil {
		return
	}
	if err := m.storage.Set(key, []byte(val)); err != nil {
		m.log.Error(err, "failed to persist theme preference", "key", key)
	}
}

// Theme returns the current theme name.
func (m *Manager) Theme() string { return m.theme }

// Accent returns the current accent name.
func (m *Manager) Accent() string { return m.accent }

// Title returns the display name of the current theme.
func (m *Manager) Title() string {
	if t := m.themes[m.theme].Name; t != "" {
		return t
	}
	return m.theme
}

// ThemeNames returns the theme names in cycle order.
func (m *Manager) ThemeNames() []string { return append([]string(nil), m.order...) }

// AccentNames returns the accent names, sorted.
func (m *Manager) AccentNames() []string {
	names := make([]string, 0, len(m.accents))
	for n := range m.accents {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// SetTheme switches and persists the theme.
func (m *Manager) SetTheme(name string) error {
	if _, ok := m.themes[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	m.theme = name
	m.save(ThemeKey, name)
	return nil
}

// SetAccent switches and persists the accent.
func (m *Manager) SetAccent(name string) error {
	if _, ok := m.accents[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAccent, name)
	}
	m.accent = name
	m.save(AccentKey, name)
	return nil
}

// Cycle switches to the next theme in cycle order and returns its name.
func (m *Manager) Cycle() string {
	next := m.order[0]
	for i, n := range m.order {
		if n == m.theme {
			next = m.order[(i+1)%len(m.order)]
			break
		}
	}
	_ = m.SetTheme(next)
	return next
}

// Colors resolves the current theme and accent to terminal colors.
func (m *Manager) Colors() Colors {
	t := m.themes[m.theme]
	a := m.accents[m.accent]
	return Colors{
		Bg:            hex(t.Bg),
		BgSecondary:   hex(t.BgSecondary),
		BgTertiary:    hex(t.BgTertiary),
		Text:          hex(t.Text),
		TextSecondary: hex(t.TextSecondary),
		Border:        hex(t.Border),
		BorderLight:   hex(t.BorderLight),
		Accent:        hex(a.Primary),
		AccentAlt:     hex(a.Secondary),
	}
}

// hex maps "" to no color so lipgloss leaves the attribute unset.
func hex(s string) color.Color {
	if s == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(s)
}

func cycleOrder(themes map[string]config.ThemeColors) []string {
	var order []string
	seen := map[string]bool{}
	for _, n := range builtinOrder {
		if _, ok := themes[n]; ok {
			order = append(order, n)
			seen[n] = true
		}
	}
	var extra []string
	for n := range themes {
		if !seen[n] {
			extra = append(extra, n)
		}
	}
	sort.Strings(extra)
	return append(order, extra...)
}

func builtinThemes() map[string]config.ThemeColors {
	return map[string]config.ThemeColors{
		"neo-dark": {
			Name: "Neo Dark", Bg: "#0a0a0f", BgSecondary: "#13131a", BgTertiary: "#1a1a24",
			Text: "#e4e4e7", TextSecondary: "#a1a1aa", Border: "#27272a", BorderLight: "#3f3f46",
		},
		"minimal-light": {
			Name: "Minimal Light Pro", Bg: "#ffffff", BgSecondary: "#f8f9fa", BgTertiary: "#f1f3f5",
			Text: "#1a1a1a", TextSecondary: "#6b7280", Border: "#e5e7eb", BorderLight: "#d1d5db",
		},
		"aurora": {
			Name: "Aurora Dynamic", Bg: "#0f0f1e", BgSecondary: "#1a1a2e", BgTertiary: "#16213e",
			Text: "#f0f0f0", TextSecondary: "#b4b4b4", Border: "#2d3561", BorderLight: "#4a5568",
		},
	}
}

func builtinAccents() map[string]config.AccentColors {
	return map[string]config.AccentColors{
		"blue":   {Primary: "#3b82f6", Secondary: "#60a5fa"},
		"purple": {Primary: "#a855f7", Secondary: "#c084fc"},
		"pink":   {Primary: "#ec4899", Secondary: "#f472b6"},
		"green":  {Primary: "#10b981", Secondary: "#34d399"},
		"orange": {Primary: "#f59e0b", Secondary: "#fbbf24"},
	}
}
