// Package ui is the interactive portfolio viewer: one section at a time, with
// the command palette drawn over it.
package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/folio/internal/portfolio"
	"github.com/oakwood-commons/folio/internal/theme"
	"github.com/oakwood-commons/folio/pkg/palette"
)

// DefaultToggleKey opens and closes the palette when no key is configured.
const DefaultToggleKey = "ctrl+k"

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configure New.
type Options struct {
	Content  portfolio.Content
	Themes   *theme.Manager
	Services *portfolio.Services
	// Storage persists recent commands. Nil keeps them in memory.
	Storage   palette.Storage
	Fields    []palette.Field
	ToggleKey string
	NoColor   bool
	Width     int
	Height    int
	Logger    logr.Logger
}

// Model is the Bubble Tea model. It also serves as the portfolio.Host the
// palette commands act on, so it must be used through a pointer.
type Model struct {
	Content  portfolio.Content
	Themes   *theme.Manager
	Services *portfolio.Services
	Palette  *palette.Controller
	Input    textinput.Model

	ToggleKey string
	NoColor   bool
	Section   int
	Status    string
	StatusErr bool
	Width     int
	Height    int
	Quitting  bool

	log logr.Logger
}

var _ portfolio.Host = (*Model)(nil)

// New builds a model with the portfolio registry bound to itself.
func New(opts Options) *Model {
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	m := &Model{
		Content:   opts.Content,
		Themes:    opts.Themes,
		Services:  opts.Services,
		ToggleKey: strings.TrimSpace(opts.ToggleKey),
		NoColor:   opts.NoColor,
		Width:     opts.Width,
		Height:    opts.Height,
		log:       log,
	}
	if m.ToggleKey == "" {
		m.ToggleKey = DefaultToggleKey
	}
	if m.Width <= 0 {
		m.Width = defaultWidth
	}
	if m.Height <= 0 {
		m.Height = defaultHeight
	}
	if m.Services == nil {
		m.Services = portfolio.NewServices(opts.Content, "")
	}

	recency := palette.NewRecency(opts.Storage, palette.WithRecencyLogger(log.WithName("recency")))
	m.Palette = palette.NewController(
		portfolio.Registry(m),
		palette.WithFields(opts.Fields...),
		palette.WithRecency(recency),
		palette.WithLogger(log.WithName("palette")),
	)

	m.Input = textinput.New()
	m.Input.Prompt = "🔍 "
	m.Input.Placeholder = "Type a command or search..."
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}
	if m.Palette.IsOpen() {
		var cmd tea.Cmd
		m.Input, cmd = m.Input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "ctrl+c":
		m.Quitting = true
		return tea.Quit
	case m.ToggleKey:
		m.Palette.Toggle()
		return m.syncInput()
	}

	if m.Palette.IsOpen() {
		if m.Palette.HandleKey(key) {
			return m.syncInput()
		}
		var cmd tea.Cmd
		m.Input, cmd = m.Input.Update(msg)
		if v := m.Input.Value(); v != m.Palette.Query() {
			m.Palette.SetQuery(v)
		}
		return cmd
	}

	switch key {
	case "q":
		m.Quitting = true
		return tea.Quit
	case "tab", "right", "l", "j":
		m.moveSection(1)
	case "shift+tab", "left", "h", "k":
		m.moveSection(-1)
	case "home", "g":
		m.ScrollTop()
	case "t":
		m.setStatus("Theme: "+m.cycleTheme(), false)
	case "/", ":":
		m.Palette.Open()
		return m.syncInput()
	case "ctrl+d":
		m.runShortcut("action-resume")
	}
	return nil
}

// syncInput mirrors the controller's open state onto the text input.
func (m *Model) syncInput() tea.Cmd {
	if !m.Palette.IsOpen() {
		m.Input.Blur()
		return nil
	}
	if m.Palette.TakeFocusRequest() {
		m.Input.SetValue(m.Palette.Query())
		return m.Input.Focus()
	}
	return nil
}

func (m *Model) runShortcut(id string) {
	for _, c := range m.Palette.Commands() {
		if c.ID == id {
			m.Palette.Execute(c)
			return
		}
	}
}

func (m *Model) moveSection(delta int) {
	n := len(m.Content.Sections)
	if n == 0 {
		return
	}
	m.Section = ((m.Section+delta)%n + n) % n
}

func (m *Model) cycleTheme() string {
	if m.Themes == nil {
		return ""
	}
	m.Themes.Cycle()
	return m.Themes.Title()
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.Status = msg
	m.StatusErr = isErr
	if isErr {
		m.log.Info("action failed", "status", msg)
	}
}

// CurrentSection returns the visible section, if any.
func (m *Model) CurrentSection() (portfolio.Section, bool) {
	if m.Section < 0 || m.Section >= len(m.Content.Sections) {
		return portfolio.Section{}, false
	}
	return m.Content.Sections[m.Section], true
}

// ScrollTo shows the section with id.
func (m *Model) ScrollTo(section string) bool {
	i, err := m.Content.SectionIndex(section)
	if err != nil {
		m.setStatus(err.Error(), true)
		return false
	}
	m.Section = i
	return true
}

// ScrollTop shows the first section.
func (m *Model) ScrollTop() {
	m.Section = 0
}

func (m *Model) ChangeTheme(name string) {
	if m.Themes == nil {
		return
	}
	if err := m.Themes.SetTheme(name); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("Theme: "+m.Themes.Title(), false)
}

func (m *Model) ChangeAccent(name string) {
	if m.Themes == nil {
		return
	}
	if err := m.Themes.SetAccent(name); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("Accent: "+name, false)
}

func (m *Model) DownloadResume() {
	path, err := m.Services.DownloadResume()
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("Resume saved to "+path, false)
}

func (m *Model) CopyEmail() {
	email, err := m.Services.CopyEmail()
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus(fmt.Sprintf("Copied %s to clipboard", email), false)
}

func (m *Model) OpenSocial(platform string) {
	url, err := m.Services.OpenSocial(platform)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("Opened "+url, false)
}

// Close hides the palette.
func (m *Model) Close() {
	m.Palette.Close()
	m.Input.Blur()
}
