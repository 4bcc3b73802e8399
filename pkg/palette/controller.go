package palette

import (
	"strings"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/folio/pkg/logger"
)

// State is a read-only snapshot of the palette session.
type State struct {
	Open     bool
	Query    string
	Selected int
}

// Controller owns the palette session: open/closed, the query, and the
// selected index into the ranked results. It is not safe for concurrent use;
// hosts drive it from a single event loop.
type Controller struct {
	commands []Command
	version  int
	fields   []Field
	recency  *Recency
	log      logr.Logger

	open           bool
	query          string
	selected       int
	focusRequested bool

	cache struct {
		valid   bool
		query   string
		version int
		results []Command
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithFields sets the match fields used for ranking.
func WithFields(fields ...Field) Option {
	return func(c *Controller) {
		if len(fields) > 0 {
			c.fields = append([]Field(nil), fields...)
		}
	}
}

// WithRecency sets the recency list updated on every execution.
func WithRecency(r *Recency) Option {
	return func(c *Controller) { c.recency = r }
}

// WithLogger sets the controller's logger.
func WithLogger(log logr.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// NewController returns a closed controller over cmds.
func NewController(cmds []Command, opts ...Option) *Controller {
	c := &Controller{
		commands: cmds,
		fields:   append([]Field(nil), DefaultFields...),
		log:      logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.recency == nil {
		c.recency = NewRecency(nil)
	}
	return c
}

// Open shows the palette with an empty query and the first result selected.
func (c *Controller) Open() {
	if c.open {
		c.focusRequested = true
		return
	}
	c.open = true
	c.query = ""
	c.selected = 0
	c.focusRequested = true
	c.log.V(1).Info("palette opened")
}

// Close hides the palette. Query and selection are left as they are; Open
// resets them.
func (c *Controller) Close() {
	if !c.open {
		return
	}
	c.open = false
	c.log.V(1).Info("palette closed")
}

// Toggle opens a closed palette and closes an open one.
func (c *Controller) Toggle() {
	if c.open {
		c.Close()
		return
	}
	c.Open()
}

// IsOpen reports whether the palette is shown.
func (c *Controller) IsOpen() bool { return c.open }

// Query returns the current query.
func (c *Controller) Query() string { return c.query }

// Selected returns the selected index into Results.
func (c *Controller) Selected() int { return c.selected }

// State returns a snapshot of the session.
func (c *Controller) State() State {
	return State{Open: c.open, Query: c.query, Selected: c.selected}
}

// TakeFocusRequest reports whether the host should focus its query input,
// clearing the request.
func (c *Controller) TakeFocusRequest() bool {
	req := c.focusRequested
	c.focusRequested = false
	return req
}

// Commands returns the registry the controller ranks.
func (c *Controller) Commands() []Command { return c.commands }

// Fields returns the match fields in use.
func (c *Controller) Fields() []Field { return append([]Field(nil), c.fields...) }

// Recency returns the recency list updated on execution.
func (c *Controller) Recency() *Recency { return c.recency }

// SetCommands replaces the registry, for example after the host's bindings
// changed, and clamps the selection to the new results.
func (c *Controller) SetCommands(cmds []Command) {
	c.commands = cmds
	c.version++
	c.clampSelection()
}

// SetQuery updates the query and selects the top result.
func (c *Controller) SetQuery(q string) {
	c.query = q
	c.selected = 0
}

// HasActiveQuery reports whether the query filters the registry.
func (c *Controller) HasActiveQuery() bool {
	return strings.TrimSpace(c.query) != ""
}

// Results returns the ranked commands for the current query; with no active
// query this is the registry in its original order.
func (c *Controller) Results() []Command {
	if c.cache.valid && c.cache.query == c.query && c.cache.version == c.version {
		return c.cache.results
	}
	results := Rank(c.commands, c.query, c.fields...)
	c.cache.valid = true
	c.cache.query = c.query
	c.cache.version = c.version
	c.cache.results = results
	return results
}

// Groups returns Results arranged for display.
func (c *Controller) Groups() []Group {
	return GroupCommands(c.Results(), c.HasActiveQuery())
}

// RecentCommands resolves the recency list against the registry.
func (c *Controller) RecentCommands() []Command {
	return ResolveRecent(c.recency.List(), c.commands)
}

// MoveSelection moves the selection by delta, wrapping at both ends.
// It does nothing when there are no results.
func (c *Controller) MoveSelection(delta int) {
	n := len(c.Results())
	if n == 0 {
		return
	}
	c.selected = ((c.selected+delta)%n + n) % n
}

// SelectedCommand returns the command under the selection, if any.
func (c *Controller) SelectedCommand() (Command, bool) {
	results := c.Results()
	if c.selected < 0 || c.selected >= len(results) {
		return Command{}, false
	}
	return results[c.selected], true
}

// ExecuteSelected runs the selected command and reports whether one ran.
func (c *Controller) ExecuteSelected() bool {
	cmd, ok := c.SelectedCommand()
	if !ok {
		return false
	}
	c.Execute(cmd)
	return true
}

// Execute records cmd as recently used and invokes its action. Closing the
// palette is left to the action.
func (c *Controller) Execute(cmd Command) {
	c.recency.Record(cmd.ID)
	c.log.V(1).Info("executing command", logger.CommandIDKey, cmd.ID)
	if cmd.Action != nil {
		cmd.Action()
	}
}

// HandleKey applies a navigation key while the palette is open and reports
// whether it was consumed. Keys are ignored while closed.
func (c *Controller) HandleKey(key string) bool {
	if !c.open {
		return false
	}
	switch key {
	case "down":
		c.MoveSelection(1)
	case "up":
		c.MoveSelection(-1)
	case "enter":
		c.ExecuteSelected()
	case "esc", "escape":
		c.Close()
	default:
		return false
	}
	return true
}

func (c *Controller) clampSelection() {
	n := len(c.Results())
	switch {
	case n == 0 || c.selected < 0:
		c.selected = 0
	case c.selected >= n:
		c.selected = n - 1
	}
}
