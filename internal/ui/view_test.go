package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/folio/internal/theme"
)

func lineContaining(t *testing.T, view, needle string) string {
	t.Helper()
	for _, l := range strings.Split(view, "\n") {
		if strings.Contains(l, needle) {
			return l
		}
	}
	require.Failf(t, "line not found", "%q not in view:\n%s", needle, view)
	return ""
}

func TestRenderSnapshotClosed(t *testing.T) {
	f := newFixture(t)
	view := RenderSnapshot(f.opts, nil)

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 24)
	for i, l := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(l), 80, "line %d too wide: %q", i, l)
	}
	assert.Contains(t, lines[0], "Alex Morgan · Full Stack Developer")
	assert.Contains(t, lines[0], "Neo Dark · blue")
	assert.Contains(t, lines[1], "[Home]")
	assert.Contains(t, view, "╭─ Home ")
	assert.Contains(t, view, "Hi, I'm Alex Morgan.")
	assert.Contains(t, lines[23], "ctrl+k commands")
	assert.NotContains(t, view, "\x1b[", "no-color output is plain")
}

func TestRenderSnapshotPaletteGroups(t *testing.T) {
	f := newFixture(t)
	view := RenderSnapshot(f.opts, []string{"<C-k>"})

	assert.Contains(t, view, paletteTitle)
	assert.Contains(t, view, "🔍 Type a command or search...")
	assert.Contains(t, view, "Navigation")
	assert.Contains(t, view, "Themes & Colors")
	assert.NotContains(t, view, recentLabel, "no recent commands yet")
	assert.Contains(t, lineContaining(t, view, "Go to Home"), selectedMarker)
	assert.NotContains(t, lineContaining(t, view, "Go to About"), selectedMarker)
	assert.Contains(t, view, "↑↓ navigate  ↵ select  esc close")
}

func TestRenderSnapshotSelectionFollowsKeys(t *testing.T) {
	f := newFixture(t)
	view := RenderSnapshot(f.opts, []string{"<C-k><Down>"})
	assert.Contains(t, lineContaining(t, view, "Go to About"), selectedMarker)
	assert.NotContains(t, lineContaining(t, view, "Go to Home"), selectedMarker)
}

func TestRenderSnapshotWindowScrollsToSelection(t *testing.T) {
	f := newFixture(t)
	f.opts.Height = 12
	view := RenderSnapshot(f.opts, []string{"<C-k><Up>"})

	assert.Contains(t, lineContaining(t, view, "Open Twitter"), selectedMarker)
	assert.NotContains(t, view, "Go to Home")
	require.Len(t, strings.Split(view, "\n"), 12)
}

func TestRenderSnapshotSearch(t *testing.T) {
	f := newFixture(t)
	view := RenderSnapshot(f.opts, []string{"<C-k>resume"})

	assert.Contains(t, view, "🔍 resume")
	assert.NotContains(t, view, "Navigation", "search results are not grouped")
	row := lineContaining(t, view, "Download Resume")
	assert.Contains(t, row, selectedMarker)
	assert.Contains(t, row, "⌘D")
}

func TestRenderSnapshotNoResults(t *testing.T) {
	f := newFixture(t)
	view := RenderSnapshot(f.opts, []string{"<C-k>zzzz"})

	assert.Contains(t, view, emptyTitle)
	assert.Contains(t, view, emptyHint)
	assert.NotContains(t, view, selectedMarker)
}

func TestRenderSnapshotRecent(t *testing.T) {
	f := newFixture(t)
	view := RenderSnapshot(f.opts, []string{"<C-k>aurora<CR><Esc><C-k>"})

	lines := strings.Split(view, "\n")
	recent := -1
	nav := -1
	for i, l := range lines {
		if recent < 0 && strings.Contains(l, recentLabel) {
			recent = i
		}
		if nav < 0 && strings.Contains(l, "Navigation") {
			nav = i
		}
	}
	require.GreaterOrEqual(t, recent, 0, view)
	assert.Less(t, recent, nav)
	assert.Contains(t, lines[recent+1], "Theme: Aurora")
	assert.NotContains(t, lines[recent+1], selectedMarker, "recent entries are not selectable")
	assert.Contains(t, lines[0], "Aurora Dynamic")
}

func TestRenderSnapshotStatus(t *testing.T) {
	f := newFixture(t)
	view := RenderSnapshot(f.opts, []string{"t"})
	assert.Contains(t, view, "✓ Theme: Minimal Light Pro")
}

func TestRenderColor(t *testing.T) {
	f := newFixture(t)
	f.opts.NoColor = false
	m := New(f.opts)
	view := m.Render()
	assert.Contains(t, view, "\x1b[")
	assert.Contains(t, ansi.Strip(view), "Alex Morgan")

	v := m.View()
	assert.True(t, v.AltScreen)
}

func TestRenderQuitting(t *testing.T) {
	m := newFixture(t).model()
	m.Quitting = true
	assert.Empty(t, m.Render())
}

func TestPanel(t *testing.T) {
	out := panel("Title", "one\ntwo", 12, 4, NewStyles(theme.Colors{}, true).Border)
	assert.Equal(t, strings.Join([]string{
		"╭─ Title ──╮",
		"│one       │",
		"│two       │",
		"╰" + strings.Repeat("─", 10) + "╯",
	}, "\n"), out)
}

func TestFitWidth(t *testing.T) {
	assert.Equal(t, "abc  ", fitWidth("abc", 5))
	assert.Equal(t, "abcd…", fitWidth("abcdefgh", 5))
	assert.Equal(t, "", fitWidth("abc", 0))
}

func TestJoinEnds(t *testing.T) {
	assert.Equal(t, "ab    cd", joinEnds("ab", "cd", 8))
	assert.Equal(t, "abcdef  ", joinEnds("abcdef", "xyz", 8))
}
