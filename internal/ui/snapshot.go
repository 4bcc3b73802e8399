package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// RenderSnapshot builds a model, replays keys and returns one rendered
// frame. With NoColor the frame is plain text padded to the full height.
func RenderSnapshot(opts Options, keys []string) string {
	m := New(opts)
	ApplyStartupKeys(m, keys)
	m.Quitting = false
	view := m.Render()
	if opts.NoColor {
		view = ansi.Strip(view)
	}
	return padSnapshotHeight(view, m.Height, m.Width)
}

func padSnapshotHeight(view string, height, width int) string {
	if height <= 0 {
		return view
	}
	lines := strings.Split(strings.TrimRight(view, "\n"), "\n")
	if len(lines) >= height {
		return strings.Join(lines, "\n")
	}
	padLine := " "
	if width > 1 {
		padLine = strings.Repeat(" ", width)
	}
	for len(lines) < height {
		lines = append(lines, padLine)
	}
	return strings.Join(lines, "\n")
}
