package ui

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"
)

// Run starts the interactive viewer. Width and height of 0 are detected
// from the terminal. Keys are replayed before the first frame.
func Run(opts Options, keys []string, progOpts ...tea.ProgramOption) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			if opts.Width <= 0 {
				opts.Width = w
			}
			if opts.Height <= 0 {
				opts.Height = h
			}
		}
	}
	m := New(opts)
	progOpts = append(progOpts, tea.WithWindowSize(m.Width, m.Height))
	ApplyStartupKeys(m, keys)
	if m.Quitting {
		return nil
	}

	_, err := tea.NewProgram(m, progOpts...).Run()
	return err
}
