package cmd

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"

	"github.com/oakwood-commons/folio/internal/portfolio"
	"github.com/oakwood-commons/folio/pkg/logger"
	"github.com/oakwood-commons/folio/pkg/palette"
)

// ErrUnknownCommand is returned by run for ids not in the registry.
var ErrUnknownCommand = errors.New("unknown command")

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <id>",
		Short: "Run a palette command by id and record it as recently used",
		Example: "  folio run theme-aurora\n" +
			"  folio run action-resume",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			host := &cliHost{app: a, out: cmd.OutOrStdout()}
			cmds := portfolio.Registry(host)
			target, err := findCommand(cmds, args[0])
			if err != nil {
				return err
			}

			ctl := palette.NewController(cmds,
				palette.WithFields(a.fields...),
				palette.WithRecency(a.recency()),
				palette.WithLogger(logger.Component(&a.log, "palette")),
			)
			ctl.Execute(target)
			if host.err != nil {
				return fmt.Errorf("%s: %w", target.ID, host.err)
			}
			return nil
		},
	}
}

// findCommand looks id up, suggesting the closest id on a miss.
func findCommand(cmds []palette.Command, id string) (palette.Command, error) {
	for _, c := range cmds {
		if c.ID == id {
			return c, nil
		}
	}
	if s := suggestID(cmds, id); s != "" {
		return palette.Command{}, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownCommand, id, s)
	}
	return palette.Command{}, fmt.Errorf("%w %q (see 'folio commands')", ErrUnknownCommand, id)
}

// suggestID returns the id nearest to id by edit distance, or "" when
// nothing is close enough to be a typo.
func suggestID(cmds []palette.Command, id string) string {
	best := ""
	bestDist := max(2, len(id)/3) + 1
	for _, c := range cmds {
		if d := levenshtein.ComputeDistance(id, c.ID); d < bestDist {
			best, bestDist = c.ID, d
		}
	}
	return best
}
