package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/folio/internal/portfolio"
	"github.com/oakwood-commons/folio/pkg/palette"
)

// commandRow is the structured output form of one ranked command.
type commandRow struct {
	ID          string   `json:"id" yaml:"id"`
	Label       string   `json:"label" yaml:"label"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Category    string   `json:"category" yaml:"category"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Shortcut    string   `json:"shortcut,omitempty" yaml:"shortcut,omitempty"`
	Score       *int     `json:"score,omitempty" yaml:"score,omitempty"`
}

func newCommandsCmd() *cobra.Command {
	var (
		fields []string
		scores bool
		output string
	)
	c := &cobra.Command{
		Use:   "commands [query]",
		Short: "List palette commands, ranked against an optional query",
		Long: "Without a query, commands are listed by group in registry order.\n" +
			"With a query, matches are ranked best first exactly as the palette shows them.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(output, outputTable, outputJSON, outputYAML); err != nil {
				return err
			}
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			matchFields := a.fields
			if len(fields) > 0 {
				if matchFields, err = palette.ParseFields(fields); err != nil {
					return err
				}
			}
			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			cmds := portfolio.Registry(&cliHost{app: a, out: cmd.OutOrStdout()})
			matches := palette.RankMatches(cmds, query, matchFields...)
			a.log.V(1).Info("ranked commands", "query", query, "matches", len(matches))

			out := cmd.OutOrStdout()
			if output != outputTable {
				rows := make([]commandRow, 0, len(matches))
				for _, m := range matches {
					rows = append(rows, toCommandRow(m, scores))
				}
				return writeStructured(out, output, rows)
			}

			if len(matches) == 0 {
				fmt.Fprintln(out, "No commands found")
				return nil
			}
			if strings.TrimSpace(query) == "" {
				fmt.Fprint(out, renderGrouped(palette.GroupCommands(cmds, false)))
				return nil
			}
			fmt.Fprint(out, renderMatches(matches, scores))
			return nil
		},
	}
	c.Flags().StringSliceVar(&fields, "fields", nil, "fields to match: label,description,keywords (default from config)")
	c.Flags().BoolVar(&scores, "scores", false, "include match scores")
	c.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table|json|yaml")
	return c
}

func toCommandRow(m palette.Match, withScore bool) commandRow {
	row := commandRow{
		ID:          m.Command.ID,
		Label:       m.Command.Label,
		Description: m.Command.Description,
		Category:    string(m.Command.Category),
		Keywords:    m.Command.Keywords,
		Shortcut:    m.Command.Shortcut,
	}
	if withScore {
		score := m.Score
		row.Score = &score
	}
	return row
}

func renderMatches(matches []palette.Match, withScore bool) string {
	header := []string{"ID", "LABEL", "DESCRIPTION"}
	if withScore {
		header = append(header, "SCORE")
	}
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		row := []string{m.Command.ID, m.Command.Label, m.Command.Description}
		if withScore {
			row = append(row, strconv.Itoa(m.Score))
		}
		rows = append(rows, row)
	}
	return renderTable(header, rows)
}

// renderGrouped prints each group's label followed by its commands, with
// columns aligned across groups.
func renderGrouped(groups []palette.Group) string {
	var all [][]string
	for _, g := range groups {
		for _, c := range g.Commands {
			all = append(all, commandCells(c))
		}
	}
	widths := columnWidths(all)

	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(g.Label)
		b.WriteString("\n")
		for _, c := range g.Commands {
			b.WriteString("  ")
			b.WriteString(formatRow(commandCells(c), widths))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func commandCells(c palette.Command) []string {
	return []string{c.ID, c.Label, c.Description, c.Shortcut}
}
