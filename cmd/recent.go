package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/folio/internal/portfolio"
	"github.com/oakwood-commons/folio/pkg/palette"
)

func newRecentCmd() *cobra.Command {
	var output string
	c := &cobra.Command{
		Use:   "recent",
		Short: "Show recently run palette commands, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkOutput(output, outputTable, outputJSON, outputYAML); err != nil {
				return err
			}
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			ids := a.recency().List()
			if output != outputTable {
				return writeStructured(out, output, ids)
			}
			if len(ids) == 0 {
				fmt.Fprintln(out, "No recent commands")
				return nil
			}

			cmds := portfolio.Registry(&cliHost{app: a, out: out})
			labels := make(map[string]string, len(cmds))
			for _, c := range palette.ResolveRecent(ids, cmds) {
				labels[c.ID] = c.Label
			}
			rows := make([][]string, 0, len(ids))
			for _, id := range ids {
				rows = append(rows, []string{id, labels[id]})
			}
			fmt.Fprint(out, renderTable([]string{"ID", "LABEL"}, rows))
			return nil
		},
	}
	c.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table|json|yaml")

	c.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget recently run commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			a.recency().Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "Recent commands cleared")
			return nil
		},
	})
	return c
}
