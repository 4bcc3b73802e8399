package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/folio/internal/config"
	"github.com/oakwood-commons/folio/pkg/settings"
)

func newConfigCmd() *cobra.Command {
	var output string
	c := &cobra.Command{
		Use:   "config",
		Short: "Print the merged configuration",
		Long: "Prints defaults merged with the config file, .env, FOLIO_* environment\n" +
			"variables and flags. The config file used, if any, is reported on stderr.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkOutput(output, outputYAML, outputJSON, outputTOML); err != nil {
				return err
			}
			run := settings.FromContextOrDefault(cmd.Context())
			opts := config.LoadOptions{ConfigFile: run.ConfigFile, Overrides: run.Overrides()}
			cfg, err := config.Load(opts)
			if err != nil {
				return err
			}
			if used := config.UsedConfigFile(opts); used != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "# config file: %s\n", used)
			}
			return writeStructured(cmd.OutOrStdout(), output, cfg)
		},
	}
	c.Flags().StringVarP(&output, "output", "o", outputYAML, "output format: yaml|json|toml")
	return c
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List themes and accent colors; the current ones are starred",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			rows := make([][]string, 0)
			for _, name := range a.themes.ThemeNames() {
				rows = append(rows, []string{marker(name == a.themes.Theme()), name, a.cfg.Themes[name].Name})
			}
			fmt.Fprintf(out, "Themes (current: %s):\n", a.themes.Theme())
			fmt.Fprint(out, indentLines(renderTable([]string{"", "NAME", "TITLE"}, rows)))

			rows = rows[:0]
			for _, name := range a.themes.AccentNames() {
				rows = append(rows, []string{marker(name == a.themes.Accent()), name, a.cfg.Accents[name].Primary})
			}
			fmt.Fprintf(out, "\nAccents (current: %s):\n", a.themes.Accent())
			fmt.Fprint(out, indentLines(renderTable([]string{"", "NAME", "COLOR"}, rows)))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print folio version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
			return nil
		},
	}
}

func versionString() string {
	v := settings.VersionInformation
	return fmt.Sprintf("%s %s (commit %s, built %s, %s)", settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime, runtime.Version())
}

func marker(current bool) string {
	if current {
		return "*"
	}
	return " "
}

func indentLines(s string) string {
	lines := strings.SplitAfter(s, "\n")
	var b strings.Builder
	for _, l := range lines {
		if l == "" {
			continue
		}
		b.WriteString("  ")
		b.WriteString(l)
	}
	return b.String()
}
