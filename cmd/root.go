// Package cmd is the folio command line: the interactive portfolio viewer
// and headless access to its command palette.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/oakwood-commons/folio/internal/ui"
	"github.com/oakwood-commons/folio/pkg/logger"
	"github.com/oakwood-commons/folio/pkg/settings"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// rootOptions are the flags shared by every subcommand plus the viewer's own.
type rootOptions struct {
	run settings.Run

	debug     bool
	snapshot  bool
	press     []string
	width     int
	height    int
	logHandle *os.File
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{run: *settings.NewCliParams()}

	root := &cobra.Command{
		Use:   settings.CliBinaryName,
		Short: "Terminal portfolio with a fuzzy command palette",
		Long: "folio shows a portfolio one section at a time. Press ctrl+k to open the\n" +
			"command palette: type to fuzzy-search navigation, themes, accents,\n" +
			"actions and social links, then press enter to run one.",
		Example: "  folio\n" +
			"  folio --theme aurora --accent pink\n" +
			"  folio --snapshot --press '<C-k>th' --no-color\n" +
			"  folio commands theme --scores\n" +
			"  folio run nav-about",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			logger.Sync()
			if opts.logHandle != nil {
				_ = opts.logHandle.Close()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.runViewer(cmd)
		},
	}

	root.SetGlobalNormalizationFunc(normalizeFlagName)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.run.ConfigFile, "config-file", "", "path to a config file (yaml, toml or json)")
	pf.StringVar(&opts.run.StoreBackend, "store", "", "state backend: file|sqlite|memory (default from config)")
	pf.StringVar(&opts.run.StorePath, "store-path", "", "state file or database path (default under $XDG_STATE_HOME/folio)")
	pf.StringVar(&opts.run.LogFile, "log-file", "", "write logs to this file instead of stderr")
	pf.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	pf.BoolVar(&opts.run.NoColor, "no-color", false, "disable color output")
	pf.StringVar(&opts.run.Theme, "theme", "", "theme name (see 'folio themes')")
	pf.StringVar(&opts.run.Accent, "accent", "", "accent color name (see 'folio themes')")

	f := root.Flags()
	f.BoolVar(&opts.snapshot, "snapshot", false, "render a single frame and exit; honors --width/--height")
	f.StringArrayVar(&opts.press, "press", nil, "simulate keys on startup, e.g. --press '<C-k>theme<CR>'. Use <Key> for special keys (<C-k>, <CR>, <Esc>, <Up>, <Down>, <Tab>)")
	f.IntVar(&opts.width, "width", 0, "screen width in columns (default: terminal width)")
	f.IntVar(&opts.height, "height", 0, "screen height in rows (default: terminal height)")

	root.AddCommand(
		newCommandsCmd(),
		newRunCmd(),
		newRecentCmd(),
		newConfigCmd(),
		newThemesCmd(),
		newVersionCmd(),
	)
	return root
}

// setup initializes logging and stores the run settings in the command
// context for subcommands.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	if o.debug {
		o.run.MinLogLevel = logger.DebugLevel
	}
	var out io.Writer
	if o.run.LogFile != "" {
		f, err := os.OpenFile(o.run.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		o.logHandle = f
		out = f
	}
	lgr := logger.GetWithOutput(o.run.MinLogLevel, out)
	lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithLogger(ctx, lgr)
	ctx = settings.IntoContext(ctx, &o.run)
	cmd.SetContext(ctx)
	return nil
}

func (o *rootOptions) runViewer(cmd *cobra.Command) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	uiOpts := ui.Options{
		Content:   a.content,
		Themes:    a.themes,
		Services:  a.services,
		Storage:   a.store,
		Fields:    a.fields,
		ToggleKey: a.cfg.Palette.ToggleKey,
		NoColor:   o.run.NoColor || a.cfg.UI.NoColor,
		Width:     o.width,
		Height:    o.height,
		Logger:    logger.Component(&a.log, "ui"),
	}

	if o.snapshot {
		uiOpts.Width, uiOpts.Height = resolveSize(o.width, o.height)
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSnapshot(uiOpts, o.press))
		return nil
	}
	return ui.Run(uiOpts, o.press)
}

// normalizeFlagName accepts underscores for dashes, so --no_color works like
// the matching config key.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// resolveSize fills unset dimensions from the terminal, then the defaults.
func resolveSize(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		if w, h := detectTerminalSize(); w > 0 && h > 0 {
			if width <= 0 {
				width = w
			}
			if height <= 0 {
				height = h
			}
		}
	}
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

func detectTerminalSize() (int, int) {
	for _, fd := range []uintptr{os.Stdout.Fd(), os.Stderr.Fd(), os.Stdin.Fd()} {
		if w, h, err := term.GetSize(int(fd)); err == nil && w > 0 && h > 0 {
			return w, h
		}
	}
	return 0, 0
}
