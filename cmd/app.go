package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/folio/internal/config"
	"github.com/oakwood-commons/folio/internal/portfolio"
	"github.com/oakwood-commons/folio/internal/store"
	"github.com/oakwood-commons/folio/internal/theme"
	"github.com/oakwood-commons/folio/pkg/logger"
	"github.com/oakwood-commons/folio/pkg/palette"
	"github.com/oakwood-commons/folio/pkg/settings"
)

// app is everything a subcommand needs after configuration is resolved.
type app struct {
	cfg      config.Config
	run      *settings.Run
	log      logr.Logger
	store    store.Store
	content  portfolio.Content
	themes   *theme.Manager
	fields   []palette.Field
	services *portfolio.Services
}

// openApp loads configuration and opens the state store. The caller must
// Close the returned app.
func openApp(ctx context.Context) (*app, error) {
	run := settings.FromContextOrDefault(ctx)
	lgr := *logger.FromContext(ctx)

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: run.ConfigFile,
		Overrides:  run.Overrides(),
	})
	if err != nil {
		return nil, err
	}
	fields, err := cfg.MatchFields()
	if err != nil {
		return nil, err
	}
	content, err := portfolio.LoadContent(cfg.Content.File)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(cfg.Storage.Backend, cfg.StoragePath())
	if err != nil {
		return nil, fmt.Errorf("open state store: %w", err)
	}
	lgr.V(1).Info("state store opened", "backend", cfg.Storage.Backend, "path", cfg.StoragePath())
	if f, ok := st.(*store.File); ok && f.LoadError() != nil {
		lgr.Error(f.LoadError(), "state file unreadable, starting empty", "path", f.Path())
	}

	themes := theme.NewManager(cfg,
		theme.WithStorage(st),
		theme.WithLogger(logger.Component(&lgr, "theme")),
	)
	// Flags win over the persisted selection and are persisted in turn.
	if run.Theme != "" {
		if err := themes.SetTheme(run.Theme); err != nil {
			_ = st.Close()
			return nil, err
		}
	}
	if run.Accent != "" {
		if err := themes.SetAccent(run.Accent); err != nil {
			_ = st.Close()
			return nil, err
		}
	}

	return &app{
		cfg:      cfg,
		run:      run,
		log:      lgr,
		store:    st,
		content:  content,
		themes:   themes,
		fields:   fields,
		services: portfolio.NewServices(content, cfg.DownloadsDir()),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

func (a *app) recency() *palette.Recency {
	return palette.NewRecency(a.store, palette.WithRecencyLogger(logger.Component(&a.log, "recency")))
}

// cliHost runs palette commands without a screen: every effect is reported
// as a line of output and the first failure is kept.
type cliHost struct {
	app *app
	out io.Writer
	err error
}

var _ portfolio.Host = (*cliHost)(nil)

func (h *cliHost) fail(err error) {
	if h.err == nil {
		h.err = err
	}
}

func (h *cliHost) ScrollTo(section string) bool {
	i, err := h.app.content.SectionIndex(section)
	if err != nil {
		h.fail(err)
		return false
	}
	s := h.app.content.Sections[i]
	fmt.Fprintf(h.out, "%s\n\n%s", s.Title, s.Body)
	return true
}

func (h *cliHost) ScrollTop() {
	h.ScrollTo(h.app.content.Sections[0].ID)
}

func (h *cliHost) ChangeTheme(name string) {
	if err := h.app.themes.SetTheme(name); err != nil {
		h.fail(err)
		return
	}
	fmt.Fprintf(h.out, "Theme set to %s\n", h.app.themes.Title())
}

func (h *cliHost) ChangeAccent(name string) {
	if err := h.app.themes.SetAccent(name); err != nil {
		h.fail(err)
		return
	}
	fmt.Fprintf(h.out, "Accent set to %s\n", name)
}

func (h *cliHost) DownloadResume() {
	path, err := h.app.services.DownloadResume()
	if err != nil {
		h.fail(err)
		return
	}
	fmt.Fprintf(h.out, "Resume saved to %s\n", path)
}

func (h *cliHost) CopyEmail() {
	email, err := h.app.services.CopyEmail()
	if err != nil {
		h.fail(err)
		return
	}
	fmt.Fprintf(h.out, "Copied %s to clipboard\n", email)
}

func (h *cliHost) OpenSocial(platform string) {
	url, err := h.app.services.OpenSocial(platform)
	if err != nil {
		h.fail(err)
		return
	}
	fmt.Fprintf(h.out, "Opened %s\n", url)
}

func (h *cliHost) Close() {}
