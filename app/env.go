package app

import (
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/stint/internal/config"
	"github.com/ayoisaiah/stint/internal/logger"
	"github.com/ayoisaiah/stint/internal/pathutil"
	"github.com/ayoisaiah/stint/internal/persist"
	"github.com/ayoisaiah/stint/internal/tracker"
	"github.com/ayoisaiah/stint/internal/ui"
	"github.com/ayoisaiah/stint/store"
)

// env holds what a command needs once the state has been loaded.
type env struct {
	cfg     *config.Config
	paths   *pathutil.Paths
	tracker *tracker.Tracker
	store   store.Store
	logFile io.Closer
	out     io.Writer
}

func (e *env) close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			slog.Error("closing the data store", slog.Any("error", err))
		}
	}

	if e.logFile != nil {
		_ = e.logFile.Close()
	}
}

// loadConfig resolves the paths and reads the configuration.
func loadConfig(ctx *cli.Context) (*config.Config, *pathutil.Paths, error) {
	paths, err := pathutil.Resolve()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.New(
		config.WithViperConfig(paths.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, nil, err
	}

	return cfg, paths, nil
}

// setup loads the configuration, opens the store and rehydrates the
// tracker. The caller must call close on the result.
func setup(ctx *cli.Context) (*env, error) {
	cfg, paths, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	e := &env{
		cfg:   cfg,
		paths: paths,
		out:   ctx.App.Writer,
	}

	e.logFile = logger.Install(logger.Options{
		Path:       paths.LogFilePath(),
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})

	ui.DarkTheme = cfg.Display.DarkTheme

	backend := store.Backend(cfg.Store.Backend)

	e.store, err = store.Open(ctx.Context, cfg.StoreOptions(paths.DBFilePath(backend)))
	if err != nil {
		e.close()
		return nil, err
	}

	adapter := persist.New(e.store)

	state, err := adapter.Load(ctx.Context)
	if err != nil {
		e.close()
		return nil, err
	}

	e.tracker = tracker.New(state, tracker.WithPersister(adapter))

	slog.DebugContext(
		ctx.Context,
		"state loaded",
		slog.String("backend", cfg.Store.Backend),
		slog.Int("sessions", len(state.Completed)),
		slog.Int("projects", len(state.Projects)),
	)

	return e, nil
}

// withEnv runs fn with a loaded env.
func withEnv(fn func(*cli.Context, *env) error) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		e, err := setup(ctx)
		if err != nil {
			return err
		}

		defer e.close()

		return fn(ctx, e)
	}
}
