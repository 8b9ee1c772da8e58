package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/myrjola/dharohar/internal/catalog"
	"github.com/myrjola/dharohar/internal/envstruct"
	"github.com/myrjola/dharohar/internal/errors"
	"github.com/myrjola/dharohar/internal/loader"
	"github.com/myrjola/dharohar/internal/logging"
	"github.com/spf13/cobra"
)

type config struct {
	// DataURL is the base URL of the static site serving the data files.
	DataURL string `env:"DHAROHAR_DATA_URL" envDefault:"http://localhost:4000/"`
	// DataDir reads the data files from a local copy of the static site instead of DataURL when set.
	DataDir string `env:"DHAROHAR_DATA_DIR" envDefault:""`
	// MonumentSources overrides the monument data files, in concatenation order.
	MonumentSources []string `env:"DHAROHAR_MONUMENT_SOURCES" envDefault:""`
	// SearchDelay is the quiet period before typed search input is applied.
	SearchDelay time.Duration `env:"DHAROHAR_SEARCH_DELAY" envDefault:"300ms"`
	// FetchTimeout bounds each HTTP request. Zero means no timeout.
	FetchTimeout time.Duration `env:"DHAROHAR_FETCH_TIMEOUT" envDefault:"0s"`
	// LogLevel of the diagnostics written to stderr.
	LogLevel string `env:"DHAROHAR_LOG_LEVEL" envDefault:"error"`
}

// options are shared by all commands.
type options struct {
	lookupEnv func(string) (string, bool)
	dataURL   string
	dataDir   string
}

// env holds what a command needs to load the catalog.
type env struct {
	cfg    config
	logger *slog.Logger
	loader *loader.Loader
}

// setup reads the configuration, applies flag overrides, and creates a loader.
func (o *options) setup(cmd *cobra.Command, loaderOpts ...loader.Option) (*env, error) {
	var cfg config
	if err := envstruct.Populate(&cfg, o.lookupEnv); err != nil {
		return nil, errors.Wrap(err, "populate config")
	}
	if o.dataURL != "" {
		cfg.DataURL = o.dataURL
		cfg.DataDir = ""
	}
	if o.dataDir != "" {
		cfg.DataDir = o.dataDir
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "parse log level")
	}
	logger := logging.New(cmd.ErrOrStderr(), level, false)

	fetcher, err := newFetcher(cfg)
	if err != nil {
		return nil, err
	}
	if len(cfg.MonumentSources) > 0 {
		loaderOpts = append(loaderOpts, loader.WithResources(loader.Resources{
			States:    loader.DefaultResources.States,
			Monuments: cfg.MonumentSources,
		}))
	}

	logger.LogAttrs(cmd.Context(), slog.LevelDebug, "loading catalog",
		slog.String("data_url", cfg.DataURL), slog.String("data_dir", cfg.DataDir))
	return &env{
		cfg:    cfg,
		logger: logger,
		loader: loader.New(fetcher, logger, loaderOpts...),
	}, nil
}

func newFetcher(cfg config) (loader.Fetcher, error) {
	if cfg.DataDir != "" {
		return loader.NewFSFetcher(os.DirFS(cfg.DataDir)), nil
	}
	fetcher, err := loader.NewHTTPFetcher(cfg.DataURL, cfg.FetchTimeout)
	if err != nil {
		return nil, errors.Wrap(err, "new HTTP fetcher")
	}
	return fetcher, nil
}

// load returns the catalog, falling back to the sample data when loading fails.
func (e *env) load(ctx context.Context) *catalog.Catalog {
	c, _ := e.loader.Load(ctx)
	return c
}
