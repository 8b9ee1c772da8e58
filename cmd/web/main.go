package main

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/myrjola/dharohar/internal/envstruct"
	"github.com/myrjola/dharohar/internal/errors"
	"github.com/myrjola/dharohar/internal/htmlshell"
	"github.com/myrjola/dharohar/internal/loader"
	"github.com/myrjola/dharohar/internal/logging"
	"github.com/myrjola/dharohar/internal/pprofserver"
	"github.com/myrjola/dharohar/ui"
)

type application struct {
	logger *slog.Logger
	// files is the root of the static site.
	files fs.FS
	// index is the HTML shell with preload links for the data files.
	index []byte
	// resources are the catalog data files the site must serve.
	resources loader.Resources
}

type config struct {
	// Addr is the address the HTTP server listens on.
	Addr string `env:"DHAROHAR_ADDR" envDefault:"localhost:4000"`
	// PprofPort is the loopback port for pprof. Empty disables it.
	PprofPort string `env:"DHAROHAR_PPROF_PORT" envDefault:":6060"`
	// StaticDir serves the static site from disk instead of the files embedded in the binary.
	StaticDir string `env:"DHAROHAR_STATIC_DIR" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	files, err := staticFiles(cfg.StaticDir)
	if err != nil {
		return errors.Wrap(err, "static files")
	}

	index, err := buildIndex(files, loader.DefaultResources)
	if err != nil {
		return errors.Wrap(err, "build index")
	}

	app := application{
		logger:    logger,
		files:     files,
		index:     index,
		resources: loader.DefaultResources,
	}

	// Initialise pprof listening on localhost so that it's not open to the world.
	pprofserver.Launch(ctx, cfg.PprofPort, logger)

	if err = app.configureAndStartServer(ctx, cfg.Addr); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func staticFiles(dir string) (fs.FS, error) {
	if dir != "" {
		return os.DirFS(dir), nil
	}
	files, err := fs.Sub(ui.Files, "static")
	if err != nil {
		return nil, errors.Wrap(err, "sub static")
	}
	return files, nil
}

// buildIndex reads index.html from files and adds preload links for resources.
func buildIndex(files fs.FS, resources loader.Resources) ([]byte, error) {
	f, err := files.Open("index.html")
	if err != nil {
		return nil, errors.Wrap(err, "open index.html")
	}
	defer func() {
		_ = f.Close()
	}()

	var hrefs []string
	for _, name := range resources.All() {
		hrefs = append(hrefs, "/"+name)
	}
	var buf bytes.Buffer
	if err = htmlshell.AddPreloads(&buf, f, hrefs); err != nil {
		return nil, errors.Wrap(err, "add preloads")
	}
	return buf.Bytes(), nil
}

func main() {
	ctx := context.Background()
	// A missing .env is fine, the environment and defaults are used instead.
	_ = godotenv.Load()

	level, err := logging.ParseLevel(os.Getenv("DHAROHAR_LOG_LEVEL"))
	logger := logging.New(os.Stdout, level, true)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelWarn, "using default log level", errors.SlogError(err))
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	err = run(ctx, logger, os.LookupEnv)
	stop()
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
