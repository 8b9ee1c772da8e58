package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/myrjola/dharohar/internal/e2etest"
	"github.com/myrjola/dharohar/internal/errors"
	"github.com/myrjola/dharohar/internal/loader"
	"github.com/myrjola/dharohar/internal/logging"
)

// TestShell checks that the HTML shell preloads every data file.
func TestShell(ctx context.Context, client *e2etest.Client) error {
	doc, err := client.GetDoc(ctx, "/")
	if err != nil {
		return errors.Wrap(err, "get shell")
	}
	preloads := map[string]bool{}
	doc.Find(`head link[rel="preload"]`).Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok {
			preloads[href] = true
		}
	})
	for _, name := range loader.DefaultResources.All() {
		if !preloads["/"+name] {
			return errors.New("data file not preloaded", slog.String("resource", name))
		}
	}
	return nil
}

// TestCatalog loads the catalog from url without falling back to the sample data.
func TestCatalog(ctx context.Context, logger *slog.Logger, url string) error {
	fetcher, err := loader.NewHTTPFetcher(url, 0)
	if err != nil {
		return errors.Wrap(err, "new fetcher")
	}
	c, err := loader.New(fetcher, logger).Fetch(ctx)
	if err != nil {
		return errors.Wrap(err, "fetch catalog")
	}
	if len(c.States()) == 0 || len(c.Monuments()) == 0 {
		return errors.New("catalog is empty",
			slog.Int("states", len(c.States())), slog.Int("monuments", len(c.Monuments())))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "catalog loaded",
		slog.Int("states", len(c.States())), slog.Int("monuments", len(c.Monuments())))
	return nil
}

func main() {
	logger := logging.New(os.Stdout, slog.LevelDebug, false)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		url      = "https://" + hostname
		err      error
	)
	// Allow testing a local server with an explicit scheme.
	if strings.Contains(hostname, "://") {
		url = hostname
	}
	ctx = logging.WithAttrs(ctx, slog.String("hostname", url))
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds

	client := e2etest.NewClient(url)
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not healthy", errors.SlogError(err))
		cancel()
		os.Exit(1)
	}
	if err = TestShell(ctx, client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing shell", errors.SlogError(err))
		cancel()
		os.Exit(1)
	}
	if err = TestCatalog(ctx, logger, url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing catalog", errors.SlogError(err))
		cancel()
		os.Exit(1)
	}
	cancel()

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌")
}
