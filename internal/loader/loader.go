// Package loader fetches the catalog data files once at startup.
//
// Loading is all-or-nothing: when any resource can't be fetched or decoded, the whole result is discarded and the
// built-in fallback catalog is used instead.
package loader

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"slices"

	"github.com/myrjola/dharohar/internal/catalog"
	"github.com/myrjola/dharohar/internal/errors"
	"github.com/myrjola/dharohar/internal/models"
	"golang.org/x/sync/errgroup"
)

// Resources names the data files to load.
type Resources struct {
	// States is the resource holding the state list.
	States string
	// Monuments are concatenated in this order.
	Monuments []string
}

// DefaultResources are the data files published with the static site.
var DefaultResources = Resources{
	States: "data/states.json",
	Monuments: []string{
		"data/monuments.json",
		"data/kerala.json",
		"data/westBengal.json",
	},
}

// All returns every resource name, states first.
func (r Resources) All() []string {
	return append([]string{r.States}, r.Monuments...)
}

type Loader struct {
	fetcher   Fetcher
	resources Resources
	logger    *slog.Logger
	onFetched func(name string)
}

// Option configures a Loader.
type Option func(*Loader)

// WithResources overrides [DefaultResources].
func WithResources(resources Resources) Option {
	return func(l *Loader) {
		l.resources = Resources{
			States:    resources.States,
			Monuments: slices.Clone(resources.Monuments),
		}
	}
}

// WithProgress registers fn to be called after each resource has been fetched and decoded. fn is called from
// multiple goroutines.
func WithProgress(fn func(name string)) Option {
	return func(l *Loader) {
		l.onFetched = fn
	}
}

func New(fetcher Fetcher, logger *slog.Logger, opts ...Option) *Loader {
	l := &Loader{
		fetcher:   fetcher,
		resources: DefaultResources,
		logger:    logger,
		onFetched: func(string) {},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Resources returns the resources the loader fetches.
func (l *Loader) Resources() Resources {
	return l.resources
}

// Fetch loads every resource concurrently and builds a catalog from them.
//
// The first failure cancels the remaining requests. Fetch returns only after every request has finished, and
// partial results are never returned.
func (l *Loader) Fetch(ctx context.Context) (*catalog.Catalog, error) {
	var (
		states    []models.State
		monuments = make([][]models.Monument, len(l.resources.Monuments))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return l.fetchJSON(gctx, l.resources.States, &states)
	})
	for i, name := range l.resources.Monuments {
		g.Go(func() error {
			return l.fetchJSON(gctx, name, &monuments[i])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "fetch catalog")
	}

	return catalog.New(states, slices.Concat(monuments...)), nil
}

// Load is [Loader.Fetch] that falls back to [catalog.Fallback] on any error. The error is logged, not returned.
//
// usedFallback reports whether the fallback catalog was returned.
func (l *Loader) Load(ctx context.Context) (c *catalog.Catalog, usedFallback bool) {
	c, err := l.Fetch(ctx)
	if err != nil {
		l.logger.LogAttrs(ctx, slog.LevelWarn, "could not load catalog, using sample data", errors.SlogError(err))
		return catalog.Fallback(), true
	}
	l.logger.LogAttrs(ctx, slog.LevelDebug, "loaded catalog",
		slog.Int("states", len(c.States())), slog.Int("monuments", len(c.Monuments())))
	return c, false
}

func (l *Loader) fetchJSON(ctx context.Context, name string, v any) error {
	body, err := l.fetcher.Fetch(ctx, name)
	if err != nil {
		return errors.Wrap(err, "fetch resource", slog.String("resource", name))
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(body)

	if err = json.NewDecoder(body).Decode(v); err != nil {
		return errors.Wrap(err, "decode resource", slog.String("resource", name))
	}
	l.onFetched(name)
	return nil
}
