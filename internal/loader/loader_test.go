package loader_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/myrjola/dharohar/internal/catalog"
	"github.com/myrjola/dharohar/internal/loader"
	"github.com/myrjola/dharohar/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

const (
	statesJSON = `[
		{"id": "rajasthan", "name": "Rajasthan", "image": "r.jpg", "description": "Land of kings.", "monumentCount": 2},
		{"id": "kerala", "name": "Kerala", "image": "k.jpg", "description": "Gods own country.", "monumentCount": 1},
		{"id": "west-bengal", "name": "West Bengal", "image": "w.jpg", "description": "Terracotta temples."}
	]`
	monumentsJSON = `[
		{"id": "hawa-mahal", "state": "rajasthan", "type": "palace", "name": "Hawa Mahal",
		 "location": "Jaipur, Rajasthan", "description": "Palace of Winds."},
		{"id": "amber-fort", "state": "rajasthan", "type": "fort", "name": "Amber Fort",
		 "location": "Amer, Rajasthan", "description": "Hilltop fort."}
	]`
	keralaJSON = `[
		{"id": "padmanabhaswamy", "state": "kerala", "type": "temple", "name": "Padmanabhaswamy Temple",
		 "location": "Thiruvananthapuram, Kerala", "description": "Dravidian temple.", "amenities": ["Cloak room"]}
	]`
	westBengalJSON = `[
		{"id": "victoria-memorial", "state": "west-bengal", "type": "memorial", "name": "Victoria Memorial",
		 "location": "Kolkata, West Bengal", "description": "Marble building."},
		{"id": "hawa-mahal", "state": "rajasthan", "type": "palace", "name": "Hawa Mahal",
		 "location": "Jaipur", "description": "Repeated by this source."}
	]`
)

func newTestFS() fstest.MapFS {
	return fstest.MapFS{
		"data/states.json":     {Data: []byte(statesJSON)},
		"data/monuments.json":  {Data: []byte(monumentsJSON)},
		"data/kerala.json":     {Data: []byte(keralaJSON)},
		"data/westBengal.json": {Data: []byte(westBengalJSON)},
	}
}

func monumentIDs(c *catalog.Catalog) []string {
	var ids []string
	for _, m := range c.Monuments() {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestLoader_Fetch(t *testing.T) {
	l := loader.New(loader.NewFSFetcher(newTestFS()), testhelpers.NewLogger(io.Discard))

	c, err := l.Fetch(context.Background())
	require.NoError(t, err)

	states := c.States()
	require.Len(t, states, 3)
	require.Equal(t, "rajasthan", states[0].ID)
	require.Equal(t, 2, states[0].MonumentCount)
	require.Zero(t, states[2].MonumentCount)

	// Sources are concatenated in order without deduplication.
	require.Equal(t, []string{
		"hawa-mahal", "amber-fort", "padmanabhaswamy", "victoria-memorial", "hawa-mahal",
	}, monumentIDs(c))
	require.Equal(t, []string{"hawa-mahal"}, c.DuplicateMonumentIDs())
}

func TestLoader_Load_fallback(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(fs fstest.MapFS)
	}{
		{
			name:   "missing states resource",
			mutate: func(fs fstest.MapFS) { delete(fs, "data/states.json") },
		},
		{
			name:   "missing last monument source",
			mutate: func(fs fstest.MapFS) { delete(fs, "data/westBengal.json") },
		},
		{
			name: "malformed monument source",
			mutate: func(fs fstest.MapFS) {
				fs["data/kerala.json"] = &fstest.MapFile{Data: []byte(`[{"id": "broken",`)}
			},
		},
		{
			name: "states is not a list",
			mutate: func(fs fstest.MapFS) {
				fs["data/states.json"] = &fstest.MapFile{Data: []byte(`{"rajasthan": {}}`)}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := newTestFS()
			tt.mutate(fsys)
			l := loader.New(loader.NewFSFetcher(fsys), testhelpers.NewLogger(io.Discard))

			_, err := l.Fetch(context.Background())
			require.Error(t, err)

			c, usedFallback := l.Load(context.Background())
			require.True(t, usedFallback)
			// Never a mix of loaded and sample data.
			require.Equal(t, catalog.FallbackStates(), c.States())
			require.Equal(t, catalog.FallbackMonuments(), c.Monuments())
		})
	}
}

func TestLoader_Load_success(t *testing.T) {
	l := loader.New(loader.NewFSFetcher(newTestFS()), testhelpers.NewLogger(io.Discard))
	c, usedFallback := l.Load(context.Background())
	require.False(t, usedFallback)
	require.Len(t, c.Monuments(), 5)
}

func TestLoader_WithResources(t *testing.T) {
	fsys := newTestFS()
	l := loader.New(loader.NewFSFetcher(fsys), testhelpers.NewLogger(io.Discard),
		loader.WithResources(loader.Resources{
			States:    "data/states.json",
			Monuments: []string{"data/kerala.json", "data/monuments.json"},
		}))
	c, err := l.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"padmanabhaswamy", "hawa-mahal", "amber-fort"}, monumentIDs(c))
}

func TestLoader_WithProgress(t *testing.T) {
	var (
		mu      sync.Mutex
		fetched []string
	)
	l := loader.New(loader.NewFSFetcher(newTestFS()), testhelpers.NewLogger(io.Discard),
		loader.WithProgress(func(name string) {
			mu.Lock()
			defer mu.Unlock()
			fetched = append(fetched, name)
		}))
	_, err := l.Fetch(context.Background())
	require.NoError(t, err)
	require.ElementsMatch(t, loader.DefaultResources.All(), fetched)
}

func newTestHTTPServer(t *testing.T, fsys fstest.MapFS, status map[string]int) *httptest.Server {
	t.Helper()
	files := http.FileServer(http.FS(fsys))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if code, ok := status[r.URL.Path]; ok {
			http.Error(w, http.StatusText(code), code)
			return
		}
		files.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPFetcher(t *testing.T) {
	tests := []struct {
		name         string
		status       map[string]int
		wantFallback bool
	}{
		{
			name:         "all resources served",
			status:       nil,
			wantFallback: false,
		},
		{
			name:         "one resource not found",
			status:       map[string]int{"/data/kerala.json": http.StatusNotFound},
			wantFallback: true,
		},
		{
			name:         "server error",
			status:       map[string]int{"/data/states.json": http.StatusInternalServerError},
			wantFallback: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestHTTPServer(t, newTestFS(), tt.status)
			fetcher, err := loader.NewHTTPFetcher(srv.URL, 5*time.Second)
			require.NoError(t, err)

			c, usedFallback := loader.New(fetcher, testhelpers.NewLogger(io.Discard)).Load(context.Background())
			require.Equal(t, tt.wantFallback, usedFallback)
			if tt.wantFallback {
				require.Equal(t, catalog.FallbackMonuments(), c.Monuments())
			} else {
				require.Len(t, c.States(), 3)
				require.Len(t, c.Monuments(), 5)
			}
		})
	}
}

func TestHTTPFetcher_unexpectedStatus(t *testing.T) {
	srv := newTestHTTPServer(t, newTestFS(), map[string]int{"/data/states.json": http.StatusNotFound})
	fetcher, err := loader.NewHTTPFetcher(srv.URL, 0)
	require.NoError(t, err)
	_, err = fetcher.Fetch(context.Background(), "data/states.json")
	require.ErrorIs(t, err, loader.ErrUnexpectedStatus)
}

func TestHTTPFetcher_networkError(t *testing.T) {
	// Scenario: the host is unreachable.
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	fetcher, err := loader.NewHTTPFetcher(url, time.Second)
	require.NoError(t, err)
	c, usedFallback := loader.New(fetcher, testhelpers.NewLogger(io.Discard)).Load(context.Background())
	require.True(t, usedFallback)
	require.Equal(t, catalog.FallbackStates(), c.States())
	require.Equal(t, catalog.FallbackMonuments(), c.Monuments())
}

func TestNewHTTPFetcher_URL(t *testing.T) {
	tests := []struct {
		baseURL string
		want    string
		wantErr bool
	}{
		{baseURL: "http://localhost:4000", want: "http://localhost:4000/data/states.json"},
		{baseURL: "http://localhost:4000/", want: "http://localhost:4000/data/states.json"},
		{baseURL: "https://example.com/heritage", want: "https://example.com/heritage/data/states.json"},
		{baseURL: "https://example.com/heritage/", want: "https://example.com/heritage/data/states.json"},
		{baseURL: "data", wantErr: true},
		{baseURL: "://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.baseURL, func(t *testing.T) {
			fetcher, err := loader.NewHTTPFetcher(tt.baseURL, 0)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, fetcher.URL("data/states.json"))
		})
	}
}

func TestLoader_cancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := loader.New(loader.NewFSFetcher(newTestFS()), testhelpers.NewLogger(io.Discard))
	_, err := l.Fetch(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
