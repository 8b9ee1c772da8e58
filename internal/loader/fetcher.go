package loader

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/myrjola/dharohar/internal/errors"
)

var ErrUnexpectedStatus = errors.NewSentinel("unexpected status code")

// Fetcher opens a named data resource such as "data/states.json".
type Fetcher interface {
	Fetch(ctx context.Context, name string) (io.ReadCloser, error)
}

// HTTPFetcher fetches resources relative to a base URL.
type HTTPFetcher struct {
	client  *http.Client
	baseURL *url.URL
}

// NewHTTPFetcher creates a fetcher resolving resource names against baseURL.
//
// A zero timeout leaves requests bounded only by the context.
func NewHTTPFetcher(baseURL string, timeout time.Duration) (*HTTPFetcher, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse base URL", slog.String("base_url", baseURL))
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.New("base URL must be absolute", slog.String("base_url", baseURL))
	}
	// Without a trailing slash the last path segment would be replaced when resolving.
	if u.Path == "" || u.Path[len(u.Path)-1] != '/' {
		u.Path += "/"
	}
	return &HTTPFetcher{
		client:  &http.Client{Timeout: timeout}, //nolint:exhaustruct // defaults are fine.
		baseURL: u,
	}, nil
}

// URL returns the absolute URL of the named resource.
func (f *HTTPFetcher) URL(name string) string {
	return f.baseURL.ResolveReference(&url.URL{Path: name}).String() //nolint:exhaustruct // path only.
}

// Fetch GETs the resource. Any status other than 2xx is an error.
func (f *HTTPFetcher) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	resourceURL := f.URL(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resourceURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request", slog.String("url", resourceURL))
	}
	req.Header.Set("Accept", "application/json")
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "do request", slog.String("url", resourceURL))
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_ = resp.Body.Close()
		return nil, errors.Wrap(ErrUnexpectedStatus, "fetch resource",
			slog.String("url", resourceURL), slog.Int("status", resp.StatusCode))
	}
	return resp.Body, nil
}

// FSFetcher reads resources from a file system, e.g. os.DirFS of a local data directory.
type FSFetcher struct {
	fsys fs.FS
}

// NewFSFetcher creates a fetcher reading from fsys.
func NewFSFetcher(fsys fs.FS) *FSFetcher {
	return &FSFetcher{fsys: fsys}
}

// Fetch opens the named file. The context is only checked before opening.
func (f *FSFetcher) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "context done", slog.String("name", name))
	}
	file, err := f.fsys.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open resource", slog.String("name", name))
	}
	return file, nil
}
