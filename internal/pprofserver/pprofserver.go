package pprofserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/myrjola/dharohar/internal/errors"
)

func Handle(mux *http.ServeMux) {
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
}

func newServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	Handle(mux)
	return mux
}

func newServer(addr string) *http.Server {
	return &http.Server{ //nolint:exhaustruct // profiles need long write timeouts, so only the header is bounded.
		Addr:              addr,
		Handler:           newServeMux(),
		ReadHeaderTimeout: time.Second,
	}
}

// Addr returns the IPv6 loopback address for port, e.g. ":6060".
func Addr(port string) string {
	return fmt.Sprintf("[::1]%s", port)
}

// Launch a standard pprof server at ipv6 loopback address ::1 and given port. An empty port disables it.
//
// The server is shut down when ctx is done. Failures are logged and don't affect the caller.
func Launch(ctx context.Context, port string, logger *slog.Logger) {
	if port == "" {
		return
	}
	addr := Addr(port)
	srv := newServer(addr)
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	go func() {
		logger.LogAttrs(ctx, slog.LevelInfo, "starting pprof server", slog.String("pprof_addr", addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.LogAttrs(ctx, slog.LevelError, "pprof server stopped",
				errors.SlogError(errors.Wrap(err, "listen and serve", slog.String("pprof_addr", addr))))
		}
	}()
}
