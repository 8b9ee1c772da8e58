package main

import (
	"net/http"
	"time"

	"github.com/justinas/alice"
)

func (app *application) routes(defaultTimeout time.Duration) http.Handler {
	mux := http.NewServeMux()

	fileServer := http.FileServerFS(app.files)
	mux.Handle("GET /static/", cacheForeverHeaders(http.StripPrefix("/static", fileServer)))
	// The data files are edited in place, so browsers must revalidate them.
	mux.Handle("GET /data/", noCacheHeaders(fileServer))

	mux.HandleFunc("GET /api/healthy", app.healthy)
	mux.HandleFunc("GET /{$}", app.home)
	mux.HandleFunc("/", app.notFound)

	common := alice.New(app.recoverPanic, app.logRequest, secureHeaders)
	return common.Then(timeoutHandler(mux, defaultTimeout))
}
