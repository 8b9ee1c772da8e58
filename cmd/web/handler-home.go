package main

import (
	"log/slog"
	"net/http"

	"github.com/myrjola/dharohar/internal/errors"
)

// home serves the HTML shell.
func (app *application) home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := w.Write(app.index); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelDebug, "write index", errors.SlogError(err))
	}
}
