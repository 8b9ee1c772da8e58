package main

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/myrjola/dharohar/internal/errors"
)

type healthResponse struct {
	Status  string   `json:"status"`
	Missing []string `json:"missing,omitempty"`
}

// healthy responds with a JSON object indicating whether every catalog data file can be served.
func (app *application) healthy(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Missing: nil}
	status := http.StatusOK
	for _, name := range app.resources.All() {
		if _, err := fs.Stat(app.files, name); err != nil {
			resp.Missing = append(resp.Missing, name)
		}
	}
	if len(resp.Missing) > 0 {
		resp.Status = "missing data"
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelDebug, "write health response", errors.SlogError(err))
	}
}
