package models

// State is a region grouping heritage monuments, e.g. an Indian state.
//
// MonumentCount is a display hint from the data file. The authoritative count is derived by matching
// [Monument.State] against ID.
type State struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Image         string `json:"image"`
	Description   string `json:"description"`
	MonumentCount int    `json:"monumentCount"`
}

// View is one of the mutually exclusive screens of the catalog browser.
type View string

const (
	HomeView     View = "home"
	StateView    View = "state"
	MonumentView View = "monument"
)
