package catalog

import (
	"strings"

	"github.com/myrjola/dharohar/internal/models"
)

// ViewState is what the user currently looks at and how the monument list is narrowed.
//
// ViewState is a value: the methods return an updated copy and never modify the receiver or the slices it shares
// with earlier copies.
type ViewState struct {
	View            models.View
	CurrentState    *models.State
	CurrentMonument *models.Monument
	// SelectedCategory is set from the top navigation. It is tracked but does not narrow the monument list.
	SelectedCategory string
	// SelectedFilter is the lowercased monument type shown in the state view, or [All].
	SelectedFilter string
	// SearchTerm is the lowercased free-text search, empty when not searching.
	SearchTerm string
	// CurrentStateMonuments are the monuments of CurrentState in load order. Nil until a state is selected.
	CurrentStateMonuments []models.Monument
}

// NewViewState returns the initial state: home view, nothing selected, no narrowing.
func NewViewState() ViewState {
	return ViewState{
		View:                  models.HomeView,
		CurrentState:          nil,
		CurrentMonument:       nil,
		SelectedCategory:      All,
		SelectedFilter:        All,
		SearchTerm:            "",
		CurrentStateMonuments: nil,
	}
}

// SelectState makes state current and recomputes its monuments from c. The view is not changed.
//
// Filter and search are kept, so narrowing chosen for one state carries over to the next.
func (v ViewState) SelectState(c *Catalog, state models.State) ViewState {
	v.CurrentState = &state
	v.CurrentStateMonuments = c.MonumentsOf(state.ID)
	return v
}

// SelectMonument makes monument current. The view is not changed.
func (v ViewState) SelectMonument(monument models.Monument) ViewState {
	v.CurrentMonument = &monument
	return v
}

// SetFilter sets the type filter. An empty value resets it to [All].
func (v ViewState) SetFilter(filter string) ViewState {
	filter = lower(strings.TrimSpace(filter))
	if filter == "" {
		filter = All
	}
	v.SelectedFilter = filter
	return v
}

// SetSearchTerm sets the lowercased search term. The term is not trimmed, matching is a plain substring test.
func (v ViewState) SetSearchTerm(term string) ViewState {
	v.SearchTerm = lower(term)
	return v
}

// SetCategory sets the navigation category. An empty value resets it to [All].
func (v ViewState) SetCategory(category string) ViewState {
	category = lower(strings.TrimSpace(category))
	if category == "" {
		category = All
	}
	v.SelectedCategory = category
	return v
}

// WithView switches the active view.
func (v ViewState) WithView(view models.View) ViewState {
	v.View = view
	return v
}

// Query is the narrowing currently applied to the state's monuments.
func (v ViewState) Query() Query {
	return Query{Type: v.SelectedFilter, Term: v.SearchTerm}
}

// VisibleMonuments narrows CurrentStateMonuments by the selected filter and search term.
//
// ok is false when no state has been selected yet. An empty slice with ok true means nothing matched.
func (v ViewState) VisibleMonuments() ([]models.Monument, bool) {
	if v.CurrentState == nil || v.CurrentStateMonuments == nil {
		return nil, false
	}
	return v.Query().Apply(v.CurrentStateMonuments), true
}
