// Package view drives the catalog browser between the home, state, and monument views.
package view

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/myrjola/dharohar/internal/catalog"
	"github.com/myrjola/dharohar/internal/debounce"
	"github.com/myrjola/dharohar/internal/errors"
	"github.com/myrjola/dharohar/internal/models"
)

var (
	ErrInvalidTransition = errors.NewSentinel("action not available in the current view")
	ErrUnknownState      = errors.NewSentinel("unknown state")
	ErrUnknownMonument   = errors.NewSentinel("unknown monument")
)

// DefaultSearchDelay is the quiet period after the last search input before the search is applied.
const DefaultSearchDelay = 300 * time.Millisecond

// Renderer presents the controller's output.
//
// Methods are called while the controller holds its lock and must not call back into the [Controller].
type Renderer interface {
	// ShowView hides the from view and shows the to view scrolled to the top. from is empty on start.
	ShowView(from, to models.View)
	// RenderHome draws the state grid.
	RenderHome(states []models.State)
	// RenderState draws the current state and its visible monuments. visible may be empty.
	RenderState(vs catalog.ViewState, visible []models.Monument)
	// RenderMonument draws the monument detail page.
	RenderMonument(monument models.Monument)
}

// Controller is the view state machine. It is safe for concurrent use.
type Controller struct {
	catalog  *catalog.Catalog
	renderer Renderer
	logger   *slog.Logger
	search   *debounce.Debouncer[string]

	mu    sync.Mutex
	state catalog.ViewState
}

// NewController creates a controller on the home view. Nothing is rendered until [Controller.Start].
func NewController(c *catalog.Catalog, renderer Renderer, logger *slog.Logger, searchDelay time.Duration) *Controller {
	ctrl := &Controller{
		catalog:  c,
		renderer: renderer,
		logger:   logger,
		search:   nil,
		mu:       sync.Mutex{},
		state:    catalog.NewViewState(),
	}
	ctrl.search = debounce.New(searchDelay, ctrl.applySearch)
	return ctrl
}

// Start renders the initial home view.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderer.RenderHome(c.catalog.States())
	c.renderer.ShowView("", c.state.View)
}

// SelectState opens the state with stateID. Only available from the home view.
//
// Filter and search term stay as they were, so they immediately narrow the new state's monuments.
func (c *Controller) SelectState(stateID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.expect(models.HomeView, "select state"); err != nil {
		return err
	}
	state, ok := c.catalog.State(stateID)
	if !ok {
		return errors.Wrap(ErrUnknownState, "select state", slog.String("state_id", stateID))
	}
	c.state = c.state.SelectState(c.catalog, state)
	c.renderStateView()
	c.transition(models.StateView)
	return nil
}

// SelectMonument opens the monument with monumentID from the monuments currently listed in the state view.
// Monuments hidden by the filter or search term cannot be opened.
func (c *Controller) SelectMonument(monumentID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.expect(models.StateView, "select monument"); err != nil {
		return err
	}
	visible, _ := c.state.VisibleMonuments()
	for _, m := range visible {
		if m.ID == monumentID {
			c.state = c.state.SelectMonument(m)
			c.renderer.RenderMonument(m)
			c.transition(models.MonumentView)
			return nil
		}
	}
	return errors.Wrap(ErrUnknownMonument, "select monument", slog.String("monument_id", monumentID))
}

// Back returns from the monument view to the state view and from the state view to the home view.
//
// Nothing is cleared on the way back: the state, its monuments, the filter, and the search term remain selected.
func (c *Controller) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state.View {
	case models.MonumentView:
		c.renderStateView()
		c.transition(models.StateView)
	case models.StateView:
		c.renderer.RenderHome(c.catalog.States())
		c.transition(models.HomeView)
	case models.HomeView:
		return errors.Wrap(ErrInvalidTransition, "back", slog.String("view", string(c.state.View)))
	}
	return nil
}

// SetFilter sets the monument type filter. "all" or an empty value disables it.
func (c *Controller) SetFilter(filter string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.SetFilter(filter)
	c.refresh()
}

// SetCategory records the navigation category. It does not narrow the monument list.
func (c *Controller) SetCategory(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.SetCategory(category)
	c.refresh()
}

// Search schedules term to be applied once no further search input arrives for the search delay.
// A newer term replaces a pending one.
func (c *Controller) Search(term string) {
	c.search.Trigger(term)
}

// FlushSearch applies a pending search term immediately and reports whether there was one.
func (c *Controller) FlushSearch() bool {
	return c.search.Flush()
}

// SearchPending reports whether a search term is waiting to be applied.
func (c *Controller) SearchPending() bool {
	return c.search.Pending()
}

// ViewState returns a snapshot of the current view state.
func (c *Controller) ViewState() catalog.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Visible returns the monuments currently listed in the state view. ok is false before a state is selected.
func (c *Controller) Visible() ([]models.Monument, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.VisibleMonuments()
}

// States returns the states listed in the home view.
func (c *Controller) States() []models.State {
	return c.catalog.States()
}

// Types returns the monument types available as filters.
func (c *Controller) Types() []string {
	return c.catalog.Types()
}

// Close drops any pending search.
func (c *Controller) Close() {
	c.search.Stop()
}

func (c *Controller) applySearch(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.SetSearchTerm(term)
	c.refresh()
}

// refresh redraws the monument list when the state view is showing. c.mu must be held.
func (c *Controller) refresh() {
	if c.state.View == models.StateView {
		c.renderStateView()
	}
}

// renderStateView draws the current state. c.mu must be held and a state must be selected.
func (c *Controller) renderStateView() {
	visible, _ := c.state.VisibleMonuments()
	c.renderer.RenderState(c.state, visible)
}

// transition switches to the to view. c.mu must be held.
func (c *Controller) transition(to models.View) {
	from := c.state.View
	c.state = c.state.WithView(to)
	c.renderer.ShowView(from, to)
	c.logger.LogAttrs(context.Background(), slog.LevelDebug, "view transition",
		slog.String("from", string(from)), slog.String("to", string(to)))
}

func (c *Controller) expect(view models.View, action string) error {
	if c.state.View != view {
		return errors.Wrap(ErrInvalidTransition, action,
			slog.String("view", string(c.state.View)), slog.String("want_view", string(view)))
	}
	return nil
}
