// Package catalog holds the loaded states and monuments and the browsing state over them.
//
// A [Catalog] is read-only after it has been built. Everything that changes while the user browses lives in the
// immutable [ViewState] value; each mutation returns a new value.
package catalog

import (
	"slices"

	"github.com/myrjola/dharohar/internal/models"
)

// Catalog is the read-only set of states and monuments loaded at startup.
type Catalog struct {
	states    []models.State
	monuments []models.Monument
}

// New creates a Catalog. The slices are copied so the caller can't mutate the catalog afterwards.
//
// Monuments are kept in the given order, duplicates included. See [Catalog.DuplicateMonumentIDs].
func New(states []models.State, monuments []models.Monument) *Catalog {
	return &Catalog{
		states:    slices.Clone(states),
		monuments: slices.Clone(monuments),
	}
}

// States returns the states in load order.
func (c *Catalog) States() []models.State {
	return slices.Clone(c.states)
}

// Monuments returns every monument in load order.
func (c *Catalog) Monuments() []models.Monument {
	return slices.Clone(c.monuments)
}

// State returns the state with the given id.
func (c *Catalog) State(id string) (models.State, bool) {
	i := slices.IndexFunc(c.states, func(s models.State) bool { return s.ID == id })
	if i < 0 {
		return models.State{}, false //nolint:exhaustruct // zero value for not found.
	}
	return c.states[i], true
}

// Monument returns the first monument with the given id.
func (c *Catalog) Monument(id string) (models.Monument, bool) {
	i := slices.IndexFunc(c.monuments, func(m models.Monument) bool { return m.ID == id })
	if i < 0 {
		return models.Monument{}, false //nolint:exhaustruct // zero value for not found.
	}
	return c.monuments[i], true
}

// MonumentsOf returns a new slice with the monuments belonging to stateID in load order.
func (c *Catalog) MonumentsOf(stateID string) []models.Monument {
	result := []models.Monument{}
	for _, m := range c.monuments {
		if m.State == stateID {
			result = append(result, m)
		}
	}
	return result
}

// MonumentCount is the number of monuments belonging to stateID.
//
// Unlike [models.State.MonumentCount] this is derived from the monument data.
func (c *Catalog) MonumentCount(stateID string) int {
	count := 0
	for _, m := range c.monuments {
		if m.State == stateID {
			count++
		}
	}
	return count
}

// Types returns the distinct lowercased monument types in first-seen order.
func (c *Catalog) Types() []string {
	var types []string
	seen := map[string]bool{}
	for _, m := range c.monuments {
		t := lower(m.Type)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
	}
	return types
}

// DuplicateMonumentIDs lists the monument ids that occur more than once, in first-seen order.
//
// Monument sources are concatenated without deduplication, so the same site coming from two files shows up twice
// in the browser.
func (c *Catalog) DuplicateMonumentIDs() []string {
	var duplicates []string
	counts := map[string]int{}
	for _, m := range c.monuments {
		counts[m.ID]++
		if counts[m.ID] == 2 { //nolint:mnd // report on the first repeat only.
			duplicates = append(duplicates, m.ID)
		}
	}
	return duplicates
}

// OrphanMonuments returns the monuments whose state doesn't exist in the catalog. They can never be browsed.
func (c *Catalog) OrphanMonuments() []models.Monument {
	known := map[string]bool{}
	for _, s := range c.states {
		known[s.ID] = true
	}
	var orphans []models.Monument
	for _, m := range c.monuments {
		if !known[m.State] {
			orphans = append(orphans, m)
		}
	}
	return orphans
}
