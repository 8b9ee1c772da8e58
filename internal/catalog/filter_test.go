package catalog_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/myrjola/dharohar/internal/catalog"
	"github.com/myrjola/dharohar/internal/models"
	"github.com/stretchr/testify/require"
)

func selectState(t *testing.T, c *catalog.Catalog, id string) catalog.ViewState {
	t.Helper()
	s, ok := c.State(id)
	require.True(t, ok, "state %s not found", id)
	return catalog.NewViewState().SelectState(c, s)
}

func names(monuments []models.Monument) []string {
	result := make([]string, 0, len(monuments))
	for _, m := range monuments {
		result = append(result, m.Name)
	}
	return result
}

// isSubsequence reports whether sub appears in all in the same relative order.
func isSubsequence(sub, all []models.Monument) bool {
	i := 0
	for _, m := range all {
		if i < len(sub) && m.ID == sub[i].ID && m.Name == sub[i].Name {
			i++
		}
	}
	return i == len(sub)
}

func TestViewState_VisibleMonuments_noStateSelected(t *testing.T) {
	v := catalog.NewViewState().SetFilter("palace").SetSearchTerm("agra")
	visible, ok := v.VisibleMonuments()
	require.False(t, ok)
	require.Nil(t, visible)
}

func TestViewState_VisibleMonuments(t *testing.T) {
	c := newTestCatalog()

	tests := []struct {
		name   string
		state  string
		filter string
		term   string
		want   []string
	}{
		{
			name:   "no narrowing passes everything through",
			state:  "rajasthan",
			filter: "all",
			term:   "",
			want:   []string{"Hawa Mahal", "Amber Fort", "City Palace", "Hawa Mahal (duplicate source)"},
		},
		{
			name:   "filter by type is case-insensitive",
			state:  "rajasthan",
			filter: "palace",
			want:   []string{"Hawa Mahal", "City Palace", "Hawa Mahal (duplicate source)"},
		},
		{
			name:   "filter value is lowercased",
			state:  "rajasthan",
			filter: "Fort",
			want:   []string{"Amber Fort"},
		},
		{
			name:   "filter needs an exact type match",
			state:  "rajasthan",
			filter: "pal",
			want:   []string{},
		},
		{
			name:   "search matches name",
			state:  "rajasthan",
			filter: "all",
			term:   "AMBER",
			want:   []string{"Amber Fort"},
		},
		{
			name:   "search matches location",
			state:  "uttar-pradesh",
			filter: "all",
			term:   "agra",
			want:   []string{"Taj Mahal"},
		},
		{
			name:   "search matches description",
			state:  "rajasthan",
			filter: "all",
			term:   "mirror",
			want:   []string{"Amber Fort"},
		},
		{
			name:   "filter and search combine",
			state:  "rajasthan",
			filter: "palace",
			term:   "udaipur",
			want:   []string{"City Palace"},
		},
		{
			name:   "search is a substring test, not tokenized",
			state:  "rajasthan",
			filter: "all",
			term:   "of win",
			want:   []string{"Hawa Mahal"},
		},
		{
			name:   "no temples in state gives an empty result",
			state:  "rajasthan",
			filter: "temple",
			want:   []string{},
		},
		{
			name:   "state without monuments",
			state:  "goa",
			filter: "all",
			want:   []string{},
		},
		{
			name:   "search never reaches other states",
			state:  "kerala",
			filter: "all",
			term:   "mahal",
			want:   []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := selectState(t, c, tt.state).SetFilter(tt.filter).SetSearchTerm(tt.term)
			visible, ok := v.VisibleMonuments()
			require.True(t, ok)
			require.NotNil(t, visible)
			require.Equal(t, tt.want, names(visible))
			require.True(t, isSubsequence(visible, v.CurrentStateMonuments), "order not preserved")
		})
	}
}

func TestViewState_VisibleMonuments_properties(t *testing.T) {
	c := newTestCatalog()
	filters := append([]string{"all"}, c.Types()...)
	terms := []string{"", "a", "palace", "rajasthan", "temple", "zzz"}

	for _, s := range c.States() {
		for _, filter := range filters {
			for _, term := range terms {
				v := catalog.NewViewState().SelectState(c, s).SetFilter(filter).SetSearchTerm(term)
				visible, ok := v.VisibleMonuments()
				require.True(t, ok)

				if filter == catalog.All && term == "" {
					require.Equal(t, v.CurrentStateMonuments, visible)
				}
				for _, m := range visible {
					require.Equal(t, s.ID, m.State)
					if filter != catalog.All {
						require.Equal(t, filter, strings.ToLower(m.Type))
					}
					if term != "" {
						require.True(t,
							strings.Contains(strings.ToLower(m.Name), term) ||
								strings.Contains(strings.ToLower(m.Location), term) ||
								strings.Contains(strings.ToLower(m.Description), term))
					}
				}
				require.True(t, isSubsequence(visible, v.CurrentStateMonuments))

				// Idempotent and deterministic.
				again := v.SetFilter(filter).SetSearchTerm(term)
				visibleAgain, _ := again.VisibleMonuments()
				require.Equal(t, visible, visibleAgain)
				reapplied := v.Query().Apply(visible)
				require.Equal(t, visible, reapplied)
			}
		}
	}
}

func TestViewState_isValue(t *testing.T) {
	c := newTestCatalog()
	base := selectState(t, c, "rajasthan")
	before := slices.Clone(base.CurrentStateMonuments)

	filtered := base.SetFilter("palace").SetSearchTerm("Jaipur").SetCategory("Forts")
	require.Equal(t, catalog.All, base.SelectedFilter)
	require.Empty(t, base.SearchTerm)
	require.Equal(t, catalog.All, base.SelectedCategory)
	require.Equal(t, "palace", filtered.SelectedFilter)
	require.Equal(t, "jaipur", filtered.SearchTerm)
	require.Equal(t, "forts", filtered.SelectedCategory)

	_, _ = filtered.VisibleMonuments()
	require.Equal(t, before, base.CurrentStateMonuments)

	require.Equal(t, catalog.All, base.SetFilter("  ").SelectedFilter)
	require.Equal(t, catalog.All, base.SetCategory("").SelectedCategory)
}

func TestViewState_SelectState_recomputes(t *testing.T) {
	c := newTestCatalog()
	v := selectState(t, c, "rajasthan").SetFilter("palace").SetSearchTerm("hawa")

	kerala, _ := c.State("kerala")
	v = v.SelectState(c, kerala)
	require.Equal(t, "kerala", v.CurrentState.ID)
	require.Equal(t, []string{"Padmanabhaswamy Temple"}, names(v.CurrentStateMonuments))
	// Filter and search carry over to the next state.
	require.Equal(t, "palace", v.SelectedFilter)
	require.Equal(t, "hawa", v.SearchTerm)
	visible, ok := v.VisibleMonuments()
	require.True(t, ok)
	require.Empty(t, visible)
}

func TestViewState_categoryDoesNotNarrow(t *testing.T) {
	c := newTestCatalog()
	v := selectState(t, c, "rajasthan")
	all, _ := v.VisibleMonuments()
	withCategory, _ := v.SetCategory("temples").VisibleMonuments()
	require.Equal(t, all, withCategory)
}

func TestScenarioA_palaceInRajasthan(t *testing.T) {
	c := catalog.Fallback()
	v := selectState(t, c, "rajasthan").SetFilter("palace")
	visible, ok := v.VisibleMonuments()
	require.True(t, ok)
	require.Contains(t, names(visible), "Hawa Mahal")
	for _, m := range visible {
		require.Equal(t, "palace", m.Type)
		require.Equal(t, "rajasthan", m.State)
	}
}

func TestScenarioB_searchByLocation(t *testing.T) {
	c := catalog.Fallback()
	v := selectState(t, c, "uttar-pradesh").SetSearchTerm("agra")
	visible, ok := v.VisibleMonuments()
	require.True(t, ok)
	require.Equal(t, []string{"Taj Mahal"}, names(visible))
}

func TestScenarioC_emptyResultIsNotAnError(t *testing.T) {
	c := catalog.Fallback()
	v := selectState(t, c, "rajasthan").SetFilter("temple")
	visible, ok := v.VisibleMonuments()
	require.True(t, ok)
	require.NotNil(t, visible)
	require.Empty(t, visible)
}

func TestNewQuery(t *testing.T) {
	q := catalog.NewQuery(" Palace ", "Jaipur")
	require.Equal(t, catalog.Query{Type: "palace", Term: "jaipur"}, q)
	require.Equal(t, []string{"Hawa Mahal"}, names(q.Apply(catalog.FallbackMonuments())))
	require.Len(t, catalog.NewQuery("", "").Apply(catalog.FallbackMonuments()), 2)
}
