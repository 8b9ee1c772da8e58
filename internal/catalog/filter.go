package catalog

import (
	"strings"

	"github.com/myrjola/dharohar/internal/models"
)

// All is the filter and category value that disables narrowing.
const All = "all"

// Query narrows a list of monuments by type and free text.
type Query struct {
	// Type keeps monuments whose lowercased type equals it exactly. Empty or [All] keeps every type.
	Type string
	// Term keeps monuments whose lowercased name, location, or description contains it. Empty keeps everything.
	Term string
}

// Apply returns the monuments matching q in their original relative order. The input slice is not modified.
//
// Type and Term are expected to be lowercased already, as [ViewState] stores them.
func (q Query) Apply(monuments []models.Monument) []models.Monument {
	result := make([]models.Monument, 0, len(monuments))
	for _, m := range monuments {
		if q.matchesType(m) && q.matchesTerm(m) {
			result = append(result, m)
		}
	}
	return result
}

func (q Query) matchesType(m models.Monument) bool {
	if q.Type == "" || q.Type == All {
		return true
	}
	return lower(m.Type) == q.Type
}

func (q Query) matchesTerm(m models.Monument) bool {
	if q.Term == "" {
		return true
	}
	return strings.Contains(lower(m.Name), q.Term) ||
		strings.Contains(lower(m.Location), q.Term) ||
		strings.Contains(lower(m.Description), q.Term)
}

// NewQuery builds a Query from user input, lowercasing both parts.
func NewQuery(typ, term string) Query {
	return Query{
		Type: lower(strings.TrimSpace(typ)),
		Term: lower(term),
	}
}
