package catalog

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lower lowercases s without locale-specific rules. Casers are stateful, hence one per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
