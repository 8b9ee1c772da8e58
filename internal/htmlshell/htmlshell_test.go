package htmlshell_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/myrjola/dharohar/internal/htmlshell"
	"github.com/stretchr/testify/require"
)

func TestAddPreloads(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		hrefs     []string
		wantHrefs []string
	}{
		{
			name:      "adds links in order",
			input:     `<!doctype html><html><head><title>Dharohar</title></head><body><main></main></body></html>`,
			hrefs:     []string{"/data/states.json", "/data/monuments.json"},
			wantHrefs: []string{"/data/states.json", "/data/monuments.json"},
		},
		{
			name: "skips existing and repeated links",
			input: `<html><head><link rel="preload" href="/data/states.json" as="fetch"></head>` +
				`<body></body></html>`,
			hrefs:     []string{"/data/states.json", "/data/kerala.json", "/data/kerala.json"},
			wantHrefs: []string{"/data/states.json", "/data/kerala.json"},
		},
		{
			name:      "fragment gets a head",
			input:     `<p>hello</p>`,
			hrefs:     []string{"/data/states.json"},
			wantHrefs: []string{"/data/states.json"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := htmlshell.AddPreloads(&buf, strings.NewReader(tt.input), tt.hrefs)
			require.NoError(t, err)

			doc, err := goquery.NewDocumentFromReader(&buf)
			require.NoError(t, err)
			var got []string
			doc.Find(`head link[rel="preload"]`).Each(func(_ int, s *goquery.Selection) {
				href, _ := s.Attr("href")
				got = append(got, href)
				as, _ := s.Attr("as")
				require.Equal(t, "fetch", as)
			})
			require.Equal(t, tt.wantHrefs, got)
		})
	}
}
