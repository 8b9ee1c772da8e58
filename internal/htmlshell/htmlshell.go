// Package htmlshell rewrites the static HTML shell served to browsers.
package htmlshell

import (
	"io"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"github.com/myrjola/dharohar/internal/errors"
	"golang.org/x/net/html"
)

// AddPreloads adds a <link rel="preload"> for every JSON resource in hrefs to the head of the document read from r
// and writes the result to w.
//
// Resources that already have a preload link are skipped.
func AddPreloads(w io.Writer, r io.Reader, hrefs []string) error {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return errors.Wrap(err, "parse document")
	}

	head := doc.Find("head")
	if head.Length() == 0 {
		return errors.New("document has no head")
	}

	existing := map[string]bool{}
	head.Find(`link[rel="preload"]`).Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok {
			existing[href] = true
		}
	})

	for _, href := range hrefs {
		if existing[href] {
			continue
		}
		existing[href] = true
		head.AppendNodes(preloadLink(href))
	}

	if err = html.Render(w, doc.Nodes[0]); err != nil {
		return errors.Wrap(err, "render html", slog.Int("preloads", len(hrefs)))
	}
	return nil
}

func preloadLink(href string) *html.Node {
	return &html.Node{ //nolint:exhaustruct // tree links are set when appended.
		Type: html.ElementNode,
		Data: "link",
		Attr: []html.Attribute{
			{Key: "rel", Val: "preload"},
			{Key: "href", Val: href},
			{Key: "as", Val: "fetch"},
			{Key: "type", Val: "application/json"},
			{Key: "crossorigin", Val: "anonymous"},
		},
	}
}
