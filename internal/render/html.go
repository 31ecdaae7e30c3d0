package render

import (
	"bytes"
	"fmt"

	"github.com/corpusdoc/cxxref/internal/corpus"
)

func htmlFile(id string) string {
	return id + ".html"
}

// HTMLPageSet is a minimal static HTML rendering of a corpus: one index
// page plus one page per symbol below the global namespace, documented or
// not, keyed by symbol ID.
type HTMLPageSet struct {
	Index string
	Pages map[string]string // symbol ID -> page content
}

// HTML renders c as a page set suitable for writing directly to an output
// directory (index.html plus "<id>.html" per symbol).
func HTML(c *corpus.Corpus) (*HTMLPageSet, error) {
	if err := ensureTemplates(); err != nil {
		return nil, err
	}
	root := buildSymbolView(c, c.GlobalNamespace())

	var idx bytes.Buffer
	if err := htmlTmpl.ExecuteTemplate(&idx, tmplHTMLIndex, root); err != nil {
		return nil, err
	}

	pages := map[string]string{}
	var walk func(v symbolView) error
	walk = func(v symbolView) error {
		var buf bytes.Buffer
		if err := htmlTmpl.ExecuteTemplate(&buf, tmplHTMLPage, v); err != nil {
			return fmt.Errorf("render page for %s: %w", v.Qualified, err)
		}
		pages[v.ID] = buf.String()
		for _, child := range v.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	for _, child := range root.Children {
		if err := walk(child); err != nil {
			return nil, err
		}
	}

	return &HTMLPageSet{Index: idx.String(), Pages: pages}, nil
}
