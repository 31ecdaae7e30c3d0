package render

import (
	"bytes"
	"io"
	"strings"

	"github.com/corpusdoc/cxxref/internal/corpus"
)

func xmlEscapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// XML renders c as a single structured XML document rooted at the global
// namespace, the primary machine-readable output format.
func XML(c *corpus.Corpus) ([]byte, error) {
	if err := ensureTemplates(); err != nil {
		return nil, err
	}
	root := buildSymbolView(c, c.GlobalNamespace())
	var buf bytes.Buffer
	if err := xmlTmpl.ExecuteTemplate(&buf, tmplXMLRoot, root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteXML is a convenience wrapper around XML for callers that already
// have an io.Writer (the CLI's output file, typically).
func WriteXML(w io.Writer, c *corpus.Corpus) error {
	b, err := XML(c)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
