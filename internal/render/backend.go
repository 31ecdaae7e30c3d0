package render

import (
	"bytes"
	"errors"
	"io"

	"github.com/corpusdoc/cxxref/internal/corpus"
)

// ErrNotImplemented is the error for a Backend that is not implemented.
// None of the backends in Backends returns it.
var ErrNotImplemented = errors.New("render: backend not implemented")

// Backend is the rendering collaborator's interface: consumes a
// read-only Corpus and writes one of the documented output formats. XML
// and Tagfile are the two formats with pinned, exact tag names;
// HTML (template-driven) and AsciiDoc (written directly, without a
// template) are best-effort renderings that exercise the same interface.
type Backend interface {
	Render(w io.Writer, c *corpus.Corpus) error
}

type xmlBackend struct{}

func (xmlBackend) Render(w io.Writer, c *corpus.Corpus) error { return WriteXML(w, c) }

type tagfileBackend struct{}

func (tagfileBackend) Render(w io.Writer, c *corpus.Corpus) error { return WriteTagfile(w, c) }

type asciidocBackend struct{}

func (asciidocBackend) Render(w io.Writer, c *corpus.Corpus) error {
	b, err := AsciiDoc(c)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

type htmlBackend struct{}

// Render writes the HTML backend's index page only; callers that need
// the full per-symbol page set should call HTML directly and write each
// page to its own file (a single io.Writer cannot carry a page set).
func (htmlBackend) Render(w io.Writer, c *corpus.Corpus) error {
	pages, err := HTML(c)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewBufferString(pages.Index))
	return err
}

// Backends lists every Backend this module ships, keyed by the name a
// config or CLI flag selects it with.
var Backends = map[string]Backend{
	"xml":      xmlBackend{},
	"tagfile":  tagfileBackend{},
	"asciidoc": asciidocBackend{},
	"html":     htmlBackend{},
}
