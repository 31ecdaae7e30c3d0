package render

import (
	"strings"

	"github.com/corpusdoc/cxxref/internal/corpus"
)

// AsciiDoc renders c as a single-file AsciiDoc document. This is a
// best-effort rendering, not a full parity output: it exists so a corpus
// can be dropped into an Antora/Asciidoctor site without a separate XML
// toolchain, not to reproduce every cross-reference and admonition the
// XML/tagfile renderers carry.
func AsciiDoc(c *corpus.Corpus) ([]byte, error) {
	root := buildSymbolView(c, c.GlobalNamespace())
	var b strings.Builder
	for _, child := range root.Children {
		writeAsciiDoc(&b, child, 1)
	}
	return []byte(b.String()), nil
}

func writeAsciiDoc(b *strings.Builder, v symbolView, depth int) {
	b.WriteString(strings.Repeat("=", depth+1))
	b.WriteByte(' ')
	b.WriteString(v.Kind)
	b.WriteByte(' ')
	b.WriteString(v.Qualified)
	b.WriteString("\n\n")

	if v.Doc.Brief != "" {
		b.WriteString(v.Doc.Brief)
		b.WriteString("\n\n")
	}
	if v.Doc.Detail != "" {
		b.WriteString(v.Doc.Detail)
		b.WriteString("\n\n")
	}
	if v.Type != "" {
		b.WriteString("[source,cpp]\n----\n")
		b.WriteString(v.Type)
		b.WriteString(" ")
		b.WriteString(v.Name)
		b.WriteString("\n----\n\n")
	}
	if v.Return != "" {
		b.WriteString("[source,cpp]\n----\n")
		b.WriteString(v.Return)
		b.WriteString(" ")
		b.WriteString(v.Name)
		b.WriteString("(")
		for i, p := range v.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.Type)
			if p.Name != "" {
				b.WriteString(" ")
				b.WriteString(p.Name)
			}
		}
		b.WriteString(")\n----\n\n")
	}
	for _, p := range v.Doc.Params {
		b.WriteString("* `")
		b.WriteString(p.Name)
		b.WriteString("` - ")
		b.WriteString(p.Text)
		b.WriteString("\n")
	}
	if len(v.Doc.Returns) > 0 {
		b.WriteString("\nReturns:: ")
		b.WriteString(strings.Join(v.Doc.Returns, " "))
		b.WriteString("\n\n")
	}

	for _, child := range v.Children {
		writeAsciiDoc(b, child, depth+1)
	}
}
