package render

import (
	"bytes"
	"io"

	"github.com/corpusdoc/cxxref/internal/corpus"
)

var tagfileCompoundKinds = map[string]string{
	"namespace": "namespace",
	"class":     "class",
	"struct":    "struct",
	"union":     "union",
}

var tagfileMemberKinds = map[string]string{
	"function":    "function",
	"method":      "function",
	"constructor": "function",
	"destructor":  "function",
	"enum":        "enumeration",
	"typedef":     "typedef",
	"using-alias": "typedef",
	"variable":    "variable",
	"field":       "variable",
}

func isCompoundKind(kind string) bool {
	_, ok := tagfileCompoundKinds[kind]
	return ok
}

func isMemberKind(kind string) bool {
	_, ok := tagfileMemberKinds[kind]
	return ok
}

// tagfileKind maps an internal symbolView.Kind to the member/compound kind
// string Doxygen's tagfile DTD expects.
func tagfileKind(kind string) string {
	if k, ok := tagfileCompoundKinds[kind]; ok {
		return k
	}
	if k, ok := tagfileMemberKinds[kind]; ok {
		return k
	}
	return kind
}

func anchorFile(id string) string {
	return id + ".html"
}

// Tagfile renders c as a Doxygen-compatible tagfile, so external
// documentation sets can cross-reference this corpus's symbols the same
// way they cross-reference a Doxygen-generated one.
func Tagfile(c *corpus.Corpus) ([]byte, error) {
	if err := ensureTemplates(); err != nil {
		return nil, err
	}
	root := buildSymbolView(c, c.GlobalNamespace())
	var buf bytes.Buffer
	if err := tagfileTmpl.ExecuteTemplate(&buf, tmplTagfileRoot, root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func WriteTagfile(w io.Writer, c *corpus.Corpus) error {
	b, err := Tagfile(c)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
