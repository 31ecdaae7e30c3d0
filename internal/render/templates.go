package render

import (
	"embed"
	"fmt"
	"sync"
	"text/template"
)

const (
	tmplXMLRoot      = "root"
	tmplXMLNamespace = "namespace"
	tmplXMLRecord    = "record"
	tmplXMLFunction  = "function"
	tmplXMLEnum      = "enum"
	tmplXMLTypedef   = "typedef"
	tmplXMLVariable  = "variable"
	tmplXMLDoc       = "doc"

	tmplTagfileRoot     = "tagfileRoot"
	tmplTagfileCompound = "tagfileCompound"
	tmplTagfileMember   = "tagfileMember"

	tmplHTMLPage  = "htmlPage"
	tmplHTMLIndex = "htmlIndex"
)

const templatePattern = "templates/*.gtpl"

//go:embed templates/*.gtpl
var templatesFS embed.FS

var (
	xmlTmpl     *template.Template
	tagfileTmpl *template.Template
	htmlTmpl    *template.Template

	tmplInitOnce sync.Once
	tmplInitErr  error
)

func requireTemplates(t *template.Template, names ...string) error {
	for _, name := range names {
		if t.Lookup(name) == nil {
			return fmt.Errorf("render: required template %q not found", name)
		}
	}
	return nil
}

// ensureTemplates parses and validates the embedded template set exactly
// once, guarding the ParseFS call with a sync.Once.
func ensureTemplates() error {
	tmplInitOnce.Do(func() {
		t, err := template.New(tmplXMLRoot).Funcs(templateFuncs).ParseFS(templatesFS, templatePattern)
		if err != nil {
			tmplInitErr = err
			return
		}
		if err := requireTemplates(t, tmplXMLRoot, tmplXMLNamespace, tmplXMLRecord, tmplXMLFunction, tmplXMLEnum, tmplXMLTypedef, tmplXMLVariable, tmplXMLDoc); err != nil {
			tmplInitErr = err
			return
		}
		if err := requireTemplates(t, tmplTagfileRoot, tmplTagfileCompound, tmplTagfileMember); err != nil {
			tmplInitErr = err
			return
		}
		if err := requireTemplates(t, tmplHTMLPage, tmplHTMLIndex); err != nil {
			tmplInitErr = err
			return
		}
		xmlTmpl = t
		tagfileTmpl = t
		htmlTmpl = t
	})
	return tmplInitErr
}

var templateFuncs = template.FuncMap{
	"xmlEscape":      xmlEscapeString,
	"isCompoundKind": isCompoundKind,
	"isMemberKind":   isMemberKind,
	"tagfileKind":    tagfileKind,
	"anchorFile":     anchorFile,
	"htmlFile":       htmlFile,
}
