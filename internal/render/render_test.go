package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpusdoc/cxxref/internal/corpus"
	"github.com/corpusdoc/cxxref/internal/doc"
	"github.com/corpusdoc/cxxref/internal/info"
	"github.com/corpusdoc/cxxref/internal/model"
	"github.com/corpusdoc/cxxref/internal/symbolid"
)

func buildTestCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()
	c := corpus.New()

	nsID := symbolid.Generate("ns", "")
	ns := &info.NamespaceInfo{Common: info.Common{ID: nsID, Kind: info.KindNamespace, Name: "ns", Parent: symbolid.Global}}
	c.Put(ns)
	c.GlobalNamespace().Members = append(c.GlobalNamespace().Members, nsID)

	fnID := symbolid.Generate("ns::frob()", "")
	fn := &info.FunctionInfo{
		Common: info.Common{
			ID:     fnID,
			Kind:   info.KindFunction,
			Name:   "frob",
			Parent: nsID,
			Access: info.AccessPublic,
			Doc: &doc.Comment{
				Brief: &doc.Brief{Children: []doc.Inline{&doc.Text{Text: "Frobs the widget."}}},
			},
		},
		Return: &model.NamedType{Name: &model.IdentifierName{Ident: "void"}},
		Params: []info.Param{
			{Name: "count", Type: &model.NamedType{Name: &model.IdentifierName{Ident: "int"}}},
		},
	}
	c.Put(fn)
	ns.Members = append(ns.Members, fnID)

	return c
}

func TestXMLRendersNamespaceAndFunction(t *testing.T) {
	c := buildTestCorpus(t)
	out, err := XML(c)
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, `<namespace`)
	assert.Contains(t, s, `name="ns"`)
	assert.Contains(t, s, `<function`)
	assert.Contains(t, s, `name="frob"`)
	assert.Contains(t, s, "Frobs the widget.")
	assert.Contains(t, s, "<type>int</type>")
}

func TestTagfileRendersCompoundAndMember(t *testing.T) {
	c := buildTestCorpus(t)
	out, err := Tagfile(c)
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, `<compound kind="namespace">`)
	assert.Contains(t, s, `<name>ns</name>`)
	assert.Contains(t, s, `<member kind="function">`)
}

func TestHTMLRendersIndexAndPage(t *testing.T) {
	c := buildTestCorpus(t)
	pages, err := HTML(c)
	require.NoError(t, err)
	assert.Contains(t, pages.Index, "ns")
	found := false
	for _, page := range pages.Pages {
		if strings.Contains(page, "frob") {
			found = true
		}
	}
	assert.True(t, found, "expected a page mentioning frob")
}

func TestAsciiDocRendersHeadings(t *testing.T) {
	c := buildTestCorpus(t)
	out, err := AsciiDoc(c)
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "namespace ns")
	assert.Contains(t, s, "Frobs the widget.")
}
