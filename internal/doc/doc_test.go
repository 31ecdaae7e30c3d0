package doc

import (
	"testing"

	"github.com/corpusdoc/cxxref/internal/symbolid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver map[string][20]byte

func (f fakeResolver) Resolve(name string) ([20]byte, bool) {
	id, ok := f[name]
	return id, ok
}

func TestAssembleBriefPromotion(t *testing.T) {
	c := Assemble("Computes the frobnication of x.\n\nMore detail follows.", nil)
	require.NotNil(t, c.Brief)
	require.Len(t, c.Brief.Children, 1)
	text, ok := c.Brief.Children[0].(*Text)
	require.True(t, ok)
	assert.Equal(t, "Computes the frobnication of x.", text.Text)
	require.Len(t, c.Document, 1)
	_, ok = c.Document[0].(*Paragraph)
	assert.True(t, ok)
}

func TestAssembleExplicitBriefSuppressesPromotion(t *testing.T) {
	c := Assemble("@brief Short summary.\n\nLong paragraph one.\n\nLong paragraph two.", nil)
	require.NotNil(t, c.Brief)
	text := c.Brief.Children[0].(*Text)
	assert.Equal(t, "Short summary.", text.Text)
	assert.Len(t, c.Document, 2)
}

func TestAssembleParamCommands(t *testing.T) {
	c := Assemble("@brief Does a thing.\n@param[in] x the input value\n@param y the other value\n@returns true on success", nil)
	require.Len(t, c.Params, 2)
	assert.Equal(t, "x", c.Params[0].Name)
	assert.Equal(t, "in", c.Params[0].Direction)
	assert.Equal(t, "y", c.Params[1].Name)
	assert.Equal(t, "", c.Params[1].Direction)
	require.Len(t, c.Returns, 1)
}

func TestAssembleTParamThrowsPrePost(t *testing.T) {
	c := Assemble(
		"@tparam T the element type\n@throws std::bad_alloc on allocation failure\n@pre x is non-null\n@post the result is sorted",
		nil,
	)
	require.Len(t, c.TParams, 1)
	assert.Equal(t, "T", c.TParams[0].Name)
	require.Len(t, c.Throws, 1)
	assert.Equal(t, "std::bad_alloc", c.Throws[0].Exception)
	require.Len(t, c.Preconditions, 1)
	require.Len(t, c.Postconditions, 1)
}

func TestAssembleSeeRelatesRelated(t *testing.T) {
	c := Assemble("@see other_function\n@relates ns::Widget\n@related ns::Gadget", nil)
	require.Len(t, c.Sees, 1)
	assert.Equal(t, []string{"ns::Widget"}, c.Relates)
	assert.Equal(t, []string{"ns::Gadget"}, c.Related)
}

func TestAssembleRefResolution(t *testing.T) {
	var id [20]byte
	id[0] = 0x42
	r := fakeResolver{"ns::Widget": id}

	c := Assemble("See @ref ns::Widget for details.", r)
	require.Len(t, c.Document, 1)
	p := c.Document[0].(*Paragraph)
	var found *Reference
	for _, in := range p.Children {
		if ref, ok := in.(*Reference); ok {
			found = ref
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "ns::Widget", found.Text)
	assert.Equal(t, id[:], found.ID[:])
}

func TestAssembleUnresolvedRefKeepsZeroID(t *testing.T) {
	c := Assemble("See @ref ns::Missing for details.", fakeResolver{})
	p := c.Document[0].(*Paragraph)
	var found *Reference
	for _, in := range p.Children {
		if ref, ok := in.(*Reference); ok {
			found = ref
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, symbolid.Invalid, found.ID)
}

func TestAssembleCopyDetails(t *testing.T) {
	c := Assemble("@copydetails ns::Base::method", nil)
	p := c.Document[0].(*Paragraph)
	_, ok := p.Children[0].(*CopyDetails)
	require.True(t, ok)
}

func TestMarkdownListAndCode(t *testing.T) {
	c := Assemble("- one\n- two\n\n```cpp\nint x = 1;\n```", nil)
	require.Len(t, c.Document, 2)
	list, ok := c.Document[0].(*List)
	require.True(t, ok)
	assert.Len(t, list.Items, 2)
	code, ok := c.Document[1].(*Code)
	require.True(t, ok)
	assert.Equal(t, "cpp", code.Language)
}

func TestStripCommonMargin(t *testing.T) {
	got := stripCommonMargin("  foo\n  bar\n\n  baz")
	assert.Equal(t, "foo\nbar\n\nbaz", got)
}

func TestSplitCommandsContinuationLines(t *testing.T) {
	_, commands := splitCommands("@param x first line\nsecond line\n\n@returns y")
	require.Len(t, commands, 2)
	assert.Equal(t, "first line\nsecond line", commands[0].Body)
}
