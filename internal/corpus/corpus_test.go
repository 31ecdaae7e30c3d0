package corpus

import (
	"testing"

	"github.com/corpusdoc/cxxref/internal/info"
	"github.com/corpusdoc/cxxref/internal/symbolid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(s string) symbolid.ID { return symbolid.Generate(s, "") }

func TestNewHasGlobalNamespace(t *testing.T) {
	c := New()
	g := c.GlobalNamespace()
	require.NotNil(t, g)
	assert.Equal(t, symbolid.Global, g.ID)
	i, ok := c.Find(symbolid.Global)
	require.True(t, ok)
	assert.Equal(t, info.KindNamespace, info.KindOf(i))
}

func TestFindMissing(t *testing.T) {
	c := New()
	_, ok := c.Find(mustID("ns::Nope"))
	assert.False(t, ok)
}

func TestGetKindMismatch(t *testing.T) {
	c := New()
	id := mustID("ns::Widget")
	c.Put(&info.FunctionInfo{Common: info.Common{ID: id, Kind: info.KindFunction, Name: "Widget"}})
	_, err := Get[*info.RecordInfo](c, id)
	require.Error(t, err)
	var kmErr *KindMismatchError
	assert.ErrorAs(t, err, &kmErr)
}

func TestGetSucceeds(t *testing.T) {
	c := New()
	id := mustID("ns::Widget")
	c.Put(&info.RecordInfo{Common: info.Common{ID: id, Kind: info.KindRecord, Name: "Widget"}})
	r, err := Get[*info.RecordInfo](c, id)
	require.NoError(t, err)
	assert.Equal(t, "Widget", r.Name)
}

func buildSmallTree(t *testing.T) *Corpus {
	t.Helper()
	c := New()
	nsID := mustID("ns")
	aID := mustID("ns::Alpha")
	bID := mustID("ns::beta")
	fID := mustID("ns::frob")

	ns := &info.NamespaceInfo{Common: info.Common{ID: nsID, Kind: info.KindNamespace, Name: "ns", Parent: symbolid.Global}}
	ns.Members = []symbolid.ID{aID, bID, fID}
	c.Put(ns)
	c.Put(&info.RecordInfo{Common: info.Common{ID: aID, Kind: info.KindRecord, Name: "Alpha", Parent: nsID}})
	c.Put(&info.RecordInfo{Common: info.Common{ID: bID, Kind: info.KindRecord, Name: "beta", Parent: nsID}})
	c.Put(&info.FunctionInfo{Common: info.Common{ID: fID, Kind: info.KindFunction, Name: "frob", Parent: nsID}})

	global := c.GlobalNamespace()
	global.Members = append(global.Members, nsID)
	c.Put(global)
	return c
}

func TestTraverseDeclarationOrder(t *testing.T) {
	c := buildSmallTree(t)
	nsID := mustID("ns")
	var names []string
	err := c.Traverse(nsID, func(i info.Info) error {
		names = append(names, i.CommonInfo().Name)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "beta", "frob"}, names)
}

func TestOrderedTraverseGroupsByKindThenName(t *testing.T) {
	c := buildSmallTree(t)
	nsID := mustID("ns")
	var names []string
	err := c.OrderedTraverse(nsID, func(i info.Info) error {
		names = append(names, i.CommonInfo().Name)
		return nil
	})
	require.NoError(t, err)
	// Record group (case-insensitive: Alpha, beta) before Function group (frob).
	assert.Equal(t, []string{"Alpha", "beta", "frob"}, names)
}

func TestQualifiedNameSkipsGlobalAndAnonymous(t *testing.T) {
	c := buildSmallTree(t)
	aID := mustID("ns::Alpha")
	a, ok := c.Find(aID)
	require.True(t, ok)
	assert.Equal(t, "ns::Alpha", c.QualifiedName(a))
}

func TestQualifiedNameAnonymousNamespaceSkipped(t *testing.T) {
	c := New()
	anonID := mustID("(anon)")
	leafID := mustID("(anon)::Leaf")
	anon := &info.NamespaceInfo{Common: info.Common{ID: anonID, Kind: info.KindNamespace, Parent: symbolid.Global}, IsAnonymous: true}
	c.Put(anon)
	c.Put(&info.RecordInfo{Common: info.Common{ID: leafID, Kind: info.KindRecord, Name: "Leaf", Parent: anonID}})
	leaf, _ := c.Find(leafID)
	assert.Equal(t, "Leaf", c.QualifiedName(leaf))
}

func TestBuildLegibleNamesDisambiguatesCollisions(t *testing.T) {
	c := New()
	nsID := mustID("ns")
	f1 := mustID("ns::Foo#1")
	f2 := mustID("ns::Foo#2")
	ns := &info.NamespaceInfo{Common: info.Common{ID: nsID, Kind: info.KindNamespace, Name: "ns", Parent: symbolid.Global}}
	ns.Members = []symbolid.ID{f1, f2}
	c.Put(ns)
	c.Put(&info.RecordInfo{Common: info.Common{ID: f1, Kind: info.KindRecord, Name: "Foo", Parent: nsID}})
	c.Put(&info.RecordInfo{Common: info.Common{ID: f2, Kind: info.KindRecord, Name: "foo", Parent: nsID}})
	global := c.GlobalNamespace()
	global.Members = append(global.Members, nsID)
	c.Put(global)

	ln := BuildLegibleNames(c, "-")
	assert.Equal(t, "ns-Foo", ln.Name(f1))
	assert.Equal(t, "ns-foo2", ln.Name(f2))
}

func TestSafeBaseOperatorFunction(t *testing.T) {
	fn := &info.FunctionInfo{Common: info.Common{Name: "operator+"}, OperatorKind: "+"}
	assert.Equal(t, "operator_plus", safeBase(fn))
}
