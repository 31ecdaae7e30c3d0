package corpus

import (
	"testing"

	"github.com/corpusdoc/cxxref/internal/info"
	"github.com/corpusdoc/cxxref/internal/symbolid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeUnionsNamespaceMembersAcrossFragments(t *testing.T) {
	nsID := mustID("ns")
	aID := mustID("ns::A")
	bID := mustID("ns::B")

	fragA := New()
	nsA := &info.NamespaceInfo{Common: info.Common{ID: nsID, Kind: info.KindNamespace, Name: "ns", Parent: symbolid.Global}}
	nsA.Members = []symbolid.ID{aID}
	fragA.Put(nsA)
	fragA.Put(&info.RecordInfo{Common: info.Common{ID: aID, Kind: info.KindRecord, Name: "A", Parent: nsID}})
	fragA.GlobalNamespace().Members = append(fragA.GlobalNamespace().Members, nsID)

	fragB := New()
	nsB := &info.NamespaceInfo{Common: info.Common{ID: nsID, Kind: info.KindNamespace, Name: "ns", Parent: symbolid.Global}}
	nsB.Members = []symbolid.ID{bID}
	fragB.Put(nsB)
	fragB.Put(&info.RecordInfo{Common: info.Common{ID: bID, Kind: info.KindRecord, Name: "B", Parent: nsID}})
	fragB.GlobalNamespace().Members = append(fragB.GlobalNamespace().Members, nsID)

	final := New()
	Merge(final, fragA)
	Merge(final, fragB)

	require.Len(t, final.GlobalNamespace().Members, 1)
	ns, err := Get[*info.NamespaceInfo](final, nsID)
	require.NoError(t, err)
	assert.Equal(t, []symbolid.ID{aID, bID}, ns.Members)
}

func TestMergeIsIdempotent(t *testing.T) {
	id := mustID("ns::frob")
	frag := New()
	frag.Put(&info.FunctionInfo{Common: info.Common{ID: id, Kind: info.KindFunction, Name: "frob", Parent: symbolid.Global}})

	final := New()
	Merge(final, frag)
	firstLen := final.Len()
	Merge(final, frag)
	assert.Equal(t, firstLen, final.Len())
}

func TestMergePrefersFirstDefLocation(t *testing.T) {
	id := mustID("ns::X")
	defA := info.Location{FullPath: "a.cpp", LineNumber: 1}
	defB := info.Location{FullPath: "b.cpp", LineNumber: 2}

	fragA := New()
	fragA.Put(&info.RecordInfo{Common: info.Common{ID: id, Kind: info.KindRecord, Name: "X", DefLoc: &defA}})
	fragB := New()
	fragB.Put(&info.RecordInfo{Common: info.Common{ID: id, Kind: info.KindRecord, Name: "X", DefLoc: &defB}})

	final := New()
	Merge(final, fragA)
	Merge(final, fragB)

	r, err := Get[*info.RecordInfo](final, id)
	require.NoError(t, err)
	require.NotNil(t, r.DefLoc)
	assert.Equal(t, "a.cpp", r.DefLoc.FullPath)
}

func TestMergeUnionsAttributesAndDocFirstWins(t *testing.T) {
	id := mustID("ns::Y")
	fragA := New()
	a := &info.RecordInfo{Common: info.Common{ID: id, Kind: info.KindRecord, Name: "Y"}}
	a.AddAttribute("deprecated")
	fragA.Put(a)

	fragB := New()
	b := &info.RecordInfo{Common: info.Common{ID: id, Kind: info.KindRecord, Name: "Y"}}
	b.AddAttribute("nodiscard")
	fragB.Put(b)

	final := New()
	Merge(final, fragA)
	Merge(final, fragB)

	r, err := Get[*info.RecordInfo](final, id)
	require.NoError(t, err)
	assert.True(t, r.HasAttribute("deprecated"))
	assert.True(t, r.HasAttribute("nodiscard"))
}

func TestMergeExtractionModeTakesLeastSpecific(t *testing.T) {
	id := mustID("ns::Z")
	fragA := New()
	fragA.Put(&info.RecordInfo{Common: info.Common{ID: id, Kind: info.KindRecord, Name: "Z", Extraction: info.Regular}})
	fragB := New()
	fragB.Put(&info.RecordInfo{Common: info.Common{ID: id, Kind: info.KindRecord, Name: "Z", Extraction: info.Dependency}})

	final := New()
	Merge(final, fragA)
	Merge(final, fragB)

	r, err := Get[*info.RecordInfo](final, id)
	require.NoError(t, err)
	assert.Equal(t, info.Dependency, r.Extraction)
}
