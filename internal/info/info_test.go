package info

import (
	"testing"

	"github.com/corpusdoc/cxxref/internal/model"
	"github.com/corpusdoc/cxxref/internal/symbolid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeastSpecificLattice(t *testing.T) {
	assert.Equal(t, Regular, LeastSpecific(Regular, Regular))
	assert.Equal(t, SeeBelow, LeastSpecific(Regular, SeeBelow))
	assert.Equal(t, Dependency, LeastSpecific(Dependency, Regular))
	assert.Equal(t, ImplementationDefined, LeastSpecific(SeeBelow, ImplementationDefined))
}

func TestCommonAttributes(t *testing.T) {
	var c Common
	assert.False(t, c.HasAttribute("deprecated"))
	c.AddAttribute("deprecated")
	c.AddAttribute("deprecated")
	assert.True(t, c.HasAttribute("deprecated"))
	assert.False(t, c.HasAttribute("nodiscard"))
}

func TestInfoSealedInterfaceDispatch(t *testing.T) {
	id := symbolid.Generate("ns::Widget", "")
	r := &RecordInfo{Common: Common{ID: id, Kind: KindRecord, Name: "Widget"}, KeyKind: KeyClass}
	f := &FunctionInfo{Common: Common{Kind: KindFunction, Name: "frob"}, Class: FunctionNormal}

	var infos []Info = []Info{r, f}
	require.Len(t, infos, 2)
	assert.Equal(t, KindRecord, KindOf(infos[0]))
	assert.Equal(t, KindFunction, KindOf(infos[1]))
	assert.Equal(t, id, ID(infos[0]))
}

func TestRecordInfoInterfaceTranches(t *testing.T) {
	pub := symbolid.Generate("ns::Widget::pub", "")
	priv := symbolid.Generate("ns::Widget::priv", "")
	r := &RecordInfo{}
	r.Public = append(r.Public, pub)
	r.Private = append(r.Private, priv)
	assert.Equal(t, []symbolid.ID{pub}, r.Interface.Public)
	assert.Equal(t, []symbolid.ID{priv}, r.Interface.Private)
}

func TestFunctionInfoNoexceptSpec(t *testing.T) {
	f := &FunctionInfo{Noexcept: NoexceptSpec{Kind: NoexceptTrue}}
	assert.Equal(t, NoexceptTrue, f.Noexcept.Kind)
	assert.Nil(t, f.Noexcept.Expr)
}

func TestEnumConstantInitializer(t *testing.T) {
	ec := &EnumConstantInfo{Initializer: model.ConstantExpr[uint64]{Value: 7, Written: "7"}}
	assert.Equal(t, uint64(7), ec.Initializer.Value)
}

func TestKindStringCoversAllKinds(t *testing.T) {
	kinds := []Kind{
		KindNamespace, KindRecord, KindFunction, KindEnum, KindEnumConstant,
		KindTypedef, KindVariable, KindField, KindFriend, KindGuide,
		KindConcept, KindNamespaceAlias, KindUsing, KindOverloads, KindSpecialization,
	}
	for _, k := range kinds {
		assert.NotEqual(t, "Invalid", k.String(), "Kind %d should have a name", k)
	}
	assert.Equal(t, "Invalid", KindInvalid.String())
}
