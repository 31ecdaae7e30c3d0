package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpusdoc/cxxref/internal/config"
	"github.com/corpusdoc/cxxref/internal/corpus"
	"github.com/corpusdoc/cxxref/internal/frontend"
	"github.com/corpusdoc/cxxref/internal/info"
	"github.com/corpusdoc/cxxref/internal/model"
	"github.com/corpusdoc/cxxref/internal/symbolid"
)

func newTestExtractor(cfg *config.Config) (*Extractor, *corpus.Corpus) {
	if cfg == nil {
		cfg = config.Default()
	}
	c := corpus.New()
	return New(cfg, c), c
}

func TestVisitEmptyTranslationUnitTouchesNothing(t *testing.T) {
	e, c := newTestExtractor(nil)
	tu := &frontend.Fake{K: frontend.KindTranslationUnit}
	e.VisitTranslationUnit(tu)
	assert.Equal(t, 1, c.Len()) // just the global namespace
}

func TestVisitNamespaceAndFunction(t *testing.T) {
	e, c := newTestExtractor(nil)
	fn := &frontend.Fake{
		K:           frontend.KindFunction,
		NameStr:     "frob",
		AccessV:     frontend.AccessPublic,
		Fp:          "ns::frob()",
		Comment:     "Frobs the widget.",
		HasComment:  true,
		QualifiedStr: "ns::frob",
	}
	ns := &frontend.Fake{
		K:            frontend.KindNamespace,
		NameStr:      "ns",
		AccessV:      frontend.AccessPublic,
		Fp:           "ns",
		Kids:         []frontend.Decl{fn},
		QualifiedStr: "ns",
	}
	tu := &frontend.Fake{K: frontend.KindTranslationUnit, Kids: []frontend.Decl{ns}}

	e.VisitTranslationUnit(tu)

	nsID := e.identify(ns)
	nsInfo, err := corpus.Get[*info.NamespaceInfo](c, nsID)
	require.NoError(t, err)
	require.Len(t, nsInfo.Members, 1)

	fnID := e.identify(fn)
	fnInfo, err := corpus.Get[*info.FunctionInfo](c, fnID)
	require.NoError(t, err)
	assert.Equal(t, "frob", fnInfo.Name)
	assert.Equal(t, info.Regular, fnInfo.Extraction)
	require.NotNil(t, fnInfo.Doc)
	require.NotNil(t, fnInfo.Doc.Brief)
	assert.Equal(t, nsID, fnInfo.Parent)
}

func TestPrivateMemberFilteredByDefault(t *testing.T) {
	e, c := newTestExtractor(nil)
	priv := &frontend.Fake{
		K:            frontend.KindField,
		NameStr:      "secret",
		AccessV:      frontend.AccessPrivate,
		Fp:           "C::secret",
		QualifiedStr: "C::secret",
	}
	cls := &frontend.Fake{
		K:            frontend.KindClass,
		NameStr:      "C",
		AccessV:      frontend.AccessPublic,
		Fp:           "C",
		Kids:         []frontend.Decl{priv},
		QualifiedStr: "C",
	}
	e.VisitTranslationUnit(&frontend.Fake{K: frontend.KindTranslationUnit, Kids: []frontend.Decl{cls}})

	clsID := e.identify(cls)
	clsInfo, err := corpus.Get[*info.RecordInfo](c, clsID)
	require.NoError(t, err)
	assert.Empty(t, clsInfo.Members)

	privID := e.identify(priv)
	_, ok := c.Find(privID)
	assert.False(t, ok, "private field should not be extracted without extract-private")
}

func TestPrivateMemberExtractedWhenConfigured(t *testing.T) {
	cfg := config.Default()
	cfg.ExtractPrivate = true
	e, c := newTestExtractor(cfg)
	priv := &frontend.Fake{
		K:            frontend.KindField,
		NameStr:      "secret",
		AccessV:      frontend.AccessPrivate,
		Fp:           "C::secret",
		QualifiedStr: "C::secret",
	}
	cls := &frontend.Fake{
		K:            frontend.KindClass,
		NameStr:      "C",
		AccessV:      frontend.AccessPublic,
		Fp:           "C",
		Kids:         []frontend.Decl{priv},
		QualifiedStr: "C",
	}
	e.VisitTranslationUnit(&frontend.Fake{K: frontend.KindTranslationUnit, Kids: []frontend.Decl{cls}})

	privID := e.identify(priv)
	privInfo, err := corpus.Get[*info.FieldInfo](c, privID)
	require.NoError(t, err)
	assert.Equal(t, info.AccessPrivate, privInfo.Access)

	clsInfo, err := corpus.Get[*info.RecordInfo](c, e.identify(cls))
	require.NoError(t, err)
	assert.Contains(t, clsInfo.Private, privID)
}

func TestDocMergeAcrossRedeclarations(t *testing.T) {
	e, c := newTestExtractor(nil)
	decl := &frontend.Fake{
		K:            frontend.KindFunction,
		NameStr:      "bar",
		AccessV:      frontend.AccessPublic,
		Fp:           "ns::bar()",
		QualifiedStr: "ns::bar",
	}
	def := &frontend.Fake{
		K:            frontend.KindFunction,
		NameStr:      "bar",
		AccessV:      frontend.AccessPublic,
		Fp:           "ns::bar()",
		Comment:      "Does the bar thing.",
		HasComment:   true,
		QualifiedStr: "ns::bar",
	}
	ns1 := &frontend.Fake{K: frontend.KindNamespace, NameStr: "ns", AccessV: frontend.AccessPublic, Fp: "ns", QualifiedStr: "ns", Kids: []frontend.Decl{decl}}
	ns2 := &frontend.Fake{K: frontend.KindNamespace, NameStr: "ns", AccessV: frontend.AccessPublic, Fp: "ns", QualifiedStr: "ns", Kids: []frontend.Decl{def}}

	e.VisitTranslationUnit(&frontend.Fake{K: frontend.KindTranslationUnit, Kids: []frontend.Decl{ns1}})
	e.VisitTranslationUnit(&frontend.Fake{K: frontend.KindTranslationUnit, Kids: []frontend.Decl{ns2}})

	fnInfo, err := corpus.Get[*info.FunctionInfo](c, e.identify(decl))
	require.NoError(t, err)
	require.NotNil(t, fnInfo.Doc)
	require.NotNil(t, fnInfo.Doc.Brief)
	assert.Len(t, fnInfo.Loc, 0) // Fake declarations carry no Locations in this test
}

func TestImplementationDefinedPropagatesToMembers(t *testing.T) {
	cfg := config.Default()
	cfg.ImplementationDefined = []string{"detail"}
	e, c := newTestExtractor(cfg)
	inner := &frontend.Fake{
		K:            frontend.KindFunction,
		NameStr:      "helper",
		AccessV:      frontend.AccessPublic,
		Fp:           "detail::helper()",
		QualifiedStr: "detail::helper",
	}
	ns := &frontend.Fake{
		K:            frontend.KindNamespace,
		NameStr:      "detail",
		AccessV:      frontend.AccessPublic,
		Fp:           "detail",
		QualifiedStr: "detail",
		Kids:         []frontend.Decl{inner},
	}
	e.VisitTranslationUnit(&frontend.Fake{K: frontend.KindTranslationUnit, Kids: []frontend.Decl{ns}})

	nsInfo, err := corpus.Get[*info.NamespaceInfo](c, e.identify(ns))
	require.NoError(t, err)
	assert.Equal(t, info.ImplementationDefined, nsInfo.Extraction)

	fnInfo, err := corpus.Get[*info.FunctionInfo](c, e.identify(inner))
	require.NoError(t, err)
	assert.Equal(t, info.ImplementationDefined, fnInfo.Extraction)
}

func TestSFINAELiftingPromotesEnableIf(t *testing.T) {
	cfg := config.Default()
	cfg.SFINAE = true
	e, c := newTestExtractor(cfg)
	fn := &frontend.Fake{
		K:            frontend.KindFunction,
		NameStr:      "only_integral",
		AccessV:      frontend.AccessPublic,
		Fp:           "ns::only_integral<T>()",
		QualifiedStr: "ns::only_integral",
		TParams: []frontend.TemplateParam{
			{Name: "T", IsTypeParam: true},
			{
				Name:           "",
				IsTypeParam:    true,
				HasDefault:     true,
				DefaultWritten: "std::enable_if_t<std::is_integral<T>::value>",
			},
		},
	}
	ns := &frontend.Fake{K: frontend.KindNamespace, NameStr: "ns", AccessV: frontend.AccessPublic, Fp: "ns", QualifiedStr: "ns", Kids: []frontend.Decl{fn}}
	e.VisitTranslationUnit(&frontend.Fake{K: frontend.KindTranslationUnit, Kids: []frontend.Decl{ns}})

	fnInfo, err := corpus.Get[*info.FunctionInfo](c, e.identify(fn))
	require.NoError(t, err)
	require.Len(t, fnInfo.Template.Params, 1, "the SFINAE helper parameter should have been lifted away")
	require.NotNil(t, fnInfo.Requires)
	assert.Equal(t, "std::is_integral<T>::value", fnInfo.Requires.Written)
}

func TestIdentifyIsStableAcrossCalls(t *testing.T) {
	e, _ := newTestExtractor(nil)
	d := &frontend.Fake{K: frontend.KindFunction, NameStr: "f", Fp: "ns::f()"}
	a := e.identify(d)
	b := e.identify(d)
	assert.Equal(t, a, b)
	assert.True(t, a.IsValid())
}

func TestOverloadedFunctionsGroupUnderOverloadSet(t *testing.T) {
	e, c := newTestExtractor(nil)
	a := &frontend.Fake{K: frontend.KindFunction, NameStr: "frob", Fp: "ns::frob(int)", QualifiedStr: "ns::frob"}
	b := &frontend.Fake{K: frontend.KindFunction, NameStr: "frob", Fp: "ns::frob(double)", QualifiedStr: "ns::frob"}
	ns := &frontend.Fake{K: frontend.KindNamespace, NameStr: "ns", Fp: "ns", Kids: []frontend.Decl{a, b}, QualifiedStr: "ns"}
	tu := &frontend.Fake{K: frontend.KindTranslationUnit, Kids: []frontend.Decl{ns}}

	e.VisitTranslationUnit(tu)

	nsID := e.identify(ns)
	nsInfo, err := corpus.Get[*info.NamespaceInfo](c, nsID)
	require.NoError(t, err)
	require.Len(t, nsInfo.Members, 1)

	setID := symbolid.OverloadSetID(nsID, "frob")
	assert.Equal(t, setID, nsInfo.Members[0])

	set, err := corpus.Get[*info.OverloadsInfo](c, setID)
	require.NoError(t, err)
	assert.Len(t, set.Members, 2)
}

func TestNamespaceChainIsAncestorsLeafFirst(t *testing.T) {
	e, c := newTestExtractor(nil)
	field := &frontend.Fake{
		K:            frontend.KindField,
		NameStr:      "value",
		AccessV:      frontend.AccessPublic,
		Fp:           "outer::inner::value",
		QualifiedStr: "outer::inner::value",
	}
	inner := &frontend.Fake{
		K:            frontend.KindClass,
		NameStr:      "inner",
		AccessV:      frontend.AccessPublic,
		Fp:           "outer::inner",
		Kids:         []frontend.Decl{field},
		QualifiedStr: "outer::inner",
	}
	outer := &frontend.Fake{
		K:            frontend.KindNamespace,
		NameStr:      "outer",
		Fp:           "outer",
		Kids:         []frontend.Decl{inner},
		QualifiedStr: "outer",
	}
	tu := &frontend.Fake{K: frontend.KindTranslationUnit, Kids: []frontend.Decl{outer}}

	e.VisitTranslationUnit(tu)

	outerID := e.identify(outer)
	innerID := e.identify(inner)
	fieldID := e.identify(field)

	innerInfo, err := corpus.Get[*info.RecordInfo](c, innerID)
	require.NoError(t, err)
	assert.Equal(t, []symbolid.ID{outerID}, innerInfo.Namespace)

	fieldInfo, err := corpus.Get[*info.FieldInfo](c, fieldID)
	require.NoError(t, err)
	assert.Equal(t, []symbolid.ID{innerID, outerID}, fieldInfo.Namespace)
}

func TestRecordCarriesBasesAndFinal(t *testing.T) {
	e, c := newTestExtractor(nil)
	baseDecl := &frontend.Fake{K: frontend.KindClass, NameStr: "Base", Fp: "Base", QualifiedStr: "Base"}
	derived := &frontend.Fake{
		K:            frontend.KindClass,
		NameStr:      "Derived",
		Fp:           "Derived",
		QualifiedStr: "Derived",
		Final:        true,
		BasesV: []frontend.Base{
			{
				Type:      &frontend.FakeType{K: frontend.TRefNamed, Spelling: "Base", Decl: baseDecl},
				Access:    frontend.AccessPublic,
				IsVirtual: true,
			},
		},
	}
	tu := &frontend.Fake{K: frontend.KindTranslationUnit, Kids: []frontend.Decl{derived}}

	e.VisitTranslationUnit(tu)

	derivedID := e.identify(derived)
	derivedInfo, err := corpus.Get[*info.RecordInfo](c, derivedID)
	require.NoError(t, err)
	assert.True(t, derivedInfo.IsFinal)
	require.Len(t, derivedInfo.Bases, 1)
	assert.Equal(t, info.AccessPublic, derivedInfo.Bases[0].Access)
	assert.True(t, derivedInfo.Bases[0].IsVirtual)
}

func TestFunctionCarriesSpecifierFlags(t *testing.T) {
	e, c := newTestExtractor(nil)
	fn := &frontend.Fake{
		K:            frontend.KindMethod,
		NameStr:      "frob",
		AccessV:      frontend.AccessPublic,
		Fp:           "ns::frob()",
		QualifiedStr: "ns::frob",
		ConstMethod:  true,
		Virtual:      true,
		Override:     true,
		Pure:         false,
		Deleted:      false,
		Defaulted:    true,
		RefQualV:     frontend.RefLValue,
		Operator:     "",
		NoexceptV:    frontend.NoexceptSpec{Kind: frontend.NoexceptTrue},
	}
	ns := &frontend.Fake{
		K: frontend.KindNamespace, NameStr: "ns", Fp: "ns",
		Kids: []frontend.Decl{fn}, QualifiedStr: "ns",
	}
	tu := &frontend.Fake{K: frontend.KindTranslationUnit, Kids: []frontend.Decl{ns}}

	e.VisitTranslationUnit(tu)

	fnID := e.identify(fn)
	fnInfo, err := corpus.Get[*info.FunctionInfo](c, fnID)
	require.NoError(t, err)
	assert.True(t, fnInfo.IsConst)
	assert.True(t, fnInfo.IsVirtual)
	assert.True(t, fnInfo.IsOverride)
	assert.True(t, fnInfo.IsDefaulted)
	assert.Equal(t, model.RefLValue, fnInfo.RefQual)
	assert.Equal(t, info.NoexceptTrue, fnInfo.Noexcept.Kind)
}

func TestVariableAndFieldCarrySpecifierFlags(t *testing.T) {
	e, c := newTestExtractor(nil)
	v := &frontend.Fake{
		K: frontend.KindVariable, NameStr: "count", Fp: "ns::count",
		QualifiedStr: "ns::count", Constexpr: true, InlineSpec: true,
	}
	bitWidth := frontend.ConstExpr{Written: "4", HasValue: true, Value: 4}
	fl := &frontend.Fake{
		K: frontend.KindField, NameStr: "flags", Fp: "ns::S::flags",
		QualifiedStr: "ns::S::flags", BitfieldFlag: true, HasBitfieldW: true, BitfieldW: bitWidth,
		Mutable: true,
	}
	ns := &frontend.Fake{
		K: frontend.KindNamespace, NameStr: "ns", Fp: "ns",
		Kids: []frontend.Decl{v, fl}, QualifiedStr: "ns",
	}
	tu := &frontend.Fake{K: frontend.KindTranslationUnit, Kids: []frontend.Decl{ns}}

	e.VisitTranslationUnit(tu)

	vID := e.identify(v)
	vInfo, err := corpus.Get[*info.VariableInfo](c, vID)
	require.NoError(t, err)
	assert.True(t, vInfo.IsConstexpr)
	assert.True(t, vInfo.IsInline)

	flID := e.identify(fl)
	flInfo, err := corpus.Get[*info.FieldInfo](c, flID)
	require.NoError(t, err)
	assert.True(t, flInfo.IsBitfield)
	assert.True(t, flInfo.IsMutable)
	require.NotNil(t, flInfo.BitfieldWidth)
	assert.Equal(t, "4", flInfo.BitfieldWidth.Written)
}

func TestExtractPrivateVirtualOverridesExtractPrivate(t *testing.T) {
	method := &frontend.Fake{
		K: frontend.KindMethod, NameStr: "impl", AccessV: frontend.AccessPrivate,
		Fp: "S::impl()", QualifiedStr: "S::impl", Virtual: true,
	}
	record := &frontend.Fake{
		K: frontend.KindClass, NameStr: "S", Fp: "S",
		Kids: []frontend.Decl{method}, QualifiedStr: "S",
	}
	tu := &frontend.Fake{K: frontend.KindTranslationUnit, Kids: []frontend.Decl{record}}

	cfg := config.Default()
	cfg.ExtractPrivateVirtual = true
	e, c := newTestExtractor(cfg)
	e.VisitTranslationUnit(tu)

	methodID := e.identify(method)
	_, err := corpus.Get[*info.FunctionInfo](c, methodID)
	require.NoError(t, err)
}
