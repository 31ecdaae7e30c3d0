package frontend

// Fake is an in-memory Decl used to build declaration trees programmatically
// in tests, standing in for a real compiler frontend; driving an actual
// frontend is explicitly out of scope for this module.
type Fake struct {
	K         Kind
	NameStr   string
	AccessV   Access
	Locs      []Location
	Fp        string
	Comment   string
	HasComment bool
	Implicit  bool
	Anonymous bool
	LocalClass bool
	FileStatic bool
	Kids      []Decl

	TParams []TemplateParam
	TArgs   []TemplateArg
	PrimaryDecl Decl

	TypeV    *FakeType
	ReturnsV *FakeType
	ParamsV  []Param

	Requires      string
	HasRequires   bool
	QualifiedStr  string

	BasesV      []Base
	Final       bool
	ConstMethod    bool
	VolatileMethod bool
	RefQualV       RefQualifier

	StorageV    StorageClass
	Constexpr   bool
	Consteval   bool
	Constinit   bool
	InlineSpec  bool
	ThreadLocal bool

	Virtual  bool
	Override bool
	Pure     bool
	Defaulted bool
	Deleted   bool
	Variadic  bool
	Operator  string

	NoexceptV NoexceptSpec
	ExplicitV ExplicitSpec

	BitfieldFlag  bool
	BitfieldW     ConstExpr
	HasBitfieldW  bool
	Mutable       bool
	NoUniqueAddr  bool
}

var _ Decl = (*Fake)(nil)

func (f *Fake) Kind() Kind              { return f.K }
func (f *Fake) Name() string            { return f.NameStr }
func (f *Fake) Access() Access          { return f.AccessV }
func (f *Fake) Locations() []Location   { return f.Locs }
func (f *Fake) Fingerprint() string     { return f.Fp }
func (f *Fake) RawComment() (string, bool) { return f.Comment, f.HasComment }
func (f *Fake) IsImplicit() bool        { return f.Implicit }
func (f *Fake) IsAnonymous() bool       { return f.Anonymous }
func (f *Fake) IsLocalClass() bool      { return f.LocalClass }
func (f *Fake) IsFileScopeStatic() bool { return f.FileStatic }
func (f *Fake) Children() []Decl        { return f.Kids }
func (f *Fake) TemplateParams() []TemplateParam { return f.TParams }
func (f *Fake) TemplateArgs() []TemplateArg     { return f.TArgs }

func (f *Fake) Primary() (Decl, bool) {
	if f.PrimaryDecl == nil {
		return nil, false
	}
	return f.PrimaryDecl, true
}

func (f *Fake) Type() (TypeRef, bool) {
	if f.TypeV == nil {
		return nil, false
	}
	return f.TypeV, true
}

func (f *Fake) Returns() (TypeRef, bool) {
	if f.ReturnsV == nil {
		return nil, false
	}
	return f.ReturnsV, true
}

func (f *Fake) Params() []Param { return f.ParamsV }

func (f *Fake) RequiresClauseWritten() (string, bool) { return f.Requires, f.HasRequires }

func (f *Fake) Qualified() string {
	if f.QualifiedStr != "" {
		return f.QualifiedStr
	}
	return f.NameStr
}

func (f *Fake) Bases() []Base { return f.BasesV }
func (f *Fake) IsFinal() bool { return f.Final }

func (f *Fake) IsConstMethod() bool              { return f.ConstMethod }
func (f *Fake) IsVolatileMethod() bool           { return f.VolatileMethod }
func (f *Fake) MethodRefQualifier() RefQualifier { return f.RefQualV }

func (f *Fake) Storage() StorageClass     { return f.StorageV }
func (f *Fake) IsConstexpr() bool         { return f.Constexpr }
func (f *Fake) IsConsteval() bool         { return f.Consteval }
func (f *Fake) IsConstinit() bool         { return f.Constinit }
func (f *Fake) IsInlineSpecifier() bool   { return f.InlineSpec }
func (f *Fake) IsThreadLocal() bool       { return f.ThreadLocal }

func (f *Fake) IsVirtual() bool  { return f.Virtual }
func (f *Fake) IsOverride() bool { return f.Override }
func (f *Fake) IsPure() bool     { return f.Pure }
func (f *Fake) IsDefaulted() bool { return f.Defaulted }
func (f *Fake) IsDeleted() bool   { return f.Deleted }
func (f *Fake) IsVariadic() bool  { return f.Variadic }
func (f *Fake) OperatorKind() string { return f.Operator }

func (f *Fake) NoexceptSpecifier() NoexceptSpec { return f.NoexceptV }
func (f *Fake) ExplicitSpecifier() ExplicitSpec { return f.ExplicitV }

func (f *Fake) IsBitfield() bool { return f.BitfieldFlag }
func (f *Fake) BitfieldWidth() (ConstExpr, bool) { return f.BitfieldW, f.HasBitfieldW }
func (f *Fake) IsMutable() bool          { return f.Mutable }
func (f *Fake) HasNoUniqueAddress() bool { return f.NoUniqueAddr }

// FakeType is an in-memory TypeRef covering every TypeRefKind. Only the
// fields relevant to Kind need be set; the rest are ignored.
type FakeType struct {
	K             TypeRefKind
	Spelling      string
	Const         bool
	Volatile      bool
	PackExpansion bool

	Decl Decl // Named

	DecltypeExpr ConstExpr // Decltype

	Constraint    *FakeType // Auto (nil if unconstrained)
	DecltypeAuto  bool      // Auto

	Inner *FakeType // LValueRef/RValueRef/Pointer pointee, MemberPointer pointee, Array element

	MemberClass *FakeType // MemberPointer class

	Bound      ConstExpr // Array
	HasBound   bool      // Array

	Return     *FakeType   // Function
	Params     []*FakeType // Function
	Variadic   bool        // Function
	RefQual    RefQualifier
	Noexcept   bool
}

var _ TypeRef = (*FakeType)(nil)

func (t *FakeType) Written() string       { return t.Spelling }
func (t *FakeType) Kind() TypeRefKind     { return t.K }
func (t *FakeType) IsConst() bool         { return t.Const }
func (t *FakeType) IsVolatile() bool      { return t.Volatile }
func (t *FakeType) IsPackExpansion() bool { return t.PackExpansion }

func (t *FakeType) NamedDecl() (Decl, bool) {
	if t.Decl == nil {
		return nil, false
	}
	return t.Decl, true
}

func (t *FakeType) DecltypeOperand() ConstExpr { return t.DecltypeExpr }

func (t *FakeType) AutoConstraint() (TypeRef, bool) {
	if t.Constraint == nil {
		return nil, false
	}
	return t.Constraint, true
}

func (t *FakeType) IsDecltypeAuto() bool { return t.DecltypeAuto }

func (t *FakeType) Pointee() (TypeRef, bool) {
	if t.Inner == nil {
		return nil, false
	}
	return t.Inner, true
}

func (t *FakeType) MemberPointerClass() (TypeRef, bool) {
	if t.MemberClass == nil {
		return nil, false
	}
	return t.MemberClass, true
}

func (t *FakeType) ArrayElement() (TypeRef, bool) {
	if t.Inner == nil {
		return nil, false
	}
	return t.Inner, true
}

func (t *FakeType) ArrayBound() (ConstExpr, bool) { return t.Bound, t.HasBound }

func (t *FakeType) FunctionReturn() (TypeRef, bool) {
	if t.Return == nil {
		return nil, false
	}
	return t.Return, true
}

func (t *FakeType) FunctionParams() []TypeRef {
	out := make([]TypeRef, len(t.Params))
	for i, p := range t.Params {
		out[i] = p
	}
	return out
}

func (t *FakeType) FunctionVariadic() bool             { return t.Variadic }
func (t *FakeType) FunctionRefQualifier() RefQualifier { return t.RefQual }
func (t *FakeType) FunctionIsNoexcept() bool           { return t.Noexcept }

// FakeDatabase is an in-memory compile-database Database.
type FakeDatabase struct {
	EntriesV []Entry
}

var _ Database = (*FakeDatabase)(nil)

func (d *FakeDatabase) Entries() ([]Entry, error) { return d.EntriesV, nil }
