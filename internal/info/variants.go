package info

import (
	"github.com/corpusdoc/cxxref/internal/model"
	"github.com/corpusdoc/cxxref/internal/symbolid"
)

// NoexceptKind enumerates a function's noexcept-specifier shape.
type NoexceptKind int

const (
	NoexceptNone NoexceptKind = iota
	NoexceptFalse
	NoexceptTrue
	NoexceptDependent // noexcept(expr) where expr isn't a constant bool
)

// NoexceptSpec pairs the kind with its operand expression, if any.
type NoexceptSpec struct {
	Kind NoexceptKind
	Expr *model.Expr
}

// ExplicitKind enumerates a constructor/guide's explicit-specifier shape,
// mirroring NoexceptKind.
type ExplicitKind int

const (
	ExplicitNone ExplicitKind = iota
	ExplicitFalse
	ExplicitTrue
	ExplicitDependent
)

type ExplicitSpec struct {
	Kind ExplicitKind
	Expr *model.Expr
}

// StorageClass is the declared storage duration keyword, shared by
// Function, Variable, and Field.
type StorageClass int

const (
	StorageNone StorageClass = iota
	StorageExtern
	StorageStatic
)

// RecordKeyKind is the class-key a record was declared with. It is a
// distinct type from model.RecordKeyKind, which instead tags a type
// template-parameter's class/typename introducer.
type RecordKeyKind int

const (
	KeyClass RecordKeyKind = iota
	KeyStruct
	KeyUnion
)

// BaseInfo is one entry in a RecordInfo's base-class list.
type BaseInfo struct {
	Type      model.Type
	Access    Access
	IsVirtual bool
}

// Interface splits a record's members into Public/Protected/Private
// tranches, each already traversal-ordered.
type Interface struct {
	Public    []symbolid.ID
	Protected []symbolid.ID
	Private   []symbolid.ID
}

// RecordInfo is the Info variant for class/struct/union declarations.
type RecordInfo struct {
	Common
	KeyKind  RecordKeyKind
	Template *model.TemplateInfo // nil for a non-template record
	Bases    []BaseInfo
	Friends  []symbolid.ID
	Members  []symbolid.ID // declaration order, all tranches
	Interface
	IsFinal        bool
	IsUnionLike    bool
	DefaultAccess  Access
}

func (*RecordInfo) isInfo()                {}
func (r *RecordInfo) CommonInfo() *Common { return &r.Common }

// FunctionClass distinguishes special member functions from ordinary ones.
type FunctionClass int

const (
	FunctionNormal FunctionClass = iota
	FunctionCtor
	FunctionDtor
	FunctionConv
	FunctionGuide
)

// Param is a function or deduction-guide parameter.
type Param struct {
	Name    string
	Type    model.Type
	Default *model.Expr
}

// RefQualifier is re-exported so callers of FunctionInfo don't also need
// to import model directly for this one enum.
type RefQualifier = model.RefQualifier

// FunctionInfo is the Info variant for free functions and methods;
// deduction guides are GuideInfo. The extractor sets Class to one of
// Normal/Ctor/Dtor/Conv and never assigns FunctionGuide.
type FunctionInfo struct {
	Common
	Template  *model.TemplateInfo
	Return    model.Type
	Params    []Param
	Class     FunctionClass
	Noexcept  NoexceptSpec
	Explicit  ExplicitSpec
	Requires  *model.Expr
	IsConst   bool
	IsVolatile bool
	RefQual   RefQualifier
	Storage   StorageClass
	IsConstexpr bool
	IsConsteval bool
	IsVirtual   bool
	IsOverride  bool
	IsFinal     bool
	IsPure      bool
	IsDefaulted bool
	IsDeleted   bool
	IsVariadic  bool
	OperatorKind string // "" if not an operator overload
}

func (*FunctionInfo) isInfo()                {}
func (f *FunctionInfo) CommonInfo() *Common { return &f.Common }

// EnumInfo is the Info variant for enum/enum class declarations.
type EnumInfo struct {
	Common
	Scoped         bool
	UnderlyingType model.Type // nil if not explicitly spelled
	Constants      []symbolid.ID
}

func (*EnumInfo) isInfo()                {}
func (e *EnumInfo) CommonInfo() *Common { return &e.Common }

// EnumConstantInfo is the Info variant for an enumerator.
type EnumConstantInfo struct {
	Common
	Initializer model.ConstantExpr[uint64]
}

func (*EnumConstantInfo) isInfo()                {}
func (e *EnumConstantInfo) CommonInfo() *Common { return &e.Common }

// TypedefInfo is the Info variant for `typedef`/`using Alias = ...`.
type TypedefInfo struct {
	Common
	IsUsing  bool
	Type     model.Type
	Template *model.TemplateInfo
}

func (*TypedefInfo) isInfo()                {}
func (t *TypedefInfo) CommonInfo() *Common { return &t.Common }

// VariableInfo is the Info variant for namespace-scope and static member
// variables.
type VariableInfo struct {
	Common
	Type        model.Type
	Initializer *model.Expr
	Storage     StorageClass
	IsConstexpr bool
	IsConstinit bool
	IsInline    bool
	IsThreadLocal bool
	Template    *model.TemplateInfo
}

func (*VariableInfo) isInfo()                {}
func (v *VariableInfo) CommonInfo() *Common { return &v.Common }

// FieldInfo is the Info variant for a non-static data member.
type FieldInfo struct {
	Common
	Type               model.Type
	Default            *model.Expr
	IsBitfield         bool
	BitfieldWidth      *model.Expr
	IsMutable          bool
	HasNoUniqueAddress bool
}

func (*FieldInfo) isInfo()                {}
func (f *FieldInfo) CommonInfo() *Common { return &f.Common }

// FriendInfo is the Info variant for a `friend` declaration; exactly one
// of Type or Decl is set (a type-friend grants access to a whole type, a
// decl-friend to one function/function-template declaration).
type FriendInfo struct {
	Common
	Type model.Type
	Decl symbolid.ID
}

func (*FriendInfo) isInfo()                {}
func (f *FriendInfo) CommonInfo() *Common { return &f.Common }

// GuideInfo is the Info variant for a user-written deduction guide.
type GuideInfo struct {
	Common
	Template *model.TemplateInfo
	Deduced  model.Type
	Params   []Param
	Explicit ExplicitSpec
}

func (*GuideInfo) isInfo()                {}
func (g *GuideInfo) CommonInfo() *Common { return &g.Common }

// ConceptInfo is the Info variant for a `concept` declaration.
type ConceptInfo struct {
	Common
	Template   *model.TemplateInfo
	Constraint model.Expr
}

func (*ConceptInfo) isInfo()                {}
func (c *ConceptInfo) CommonInfo() *Common { return &c.Common }

// NamespaceAliasInfo is the Info variant for `namespace A = B::C;`.
type NamespaceAliasInfo struct {
	Common
	AliasedSymbol model.Name
}

func (*NamespaceAliasInfo) isInfo()                {}
func (n *NamespaceAliasInfo) CommonInfo() *Common { return &n.Common }

// UsingClass distinguishes the three using-declaration shapes.
type UsingClass int

const (
	UsingNormal UsingClass = iota
	UsingTypename
	UsingEnum
)

// UsingInfo is the Info variant for a using-declaration that introduces
// one or more shadow declarations into the enclosing scope.
type UsingInfo struct {
	Common
	Class              UsingClass
	IntroducedName     model.Name
	ShadowDeclarations []symbolid.ID
}

func (*UsingInfo) isInfo()                {}
func (u *UsingInfo) CommonInfo() *Common { return &u.Common }

// OverloadsInfo groups sibling functions sharing a name into one
// traversal unit; it owns no documentation or location of its own.
type OverloadsInfo struct {
	Common
	Members []symbolid.ID
}

func (*OverloadsInfo) isInfo()                {}
func (o *OverloadsInfo) CommonInfo() *Common { return &o.Common }

// SpecializationInfo is the Info variant for an explicit or partial
// template specialization, recorded separately from its primary template.
type SpecializationInfo struct {
	Common
	Primary  symbolid.ID
	Template model.TemplateInfo
	Members  []symbolid.ID
}

func (*SpecializationInfo) isInfo()                {}
func (s *SpecializationInfo) CommonInfo() *Common { return &s.Common }

// NamespaceInfo is the Info variant for namespace declarations, including
// the global-namespace root.
type NamespaceInfo struct {
	Common
	IsAnonymous      bool
	IsInline         bool
	Members          []symbolid.ID
	UsingDirectives  []symbolid.ID
}

func (*NamespaceInfo) isInfo()                {}
func (n *NamespaceInfo) CommonInfo() *Common { return &n.Common }
