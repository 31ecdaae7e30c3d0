// Package frontend pins the boundary to the C++ frontend collaborator:
// a typed, cursor-like AST traversal over declaration handles. Driving
// an actual compiler frontend is explicitly out of scope for this
// module; this package only defines the interfaces the extractor
// programs against, plus an in-memory test double.
package frontend

// Kind enumerates the declaration shapes the extractor dispatches on.
// It is a separate enum from info.Kind: several Kind values collapse
// into one info.Kind (e.g. Class/Struct/Union all become a RecordInfo),
// and some frontend-only shapes (TranslationUnit) never become an Info
// at all.
type Kind int

const (
	KindInvalid Kind = iota
	KindTranslationUnit
	KindNamespace
	KindClass
	KindStruct
	KindUnion
	KindFunction
	KindMethod
	KindConstructor
	KindDestructor
	KindConversion
	KindEnum
	KindEnumConstant
	KindTypedef
	KindUsingAlias
	KindVariable
	KindField
	KindFriend
	KindUsingDecl
	KindUsingEnumDecl
	KindUsingDirective
	KindNamespaceAlias
	KindConcept
	KindDeductionGuide
)

// Access mirrors info.Access so the extractor can translate directly.
type Access int

const (
	AccessNone Access = iota
	AccessPublic
	AccessProtected
	AccessPrivate
)

// Location is one source position a declaration's text spans.
type Location struct {
	FullPath   string
	ShortPath  string
	SourcePath string
	LineNumber int
	IsFileDecl bool // true when this handle is the definition
}

// TemplateParam is one entry of a declaration's template parameter list,
// in source order, as handed over by the frontend (before the Name/Type
// sub-builders translate it into model.TParam).
type TemplateParam struct {
	Name              string
	IsTypeParam       bool
	IsConstantParam   bool
	IsTemplateParam   bool
	IsParameterPack   bool
	DefaultWritten    string
	HasDefault        bool
	ConstraintWritten string
}

// TemplateArg is one entry of a specialization's argument list.
type TemplateArg struct {
	Written        string
	IsPackExpansion bool
	IsType         bool
}

// Param is a function/guide parameter as the frontend hands it over.
type Param struct {
	Name           string
	TypeWritten    string
	DefaultWritten string
	HasDefault     bool
}

// Decl is one opaque declaration handle. The extractor calls these
// accessors while walking; it never reaches into frontend-specific
// state beyond this interface.
type Decl interface {
	Kind() Kind
	Name() string
	Access() Access
	Locations() []Location

	// Fingerprint is the USR-like stable identifier used to seed
	// SymbolID generation.
	Fingerprint() string

	// RawComment is the unprocessed comment text attached to this
	// declaration, if any.
	RawComment() (string, bool)

	// IsImplicit reports a compiler-synthesized declaration (implicit
	// special members, etc.).
	IsImplicit() bool
	// IsAnonymous reports an anonymous namespace or union.
	IsAnonymous() bool
	// IsLocalClass reports a class defined inside a function body.
	IsLocalClass() bool
	// IsFileScopeStatic reports a `static` at namespace scope.
	IsFileScopeStatic() bool

	// Children iterates this declaration's direct members in
	// declaration order (including indirect fields of anonymous
	// unions).
	Children() []Decl

	// TemplateParams is non-empty for a template declaration.
	TemplateParams() []TemplateParam
	// TemplateArgs is non-empty for a specialization.
	TemplateArgs() []TemplateArg
	// Primary returns the primary template of a specialization, if any.
	Primary() (Decl, bool)

	// Type returns the frontend's opaque type handle for declarations
	// that carry one (Variable, Field, Typedef, Function's return type
	// accessed separately via Params/Returns).
	Type() (TypeRef, bool)
	// Returns is a Function/Guide's return/deduced type.
	Returns() (TypeRef, bool)
	// Params is a Function/Guide's parameter list.
	Params() []Param

	// RequiresClauseWritten is the textual requires-clause, if any.
	RequiresClauseWritten() (string, bool)

	// Qualified prints this declaration's fully qualified name the way
	// the frontend spells it. The extractor keys parent linking, symbol
	// filtering and `@ref` resolution on it; the Corpus's own
	// QualifiedName is authoritative for rendering.
	Qualified() string

	// Bases is a Record's direct base-specifier list, in declaration
	// order.
	Bases() []Base
	// IsFinal reports a `final` class-key on a Record, or a `final`
	// virt-specifier on a Function.
	IsFinal() bool

	// IsConstMethod and IsVolatileMethod report a method's own
	// cv-qualifiers. Distinct from TypeRef.IsConst/IsVolatile, which
	// describe a type layer's cv-qualification rather than a
	// declaration's.
	IsConstMethod() bool
	IsVolatileMethod() bool
	// MethodRefQualifier is a method's trailing &/&& ref-qualifier.
	MethodRefQualifier() RefQualifier

	// Storage is the declared storage-class keyword, for Function,
	// Variable, and Field declarations.
	Storage() StorageClass
	// IsConstexpr, IsConsteval, IsConstinit, IsInlineSpecifier, and
	// IsThreadLocal are declaration-level specifiers, applicable per
	// kind (constexpr on Function/Variable, consteval/constinit on
	// Function/Variable respectively, inline and thread_local on
	// Variable).
	IsConstexpr() bool
	IsConsteval() bool
	IsConstinit() bool
	IsInlineSpecifier() bool
	IsThreadLocal() bool

	// IsVirtual, IsOverride, and IsPure describe a method's
	// virt-specifiers.
	IsVirtual() bool
	IsOverride() bool
	IsPure() bool
	// IsDefaulted and IsDeleted report `= default`/`= delete`.
	IsDefaulted() bool
	IsDeleted() bool
	// IsVariadic reports a trailing C-style `...` parameter.
	IsVariadic() bool
	// OperatorKind is non-empty for an operator overload (e.g. "+",
	// "[]", "new").
	OperatorKind() string
	// NoexceptSpecifier and ExplicitSpecifier describe a
	// Function/Guide's noexcept/explicit specifiers.
	NoexceptSpecifier() NoexceptSpec
	ExplicitSpecifier() ExplicitSpec

	// IsBitfield and BitfieldWidth describe a Field declared with a
	// `: N` bit-width; IsMutable and HasNoUniqueAddress are the field's
	// remaining storage-shape specifiers.
	IsBitfield() bool
	BitfieldWidth() (ConstExpr, bool)
	IsMutable() bool
	HasNoUniqueAddress() bool
}

// TypeRefKind tags which shape a TypeRef layer has, mirroring
// model.TypeKind so the Type sub-builder can dispatch without guessing
// from the spelling.
type TypeRefKind int

const (
	TRefNamed TypeRefKind = iota
	TRefDecltype
	TRefAuto
	TRefLValueRef
	TRefRValueRef
	TRefPointer
	TRefMemberPointer
	TRefArray
	TRefFunction
)

// RefQualifier mirrors model.RefQualifier; kept local so this package does
// not need to import model for one enum.
type RefQualifier int

const (
	RefNone RefQualifier = iota
	RefLValue
	RefRValue
)

// StorageClass mirrors info.StorageClass; kept local for the same reason
// RefQualifier is kept local rather than importing info.
type StorageClass int

const (
	StorageNone StorageClass = iota
	StorageExtern
	StorageStatic
)

// NoexceptKind mirrors info.NoexceptKind.
type NoexceptKind int

const (
	NoexceptNone NoexceptKind = iota
	NoexceptFalse
	NoexceptTrue
	NoexceptDependent
)

// NoexceptSpec is a function/guide's noexcept-specifier as the frontend
// reports it: the kind plus, for NoexceptDependent, the operand text.
type NoexceptSpec struct {
	Kind    NoexceptKind
	Written string
}

// ExplicitKind mirrors info.ExplicitKind.
type ExplicitKind int

const (
	ExplicitNone ExplicitKind = iota
	ExplicitFalse
	ExplicitTrue
	ExplicitDependent
)

// ExplicitSpec is a constructor/guide's explicit-specifier as the frontend
// reports it, mirroring NoexceptSpec.
type ExplicitSpec struct {
	Kind    ExplicitKind
	Written string
}

// Base is one entry of a Record's base-specifier list.
type Base struct {
	Type      TypeRef
	Access    Access
	IsVirtual bool
}

// ConstExpr is a constant-expression operand as the frontend reports it:
// verbatim text, plus a constant-evaluated value when the frontend's
// constant-evaluation utility could produce one.
type ConstExpr struct {
	Written  string
	HasValue bool
	Value    uint64
}

// TypeRef is an opaque, frontend-owned type handle that the Type
// sub-builder peels apart layer by layer.
type TypeRef interface {
	// Written is the type's spelling as the frontend prints it,
	// retained verbatim for Decltype/Auto/constant expressions.
	Written() string
	Kind() TypeRefKind
	IsConst() bool
	IsVolatile() bool
	IsPackExpansion() bool

	// NamedDecl resolves a Named type to the declaration it refers to.
	NamedDecl() (Decl, bool)

	// DecltypeOperand is the operand of a Decltype layer.
	DecltypeOperand() ConstExpr
	// AutoConstraint is the `C auto` constraint of an Auto layer, if any.
	AutoConstraint() (TypeRef, bool)
	IsDecltypeAuto() bool

	// Pointee is the referent of an LValueRef/RValueRef/Pointer layer.
	Pointee() (TypeRef, bool)

	// MemberPointerClass is the `Class` in `T Class::*`.
	MemberPointerClass() (TypeRef, bool)

	// ArrayElement and ArrayBound describe an Array layer; ArrayBound's
	// second return is false for an unbounded array (`T[]`).
	ArrayElement() (TypeRef, bool)
	ArrayBound() (ConstExpr, bool)

	// Function* describe a Function layer.
	FunctionReturn() (TypeRef, bool)
	FunctionParams() []TypeRef
	FunctionVariadic() bool
	FunctionRefQualifier() RefQualifier
	FunctionIsNoexcept() bool
}

// Database is the compile-database collaborator: per-file
// `{directory, file, arguments}` records.
type Database interface {
	Entries() ([]Entry, error)
}

// Entry is one compile command.
type Entry struct {
	Directory string
	File      string
	Arguments []string
}
