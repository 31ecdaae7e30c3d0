// Package model holds the polymorphic metadata leaves shared by every Info
// variant: Types, Names, TParams, TArgs, and the Expr placeholder used for
// constant and requires-clause text. Each family is a tagged sum: a Kind
// enum plus one struct per kind, all satisfying a small sealed interface so
// call sites switch on Kind() rather than doing type assertions blind.
package model

import "github.com/corpusdoc/cxxref/internal/symbolid"

// TypeKind tags which variant a Type value holds.
type TypeKind int

const (
	TypeInvalid TypeKind = iota
	TypeNamed
	TypeDecltype
	TypeAuto
	TypeLValueReference
	TypeRValueReference
	TypePointer
	TypeMemberPointer
	TypeArray
	TypeFunction
)

func (k TypeKind) String() string {
	switch k {
	case TypeNamed:
		return "Named"
	case TypeDecltype:
		return "Decltype"
	case TypeAuto:
		return "Auto"
	case TypeLValueReference:
		return "LValueReference"
	case TypeRValueReference:
		return "RValueReference"
	case TypePointer:
		return "Pointer"
	case TypeMemberPointer:
		return "MemberPointer"
	case TypeArray:
		return "Array"
	case TypeFunction:
		return "Function"
	default:
		return "Invalid"
	}
}

// Expr is opaque source text for a constant expression or a requires
// clause, preserved as the frontend hands it to us; exact expression
// formatting is not attempted beyond this.
type Expr struct {
	Written string
	// Value is populated when the frontend could constant-evaluate the
	// expression (e.g. enumerator initializers); zero otherwise.
	Value    uint64
	HasValue bool
}

// ConstantExpr is Expr specialised to a known result type, used by
// EnumConstant initializers.
type ConstantExpr[T any] struct {
	Written  string
	Value    T
	HasValue bool
}

// CommonType holds the fields every Type variant shares.
type CommonType struct {
	IsConst         bool
	IsVolatile      bool
	IsPackExpansion bool
	// Constraints holds SFINAE-derived constraint expressions for a
	// TypeNamed. The extractor does not fill it: its SFINAE lifting writes
	// the condition to the owning function's requires clause instead.
	Constraints []Expr
}

// Type is the sealed interface implemented by every type variant. Callers
// switch on Kind() and use the As* accessors rather than asserting the
// concrete struct directly: a tagged sum with an accessor pattern rather
// than a class hierarchy.
type Type interface {
	Kind() TypeKind
	Common() *CommonType
	isType()
}

// NamedType is a (possibly qualified, possibly specialized) reference to a
// declared entity: a class, enum, typedef, template parameter, etc.
type NamedType struct {
	CommonType
	Name Name
}

func (*NamedType) Kind() TypeKind         { return TypeNamed }
func (t *NamedType) Common() *CommonType { return &t.CommonType }
func (*NamedType) isType()               {}

// DecltypeType is `decltype(expr)`.
type DecltypeType struct {
	CommonType
	Operand Expr
}

func (*DecltypeType) Kind() TypeKind        { return TypeDecltype }
func (t *DecltypeType) Common() *CommonType { return &t.CommonType }
func (*DecltypeType) isType()               {}

// AutoType is `auto` or a concept-constrained `auto`.
type AutoType struct {
	CommonType
	Constraint *NamedType // non-nil for `C auto` placeholders
	IsDecltypeAuto bool
}

func (*AutoType) Kind() TypeKind        { return TypeAuto }
func (t *AutoType) Common() *CommonType { return &t.CommonType }
func (*AutoType) isType()               {}

// LValueReferenceType is `T&`.
type LValueReferenceType struct {
	CommonType
	Pointee Type
}

func (*LValueReferenceType) Kind() TypeKind        { return TypeLValueReference }
func (t *LValueReferenceType) Common() *CommonType { return &t.CommonType }
func (*LValueReferenceType) isType()               {}

// RValueReferenceType is `T&&`.
type RValueReferenceType struct {
	CommonType
	Pointee Type
}

func (*RValueReferenceType) Kind() TypeKind        { return TypeRValueReference }
func (t *RValueReferenceType) Common() *CommonType { return &t.CommonType }
func (*RValueReferenceType) isType()               {}

// PointerType is `T*`.
type PointerType struct {
	CommonType
	Pointee Type
}

func (*PointerType) Kind() TypeKind        { return TypePointer }
func (t *PointerType) Common() *CommonType { return &t.CommonType }
func (*PointerType) isType()               {}

// MemberPointerType is `T Class::*`.
type MemberPointerType struct {
	CommonType
	Parent  Type // the class type
	Pointee Type
}

func (*MemberPointerType) Kind() TypeKind        { return TypeMemberPointer }
func (t *MemberPointerType) Common() *CommonType { return &t.CommonType }
func (*MemberPointerType) isType()               {}

// ArrayType is `T[N]` or `T[]`.
type ArrayType struct {
	CommonType
	Element    Type
	Bounds     Expr // empty Written for an unbounded array
	HasBounds  bool
}

func (*ArrayType) Kind() TypeKind        { return TypeArray }
func (t *ArrayType) Common() *CommonType { return &t.CommonType }
func (*ArrayType) isType()               {}

// FunctionType is a free function type, e.g. as used in a function pointer
// or a Guide's deduced type.
type FunctionType struct {
	CommonType
	Return     Type
	Params     []Type
	IsVariadic bool
	// RefQualifier and IsNoexcept mirror the cv/ref/exception surface a
	// member-function-typed expression can carry.
	RefQualifier RefQualifier
	IsNoexcept   bool
}

func (*FunctionType) Kind() TypeKind        { return TypeFunction }
func (t *FunctionType) Common() *CommonType { return &t.CommonType }
func (*FunctionType) isType()               {}

// RefQualifier enumerates a member function's trailing ref-qualifier.
type RefQualifier int

const (
	RefNone RefQualifier = iota
	RefLValue
	RefRValue
)

// AsNamed returns t as a *NamedType and true, or nil, false otherwise.
func AsNamed(t Type) (*NamedType, bool) { v, ok := t.(*NamedType); return v, ok }

// IDOf returns the resolved SymbolID of a NamedType's Name, or
// symbolid.Invalid for any other Type (or a nil Type).
func IDOf(t Type) symbolid.ID {
	if t == nil {
		return symbolid.Invalid
	}
	n, ok := AsNamed(t)
	if !ok {
		return symbolid.Invalid
	}
	return IDOfName(n.Name)
}
