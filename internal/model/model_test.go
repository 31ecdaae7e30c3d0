package model

import (
	"testing"

	"github.com/corpusdoc/cxxref/internal/symbolid"
)

func TestTypeKindSwitch(t *testing.T) {
	id := symbolid.Generate("ns::Foo", "")
	inner := &NamedType{Name: &IdentifierName{Ident: "Foo", SymbolID: id}}
	ptr := &PointerType{Pointee: inner}

	if ptr.Kind() != TypePointer {
		t.Fatalf("ptr.Kind() = %v, want TypePointer", ptr.Kind())
	}
	pointee, ok := AsNamed(ptr.Pointee)
	if !ok {
		t.Fatalf("expected pointee to be NamedType")
	}
	if pointee.Name.Identifier() != "Foo" {
		t.Fatalf("pointee name = %q", pointee.Name.Identifier())
	}
	if IDOf(ptr.Pointee) != id {
		t.Fatalf("IDOf mismatch")
	}
	if IDOf(ptr) != symbolid.Invalid {
		t.Fatalf("IDOf(non-Named) should be Invalid")
	}
}

func TestQualifiedTextChain(t *testing.T) {
	outer := &IdentifierName{Ident: "ns"}
	mid := &IdentifierName{Ident: "Outer", PrefixName: outer}
	leaf := &SpecializationName{Ident: "Inner", PrefixName: mid}

	got := QualifiedText(leaf)
	want := "ns::Outer::Inner"
	if got != want {
		t.Fatalf("QualifiedText() = %q, want %q", got, want)
	}
}

func TestQualifiedTextNil(t *testing.T) {
	if got := QualifiedText(nil); got != "" {
		t.Fatalf("QualifiedText(nil) = %q, want empty", got)
	}
}

func TestCompoundTypesOwnNonNilComponents(t *testing.T) {
	// Round-tripping the "no null nested types" invariant: every
	// compound variant constructor here is required to be given a
	// non-nil component. The type-builder (internal/extractor) does not
	// check this itself; this test documents the shape only and does not
	// exercise the builder.
	arr := &ArrayType{Element: &AutoType{}}
	if arr.Element == nil {
		t.Fatalf("ArrayType.Element must not be nil")
	}
	fn := &FunctionType{Return: &AutoType{}, Params: []Type{&AutoType{}}}
	for i, p := range fn.Params {
		if p == nil {
			t.Fatalf("FunctionType.Params[%d] is nil", i)
		}
	}
}
