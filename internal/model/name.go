package model

import "github.com/corpusdoc/cxxref/internal/symbolid"

// NameKind tags which variant a Name value holds.
type NameKind int

const (
	NameInvalid NameKind = iota
	NameIdentifier
	NameSpecialization
)

func (k NameKind) String() string {
	switch k {
	case NameIdentifier:
		return "Identifier"
	case NameSpecialization:
		return "Specialization"
	default:
		return "Invalid"
	}
}

// Name is the sealed interface for the two name variants. Prefix is itself
// a Name, so a qualified name like `ns::Outer<int>::Inner` is a chain of
// Name values, leaf (`Inner`) first, each owning its Prefix.
type Name interface {
	Kind() NameKind
	Identifier() string
	Prefix() Name
	ID() symbolid.ID
	isName()
}

// IdentifierName is a plain (non-template) qualified-name component.
type IdentifierName struct {
	Ident      string
	PrefixName Name
	SymbolID   symbolid.ID
}

func (n *IdentifierName) Kind() NameKind       { return NameIdentifier }
func (n *IdentifierName) Identifier() string   { return n.Ident }
func (n *IdentifierName) Prefix() Name         { return n.PrefixName }
func (n *IdentifierName) ID() symbolid.ID      { return n.SymbolID }
func (*IdentifierName) isName()                {}

// SpecializationName is a template-id qualified-name component, e.g.
// `vector<int>`.
type SpecializationName struct {
	Ident      string
	PrefixName Name
	SymbolID   symbolid.ID
	Args       []TArg
}

func (n *SpecializationName) Kind() NameKind     { return NameSpecialization }
func (n *SpecializationName) Identifier() string { return n.Ident }
func (n *SpecializationName) Prefix() Name       { return n.PrefixName }
func (n *SpecializationName) ID() symbolid.ID    { return n.SymbolID }
func (*SpecializationName) isName()              {}

// IDOfName returns n's resolved SymbolID, or symbolid.Invalid for a nil
// Name.
func IDOfName(n Name) symbolid.ID {
	if n == nil {
		return symbolid.Invalid
	}
	return n.ID()
}

// QualifiedText joins a Name's Prefix chain with "::", leftmost-ancestor
// first. It does not consult the Corpus, so anonymous-namespace elision
// and global-root skipping (corpus.QualifiedName's job) are not applied
// here; this is purely a textual rendering of the Name chain itself.
func QualifiedText(n Name) string {
	if n == nil {
		return ""
	}
	var parts []string
	for cur := n; cur != nil; cur = cur.Prefix() {
		parts = append(parts, cur.Identifier())
	}
	out := parts[len(parts)-1]
	for i := len(parts) - 2; i >= 0; i-- {
		out += "::" + parts[i]
	}
	return out
}
