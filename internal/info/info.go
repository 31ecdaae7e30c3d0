// Package info defines Info, the Corpus's symbol record: a sum type over
// the declaration kinds the extractor can produce, sharing a common
// prefix of fields (id, Kind, Name, Parent, ...) held in Common rather than
// duplicated per variant, matching the "flatten the inheritance hierarchy"
// design note.
package info

import (
	"github.com/corpusdoc/cxxref/internal/doc"
	"github.com/corpusdoc/cxxref/internal/symbolid"
)

// Kind enumerates the declaration kinds the extractor produces records for.
type Kind int

const (
	KindInvalid Kind = iota
	KindNamespace
	KindRecord
	KindFunction
	KindEnum
	KindEnumConstant
	KindTypedef
	KindVariable
	KindField
	KindFriend
	KindGuide
	KindConcept
	KindNamespaceAlias
	KindUsing
	KindOverloads
	KindSpecialization
)

func (k Kind) String() string {
	switch k {
	case KindNamespace:
		return "Namespace"
	case KindRecord:
		return "Record"
	case KindFunction:
		return "Function"
	case KindEnum:
		return "Enum"
	case KindEnumConstant:
		return "EnumConstant"
	case KindTypedef:
		return "Typedef"
	case KindVariable:
		return "Variable"
	case KindField:
		return "Field"
	case KindFriend:
		return "Friend"
	case KindGuide:
		return "Guide"
	case KindConcept:
		return "Concept"
	case KindNamespaceAlias:
		return "NamespaceAlias"
	case KindUsing:
		return "Using"
	case KindOverloads:
		return "Overloads"
	case KindSpecialization:
		return "Specialization"
	default:
		return "Invalid"
	}
}

// Access is the member access specifier under which a symbol was declared.
type Access int

const (
	AccessNone Access = iota
	AccessPublic
	AccessProtected
	AccessPrivate
)

// ExtractionMode is the per-symbol documentation-fidelity label the
// filter pipeline assigns. The zero value, Regular, is also the lattice
// top (most specific); values increase in "less specific" order so that
// LeastSpecific can be implemented as a plain max.
type ExtractionMode int

const (
	Regular ExtractionMode = iota
	SeeBelow
	ImplementationDefined
	Dependency
)

func (m ExtractionMode) String() string {
	switch m {
	case Regular:
		return "Regular"
	case SeeBelow:
		return "SeeBelow"
	case ImplementationDefined:
		return "ImplementationDefined"
	case Dependency:
		return "Dependency"
	default:
		return "Unknown"
	}
}

// LeastSpecific implements the lattice meet used throughout §4: an Info's
// mode is the least specific value ever observed for it.
func LeastSpecific(a, b ExtractionMode) ExtractionMode {
	if a > b {
		return a
	}
	return b
}

// Location records where a declaration's text lives.
type Location struct {
	FullPath   string
	ShortPath  string
	SourcePath string
	LineNumber int
	Documented bool
}

// Common holds the fields every Info variant shares.
type Common struct {
	ID         symbolid.ID
	Kind       Kind
	Name       string
	Parent     symbolid.ID
	Namespace  []symbolid.ID // ancestor chain, leaf-first
	Access     Access
	Extraction ExtractionMode
	Loc        []Location
	DefLoc     *Location
	Doc        *doc.Comment
	Attributes map[string]struct{}
}

// AddAttribute unions a into the Attributes set.
func (c *Common) AddAttribute(a string) {
	if c.Attributes == nil {
		c.Attributes = make(map[string]struct{})
	}
	c.Attributes[a] = struct{}{}
}

// HasAttribute reports whether a was recorded on this symbol.
func (c *Common) HasAttribute(a string) bool {
	_, ok := c.Attributes[a]
	return ok
}

// Info is the sealed interface implemented by every symbol-record variant.
type Info interface {
	CommonInfo() *Common
	isInfo()
}

// ID is a convenience accessor equivalent to CommonInfo().ID.
func ID(i Info) symbolid.ID { return i.CommonInfo().ID }

// KindOf is a convenience accessor equivalent to CommonInfo().Kind.
func KindOf(i Info) Kind { return i.CommonInfo().Kind }
