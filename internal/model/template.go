package model

import "github.com/corpusdoc/cxxref/internal/symbolid"

// TParamKind tags which variant a TParam value holds.
type TParamKind int

const (
	TParamInvalid TParamKind = iota
	TParamType
	TParamConstant
	TParamTemplate
)

// CommonTParam holds the fields every TParam variant shares.
type CommonTParam struct {
	Name            string
	IsParameterPack bool
}

// TParam is the sealed interface for template-parameter variants.
type TParam interface {
	Kind() TParamKind
	Common() *CommonTParam
	isTParam()
}

// RecordKeyKind mirrors Info's RecordKeyKind for a type-template-parameter's
// introducer (`class` vs `typename`), kept distinct to avoid an import
// cycle with the info package.
type RecordKeyKind int

const (
	KeyClass RecordKeyKind = iota
	KeyTypename
)

// TypeTParam is `class T = Default` / `typename T` possibly constrained by
// a type-constraint (C++20 `Concept auto`-style parameters).
type TypeTParam struct {
	CommonTParam
	Default    Type  // nil if none
	Constraint *Expr // nil if unconstrained
	KeyKind    RecordKeyKind
}

func (*TypeTParam) Kind() TParamKind          { return TParamType }
func (p *TypeTParam) Common() *CommonTParam { return &p.CommonTParam }
func (*TypeTParam) isTParam()                 {}

// ConstantTParam is a non-type template parameter, e.g. `int N = 0`.
type ConstantTParam struct {
	CommonTParam
	Type    Type
	Default *Expr
}

func (*ConstantTParam) Kind() TParamKind        { return TParamConstant }
func (p *ConstantTParam) Common() *CommonTParam { return &p.CommonTParam }
func (*ConstantTParam) isTParam()                {}

// TemplateTParam is a template-template parameter.
type TemplateTParam struct {
	CommonTParam
	Params  []TParam
	Default *Name
}

func (*TemplateTParam) Kind() TParamKind        { return TParamTemplate }
func (p *TemplateTParam) Common() *CommonTParam { return &p.CommonTParam }
func (*TemplateTParam) isTParam()                {}

// TArgKind tags which variant a TArg value holds.
type TArgKind int

const (
	TArgInvalid TArgKind = iota
	TArgType
	TArgConstant
	TArgTemplate
)

// CommonTArg holds the fields every TArg variant shares.
type CommonTArg struct {
	IsPackExpansion bool
}

// TArg is the sealed interface for template-argument variants.
type TArg interface {
	Kind() TArgKind
	Common() *CommonTArg
	isTArg()
}

// TypeTArg is a type template argument.
type TypeTArg struct {
	CommonTArg
	Type Type
}

func (*TypeTArg) Kind() TArgKind        { return TArgType }
func (a *TypeTArg) Common() *CommonTArg { return &a.CommonTArg }
func (*TypeTArg) isTArg()               {}

// ConstantTArg is a non-type template argument.
type ConstantTArg struct {
	CommonTArg
	Value Expr
}

func (*ConstantTArg) Kind() TArgKind        { return TArgConstant }
func (a *ConstantTArg) Common() *CommonTArg { return &a.CommonTArg }
func (*ConstantTArg) isTArg()               {}

// TemplateTArg is a template template-argument.
type TemplateTArg struct {
	CommonTArg
	Name     Name
	Template symbolid.ID
}

func (*TemplateTArg) Kind() TArgKind        { return TArgTemplate }
func (a *TemplateTArg) Common() *CommonTArg { return &a.CommonTArg }
func (*TemplateTArg) isTArg()               {}

// TemplateInfoKind enumerates the four shapes a TemplateInfo can describe.
type TemplateInfoKind int

const (
	TemplatePrimary TemplateInfoKind = iota
	TemplateExplicitSpecialization
	TemplatePartialSpecialization
	TemplateInstantiatedFrom
)

// TemplateInfo is the template-ness annotation carried by Record, Function,
// Variable, Typedef, Concept, and Guide Infos.
type TemplateInfo struct {
	Kind     TemplateInfoKind
	Params   []TParam
	Args     []TArg // empty for TemplatePrimary
	Primary  symbolid.ID
	Requires Expr
}
