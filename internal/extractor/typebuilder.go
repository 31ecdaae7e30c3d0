package extractor

import (
	"github.com/corpusdoc/cxxref/internal/frontend"
	"github.com/corpusdoc/cxxref/internal/model"
)

// buildType recursively lowers a frontend.TypeRef into a model.Type,
// dispatching on its Kind. A nil t lowers to a nil Type. The compound
// cases store each lowered component as-is and do not check it, so a
// component the frontend leaves nil is nil in the result.
func (e *Extractor) buildType(t frontend.TypeRef) model.Type {
	if t == nil {
		return nil
	}
	common := model.CommonType{
		IsConst:         t.IsConst(),
		IsVolatile:      t.IsVolatile(),
		IsPackExpansion: t.IsPackExpansion(),
	}
	switch t.Kind() {
	case frontend.TRefNamed:
		return &model.NamedType{CommonType: common, Name: e.buildTypeName(t)}

	case frontend.TRefDecltype:
		op := t.DecltypeOperand()
		return &model.DecltypeType{
			CommonType: common,
			Operand:    model.Expr{Written: op.Written, Value: op.Value, HasValue: op.HasValue},
		}

	case frontend.TRefAuto:
		at := &model.AutoType{CommonType: common, IsDecltypeAuto: t.IsDecltypeAuto()}
		if c, ok := t.AutoConstraint(); ok {
			if nt, ok := e.buildType(c).(*model.NamedType); ok {
				at.Constraint = nt
			}
		}
		return at

	case frontend.TRefLValueRef:
		pointee, _ := t.Pointee()
		return &model.LValueReferenceType{CommonType: common, Pointee: e.buildType(pointee)}

	case frontend.TRefRValueRef:
		pointee, _ := t.Pointee()
		return &model.RValueReferenceType{CommonType: common, Pointee: e.buildType(pointee)}

	case frontend.TRefPointer:
		pointee, _ := t.Pointee()
		return &model.PointerType{CommonType: common, Pointee: e.buildType(pointee)}

	case frontend.TRefMemberPointer:
		cls, _ := t.MemberPointerClass()
		pointee, _ := t.Pointee()
		return &model.MemberPointerType{
			CommonType: common,
			Parent:     e.buildType(cls),
			Pointee:    e.buildType(pointee),
		}

	case frontend.TRefArray:
		elem, _ := t.ArrayElement()
		bound, hasBound := t.ArrayBound()
		at := &model.ArrayType{CommonType: common, Element: e.buildType(elem), HasBounds: hasBound}
		if hasBound {
			at.Bounds = model.Expr{Written: bound.Written, Value: bound.Value, HasValue: bound.HasValue}
		}
		return at

	case frontend.TRefFunction:
		ret, _ := t.FunctionReturn()
		params := t.FunctionParams()
		ft := &model.FunctionType{
			CommonType:   common,
			Return:       e.buildType(ret),
			Params:       make([]model.Type, len(params)),
			IsVariadic:   t.FunctionVariadic(),
			RefQualifier: model.RefQualifier(t.FunctionRefQualifier()),
			IsNoexcept:   t.FunctionIsNoexcept(),
		}
		for i, p := range params {
			ft.Params[i] = e.buildType(p)
		}
		return ft

	default:
		// Unknown/invalid layer: fall back to a named type carrying only
		// the written spelling, rather than dropping the type entirely.
		return &model.NamedType{CommonType: common, Name: &model.IdentifierName{Ident: t.Written()}}
	}
}

// buildTemplateInfo lowers d's template-parameter/argument lists into a
// model.TemplateInfo, or nil if d is not a template. A specialization with
// its own template parameters (a partial specialization) is distinguished
// from one with none (an explicit specialization).
func (e *Extractor) buildTemplateInfo(d frontend.Decl) *model.TemplateInfo {
	params := d.TemplateParams()
	args := d.TemplateArgs()
	if len(params) == 0 && len(args) == 0 {
		return nil
	}
	ti := &model.TemplateInfo{Kind: model.TemplatePrimary}
	for _, p := range params {
		ti.Params = append(ti.Params, e.buildTParam(p))
	}
	if len(args) > 0 {
		ti.Kind = model.TemplateExplicitSpecialization
		if len(params) > 0 {
			ti.Kind = model.TemplatePartialSpecialization
		}
		for _, a := range args {
			ti.Args = append(ti.Args, e.buildTArg(a))
		}
		if primary, ok := d.Primary(); ok {
			ti.Primary = e.resolveDependency(primary)
		}
	}
	if rc, ok := d.RequiresClauseWritten(); ok {
		ti.Requires = model.Expr{Written: rc}
	}
	return ti
}

func (e *Extractor) buildTParam(p frontend.TemplateParam) model.TParam {
	common := model.CommonTParam{Name: p.Name, IsParameterPack: p.IsParameterPack}
	switch {
	case p.IsTypeParam:
		tp := &model.TypeTParam{CommonTParam: common, KeyKind: model.KeyClass}
		if p.HasDefault {
			tp.Default = &model.NamedType{Name: &model.IdentifierName{Ident: p.DefaultWritten}}
		}
		if p.ConstraintWritten != "" {
			tp.Constraint = &model.Expr{Written: p.ConstraintWritten}
		}
		return tp
	case p.IsTemplateParam:
		return &model.TemplateTParam{CommonTParam: common}
	default:
		cp := &model.ConstantTParam{CommonTParam: common}
		if p.HasDefault {
			cp.Default = &model.Expr{Written: p.DefaultWritten}
		}
		return cp
	}
}

// buildTypeName resolves a TRefNamed layer's referent into a model.Name,
// pulling the referent in as a Dependency if it hasn't been visited yet,
// per the "types always resolve, even across TU boundaries" design note.
func (e *Extractor) buildTypeName(t frontend.TypeRef) model.Name {
	decl, ok := t.NamedDecl()
	if !ok {
		return &model.IdentifierName{Ident: t.Written()}
	}
	return e.buildNameForDecl(decl)
}
