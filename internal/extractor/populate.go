package extractor

import (
	"github.com/corpusdoc/cxxref/internal/doc"
	"github.com/corpusdoc/cxxref/internal/frontend"
	"github.com/corpusdoc/cxxref/internal/info"
	"github.com/corpusdoc/cxxref/internal/model"
	"github.com/corpusdoc/cxxref/internal/symbolid"
)

func translateAccess(a frontend.Access) info.Access {
	switch a {
	case frontend.AccessPublic:
		return info.AccessPublic
	case frontend.AccessProtected:
		return info.AccessProtected
	case frontend.AccessPrivate:
		return info.AccessPrivate
	default:
		return info.AccessNone
	}
}

func translateStorage(s frontend.StorageClass) info.StorageClass {
	switch s {
	case frontend.StorageExtern:
		return info.StorageExtern
	case frontend.StorageStatic:
		return info.StorageStatic
	default:
		return info.StorageNone
	}
}

func translateRefQualifier(r frontend.RefQualifier) info.RefQualifier {
	switch r {
	case frontend.RefLValue:
		return model.RefLValue
	case frontend.RefRValue:
		return model.RefRValue
	default:
		return model.RefNone
	}
}

func translateNoexcept(n frontend.NoexceptSpec) info.NoexceptSpec {
	out := info.NoexceptSpec{}
	switch n.Kind {
	case frontend.NoexceptFalse:
		out.Kind = info.NoexceptFalse
	case frontend.NoexceptTrue:
		out.Kind = info.NoexceptTrue
	case frontend.NoexceptDependent:
		out.Kind = info.NoexceptDependent
		out.Expr = &model.Expr{Written: n.Written}
	default:
		out.Kind = info.NoexceptNone
	}
	return out
}

func translateExplicit(x frontend.ExplicitSpec) info.ExplicitSpec {
	out := info.ExplicitSpec{}
	switch x.Kind {
	case frontend.ExplicitFalse:
		out.Kind = info.ExplicitFalse
	case frontend.ExplicitTrue:
		out.Kind = info.ExplicitTrue
	case frontend.ExplicitDependent:
		out.Kind = info.ExplicitDependent
		out.Expr = &model.Expr{Written: x.Written}
	default:
		out.Kind = info.ExplicitNone
	}
	return out
}

// buildCommon assembles the shared fields every variant carries, including
// running the declaration's raw comment through doc.Assemble.
func (e *Extractor) buildCommon(d frontend.Decl, id symbolid.ID, kind info.Kind, mode info.ExtractionMode) info.Common {
	c := info.Common{
		ID:         id,
		Kind:       kind,
		Name:       d.Name(),
		Access:     translateAccess(d.Access()),
		Extraction: mode,
	}
	if raw, ok := d.RawComment(); ok && raw != "" {
		c.Doc = doc.Assemble(raw, e.docResolver())
	}
	documented := c.Doc != nil
	for _, loc := range d.Locations() {
		l := info.Location{
			FullPath:   loc.FullPath,
			ShortPath:  loc.ShortPath,
			SourcePath: loc.SourcePath,
			LineNumber: loc.LineNumber,
			Documented: documented,
		}
		c.Loc = append(c.Loc, l)
		if loc.IsFileDecl {
			defLoc := l
			c.DefLoc = &defLoc
		}
	}
	return c
}

// populate dispatches on d's frontend Kind to build (or merge into an
// existing) Info variant. Returns nil for frontend-only shapes that never
// become an Info (translation units).
func (e *Extractor) populate(d frontend.Decl, id symbolid.ID, mode info.ExtractionMode, existing info.Info) info.Info {
	switch d.Kind() {
	case frontend.KindNamespace:
		return e.populateNamespace(d, id, mode, existing)
	case frontend.KindClass, frontend.KindStruct, frontend.KindUnion:
		return e.populateRecord(d, id, mode, existing)
	case frontend.KindFunction, frontend.KindMethod, frontend.KindConstructor, frontend.KindDestructor, frontend.KindConversion:
		return e.populateFunction(d, id, mode, existing)
	case frontend.KindEnum:
		return e.populateEnum(d, id, mode, existing)
	case frontend.KindEnumConstant:
		return e.populateEnumConstant(d, id, mode, existing)
	case frontend.KindTypedef, frontend.KindUsingAlias:
		return e.populateTypedef(d, id, mode, existing)
	case frontend.KindVariable:
		return e.populateVariable(d, id, mode, existing)
	case frontend.KindField:
		return e.populateField(d, id, mode, existing)
	case frontend.KindFriend:
		return e.populateFriend(d, id, mode, existing)
	case frontend.KindUsingDecl, frontend.KindUsingEnumDecl:
		return e.populateUsing(d, id, mode, existing)
	case frontend.KindNamespaceAlias:
		return e.populateNamespaceAlias(d, id, mode, existing)
	case frontend.KindConcept:
		return e.populateConcept(d, id, mode, existing)
	case frontend.KindDeductionGuide:
		return e.populateGuide(d, id, mode, existing)
	case frontend.KindUsingDirective:
		// A using-directive produces no Info of its own; it is recorded
		// directly on the enclosing NamespaceInfo's UsingDirectives list by
		// linkParent.
		return nil
	default:
		return nil
	}
}

func (e *Extractor) populateNamespace(d frontend.Decl, id symbolid.ID, mode info.ExtractionMode, existing info.Info) info.Info {
	common := e.buildCommon(d, id, info.KindNamespace, mode)
	n, ok := existing.(*info.NamespaceInfo)
	if !ok || n == nil {
		n = &info.NamespaceInfo{}
	}
	mergeCommon(&n.Common, common)
	n.IsAnonymous = d.IsAnonymous()
	return n
}

func (e *Extractor) populateRecord(d frontend.Decl, id symbolid.ID, mode info.ExtractionMode, existing info.Info) info.Info {
	common := e.buildCommon(d, id, info.KindRecord, mode)
	r, ok := existing.(*info.RecordInfo)
	if !ok || r == nil {
		r = &info.RecordInfo{}
	}
	mergeCommon(&r.Common, common)
	switch d.Kind() {
	case frontend.KindStruct:
		r.KeyKind = info.KeyStruct
		r.DefaultAccess = info.AccessPublic
	case frontend.KindUnion:
		r.KeyKind = info.KeyUnion
		r.IsUnionLike = true
		r.DefaultAccess = info.AccessPublic
	default:
		r.KeyKind = info.KeyClass
		r.DefaultAccess = info.AccessPrivate
	}
	r.Template = e.buildTemplateInfo(d)
	r.IsFinal = r.IsFinal || d.IsFinal()
	if len(r.Bases) == 0 {
		for _, b := range d.Bases() {
			r.Bases = append(r.Bases, info.BaseInfo{
				Type:      e.buildType(b.Type),
				Access:    translateAccess(b.Access),
				IsVirtual: b.IsVirtual,
			})
		}
	}
	return r
}

func (e *Extractor) populateFunction(d frontend.Decl, id symbolid.ID, mode info.ExtractionMode, existing info.Info) info.Info {
	common := e.buildCommon(d, id, info.KindFunction, mode)
	f, ok := existing.(*info.FunctionInfo)
	if !ok || f == nil {
		f = &info.FunctionInfo{}
	}
	mergeCommon(&f.Common, common)

	switch d.Kind() {
	case frontend.KindConstructor:
		f.Class = info.FunctionCtor
	case frontend.KindDestructor:
		f.Class = info.FunctionDtor
	case frontend.KindConversion:
		f.Class = info.FunctionConv
	default:
		f.Class = info.FunctionNormal
	}

	f.Template = e.buildTemplateInfo(d)
	if e.cfg.SFINAE && f.Requires == nil {
		if cond := liftSFINAE(f.Template); cond != nil {
			f.Requires = cond
		}
	}
	if ret, ok := d.Returns(); ok {
		f.Return = e.buildType(ret)
	}
	f.Params = nil
	for _, p := range d.Params() {
		fp := info.Param{Name: p.Name, Type: &model.NamedType{Name: &model.IdentifierName{Ident: p.TypeWritten}}}
		if p.HasDefault {
			fp.Default = &model.Expr{Written: p.DefaultWritten}
		}
		f.Params = append(f.Params, fp)
	}
	if rc, ok := d.RequiresClauseWritten(); ok && rc != "" {
		f.Requires = &model.Expr{Written: rc}
	}

	f.IsConst = f.IsConst || d.IsConstMethod()
	f.IsVolatile = f.IsVolatile || d.IsVolatileMethod()
	if f.RefQual == model.RefNone {
		f.RefQual = translateRefQualifier(d.MethodRefQualifier())
	}
	if f.Storage == info.StorageNone {
		f.Storage = translateStorage(d.Storage())
	}
	f.IsConstexpr = f.IsConstexpr || d.IsConstexpr()
	f.IsConsteval = f.IsConsteval || d.IsConsteval()
	f.IsVirtual = f.IsVirtual || d.IsVirtual()
	f.IsOverride = f.IsOverride || d.IsOverride()
	f.IsFinal = f.IsFinal || d.IsFinal()
	f.IsPure = f.IsPure || d.IsPure()
	f.IsDefaulted = f.IsDefaulted || d.IsDefaulted()
	f.IsDeleted = f.IsDeleted || d.IsDeleted()
	f.IsVariadic = f.IsVariadic || d.IsVariadic()
	if f.OperatorKind == "" {
		f.OperatorKind = d.OperatorKind()
	}
	if f.Noexcept.Kind == info.NoexceptNone {
		f.Noexcept = translateNoexcept(d.NoexceptSpecifier())
	}
	if f.Explicit.Kind == info.ExplicitNone {
		f.Explicit = translateExplicit(d.ExplicitSpecifier())
	}
	return f
}

func (e *Extractor) populateEnum(d frontend.Decl, id symbolid.ID, mode info.ExtractionMode, existing info.Info) info.Info {
	common := e.buildCommon(d, id, info.KindEnum, mode)
	en, ok := existing.(*info.EnumInfo)
	if !ok || en == nil {
		en = &info.EnumInfo{}
	}
	mergeCommon(&en.Common, common)
	if t, ok := d.Type(); ok {
		en.UnderlyingType = e.buildType(t)
	}
	return en
}

func (e *Extractor) populateEnumConstant(d frontend.Decl, id symbolid.ID, mode info.ExtractionMode, existing info.Info) info.Info {
	common := e.buildCommon(d, id, info.KindEnumConstant, mode)
	ec, ok := existing.(*info.EnumConstantInfo)
	if !ok || ec == nil {
		ec = &info.EnumConstantInfo{}
	}
	mergeCommon(&ec.Common, common)
	return ec
}

func (e *Extractor) populateTypedef(d frontend.Decl, id symbolid.ID, mode info.ExtractionMode, existing info.Info) info.Info {
	common := e.buildCommon(d, id, info.KindTypedef, mode)
	t, ok := existing.(*info.TypedefInfo)
	if !ok || t == nil {
		t = &info.TypedefInfo{}
	}
	mergeCommon(&t.Common, common)
	t.IsUsing = d.Kind() == frontend.KindUsingAlias
	if ty, ok := d.Type(); ok {
		t.Type = e.buildType(ty)
	}
	t.Template = e.buildTemplateInfo(d)
	liftTemplateSFINAE(e.cfg.SFINAE, t.Template)
	return t
}

func (e *Extractor) populateVariable(d frontend.Decl, id symbolid.ID, mode info.ExtractionMode, existing info.Info) info.Info {
	common := e.buildCommon(d, id, info.KindVariable, mode)
	v, ok := existing.(*info.VariableInfo)
	if !ok || v == nil {
		v = &info.VariableInfo{}
	}
	mergeCommon(&v.Common, common)
	if ty, ok := d.Type(); ok {
		v.Type = e.buildType(ty)
	}
	v.Template = e.buildTemplateInfo(d)
	liftTemplateSFINAE(e.cfg.SFINAE, v.Template)
	if v.Storage == info.StorageNone {
		v.Storage = translateStorage(d.Storage())
	}
	v.IsConstexpr = v.IsConstexpr || d.IsConstexpr()
	v.IsConstinit = v.IsConstinit || d.IsConstinit()
	v.IsInline = v.IsInline || d.IsInlineSpecifier()
	v.IsThreadLocal = v.IsThreadLocal || d.IsThreadLocal()
	return v
}

func (e *Extractor) populateField(d frontend.Decl, id symbolid.ID, mode info.ExtractionMode, existing info.Info) info.Info {
	common := e.buildCommon(d, id, info.KindField, mode)
	f, ok := existing.(*info.FieldInfo)
	if !ok || f == nil {
		f = &info.FieldInfo{}
	}
	mergeCommon(&f.Common, common)
	if ty, ok := d.Type(); ok {
		f.Type = e.buildType(ty)
	}
	f.IsBitfield = f.IsBitfield || d.IsBitfield()
	if f.BitfieldWidth == nil {
		if w, ok := d.BitfieldWidth(); ok {
			f.BitfieldWidth = &model.Expr{Written: w.Written}
		}
	}
	f.IsMutable = f.IsMutable || d.IsMutable()
	f.HasNoUniqueAddress = f.HasNoUniqueAddress || d.HasNoUniqueAddress()
	return f
}

func (e *Extractor) populateFriend(d frontend.Decl, id symbolid.ID, mode info.ExtractionMode, existing info.Info) info.Info {
	common := e.buildCommon(d, id, info.KindFriend, mode)
	fr, ok := existing.(*info.FriendInfo)
	if !ok || fr == nil {
		fr = &info.FriendInfo{}
	}
	mergeCommon(&fr.Common, common)
	if ty, ok := d.Type(); ok {
		fr.Type = e.buildType(ty)
	} else if len(d.Children()) > 0 {
		// A decl-friend names one function/function-template declaration,
		// surfaced to us as this friend's sole child.
		e.withMode(ModeDependency, func() {
			fr.Decl, _ = e.Visit(d.Children()[0])
		})
	}
	return fr
}

func (e *Extractor) populateUsing(d frontend.Decl, id symbolid.ID, mode info.ExtractionMode, existing info.Info) info.Info {
	common := e.buildCommon(d, id, info.KindUsing, mode)
	u, ok := existing.(*info.UsingInfo)
	if !ok || u == nil {
		u = &info.UsingInfo{}
	}
	mergeCommon(&u.Common, common)
	if d.Kind() == frontend.KindUsingEnumDecl {
		u.Class = info.UsingEnum
	} else {
		u.Class = info.UsingNormal
	}
	u.IntroducedName = &model.IdentifierName{Ident: d.Name()}
	return u
}

func (e *Extractor) populateNamespaceAlias(d frontend.Decl, id symbolid.ID, mode info.ExtractionMode, existing info.Info) info.Info {
	common := e.buildCommon(d, id, info.KindNamespaceAlias, mode)
	n, ok := existing.(*info.NamespaceAliasInfo)
	if !ok || n == nil {
		n = &info.NamespaceAliasInfo{}
	}
	mergeCommon(&n.Common, common)
	n.AliasedSymbol = &model.IdentifierName{Ident: d.Name()}
	return n
}

func (e *Extractor) populateConcept(d frontend.Decl, id symbolid.ID, mode info.ExtractionMode, existing info.Info) info.Info {
	common := e.buildCommon(d, id, info.KindConcept, mode)
	c, ok := existing.(*info.ConceptInfo)
	if !ok || c == nil {
		c = &info.ConceptInfo{}
	}
	mergeCommon(&c.Common, common)
	c.Template = e.buildTemplateInfo(d)
	if rc, ok := d.RequiresClauseWritten(); ok {
		c.Constraint = model.Expr{Written: rc}
	}
	return c
}

func (e *Extractor) populateGuide(d frontend.Decl, id symbolid.ID, mode info.ExtractionMode, existing info.Info) info.Info {
	common := e.buildCommon(d, id, info.KindGuide, mode)
	g, ok := existing.(*info.GuideInfo)
	if !ok || g == nil {
		g = &info.GuideInfo{}
	}
	mergeCommon(&g.Common, common)
	g.Template = e.buildTemplateInfo(d)
	if ret, ok := d.Returns(); ok {
		g.Deduced = e.buildType(ret)
	}
	g.Params = nil
	for _, p := range d.Params() {
		gp := info.Param{Name: p.Name, Type: &model.NamedType{Name: &model.IdentifierName{Ident: p.TypeWritten}}}
		if p.HasDefault {
			gp.Default = &model.Expr{Written: p.DefaultWritten}
		}
		g.Params = append(g.Params, gp)
	}
	if g.Explicit.Kind == info.ExplicitNone {
		g.Explicit = translateExplicit(d.ExplicitSpecifier())
	}
	return g
}
