package corpus

import (
	"sort"

	"github.com/corpusdoc/cxxref/internal/info"
	"github.com/corpusdoc/cxxref/internal/model"
	"github.com/corpusdoc/cxxref/internal/symbolid"
)

// Merge folds src, a completed per-translation-unit Corpus fragment, into
// dst, applying the same merge rules extraction uses for redeclarations
// within one TU, but at the cross-fragment boundary rather than at
// populate time. The caller merges fragments one at a time in TU-ingest
// order; src is not read again afterwards.
//
// Per-id field merges are commutative (union, first-non-empty-wins, OR),
// so the order fragment ids are visited in does not affect the result;
// they are sorted only for reproducible diagnostics.
func Merge(dst *Corpus, src *Corpus) {
	ids := make([]symbolid.ID, 0, len(src.infos))
	for id := range src.infos {
		if id == symbolid.Global {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	mergeCommonFields(&dst.global.Common, src.global.Common)
	dst.global.Members = unionIDs(dst.global.Members, src.global.Members)
	dst.global.UsingDirectives = unionIDs(dst.global.UsingDirectives, src.global.UsingDirectives)
	dst.global.IsInline = dst.global.IsInline || src.global.IsInline

	for _, id := range ids {
		s := src.infos[id]
		if d, ok := dst.infos[id]; ok {
			mergeInfo(d, s)
			continue
		}
		dst.infos[id] = s
	}
}

// unionIDs appends ids from src not already present in dst, preserving
// dst's existing order and src's relative order for new entries: the
// concatenation of per-TU contributions in TU-ingest order, with set
// semantics.
func unionIDs(dst, src []symbolid.ID) []symbolid.ID {
	if len(src) == 0 {
		return dst
	}
	seen := make(map[symbolid.ID]struct{}, len(dst))
	for _, id := range dst {
		seen[id] = struct{}{}
	}
	for _, id := range src {
		if _, ok := seen[id]; ok {
			continue
		}
		dst = append(dst, id)
		seen[id] = struct{}{}
	}
	return dst
}

func hasLoc(locs []info.Location, loc info.Location) bool {
	for _, l := range locs {
		if l.LineNumber == loc.LineNumber && l.FullPath == loc.FullPath {
			return true
		}
	}
	return false
}

// mergeCommonFields applies the shared merge rules to the fields every
// Info variant carries: first non-empty name/namespace chain wins, access is
// overwritten by whichever side actually carries one, extraction mode
// takes the lattice meet, a definition location only replaces "no
// definition location yet", declaration locations dedupe by
// (line, full_path), the first comment found wins, and attributes union.
func mergeCommonFields(dst *info.Common, src info.Common) {
	if dst.Name == "" {
		dst.Name = src.Name
	}
	if dst.Parent == symbolid.Invalid {
		dst.Parent = src.Parent
	}
	if len(dst.Namespace) == 0 {
		dst.Namespace = src.Namespace
	}
	if src.Access != info.AccessNone {
		dst.Access = src.Access
	}
	dst.Extraction = info.LeastSpecific(dst.Extraction, src.Extraction)
	if dst.Doc == nil {
		dst.Doc = src.Doc
	}
	if src.DefLoc != nil && dst.DefLoc == nil {
		defLoc := *src.DefLoc
		dst.DefLoc = &defLoc
	}
	for _, loc := range src.Loc {
		if !hasLoc(dst.Loc, loc) {
			dst.Loc = append(dst.Loc, loc)
		}
	}
	for a := range src.Attributes {
		dst.AddAttribute(a)
	}
}

func isZeroExpr(e model.Expr) bool { return e.Written == "" && !e.HasValue }

// mergeInfo dispatches on dst's kind to fold src's kind-specific fields
// into it, alongside the shared Common merge. dst and src are always the
// same concrete kind: both came from populating the same SymbolID.
func mergeInfo(dst, src info.Info) {
	mergeCommonFields(dst.CommonInfo(), *src.CommonInfo())

	switch d := dst.(type) {
	case *info.NamespaceInfo:
		s := src.(*info.NamespaceInfo)
		d.Members = unionIDs(d.Members, s.Members)
		d.UsingDirectives = unionIDs(d.UsingDirectives, s.UsingDirectives)
		d.IsAnonymous = d.IsAnonymous || s.IsAnonymous
		d.IsInline = d.IsInline || s.IsInline

	case *info.RecordInfo:
		s := src.(*info.RecordInfo)
		d.Members = unionIDs(d.Members, s.Members)
		d.Public = unionIDs(d.Public, s.Public)
		d.Protected = unionIDs(d.Protected, s.Protected)
		d.Private = unionIDs(d.Private, s.Private)
		d.Friends = unionIDs(d.Friends, s.Friends)
		if d.Template == nil {
			d.Template = s.Template
		}
		if len(d.Bases) == 0 {
			d.Bases = s.Bases
		}
		d.IsFinal = d.IsFinal || s.IsFinal
		d.IsUnionLike = d.IsUnionLike || s.IsUnionLike
		if d.DefaultAccess == info.AccessNone {
			d.DefaultAccess = s.DefaultAccess
		}

	case *info.FunctionInfo:
		s := src.(*info.FunctionInfo)
		if len(d.Params) == 0 {
			d.Params = s.Params
		}
		if d.Return == nil {
			d.Return = s.Return
		}
		if d.Template == nil {
			d.Template = s.Template
		}
		if d.Requires == nil {
			d.Requires = s.Requires
		}
		d.IsConst = d.IsConst || s.IsConst
		d.IsVolatile = d.IsVolatile || s.IsVolatile
		d.IsConstexpr = d.IsConstexpr || s.IsConstexpr
		d.IsConsteval = d.IsConsteval || s.IsConsteval
		d.IsVirtual = d.IsVirtual || s.IsVirtual
		d.IsOverride = d.IsOverride || s.IsOverride
		d.IsFinal = d.IsFinal || s.IsFinal
		d.IsPure = d.IsPure || s.IsPure
		d.IsDefaulted = d.IsDefaulted || s.IsDefaulted
		d.IsDeleted = d.IsDeleted || s.IsDeleted
		d.IsVariadic = d.IsVariadic || s.IsVariadic
		if d.OperatorKind == "" {
			d.OperatorKind = s.OperatorKind
		}
		if d.Noexcept.Kind == info.NoexceptNone {
			d.Noexcept = s.Noexcept
		}
		if d.Explicit.Kind == info.ExplicitNone {
			d.Explicit = s.Explicit
		}

	case *info.EnumInfo:
		s := src.(*info.EnumInfo)
		d.Constants = unionIDs(d.Constants, s.Constants)
		if d.UnderlyingType == nil {
			d.UnderlyingType = s.UnderlyingType
		}
		d.Scoped = d.Scoped || s.Scoped

	case *info.EnumConstantInfo:
		// Initializer is set on the first contributing declaration only;
		// nothing here can be more authoritative than that.

	case *info.TypedefInfo:
		s := src.(*info.TypedefInfo)
		if d.Type == nil {
			d.Type = s.Type
		}
		if d.Template == nil {
			d.Template = s.Template
		}
		d.IsUsing = d.IsUsing || s.IsUsing

	case *info.VariableInfo:
		s := src.(*info.VariableInfo)
		if d.Type == nil {
			d.Type = s.Type
		}
		if d.Initializer == nil {
			d.Initializer = s.Initializer
		}
		if d.Template == nil {
			d.Template = s.Template
		}
		d.IsConstexpr = d.IsConstexpr || s.IsConstexpr
		d.IsConstinit = d.IsConstinit || s.IsConstinit
		d.IsInline = d.IsInline || s.IsInline
		d.IsThreadLocal = d.IsThreadLocal || s.IsThreadLocal

	case *info.FieldInfo:
		s := src.(*info.FieldInfo)
		if d.Type == nil {
			d.Type = s.Type
		}
		if d.Default == nil {
			d.Default = s.Default
		}
		if d.BitfieldWidth == nil {
			d.BitfieldWidth = s.BitfieldWidth
		}
		d.IsBitfield = d.IsBitfield || s.IsBitfield
		d.IsMutable = d.IsMutable || s.IsMutable
		d.HasNoUniqueAddress = d.HasNoUniqueAddress || s.HasNoUniqueAddress

	case *info.FriendInfo:
		s := src.(*info.FriendInfo)
		if d.Type == nil {
			d.Type = s.Type
		}
		if d.Decl == symbolid.Invalid {
			d.Decl = s.Decl
		}

	case *info.GuideInfo:
		s := src.(*info.GuideInfo)
		if len(d.Params) == 0 {
			d.Params = s.Params
		}
		if d.Deduced == nil {
			d.Deduced = s.Deduced
		}
		if d.Template == nil {
			d.Template = s.Template
		}
		if d.Explicit.Kind == info.ExplicitNone {
			d.Explicit = s.Explicit
		}

	case *info.ConceptInfo:
		s := src.(*info.ConceptInfo)
		if d.Template == nil {
			d.Template = s.Template
		}
		if isZeroExpr(d.Constraint) {
			d.Constraint = s.Constraint
		}

	case *info.NamespaceAliasInfo:
		// AliasedSymbol is set once, from whichever declaration is seen
		// first; nothing to fold.

	case *info.UsingInfo:
		s := src.(*info.UsingInfo)
		d.ShadowDeclarations = unionIDs(d.ShadowDeclarations, s.ShadowDeclarations)

	case *info.OverloadsInfo:
		s := src.(*info.OverloadsInfo)
		d.Members = unionIDs(d.Members, s.Members)

	case *info.SpecializationInfo:
		s := src.(*info.SpecializationInfo)
		d.Members = unionIDs(d.Members, s.Members)
		if d.Primary == symbolid.Invalid {
			d.Primary = s.Primary
		}
	}
}
