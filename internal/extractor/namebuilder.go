package extractor

import (
	"strings"

	"github.com/corpusdoc/cxxref/internal/frontend"
	"github.com/corpusdoc/cxxref/internal/model"
	"github.com/corpusdoc/cxxref/internal/symbolid"
)

// buildNameForDecl resolves decl into a model.Name chain, pulling decl in
// as a Dependency ("referenced-but-not-selected symbols still resolve")
// if it has not already been visited, and synthesizing
// ancestor IdentifierName links from its qualified spelling when those
// ancestors are not independently available as Decl values.
func (e *Extractor) buildNameForDecl(decl frontend.Decl) model.Name {
	id := e.resolveDependency(decl)

	segments := strings.Split(decl.Qualified(), "::")
	if len(segments) == 0 {
		segments = []string{decl.Name()}
	}

	var prefix model.Name
	for i := 0; i < len(segments)-1; i++ {
		prefix = &model.IdentifierName{Ident: segments[i], PrefixName: prefix}
	}

	if len(decl.TemplateArgs()) > 0 {
		args := make([]model.TArg, 0, len(decl.TemplateArgs()))
		for _, a := range decl.TemplateArgs() {
			args = append(args, e.buildTArg(a))
		}
		return &model.SpecializationName{
			Ident:      segments[len(segments)-1],
			PrefixName: prefix,
			SymbolID:   id,
			Args:       args,
		}
	}

	return &model.IdentifierName{
		Ident:      segments[len(segments)-1],
		PrefixName: prefix,
		SymbolID:   id,
	}
}

// resolveDependency returns decl's id, visiting it in Dependency mode if
// it has not already entered the Corpus (a reference reached only through
// a type or a name must still resolve, even when the referenced symbol
// itself would otherwise be filtered out).
func (e *Extractor) resolveDependency(decl frontend.Decl) symbolid.ID {
	if qn := decl.Qualified(); qn != "" {
		if id, ok := e.byQualifiedName[qn]; ok {
			return id
		}
	}
	var id symbolid.ID
	var ok bool
	e.withMode(ModeDependency, func() {
		id, ok = e.Visit(decl)
	})
	if !ok {
		return symbolid.Invalid
	}
	return id
}

// buildTArg lowers a frontend.TemplateArg into a model.TArg. Written-only
// arguments (no frontend distinction between a type and a constant beyond
// the IsType flag) lower to the closest matching shape; a constant
// argument's value is not constant-evaluated here, only its text retained.
func (e *Extractor) buildTArg(a frontend.TemplateArg) model.TArg {
	common := model.CommonTArg{IsPackExpansion: a.IsPackExpansion}
	if a.IsType {
		return &model.TypeTArg{
			CommonTArg: common,
			Type:       &model.NamedType{Name: &model.IdentifierName{Ident: a.Written}},
		}
	}
	return &model.ConstantTArg{
		CommonTArg: common,
		Value:      model.Expr{Written: a.Written},
	}
}
