package extractor

import (
	"regexp"
	"strings"

	"github.com/corpusdoc/cxxref/internal/model"
)

var enableIfPattern = regexp.MustCompile(`(?i)\benable_if(_t)?\s*<(.*)>\s*$`)

// liftSFINAE detects a trailing `enable_if`/`enable_if_t` template
// parameter default and promotes its controlling condition to a requires
// expression, removing the parameter from ti's list: a function written
// with the pre-C++20 SFINAE idiom is presented the same
// way a function written with `requires` would be. Returns nil, leaving
// ti untouched, when the last parameter isn't shaped this way.
func liftSFINAE(ti *model.TemplateInfo) *model.Expr {
	if ti == nil || len(ti.Params) == 0 {
		return nil
	}
	last := ti.Params[len(ti.Params)-1]
	tp, ok := last.(*model.TypeTParam)
	if !ok || tp.Default == nil {
		return nil
	}
	named, ok := tp.Default.(*model.NamedType)
	if !ok || named.Name == nil {
		return nil
	}
	m := enableIfPattern.FindStringSubmatch(named.Name.Identifier())
	if m == nil {
		return nil
	}
	cond := firstTemplateArgument(m[2])
	if cond == "" {
		return nil
	}
	ti.Params = ti.Params[:len(ti.Params)-1]
	return &model.Expr{Written: cond}
}

// liftTemplateSFINAE lifts into ti.Requires directly, for the variants
// (Typedef, Variable) whose Info has nowhere else to hold a promoted
// condition.
func liftTemplateSFINAE(enabled bool, ti *model.TemplateInfo) {
	if !enabled || ti == nil || ti.Requires.Written != "" {
		return
	}
	if cond := liftSFINAE(ti); cond != nil {
		ti.Requires = *cond
	}
}

// firstTemplateArgument returns the first top-level comma-separated
// argument of a template-argument-list string — the controlling condition
// in `enable_if<Cond, T>`.
func firstTemplateArgument(args string) string {
	depth := 0
	for i, r := range args {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				return strings.TrimSpace(args[:i])
			}
		}
	}
	return strings.TrimSpace(args)
}
