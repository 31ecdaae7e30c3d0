package extractor

import (
	"strings"

	"github.com/corpusdoc/cxxref/internal/config"
	"github.com/corpusdoc/cxxref/internal/frontend"
	"github.com/corpusdoc/cxxref/internal/info"
	"github.com/corpusdoc/cxxref/internal/symbolid"
)

// matchKindTag is the cached match provenance the filter pipeline
// remembers alongside the resolved mode.
type matchKindTag int

const (
	matchNone matchKindTag = iota
	matchStrict
	matchLiteral
	matchPrefix
	matchStrictParent
	matchLiteralParent
)

// propagates reports whether a match kind extends to descendants (rules
// 3/4/6); Prefix matches exist only to keep an ancestor reachable and do
// not propagate.
func (k matchKindTag) propagates() bool {
	switch k {
	case matchStrict, matchLiteral, matchStrictParent, matchLiteralParent:
		return true
	default:
		return false
	}
}

type filterResult struct {
	Mode      info.ExtractionMode
	MatchKind matchKindTag
	Excluded  bool
}

// classify runs the eight-step filter pipeline for d (already identified
// as id), memoising the result.
func (e *Extractor) classify(d frontend.Decl, id symbolid.ID) filterResult {
	if r, ok := e.filterCache[id]; ok {
		return r
	}
	r := e.computeFilter(d)
	e.filterCache[id] = r
	return r
}

func (e *Extractor) computeFilter(d frontend.Decl) filterResult {
	// 1. Kind/type filter.
	if kindFiltered(d, e.cfg) {
		return filterResult{Mode: info.Dependency, MatchKind: matchNone}
	}

	qn := d.Qualified()

	// 2. Exclude-symbols filter, with parent-exclusion inheritance.
	if e.parentExcluded(d) {
		return filterResult{Mode: info.Dependency, MatchKind: matchNone, Excluded: true}
	}
	if kind, _ := config.MatchAny(e.cfg.ExcludeSymbols, qn); kind == config.MatchStrict {
		return filterResult{Mode: info.Dependency, MatchKind: matchNone, Excluded: true}
	}

	// 3/4. Tiered match against implementation-defined, see-below,
	// include-symbols, with the literal-namespace rule folded in: a
	// literal pattern also matches any descendant scope.
	tiers := []struct {
		patterns []string
		mode     info.ExtractionMode
	}{
		{e.cfg.ImplementationDefined, info.ImplementationDefined},
		{e.cfg.SeeBelow, info.SeeBelow},
		{e.cfg.IncludeSymbols, info.Regular},
	}
	for _, tier := range tiers {
		if mk, matched := tierMatch(tier.patterns, qn); mk != matchNone {
			_ = matched
			return filterResult{Mode: tier.mode, MatchKind: mk}
		}
	}

	// 5/6. Parent inheritance: a propagating parent match carries its
	// mode down, demoted to a *Parent match kind; a SeeBelow parent
	// demotes record (non-namespace) children to Dependency.
	if parent, ok := e.parentFilterResult(d); ok && parent.MatchKind.propagates() {
		mode := parent.Mode
		if parent.Mode == info.SeeBelow && d.Kind() != frontend.KindNamespace {
			mode = info.Dependency
		}
		mk := matchLiteralParent
		if parent.MatchKind == matchStrict {
			mk = matchStrictParent
		}
		return filterResult{Mode: mode, MatchKind: mk}
	}

	// 7. File filter.
	if !e.passesFileFilter(d) {
		return filterResult{Mode: info.Dependency, MatchKind: matchNone}
	}

	// 8. Default.
	if len(e.cfg.IncludeSymbols) == 0 {
		return filterResult{Mode: info.Regular, MatchKind: matchNone}
	}
	return filterResult{Mode: info.Dependency, MatchKind: matchNone}
}

// tierMatch matches qn against one tier's patterns, folding the
// literal-namespace rule (a literal pattern also covers its descendants)
// and the prefix rule (qn is itself an ancestor of some pattern) into the
// single tiered step.
func tierMatch(patterns []string, qn string) (matchKindTag, string) {
	for _, p := range patterns {
		if config.MatchPattern(p, qn) {
			return matchStrict, p
		}
	}
	for _, p := range patterns {
		if config.IsLiteral(p) && (qn == p || strings.HasPrefix(qn, p+"::")) {
			return matchLiteral, p
		}
	}
	for _, p := range patterns {
		if isPrefixOf(qn, p) {
			return matchPrefix, p
		}
	}
	return matchNone, ""
}

func isPrefixOf(qn, pattern string) bool {
	lit := pattern
	if i := strings.IndexAny(pattern, "*?["); i >= 0 {
		lit = pattern[:i]
	}
	lit = strings.TrimSuffix(lit, "::")
	if lit == "" || lit == pattern {
		return false
	}
	return lit == qn || strings.HasPrefix(lit, qn+"::")
}

func kindFiltered(d frontend.Decl, cfg *config.Config) bool {
	if d.IsImplicit() {
		return true
	}
	if d.Access() == frontend.AccessPrivate && !cfg.ExtractPrivate {
		if !(cfg.ExtractPrivateVirtual && d.IsVirtual()) {
			return true
		}
	}
	if d.Kind() == frontend.KindNamespace && d.IsAnonymous() && !cfg.ExtractAnonymousNamespaces {
		return true
	}
	if d.IsFileScopeStatic() && !cfg.ExtractStatic {
		return true
	}
	if d.IsLocalClass() && !cfg.ExtractLocalClasses {
		return true
	}
	return false
}

// parentExcluded and parentFilterResult look up the cached result for
// this declaration's lexical parent, identified by qualified-name prefix
// (the filter cache is keyed by id, and ids aren't available for a
// not-yet-visited ancestor from here, so this walks the qualified-name
// index populated as ancestors were visited).
func (e *Extractor) parentExcluded(d frontend.Decl) bool {
	r, ok := e.parentFilterResult(d)
	return ok && r.Excluded
}

func (e *Extractor) parentFilterResult(d frontend.Decl) (filterResult, bool) {
	qn := d.Qualified()
	i := strings.LastIndex(qn, "::")
	if i < 0 {
		return filterResult{}, false
	}
	parentQN := qn[:i]
	parentID, ok := e.byQualifiedName[parentQN]
	if !ok {
		return filterResult{}, false
	}
	r, ok := e.filterCache[parentID]
	return r, ok
}

// passesFileFilter applies the input/exclude/file-patterns rules to d's
// primary location. With no Input configured, every declaration passes
// (there is nothing to restrict to).
func (e *Extractor) passesFileFilter(d frontend.Decl) bool {
	if len(e.cfg.Input) == 0 {
		return true
	}
	locs := d.Locations()
	if len(locs) == 0 {
		return true
	}
	path := locs[0].FullPath
	under := false
	for _, root := range e.cfg.Input {
		if strings.HasPrefix(path, root) {
			under = true
			break
		}
	}
	if !under {
		return false
	}
	for _, ex := range e.cfg.Exclude {
		if path == ex {
			return false
		}
	}
	for _, ex := range e.cfg.ExcludePatterns {
		if config.MatchPattern(ex, path) {
			return false
		}
	}
	if len(e.cfg.FilePatterns) > 0 {
		matched := false
		for _, p := range e.cfg.FilePatterns {
			if config.MatchPattern(p, path) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
