package config

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchKind tags how (and whether) a pattern set matched a qualified
// symbol name, mirroring the cached filter-pipeline result the
// extractor's classify step keeps.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchStrict
	MatchLiteral
	MatchPrefix
)

// toGlobPath rewrites a `::`-separated qualified symbol name into a
// `/`-separated path so doublestar's `*`/`**` semantics (component vs.
// arbitrary-depth wildcards) apply to scope boundaries the way these
// glob-like patterns intend.
func toGlobPath(qualifiedName string) string {
	return strings.ReplaceAll(qualifiedName, "::", "/")
}

// MatchPattern reports whether qualifiedName matches pattern, both
// written with `::` as the scope separator and `*`/`**` as wildcards.
func MatchPattern(pattern, qualifiedName string) bool {
	ok, err := doublestar.Match(toGlobPath(pattern), toGlobPath(qualifiedName))
	return err == nil && ok
}

// MatchAny reports the strongest match among patterns against
// qualifiedName: Strict if some pattern matches it literally or via
// wildcard, Prefix if qualifiedName is itself a literal prefix of some
// pattern (keeping an ancestor scope reachable so a deeper match further
// down the namespace is still possible), else None. A name that is the
// literal portion of a wildcard pattern ("ns::detail" against
// "ns::detail::**") is a Prefix match, not Strict. MatchAny does not
// consult IsLiteral.
func MatchAny(patterns []string, qualifiedName string) (MatchKind, string) {
	for _, p := range patterns {
		if MatchPattern(p, qualifiedName) && !isPrefixOf(qualifiedName, p) {
			return MatchStrict, p
		}
	}
	for _, p := range patterns {
		if isPrefixOf(qualifiedName, p) {
			return MatchPrefix, p
		}
	}
	return MatchNone, ""
}

// IsLiteral reports whether pattern contains no glob metacharacters, per
// the "literal-namespace rule": a pattern with no wildcard names exactly
// one scope rather than a family of them.
func IsLiteral(pattern string) bool {
	return !strings.ContainsAny(pattern, "*?[")
}

// isPrefixOf reports whether name equals, or is a `::`-segment prefix of,
// pattern's literal portion (the part before its first wildcard segment).
// A pattern with no wildcard has no literal portion and never matches.
func isPrefixOf(name, pattern string) bool {
	literalPrefix := pattern
	if i := strings.IndexAny(pattern, "*?["); i >= 0 {
		literalPrefix = pattern[:i]
	}
	literalPrefix = strings.TrimSuffix(literalPrefix, "::")
	if literalPrefix == "" || literalPrefix == pattern {
		return false
	}
	return literalPrefix == name || strings.HasPrefix(literalPrefix, name+"::")
}
