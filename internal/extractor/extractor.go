// Package extractor is the visitor that walks frontend.Decl trees and
// populates a corpus.Corpus, the bulk of the system: it
// resolves types and names via the sub-builders in typebuilder.go and
// namebuilder.go, applies the filter pipeline in filter.go, merges across
// redeclarations per merge.go, and tracks undocumented symbols per
// undocumented.go.
package extractor

import (
	"crypto/sha1"
	"encoding/hex"

	"github.com/corpusdoc/cxxref/internal/config"
	"github.com/corpusdoc/cxxref/internal/corpus"
	"github.com/corpusdoc/cxxref/internal/corpuserr"
	"github.com/corpusdoc/cxxref/internal/doc"
	"github.com/corpusdoc/cxxref/internal/frontend"
	"github.com/corpusdoc/cxxref/internal/info"
	"github.com/corpusdoc/cxxref/internal/symbolid"
)

// Mode is the dynamic, stack-scoped traversal mode, the first of two
// independent dimensions extraction tracks. It is distinct from
// info.ExtractionMode, the per-symbol mode stored on an Info.
type Mode int

const (
	ModeRegular Mode = iota
	ModeDependency
	ModeBaseClass
)

// Extractor walks one translation unit's declarations into a working
// Corpus fragment. Each worker owns its own Extractor; a single
// Extractor's operations are strictly sequential.
type Extractor struct {
	cfg    *config.Config
	corpus *corpus.Corpus

	mode Mode

	filterCache map[symbolid.ID]filterResult
	undoc       map[symbolid.ID]*corpuserr.ExtractionWarning
	warnings    []error

	// pendingFriendDocs is allocated but never written or read:
	// handleFriend copies a friend's comment only onto a target already in
	// the Corpus, and a friend seen before its target leaves nothing here.
	pendingFriendDocs map[symbolid.ID]string

	// byQualifiedName indexes every id seen so far by the frontend's own
	// qualified spelling, so `@ref`/`@copydetails` commands written
	// against that spelling resolve during this TU's doc assembly.
	byQualifiedName map[string]symbolid.ID
}

// New returns an Extractor that populates c according to cfg.
func New(cfg *config.Config, c *corpus.Corpus) *Extractor {
	return &Extractor{
		cfg:               cfg,
		corpus:            c,
		mode:              ModeRegular,
		filterCache:       make(map[symbolid.ID]filterResult),
		undoc:             make(map[symbolid.ID]*corpuserr.ExtractionWarning),
		pendingFriendDocs: make(map[symbolid.ID]string),
		byQualifiedName:   make(map[string]symbolid.ID),
	}
}

// Warnings returns the extraction warnings accumulated so far, including
// any still-outstanding undocumented-symbol entries.
func (e *Extractor) Warnings() []error {
	out := append([]error(nil), e.warnings...)
	for _, w := range e.undoc {
		out = append(out, w)
	}
	return out
}

// withMode runs fn with the traversal mode temporarily set to m,
// restoring the previous value on return even if fn panics, per the
// "scoped state restoration" design note.
func (e *Extractor) withMode(m Mode, fn func()) {
	prev := e.mode
	e.mode = m
	defer func() { e.mode = prev }()
	fn()
}

// VisitTranslationUnit walks every top-level declaration of a
// translation unit in Regular mode.
func (e *Extractor) VisitTranslationUnit(tu frontend.Decl) {
	for _, child := range tu.Children() {
		e.Visit(child)
	}
}

// Visit runs the visit protocol for one declaration.
func (e *Extractor) Visit(d frontend.Decl) (symbolid.ID, bool) {
	id := e.identify(d)
	if !id.IsValid() {
		return symbolid.Invalid, false
	}
	if qn := d.Qualified(); qn != "" {
		e.byQualifiedName[qn] = id
	}

	fr := e.classify(d, id)
	if fr.Mode == info.Dependency && e.mode == ModeRegular {
		return symbolid.Invalid, false
	}

	existing, hadExisting := e.corpus.Find(id)
	mode := fr.Mode
	if hadExisting {
		mode = info.LeastSpecific(existing.CommonInfo().Extraction, fr.Mode)
	}

	i := e.populate(d, id, mode, existing)
	if i == nil {
		return symbolid.Invalid, false
	}
	e.corpus.Put(i)

	e.trackUndocumented(d, i)

	if d.Kind() == frontend.KindFriend {
		e.handleFriend(d, i)
	}

	e.traverseMembers(d, i)
	e.linkParent(d, i)

	return id, true
}

// identify computes a declaration's SymbolID, applying the
// disambiguation suffixes a stable identity scheme calls for.
func (e *Extractor) identify(d frontend.Decl) symbolid.ID {
	if d.Kind() == frontend.KindTranslationUnit {
		return symbolid.Global
	}
	fp := d.Fingerprint()
	switch d.Kind() {
	case frontend.KindUsingDirective:
		fp += symbolid.SuffixUsingDirective
	case frontend.KindUsingDecl:
		fp += symbolid.SuffixUsingDecl
	case frontend.KindUsingEnumDecl:
		fp += symbolid.SuffixUsingEnumDecl
	case frontend.KindNamespaceAlias:
		fp += symbolid.SuffixNamespaceAlias
	case frontend.KindFriend:
		fp += symbolid.SuffixFriend
	}
	requiresHash := ""
	if rc, ok := d.RequiresClauseWritten(); ok && rc != "" {
		requiresHash = stableHash(substituteForSFINAE(rc))
	}
	return symbolid.Generate(fp, requiresHash)
}

// stableHash is the hash primitive SymbolID generation uses for a
// substituted requires-clause.
func stableHash(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// substituteForSFINAE is a SFINAE-safe substitution of a requires-clause
// prior to hashing: today this is the identity function, since the
// frontend boundary already hands over clause text with template
// parameters named consistently within one declaration. A real frontend
// binding would canonicalise parameter names here so that alpha-equivalent
// clauses hash identically.
func substituteForSFINAE(s string) string { return s }

// resolver adapts an Extractor into a doc.Resolver backed by the
// qualified-name index built during this TU's traversal.
type resolver struct{ e *Extractor }

func (r resolver) Resolve(qualifiedName string) (symbolid.ID, bool) {
	id, ok := r.e.byQualifiedName[qualifiedName]
	return id, ok
}

func (e *Extractor) docResolver() doc.Resolver { return resolver{e: e} }
