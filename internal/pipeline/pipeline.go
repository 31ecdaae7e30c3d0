// Package pipeline is the concurrency and resource model for extraction:
// a thread pool runs one Extractor per translation unit, each
// owning its own frontend session and working Corpus fragment, and a
// single-threaded, deterministic merge step folds the finished fragments
// into the final Corpus once every TU has run.
package pipeline

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/corpusdoc/cxxref/internal/compiledb"
	"github.com/corpusdoc/cxxref/internal/config"
	"github.com/corpusdoc/cxxref/internal/corpus"
	"github.com/corpusdoc/cxxref/internal/corpuserr"
	"github.com/corpusdoc/cxxref/internal/extractor"
	"github.com/corpusdoc/cxxref/internal/frontend"
)

// TUSource is the seam a real frontend binding fills in: given one
// compile-database entry (already argument-adjusted), produce the root
// declaration of that translation unit. Driving an actual C++ frontend is
// out of scope for this module; frontend.Fake plays this role in tests,
// and is what this package's own tests exercise against.
type TUSource interface {
	Parse(ctx context.Context, entry frontend.Entry) (frontend.Decl, error)
}

// Result is the outcome of a full pipeline run: the merged Corpus plus
// every non-fatal diagnostic collected along the way (extraction
// warnings and per-TU frontend errors when ignore-failures is true).
type Result struct {
	Corpus   *corpus.Corpus
	Warnings []error
}

// tuOutcome is one worker's contribution, collected before the
// single-threaded merge step runs.
type tuOutcome struct {
	index    int
	entry    frontend.Entry
	fragment *corpus.Corpus
	warnings []error
	err      error
}

// Run extracts every entry db reports, adjusting each entry's arguments
// per adjust, running up to cfg.Concurrency Extractors concurrently, and
// merging their fragments into one Corpus in entry order: single-threaded
// and deterministic given a fixed ordering of TUs.
//
// A per-TU frontend error is logged and, by default, does not abort the
// run; set cfg.IgnoreFailures=false to fail the whole run once every TU
// has finished, draining the pool before reporting failure.
func Run(ctx context.Context, cfg *config.Config, db frontend.Database, src TUSource, adjust compiledb.AdjustOptions, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	entries, err := db.Entries()
	if err != nil {
		return nil, &corpuserr.InputError{Msg: "loading compile database", Err: err}
	}
	if len(entries) == 0 {
		return nil, &corpuserr.InputError{Msg: "no translation units in compile database"}
	}

	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	outcomes := make([]tuOutcome, len(entries))
	for i, e := range entries {
		i, e := i, e
		e.Arguments = compiledb.AdjustArguments(e.Directory, e.Arguments, adjust)
		g.Go(func() error {
			outcomes[i] = runOne(gctx, cfg, src, i, e, logger)
			if outcomes[i].err != nil && !cfg.IgnoreFailures {
				return outcomes[i].err
			}
			return nil
		})
	}

	// errgroup cancels gctx on first error but still lets every already
	// running goroutine finish its current (non-suspending) populate step
	// before returning: cancellable at TU granularity, never mid-populate.
	groupErr := g.Wait()

	final := corpus.New()
	var warnings []error
	for _, o := range outcomes {
		if o.err != nil {
			logger.Warn("translation unit failed", zap.String("file", o.entry.File), zap.Error(o.err))
			warnings = append(warnings, &corpuserr.FrontendError{TU: o.entry.File, Err: o.err})
		}
		if o.fragment == nil {
			continue
		}
		corpus.Merge(final, o.fragment)
		warnings = append(warnings, o.warnings...)
	}

	if groupErr != nil && !cfg.IgnoreFailures {
		return &Result{Corpus: final, Warnings: warnings}, groupErr
	}

	sort.Slice(warnings, func(i, j int) bool { return warnings[i].Error() < warnings[j].Error() })
	return &Result{Corpus: final, Warnings: warnings}, nil
}

func runOne(ctx context.Context, cfg *config.Config, src TUSource, index int, entry frontend.Entry, logger *zap.Logger) tuOutcome {
	tu, err := src.Parse(ctx, entry)
	if err != nil {
		return tuOutcome{index: index, entry: entry, err: fmt.Errorf("parsing %s: %w", entry.File, err)}
	}

	fragment := corpus.New()
	ex := extractor.New(cfg, fragment)
	ex.VisitTranslationUnit(tu)

	for _, w := range ex.Warnings() {
		logger.Debug("extraction warning", zap.String("file", entry.File), zap.Error(w))
	}

	return tuOutcome{index: index, entry: entry, fragment: fragment, warnings: ex.Warnings()}
}
