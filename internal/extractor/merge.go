package extractor

import (
	"github.com/corpusdoc/cxxref/internal/info"
	"github.com/corpusdoc/cxxref/internal/symbolid"
)

// mergeCommon folds fresh into dst in place, applying the merge rules
// for a symbol seen across more than one declaration or translation
// unit: locations accumulate (skipping one already recorded at the same
// line and path), the first comment found wins, the first definition
// location found is kept, attributes union, and a later redeclaration's
// access specifier overwrites (a
// friend declaration inside a class body can tighten what an out-of-line
// definition originally implied).
func mergeCommon(dst *info.Common, fresh info.Common) {
	if dst.Name == "" {
		dst.Name = fresh.Name
	}
	if fresh.Access != info.AccessNone {
		dst.Access = fresh.Access
	}
	dst.Extraction = fresh.Extraction
	for _, loc := range fresh.Loc {
		dup := false
		for _, l := range dst.Loc {
			if l.LineNumber == loc.LineNumber && l.FullPath == loc.FullPath {
				dup = true
				break
			}
		}
		if !dup {
			dst.Loc = append(dst.Loc, loc)
		}
	}
	if fresh.DefLoc != nil && dst.DefLoc == nil {
		dst.DefLoc = fresh.DefLoc
	}
	if dst.Doc == nil {
		dst.Doc = fresh.Doc
	}
	for a := range fresh.Attributes {
		dst.AddAttribute(a)
	}
}

// appendUnique appends id to ids unless it is already present.
func appendUnique(ids []symbolid.ID, id symbolid.ID) []symbolid.ID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
