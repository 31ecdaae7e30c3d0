package extractor

import (
	"github.com/corpusdoc/cxxref/internal/corpuserr"
	"github.com/corpusdoc/cxxref/internal/frontend"
	"github.com/corpusdoc/cxxref/internal/info"
)

// trackUndocumented maintains the per-TU undocumented-symbol set: a
// Regular, non-namespace symbol without a doc comment is recorded, and
// the record is dropped as soon as a later redeclaration
// supplies one. Gated on warn-if-undocumented and only meaningful when
// extract-all is off (extract-all already extracts everything regardless
// of documentation, so the warning would be universal noise).
func (e *Extractor) trackUndocumented(d frontend.Decl, i info.Info) {
	if !e.cfg.WarnIfUndocumented || e.cfg.ExtractAll {
		return
	}
	c := i.CommonInfo()
	if c.Kind == info.KindNamespace || c.Extraction != info.Regular || c.Doc != nil {
		delete(e.undoc, c.ID)
		return
	}

	site := corpuserr.Site{QualifiedName: d.Qualified()}
	if len(c.Loc) > 0 {
		site.File = c.Loc[0].FullPath
		site.Line = c.Loc[0].LineNumber
	}
	e.undoc[c.ID] = &corpuserr.ExtractionWarning{
		Kind: corpuserr.WarnUndocumented,
		Site: site,
		Msg:  "symbol is undocumented",
	}
}
