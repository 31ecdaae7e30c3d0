package extractor

import (
	"github.com/corpusdoc/cxxref/internal/frontend"
	"github.com/corpusdoc/cxxref/internal/info"
)

// handleFriend implements the cross-documentation rule for friends:
// when a friend declaration carries its own comment and the symbol it
// names is still undocumented, that comment becomes the target's
// documentation. Friend-list membership itself is recorded generically by
// linkParent.
func (e *Extractor) handleFriend(d frontend.Decl, i info.Info) {
	fr, ok := i.(*info.FriendInfo)
	if !ok || fr.Common.Doc == nil || !fr.Decl.IsValid() {
		return
	}
	target, ok := e.corpus.Find(fr.Decl)
	if !ok {
		return
	}
	tc := target.CommonInfo()
	if tc.Doc == nil {
		tc.Doc = fr.Common.Doc
	}
}
