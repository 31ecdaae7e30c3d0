package extractor

import (
	"strings"

	"github.com/corpusdoc/cxxref/internal/frontend"
	"github.com/corpusdoc/cxxref/internal/info"
	"github.com/corpusdoc/cxxref/internal/symbolid"
)

// traverseMembers recurses into d's children, applying the member-skip
// rules: a SeeBelow record's members are never
// walked (there is nothing more specific to say about them — the AST
// still has them, but nothing downstream needs to know), while a symbol
// pulled in purely as a Dependency has its members walked only while
// resolving through a base class, so that extracting one referenced type
// doesn't pull in that type's entire transitive closure. An
// ImplementationDefined symbol still has its members walked normally:
// each child's own classify() inherits the ImplementationDefined mode via
// the parent-propagation rule (filter.go).
func (e *Extractor) traverseMembers(d frontend.Decl, i info.Info) {
	mode := i.CommonInfo().Extraction
	switch mode {
	case info.SeeBelow:
		if i.CommonInfo().Kind != info.KindNamespace {
			return
		}
	case info.Dependency:
		if e.mode != ModeBaseClass {
			return
		}
	}
	e.withMode(ModeRegular, func() {
		for _, child := range d.Children() {
			e.Visit(child)
		}
	})
}

// namespaceChain walks qn's qualified spelling outward, one "::" segment
// at a time, resolving each ancestor through the qualified-name index
// already built for this TU. The result is the ancestor chain,
// leaf-first: immediate parent first, global never included. An
// ancestor not yet indexed (only possible if it was itself filtered out
// before reaching identify()) simply truncates the chain there.
func (e *Extractor) namespaceChain(qn string) []symbolid.ID {
	var chain []symbolid.ID
	for {
		sep := strings.LastIndex(qn, "::")
		if sep < 0 {
			return chain
		}
		qn = qn[:sep]
		id, ok := e.byQualifiedName[qn]
		if !ok {
			return chain
		}
		chain = append(chain, id)
	}
}

// linkParent resolves d's lexical parent from its qualified spelling and
// records the edge both ways: i's Parent field, and id appended to the
// parent's own child collection (Members, Interface tranche, Constants,
// etc., per kind). A parent whose qualified name this Extractor has not
// indexed leaves i untouched, Parent included. A parent that is indexed
// but not present in the Corpus gets only i's Parent field set; neither
// case is an error.
func (e *Extractor) linkParent(d frontend.Decl, i info.Info) {
	qn := d.Qualified()
	sep := strings.LastIndex(qn, "::")
	parentID := symbolid.Global
	if sep >= 0 {
		parentQN := qn[:sep]
		id, ok := e.byQualifiedName[parentQN]
		if !ok {
			return
		}
		parentID = id
	}

	id := i.CommonInfo().ID
	i.CommonInfo().Parent = parentID
	i.CommonInfo().Namespace = e.namespaceChain(qn)

	parent, ok := e.corpus.Find(parentID)
	if !ok {
		return
	}

	name := i.CommonInfo().Name
	isFunction := i.CommonInfo().Kind == info.KindFunction

	switch p := parent.(type) {
	case *info.NamespaceInfo:
		if d.Kind() == frontend.KindUsingDirective {
			p.UsingDirectives = appendUnique(p.UsingDirectives, id)
			return
		}
		if isFunction {
			p.Members = e.foldOverload(p.Members, parentID, name, id)
			return
		}
		p.Members = appendUnique(p.Members, id)
	case *info.RecordInfo:
		if d.Kind() == frontend.KindFriend {
			p.Friends = appendUnique(p.Friends, id)
			return
		}
		if isFunction {
			p.Members = e.foldOverload(p.Members, parentID, name, id)
			switch i.CommonInfo().Access {
			case info.AccessProtected:
				p.Protected = e.foldOverload(p.Protected, parentID, name, id)
			case info.AccessPrivate:
				p.Private = e.foldOverload(p.Private, parentID, name, id)
			default:
				p.Public = e.foldOverload(p.Public, parentID, name, id)
			}
			return
		}
		p.Members = appendUnique(p.Members, id)
		switch i.CommonInfo().Access {
		case info.AccessProtected:
			p.Protected = appendUnique(p.Protected, id)
		case info.AccessPrivate:
			p.Private = appendUnique(p.Private, id)
		default:
			p.Public = appendUnique(p.Public, id)
		}
	case *info.EnumInfo:
		p.Constants = appendUnique(p.Constants, id)
	case *info.SpecializationInfo:
		p.Members = appendUnique(p.Members, id)
	}
}

// foldOverload folds id, a just-linked function, into members: if a
// sibling function of the same name is already present (raw, not yet
// grouped), both are replaced by a synthetic OverloadsInfo keyed by
// symbolid.OverloadSetID(parentID, name), a composite id built from
// parent and name; if a set already exists from an earlier tranche or
// an earlier redeclaration, id is folded into it in place. A lone function
// with no same-named sibling is simply appended, unchanged from before
// overload grouping existed.
func (e *Extractor) foldOverload(members []symbolid.ID, parentID symbolid.ID, name string, id symbolid.ID) []symbolid.ID {
	setID := symbolid.OverloadSetID(parentID, name)

	siblingIdx := -1
	for idx, m := range members {
		if m == id || m == setID {
			continue
		}
		mi, ok := e.corpus.Find(m)
		if !ok || mi.CommonInfo().Kind != info.KindFunction || mi.CommonInfo().Name != name {
			continue
		}
		siblingIdx = idx
		break
	}

	if siblingIdx < 0 {
		if set, ok := e.corpus.Find(setID); ok {
			os := set.(*info.OverloadsInfo)
			os.Members = appendUnique(os.Members, id)
			return appendUnique(members, setID)
		}
		return appendUnique(members, id)
	}

	sibling := members[siblingIdx]
	var os *info.OverloadsInfo
	if set, ok := e.corpus.Find(setID); ok {
		os = set.(*info.OverloadsInfo)
	} else {
		os = &info.OverloadsInfo{Common: info.Common{ID: setID, Kind: info.KindOverloads, Name: name, Parent: parentID}}
		os.Members = append(os.Members, sibling)
		e.corpus.Put(os)
	}
	os.Members = appendUnique(os.Members, id)

	members[siblingIdx] = setID
	return members
}
