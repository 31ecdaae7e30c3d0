// Package corpus is the canonical store of Info records produced by
// extraction: the only component allowed to create new
// SymbolIDs is the extractor, but the Corpus is the only component that
// may be queried for what those ids mean once extraction finishes.
package corpus

import (
	"fmt"
	"sort"
	"strings"

	"github.com/corpusdoc/cxxref/internal/info"
	"github.com/corpusdoc/cxxref/internal/symbolid"
)

// ErrNotFound is returned by operations given an id the Corpus has never
// seen.
var ErrNotFound = fmt.Errorf("corpus: symbol not found")

// KindMismatchError is returned by Get when the stored Info is not of the
// requested kind.
type KindMismatchError struct {
	ID     symbolid.ID
	Wanted string
	Got    info.Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("corpus: %s is a %s, not a %s", e.ID, e.Got, e.Wanted)
}

// Corpus is the mapping SymbolID -> Info, plus the global-namespace root.
// A zero Corpus is not usable; construct one with New.
type Corpus struct {
	infos  map[symbolid.ID]info.Info
	global *info.NamespaceInfo
}

// New returns an empty Corpus with its global-namespace root already
// populated, satisfying the "globalNamespace must always exist" invariant.
func New() *Corpus {
	root := &info.NamespaceInfo{
		Common: info.Common{ID: symbolid.Global, Kind: info.KindNamespace},
	}
	c := &Corpus{infos: make(map[symbolid.ID]info.Info)}
	c.infos[symbolid.Global] = root
	c.global = root
	return c
}

// Find returns the Info stored under id, if any.
func (c *Corpus) Find(id symbolid.ID) (info.Info, bool) {
	i, ok := c.infos[id]
	return i, ok
}

// Put inserts or replaces the Info stored under its own id. Extractor
// merge logic (internal/extractor) is responsible for folding fields into
// an existing record before calling Put again; Put itself does not merge.
func (c *Corpus) Put(i info.Info) {
	id := info.ID(i)
	c.infos[id] = i
	if id == symbolid.Global {
		if ns, ok := i.(*info.NamespaceInfo); ok {
			c.global = ns
		}
	}
}

// GlobalNamespace returns the root namespace record.
func (c *Corpus) GlobalNamespace() *info.NamespaceInfo { return c.global }

// Get fetches the Info stored under id and asserts it to the requested
// variant type, e.g. Get[*info.RecordInfo](c, id).
func Get[T info.Info](c *Corpus, id symbolid.ID) (T, error) {
	var zero T
	i, ok := c.Find(id)
	if !ok {
		return zero, ErrNotFound
	}
	v, ok := any(i).(T)
	if !ok {
		return zero, &KindMismatchError{ID: id, Wanted: fmt.Sprintf("%T", zero), Got: info.KindOf(i)}
	}
	return v, nil
}

// childrenInOrder returns i's direct members in declaration order, per the
// traversal convention each kind records them in.
func childrenInOrder(i info.Info) []symbolid.ID {
	switch v := i.(type) {
	case *info.NamespaceInfo:
		return v.Members
	case *info.RecordInfo:
		out := make([]symbolid.ID, 0, len(v.Public)+len(v.Protected)+len(v.Private))
		out = append(out, v.Public...)
		out = append(out, v.Protected...)
		out = append(out, v.Private...)
		return out
	case *info.EnumInfo:
		return v.Constants
	case *info.OverloadsInfo:
		return v.Members
	case *info.SpecializationInfo:
		return v.Members
	default:
		return nil
	}
}

// Traverse calls visit exactly once per direct member of parent, in
// declaration order (Public/Protected/Private tranche order for records).
func (c *Corpus) Traverse(parent symbolid.ID, visit func(info.Info) error) error {
	p, ok := c.Find(parent)
	if !ok {
		return ErrNotFound
	}
	for _, id := range childrenInOrder(p) {
		child, ok := c.Find(id)
		if !ok {
			continue
		}
		if err := visit(child); err != nil {
			return err
		}
	}
	return nil
}

// orderedKindGroups is the fixed kind-group order orderedTraverse uses.
var orderedKindGroups = []info.Kind{
	info.KindNamespace, info.KindRecord, info.KindFunction, info.KindEnum,
	info.KindTypedef, info.KindVariable, info.KindConcept, info.KindGuide,
	info.KindUsing, info.KindNamespaceAlias,
}

// OrderedTraverse calls visit grouped by symbol kind in the fixed order
// Namespace, Record, Function, Enum, Typedef, Variable, Concept, Guide,
// Using, NamespaceAlias; within each group, by case-insensitive lexical
// order of unqualified name, with id as a deterministic tie-breaker.
func (c *Corpus) OrderedTraverse(parent symbolid.ID, visit func(info.Info) error) error {
	p, ok := c.Find(parent)
	if !ok {
		return ErrNotFound
	}
	byKind := make(map[info.Kind][]info.Info)
	for _, id := range childrenInOrder(p) {
		child, ok := c.Find(id)
		if !ok {
			continue
		}
		k := info.KindOf(child)
		byKind[k] = append(byKind[k], child)
	}
	for _, k := range orderedKindGroups {
		group := byKind[k]
		sort.SliceStable(group, func(i, j int) bool {
			ni := strings.ToLower(group[i].CommonInfo().Name)
			nj := strings.ToLower(group[j].CommonInfo().Name)
			if ni != nj {
				return ni < nj
			}
			return group[i].CommonInfo().ID.String() < group[j].CommonInfo().ID.String()
		})
		for _, child := range group {
			if err := visit(child); err != nil {
				return err
			}
		}
	}
	return nil
}

// QualifiedName concatenates i and its ancestors' names with "::",
// skipping anonymous namespaces and the global root.
func (c *Corpus) QualifiedName(i info.Info) string {
	var parts []string
	cur := i
	for {
		common := cur.CommonInfo()
		if common.ID == symbolid.Global {
			break
		}
		if ns, ok := cur.(*info.NamespaceInfo); !ok || !ns.IsAnonymous {
			if common.Name != "" {
				parts = append(parts, common.Name)
			}
		}
		parentID := common.Parent
		if parentID == symbolid.Invalid || parentID == symbolid.Global {
			break
		}
		p, ok := c.Find(parentID)
		if !ok {
			break
		}
		cur = p
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "::")
}

// Len reports the number of distinct symbols stored, including the global
// namespace.
func (c *Corpus) Len() int { return len(c.infos) }
