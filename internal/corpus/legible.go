package corpus

import (
	"strconv"
	"strings"

	"github.com/corpusdoc/cxxref/internal/info"
	"github.com/corpusdoc/cxxref/internal/symbolid"
)

// operatorTextualForms maps an overloaded operator's spelling to a
// URL-safe textual form (operator names are the only category safeBase
// rewrites; destructor and template names are used as spelled).
var operatorTextualForms = map[string]string{
	"+": "plus", "-": "minus", "*": "star", "/": "slash", "%": "mod",
	"^": "caret", "&": "amp", "|": "pipe", "~": "tilde", "!": "not",
	"=": "assign", "<": "lt", ">": "gt", "+=": "plus_assign",
	"-=": "minus_assign", "*=": "star_assign", "/=": "slash_assign",
	"%=": "mod_assign", "^=": "caret_assign", "&=": "amp_assign",
	"|=": "pipe_assign", "<<": "lshift", ">>": "rshift",
	"<<=": "lshift_assign", ">>=": "rshift_assign", "==": "eq",
	"!=": "ne", "<=": "le", ">=": "ge", "<=>": "spaceship",
	"&&": "and", "||": "or", "++": "increment", "--": "decrement",
	",": "comma", "->*": "arrow_star", "->": "arrow", "()": "call",
	"[]": "index", "new": "new", "delete": "delete",
	"new[]": "new_array", "delete[]": "delete_array",
}

// SafeName is a scope-unique, collision-disambiguated, URL-safe spelling
// for one symbol.
type SafeName struct {
	ID   symbolid.ID
	Name string
}

// LegibleNames assigns a stable, URL-safe name to every symbol in a
// Corpus, built once after extraction finishes.
type LegibleNames struct {
	sep   string
	names map[symbolid.ID]string
}

// BuildLegibleNames walks c from the global namespace and assigns
// collision-free names, using sep to join qualified segments (e.g. "-" or
// "/" depending on the render target).
func BuildLegibleNames(c *Corpus, sep string) *LegibleNames {
	ln := &LegibleNames{sep: sep, names: make(map[symbolid.ID]string)}
	ln.names[symbolid.Global] = ""
	ln.names[symbolid.Invalid] = ""
	ln.visitScope(c, symbolid.Global, "")
	return ln
}

// Name returns the previously computed legible name for id, or "" if id
// is unknown (including symbolid.Invalid).
func (ln *LegibleNames) Name(id symbolid.ID) string { return ln.names[id] }

func (ln *LegibleNames) visitScope(c *Corpus, parent symbolid.ID, prefix string) {
	var members []info.Info
	_ = c.Traverse(parent, func(i info.Info) error {
		members = append(members, i)
		return nil
	})
	ln.assignScope(members, prefix)
	for _, m := range members {
		if ns, ok := m.(*info.NamespaceInfo); ok {
			childPrefix := prefix
			if !ns.IsAnonymous {
				childPrefix = ln.names[ns.ID]
			}
			ln.visitScope(c, ns.ID, childPrefix)
		}
	}
}

// assignScope names one scope's direct members: unambiguous bases are
// used unmodified; case-insensitive duplicates get a numeric suffix in
// extraction (declaration) order, starting from the second occurrence.
func (ln *LegibleNames) assignScope(members []info.Info, prefix string) {
	seen := make(map[string]int)
	for _, m := range members {
		base := safeBase(m)
		key := strings.ToLower(base)
		seen[key]++
		name := base
		if n := seen[key]; n > 1 {
			name = base + strconv.Itoa(n)
		}
		ln.names[info.ID(m)] = joinSep(prefix, name, ln.sep)
	}
}

// safeBase returns a symbol's unqualified, operator-translated spelling.
func safeBase(i info.Info) string {
	if fn, ok := i.(*info.FunctionInfo); ok && fn.OperatorKind != "" {
		if form, ok := operatorTextualForms[fn.OperatorKind]; ok {
			return "operator_" + form
		}
		return "operator"
	}
	name := i.CommonInfo().Name
	if name == "" {
		return "unnamed"
	}
	return name
}

func joinSep(prefix, name, sep string) string {
	if prefix == "" {
		return name
	}
	if name == "" {
		return prefix
	}
	return prefix + sep + name
}
