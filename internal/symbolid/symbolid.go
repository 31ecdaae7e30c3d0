// Package symbolid implements the 20-byte content-addressed identifier used
// as the Corpus's primary key.
package symbolid

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// Size is the width in bytes of a SymbolID.
const Size = 20

// ID is a 20-byte content hash. The zero value is Invalid.
type ID [Size]byte

// Global is the reserved id of the translation-unit declaration (the root
// namespace). It is never produced by Generate.
var Global = ID{0xff}

// Invalid is the sentinel returned when generation fails.
var Invalid = ID{}

// IsValid reports whether id is neither Invalid nor unset.
func (id ID) IsValid() bool { return id != Invalid }

// IsGlobal reports whether id names the root namespace.
func (id ID) IsGlobal() bool { return id == Global }

// String renders id as a short base-16 string. Invalid renders as "".
func (id ID) String() string {
	if id == Invalid {
		return ""
	}
	if id == Global {
		return "global"
	}
	return hex.EncodeToString(id[:])
}

// Parse reconstructs an ID from its base-16 string form, as produced by
// String. An empty string parses to Invalid; "global" parses to Global.
func Parse(s string) (ID, error) {
	if s == "" {
		return Invalid, nil
	}
	if s == "global" {
		return Global, nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Invalid, fmt.Errorf("symbolid: invalid hex string %q: %w", s, err)
	}
	if len(b) != Size {
		return Invalid, fmt.Errorf("symbolid: want %d bytes, got %d", Size, len(b))
	}
	var id ID
	copy(id[:], b)
	return id, nil
}

// disambiguationSuffix values are appended to a declaration's stable
// fingerprint to distinguish it from the entity it names, per §4.5.
const (
	SuffixUsingDirective    = "#using-directive"
	SuffixUsingDecl         = "#using-decl"
	SuffixUsingEnumDecl     = "#using-enum-decl"
	SuffixNamespaceAlias    = "#namespace-alias"
	SuffixUnresolvedUsing   = "#unresolved-using"
	SuffixFriend            = "#friend"
	SuffixTemplateFriend    = "#template-friend"
	SuffixOverloadComposite = "#overload-set"
)

// Generate hashes a declaration's fingerprint (obtained from the frontend's
// stable-identifier facility, with any disambiguation suffix from §4.5
// already appended by the caller) plus, when non-empty, a stable hash of a
// substituted requires-clause. The translation-unit declaration itself is
// never passed here — callers map it directly to Global.
func Generate(fingerprint string, requiresHash string) ID {
	if fingerprint == "" {
		return Invalid
	}
	h := sha1.New()
	h.Write([]byte(fingerprint))
	if requiresHash != "" {
		h.Write([]byte{0})
		h.Write([]byte(requiresHash))
	}
	sum := h.Sum(nil)
	var id ID
	copy(id[:], sum)
	if id == Invalid || id == Global {
		// Vanishingly unlikely collision with a reserved value; treat as a
		// generation failure rather than silently aliasing a reserved id.
		return Invalid
	}
	return id
}

// OverloadSetID synthesizes a composite identifier for an overload set from
// its parent and unqualified name. This is deliberately not hardened the
// way ordinary SymbolIDs are: two distinct overload sets with the same
// parent and name are indistinguishable.
func OverloadSetID(parent ID, name string) ID {
	return Generate(parent.String()+"::"+name, "#overload-set")
}
