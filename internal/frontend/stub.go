package frontend

import "context"

// Stub is the placeholder translation-unit source cmd/cxxref wires in by
// default: it treats every compile-database entry as an empty translation
// unit. Driving a real C++ frontend (libclang or equivalent) to produce
// actual Decl trees is explicitly out of scope for this module; a real
// deployment replaces Stub with an adapter satisfying the same Parse
// signature. Stub exists so the CLI links and runs end to end
// against a real compile_commands.json today, rather than having no
// runnable binary at all.
type Stub struct{}

// Parse always returns an empty translation unit, regardless of entry.
func (Stub) Parse(_ context.Context, _ Entry) (Decl, error) {
	return &Fake{K: KindTranslationUnit}, nil
}
