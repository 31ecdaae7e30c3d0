// Package compiledb adapts the compile-database collaborator: loading
// per-file {directory, file, arguments} records and performing the
// one-time, idempotent argument adjustment the frontend
// needs (absolutizing paths, stripping ignored flags, injecting
// `-fsyntax-only`, injecting configured defines/includes, silencing
// warnings).
package compiledb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/corpusdoc/cxxref/internal/frontend"
)

// jsonEntry mirrors the on-disk compile_commands.json object shape.
type jsonEntry struct {
	Directory string   `json:"directory"`
	File      string   `json:"file"`
	Arguments []string `json:"arguments,omitempty"`
	Command   string   `json:"command,omitempty"`
}

// File is a frontend.Database backed by a compile_commands.json file on
// disk.
type File struct {
	Path string
}

var _ frontend.Database = (*File)(nil)

// Entries loads and parses the compilation database.
func (f *File) Entries() ([]frontend.Entry, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("compiledb: reading %s: %w", f.Path, err)
	}
	var raw []jsonEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("compiledb: parsing %s: %w", f.Path, err)
	}
	out := make([]frontend.Entry, 0, len(raw))
	for _, e := range raw {
		args := e.Arguments
		if len(args) == 0 && e.Command != "" {
			args = strings.Fields(e.Command)
		}
		out = append(out, frontend.Entry{Directory: e.Directory, File: e.File, Arguments: args})
	}
	return out, nil
}

// AdjustOptions configures AdjustArguments.
type AdjustOptions struct {
	Defines       []string
	Includes      []string
	IgnoredFlags  []string // exact-match flags to drop, e.g. "-Werror"
	SilenceWarnings bool
}

// ignoredByDefault are flags that are never useful to a syntax-only parse
// and are always stripped regardless of AdjustOptions.
var ignoredByDefault = map[string]bool{
	"-c": true, "-o": true, "-MD": true, "-MMD": true, "-MF": true,
	"-MT": true, "-MQ": true,
}

// adjustMarker is appended once to mark an argument list as already
// adjusted, making AdjustArguments idempotent: re-running it on an
// already-adjusted list is a no-op.
const adjustMarker = "-fsyntax-only"

// AdjustArguments absolutizes attached-form include paths (-I, -isystem,
// -iquote) relative to dir, leaving the source file and every other
// argument as written, strips ignored flags, injects `-fsyntax-only` plus configured defines and
// includes, and optionally silences warnings. Calling it twice on its own
// output returns the same result (idempotence is one of the component's
// required properties).
func AdjustArguments(dir string, args []string, opts AdjustOptions) []string {
	if containsFlag(args, adjustMarker) {
		return args
	}

	out := make([]string, 0, len(args)+len(opts.Defines)+len(opts.Includes)+4)
	i := 0
	for i < len(args) {
		a := args[i]
		if ignoredByDefault[a] {
			// drop the flag and, if it takes a separate argument, the
			// argument with it (-o file.o, -MF file.d, ...)
			if takesArgument(a) && i+1 < len(args) {
				i += 2
			} else {
				i++
			}
			continue
		}
		if containsFlag(opts.IgnoredFlags, a) {
			i++
			continue
		}
		if opts.SilenceWarnings && strings.HasPrefix(a, "-W") && a != "-Wno-everything" {
			i++
			continue
		}
		out = append(out, absolutizeIfPath(dir, a))
		i++
	}

	out = append(out, adjustMarker)
	if opts.SilenceWarnings {
		out = append(out, "-Wno-everything")
	}
	for _, d := range opts.Defines {
		out = append(out, "-D"+d)
	}
	for _, inc := range opts.Includes {
		out = append(out, "-I"+absolutize(dir, inc))
	}
	return out
}

func takesArgument(flag string) bool {
	switch flag {
	case "-o", "-MF", "-MT", "-MQ":
		return true
	default:
		return false
	}
}

func containsFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

// absolutizeIfPath rewrites the attached forms of -I, -isystem and
// -iquote ("-Iinclude") to absolute paths; a separate path argument
// ("-I include") and every other argument are returned unchanged.
func absolutizeIfPath(dir, arg string) string {
	for _, prefix := range []string{"-I", "-isystem", "-iquote"} {
		if strings.HasPrefix(arg, prefix) && len(arg) > len(prefix) {
			return prefix + absolutize(dir, arg[len(prefix):])
		}
	}
	return arg
}

func absolutize(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Clean(filepath.Join(dir, p))
}
