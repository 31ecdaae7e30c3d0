package compiledb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileEntriesParsesArguments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "compile_commands.json")
	content := `[{"directory":"/proj","file":"a.cpp","arguments":["clang++","-Iinc","a.cpp"]}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	db := &File{Path: path}
	entries, err := db.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "/proj", entries[0].Directory)
	assert.Equal(t, []string{"clang++", "-Iinc", "a.cpp"}, entries[0].Arguments)
}

func TestFileEntriesFallsBackToCommandString(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "compile_commands.json")
	content := `[{"directory":"/proj","file":"a.cpp","command":"clang++ -Iinc a.cpp"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	db := &File{Path: path}
	entries, err := db.Entries()
	require.NoError(t, err)
	assert.Equal(t, []string{"clang++", "-Iinc", "a.cpp"}, entries[0].Arguments)
}

func TestAdjustArgumentsInjectsAndAbsolutizes(t *testing.T) {
	args := []string{"clang++", "-Iinc", "-c", "a.cpp", "-o", "a.o"}
	got := AdjustArguments("/proj", args, AdjustOptions{Defines: []string{"FOO=1"}, Includes: []string{"extra"}})

	assert.Contains(t, got, "-I/proj/inc")
	assert.Contains(t, got, "-DFOO=1")
	assert.Contains(t, got, "-I/proj/extra")
	assert.Contains(t, got, "-fsyntax-only")
	assert.NotContains(t, got, "-c")
	assert.NotContains(t, got, "-o")
	assert.NotContains(t, got, "a.o")
}

func TestAdjustArgumentsIsIdempotent(t *testing.T) {
	args := []string{"clang++", "-Iinc", "-c", "a.cpp", "-o", "a.o", "-Werror"}
	opts := AdjustOptions{Defines: []string{"FOO=1"}, SilenceWarnings: true}

	once := AdjustArguments("/proj", args, opts)
	twice := AdjustArguments("/proj", once, opts)
	assert.Equal(t, once, twice)
}

func TestAdjustArgumentsStripsIgnoredAndSilencesWarnings(t *testing.T) {
	args := []string{"clang++", "a.cpp", "-c", "-o", "a.o", "-Wall", "-Wextra"}
	got := AdjustArguments("/proj", args, AdjustOptions{SilenceWarnings: true})

	for _, flag := range []string{"-c", "-o", "-Wall", "-Wextra"} {
		assert.NotContains(t, got, flag)
	}
	assert.Contains(t, got, "-fsyntax-only")
	assert.Contains(t, got, "-Wno-everything")
}
