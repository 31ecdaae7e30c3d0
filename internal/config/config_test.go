package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKnownKeys(t *testing.T) {
	doc := []byte(`
input: ["src"]
extract-private: true
concurrency: 4
implementation-defined: ["detail::**"]
`)
	c, err := Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"src"}, c.Input)
	assert.True(t, c.ExtractPrivate)
	assert.Equal(t, 4, c.Concurrency)
	assert.Equal(t, []string{"detail::**"}, c.ImplementationDefined)
}

func TestParseUnknownKeyReported(t *testing.T) {
	doc := []byte("input: [\"src\"]\nbogus-option: true\n")
	c, err := Parse(doc)
	require.NotNil(t, c)
	require.Error(t, err)
	var uk *UnknownKeyError
	require.ErrorAs(t, err, &uk)
	assert.Contains(t, uk.Keys, "bogus-option")
}

func TestDefaultsApplyWhenUnset(t *testing.T) {
	c, err := Parse([]byte("{}"))
	require.NoError(t, err)
	assert.True(t, c.Recursive)
	assert.Equal(t, 1, c.Concurrency)
}

func TestMatchPatternWildcards(t *testing.T) {
	assert.True(t, MatchPattern("ns::detail::**", "ns::detail::helper::impl"))
	assert.True(t, MatchPattern("ns::*", "ns::Widget"))
	assert.False(t, MatchPattern("ns::*", "ns::detail::Widget"))
	assert.True(t, MatchPattern("ns::detail", "ns::detail"))
}

func TestMatchAnyPrefixRule(t *testing.T) {
	kind, _ := MatchAny([]string{"ns::detail::**"}, "ns::detail")
	assert.Equal(t, MatchPrefix, kind)

	kind, _ = MatchAny([]string{"ns::detail::**"}, "ns::detail::helper")
	assert.Equal(t, MatchStrict, kind)

	kind, _ = MatchAny([]string{"ns::detail::**"}, "other")
	assert.Equal(t, MatchNone, kind)
}

func TestIsLiteral(t *testing.T) {
	assert.True(t, IsLiteral("ns::detail"))
	assert.False(t, IsLiteral("ns::*"))
	assert.False(t, IsLiteral("ns::**"))
}
