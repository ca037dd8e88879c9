package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID(14)
	require.Len(t, id, 14)

	// two ids colliding here would be astronomically unlikely
	require.NotEqual(t, GenerateID(14), GenerateID(14))
}

func TestSplitTags(t *testing.T) {
	require.Equal(t, []string{"beach", "food"}, SplitTags("Beach, food, BEACH"))
	require.Empty(t, SplitTags(""))
	require.Empty(t, SplitTags(" , ,"))
}

func TestIsValidURL(t *testing.T) {
	require.True(t, IsValidURL("https://example.com/a.jpg"))
	require.True(t, IsValidURL("http://example.com"))
	require.False(t, IsValidURL("ftp://example.com"))
	require.False(t, IsValidURL("javascript:alert(1)"))
	require.False(t, IsValidURL("not a url"))
	require.False(t, IsValidURL(""))
}

func TestParseLimitOffset(t *testing.T) {
	limit, offset := ParseLimitOffset("20", "40", 10)
	require.Equal(t, 20, limit)
	require.Equal(t, 40, offset)

	// out-of-range and garbage fall back to defaults
	limit, offset = ParseLimitOffset("0", "-5", 10)
	require.Equal(t, 10, limit)
	require.Equal(t, 0, offset)

	limit, offset = ParseLimitOffset("500", "abc", 10)
	require.Equal(t, 10, limit)
	require.Equal(t, 0, offset)

	limit, _ = ParseLimitOffset("", "", 25)
	require.Equal(t, 25, limit)
}
