package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInts(t *testing.T) {
	t.Run("space separated", func(t *testing.T) {
		got, err := ParseInts("3 0 1 1 0")
		require.NoError(t, err)
		require.Equal(t, []int{3, 0, 1, 1, 0}, got)
	})

	t.Run("parentheses and commas", func(t *testing.T) {
		got, err := ParseInts("(4, -2)")
		require.NoError(t, err)
		require.Equal(t, []int{4, -2}, got)
	})

	t.Run("extra whitespace", func(t *testing.T) {
		got, err := ParseInts("  7\t8  ")
		require.NoError(t, err)
		require.Equal(t, []int{7, 8}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ParseInts("   ")
		require.Error(t, err)
	})

	t.Run("non integer token", func(t *testing.T) {
		_, err := ParseInts("3 a")
		require.ErrorContains(t, err, `"a" is not an integer`)
	})
}
