package id

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsValidULID(t *testing.T) {
	t.Parallel()

	s := New()
	assert.Len(t, s, 26)

	_, err := ulid.Parse(s)
	assert.NoError(t, err)
}

func TestNewIsUniqueAndSorted(t *testing.T) {
	t.Parallel()

	const n = 1000

	seen := make(map[string]bool, n)
	prev := ""
	for i := 0; i < n; i++ {
		s := New()
		require.False(t, seen[s], "duplicate id %q", s)
		seen[s] = true

		// Monotonic entropy keeps same-millisecond IDs strictly increasing.
		require.Less(t, prev, s)
		prev = s
	}
}
