package numbers

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNext_Format(t *testing.T) {
	gen := NewUUIDGenerator()
	pattern := regexp.MustCompile(`^ORD-[0-9A-F]{12}$`)
	for i := 0; i < 100; i++ {
		require.Regexp(t, pattern, gen.Next())
	}
}

func TestNext_NoCollisionsInBurst(t *testing.T) {
	gen := NewUUIDGenerator()
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		n := gen.Next()
		_, dup := seen[n]
		require.False(t, dup, "duplicate number %s", n)
		seen[n] = struct{}{}
	}
}
