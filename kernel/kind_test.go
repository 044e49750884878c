package kernel_test

import (
	"testing"

	"github.com/slink-go/slink/kernel"
	"github.com/stretchr/testify/assert"
)

// TestKind_Squared verifies only the two NoSqrt kinds report squared output.
func TestKind_Squared(t *testing.T) {
	squared := map[kernel.Kind]bool{
		kernel.Scalar:       false,
		kernel.SSE:          false,
		kernel.AVX:          false,
		kernel.SSEOpt:       false,
		kernel.AVXOpt:       false,
		kernel.SSEOptNoSqrt: true,
		kernel.AVXOptNoSqrt: true,
	}
	for k, want := range squared {
		assert.Equal(t, want, k.Squared(), "Kind(%s).Squared()", k)
	}
}

// TestKind_RequiredAlignment verifies the byte-alignment contract per kind.
func TestKind_RequiredAlignment(t *testing.T) {
	assert.Equal(t, 0, kernel.Scalar.RequiredAlignment())
	assert.Equal(t, 16, kernel.SSE.RequiredAlignment())
	assert.Equal(t, 16, kernel.SSEOpt.RequiredAlignment())
	assert.Equal(t, 16, kernel.SSEOptNoSqrt.RequiredAlignment())
	assert.Equal(t, 32, kernel.AVX.RequiredAlignment())
	assert.Equal(t, 32, kernel.AVXOpt.RequiredAlignment())
	assert.Equal(t, 32, kernel.AVXOptNoSqrt.RequiredAlignment())
}

// TestKind_String ensures every kind has a distinct, stable name.
func TestKind_String(t *testing.T) {
	seen := map[string]bool{}
	for k := kernel.Scalar; k <= kernel.AVXOptNoSqrt; k++ {
		name := k.String()
		assert.NotEqual(t, "unknown", name)
		assert.False(t, seen[name], "duplicate Kind name %q", name)
		seen[name] = true
	}
}
