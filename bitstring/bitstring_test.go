package bitstring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfqec/uf/bitstring"
)

func TestFromIndicesAndToIndices(t *testing.T) {
	t.Run("ascending round trip", func(t *testing.T) {
		b := bitstring.FromIndices(5, 1, 3, 1)
		assert.Equal(t, []int{1, 3, 5}, b.ToIndices())
		assert.Equal(t, 3, b.Popcount())
	})

	t.Run("empty input", func(t *testing.T) {
		b := bitstring.FromIndices()
		assert.True(t, b.IsZero())
		assert.Empty(t, b.ToIndices())
	})

	t.Run("spans multiple words", func(t *testing.T) {
		b := bitstring.FromIndices(0, 63, 64, 127, 200)
		require.Equal(t, []int{0, 63, 64, 127, 200}, b.ToIndices())
		assert.Equal(t, 5, b.Popcount())
	})
}

func TestTestSetClear(t *testing.T) {
	b := bitstring.Zero()
	assert.False(t, b.Test(10))

	b = b.SetBit(10)
	assert.True(t, b.Test(10))
	assert.False(t, b.Test(11))

	cleared := b.ClearBit(10)
	assert.False(t, cleared.Test(10))
	// original is untouched (immutability)
	assert.True(t, b.Test(10))
}

func TestBooleanOps(t *testing.T) {
	a := bitstring.FromIndices(1, 2, 3)
	b := bitstring.FromIndices(2, 3, 4)

	assert.Equal(t, []int{2, 3}, a.And(b).ToIndices())
	assert.Equal(t, []int{1, 2, 3, 4}, a.Or(b).ToIndices())
	assert.Equal(t, []int{1, 4}, a.Xor(b).ToIndices())
	assert.Equal(t, []int{1}, a.AndNot(b).ToIndices())
}

func TestEqualAndIsZero(t *testing.T) {
	a := bitstring.FromIndices(1, 2)
	b := bitstring.FromIndices(2, 1)
	assert.True(t, a.Equal(b))

	c := a.Xor(b)
	assert.True(t, c.IsZero())
	assert.True(t, c.Equal(bitstring.Zero()))
}

func TestUnion(t *testing.T) {
	u := bitstring.Union(
		bitstring.FromIndices(1),
		bitstring.FromIndices(2),
		bitstring.FromIndices(3),
	)
	assert.Equal(t, []int{1, 2, 3}, u.ToIndices())
	assert.Equal(t, []int{}, bitstring.Union().ToIndices())
}

func TestParityCheckSoundness(t *testing.T) {
	// invariant 1 from spec.md §8: popcount(s & e) mod 2 matches a manual XOR fold.
	s := bitstring.FromIndices(0, 1, 2, 3)
	e := bitstring.FromIndices(1, 3, 7)
	got := s.And(e).Popcount() % 2

	want := 0
	for _, i := range e.ToIndices() {
		if s.Test(i) {
			want ^= 1
		}
	}
	assert.Equal(t, want, got)
}
