package rotatedplanar_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfqec/uf/bitstring"
	"github.com/surfqec/uf/rotatedplanar"
	"github.com/surfqec/uf/surface"
)

func TestNewRejectsBadDimensions(t *testing.T) {
	for _, d := range []int{1, 2, 0, -1, 4, 6} {
		_, err := rotatedplanar.New(d)
		require.Error(t, err, "dimension %d", d)
		assert.True(t, surface.Is(err, surface.KindConfiguration))
		assert.True(t, errors.Is(err, rotatedplanar.ErrInvalidDimension))
	}
}

func TestNewDimensions(t *testing.T) {
	for _, d := range []int{3, 5, 7} {
		code, err := rotatedplanar.New(d)
		require.NoError(t, err, "dimension %d", d)
		assert.Equal(t, d*d, code.NumDataQubits())
		assert.Equal(t, (d*d-1)/2, code.NumStabilizers(surface.X))
		assert.Equal(t, (d*d-1)/2, code.NumStabilizers(surface.Z))
	}
}

func TestScenarioDistanceThreeSingleError(t *testing.T) {
	// spec.md §8 scenario 1: RPlanar(3), error {4}, type X -> syndrome {1,2}.
	code, err := rotatedplanar.New(3)
	require.NoError(t, err)

	syn := code.GenerateSyndrome(bitstring.FromIndices(4), surface.X, false)
	assert.Equal(t, bitstring.FromIndices(1, 2), syn)
}

func TestParityCheckSoundness(t *testing.T) {
	code, err := rotatedplanar.New(5)
	require.NoError(t, err)

	e := bitstring.FromIndices(0, 4, 12, 19, 24)
	syn := code.GenerateSyndrome(e, surface.Z, false)
	for i, s := range code.Stabilizers(surface.X) {
		want := s.And(e).Popcount()%2 == 1
		assert.Equal(t, want, syn.Test(i), "stabilizer %d", i)
	}
}

func TestStabilizerWeightsAlternate(t *testing.T) {
	code, err := rotatedplanar.New(5)
	require.NoError(t, err)

	for _, typ := range []surface.Type{surface.X, surface.Z} {
		var boundary, interior int
		for _, s := range code.Stabilizers(typ) {
			switch s.Popcount() {
			case 2:
				boundary++
			case 4:
				interior++
			default:
				t.Fatalf("%v stabilizer has unexpected weight %d", typ, s.Popcount())
			}
		}
		assert.NotZero(t, boundary, "%v boundary count", typ)
		assert.NotZero(t, interior, "%v interior count", typ)
	}
}

func TestIdempotenceEmptyError(t *testing.T) {
	code, err := rotatedplanar.New(5)
	require.NoError(t, err)

	syn := code.GenerateSyndrome(bitstring.Zero(), surface.X, false)
	assert.True(t, syn.IsZero())
}

func TestLogicalOperatorsSingletonPerType(t *testing.T) {
	code, err := rotatedplanar.New(5)
	require.NoError(t, err)

	for _, typ := range []surface.Type{surface.X, surface.Z} {
		ops := code.LogicalOperators(typ)
		require.Len(t, ops, 1)
		assert.Equal(t, 5, ops[0].Popcount())
	}
}
