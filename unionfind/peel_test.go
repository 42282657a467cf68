package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/surfqec/uf/bitstring"
	"github.com/surfqec/uf/unionfind"
)

// residualAfterPeel replays the §4.D.3 termination property directly against
// a tree and the corrections Peel chose for it: starting from
// originalSyndrome, every chosen edge's two endpoints are flipped. The
// result must be zero regardless of where in the tree the junction between
// two original defects falls.
func residualAfterPeel(edges []unionfind.Edge, originalSyndrome bitstring.BitString, correction []int) bitstring.BitString {
	chosen := make(map[int]bool, len(correction))
	for _, q := range correction {
		chosen[q] = true
	}

	residual := originalSyndrome
	for _, e := range edges {
		if chosen[e.DataQubit] {
			residual = residual.Xor(bitstring.FromIndices(e.Child, e.Parent))
		}
	}

	return residual
}

// TestPeelPropagatesThroughNonRootJunction is the regression case for a
// 3-vertex path {1, 2, 3} with defects only at the endpoints {1, 3} and
// vertex 2 an unlit intermediate: DFS rooted at 1 (the minimum), edges
// (1->2) and (2->3). Clearing both endpoints on a hit (rather than flipping
// them) loses the defect that must propagate from leaf 3 up through
// non-root vertex 2 to reach the root, truncating the correction.
func TestPeelPropagatesThroughNonRootJunction(t *testing.T) {
	trees := map[int][]unionfind.Edge{
		1: {
			{Parent: -1, Child: 1, DataQubit: -1},
			{Parent: 1, Child: 2, DataQubit: 100},
			{Parent: 2, Child: 3, DataQubit: 200},
		},
	}
	originalSyndrome := bitstring.FromIndices(1, 3)

	corrections := unionfind.Peel(trees, originalSyndrome)

	assert.ElementsMatch(t, []int{100, 200}, corrections[1])
	assert.True(t, residualAfterPeel(trees[1], originalSyndrome, corrections[1]).IsZero())
}

// TestPeelPropagatesThroughTwoNonRootJunctions extends the chain to 4
// vertices ({1,2,3,4}, defects at the two ends {1,4}) so two intermediate,
// unlit vertices (2 and 3) must both carry the propagated defect.
func TestPeelPropagatesThroughTwoNonRootJunctions(t *testing.T) {
	trees := map[int][]unionfind.Edge{
		1: {
			{Parent: -1, Child: 1, DataQubit: -1},
			{Parent: 1, Child: 2, DataQubit: 100},
			{Parent: 2, Child: 3, DataQubit: 200},
			{Parent: 3, Child: 4, DataQubit: 300},
		},
	}
	originalSyndrome := bitstring.FromIndices(1, 4)

	corrections := unionfind.Peel(trees, originalSyndrome)

	assert.ElementsMatch(t, []int{100, 200, 300}, corrections[1])
	assert.True(t, residualAfterPeel(trees[1], originalSyndrome, corrections[1]).IsZero())
}
