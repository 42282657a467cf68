package unionfind

import (
	"github.com/surfqec/uf/bitstring"
)

// Peel strips each cluster's spanning tree from the leaves inward, picking
// the data qubits whose flip cancels that cluster's syndrome (spec.md
// §4.D.3). Correction qubits are returned per root in the order they were
// chosen.
func Peel(trees map[int][]Edge, originalSyndrome bitstring.BitString) map[int][]int {
	roots := make([]int, 0, len(trees))
	for root := range trees {
		roots = append(roots, root)
	}
	roots = bitstring.SortedRoots(roots)

	working := originalSyndrome
	corrections := make(map[int][]int, len(trees))

	for _, root := range roots {
		edges := trees[root]
		var correction []int

		for len(edges) > 0 {
			edge := edges[len(edges)-1]
			edges = edges[:len(edges)-1]

			if edge.Parent == -1 {
				break // the tree's root carries no connecting edge
			}

			if working.Test(edge.Child) {
				correction = append(correction, edge.DataQubit)
				// Flip, not clear: the child is always lit when the branch is
				// taken and XORs to clear, but the parent may be an unlit
				// intermediate vertex, and the defect must propagate up the
				// tree toward the root (original tree_peeler: syn ^= ...).
				working = working.Xor(bitstring.FromIndices(edge.Child, edge.Parent))
			}
		}

		corrections[root] = correction
	}

	return corrections
}
