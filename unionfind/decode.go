package unionfind

import (
	"github.com/surfqec/uf/bitstring"
	"github.com/surfqec/uf/surface"
)

// Result is the outcome of a full Decode call: the even clusters Validate
// produced, the spanning trees built over them, the per-cluster
// corrections Peel chose, and the number of growth rounds Validate ran.
type Result struct {
	Clusters    map[int]Cluster
	Trees       map[int][]Edge
	Corrections map[int][]int
	Rounds      int
}

// Correction flattens every cluster's chosen data qubits into a single
// bit-mask, suitable for XORing into the original error (spec.md §4.E).
func (r Result) Correction() bitstring.BitString {
	var out bitstring.BitString
	for _, qubits := range r.Corrections {
		out = out.Or(bitstring.FromIndices(qubits...))
	}

	return out
}

// Roots returns the cluster roots in ascending order, for deterministic
// iteration over Result's maps.
func (r Result) Roots() []int {
	roots := make([]int, 0, len(r.Clusters))
	for root := range r.Clusters {
		roots = append(roots, root)
	}

	return bitstring.SortedRoots(roots)
}

// Decode runs the full Union-Find pipeline — cluster growth, spanning-tree
// construction, and peeling — against a syndrome already expressed as a
// bit-mask (spec.md §4.D, §6 "uf_decode").
func Decode(code surface.Code, syndromeMask bitstring.BitString, syndromeType surface.Type) (Result, error) {
	clusters, rounds, err := Validate(code, syndromeMask, syndromeType)
	if err != nil {
		return Result{}, err
	}

	trees, err := SpanningTrees(code, clusters, syndromeType)
	if err != nil {
		return Result{}, err
	}

	corrections := Peel(trees, syndromeMask)

	return Result{Clusters: clusters, Trees: trees, Corrections: corrections, Rounds: rounds}, nil
}

// DecodeIndices is Decode's ascending-index-list entry point (spec.md §9
// REDESIGN FLAGS: "Dynamic typing at the API boundary" — two entry points
// delegating to the same core).
func DecodeIndices(code surface.Code, syndromeIndices []int, syndromeType surface.Type) (Result, error) {
	return Decode(code, bitstring.FromIndices(syndromeIndices...), syndromeType)
}
