package unionfind

import (
	"github.com/pkg/errors"

	"github.com/surfqec/uf/bitstring"
	"github.com/surfqec/uf/surface"
)

// Cluster is an even (fused) cluster keyed by its root stabilizer index:
// the vertex whose fusion absorbed the rest of the cluster's growth
// (spec.md §4.D.1).
type Cluster struct {
	Root            int
	DataSupport     bitstring.BitString
	SyndromeSupport bitstring.BitString
}

// oddCluster is the mutable growth state of a not-yet-fused cluster,
// keyed by its seed stabilizer index.
type oddCluster struct {
	data bitstring.BitString
	syn  bitstring.BitString
}

// maxGrowthRounds bounds the half/full-step alternation so a syndrome whose
// parity the code cannot absorb (spec.md §4.D.1 "Failure modes") fails fast
// instead of looping forever. A cluster's syndrome support reaches one
// more stabilizer hop every two rounds (one half step, one full step), so
// two rounds per stabilizer exceed the distance any two seeds can be apart.
func maxGrowthRounds(numStab int) int { return 2*numStab + 4 }

// Validate grows clusters from the lit vertices of syndromeMask (all of
// syndromeType) until every cluster has fused into an even one, following
// the naive alternating half-edge/full-edge algorithm of spec.md §4.D.1.
// It returns the resulting even clusters keyed by root, and the number of
// growth rounds performed (each sweep over the vertices counts once, half
// steps and full steps alike).
//
// Returns a surface.KindIllFormedSyndrome error if the syndrome's parity
// cannot be absorbed by the code's topology (spec.md §7).
func Validate(code surface.Code, syndromeMask bitstring.BitString, syndromeType surface.Type) (map[int]Cluster, int, error) {
	numStab := code.NumStabilizers(syndromeType)

	even := make(map[int]Cluster, syndromeMask.Popcount())
	odd := make(map[int]*oddCluster, syndromeMask.Popcount())
	var oddOrder []int // insertion order, matches spec.md §5 ordering guarantees

	working := syndromeMask
	fullStep := false
	firstStep := true
	count := 0

	for !working.IsZero() {
		if count > maxGrowthRounds(numStab) {
			return nil, count, surface.NewKindError(surface.KindIllFormedSyndrome,
				errors.Wrapf(ErrIllFormedSyndrome, "Validate: %d rounds without convergence", count))
		}

		for i := 0; i < numStab; i++ {
			if !working.Test(i) {
				continue
			}
			if _, done := even[i]; done {
				continue
			}

			oc, seen := odd[i]
			if !seen {
				oc = &oddCluster{}
				odd[i] = oc
				oddOrder = append(oddOrder, i)
			}

			if !fullStep {
				// Half step: extend data_support along every edge incident
				// to the cluster's current syndrome_support (or, on the
				// very first pass, just this seed's own stabilizer).
				if firstStep {
					stab, err := code.Stabilizer(i, syndromeType)
					if err != nil {
						return nil, count, err
					}
					oc.data = oc.data.Or(stab)
				} else {
					for _, j := range oc.syn.ToIndices() {
						stab, err := code.Stabilizer(j, syndromeType)
						if err != nil {
							return nil, count, err
						}
						oc.data = oc.data.Or(stab)
					}
				}
			} else {
				// Full step: promote every vertex touched by the grown
				// data_support into syndrome_support.
				update := code.GenerateSyndrome(oc.data, syndromeType.Opposite(), true)
				oc.syn = oc.syn.Or(update)
				firstStep = false
			}

			// Fusion scan: first other odd cluster with nonzero overlap on
			// the active dimension (data during a half step, syndrome
			// during a full step), scanned in insertion order.
			mergeRoot := -1
			for _, r := range oddOrder {
				if r == i {
					continue
				}
				other, alive := odd[r]
				if !alive {
					continue
				}

				var mine, theirs bitstring.BitString
				if !fullStep {
					mine, theirs = oc.data, other.data
				} else {
					mine, theirs = oc.syn, other.syn
				}
				if mine.And(theirs).Popcount() >= 1 {
					mergeRoot = r
					break
				}
			}

			if mergeRoot >= 0 {
				other := odd[mergeRoot]
				even[mergeRoot] = Cluster{
					Root:            mergeRoot,
					DataSupport:     oc.data.Or(other.data),
					SyndromeSupport: oc.syn.Or(other.syn).SetBit(i).SetBit(mergeRoot),
				}
				delete(odd, i)
				delete(odd, mergeRoot)
				working = working.ClearBit(i).ClearBit(mergeRoot)
			}
		}

		count++
		if len(odd) > 0 {
			fullStep = !fullStep
		}
	}

	return even, count, nil
}
