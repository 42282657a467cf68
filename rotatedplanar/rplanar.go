// SPDX-License-Identifier: MIT
package rotatedplanar

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/surfqec/uf/bitstring"
	"github.com/surfqec/uf/surface"
)

// Code is the rotated planar surface code: an odd dimension D, open
// boundaries on all four sides. Code is immutable after New returns and
// safe to share across decoding goroutines (spec.md §5).
type Code struct {
	*surface.Table

	Dimension int
}

// New constructs a dimension-D rotated planar code. N_data = D^2,
// N_stab(X) = N_stab(Z) = (D^2-1)/2.
//
// Returns a surface.KindConfiguration error if dimension is even or less
// than 3 (spec.md REDESIGN FLAG 3).
func New(dimension int) (*Code, error) {
	if dimension < 3 || dimension%2 == 0 {
		return nil, surface.NewKindError(surface.KindConfiguration,
			errors.Wrapf(ErrInvalidDimension, "New(dimension=%d)", dimension))
	}

	d := dimension
	numData := d * d
	numStab := (d*d - 1) / 2
	table := surface.NewTable(fmt.Sprintf("rotated planar d=%d", d), numData, numStab, numStab)

	at := func(row, col int) int { return row*d + col }
	parity := func(i, j int) int { return ((i+j)%2 + 2) % 2 }

	var xSupports, zSupports [][]int
	for i := -1; i <= d-1; i++ {
		for j := -1; j <= d-1; j++ {
			corner := (i == -1 || i == d-1) && (j == -1 || j == d-1)
			if corner {
				continue // touches a single data qubit, never a stabilizer
			}

			switch {
			case i >= 0 && i <= d-2 && j >= 0 && j <= d-2:
				// interior corner: all four neighbors exist, weight-4.
				support := []int{at(i, j), at(i, j+1), at(i+1, j), at(i+1, j+1)}
				if parity(i, j) == 0 {
					xSupports = append(xSupports, support)
				} else {
					zSupports = append(zSupports, support)
				}
			case i == -1 && j >= 0 && j <= d-2:
				// top boundary: X only, half the column positions.
				if parity(i, j) == 0 {
					xSupports = append(xSupports, []int{at(0, j), at(0, j+1)})
				}
			case i == d-1 && j >= 0 && j <= d-2:
				// bottom boundary: X only.
				if parity(i, j) == 0 {
					xSupports = append(xSupports, []int{at(d-1, j), at(d-1, j+1)})
				}
			case j == -1 && i >= 0 && i <= d-2:
				// left boundary: Z only.
				if parity(i, j) == 1 {
					zSupports = append(zSupports, []int{at(i, 0), at(i+1, 0)})
				}
			case j == d-1 && i >= 0 && i <= d-2:
				// right boundary: Z only.
				if parity(i, j) == 1 {
					zSupports = append(zSupports, []int{at(i, d-1), at(i+1, d-1)})
				}
			}
		}
	}

	if len(xSupports) != numStab || len(zSupports) != numStab {
		return nil, surface.NewKindError(surface.KindInternalInvariant,
			errors.Errorf("rotatedplanar: dimension %d produced %d X and %d Z stabilizers, want %d each",
				d, len(xSupports), len(zSupports), numStab))
	}

	for idx, support := range xSupports {
		table.SetStabilizer(idx, surface.X, bitstring.FromIndices(support...))
	}
	for idx, support := range zSupports {
		table.SetStabilizer(idx, surface.Z, bitstring.FromIndices(support...))
	}

	// The single logical X runs down the left column (terminating on the
	// X-type top/bottom boundaries); the single logical Z runs along the
	// top row (terminating on the Z-type left/right boundaries).
	xLogical := make([]int, d)
	zLogical := make([]int, d)
	for k := 0; k < d; k++ {
		xLogical[k] = at(k, 0)
		zLogical[k] = at(0, k)
	}
	table.SetLogicalOperators(surface.X, []bitstring.BitString{bitstring.FromIndices(xLogical...)})
	table.SetLogicalOperators(surface.Z, []bitstring.BitString{bitstring.FromIndices(zLogical...)})

	return &Code{Table: table, Dimension: d}, nil
}
