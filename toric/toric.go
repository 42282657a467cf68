// SPDX-License-Identifier: MIT
package toric

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/surfqec/uf/bitstring"
	"github.com/surfqec/uf/surface"
)

// Code is the toric surface code: a width x length grid of stabilizers with
// periodic boundaries. Code is immutable after New returns and safe to
// share across decoding goroutines (spec.md §5).
type Code struct {
	*surface.Table

	Width  int
	Length int
}

// New constructs a width x length toric code. N_data = 2*width*length,
// N_stab(X) = N_stab(Z) = width*length.
//
// Returns a surface.KindConfiguration error if width <= 1 or length <= 1.
func New(width, length int) (*Code, error) {
	if width <= 1 || length <= 1 {
		return nil, surface.NewKindError(surface.KindConfiguration,
			errors.Wrapf(ErrInvalidDimensions, "New(width=%d, length=%d)", width, length))
	}

	numStab := width * length
	numData := 2 * numStab
	table := surface.NewTable(fmt.Sprintf("%dx%d toric", width, length), numData, numStab, numStab)

	// horiz(r,c) and vert(r,c) name the two interleaved families of data
	// qubits: horizontal-edge qubits sit between vertex rows, vertical-edge
	// qubits sit within a Z-stabilizer row, per the doc.go diagrams.
	horiz := func(r, c int) int { return 2*r*width + c }
	vert := func(r, c int) int { return (2*r+1)*width + c }
	mod := func(v, m int) int { return ((v % m) + m) % m }

	for p := 0; p < numStab; p++ {
		row, col := p/width, p%width

		zSupport := bitstring.FromIndices(
			horiz(row, col),
			horiz(mod(row+1, length), col),
			vert(row, col),
			vert(row, mod(col+1, width)),
		)
		table.SetStabilizer(p, surface.Z, zSupport)

		xSupport := bitstring.FromIndices(
			vert(mod(row-1, length), col),
			vert(row, col),
			horiz(row, col),
			horiz(row, mod(col-1, width)),
		)
		table.SetStabilizer(p, surface.X, xSupport)
	}

	// Two independent non-contractible loops per type, one around each
	// torus cycle (spec.md §9 Open Question 1 / SPEC_FULL.md item 4). An X
	// loop has even overlap with every Z face and a Z loop with every X
	// vertex, so each has an empty syndrome as an error of its own type.
	xLoopRow := make([]int, 0, width)
	for c := 0; c < width; c++ {
		xLoopRow = append(xLoopRow, vert(0, c))
	}
	xLoopCol := make([]int, 0, length)
	for r := 0; r < length; r++ {
		xLoopCol = append(xLoopCol, horiz(r, 0))
	}
	table.SetLogicalOperators(surface.X, []bitstring.BitString{
		bitstring.FromIndices(xLoopRow...),
		bitstring.FromIndices(xLoopCol...),
	})

	zLoopRow := make([]int, 0, width)
	for c := 0; c < width; c++ {
		zLoopRow = append(zLoopRow, horiz(0, c))
	}
	zLoopCol := make([]int, 0, length)
	for r := 0; r < length; r++ {
		zLoopCol = append(zLoopCol, vert(r, 0))
	}
	table.SetLogicalOperators(surface.Z, []bitstring.BitString{
		bitstring.FromIndices(zLoopRow...),
		bitstring.FromIndices(zLoopCol...),
	})

	return &Code{Table: table, Width: width, Length: length}, nil
}
