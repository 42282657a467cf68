// Package rotatedplanar builds the rotated planar surface code (spec.md
// §4.C): an odd-dimension D code with open boundaries, alternating
// weight-2 and weight-4 stabilizers.
//
// Data qubits sit on a D x D grid, indexed left-to-right, top-to-bottom
// (index = row*D + col). Stabilizers sit at the corners of a (D+1)x(D+1)
// checkerboard overlaid on that grid (original_source's
// rotated_planar_code.py docstring, D=3 and D=5 diagrams):
//
//	D = 3 (a.k.a. Surface-17, arXiv:1612.08208):
//	                X0
//	    D0      D1      D2
//	Z0      X1      Z1
//	    D3      D4      D5
//	        Z2      X2      Z3
//	    D6      D7      D8
//	        X3
//
// Every interior corner (both row and column strictly inside the grid)
// hosts a weight-4 stabilizer; corner type alternates by checkerboard
// parity. Boundary corners host a weight-2 stabilizer only when their
// parity matches the boundary's fixed type: top and bottom carry X,
// left and right carry Z (spec.md §4.C), so exactly half the candidate
// positions along each boundary edge are realized — this is what gives a
// distance-D code floor(D/2)-ish boundary stabilizers per edge rather than
// D-1.
//
// This replaces the original's shift-and-mask big-integer construction
// with direct (row, column) arithmetic, per spec.md REDESIGN FLAG 1.
package rotatedplanar
