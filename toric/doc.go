// Package toric builds the toric surface code (spec.md §4.C): a
// width-by-length grid of stabilizers with periodic boundaries in both
// directions.
//
// Data qubits alternate horizontal and vertical rows, indexed
// left-to-right, top-to-bottom, following the layout documented in
// original_source's toric_code.py:
//
//	Z parity checks (3x3 example):
//	    D0      D1      D2
//	D3  Z0  D4  Z1  D5  Z2  D3
//	    D6      D7      D8
//	D9  Z3  D10 Z4  D11 Z5  D9
//	    D12     D13     D14
//	D15 Z6  D16 Z7  D17 Z8  D15
//	    D0      D1      D2
//
//	X parity checks:
//	X0  D0  X1  D1  X2  D2  X0
//	D3      D4      D5      D3
//	X3  D6  X4  D7  X5  D8  X3
//	D9      D10     D11     D9
//	X6  D12 X7  D13 X8  D14 X6
//	D15     D16     D17     D15
//	X0  D0  X1  D1  X2  D2  X0
//
// Rather than the original's shift-and-mask construction over a big
// integer, this package computes each stabilizer's support directly from
// (row, column) arithmetic (spec.md REDESIGN FLAG 1).
package toric
