package surface

import "github.com/surfqec/uf/bitstring"

// Type names a stabilizer flavor. Every code exposes exactly two ordered
// stabilizer sequences, one per Type.
type Type uint8

const (
	// X identifies X-type stabilizers (measure-X / vertex operators).
	X Type = iota
	// Z identifies Z-type stabilizers (measure-Z / face operators).
	Z
)

// String renders the type as the single-letter label used throughout the
// package's doc comments and error messages.
func (t Type) String() string {
	switch t {
	case X:
		return "x"
	case Z:
		return "z"
	default:
		return "invalid"
	}
}

// Valid reports whether t is one of the two defined stabilizer types.
func (t Type) Valid() bool {
	return t == X || t == Z
}

// Opposite returns the other stabilizer type (X<->Z), the relation
// generate_syndrome uses to pick which table to measure against a given
// error type.
func (t Type) Opposite() Type {
	if t == X {
		return Z
	}

	return X
}

// Code is the capability set the decoder (package unionfind) and the
// threshold driver (package threshold) require from a concrete surface
// code. Toric and RotatedPlanar both satisfy it by embedding *Table.
type Code interface {
	// NumDataQubits returns the number of data qubits N_data.
	NumDataQubits() int
	// NumStabilizers returns N_stab(t), the count of stabilizers of type t.
	NumStabilizers(t Type) int
	// Stabilizers returns the ordered stabilizer supports of type t.
	Stabilizers(t Type) []bitstring.BitString
	// Stabilizer returns the support of stabilizer i of type t.
	Stabilizer(i int, t Type) (bitstring.BitString, error)
	// GenerateSyndrome computes the syndrome of the opposite type induced
	// by a data-qubit error of type errorType. When showAllAdjacent is
	// true, a stabilizer bit is set if its support merely intersects the
	// error mask (used by cluster growth); otherwise the standard parity
	// check (odd overlap) applies.
	GenerateSyndrome(data bitstring.BitString, errorType Type, showAllAdjacent bool) bitstring.BitString
	// LogicalOperators returns representative logical operators of type t
	// (non-contractible loops for toric, boundary-to-boundary chains for
	// rotated planar), used by the logical-error oracle (spec.md §9 Open
	// Question 1).
	LogicalOperators(t Type) []bitstring.BitString
	// ParityMatrix returns a dense [][]uint8 view of the stabilizer table
	// of type t, one row per stabilizer, one column per data qubit.
	ParityMatrix(t Type) [][]uint8
	// Legend returns the data a renderer needs to draw the code, without
	// this module performing any drawing itself (spec.md §1 non-goal).
	Legend() Legend
	// Name returns a short human-readable code name, e.g. "5x5 toric".
	Name() string
}

// Legend is the pure-data description a visualization layer needs; it
// carries no rendering logic (spec.md §1, §4.B "draw is pure visualization").
type Legend struct {
	Name             string
	NumDataQubits    int
	NumXStabilizers  int
	NumZStabilizers  int
	XStabilizerQubits [][]int // ascending data-qubit indices per X stabilizer
	ZStabilizerQubits [][]int // ascending data-qubit indices per Z stabilizer
}
