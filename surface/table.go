// SPDX-License-Identifier: MIT
package surface

import (
	"github.com/pkg/errors"

	"github.com/surfqec/uf/bitstring"
)

// Table holds the stabilizer and logical-operator bit-masks for a concrete
// code and implements the parts of Code that are identical across every
// topology: lookup, syndrome generation, the dense ParityMatrix view, and
// Legend. Concrete codes (toric.Code, rotatedplanar.Code) embed *Table and
// populate it once, at construction, via Set*.
//
// Table is immutable after construction: Set* is exported so the concrete
// codes in sibling packages can populate a Table, and only their
// constructors (and tests) call it. Once built,
// a Table may be shared by reference across goroutines without locks
// (spec.md §5).
type Table struct {
	name        string
	numData     int
	stabilizers [2][]bitstring.BitString
	logicalOps  [2][]bitstring.BitString
}

// NewTable allocates a Table for a code with the given number of data
// qubits and stabilizer counts per type. Stabilizers start out empty;
// callers populate them with SetStabilizer before exposing the Table.
func NewTable(name string, numData, numX, numZ int) *Table {
	t := &Table{
		name:    name,
		numData: numData,
	}
	t.stabilizers[X] = make([]bitstring.BitString, numX)
	t.stabilizers[Z] = make([]bitstring.BitString, numZ)

	return t
}

// SetStabilizer installs the support of stabilizer i of type typ. Intended
// for use only by a concrete code's constructor.
func (t *Table) SetStabilizer(i int, typ Type, support bitstring.BitString) {
	t.stabilizers[typ][i] = support
}

// SetLogicalOperators installs the representative logical operators of
// type typ. Intended for use only by a concrete code's constructor.
func (t *Table) SetLogicalOperators(typ Type, ops []bitstring.BitString) {
	t.logicalOps[typ] = ops
}

// Name returns the human-readable code name supplied to NewTable.
func (t *Table) Name() string {
	return t.name
}

// NumDataQubits returns N_data.
func (t *Table) NumDataQubits() int {
	return t.numData
}

// NumStabilizers returns N_stab(typ), or 0 if typ is invalid.
func (t *Table) NumStabilizers(typ Type) int {
	if !typ.Valid() {
		return 0
	}

	return len(t.stabilizers[typ])
}

// Stabilizers returns the ordered stabilizer supports of type typ.
func (t *Table) Stabilizers(typ Type) []bitstring.BitString {
	if !typ.Valid() {
		return nil
	}

	return t.stabilizers[typ]
}

// Stabilizer returns the support of stabilizer i of type typ.
func (t *Table) Stabilizer(i int, typ Type) (bitstring.BitString, error) {
	if !typ.Valid() {
		return bitstring.Zero(), NewKindError(KindInvalidArgument,
			errors.Wrapf(ErrUnknownStabilizerType, "Stabilizer(%d, %v)", i, typ))
	}
	table := t.stabilizers[typ]
	if i < 0 || i >= len(table) {
		return bitstring.Zero(), NewKindError(KindInvalidArgument,
			errors.Wrapf(ErrStabilizerIndexOutOfRange, "Stabilizer(%d, %v): have %d stabilizers", i, typ, len(table)))
	}

	return table[i], nil
}

// LogicalOperators returns the representative logical operators of type typ.
func (t *Table) LogicalOperators(typ Type) []bitstring.BitString {
	if !typ.Valid() {
		return nil
	}

	return t.logicalOps[typ]
}

// GenerateSyndrome implements spec.md §4.B: the syndrome type is the
// opposite of errorType; for each stabilizer s of that type at index i, bit
// i is set iff popcount(s & data) is odd (showAllAdjacent == false) or
// s & data != 0 (showAllAdjacent == true, used only by cluster growth to
// enumerate all touched vertices rather than cancel even overlaps).
func (t *Table) GenerateSyndrome(data bitstring.BitString, errorType Type, showAllAdjacent bool) bitstring.BitString {
	syndromeType := errorType.Opposite()
	syn := bitstring.Zero()
	for i, stabilizer := range t.stabilizers[syndromeType] {
		overlap := stabilizer.And(data)
		if overlap.IsZero() {
			continue
		}
		if showAllAdjacent || overlap.Popcount()%2 == 1 {
			syn = syn.SetBit(i)
		}
	}

	return syn
}

// ParityMatrix returns a dense row-per-stabilizer, column-per-data-qubit
// view of the stabilizer table of type typ. This is not on the decoder's
// hot path; it exists for diagnostics and test fixtures that want a
// cross-check against the bit-mask representation (original_source's
// get_parity_check_matrices).
func (t *Table) ParityMatrix(typ Type) [][]uint8 {
	if !typ.Valid() {
		return nil
	}
	table := t.stabilizers[typ]
	rows := make([][]uint8, len(table))
	for r, stabilizer := range table {
		row := make([]uint8, t.numData)
		for _, col := range stabilizer.ToIndices() {
			if col < t.numData {
				row[col] = 1
			}
		}
		rows[r] = row
	}

	return rows
}

// Legend returns the pure-data description a renderer needs.
func (t *Table) Legend() Legend {
	legend := Legend{
		Name:              t.name,
		NumDataQubits:     t.numData,
		NumXStabilizers:   len(t.stabilizers[X]),
		NumZStabilizers:   len(t.stabilizers[Z]),
		XStabilizerQubits: make([][]int, len(t.stabilizers[X])),
		ZStabilizerQubits: make([][]int, len(t.stabilizers[Z])),
	}
	for i, s := range t.stabilizers[X] {
		legend.XStabilizerQubits[i] = s.ToIndices()
	}
	for i, s := range t.stabilizers[Z] {
		legend.ZStabilizerQubits[i] = s.ToIndices()
	}

	return legend
}
