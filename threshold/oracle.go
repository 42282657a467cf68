package threshold

import (
	"github.com/surfqec/uf/bitstring"
	"github.com/surfqec/uf/surface"
)

// LogicalOracle decides whether an error (already reduced by a decoder's
// correction) constitutes a logical failure, independent of whether its
// residual syndrome is zero. This is the piece spec.md §9 Open Question 1
// leaves as an empty function body in the source.
type LogicalOracle interface {
	IsLogicalError(code surface.Code, residualError bitstring.BitString, errorType surface.Type) bool
}

// defaultOracle implements LogicalOracle against Code.LogicalOperators:
// a residualError of type errorType is a logical failure if it has odd
// overlap with a dual-type logical operator, since two operators of the
// same Pauli type always commute and only the dual pairing detects a
// logical flip (spec.md §9 Open Question 1).
type defaultOracle struct{}

// DefaultOracle is the LogicalOracle Run uses absent an override.
var DefaultOracle LogicalOracle = defaultOracle{}

func (defaultOracle) IsLogicalError(code surface.Code, residualError bitstring.BitString, errorType surface.Type) bool {
	for _, op := range code.LogicalOperators(errorType.Opposite()) {
		if op.And(residualError).Popcount()%2 == 1 {
			return true
		}
	}

	return false
}
