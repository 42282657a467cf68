package unionfind

import "errors"

// ErrIllFormedSyndrome is returned by Validate when the working syndrome
// fails to collapse to zero within a bounded number of growth rounds — the
// signature of a syndrome whose parity the code's topology cannot absorb
// (spec.md §7 IllFormedSyndromeError; §4.D.1 "Failure modes"), wrapped as a
// surface.KindIllFormedSyndrome error.
var ErrIllFormedSyndrome = errors.New("unionfind: syndrome parity is inconsistent with code topology")
