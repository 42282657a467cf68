// Package bitstring implements BitString, a packed-word, arbitrary-width,
// immutable bit-mask.
//
// A BitString stands in for the arbitrary-precision integers the reference
// implementation uses to represent stabilizer supports, syndromes, and
// cluster state: bit i set means "index i is a member of this set". Values
// are small (up to a few thousand bits for any code this decoder targets),
// so a []uint64 word vector — rather than math/big — keeps the hot path
// (AND/OR/XOR/popcount inside cluster growth) allocation-light and branch-
// free per word.
//
// BitString is a value type and every operation (And, Or, Xor, SetBit,
// ClearBit) returns a new BitString rather than mutating the receiver, so
// callers can share a BitString across clusters without aliasing bugs —
// the same discipline the reference implementation gets for free from
// Python's immutable ints.
package bitstring
