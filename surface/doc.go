// Package surface defines the abstract contract shared by every concrete
// surface code (toric, rotated planar): stabilizer tables keyed by Type,
// syndrome generation, and the error taxonomy every other package in this
// module reports through.
//
// A Code is immutable after construction (spec.md §5 "Sharing") and safe to
// share by reference across decoding goroutines without locks — nothing in
// Table ever mutates post-construction state.
package surface
