// Package uf is a topological quantum error-correction toolkit: surface-code
// constructions (toric and rotated planar), a Union-Find syndrome decoder,
// and a Monte-Carlo threshold-estimation harness.
//
// Under the hood, everything is organized under subpackages:
//
//	bitstring/    — packed-word arbitrary-width bitmask, the wire format for
//	                data-qubit errors, syndromes, and stabilizer supports
//	surface/      — the Code interface, stabilizer Table, and syndrome
//	                generation shared by every concrete code
//	toric/        — periodic W×L surface code construction
//	rotatedplanar/ — open-boundary distance-D rotated planar construction
//	unionfind/    — the Delfosse-Nickerson Union-Find decoder: cluster
//	                growth/validation, spanning-tree construction, peeling
//	threshold/    — Config, LogicalOracle, and the Monte-Carlo sweep driver
//	                that ties a code family and the decoder together
//
// cmd/threshold is the CLI front-end for the threshold package.
//
//	go get github.com/surfqec/uf
package uf
