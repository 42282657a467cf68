// Package unionfind implements the Delfosse-Nickerson Union-Find decoder
// for topological surface codes (spec.md §4.D; arxiv.org/pdf/1709.06218).
//
// Decoding a syndrome proceeds in three phases, each its own file:
//
//   - Validate (cluster.go) grows clusters of lit syndrome vertices by
//     alternating half-edge and full-edge steps until every cluster has
//     fused into an even one. Ported line-for-line in control flow from
//     original_source's syndrome_validation_naive, deliberately "naive":
//     it re-scans every odd cluster on every step rather than
//     maintaining a weighted disjoint-set forest.
//   - SpanningTrees (spanningtree.go) walks each even cluster's syndrome
//     vertices with an explicit-stack DFS, discovering a tree of
//     data-qubit edges.
//   - Peel (peel.go) strips that tree from the leaves inward, selecting
//     the data qubits whose flip cancels the cluster's syndrome.
//
// Decode composes all three (decode.go) and is the package's main entry
// point.
package unionfind
