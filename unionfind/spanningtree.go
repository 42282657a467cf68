package unionfind

import (
	"github.com/surfqec/uf/bitstring"
	"github.com/surfqec/uf/surface"
)

// Edge is one discovery step of a cluster's spanning tree: Child was
// reached from Parent over DataQubit. The tree's root carries Parent = -1
// and DataQubit = -1 (spec.md §4.D.2).
type Edge struct {
	Parent    int
	Child     int
	DataQubit int
}

// stackFrame is a pending DFS visit: the node to visit, and (unless it is
// the tree's root) the parent and connecting edge that discovered it.
type stackFrame struct {
	node      int
	hasParent bool
	parent    int
	dataQubit int
}

// SpanningTrees builds, for every even cluster, an ordered list of Edge in
// depth-first discovery order (spec.md §4.D.2). The DFS starts at the
// lowest-indexed syndrome vertex and, at each node, pushes neighbors in
// ascending index order — since the stack is LIFO, this visits the
// highest-indexed neighbor first (spec.md §4.D.2 "Tie-breaks").
func SpanningTrees(code surface.Code, clusters map[int]Cluster, syndromeType surface.Type) (map[int][]Edge, error) {
	roots := make([]int, 0, len(clusters))
	for root := range clusters {
		roots = append(roots, root)
	}
	roots = bitstring.SortedRoots(roots)

	trees := make(map[int][]Edge, len(clusters))

	for _, root := range roots {
		cluster := clusters[root]
		vertices := cluster.SyndromeSupport.ToIndices()
		inCluster := make(map[int]bool, len(vertices))
		for _, v := range vertices {
			inCluster[v] = true
		}

		stack := []stackFrame{{node: vertices[0], hasParent: false}}
		visited := make(map[int]bool, len(vertices))
		order := make([]Edge, 0, len(vertices))

		for len(stack) > 0 {
			frame := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if visited[frame.node] {
				continue
			}
			visited[frame.node] = true

			if frame.hasParent {
				order = append(order, Edge{Parent: frame.parent, Child: frame.node, DataQubit: frame.dataQubit})
			} else {
				order = append(order, Edge{Parent: -1, Child: frame.node, DataQubit: -1})
			}

			stab, err := code.Stabilizer(frame.node, syndromeType)
			if err != nil {
				return nil, err
			}

			adjacent := code.GenerateSyndrome(stab.And(cluster.DataSupport), syndromeType.Opposite(), false)
			for _, n := range adjacent.ToIndices() {
				if !inCluster[n] || visited[n] {
					continue
				}

				nStab, err := code.Stabilizer(n, syndromeType)
				if err != nil {
					return nil, err
				}
				shared := stab.And(nStab).ToIndices()
				if len(shared) == 0 {
					continue
				}

				stack = append(stack, stackFrame{node: n, hasParent: true, parent: frame.node, dataQubit: shared[0]})
			}
		}

		trees[root] = order
	}

	return trees, nil
}
