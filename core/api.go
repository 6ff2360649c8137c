// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only snapshot of configuration and catalog sizes.
type GraphStats struct {
	Bipartite   bool
	VertexCount int
	EdgeCount   int

	// IsolatedCount counts vertices of degree zero.
	IsolatedCount int

	// PartitionSizes maps partition → vertex count (NoPartition included when present).
	PartitionSizes map[int]int
}

// Bipartite reports whether the graph was built with WithBipartite().
// The flag is immutable after construction.
func (g *Graph) Bipartite() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.bipartite
}

// Stats produces a deterministic, read-only snapshot of flags and catalog sizes.
//
// Implementation:
//   - Acquire muVert then muEdgeAdj read locks and walk the vertex catalog once.
//
// Complexity:
//   - Time O(V), Space O(P) for the partition tally.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	stats := GraphStats{
		Bipartite:      g.bipartite,
		VertexCount:    len(g.vertices),
		EdgeCount:      len(g.edges),
		PartitionSizes: make(map[int]int),
	}
	var id string
	var v *Vertex
	for id, v = range g.vertices {
		stats.PartitionSizes[v.Partition]++
		if len(g.adjacency[id]) == 0 {
			stats.IsolatedCount++
		}
	}

	return &stats
}
