// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices
// (including partitions), but no edges.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.cloneEmptyLocked()
}

// cloneEmptyLocked does the CloneEmpty work. Caller holds both read locks.
func (g *Graph) cloneEmptyLocked() *Graph {
	clone := NewGraph()
	clone.bipartite = g.bipartite
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	var id string
	var v *Vertex
	for id, v = range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Partition: v.Partition}
		clone.adjacency[id] = make(map[string]string)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges, and adjacency.
// Edge IDs are preserved.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := g.cloneEmptyLocked()
	var (
		eid string
		e   *Edge
	)
	for eid, e = range g.edges {
		clone.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To}
		clone.adjacency[e.From][e.To] = eid
		clone.adjacency[e.To][e.From] = eid
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
// nextEdgeID restarts, so edge IDs resume from "e1".
//
// Complexity: O(1).
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]string)
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}
