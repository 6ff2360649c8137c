// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount.
// Determinism:
//   - Edge IDs are "e1", "e2", ... in insertion order.
//   - Edges() is sorted by Edge.ID.
// Concurrency:
//   - AddEdge holds muVert (read) then muEdgeAdj (write), the same order as
//     RemoveVertex, so an edge is never stored against a removed endpoint.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Byte form allows append to a []byte buffer without fmt.
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge u–v and returns its ID.
//
// Steps:
//  1. Validate IDs and loops.
//  2. Non-bipartite graphs auto-create endpoints.
//  3. Hold muVert (read) through the insert so neither endpoint can be removed
//     midway; bipartite graphs require assigned, distinct partitions.
//  4. Lock muEdgeAdj, reject parallel edges.
//  5. Generate eid atomically, store and mirror adjacency.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//   - ErrVertexNotFound: a bipartite endpoint is missing, or an auto-created
//     endpoint was removed concurrently.
//   - Bipartite only: ErrPartitionUnset, ErrSamePartition.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) (string, error) {
	if u == "" || v == "" {
		return "", ErrEmptyVertexID
	}
	if u == v {
		return "", ErrLoopNotAllowed
	}

	if !g.bipartite {
		if err := g.AddVertex(u); err != nil {
			return "", err
		}
		if err := g.AddVertex(v); err != nil {
			return "", err
		}
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if err := g.checkEndpointsLocked(u, v); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, dup := g.adjacency[u][v]; dup {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: u, To: v}
	g.adjacency[u][v] = eid
	g.adjacency[v][u] = eid

	return eid, nil
}

// checkEndpointsLocked requires both endpoints to exist and, in bipartite
// mode, to sit in distinct assigned partitions. Caller holds muVert.
func (g *Graph) checkEndpointsLocked(u, v string) error {
	vu, ok := g.vertices[u]
	if !ok {
		return ErrVertexNotFound
	}
	vv, ok := g.vertices[v]
	if !ok {
		return ErrVertexNotFound
	}
	if !g.bipartite {
		return nil
	}
	if vu.Partition == NoPartition || vv.Partition == NoPartition {
		return ErrPartitionUnset
	}
	if vu.Partition == vv.Partition {
		return ErrSamePartition
	}

	return nil
}

// RemoveEdge deletes one edge and its mirror.
// Complexity: O(1).
// Concurrency: acquires muEdgeAdj write lock only.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	delete(g.adjacency[e.From], e.To)
	delete(g.adjacency[e.To], e.From)

	return nil
}

// HasEdge reports whether u and v are adjacent. Symmetric.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// GetEdge returns the Edge with the given ID or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID asc (stable, deterministic order).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1) // atomically reserve the next sequence number
	buf := make([]byte, 0, 1+20)            // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
