// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, Isolated) and adjacency helpers.
// Determinism:
//   - All returned slices are sorted.
// Concurrency:
//   - muVert -> muEdgeAdj read locks.

package core

import "sort"

// Neighbors returns all edges incident to id, sorted by Edge.ID.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(g.adjacency[id]))
	for _, eid := range g.adjacency[id] {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id, sorted lexicographically ascending.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	ids := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	return ids, nil
}

// Isolated returns the sorted IDs of all vertices with degree zero.
// Complexity: O(V log V).
func (g *Graph) Isolated() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []string
	for id := range g.vertices {
		if len(g.adjacency[id]) == 0 {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// ensureAdjacency makes adjacency[id] non-nil. Caller holds muEdgeAdj.
func ensureAdjacency(g *Graph, id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]string)
	}
}
