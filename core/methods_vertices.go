// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, check presence; if missing, allocate Vertex and apply opts.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Behavior highlights:
//   - Idempotent: re-adding an existing vertex is a no-op and options are ignored,
//     so a vertex can never change partition.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}

	v := &Vertex{ID: id, Partition: NoPartition}
	for _, opt := range opts {
		opt(v)
	}
	g.vertices[id] = v

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert and muEdgeAdj write locks for an atomic topology update.
//   - Stage 3: Verify vertex presence (ErrVertexNotFound).
//   - Stage 4: Walk the vertex's own adjacency bucket; unlink every neighbor mirror
//     and drop the edge from the catalog.
//   - Stage 5: Delete the vertex record and its bucket.
//
// Complexity:
//   - Time O(deg(v)), Space O(1) extra.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	var nbr, eid string
	for nbr, eid = range g.adjacency[id] {
		delete(g.adjacency[nbr], id)
		delete(g.edges, eid)
	}

	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Partition returns the partition the vertex was added with.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) Partition(id string) (int, error) {
	if id == "" {
		return NoPartition, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return NoPartition, ErrVertexNotFound
	}

	return v.Partition, nil
}

// Degree returns the number of edges currently incident to id.
//
// Errors:
//   - ErrEmptyVertexID: if id is empty.
//   - ErrVertexNotFound: if the vertex does not exist in the graph.
//
// Complexity:
//   - Time O(1): the graph is simple, so the adjacency bucket size is the degree.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	// Same lock order as mutators (muVert -> muEdgeAdj).
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacency[id]), nil
}
