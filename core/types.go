// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building, querying, and shrinking
// undirected simple graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so graphs can be read across goroutines
// with minimal contention.
//
// This file declares Vertex, Edge, Graph, GraphOption, VertexOption,
// sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrSamePartition indicates an edge between two vertices of one partition
	// in a bipartite graph.
	ErrSamePartition = errors.New("core: edge endpoints share a partition")

	// ErrPartitionUnset indicates a bipartite graph met a vertex with no partition.
	ErrPartitionUnset = errors.New("core: vertex partition is unset")
)

// NoPartition marks a vertex that was added without WithPartition.
const NoPartition = -1

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Partition is the side of a bipartite graph the vertex belongs to
// (NoPartition when unassigned).
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Partition is fixed when the vertex is first added.
	Partition int
}

// Edge represents an undirected connection between two vertices.
// From/To keep the endpoint order given to AddEdge.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithBipartite makes AddEdge require both endpoints to exist with distinct,
// assigned partitions. The bipartite invariant then holds for the graph's
// whole lifetime, since removals can never introduce edges.
func WithBipartite() GraphOption {
	return func(g *Graph) { g.bipartite = true }
}

// VertexOption configures a vertex on first insertion.
type VertexOption func(v *Vertex)

// WithPartition assigns the vertex to partition p (p ≥ 0).
func WithPartition(p int) VertexOption {
	return func(v *Vertex) { v.Partition = p }
}

// Graph is the core in-memory graph data structure: undirected, unweighted,
// no self-loops and no parallel edges.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// Lock order is always muVert -> muEdgeAdj.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	bipartite bool // enforce cross-partition edges only

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[u][v] = edgeID, mirrored as adjacency[v][u].
	// Every live vertex owns a (possibly empty) bucket, so len(adjacency[u])
	// is the degree of u.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
