// Package core provides a thread-safe in-memory Graph implementation with a
// minimal, composable API surface, tuned for the shrinking workloads of
// robustness analysis (repeated vertex removal with degree queries).
//
// The Graph G = (V,E) is always undirected and simple:
//
//   - No self-loops (ErrLoopNotAllowed) and no parallel edges (ErrMultiEdgeNotAllowed).
//   - Optional bipartite mode (WithBipartite): every vertex carries a partition
//     (WithPartition) and AddEdge only accepts edges across partitions.
//   - Constant-time edge operations via nested maps:
//     adjacency[u][v] = edgeID, mirrored for v.
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, opts ...VertexOption) error // O(1)
//	HasVertex(id string) bool                        // O(1)
//	RemoveVertex(id string) error                    // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(u, v string) (edgeID string, err error)  // O(1)
//	RemoveEdge(edgeID string) error                  // O(1)
//	HasEdge(u, v string) bool                        // O(1)
//
//	// Query
//	Degree(id string) (int, error)                   // O(1)
//	Partition(id string) (int, error)                // O(1)
//	Neighbors(id string) ([]*Edge, error)            // O(d·log d)
//	NeighborIDs(id string) ([]string, error)         // O(d·log d)
//	Isolated() []string                              // O(V·log V)
//	Vertices() []string                              // O(V·log V)
//	Edges() []*Edge                                  // O(E·log E)
//
//	// Maintenance
//	Clone(), CloneEmpty(), Clear(), Stats()
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – parallel edge
//	ErrSamePartition       – bipartite edge inside one partition
//	ErrPartitionUnset      – bipartite endpoint added without a partition
package core
