// Package matrix offers a small dense matrix type and the converter between
// bipartite graphs and their biadjacency matrices.
//
// The matrix package provides:
//
//   - Dense: row-major float64 storage with bounds-checked At/Set.
//   - Biadjacency: renders a core.Graph into a rows×cols 0/1 matrix for an
//     explicit row (class A) and column (class B) ordering, the inverse of
//     bipartite.BuildDense.
//
// Biadjacency matrices are |A|×|B| rather than V×V, so they stay compact for
// the plant–pollinator networks this module analyses.
package matrix
