// Package bipartite builds two-class interaction networks (class A = matrix
// rows, e.g. plants; class B = matrix columns, e.g. pollinators) as
// core.Graph values in bipartite mode.
//
// The package offers the following key components:
//
//   - Build / BuildDense: adjacency matrix + labels → graph and the two
//     ordered label sets.
//   - Coerce: the cell coercion policy shared by every tabular source
//     (nil/blank/NaN → no edge, bool/number/numeric text → value).
//   - RandomMatrix / Labels: seeded random networks for fixtures and null
//     models.
//
// Guarantees:
//
//   - Every row and column label becomes a vertex, even with degree zero.
//   - The returned class orderings equal the input label orderings.
//   - The graph is created with core.WithBipartite(), so no edge can ever join
//     two vertices of one class.
//   - All validation failures wrap ErrInvalidInput; malformed cells surface as
//     *CellError with row/column coordinates.
//   - No I/O is performed.
package bipartite
