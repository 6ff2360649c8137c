// SPDX-License-Identifier: MIT
// Package: netrobust/bipartite
//
// api.go — public entry-points for network construction.
//
// Contract:
//   • Build(cells, rowLabels, colLabels, opts...) → (graph, classA, classB, err).
//   • Rows are class A, columns are class B; label orderings are preserved.
//   • Vertices are inserted rows first then columns, edges row-major, so the
//     same input always yields the same graph (edge IDs included).
//   • Returns only ErrInvalidInput-wrapped errors; never panics.
//
// Complexity:
//   • Time: O(|A| + |B|) vertices + O(|A|·|B|) cell visits.
//   • Space: O(|A| + |B|) for label indexes plus the graph itself.

package bipartite

import (
	"fmt"

	"github.com/katalvlaran/netrobust/core"
	"github.com/katalvlaran/netrobust/matrix"
)

const (
	methodBuild      = "Build"
	methodBuildDense = "BuildDense"
)

// Build constructs the bipartite graph for a matrix of raw cells (see Coerce).
func Build(cells [][]any, rowLabels, colLabels []string, opts ...Option) (*core.Graph, []string, []string, error) {
	if err := validateShape(methodBuild, len(cells), func(i int) int { return len(cells[i]) },
		len(rowLabels), len(colLabels)); err != nil {
		return nil, nil, nil, err
	}

	at := func(i, j int) (float64, error) {
		v, err := Coerce(cells[i][j])
		if err != nil {
			return 0, &CellError{
				Row: i, Col: j,
				RowLabel: rowLabels[i], ColLabel: colLabels[j],
				Value: cells[i][j], Reason: err,
			}
		}
		return v, nil
	}

	return build(methodBuild, at, rowLabels, colLabels, newBuildConfig(opts...))
}

// BuildDense constructs the bipartite graph from a numeric matrix.
func BuildDense(m matrix.Matrix, rowLabels, colLabels []string, opts ...Option) (*core.Graph, []string, []string, error) {
	if m == nil {
		return nil, nil, nil, fmt.Errorf("%s: nil matrix: %w", methodBuildDense, ErrInvalidInput)
	}
	if err := validateShape(methodBuildDense, m.Rows(), func(int) int { return m.Cols() },
		len(rowLabels), len(colLabels)); err != nil {
		return nil, nil, nil, err
	}

	return build(methodBuildDense, m.At, rowLabels, colLabels, newBuildConfig(opts...))
}

// build is the shared constructor body. at(i,j) yields the coerced cell value.
func build(
	method string,
	at func(i, j int) (float64, error),
	rowLabels, colLabels []string,
	cfg buildConfig,
) (*core.Graph, []string, []string, error) {
	if err := validateLabels(method, rowLabels, colLabels); err != nil {
		return nil, nil, nil, err
	}

	g := core.NewGraph(core.WithBipartite())
	for _, id := range rowLabels {
		if err := g.AddVertex(id, core.WithPartition(ClassA)); err != nil {
			return nil, nil, nil, fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}
	for _, id := range colLabels {
		if err := g.AddVertex(id, core.WithPartition(ClassB)); err != nil {
			return nil, nil, nil, fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	for i, u := range rowLabels {
		for j, v := range colLabels {
			val, err := at(i, j)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("%s: %w", method, err)
			}
			if !cfg.isEdge(val) {
				continue
			}
			if _, err = g.AddEdge(u, v); err != nil {
				return nil, nil, nil, fmt.Errorf("%s: AddEdge(%s–%s): %w", method, u, v, err)
			}
		}
	}

	classA := append([]string(nil), rowLabels...)
	classB := append([]string(nil), colLabels...)

	return g, classA, classB, nil
}
