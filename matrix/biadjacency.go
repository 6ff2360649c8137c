// SPDX-License-Identifier: MIT
//
// biadjacency.go — graph → |rows|×|cols| 0/1 matrix.
//
// Contract:
//   - rows and cols are explicit vertex orderings; the matrix follows them exactly.
//   - Cell (i,j) is 1 iff rows[i] and cols[j] are adjacent in g, else 0.
//   - Every label must be a vertex of g (ErrUnknownVertex), g must be non-nil (ErrGraphNil).
//
// Complexity:
//   - Time O(|rows|·|cols|) HasEdge lookups, Space O(|rows|·|cols|).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/netrobust/core"
)

const methodBiadjacency = "Biadjacency"

// Biadjacency renders the bipartite adjacency of g for the given orderings.
func Biadjacency(g *core.Graph, rows, cols []string) (*Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodBiadjacency, ErrGraphNil)
	}
	m, err := NewDense(len(rows), len(cols))
	if err != nil {
		return nil, fmt.Errorf("%s: %d×%d: %w", methodBiadjacency, len(rows), len(cols), err)
	}
	for _, id := range append(append([]string(nil), rows...), cols...) {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%s: %q: %w", methodBiadjacency, id, ErrUnknownVertex)
		}
	}

	for i, u := range rows {
		for j, v := range cols {
			if !g.HasEdge(u, v) {
				continue
			}
			if err = m.Set(i, j, 1); err != nil {
				return nil, fmt.Errorf("%s: %w", methodBiadjacency, err)
			}
		}
	}

	return m, nil
}
