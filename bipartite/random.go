// SPDX-License-Identifier: MIT
// Package: netrobust/bipartite
//
// random.go — seeded Erdős–Rényi style bipartite matrices.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and p ∈ [0,1] (else ErrInvalidInput).
//   • rng is required for 0 < p < 1; p ∈ {0,1} is deterministic without it.
//   • Cells are visited row-major and each draw is rng.Float64() < p, so a
//     fixed seed reproduces the same matrix.
//   • The result feeds BuildDense directly.

package bipartite

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/netrobust/matrix"
)

const (
	methodRandomMatrix = "RandomMatrix"
	minPartitionSize   = 1
	probMin            = 0.0
	probMax            = 1.0
)

// RandomMatrix returns a rows×cols 0/1 matrix.
func RandomMatrix(rng *rand.Rand, rows, cols int, p float64) (*matrix.Dense, error) {
	if rows < minPartitionSize || cols < minPartitionSize {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodRandomMatrix, rows, cols, minPartitionSize, ErrInvalidInput)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomMatrix, p, probMin, probMax, ErrInvalidInput)
	}
	if rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: rng is required for p=%.6f: %w", methodRandomMatrix, p, ErrInvalidInput)
	}

	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomMatrix, err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var hit bool
			switch p {
			case probMin:
			case probMax:
				hit = true
			default:
				hit = rng.Float64() < p
			}
			if !hit {
				continue
			}
			if err = m.Set(i, j, 1); err != nil {
				return nil, fmt.Errorf("%s: %w", methodRandomMatrix, err)
			}
		}
	}

	return m, nil
}

// Labels returns n deterministic labels "<prefix>1" … "<prefix>n".
func Labels(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + strconv.Itoa(i+1)
	}

	return out
}
