// SPDX-License-Identifier: MIT
// Package: netrobust/bipartite
//
// validators.go — label and shape checks run before any vertex is created.
//
// Priority (first failure wins):
//   1. matrix shape, 2. empty label, 3. duplicate within a class,
//   4. overlap across classes, then cells during construction.

package bipartite

import (
	"fmt"
	"sort"
	"strings"
)

// validateLabels enforces non-empty, per-class unique, cross-class disjoint labels.
func validateLabels(method string, rowLabels, colLabels []string) error {
	rows, err := labelSet(method, "row", rowLabels)
	if err != nil {
		return err
	}
	if _, err = labelSet(method, "column", colLabels); err != nil {
		return err
	}

	var clash []string
	for _, c := range colLabels {
		if _, ok := rows[c]; ok {
			clash = append(clash, c)
		}
	}
	if len(clash) > 0 {
		sort.Strings(clash)
		return fmt.Errorf("%s: labels in both classes [%s]: %w",
			method, strings.Join(clash, ", "), ErrInvalidInput)
	}

	return nil
}

// labelSet indexes labels and rejects empties and duplicates.
func labelSet(method, kind string, labels []string) (map[string]int, error) {
	seen := make(map[string]int, len(labels))
	for i, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("%s: %s label %d is empty: %w", method, kind, i, ErrInvalidInput)
		}
		if j, dup := seen[l]; dup {
			return nil, fmt.Errorf("%s: duplicate %s label %q at %d and %d: %w", method, kind, l, j, i, ErrInvalidInput)
		}
		seen[l] = i
	}

	return seen, nil
}

// validateShape checks a rows×cols matrix against the label counts.
func validateShape(method string, rows int, rowLen func(i int) int, nRows, nCols int) error {
	if rows != nRows {
		return fmt.Errorf("%s: matrix has %d rows, %d row labels: %w", method, rows, nRows, ErrInvalidInput)
	}
	for i := 0; i < rows; i++ {
		if n := rowLen(i); n != nCols {
			return fmt.Errorf("%s: row %d has %d cells, %d column labels: %w", method, i, n, nCols, ErrInvalidInput)
		}
	}

	return nil
}
