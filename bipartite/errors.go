// SPDX-License-Identifier: MIT
// Package: netrobust/bipartite
//
// errors.go — sentinel errors for the bipartite package.
//
// Error policy:
//   • ErrInvalidInput is the single validation class; callers branch with errors.Is.
//   • Context is attached with %w and a method tag ("Build: ...").
//   • Malformed cells are reported as *CellError (errors.As) which unwraps to ErrInvalidInput.

package bipartite

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates malformed network input: bad labels, a ragged
// matrix, an uncoercible cell, or an empty class where one is required.
var ErrInvalidInput = errors.New("bipartite: invalid input")

// CellError pinpoints a matrix cell that could not be coerced to a number.
type CellError struct {
	Row, Col           int    // zero-based coordinates
	RowLabel, ColLabel string // labels of the row and column
	Value              any    // the raw cell value
	Reason             error  // coercion failure detail
}

// Error implements error.
func (e *CellError) Error() string {
	return fmt.Sprintf("bipartite: cell (%d,%d) [%s × %s] = %#v: %v",
		e.Row, e.Col, e.RowLabel, e.ColLabel, e.Value, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match cell failures.
func (e *CellError) Unwrap() error { return ErrInvalidInput }
