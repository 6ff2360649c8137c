// SPDX-License-Identifier: MIT
// Package: netrobust/bipartite
//
// coerce.go — cell value coercion.
//
// Policy (in order):
//   • nil, blank/whitespace strings → NaN (no edge, no error).
//   • bool → 1 / 0.
//   • signed/unsigned integers and floats → float64 value (NaN stays NaN).
//   • strings → strconv.ParseFloat, then strconv.ParseBool ("TRUE", "f", ...).
//   • anything else → error (reported by Build as *CellError).

package bipartite

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// errUncoercible is the Reason attached to *CellError for unusable values.
var errUncoercible = errors.New("value is not numeric or boolean")

// Coerce converts one raw matrix cell into a number. NaN means "empty cell".
func Coerce(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return math.NaN(), nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case string:
		return coerceString(x)
	default:
		return 0, fmt.Errorf("%T: %w", v, errUncoercible)
	}
}

// coerceString handles textual cells as read from CSV or spreadsheets.
func coerceString(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		if b {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("%q: %w", s, errUncoercible)
}
