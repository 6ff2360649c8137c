// SPDX-License-Identifier: MIT
// Package: netrobust/bipartite
//
// options.go — functional options for Build / BuildDense.
//
// Contract:
//   • Options are functional (type Option func(*buildConfig)).
//   • Defaults reproduce the reference rule: a cell is an edge iff it equals 1.

package bipartite

import "math"

// Class labels the two partitions as stored in core.Vertex.Partition.
const (
	ClassA = 0 // rows (plants)
	ClassB = 1 // columns (pollinators)
)

// Option customizes Build before construction begins.
type Option func(*buildConfig)

// buildConfig is resolved once per Build and passed by value.
type buildConfig struct {
	isEdge func(v float64) bool
}

// newBuildConfig applies options over deterministic defaults.
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{isEdge: equalsOne}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithNonZeroEdges treats every finite non-zero value as an edge instead of
// requiring exactly 1.
func WithNonZeroEdges() Option {
	return func(c *buildConfig) { c.isEdge = finiteNonZero }
}

func equalsOne(v float64) bool { return v == 1 }

func finiteNonZero(v float64) bool {
	return v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
