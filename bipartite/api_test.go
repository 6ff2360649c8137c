package bipartite_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/netrobust/bipartite"
	"github.com/katalvlaran/netrobust/core"
	"github.com/katalvlaran/netrobust/matrix"
)

// BuildSuite groups GraphBuilder contract tests.
type BuildSuite struct {
	suite.Suite
	rows, cols []string
	cells      [][]any
}

func (s *BuildSuite) SetupTest() {
	s.rows = []string{"P1", "P2"}
	s.cols = []string{"X", "Y"}
	s.cells = [][]any{
		{1, 1},
		{1, 0},
	}
}

// edgeSet returns an order-independent view of g's edges.
func edgeSet(g *core.Graph) map[[2]string]bool {
	out := make(map[[2]string]bool)
	for _, e := range g.Edges() {
		u, v := e.From, e.To
		if v < u {
			u, v = v, u
		}
		out[[2]string{u, v}] = true
	}
	return out
}

// TestScenario builds the reference two-plant network.
func (s *BuildSuite) TestScenario() {
	g, a, b, err := bipartite.Build(s.cells, s.rows, s.cols)
	require.NoError(s.T(), err)
	require.Equal(s.T(), s.rows, a)
	require.Equal(s.T(), s.cols, b)
	require.True(s.T(), g.Bipartite())
	require.Equal(s.T(), 3, g.EdgeCount())
	require.True(s.T(), g.HasEdge("P1", "X"))
	require.True(s.T(), g.HasEdge("P1", "Y"))
	require.True(s.T(), g.HasEdge("P2", "X"))
	require.False(s.T(), g.HasEdge("P2", "Y"))

	p, err := g.Partition("Y")
	require.NoError(s.T(), err)
	require.Equal(s.T(), bipartite.ClassB, p)
}

// TestReturnedLabelsAreCopies verifies callers can mutate their inputs freely.
func (s *BuildSuite) TestReturnedLabelsAreCopies() {
	_, a, _, err := bipartite.Build(s.cells, s.rows, s.cols)
	require.NoError(s.T(), err)
	s.rows[0] = "changed"
	require.Equal(s.T(), "P1", a[0])
}

// TestIsolatedLabelsStillVertices verifies all-zero rows and columns survive.
func (s *BuildSuite) TestIsolatedLabelsStillVertices() {
	cells := [][]any{{0, nil, ""}, {"  ", math.NaN(), 2}}
	g, _, _, err := bipartite.Build(cells, []string{"P1", "P2"}, []string{"X", "Y", "Z"})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, g.VertexCount())
	require.Zero(s.T(), g.EdgeCount(), "only exact 1 is an edge by default")
	require.Equal(s.T(), []string{"P1", "P2", "X", "Y", "Z"}, g.Isolated())
}

// TestNonZeroEdges verifies the opt-in edge rule.
func (s *BuildSuite) TestNonZeroEdges() {
	cells := [][]any{{2, 0.5}, {math.Inf(1), -1}}
	g, _, _, err := bipartite.Build(cells, s.rows, s.cols, bipartite.WithNonZeroEdges())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, g.EdgeCount())
	require.False(s.T(), g.HasEdge("P2", "X"), "Inf is not a finite weight")
}

// TestIdempotentConstruction verifies repeated builds yield identical edge sets.
func (s *BuildSuite) TestIdempotentConstruction() {
	g1, _, _, err := bipartite.Build(s.cells, s.rows, s.cols)
	require.NoError(s.T(), err)
	g2, _, _, err := bipartite.Build(s.cells, s.rows, s.cols)
	require.NoError(s.T(), err)
	require.Equal(s.T(), edgeSet(g1), edgeSet(g2))

	m1, err := matrix.Biadjacency(g1, s.rows, s.cols)
	require.NoError(s.T(), err)
	m2, err := matrix.Biadjacency(g2, s.rows, s.cols)
	require.NoError(s.T(), err)
	require.Equal(s.T(), m1.String(), m2.String())
}

// TestBuildDenseRoundTrip verifies Dense → graph → Biadjacency is the identity on 0/1 input.
func (s *BuildSuite) TestBuildDenseRoundTrip() {
	in, err := matrix.NewDenseFrom([][]float64{{1, 0, 1}, {0, 0, 1}})
	require.NoError(s.T(), err)
	rows, cols := []string{"P1", "P2"}, []string{"X", "Y", "Z"}

	g, _, _, err := bipartite.BuildDense(in, rows, cols)
	require.NoError(s.T(), err)
	out, err := matrix.Biadjacency(g, rows, cols)
	require.NoError(s.T(), err)
	require.Equal(s.T(), in.String(), out.String())

	_, _, _, err = bipartite.BuildDense(nil, rows, cols)
	require.ErrorIs(s.T(), err, bipartite.ErrInvalidInput)
	_, _, _, err = bipartite.BuildDense(in, rows, cols[:2])
	require.ErrorIs(s.T(), err, bipartite.ErrInvalidInput)
}

// TestInvalidInput covers every validation class.
func (s *BuildSuite) TestInvalidInput() {
	tests := []struct {
		name       string
		cells      [][]any
		rows, cols []string
		contains   string
	}{
		{"row count mismatch", [][]any{{1, 0}}, s.rows, s.cols, "1 rows, 2 row labels"},
		{"ragged row", [][]any{{1, 0}, {1}}, s.rows, s.cols, "row 1 has 1 cells"},
		{"empty row label", s.cells, []string{"P1", ""}, s.cols, "row label 1 is empty"},
		{"duplicate column", s.cells, s.rows, []string{"X", "X"}, `duplicate column label "X"`},
		{"overlap", s.cells, []string{"P1", "Y"}, []string{"Y", "P1"}, "labels in both classes [P1, Y]"},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			g, _, _, err := bipartite.Build(tc.cells, tc.rows, tc.cols)
			require.Nil(s.T(), g)
			require.ErrorIs(s.T(), err, bipartite.ErrInvalidInput)
			require.Contains(s.T(), err.Error(), tc.contains)
		})
	}
}

// TestMalformedCell verifies the offending cell is named with coordinates.
func (s *BuildSuite) TestMalformedCell() {
	cells := [][]any{{1, 0}, {"yes please", 1}}
	_, _, _, err := bipartite.Build(cells, s.rows, s.cols)
	require.ErrorIs(s.T(), err, bipartite.ErrInvalidInput)

	var ce *bipartite.CellError
	require.True(s.T(), errors.As(err, &ce))
	require.Equal(s.T(), 1, ce.Row)
	require.Equal(s.T(), 0, ce.Col)
	require.Equal(s.T(), "P2", ce.RowLabel)
	require.Equal(s.T(), "X", ce.ColLabel)
	require.Contains(s.T(), err.Error(), "cell (1,0) [P2 × X]")
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

// TestCoerce pins the cell coercion table.
func TestCoerce(t *testing.T) {
	tests := []struct {
		in      any
		want    float64
		isNaN   bool
		wantErr bool
	}{
		{in: nil, isNaN: true},
		{in: "", isNaN: true},
		{in: " \t", isNaN: true},
		{in: "NaN", isNaN: true},
		{in: math.NaN(), isNaN: true},
		{in: true, want: 1},
		{in: false, want: 0},
		{in: 1, want: 1},
		{in: int64(0), want: 0},
		{in: uint8(1), want: 1},
		{in: float32(1), want: 1},
		{in: " 1 ", want: 1},
		{in: "1.0", want: 1},
		{in: "TRUE", want: 1},
		{in: "f", want: 0},
		{in: "abc", wantErr: true},
		{in: []int{1}, wantErr: true},
	}
	for _, tc := range tests {
		got, err := bipartite.Coerce(tc.in)
		if tc.wantErr {
			require.Error(t, err, "Coerce(%#v)", tc.in)
			continue
		}
		require.NoError(t, err, "Coerce(%#v)", tc.in)
		if tc.isNaN {
			require.True(t, math.IsNaN(got), "Coerce(%#v) = %v, want NaN", tc.in, got)
			continue
		}
		require.Equal(t, tc.want, got, "Coerce(%#v)", tc.in)
	}
}

// TestRandomMatrix verifies validation and seed reproducibility.
func TestRandomMatrix(t *testing.T) {
	a, err := bipartite.RandomMatrix(rand.New(rand.NewSource(7)), 4, 6, 0.4)
	require.NoError(t, err)
	b, err := bipartite.RandomMatrix(rand.New(rand.NewSource(7)), 4, 6, 0.4)
	require.NoError(t, err)
	require.Equal(t, a.String(), b.String())

	require.Equal(t, 4, a.Rows())
	require.Equal(t, 6, a.Cols())

	full, err := bipartite.RandomMatrix(nil, 2, 2, 1)
	require.NoError(t, err)
	require.Equal(t, "[1, 1]\n[1, 1]\n", full.String())
	empty, err := bipartite.RandomMatrix(nil, 1, 3, 0)
	require.NoError(t, err)
	require.Equal(t, "[0, 0, 0]\n", empty.String())

	// Random matrices build straight into graphs.
	g, _, _, err := bipartite.BuildDense(full, []string{"P1", "P2"}, []string{"X", "Y"})
	require.NoError(t, err)
	require.Equal(t, 4, g.EdgeCount())

	_, err = bipartite.RandomMatrix(nil, 2, 2, 0.5)
	require.ErrorIs(t, err, bipartite.ErrInvalidInput)
	_, err = bipartite.RandomMatrix(nil, 0, 2, 0)
	require.ErrorIs(t, err, bipartite.ErrInvalidInput)
	_, err = bipartite.RandomMatrix(nil, 2, 2, 1.5)
	require.ErrorIs(t, err, bipartite.ErrInvalidInput)

	require.Equal(t, []string{"P1", "P2", "P3"}, bipartite.Labels("P", 3))
}
