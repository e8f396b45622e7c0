package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestFromRows_Errors verifies that FromRows rejects empty or ragged inputs.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromRows(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := grid.New[int](0, 3)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.New[int](3, -1)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	g, err := grid.New[int](3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 6, g.Len())
}

// TestFromRows_CopiesInput ensures later edits to the source slice do not leak in.
func TestFromRows_CopiesInput(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}
	g, err := grid.FromRows(rows)
	require.NoError(t, err)
	rows[0][0] = 99
	assert.Equal(t, 1, g.At(grid.Pos(0, 0)))
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, g.Rows())
}

//----------------------------------------------------------------------------//
// Bounds and indexing
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New[bool](3, 2)
	require.NoError(t, err)

	for _, p := range []grid.Position{grid.Pos(0, 0), grid.Pos(2, 1), grid.Pos(1, 1)} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []grid.Position{grid.Pos(-1, 0), grid.Pos(3, 0), grid.Pos(1, 2), grid.Pos(2, -1)} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
	}
}

func TestIndexCoordinateRoundTrip(t *testing.T) {
	g, err := grid.New[int](4, 3)
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		assert.Equal(t, i, g.Index(g.Coordinate(i)))
	}
	assert.Equal(t, grid.Pos(1, 2), g.Coordinate(9))
}

func TestAt_OutOfBoundsPanics(t *testing.T) {
	g, err := grid.New[int](2, 2)
	require.NoError(t, err)
	assert.Panics(t, func() { g.At(grid.Pos(2, 0)) })
	assert.Panics(t, func() { g.Set(grid.Pos(0, -1), 1) })
}

func TestPtrAndClone(t *testing.T) {
	g, err := grid.New[[2]int](2, 2)
	require.NoError(t, err)
	g.Ptr(grid.Pos(1, 1))[0] = 7

	c := g.Clone()
	c.Ptr(grid.Pos(1, 1))[0] = 8

	assert.Equal(t, 7, g.At(grid.Pos(1, 1))[0], "clone must not share cells")
	assert.Equal(t, 8, c.At(grid.Pos(1, 1))[0])
}

func TestMapAndFind(t *testing.T) {
	g, err := grid.ParseRunes("a.b\n.a.\n")
	require.NoError(t, err)

	isA := grid.Map(g, func(_ grid.Position, r rune) bool { return r == 'a' })
	assert.True(t, isA.At(grid.Pos(1, 1)))
	assert.False(t, isA.At(grid.Pos(2, 0)))

	assert.Equal(t, []grid.Position{grid.Pos(0, 0), grid.Pos(1, 1)}, grid.FindAll(g, 'a'))

	p, err := grid.FindOne(g, 'b')
	require.NoError(t, err)
	assert.Equal(t, grid.Pos(2, 0), p)

	_, err = grid.FindOne(g, 'a')
	assert.ErrorIs(t, err, grid.ErrMarkerNotUnique)
	_, err = grid.FindOne(g, 'z')
	assert.ErrorIs(t, err, grid.ErrMarkerNotFound)
}

//----------------------------------------------------------------------------//
// Parsing
//----------------------------------------------------------------------------//

func TestParseRunes(t *testing.T) {
	g, err := grid.ParseRunes("\n\r\n#..\r\n.#.\r\n\n")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, "#..\n.#.\n", grid.String(g))

	_, err = grid.ParseRunes("\n\n")
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.ParseRunes("##\n#")
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

//----------------------------------------------------------------------------//
// Vectors and directions
//----------------------------------------------------------------------------//

func TestVecArithmetic(t *testing.T) {
	a, b := grid.Pos(3, -2), grid.Pos(-1, 5)
	assert.Equal(t, grid.Pos(2, 3), a.Add(b))
	assert.Equal(t, grid.Pos(4, -7), a.Sub(b))
	assert.Equal(t, a, a.Add(b).Sub(b))
	assert.Equal(t, grid.Pos(-3, 2), a.Neg())
	assert.Equal(t, 11, a.ManhattanDist(b))
	assert.Equal(t, "3,-2", a.String())

	wide := grid.Vec[int64]{X: 1 << 40, Y: 1}
	assert.Equal(t, int64(1<<41), wide.Add(wide).X)
}

func TestDirectionRing(t *testing.T) {
	for _, d := range grid.Directions {
		assert.Equal(t, d, d.Clockwise().CounterClockwise())
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.Equal(t, grid.Pos(0, 0), d.Delta().Add(d.Opposite().Delta()))
		assert.NotEqual(t, d.Vertical(), d.Clockwise().Vertical())
	}
	assert.Equal(t, grid.Up, grid.Left.Clockwise())
	assert.Equal(t, grid.Left, grid.Up.CounterClockwise())
	assert.Equal(t, grid.Pos(0, -1), grid.Up.Delta())
	assert.Equal(t, grid.Pos(1, 0), grid.Right.Delta())
	assert.Equal(t, "down", grid.Down.String())
}
