package grid

import (
	"fmt"
)

// Grid is a rectangular, row-major buffer of cells. The zero value is not
// usable; build one with New or FromRows.
type Grid[T any] struct {
	width, height int
	cells         []T
}

// New allocates a width×height grid of zero-valued cells.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New[T any](width, height int) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}, nil
}

// FromRows builds a Grid from a non-empty, rectangular 2D slice.
// It copies the input, so later changes to rows do not leak in.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	g := &Grid[T]{width: w, height: h, cells: make([]T, 0, w*h)}
	for _, row := range rows {
		g.cells = append(g.cells, row...)
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns Width×Height.
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Index maps p to its row-major index: y*Width + x.
// Panics if p is out of bounds.
func (g *Grid[T]) Index(p Position) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: position %v outside %dx%d grid", p, g.width, g.height))
	}
	return p.Y*g.width + p.X
}

// Coordinate converts a row-major index back to a Position.
func (g *Grid[T]) Coordinate(idx int) Position {
	return Position{X: idx % g.width, Y: idx / g.width}
}

// At returns the cell at p.
func (g *Grid[T]) At(p Position) T {
	return g.cells[g.Index(p)]
}

// Set stores v at p.
func (g *Grid[T]) Set(p Position, v T) {
	g.cells[g.Index(p)] = v
}

// Ptr returns a pointer to the cell at p for in-place mutation.
// The pointer is invalidated by nothing short of dropping the grid,
// since the buffer never grows.
func (g *Grid[T]) Ptr(p Position) *T {
	return &g.cells[g.Index(p)]
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clone returns an independent copy of g. Cells are copied by value.
// Complexity: O(W×H).
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{width: g.width, height: g.height, cells: cells}
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(p Position, v T)) {
	for i, v := range g.cells {
		fn(g.Coordinate(i), v)
	}
}

// Rows returns a fresh [][]T copy of the buffer, one slice per row.
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.height)
	for y := range rows {
		rows[y] = make([]T, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}

// Map builds a same-shaped grid by applying fn to every cell of g.
func Map[T, U any](g *Grid[T], fn func(p Position, v T) U) *Grid[U] {
	out := &Grid[U]{width: g.width, height: g.height, cells: make([]U, len(g.cells))}
	for i, v := range g.cells {
		out.cells[i] = fn(g.Coordinate(i), v)
	}
	return out
}

// FindAll returns every position holding v, in row-major order.
func FindAll[T comparable](g *Grid[T], v T) []Position {
	var found []Position
	for i, c := range g.cells {
		if c == v {
			found = append(found, g.Coordinate(i))
		}
	}
	return found
}

// FindOne returns the single position holding v.
// Returns ErrMarkerNotFound or ErrMarkerNotUnique otherwise.
func FindOne[T comparable](g *Grid[T], v T) (Position, error) {
	found := FindAll(g, v)
	switch len(found) {
	case 0:
		return Position{}, fmt.Errorf("%w: %v", ErrMarkerNotFound, v)
	case 1:
		return found[0], nil
	default:
		return Position{}, fmt.Errorf("%w: %v at %v", ErrMarkerNotUnique, v, found)
	}
}
