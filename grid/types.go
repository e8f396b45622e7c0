package grid

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for grid construction and lookup.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrMarkerNotFound indicates FindOne found no matching cell.
	ErrMarkerNotFound = errors.New("grid: marker not found")
	// ErrMarkerNotUnique indicates FindOne found more than one matching cell.
	ErrMarkerNotUnique = errors.New("grid: marker appears more than once")
)

// Vec is a 2D integer vector. X grows to the right, Y grows downwards.
type Vec[T constraints.Signed] struct {
	X, Y T
}

// Position is the coordinate type used throughout lvlgrid.
type Position = Vec[int]

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns a+b.
func (a Vec[T]) Add(b Vec[T]) Vec[T] {
	return Vec[T]{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a-b.
func (a Vec[T]) Sub(b Vec[T]) Vec[T] {
	return Vec[T]{X: a.X - b.X, Y: a.Y - b.Y}
}

// Neg returns -a.
func (a Vec[T]) Neg() Vec[T] {
	return Vec[T]{X: -a.X, Y: -a.Y}
}

// ManhattanDist returns |a.X-b.X| + |a.Y-b.Y|.
func (a Vec[T]) ManhattanDist(b Vec[T]) T {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func (a Vec[T]) String() string {
	return fmt.Sprintf("%d,%d", a.X, a.Y)
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the four orthogonal headings. The numeric order is the
// clockwise ring Up → Right → Down → Left → Up, so it doubles as an index
// into per-direction arrays.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// NumDirections is the size of the direction ring.
const NumDirections = 4

// Directions lists every heading in ring order.
var Directions = [NumDirections]Direction{Up, Right, Down, Left}

var deltas = [NumDirections]Position{
	Up:    {X: 0, Y: -1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
}

// Delta returns the unit vector for d.
func (d Direction) Delta() Position {
	return deltas[d%NumDirections]
}

// Clockwise returns the next heading in the ring.
func (d Direction) Clockwise() Direction {
	return (d + 1) % NumDirections
}

// CounterClockwise returns the previous heading in the ring.
func (d Direction) CounterClockwise() Direction {
	return (d + NumDirections - 1) % NumDirections
}

// Opposite returns the reversed heading.
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}
