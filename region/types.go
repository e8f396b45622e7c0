package region

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgrid/grid"
)

// ErrUnknownStrategy is returned when Options.Strategy is not one of the
// defined strategies.
var ErrUnknownStrategy = errors.New("region: unknown labeling strategy")

// ID identifies a region within one LabelMap.
type ID uint32

// Strategy selects how Label resolves regions that meet mid-scan.
type Strategy int

const (
	// UnionFind joins provisional IDs in a disjoint-set and resolves at the end.
	UnionFind Strategy = iota
	// Relabel rewrites the whole grid on every merge.
	Relabel
	// FloodFill labels by breadth-first flood from each unlabeled cell.
	FloodFill
)

func (s Strategy) String() string {
	switch s {
	case UnionFind:
		return "union-find"
	case Relabel:
		return "relabel"
	case FloodFill:
		return "flood-fill"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Options tunes Label and Trace.
type Options struct {
	// Strategy picks the merge algorithm. Default UnionFind.
	Strategy Strategy
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options{Strategy: UnionFind}.
func DefaultOptions() Options {
	return Options{Strategy: UnionFind}
}

// WithStrategy selects the labeling strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// Region is the measured outcome for one labeled region.
type Region[T comparable] struct {
	ID        ID
	Value     T             // category shared by every cell in the region
	Origin    grid.Position // first cell in row-major order
	Area      int
	Perimeter int
	Sides     int
}

// SimplePrice is Area × Perimeter.
func (r Region[T]) SimplePrice() int { return r.Area * r.Perimeter }

// SidePrice is Area × Sides.
func (r Region[T]) SidePrice() int { return r.Area * r.Sides }

// Summary aggregates every region of a grid.
type Summary[T comparable] struct {
	Regions     []Region[T]
	SimplePrice int
	SidePrice   int
}
