package guard

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlgrid/grid"
)

// Sentinel errors for simulator construction and obstacle search.
var (
	// ErrUnknownTile is returned when the input holds a rune outside the tile set.
	ErrUnknownTile = errors.New("guard: unknown tile")

	// ErrNoGuard is returned when the input has no start marker.
	ErrNoGuard = errors.New("guard: no guard start marker")

	// ErrMultipleGuards is returned when the input has more than one start marker.
	ErrMultipleGuards = errors.New("guard: more than one guard start marker")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("guard: invalid option supplied")
)

// Tile runes.
const (
	TileEmpty    = '.'
	TileObstacle = '#'
)

// startMarkers maps each start rune to the heading it implies.
var startMarkers = map[rune]grid.Direction{
	'^': grid.Up,
	'>': grid.Right,
	'v': grid.Down,
	'<': grid.Left,
}

// State is the simulator's state after the most recent Tick.
type State int

const (
	// Moving means the guard stepped into a fresh (cell, heading) pair.
	Moving State = iota
	// Rotating means the guard was blocked and turned clockwise in place.
	Rotating
	// OutOfBounds means the guard stepped off the grid. Terminal.
	OutOfBounds
	// Looping means the guard repeated a (cell, heading) pair. Terminal.
	Looping
)

// Terminal reports whether no further Tick can change the state.
func (s State) Terminal() bool {
	return s == OutOfBounds || s == Looping
}

func (s State) String() string {
	switch s {
	case Moving:
		return "moving"
	case Rotating:
		return "rotating"
	case OutOfBounds:
		return "out-of-bounds"
	case Looping:
		return "looping"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Cell is one tile of the patrol map.
// Visits[d] counts how many times the guard entered this cell heading d.
type Cell struct {
	Obstacle bool
	Visits   [grid.NumDirections]uint32
}

// Visited reports whether the guard has occupied the cell in any heading.
func (c Cell) Visited() bool {
	for _, n := range c.Visits {
		if n > 0 {
			return true
		}
	}
	return false
}

// Option configures a Simulator or a FindLoopObstacles call.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters shared by the simulator and the obstacle search.
type Options struct {
	// Ctx cancels FindLoopObstacles between trials.
	Ctx context.Context

	// Logger receives trace output. Defaults to a discarding logger.
	Logger logrus.FieldLogger

	// Workers is the number of trial goroutines for FindLoopObstacles.
	// 1 runs trials serially on the caller's simulator.
	Workers int

	// Exhaustive tries every empty cell instead of only the patrol path.
	Exhaustive bool

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a logger writing to io.Discard
//   - Workers == 1 (serial trials)
//   - Exhaustive == false (candidates restricted to the patrol path)
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Logger:  discardLogger(),
		Workers: 1,
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// WithContext sets a context checked between obstacle trials.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes trace output to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers runs obstacle trials on n goroutines, each with a private
// simulator clone.
//
//	n > 0: use n workers
//	n <= 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithExhaustive makes FindLoopObstacles try every empty, non-start cell
// rather than only the cells on the unobstructed patrol path. The answer is
// the same; the search is slower.
func WithExhaustive() Option {
	return func(o *Options) {
		o.Exhaustive = true
	}
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, cfg.err
}
