package maze

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvlgrid/grid"
)

// Sentinel errors for maze parsing and search.
var (
	// ErrUnknownTile indicates a rune outside '#', '.', 'S', 'E'.
	ErrUnknownTile = errors.New("maze: unknown tile")

	// ErrNoRoute indicates that no path reaches the end.
	ErrNoRoute = errors.New("maze: no route from start to end")

	// ErrBadCost indicates a negative step or turn cost.
	ErrBadCost = errors.New("maze: costs must be non-negative")
)

// Tile runes.
const (
	TileWall  = '#'
	TileFloor = '.'
	TileStart = 'S'
	TileEnd   = 'E'
)

// Pruning selects how Search discards partial paths.
type Pruning int

const (
	// PruneState keeps the best cost per (cell, heading) and preserves ties.
	PruneState Pruning = iota
	// PruneCellOffset keeps one cost per cell and tolerates up to TurnCost extra.
	PruneCellOffset
)

func (p Pruning) String() string {
	switch p {
	case PruneState:
		return "state"
	case PruneCellOffset:
		return "cell-offset"
	}
	return fmt.Sprintf("Pruning(%d)", int(p))
}

// Maze is a parsed wall map with its start and end cells.
type Maze struct {
	walls *grid.Grid[bool]
	Start grid.Position
	End   grid.Position
}

// Wall reports whether p is a wall or off the map.
func (m *Maze) Wall(p grid.Position) bool {
	return !m.walls.InBounds(p) || m.walls.At(p)
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.walls.Width() }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.walls.Height() }

// Path is one partial route. It owns its tile slice; forks copy it.
type Path struct {
	Tiles    []grid.Position
	Heading  grid.Direction
	Cost     int
	Complete bool

	stalled bool // no extension possible; never retried
}

// Tail returns the last tile of the path.
func (p *Path) Tail() grid.Position { return p.Tiles[len(p.Tiles)-1] }

// Contains reports whether pos already lies on the path.
func (p *Path) Contains(pos grid.Position) bool {
	for _, t := range p.Tiles {
		if t == pos {
			return true
		}
	}
	return false
}

func (p *Path) fork() *Path {
	c := *p
	c.Tiles = make([]grid.Position, len(p.Tiles), len(p.Tiles)+1)
	copy(c.Tiles, p.Tiles)
	return &c
}

// Result is the outcome of a search.
type Result struct {
	// Cost is the minimum route cost.
	Cost int
	// Tiles holds every cell on at least one minimum-cost route.
	Tiles mapset.Set[grid.Position]
	// Paths lists the completed minimum-cost paths (wavefront search only).
	Paths []*Path
	// Rounds is the number of wavefront rounds, or heap pops for Dijkstra.
	Rounds int
}

// TileCount returns the number of distinct optimal tiles.
func (r Result) TileCount() int { return r.Tiles.Size() }

// Options tunes the cost model and search.
type Options struct {
	StepCost int
	TurnCost int
	Heading  grid.Direction
	Pruning  Pruning
	Logger   logrus.FieldLogger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the standard cost model:
//   - StepCost 1, TurnCost 1000
//   - start Heading Right
//   - PruneState
//   - a logger writing to io.Discard
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Options{
		StepCost: 1,
		TurnCost: 1000,
		Heading:  grid.Right,
		Pruning:  PruneState,
		Logger:   l,
	}
}

// WithStepCost sets the cost of any single move.
func WithStepCost(c int) Option {
	return func(o *Options) { o.StepCost = c }
}

// WithTurnCost sets the extra cost of a move that changes heading.
func WithTurnCost(c int) Option {
	return func(o *Options) { o.TurnCost = c }
}

// WithHeading sets the heading at the start cell.
func WithHeading(d grid.Direction) Option {
	return func(o *Options) { o.Heading = d }
}

// WithPruning selects the wavefront pruning policy.
func WithPruning(p Pruning) Option {
	return func(o *Options) { o.Pruning = p }
}

// WithLogger routes trace output to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.StepCost < 0 || cfg.TurnCost < 0 {
		return cfg, fmt.Errorf("%w: step=%d turn=%d", ErrBadCost, cfg.StepCost, cfg.TurnCost)
	}
	return cfg, nil
}

// moveCost returns the cost of moving from heading `from` in heading `to`.
func (o Options) moveCost(from, to grid.Direction) int {
	if from == to {
		return o.StepCost
	}
	return o.StepCost + o.TurnCost
}

// headings returns the three headings a path may take next:
// straight, clockwise, counter-clockwise.
func headings(d grid.Direction) [3]grid.Direction {
	return [3]grid.Direction{d, d.Clockwise(), d.CounterClockwise()}
}
