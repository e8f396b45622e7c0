package guard

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlgrid/grid"
)

// Simulator owns a patrol map and one guard walking it.
type Simulator struct {
	tiles *grid.Grid[Cell]

	start    grid.Position
	startDir grid.Direction

	pos   grid.Position
	dir   grid.Direction
	state State
	steps int
	spins int // consecutive rotations without a move

	// touched holds the row-major index of every cell with a nonzero
	// visit counter, in first-visit order. Reset clears only these.
	touched []int

	log logrus.FieldLogger
}

// Parse builds a Simulator from patrol map text.
func Parse(text string, opts ...Option) (*Simulator, error) {
	g, err := grid.ParseRunes(text)
	if err != nil {
		return nil, fmt.Errorf("guard: %w", err)
	}
	return New(g, opts...)
}

// New builds a Simulator from a rune grid and resets it to the start state.
// Returns ErrUnknownTile, ErrNoGuard or ErrMultipleGuards for malformed maps.
func New(g *grid.Grid[rune], opts ...Option) (*Simulator, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	var (
		start    grid.Position
		startDir grid.Direction
		found    int
		bad      error
	)
	tiles := grid.Map(g, func(p grid.Position, r rune) Cell {
		if dir, ok := startMarkers[r]; ok {
			start, startDir = p, dir
			found++
			return Cell{}
		}
		switch r {
		case TileEmpty:
			return Cell{}
		case TileObstacle:
			return Cell{Obstacle: true}
		}
		if bad == nil {
			bad = fmt.Errorf("%w: %q at %v", ErrUnknownTile, r, p)
		}
		return Cell{}
	})
	switch {
	case bad != nil:
		return nil, bad
	case found == 0:
		return nil, ErrNoGuard
	case found > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleGuards, found)
	}

	s := &Simulator{
		tiles:    tiles,
		start:    start,
		startDir: startDir,
		log:      cfg.Logger,
	}
	s.Reset()

	return s, nil
}

// Reset restores the guard to its start position and heading, clears every
// visit counter and marks the start cell as visited once in the start heading.
// Obstacles are left untouched.
// Complexity: O(cells visited by the previous run).
func (s *Simulator) Reset() {
	for _, idx := range s.touched {
		s.tiles.Ptr(s.tiles.Coordinate(idx)).Visits = [grid.NumDirections]uint32{}
	}
	s.touched = s.touched[:0]

	s.pos, s.dir = s.start, s.startDir
	s.state = Moving
	s.steps, s.spins = 0, 0

	s.tiles.Ptr(s.start).Visits[s.startDir] = 1
	s.touched = append(s.touched, s.tiles.Index(s.start))
}

// Tick advances the simulation by one step and returns the new State.
// Once the state is terminal, Tick is a no-op.
func (s *Simulator) Tick() State {
	if s.state.Terminal() {
		return s.state
	}
	s.steps++

	next := s.pos.Add(s.dir.Delta())
	if !s.tiles.InBounds(next) {
		s.pos = next
		s.state = OutOfBounds
		return s.state
	}

	cell := s.tiles.Ptr(next)
	if cell.Obstacle {
		s.dir = s.dir.Clockwise()
		s.spins++
		s.state = Rotating
		if s.spins >= grid.NumDirections {
			// Boxed in on all four sides: the guard spins forever.
			s.state = Looping
		}
		s.log.WithFields(logrus.Fields{"pos": s.pos, "dir": s.dir}).Trace("rotate")
		return s.state
	}

	if !cell.Visited() {
		s.touched = append(s.touched, s.tiles.Index(next))
	}
	s.pos = next
	s.spins = 0
	cell.Visits[s.dir]++
	s.state = Moving
	if cell.Visits[s.dir] > 1 {
		s.state = Looping
	}

	return s.state
}

// Run ticks until the state is terminal and returns it.
func (s *Simulator) Run() State {
	for !s.state.Terminal() {
		s.Tick()
	}
	return s.state
}

// Patrol resets the simulator, runs it to completion and returns the number
// of distinct tiles the guard occupied together with the terminal state.
func (s *Simulator) Patrol() (int, State) {
	s.Reset()
	st := s.Run()
	s.log.WithFields(logrus.Fields{
		"steps":   s.steps,
		"visited": s.VisitedCount(),
		"state":   st,
	}).Debug("patrol finished")

	return s.VisitedCount(), st
}

// VisitedCount returns the number of cells with at least one nonzero
// visit counter.
func (s *Simulator) VisitedCount() int {
	return len(s.touched)
}

// VisitedPositions returns every visited cell in row-major order.
func (s *Simulator) VisitedPositions() []grid.Position {
	idx := make([]int, len(s.touched))
	copy(idx, s.touched)
	sort.Ints(idx)
	out := make([]grid.Position, len(idx))
	for i, v := range idx {
		out[i] = s.tiles.Coordinate(v)
	}
	return out
}

// Clone returns an independent simulator sharing no mutable state with s.
func (s *Simulator) Clone() *Simulator {
	c := *s
	c.tiles = s.tiles.Clone()
	c.touched = append([]int(nil), s.touched...)
	return &c
}

// SetObstacle places or removes an obstacle at p. It does not reset the run.
// Panics if p is outside the map.
func (s *Simulator) SetObstacle(p grid.Position, on bool) {
	s.tiles.Ptr(p).Obstacle = on
}

// Obstacle reports whether p holds an obstacle. Out-of-bounds is false.
func (s *Simulator) Obstacle(p grid.Position) bool {
	return s.tiles.InBounds(p) && s.tiles.At(p).Obstacle
}

// Cell returns a copy of the cell at p.
func (s *Simulator) Cell(p grid.Position) Cell { return s.tiles.At(p) }

// Start returns the guard's start position and heading.
func (s *Simulator) Start() (grid.Position, grid.Direction) { return s.start, s.startDir }

// Position returns the guard's current position, which is off the map once
// the state is OutOfBounds.
func (s *Simulator) Position() grid.Position { return s.pos }

// Direction returns the guard's current heading.
func (s *Simulator) Direction() grid.Direction { return s.dir }

// State returns the state after the most recent Tick.
func (s *Simulator) State() State { return s.state }

// Steps returns the number of ticks since the last Reset.
func (s *Simulator) Steps() int { return s.steps }

// Width returns the map width.
func (s *Simulator) Width() int { return s.tiles.Width() }

// Height returns the map height.
func (s *Simulator) Height() int { return s.tiles.Height() }
