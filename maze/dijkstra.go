package maze

import (
	"container/heap"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvlgrid/grid"
)

// Dijkstra computes the same Result as Search with a label-correcting search
// over (cell, heading) states. Every predecessor achieving a state's final
// distance is kept, so walking them back from the cheapest end states visits
// exactly the tiles of all minimum-cost routes.
//
// Result.Paths is left empty; Result.Rounds counts heap pops.
//
// Complexity:
//
//   - Time:  O(S log S) with S = 4×W×H states.
//   - Space: O(S) for distances, predecessor lists and the heap.
func Dijkstra(m *Maze, opts ...Option) (Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}

	r := &stateRunner{
		m:    m,
		cfg:  cfg,
		dist: make([]int, m.walls.Len()*grid.NumDirections),
		prev: make([][]int, m.walls.Len()*grid.NumDirections),
	}
	for i := range r.dist {
		r.dist[i] = math.MaxInt
	}

	r.init()
	r.process()

	// 1) Cheapest arrival at the end, any heading.
	best := math.MaxInt
	for _, d := range grid.Directions {
		best = min(best, r.dist[r.state(m.End, d)])
	}
	if best == math.MaxInt {
		return Result{Rounds: r.pops}, ErrNoRoute
	}

	// 2) Walk predecessor links back from every cheapest end state.
	tiles := mapset.New[grid.Position]()
	seen := make(map[int]bool)
	var stack []int
	for _, d := range grid.Directions {
		if s := r.state(m.End, d); r.dist[s] == best {
			stack = append(stack, s)
			seen[s] = true
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		pos, _ := r.unstate(s)
		tiles.Put(pos)
		for _, p := range r.prev[s] {
			if !seen[p] {
				seen[p] = true
				stack = append(stack, p)
			}
		}
	}

	cfg.Logger.WithFields(logrus.Fields{
		"cost":  best,
		"tiles": tiles.Size(),
		"pops":  r.pops,
	}).Debug("dijkstra search finished")

	return Result{Cost: best, Tiles: tiles, Rounds: r.pops}, nil
}

// stateRunner holds the mutable state of one Dijkstra execution.
// A state is (row-major cell index)×4 + heading.
type stateRunner struct {
	m    *Maze
	cfg  Options
	dist []int
	prev [][]int
	pq   statePQ
	pops int
}

func (r *stateRunner) state(p grid.Position, d grid.Direction) int {
	return r.m.walls.Index(p)*grid.NumDirections + int(d)
}

func (r *stateRunner) unstate(s int) (grid.Position, grid.Direction) {
	return r.m.walls.Coordinate(s / grid.NumDirections), grid.Direction(s % grid.NumDirections)
}

func (r *stateRunner) init() {
	s := r.state(r.m.Start, r.cfg.Heading)
	r.dist[s] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &stateItem{state: s, dist: 0})
}

// process pops states in cost order and relaxes the three allowed moves.
// Stale heap entries (dist larger than the recorded one) are skipped.
func (r *stateRunner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem)
		if item.dist > r.dist[item.state] {
			continue
		}
		r.pops++

		pos, dir := r.unstate(item.state)
		if pos == r.m.End {
			continue
		}
		for _, h := range headings(dir) {
			next := pos.Add(h.Delta())
			if r.m.Wall(next) {
				continue
			}
			ns := r.state(next, h)
			nd := item.dist + r.cfg.moveCost(dir, h)
			switch {
			case nd < r.dist[ns]:
				r.dist[ns] = nd
				r.prev[ns] = append(r.prev[ns][:0], item.state)
				heap.Push(&r.pq, &stateItem{state: ns, dist: nd})
			case nd == r.dist[ns]:
				r.prev[ns] = append(r.prev[ns], item.state)
			}
		}
	}
}

// stateItem is a heap entry: a state and the distance it was pushed with.
type stateItem struct {
	state int
	dist  int
}

// statePQ is a min-heap of *stateItem ordered by dist, with lazy decrease-key.
type statePQ []*stateItem

func (pq statePQ) Len() int            { return len(pq) }
func (pq statePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq statePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
