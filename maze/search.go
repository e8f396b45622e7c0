package maze

import (
	"math"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvlgrid/grid"
)

// Search explores m with a synchronous wavefront of partial paths and
// returns the minimum cost together with every tile on a minimum-cost path.
//
// Behavior per round:
//  1. A path whose tail is the end is marked Complete and never grows again.
//  2. A path costlier than the cheapest completed path stops.
//  3. Every other path tries straight, clockwise and counter-clockwise.
//     A candidate is dropped if it hits a wall, revisits the path's own
//     tiles, or the pruning policy rejects its cost.
//  4. The first surviving candidate extends the path in place; each further
//     one forks a copy that joins the wavefront next round.
//  5. A path with no surviving candidate is stalled permanently.
//
// The loop ends after a round in which nothing grew.
// Returns ErrNoRoute if no path completes, ErrBadCost for negative costs.
func Search(m *Maze, opts ...Option) (Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	log := cfg.Logger

	pr := newPruner(cfg)
	paths := []*Path{{Tiles: []grid.Position{m.Start}, Heading: cfg.Heading}}
	pr.admit(0, m.Start, cfg.Heading, 0)

	bound := math.MaxInt
	rounds := 0
	for {
		rounds++
		grew := false
		var forks []*Path

		for i, p := range paths {
			if p.Complete || p.stalled {
				continue
			}
			tail := p.Tail()
			if tail == m.End {
				p.Complete = true
				bound = min(bound, p.Cost)
				continue
			}
			if p.Cost > bound {
				p.stalled = true
				continue
			}

			var (
				extended bool
				ext      grid.Position
				extDir   grid.Direction
				extCost  int
			)
			for _, h := range headings(p.Heading) {
				next := tail.Add(h.Delta())
				if m.Wall(next) || p.Contains(next) {
					continue
				}
				cost := p.Cost + cfg.moveCost(p.Heading, h)
				owner := i
				if extended {
					owner = len(paths) + len(forks)
				}
				if !pr.admit(owner, next, h, cost) {
					continue
				}
				if !extended {
					extended, ext, extDir, extCost = true, next, h, cost
					continue
				}
				f := p.fork()
				f.Tiles = append(f.Tiles, next)
				f.Heading, f.Cost = h, cost
				forks = append(forks, f)
			}

			if !extended {
				p.stalled = true
				continue
			}
			p.Tiles = append(p.Tiles, ext)
			p.Heading, p.Cost = extDir, extCost
			grew = true
		}

		paths = append(paths, forks...)
		log.WithFields(logrus.Fields{
			"round": rounds,
			"paths": len(paths),
			"forks": len(forks),
		}).Trace("wavefront round")
		if !grew {
			break
		}
	}

	res := Result{Cost: math.MaxInt, Tiles: mapset.New[grid.Position](), Rounds: rounds}
	for _, p := range paths {
		if p.Complete && p.Cost < res.Cost {
			res.Cost = p.Cost
		}
	}
	if res.Cost == math.MaxInt {
		return Result{Rounds: rounds}, ErrNoRoute
	}
	for _, p := range paths {
		if !p.Complete || p.Cost != res.Cost {
			continue
		}
		res.Paths = append(res.Paths, p)
		for _, t := range p.Tiles {
			res.Tiles.Put(t)
		}
	}

	log.WithFields(logrus.Fields{
		"cost":    res.Cost,
		"tiles":   res.TileCount(),
		"optimal": len(res.Paths),
		"paths":   len(paths),
		"rounds":  rounds,
	}).Debug("wavefront search finished")

	return res, nil
}

// record is the best cost seen for a pruning key and the path that set it.
type record struct {
	owner int
	cost  int
}

// pruner decides whether a candidate step is worth keeping.
type pruner struct {
	policy    Pruning
	allowance int
	byState   map[stateKey]record
	byCell    map[grid.Position]record
}

type stateKey struct {
	pos grid.Position
	dir grid.Direction
}

func newPruner(cfg Options) *pruner {
	return &pruner{
		policy:    cfg.Pruning,
		allowance: cfg.TurnCost,
		byState:   make(map[stateKey]record),
		byCell:    make(map[grid.Position]record),
	}
}

// admit reports whether a path arriving at pos heading dir with cost may
// continue, and records the cost if so.
func (pr *pruner) admit(owner int, pos grid.Position, dir grid.Direction, cost int) bool {
	if pr.policy == PruneCellOffset {
		if prev, ok := pr.byCell[pos]; ok {
			if prev.cost < cost-pr.allowance {
				return false
			}
			if prev.cost <= cost {
				return true
			}
		}
		pr.byCell[pos] = record{owner: owner, cost: cost}
		return true
	}

	k := stateKey{pos: pos, dir: dir}
	if prev, ok := pr.byState[k]; ok {
		if prev.cost < cost {
			return false
		}
		if prev.cost == cost {
			return true
		}
	}
	pr.byState[k] = record{owner: owner, cost: cost}
	return true
}
