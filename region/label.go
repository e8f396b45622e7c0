package region

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/lvlgrid/grid"
)

// LabelMap is a same-shaped grid of region IDs.
// Two cells share an ID iff a 4-connected path of equal-valued cells joins them.
type LabelMap struct {
	ids    *grid.Grid[ID]
	issued ID // number of IDs ever handed out, occupied or not
}

// Label partitions g into 4-connected regions of equal value.
// Returns ErrUnknownStrategy if the chosen strategy is not defined.
func Label[T comparable](g *grid.Grid[T], opts ...Option) (*LabelMap, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Strategy {
	case UnionFind, Relabel:
		return rasterLabel(g, cfg.Strategy), nil
	case FloodFill:
		return floodLabel(g), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, cfg.Strategy)
}

// rasterLabel performs the single row-major pass. Each cell looks only at its
// upper and left neighbors, which are already labeled.
func rasterLabel[T comparable](g *grid.Grid[T], strategy Strategy) *LabelMap {
	ids, _ := grid.New[ID](g.Width(), g.Height())
	lm := &LabelMap{ids: ids}

	var ds *disjointSet
	if strategy == UnionFind {
		ds = newDisjointSet(g.Len())
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := grid.Pos(x, y)
			v := g.At(p)
			up := p.Add(grid.Up.Delta())
			left := p.Add(grid.Left.Delta())
			upMatch := y > 0 && g.At(up) == v
			leftMatch := x > 0 && g.At(left) == v

			switch {
			case upMatch && leftMatch:
				a, b := ids.At(up), ids.At(left)
				keep, drop := min(a, b), max(a, b)
				if keep != drop {
					if ds != nil {
						ds.union(keep, drop)
					} else {
						lm.relabel(ids.Index(p), keep, drop)
					}
				}
				ids.Set(p, keep)
			case upMatch:
				ids.Set(p, ids.At(up))
			case leftMatch:
				ids.Set(p, ids.At(left))
			default:
				ids.Set(p, lm.issued)
				if ds != nil {
					ds.add()
				}
				lm.issued++
			}
		}
	}

	if ds != nil {
		for i := 0; i < ids.Len(); i++ {
			p := ids.Coordinate(i)
			ids.Set(p, ds.find(ids.At(p)))
		}
	}

	return lm
}

// relabel rewrites drop to keep across the already-assigned prefix [0, upto).
func (lm *LabelMap) relabel(upto int, keep, drop ID) {
	for i := 0; i < upto; i++ {
		c := lm.ids.Ptr(lm.ids.Coordinate(i))
		if *c == drop {
			*c = keep
		}
	}
}

// floodLabel labels each region with a breadth-first flood seeded from the
// first unlabeled cell in row-major order.
// Time: O(W·H·4). Memory: O(W·H) for seen flags and the queue.
func floodLabel[T comparable](g *grid.Grid[T]) *LabelMap {
	ids, _ := grid.New[ID](g.Width(), g.Height())
	lm := &LabelMap{ids: ids}
	seen := make([]bool, g.Len())

	for i0 := 0; i0 < g.Len(); i0++ {
		if seen[i0] {
			continue
		}
		v := g.At(g.Coordinate(i0))
		id := lm.issued
		lm.issued++

		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			ids.Set(u, id)
			for _, d := range grid.Directions {
				w := u.Add(d.Delta())
				if !g.InBounds(w) || g.At(w) != v {
					continue
				}
				if wi := g.Index(w); !seen[wi] {
					seen[wi] = true
					queue = append(queue, wi)
				}
			}
		}
	}

	return lm
}

// At returns the region ID of p.
func (lm *LabelMap) At(p grid.Position) ID { return lm.ids.At(p) }

// Width returns the number of columns.
func (lm *LabelMap) Width() int { return lm.ids.Width() }

// Height returns the number of rows.
func (lm *LabelMap) Height() int { return lm.ids.Height() }

// Issued returns how many IDs were handed out, including ones orphaned by merges.
func (lm *LabelMap) Issued() int { return int(lm.issued) }

// IDs returns the occupied region IDs in ascending order.
func (lm *LabelMap) IDs() []ID {
	set := make(map[ID]struct{})
	lm.ids.Each(func(_ grid.Position, id ID) {
		set[id] = struct{}{}
	})
	ids := maps.Keys(set)
	slices.Sort(ids)
	return ids
}

// Len returns the number of distinct regions.
func (lm *LabelMap) Len() int { return len(lm.IDs()) }

// Grid returns a copy of the underlying ID grid.
func (lm *LabelMap) Grid() *grid.Grid[ID] { return lm.ids.Clone() }

// SamePartition reports whether lm and other group cells identically,
// regardless of which ID values each uses.
func (lm *LabelMap) SamePartition(other *LabelMap) bool {
	if lm.Width() != other.Width() || lm.Height() != other.Height() {
		return false
	}
	fwd := make(map[ID]ID)
	back := make(map[ID]ID)
	for i := 0; i < lm.ids.Len(); i++ {
		p := lm.ids.Coordinate(i)
		a, b := lm.At(p), other.At(p)
		if got, ok := fwd[a]; ok && got != b {
			return false
		}
		if got, ok := back[b]; ok && got != a {
			return false
		}
		fwd[a], back[b] = b, a
	}
	return true
}

// disjointSet is a union-find over provisional IDs. The root of every set
// is its smallest member, which keeps results identical to Relabel.
type disjointSet struct {
	parent []ID
}

func newDisjointSet(capacity int) *disjointSet {
	return &disjointSet{parent: make([]ID, 0, capacity)}
}

func (ds *disjointSet) add() {
	ds.parent = append(ds.parent, ID(len(ds.parent)))
}

// find returns the root of x, halving the path on the way up.
func (ds *disjointSet) find(x ID) ID {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}
	return x
}

func (ds *disjointSet) union(a, b ID) {
	ra, rb := ds.find(a), ds.find(b)
	switch {
	case ra == rb:
	case ra < rb:
		ds.parent[rb] = ra
	default:
		ds.parent[ra] = rb
	}
}
