package region

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvlgrid/grid"
)

// Trace labels g and measures every region, returned in ascending ID order
// together with the label map used.
//
// Perimeter counts each (cell, direction) pair whose neighbor is off the grid
// or in another region. Sides counts the same edges once per straight run:
// an edge facing Up or Down is extended along +x, an edge facing Left or
// Right along +y, and every edge swallowed by a run is marked consumed so it
// never starts a side of its own. Row-major order guarantees a run is always
// met at its leftmost (or topmost) edge first.
//
// Complexity: O(W×H) after labeling; consumed marks take one byte per cell.
func Trace[T comparable](g *grid.Grid[T], opts ...Option) ([]Region[T], *LabelMap, error) {
	lm, err := Label(g, opts...)
	if err != nil {
		return nil, nil, err
	}
	ids := lm.ids

	boundary := func(p grid.Position, d grid.Direction) bool {
		n := p.Add(d.Delta())
		return !ids.InBounds(n) || ids.At(n) != ids.At(p)
	}

	byID := make(map[ID]*Region[T])
	consumed := make([]uint8, ids.Len())

	for i := 0; i < ids.Len(); i++ {
		p := ids.Coordinate(i)
		id := ids.At(p)
		r, ok := byID[id]
		if !ok {
			r = &Region[T]{ID: id, Value: g.At(p), Origin: p}
			byID[id] = r
		}
		r.Area++

		for _, d := range grid.Directions {
			if !boundary(p, d) {
				continue
			}
			r.Perimeter++

			bit := uint8(1) << d
			if consumed[i]&bit != 0 {
				continue
			}
			r.Sides++

			step := grid.Down.Delta()
			if d.Vertical() {
				step = grid.Right.Delta()
			}
			for q := p; ids.InBounds(q) && ids.At(q) == id && boundary(q, d); q = q.Add(step) {
				qi := ids.Index(q)
				if consumed[qi]&bit != 0 {
					break
				}
				consumed[qi] |= bit
			}
		}
	}

	regions := make([]Region[T], 0, len(byID))
	for _, r := range byID {
		regions = append(regions, *r)
	}
	slices.SortFunc(regions, func(a, b Region[T]) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return regions, lm, nil
}

// Survey traces g and totals both fence prices.
func Survey[T comparable](g *grid.Grid[T], opts ...Option) (Summary[T], error) {
	regions, _, err := Trace(g, opts...)
	if err != nil {
		return Summary[T]{}, err
	}
	s := Summary[T]{Regions: regions}
	for _, r := range regions {
		s.SimplePrice += r.SimplePrice()
		s.SidePrice += r.SidePrice()
	}
	return s, nil
}
