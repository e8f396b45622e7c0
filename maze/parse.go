package maze

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/grid"
)

// Parse builds a Maze from text.
func Parse(text string) (*Maze, error) {
	g, err := grid.ParseRunes(text)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	return New(g)
}

// New builds a Maze from a rune grid holding exactly one 'S' and one 'E'.
func New(g *grid.Grid[rune]) (*Maze, error) {
	var bad error
	g.Each(func(p grid.Position, r rune) {
		switch r {
		case TileWall, TileFloor, TileStart, TileEnd:
		default:
			if bad == nil {
				bad = fmt.Errorf("%w: %q at %v", ErrUnknownTile, r, p)
			}
		}
	})
	if bad != nil {
		return nil, bad
	}

	start, err := grid.FindOne(g, TileStart)
	if err != nil {
		return nil, fmt.Errorf("maze: start: %w", err)
	}
	end, err := grid.FindOne(g, TileEnd)
	if err != nil {
		return nil, fmt.Errorf("maze: end: %w", err)
	}

	return &Maze{
		walls: grid.Map(g, func(_ grid.Position, r rune) bool { return r == TileWall }),
		Start: start,
		End:   end,
	}, nil
}
