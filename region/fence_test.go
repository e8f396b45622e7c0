package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/region"
)

const (
	garden = `
AAAA
BBCD
BBCC
EEEC
`
	holes = `
OOOOO
OXOXO
OOOOO
OXOXO
OOOOO
`
	letterE = `
EEEEE
EXXXX
EEEEE
EXXXX
EEEEE
`
	mobius = `
AAAAAA
AAABBA
AAABBA
ABBAAA
ABBAAA
AAAAAA
`
	large = `
RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE
`
)

func TestSurvey_Examples(t *testing.T) {
	cases := []struct {
		name         string
		input        string
		simple, side int
	}{
		{"Garden", garden, 140, 80},
		{"Holes", holes, 772, 436},
		{"LetterE", letterE, 692, 236},
		{"Mobius", mobius, 1184, 368},
		{"Large", large, 1930, 1206},
	}
	for _, tc := range cases {
		for _, s := range []region.Strategy{region.UnionFind, region.Relabel, region.FloodFill} {
			t.Run(tc.name+"/"+s.String(), func(t *testing.T) {
				g, err := grid.ParseRunes(tc.input)
				require.NoError(t, err)

				sum, err := region.Survey(g, region.WithStrategy(s))
				require.NoError(t, err)
				assert.Equal(t, tc.simple, sum.SimplePrice)
				assert.Equal(t, tc.side, sum.SidePrice)
			})
		}
	}
}

// TestTrace_Garden checks the per-region measurements of the 4×4 garden.
func TestTrace_Garden(t *testing.T) {
	g, err := grid.ParseRunes(garden)
	require.NoError(t, err)

	regions, lm, err := region.Trace(g)
	require.NoError(t, err)
	require.Len(t, regions, 5)
	assert.Equal(t, 5, lm.Len())

	type shape struct{ area, perimeter, sides int }
	got := make(map[rune]shape)
	for _, r := range regions {
		got[r.Value] = shape{r.Area, r.Perimeter, r.Sides}
	}
	assert.Equal(t, map[rune]shape{
		'A': {4, 10, 4},
		'B': {4, 8, 4},
		'C': {4, 10, 8},
		'D': {1, 4, 4},
		'E': {3, 8, 4},
	}, got)
	assert.Equal(t, grid.Pos(0, 0), regions[0].Origin)
}

// TestTrace_Invariants checks area conservation and that sides never exceed
// the perimeter, over every example.
func TestTrace_Invariants(t *testing.T) {
	for _, input := range []string{garden, holes, letterE, mobius, large} {
		g, err := grid.ParseRunes(input)
		require.NoError(t, err)
		regions, lm, err := region.Trace(g)
		require.NoError(t, err)

		area := 0
		for _, r := range regions {
			area += r.Area
			assert.LessOrEqual(t, r.Sides, r.Perimeter, "region %d", r.ID)
			assert.GreaterOrEqual(t, r.Sides, 4, "every region has at least four sides")
			assert.Equal(t, 0, r.Sides%2, "sides alternate horizontal and vertical")
		}
		assert.Equal(t, g.Len(), area)
		assert.Equal(t, lm.IDs()[len(lm.IDs())-1], regions[len(regions)-1].ID)
	}
}

func TestSurvey_SingleCell(t *testing.T) {
	g, err := grid.FromRows([][]int{{7}})
	require.NoError(t, err)
	sum, err := region.Survey(g)
	require.NoError(t, err)
	require.Len(t, sum.Regions, 1)
	assert.Equal(t, 4, sum.SimplePrice)
	assert.Equal(t, 4, sum.SidePrice)
	assert.Equal(t, 7, sum.Regions[0].Value)
}
