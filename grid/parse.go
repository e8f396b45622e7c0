package grid

import (
	"strings"
)

// ParseRunes turns a block of text into a Grid[rune], one row per line.
// Leading and trailing blank lines are dropped and Windows line endings are
// tolerated, so inputs written as raw string literals parse as-is.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed text.
func ParseRunes(text string) (*Grid[rune], error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.Trim(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(strings.TrimRight(line, " \t"))
	}

	return FromRows(rows)
}

// String renders a rune grid back to text, one line per row.
func String(g *Grid[rune]) string {
	var b strings.Builder
	b.Grow(g.Len() + g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			b.WriteRune(g.At(Pos(x, y)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
