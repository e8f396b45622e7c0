// Command day12 prices the fences around every garden region.
package main

import (
	"context"
	"embed"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/puzzle"
	"github.com/katalvlaran/lvlgrid/region"
)

//go:embed inputs
var inputs embed.FS

var day = puzzle.Day{Name: "day12", Inputs: inputs, Solve: solve}

func solve(_ context.Context, input string, log logrus.FieldLogger) (puzzle.Answer, error) {
	g, err := grid.ParseRunes(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	s, err := region.Survey(g)
	if err != nil {
		return puzzle.Answer{}, err
	}
	log.WithField("regions", len(s.Regions)).Info("garden surveyed")

	return puzzle.Answer{Part1: s.SimplePrice, Part2: s.SidePrice}, nil
}

func main() {
	puzzle.Main(day)
}
