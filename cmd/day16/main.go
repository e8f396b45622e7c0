// Command day16 finds the cheapest routes through the reindeer maze and
// counts the tiles that lie on any of them.
package main

import (
	"context"
	"embed"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlgrid/maze"
	"github.com/katalvlaran/lvlgrid/puzzle"
)

//go:embed inputs
var inputs embed.FS

var day = puzzle.Day{Name: "day16", Inputs: inputs, Solve: solve}

func solve(_ context.Context, input string, log logrus.FieldLogger) (puzzle.Answer, error) {
	m, err := maze.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	res, err := maze.Search(m, maze.WithLogger(log))
	if err != nil {
		return puzzle.Answer{}, err
	}
	log.WithFields(logrus.Fields{
		"routes": len(res.Paths),
		"rounds": res.Rounds,
	}).Info("maze solved")

	return puzzle.Answer{Part1: res.Cost, Part2: res.TileCount()}, nil
}

func main() {
	puzzle.Main(day)
}
