// Command day06 patrols the lab map and counts the obstacle placements that
// would trap the guard in a loop.
package main

import (
	"context"
	"embed"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlgrid/guard"
	"github.com/katalvlaran/lvlgrid/puzzle"
)

//go:embed inputs
var inputs embed.FS

var day = puzzle.Day{Name: "day06", Inputs: inputs, Solve: solve}

func solve(ctx context.Context, input string, log logrus.FieldLogger) (puzzle.Answer, error) {
	sim, err := guard.Parse(input, guard.WithLogger(log))
	if err != nil {
		return puzzle.Answer{}, err
	}

	visited, state := sim.Patrol()
	log.WithField("state", state).Info("patrol finished")

	loops, err := guard.FindLoopObstacles(sim,
		guard.WithContext(ctx),
		guard.WithLogger(log),
		guard.WithWorkers(runtime.NumCPU()),
	)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Answer{Part1: visited, Part2: len(loops)}, nil
}

func main() {
	puzzle.Main(day)
}
