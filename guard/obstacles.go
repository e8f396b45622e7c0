package guard

import (
	"context"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlgrid/grid"
)

// FindLoopObstacles returns every position where adding one obstacle makes
// the guard loop, sorted in row-major order. The start cell and existing
// obstacles are never candidates.
//
// Behavior:
//  1. Collect candidates: by default the cells visited by an unobstructed
//     patrol (an obstacle anywhere else is never reached), or every empty
//     cell with WithExhaustive.
//  2. For each candidate: place the obstacle, reset, run to a terminal state,
//     record it if the state is Looping, then remove the obstacle and reset.
//  3. With WithWorkers(n>1), trials are spread over n goroutines, each
//     owning a private Clone of s; s itself is only read.
//
// On return s is reset to its start state.
// Returns ErrOptionViolation for bad options, or ctx.Err() if the context
// is cancelled between trials.
//
// Complexity: O(C × W×H×4) time for C candidates, O(Workers × W×H) memory.
func FindLoopObstacles(s *Simulator, opts ...Option) ([]grid.Position, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	log := cfg.Logger

	// 1) Candidates
	cands := candidates(s, cfg.Exhaustive)
	log.WithFields(logrus.Fields{
		"candidates": len(cands),
		"workers":    cfg.Workers,
		"exhaustive": cfg.Exhaustive,
	}).Debug("loop obstacle search started")

	// 2) Trials
	var found []grid.Position
	if cfg.Workers == 1 {
		found, err = serialTrials(cfg.Ctx, s, cands, log)
	} else {
		found, err = parallelTrials(cfg.Ctx, s, cands, cfg.Workers, log)
	}
	s.Reset()
	if err != nil {
		return nil, err
	}

	// 3) Deterministic order regardless of worker scheduling
	sort.Slice(found, func(i, j int) bool {
		if found[i].Y != found[j].Y {
			return found[i].Y < found[j].Y
		}
		return found[i].X < found[j].X
	})
	log.WithField("loops", len(found)).Info("loop obstacle search finished")

	return found, nil
}

func candidates(s *Simulator, exhaustive bool) []grid.Position {
	var out []grid.Position
	if exhaustive {
		s.tiles.Each(func(p grid.Position, c Cell) {
			if !c.Obstacle && p != s.start {
				out = append(out, p)
			}
		})
		return out
	}

	s.Patrol()
	for _, p := range s.VisitedPositions() {
		if p != s.start {
			out = append(out, p)
		}
	}
	return out
}

// trial runs one obstructed simulation on sim and leaves sim clean.
func trial(sim *Simulator, p grid.Position) bool {
	sim.SetObstacle(p, true)
	sim.Reset()
	loops := sim.Run() == Looping
	sim.SetObstacle(p, false)
	sim.Reset()

	return loops
}

func serialTrials(ctx context.Context, s *Simulator, cands []grid.Position, log logrus.FieldLogger) ([]grid.Position, error) {
	var found []grid.Position
	for _, p := range cands {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if trial(s, p) {
			log.WithField("pos", p).Debug("loop obstacle")
			found = append(found, p)
		}
	}
	return found, nil
}

func parallelTrials(ctx context.Context, s *Simulator, cands []grid.Position, workers int, log logrus.FieldLogger) ([]grid.Position, error) {
	jobs := make(chan grid.Position)
	local := make([][]grid.Position, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int, sim *Simulator) {
			defer wg.Done()
			wlog := log.WithField("worker", w)
			for p := range jobs {
				if trial(sim, p) {
					wlog.WithField("pos", p).Debug("loop obstacle")
					local[w] = append(local[w], p)
				}
			}
		}(w, s.Clone())
	}

	var err error
feed:
	for _, p := range cands {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- p:
		}
	}
	close(jobs)
	wg.Wait()
	if err != nil {
		return nil, err
	}

	var found []grid.Position
	for _, part := range local {
		found = append(found, part...)
	}
	return found, nil
}
