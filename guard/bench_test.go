package guard_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlgrid/guard"
)

// BenchmarkFindLoopObstacles compares serial and fanned-out trials on the lab map.
func BenchmarkFindLoopObstacles(b *testing.B) {
	sim, err := guard.Parse(lab)
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = guard.FindLoopObstacles(sim, guard.WithWorkers(workers))
			}
		})
	}
}
