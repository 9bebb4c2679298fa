package responsiveness

import (
	"fmt"
	"math/rand"

	"github.com/klauspost/cpuid/v2"

	"github.com/ravenscale/workbench/internal/clock"
	"github.com/ravenscale/workbench/internal/scoring"
	"github.com/ravenscale/workbench/internal/stats"
	"github.com/ravenscale/workbench/internal/workload"
)

const (
	memoryLatencyDefaultL3   = 32 << 20 // fallback when the host can't report L3 size
	memoryLatencyMultiplier  = 8
	memoryLatencyStride      = 64 // bytes, matches a typical cache line
	memoryLatencyBatchSize   = 2_000_000
	memoryLatencyBatchCount  = 6
	memoryLatencyWarmupBatch = 1
)

// MemoryLatency builds a circular pointer-chasing permutation over a
// buffer at least 8x the host's L3 cache size and times long chains of
// dependent accesses, scoring on ns/access.
type MemoryLatency struct {
	workload.Base
}

func NewMemoryLatency() MemoryLatency {
	return MemoryLatency{workload.Base{
		IDValue:          "memory_latency",
		NameValue:        "Memory Latency",
		DescriptionValue: "Chases a random pointer permutation over a buffer at least 8x L3 cache size, measuring access latency.",
		CategoryValue:    workload.Responsiveness,
		EstimatedSeconds: 6,
	}}
}

func (w MemoryLatency) Run(rc workload.RunContext) workload.Outcome {
	l3 := cpuid.CPU.Cache.L3
	if l3 <= 0 {
		l3 = memoryLatencyDefaultL3
	}
	bufferSize := l3 * memoryLatencyMultiplier
	n := bufferSize / memoryLatencyStride
	if n < 2 {
		n = 2
	}

	rc.Progress.Update(0, "building pointer chase permutation")
	next := sattoloPermutation(n, 7)
	if rc.Progress.IsCancelled() {
		return workload.Cancelled()
	}

	sampler := clock.NewSampler(rc.Clock, memoryLatencyBatchCount)
	cursor := 0
	var totalElapsed float64
	for b := 0; b < memoryLatencyBatchCount; b++ {
		if rc.Progress.IsCancelled() {
			return workload.Cancelled()
		}
		rc.Progress.Update(float64(b)/float64(memoryLatencyBatchCount), fmt.Sprintf("chase batch %d/%d", b+1, memoryLatencyBatchCount))

		start := rc.Clock.Now()
		for i := 0; i < memoryLatencyBatchSize; i++ {
			cursor = next[cursor]
		}
		elapsed := rc.Clock.Since(start, rc.Clock.Now())
		totalElapsed += elapsed.Seconds()

		nsPerAccess := float64(elapsed.Nanoseconds()) / float64(memoryLatencyBatchSize)
		sampler.Record(nsPerAccess)
	}
	// cursor is read back so the chase loop above cannot be optimized away.
	_ = cursor

	details, err := stats.Reduce(sampler.Samples(), stats.Options{Warmup: memoryLatencyWarmupBatch, Elapsed: totalElapsed})
	if err != nil {
		return workload.Failed(fmt.Sprintf("reduce samples: %v", err), sampler.Samples())
	}

	score := scoring.MemoryLatency.Evaluate(details.Median)
	return workload.Completed(workload.Measurement{
		Value:    details.Median,
		Unit:     stats.UnitNanoseconds,
		Score:    score,
		MaxScore: scoring.MemoryLatency.MaxScore,
		Details:  details,
	})
}

// sattoloPermutation builds a random single-cycle permutation of
// [0,n) using Sattolo's algorithm, guaranteeing the pointer chase visits
// every index exactly once per full cycle rather than settling into a
// short sub-cycle.
func sattoloPermutation(n int, seed int64) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	rng := rand.New(rand.NewSource(seed))
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	next := make([]int, n)
	for i := 0; i < n; i++ {
		next[perm[i]] = perm[(i+1)%n]
	}
	return next
}
