package responsiveness

import (
	"fmt"

	"github.com/ravenscale/workbench/internal/clock"
	"github.com/ravenscale/workbench/internal/platform"
	"github.com/ravenscale/workbench/internal/scoring"
	"github.com/ravenscale/workbench/internal/stats"
	"github.com/ravenscale/workbench/internal/workload"
)

const processSpawnCount = 100

// ProcessSpawn spawns a trivial, platform-appropriate do-nothing child
// process 100 times, timing spawn-to-exit, scoring on mean ms.
type ProcessSpawn struct {
	workload.Base
}

func NewProcessSpawn() ProcessSpawn {
	return ProcessSpawn{workload.Base{
		IDValue:          "process_spawn",
		NameValue:        "Process Spawn",
		DescriptionValue: "Spawns a trivial child process 100 times and measures spawn-to-exit latency.",
		CategoryValue:    workload.Responsiveness,
		EstimatedSeconds: 5,
	}}
}

func (w ProcessSpawn) Run(rc workload.RunContext) workload.Outcome {
	count := rc.Scale(processSpawnCount)

	sampler := clock.NewSampler(rc.Clock, count)
	var totalElapsed float64
	for i := 0; i < count; i++ {
		if rc.Progress.IsCancelled() {
			return workload.Cancelled()
		}
		if i%10 == 0 {
			rc.Progress.Update(float64(i)/float64(count), "spawning")
		}

		start := rc.Clock.Now()
		err := platform.SpawnDoNothing()
		elapsed := rc.Clock.Since(start, rc.Clock.Now())
		if err != nil {
			return workload.Failed(fmt.Sprintf("spawn child: %v", err), sampler.Samples())
		}
		totalElapsed += elapsed.Seconds()
		sampler.Record(float64(elapsed.Microseconds()) / 1000.0)
	}

	details, err := stats.Reduce(sampler.Samples(), stats.Options{Warmup: 1, Elapsed: totalElapsed})
	if err != nil {
		return workload.Failed(fmt.Sprintf("reduce samples: %v", err), sampler.Samples())
	}

	score := scoring.ProcessSpawn.Evaluate(details.Mean)
	return workload.Completed(workload.Measurement{
		Value:    details.Mean,
		Unit:     stats.UnitMilliseconds,
		Score:    score,
		MaxScore: scoring.ProcessSpawn.MaxScore,
		Details:  details,
	})
}
