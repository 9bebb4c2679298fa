package responsiveness

import (
	"fmt"

	"github.com/ravenscale/workbench/internal/clock"
	"github.com/ravenscale/workbench/internal/scoring"
	"github.com/ravenscale/workbench/internal/stats"
	"github.com/ravenscale/workbench/internal/workload"
)

const threadWakeCount = 1_000

// ThreadWake runs one waiter goroutine parked on a wake primitive and has
// the main goroutine signal it 1,000 times back-to-back, timing each
// signal-to-acknowledgement round trip, scoring on mean µs.
type ThreadWake struct {
	workload.Base
}

func NewThreadWake() ThreadWake {
	return ThreadWake{workload.Base{
		IDValue:          "thread_wake",
		NameValue:        "Thread Wake Latency",
		DescriptionValue: "Signals a parked waiter goroutine 1,000 times back-to-back and measures wake latency.",
		CategoryValue:    workload.Responsiveness,
		EstimatedSeconds: 3,
	}}
}

func (w ThreadWake) Run(rc workload.RunContext) workload.Outcome {
	count := rc.Scale(threadWakeCount)

	wake := make(chan struct{})
	ack := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < count; i++ {
			_, ok := <-wake
			if !ok {
				return
			}
			ack <- struct{}{}
		}
	}()

	sampler := clock.NewSampler(rc.Clock, count)
	var totalElapsed float64
	for i := 0; i < count; i++ {
		if rc.Progress.IsCancelled() {
			close(wake)
			<-done
			return workload.Cancelled()
		}
		if i%100 == 0 {
			rc.Progress.Update(float64(i)/float64(count), "signaling")
		}

		start := rc.Clock.Now()
		wake <- struct{}{}
		<-ack
		elapsed := rc.Clock.Since(start, rc.Clock.Now())
		totalElapsed += elapsed.Seconds()
		sampler.Record(float64(elapsed.Nanoseconds()) / 1000.0)
	}
	close(wake)
	<-done

	details, err := stats.Reduce(sampler.Samples(), stats.Options{Warmup: 10, Elapsed: totalElapsed})
	if err != nil {
		return workload.Failed(fmt.Sprintf("reduce samples: %v", err), sampler.Samples())
	}

	score := scoring.ThreadWake.Evaluate(details.Mean)
	return workload.Completed(workload.Measurement{
		Value:    details.Mean,
		Unit:     stats.UnitMicroseconds,
		Score:    score,
		MaxScore: scoring.ThreadWake.MaxScore,
		Details:  details,
	})
}
