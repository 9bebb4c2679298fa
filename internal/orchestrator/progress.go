package orchestrator

// SessionProgress is the progress/cancellation collaborator a caller
// hands to Run, scoped to the whole session rather than one workload.
type SessionProgress interface {
	// Update reports fraction (0..1) of the whole session's declared work
	// done, plus the ID of the workload currently running and its own
	// status message.
	Update(fraction float64, workloadID, message string)
	IsCancelled() bool
}

// NoopSessionProgress discards updates and never cancels.
type NoopSessionProgress struct{}

func (NoopSessionProgress) Update(fraction float64, workloadID, message string) {}
func (NoopSessionProgress) IsCancelled() bool                                    { return false }

// scopedProgress adapts a SessionProgress into the workload.Progress
// contract, mapping a workload's own [0,1] range onto [start, end) of
// the session's overall range, per spec §4.7.3's "updates progress
// bounds to its span" requirement.
type scopedProgress struct {
	session    SessionProgress
	workloadID string
	start, end float64
}

func (p scopedProgress) Update(fraction float64, message string) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	overall := p.start + fraction*(p.end-p.start)
	p.session.Update(overall, p.workloadID, message)
}

func (p scopedProgress) IsCancelled() bool {
	return p.session.IsCancelled()
}
