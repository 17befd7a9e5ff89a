package resolve

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Sequencer orders aggregation runs so that only the most recently started
// run may commit its output. The counter only ever increments; a run whose
// captured sequence no longer matches the counter has been superseded.
type Sequencer struct {
	counter atomic.Uint64
}

// NewSequencer creates a sequencer. One instance serves a whole session.
func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Run is one aggregation run's handle: the sequence captured when it started
// and an ID for log correlation.
type Run struct {
	ID  string
	Seq uint64

	sequencer *Sequencer
}

// Begin starts a new run, superseding any run still in flight.
func (s *Sequencer) Begin() Run {
	return Run{
		ID:        uuid.NewString(),
		Seq:       s.counter.Add(1),
		sequencer: s,
	}
}

// Superseded reports whether a newer run has started since this one began.
// A superseded run must discard its output instead of committing it.
func (r Run) Superseded() bool {
	return r.sequencer.counter.Load() != r.Seq
}
