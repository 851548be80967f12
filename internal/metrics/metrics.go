package metrics

import (
	"sync"
	"time"
)

// Recorder captures lightweight, in-memory metrics about planning and
// conversion requests, mirroring them to OTel instruments when configured.
// It is intentionally simple so tests can assert on it directly.
type Recorder struct {
	mu              sync.Mutex
	plans           int
	planOutcomes    map[string]int
	lastPlanLatency time.Duration
	conversions     int
	convertErrors   int
	rowsEmitted     int
	otel            *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		planOutcomes: make(map[string]int),
		otel:         otel,
	}
}

// RecordPlan tracks one planning request, its outcome classification and latency.
func (r *Recorder) RecordPlan(outcome string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.plans++
	r.planOutcomes[outcome]++
	r.lastPlanLatency = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPlan(outcome, duration)
	}
}

// RecordConversion tracks one tabular conversion and the row pairs it emitted.
func (r *Recorder) RecordConversion(rows int, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.conversions++
	if err != nil {
		r.convertErrors++
	} else {
		r.rowsEmitted += rows
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordConversion(rows, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Plans returns the total planning requests recorded.
func (r *Recorder) Plans() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.plans
}

// PlansWithOutcome returns how many planning requests ended with the outcome.
func (r *Recorder) PlansWithOutcome(outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.planOutcomes[outcome]
}

// LastPlanLatency returns the latency of the most recent planning request.
func (r *Recorder) LastPlanLatency() time.Duration {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastPlanLatency
}

// Conversions returns the total conversion requests recorded.
func (r *Recorder) Conversions() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.conversions
}

// ConvertErrors returns the number of failed conversions.
func (r *Recorder) ConvertErrors() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.convertErrors
}

// RowsEmitted returns the total row pairs emitted by successful conversions.
func (r *Recorder) RowsEmitted() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rowsEmitted
}
