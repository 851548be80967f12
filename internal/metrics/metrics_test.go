package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksPlans(t *testing.T) {
	rec := NewRecorder()

	rec.RecordPlan("success", 5*time.Millisecond)
	rec.RecordPlan("partial", 7*time.Millisecond)
	rec.RecordPlan("success", 3*time.Millisecond)

	if rec.Plans() != 3 {
		t.Fatalf("expected 3 plans, got %d", rec.Plans())
	}
	if rec.PlansWithOutcome("success") != 2 {
		t.Fatalf("expected 2 successes, got %d", rec.PlansWithOutcome("success"))
	}
	if rec.PlansWithOutcome("partial") != 1 {
		t.Fatalf("expected 1 partial, got %d", rec.PlansWithOutcome("partial"))
	}
	if rec.PlansWithOutcome("count_mismatch") != 0 {
		t.Fatalf("expected no count mismatches, got %d", rec.PlansWithOutcome("count_mismatch"))
	}
	if rec.LastPlanLatency() != 3*time.Millisecond {
		t.Fatalf("expected last latency 3ms, got %s", rec.LastPlanLatency())
	}
}

func TestRecorderTracksConversions(t *testing.T) {
	rec := NewRecorder()

	rec.RecordConversion(10, nil)
	rec.RecordConversion(0, errors.New("bad csv"))
	rec.RecordConversion(5, nil)

	if rec.Conversions() != 3 {
		t.Fatalf("expected 3 conversions, got %d", rec.Conversions())
	}
	if rec.ConvertErrors() != 1 {
		t.Fatalf("expected 1 error, got %d", rec.ConvertErrors())
	}
	if rec.RowsEmitted() != 15 {
		t.Fatalf("expected 15 rows emitted, got %d", rec.RowsEmitted())
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder

	rec.RecordPlan("success", time.Millisecond)
	rec.RecordConversion(1, nil)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)

	if rec.Plans() != 0 || rec.Conversions() != 0 || rec.LastPlanLatency() != 0 {
		t.Fatal("expected zero values from nil recorder")
	}
}
