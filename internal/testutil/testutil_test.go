package testutil

import (
	"net/http"
	"testing"
)

func TestUniformRoster(t *testing.T) {
	roster := UniformRoster(3, 100)
	if len(roster) != 3 {
		t.Fatalf("expected 3 teams, got %d", len(roster))
	}
	if roster[0].ID != 1 || roster[2].ID != 3 || roster[1].Power != 100 {
		t.Fatalf("unexpected roster %+v", roster)
	}
}

func TestPowerTextRoundTripsThroughTokens(t *testing.T) {
	text := PowerText(Roster(1, 100, 2, 200))
	if text != "1 100 2 200" {
		t.Fatalf("unexpected power text %q", text)
	}
}

func TestServeHitsHandler(t *testing.T) {
	called := false
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	rr := Serve(h, http.MethodGet, "/anything", nil)
	if !called {
		t.Fatal("expected handler to be called")
	}
	AssertStatus(t, rr, http.StatusTeapot)
}
