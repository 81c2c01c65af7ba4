package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"matchsim/internal/match"
)

func TestRouterHealthz(t *testing.T) {
	r := NewRouter(NewMemStore())
	ts := httptest.NewServer(r)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRouterMatchLogRoundTrip(t *testing.T) {
	store := NewMemStore()
	store.Put(match.MatchLog{MatchID: "m-1", HomeScore: 3, AwayScore: 1})

	r := NewRouter(store)
	ts := httptest.NewServer(r)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/matchlog/m-1")
	if err != nil {
		t.Fatalf("GET /matchlog/m-1 failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRouterMatchLogNotFound(t *testing.T) {
	r := NewRouter(NewMemStore())
	ts := httptest.NewServer(r)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/matchlog/missing")
	if err != nil {
		t.Fatalf("GET /matchlog/missing failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestRecordMatchResultDoesNotPanic(t *testing.T) {
	// RecordMatchResult must not panic when called repeatedly with
	// different logs; gauge values aren't asserted directly since
	// Prometheus collectors aren't easily read back without the full
	// registry wiring.
	RecordMatchResult(match.MatchLog{MatchID: "a", HomeScore: 5, AwayScore: 2})
	RecordMatchResult(match.MatchLog{MatchID: "b", HomeScore: 0, AwayScore: 0})
}
