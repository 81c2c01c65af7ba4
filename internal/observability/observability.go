// Package observability wraps the match driver from the outside: Prometheus
// metrics around tick/plan/commit activity and a read-only debug HTTP mux.
// Nothing in internal/match, internal/simulation, or internal/ai imports
// this package — recording a metric or serving a request must never become
// a hidden side effect of simulating a tick.
package observability

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"matchsim/internal/match"
)

var (
	tickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "matchsim_tick_duration_seconds",
		Help:    "Time spent computing a single simulation tick",
		Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.005, 0.01},
	})

	plannerInvocations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matchsim_planner_invocations_total",
		Help: "Total number of agent planning passes run",
	})

	commitSuccess = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matchsim_commit_success_total",
		Help: "Total pending events successfully committed",
	})

	commitFailure = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matchsim_commit_failure_total",
		Help: "Total pending events dropped as inconsistent against authoritative state",
	})

	finalHomeScore = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "matchsim_final_home_score",
		Help: "Home score of the most recently completed match",
	})

	finalAwayScore = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "matchsim_final_away_score",
		Help: "Away score of the most recently completed match",
	})
)

// RecordTick observes one tick's wall-clock cost.
func RecordTick(d time.Duration) { tickDuration.Observe(d.Seconds()) }

// RecordPlannerInvocation increments the planning-pass counter.
func RecordPlannerInvocation() { plannerInvocations.Inc() }

// RecordCommit increments the success or failure counter for one committed
// (or dropped) pending event.
func RecordCommit(success bool) {
	if success {
		commitSuccess.Inc()
		return
	}
	commitFailure.Inc()
}

// RecordMatchResult updates the final-score gauges once a match completes.
func RecordMatchResult(log match.MatchLog) {
	finalHomeScore.Set(float64(log.HomeScore))
	finalAwayScore.Set(float64(log.AwayScore))
}

// LogStore is the minimal read interface the debug mux needs over completed
// match logs, kept deliberately narrow so tests can supply an in-memory map
// instead of a real store.
type LogStore interface {
	Get(matchID string) (match.MatchLog, bool)
}

// NewRouter builds the debug/metrics mux: /healthz, /metrics, and a
// read-only /matchlog/{id} endpoint over completed match logs. This is an
// ops-facing debug surface, not a gameplay RPC transport — it never accepts
// a match to run, only reports on ones already finished.
func NewRouter(store LogStore) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/matchlog/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		log, ok := store.Get(id)
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(log)
	})

	return r
}
