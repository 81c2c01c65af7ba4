package main

import (
	"crypto/rand"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"matchsim/internal/beliefs"
	"matchsim/internal/config"
	"matchsim/internal/geom"
	"matchsim/internal/match"
	"matchsim/internal/observability"
	"matchsim/internal/world"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("💡 No .env file found, using environment variables only")
	} else {
		log.Println("✅ Loaded environment from .env")
	}

	log.Println("🏟️  ==============================")
	log.Println("🏟️   MATCHSIM - SIMULATION CORE")
	log.Println("🏟️  ==============================")

	appConfig := config.Load()
	if err := appConfig.Simulation.Validate(); err != nil {
		log.Fatalf("❌ invalid simulation config: %v", err)
	}

	store := observability.NewMemStore()
	if appConfig.Observability.Enabled {
		router := observability.NewRouter(store)
		log.Printf("📊 Debug server starting on %s", appConfig.Observability.ListenAddr)
		log.Printf("   - metrics:  http://%s/metrics", appConfig.Observability.ListenAddr)
		log.Printf("   - matchlog: http://%s/matchlog/{id}", appConfig.Observability.ListenAddr)
		go func() {
			if err := http.ListenAndServe(appConfig.Observability.ListenAddr, router); err != nil {
				log.Printf("⚠️  debug server error: %v", err)
			}
		}()
	}

	seed, err := newSeed()
	if err != nil {
		log.Fatalf("❌ failed to generate match seed: %v", err)
	}

	m := fixtureMatch("demo-match", appConfig.Simulation)
	log.Printf("🎲 Simulating %q (%d combatants, %d balls, %d plates)", m.ID, len(m.Combatants), len(m.Balls), len(m.Plates))

	result := match.SimulateMatchSeeded(m, seed)
	store.Put(result)
	observability.RecordMatchResult(result)

	log.Printf("🏁 Match complete: %d-%d over %d ticks (%s)",
		result.HomeScore, result.AwayScore, len(result.Ticks), result.Performance.Elapsed)
	for _, sl := range result.CombatantStatlines {
		log.Printf("   combatant %d: %d pts, %d thrown, %d caught, %d shoves, %d stuns taken",
			sl.Combatant, sl.Points, sl.BallsThrown, sl.BallsCaught, sl.Shoves, sl.StunsTaken)
	}
}

func newSeed() ([32]byte, error) {
	var seed [32]byte
	_, err := rand.Read(seed[:])
	return seed, err
}

// fixtureMatch builds a minimal demonstration arena. Procedural world/schedule
// generation beyond test fixtures is explicitly out of scope; this exists so
// the binary has something concrete to simulate.
func fixtureMatch(id string, cfg config.SimulationConfig) match.Match {
	arena := world.Arena{
		Features: []world.Feature{
			{
				Kind:     world.FeatureFloor,
				Origin:   geom.Vec3{},
				HalfSize: geom.Vec3{X: 20, Y: 1, Z: 20},
			},
		},
	}
	plate := &world.Plate{ID: 1, Position: geom.Vec3{X: 5}, Radius: 2}
	home := &world.Combatant{
		ID: 1, Team: world.TeamHome, Position: geom.Vec3{X: 4, Z: 0},
		Attributes: world.Attributes{MoveSpeed: 4},
		Beliefs:    beliefs.NewBeliefSet(),
	}
	away := &world.Combatant{
		ID: 2, Team: world.TeamAway, Position: geom.Vec3{X: -4, Z: 0},
		Attributes: world.Attributes{MoveSpeed: 4},
		Beliefs:    beliefs.NewBeliefSet(),
	}
	return match.Match{
		ID:         id,
		Config:     cfg,
		Arena:      arena,
		Combatants: []*world.Combatant{home, away},
		Plates:     []*world.Plate{plate},
	}
}
