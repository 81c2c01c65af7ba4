package match

import (
	"testing"

	"matchsim/internal/beliefs"
	"matchsim/internal/config"
	"matchsim/internal/geom"
	"matchsim/internal/world"
)

func oneSecondConfig() config.SimulationConfig {
	cfg := config.DefaultSimulation()
	cfg.TicksPerSecond = 10
	cfg.SecondsPerPeriod = 1
	cfg.PeriodsPerMatch = 1
	cfg.GameConclusionScore = 0
	return cfg
}

func TestEmptyArenaNoOpProducesNoScoring(t *testing.T) {
	m := Match{
		ID:     "empty",
		Config: oneSecondConfig(),
		Arena:  world.Arena{},
		Plates: []*world.Plate{{ID: 1, Position: geom.Vec3{X: 100}, Radius: 3}},
	}
	log := SimulateMatchSeeded(m, [32]byte{1})

	if log.HomeScore != 0 || log.AwayScore != 0 {
		t.Fatalf("expected no score in an empty arena, got %d-%d", log.HomeScore, log.AwayScore)
	}
	if len(log.Ticks) != 11 {
		t.Fatalf("expected 11 ticks (tick 0 + 10), got %d", len(log.Ticks))
	}
	if !log.Ticks[len(log.Ticks)-1].IsEndOfGame {
		t.Fatal("expected final tick to report end of game")
	}
	for _, tick := range log.Ticks {
		for _, evt := range tick.SimulationEvents {
			if _, ok := evt.(world.PointsScoredByCombatant); ok {
				t.Fatal("expected no PointsScoredByCombatant in an empty arena")
			}
		}
	}
}

func TestSingleCombatantOnPlateScores(t *testing.T) {
	cfg := oneSecondConfig()
	plate := &world.Plate{ID: 1, Position: geom.Vec3{}, Radius: 3}
	combatant := &world.Combatant{
		ID: 1, Team: world.TeamHome, Position: geom.Vec3{}, OnPlate: true,
		Beliefs: beliefs.NewBeliefSet(),
	}

	m := Match{
		ID:         "plate",
		Config:     cfg,
		Arena:      world.Arena{},
		Plates:     []*world.Plate{plate},
		Combatants: []*world.Combatant{combatant},
	}
	log := SimulateMatchSeeded(m, [32]byte{2})

	want := cfg.TicksPerSecond * cfg.PlatePointsPerTick * cfg.OwnedPlateMultiplier
	if log.HomeScore != want {
		t.Fatalf("expected home score %d, got %d", want, log.HomeScore)
	}
	if log.AwayScore != 0 {
		t.Fatalf("expected away score 0, got %d", log.AwayScore)
	}
}

func TestDeterministicReplaySameSeed(t *testing.T) {
	m := Match{
		ID:     "replay",
		Config: oneSecondConfig(),
		Arena:  world.Arena{},
		Combatants: []*world.Combatant{
			{ID: 1, Team: world.TeamHome, Position: geom.Vec3{}, Attributes: world.Attributes{MoveSpeed: 3}, Beliefs: beliefs.NewBeliefSet()},
		},
	}
	a := SimulateMatchSeeded(m, [32]byte{7})
	m2 := Match{
		ID:     "replay",
		Config: oneSecondConfig(),
		Arena:  world.Arena{},
		Combatants: []*world.Combatant{
			{ID: 1, Team: world.TeamHome, Position: geom.Vec3{}, Attributes: world.Attributes{MoveSpeed: 3}, Beliefs: beliefs.NewBeliefSet()},
		},
	}
	b := SimulateMatchSeeded(m2, [32]byte{7})

	if a.HomeScore != b.HomeScore || a.AwayScore != b.AwayScore {
		t.Fatal("expected identical scores for identical seed")
	}
	if len(a.Ticks) != len(b.Ticks) {
		t.Fatal("expected identical tick counts for identical seed")
	}
}
