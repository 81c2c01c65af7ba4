package matchlog

import (
	"testing"
	"time"

	"matchsim/internal/beliefs"
	"matchsim/internal/geom"
	"matchsim/internal/match"
	"matchsim/internal/world"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	log := match.MatchLog{
		MatchID:   "m-1",
		Seed:      [32]byte{1, 2, 3},
		HomeScore: 20,
		AwayScore: 0,
		Ticks: []match.Tick{
			{
				TickNumber:  0,
				Timings:     match.Timings{Elapsed: 5 * time.Microsecond},
				IsHalftime:  false,
				IsEndOfGame: false,
				SimulationEvents: []world.SimulationEvent{
					world.CombatantPositionUpdate{Combatant: 1, Pos: geom.Vec3{X: 1, Y: 0, Z: 2}},
					world.BallPositionUpdate{Ball: 1, Pos: geom.Vec3{X: 3}, Velocity: geom.Vec3{Y: -1}},
					world.PointsScoredByCombatant{Combatant: 1, Team: world.TeamHome, Points: 20},
					world.BroadcastBelief{
						From:   1,
						Belief: beliefs.OnPlate{Plate: 1, Combatant: 1},
					},
					world.ThrownBallCaught{Ball: 1, Thrower: 2, Combatant: 1},
				},
			},
		},
		CombatantStatlines: []match.Statline{
			{Combatant: 1, Points: 20, BallsThrown: 2, BallsCaught: 1, Shoves: 0, StunsTaken: 1},
		},
		Performance: match.Timings{Elapsed: time.Millisecond},
	}

	encoded, err := Encode(log)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if decoded.MatchID != log.MatchID || decoded.Seed != log.Seed {
		t.Fatal("match identity did not round-trip")
	}
	if decoded.HomeScore != log.HomeScore || decoded.AwayScore != log.AwayScore {
		t.Fatal("scores did not round-trip")
	}
	if len(decoded.Ticks) != 1 || len(decoded.Ticks[0].SimulationEvents) != 5 {
		t.Fatalf("expected 1 tick with 5 events, got %d ticks", len(decoded.Ticks))
	}

	belief, ok := decoded.Ticks[0].SimulationEvents[3].(world.BroadcastBelief)
	if !ok {
		t.Fatal("expected BroadcastBelief at index 3")
	}
	onPlate, ok := belief.Belief.(beliefs.OnPlate)
	if !ok || onPlate.Plate != 1 || onPlate.Combatant != 1 {
		t.Fatalf("belief payload did not round-trip, got %#v", belief.Belief)
	}

	if len(decoded.CombatantStatlines) != 1 || decoded.CombatantStatlines[0] != log.CombatantStatlines[0] {
		t.Fatal("statlines did not round-trip")
	}
}

func TestDecodeRejectsUnknownFormatVersion(t *testing.T) {
	_, err := Decode([]byte{FormatVersion + 1})
	if err == nil {
		t.Fatal("expected an error for an unrecognised format version")
	}
}
