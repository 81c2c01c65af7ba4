// Package match drives a whole simulation: constructing tick 0 from an
// arena, running simulation.RunTick until end-of-game, and assembling the
// resulting MatchLog. Follows the usual ticker-loop shape (construct once,
// loop calling one per-tick update function, stop on a terminal condition)
// generalized from wall-clock ticking to a run-to-completion deterministic
// driver.
package match

import (
	"time"

	"matchsim/internal/config"
	"matchsim/internal/navmesh"
	"matchsim/internal/simulation"
	"matchsim/internal/world"
)

// Timings records how long a tick (or a whole match) took to compute. Purely
// observational — never read by simulation logic, never affects
// determinism.
type Timings struct {
	Elapsed time.Duration
}

// Tick is one committed simulation step: its ordinal, the events committed
// during it, and the two boundary flags the driver and external tooling
// need.
type Tick struct {
	TickNumber       world.TickNumber
	Timings          Timings
	SimulationEvents []world.SimulationEvent
	IsHalftime       bool
	IsEndOfGame      bool
}

// MatchLog is the complete, replayable record of one simulated match.
type MatchLog struct {
	MatchID            string
	Seed               [32]byte
	HomeScore          int
	AwayScore          int
	Ticks              []Tick
	CombatantStatlines []Statline
	Performance        Timings
}

// Match bundles the static configuration a simulation is launched with: the
// arena to build a navmesh from, the roster of combatants/balls/plates to
// seed tick 0 with, and the simulation config.
type Match struct {
	ID         string
	Config     config.SimulationConfig
	Arena      world.Arena
	Combatants []*world.Combatant
	Balls      []*world.Ball
	Plates     []*world.Plate
}

// NewMatchState constructs the authoritative state for a match: a navmesh
// built from the arena's floor/barrier footprint, then every combatant,
// ball, and plate registered in roster order.
func NewMatchState(m Match, seed [32]byte) *world.MatchState {
	min, max := m.Arena.Bounds()
	nm := navmesh.NewNavmesh(min.X, min.Z, max.X, max.Z, navmeshCellSize, regionsFor(m.Arena))

	s := world.NewMatchState(m.Config, m.Arena, nm, seed)
	for _, c := range m.Combatants {
		s.AddCombatant(c)
	}
	for _, b := range m.Balls {
		s.AddBall(b)
	}
	for _, p := range m.Plates {
		s.AddPlate(p)
	}
	return s
}

const navmeshCellSize = 0.5

// regionsFor converts Block-tagged barrier features into unwalkable navmesh
// regions; every Generate-tagged floor/barrier feature becomes walkable.
// internal/navmesh deliberately has no dependency on internal/world, so this
// conversion is the one place the two meet.
func regionsFor(arena world.Arena) []navmesh.Region {
	var regions []navmesh.Region
	for _, f := range arena.Features {
		if f.Kind != world.FeatureFloor && f.Kind != world.FeatureBarrier {
			continue
		}
		if f.Barrier == world.Skip {
			continue
		}
		kind := navmesh.Walkable
		if f.Kind == world.FeatureBarrier && f.Barrier == world.Block {
			kind = navmesh.Blocked
		}
		regions = append(regions, navmesh.Region{
			Kind: kind,
			MinX: f.Origin.X - f.HalfSize.X, MaxX: f.Origin.X + f.HalfSize.X,
			MinZ: f.Origin.Z - f.HalfSize.Z, MaxZ: f.Origin.Z + f.HalfSize.Z,
		})
	}
	return regions
}

// SimulateTick runs exactly one pipeline pass and wraps its committed
// events, timing, and boundary flags into a Tick. s.CurrentTick has already
// been advanced by simulation.RunTick by the time this returns, so
// tickNumber below is captured before the call.
func SimulateTick(s *world.MatchState) Tick {
	start := time.Now()
	tickNumber := s.CurrentTick
	events := simulation.RunTick(s)
	elapsed := time.Since(start)

	return Tick{
		TickNumber:       tickNumber,
		Timings:          Timings{Elapsed: elapsed},
		SimulationEvents: events,
		IsHalftime:       isHalftime(s, tickNumber),
		IsEndOfGame:      isEndOfGame(s, tickNumber),
	}
}

func periodLengthTicks(cfg config.SimulationConfig) int {
	return cfg.SecondsPerPeriod * cfg.TicksPerSecond
}

// isHalftime reports whether tickNumber lands on a period boundary that
// isn't also the match's final tick — the transition between periods, not
// the end of the match.
func isHalftime(s *world.MatchState, tickNumber world.TickNumber) bool {
	periodLen := periodLengthTicks(s.Config)
	if periodLen <= 0 || s.Config.PeriodsPerMatch <= 1 {
		return false
	}
	n := int(tickNumber) + 1
	if n%periodLen != 0 {
		return false
	}
	total := s.Config.TicksPerMatch()
	return total == 0 || n < total
}

// isEndOfGame reports whether tickNumber is the match's last tick: either
// the configured tick budget is exhausted, or a nonzero score cap has been
// reached by either team.
func isEndOfGame(s *world.MatchState, tickNumber world.TickNumber) bool {
	if total := s.Config.TicksPerMatch(); total > 0 && int(tickNumber)+1 >= total {
		return true
	}
	if cap := s.Config.GameConclusionScore; cap > 0 {
		if s.HomePoints >= cap || s.AwayPoints >= cap {
			return true
		}
	}
	return false
}

// initialTick builds tick 0 directly from authoritative state: one position
// update per combatant/ball, one ArenaObjectPositionUpdate per feature, no
// simulation pipeline run yet.
func initialTick(s *world.MatchState) Tick {
	var events []world.SimulationEvent
	for _, c := range s.Combatants() {
		events = append(events, world.CombatantPositionUpdate{Combatant: c.ID, Pos: c.Position})
	}
	for _, b := range s.Balls() {
		events = append(events, world.BallPositionUpdate{Ball: b.ID, Pos: b.Position, Velocity: b.Velocity})
	}
	for i, f := range s.Arena.Features {
		events = append(events, world.ArenaObjectPositionUpdate{FeatureIndex: i, Pos: f.Origin})
	}
	return Tick{
		TickNumber:       s.CurrentTick,
		SimulationEvents: events,
	}
}

// SimulateMatch runs m to completion with a zero seed.
func SimulateMatch(m Match) MatchLog {
	return SimulateMatchSeeded(m, [32]byte{})
}

// SimulateMatchSeeded runs m to completion with the given seed, looping
// SimulateTick until a tick reports is_end_of_game, then assembling the
// full MatchLog.
func SimulateMatchSeeded(m Match, seed [32]byte) MatchLog {
	start := time.Now()
	s := NewMatchState(m, seed)

	ticks := []Tick{initialTick(s)}
	for {
		t := SimulateTick(s)
		ticks = append(ticks, t)
		if t.IsEndOfGame {
			break
		}
	}

	return MatchLog{
		MatchID:            m.ID,
		Seed:                seed,
		HomeScore:           s.HomePoints,
		AwayScore:           s.AwayPoints,
		Ticks:               ticks,
		CombatantStatlines:  Statlines(m.Combatants, ticks),
		Performance:         Timings{Elapsed: time.Since(start)},
	}
}
