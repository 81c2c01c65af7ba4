package world

import (
	"matchsim/internal/config"
	"matchsim/internal/navmesh"
	"matchsim/internal/rng"
)

// MatchState is the single authoritative mutable state of a match: arena,
// entities (insertion-ordered), scores, current tick, the match's one RNG
// stream, its validated config, and the navmesh built from the arena.
type MatchState struct {
	Arena Arena

	balls      map[BallId]*Ball
	ballOrder  []BallId
	combatants map[CombatantId]*Combatant
	comOrder   []CombatantId
	plates     map[PlateId]*Plate
	plateOrder []PlateId

	HomePoints int
	AwayPoints int

	CurrentTick TickNumber
	RNG         *rng.Source
	Config      config.SimulationConfig
	Navmesh     *navmesh.Navmesh
}

// NewMatchState constructs an empty authoritative state container. Entities
// are added afterward via AddBall/AddCombatant/AddPlate, mirroring the
// arena-feature-driven construction the match driver performs at tick 0.
func NewMatchState(cfg config.SimulationConfig, arena Arena, nm *navmesh.Navmesh, seed [32]byte) *MatchState {
	return &MatchState{
		Arena:      arena,
		balls:      make(map[BallId]*Ball),
		combatants: make(map[CombatantId]*Combatant),
		plates:     make(map[PlateId]*Plate),
		RNG:        rng.NewFromSeed(seed),
		Config:     cfg,
		Navmesh:    nm,
	}
}

func (m *MatchState) AddBall(b *Ball) {
	if _, exists := m.balls[b.ID]; !exists {
		m.ballOrder = append(m.ballOrder, b.ID)
	}
	m.balls[b.ID] = b
}

func (m *MatchState) AddCombatant(c *Combatant) {
	if _, exists := m.combatants[c.ID]; !exists {
		m.comOrder = append(m.comOrder, c.ID)
	}
	m.combatants[c.ID] = c
}

func (m *MatchState) AddPlate(p *Plate) {
	if _, exists := m.plates[p.ID]; !exists {
		m.plateOrder = append(m.plateOrder, p.ID)
	}
	m.plates[p.ID] = p
}

func (m *MatchState) Ball(id BallId) (*Ball, bool) {
	b, ok := m.balls[id]
	return b, ok
}

func (m *MatchState) Combatant(id CombatantId) (*Combatant, bool) {
	c, ok := m.combatants[id]
	return c, ok
}

func (m *MatchState) Plate(id PlateId) (*Plate, bool) {
	p, ok := m.plates[id]
	return p, ok
}

// Balls returns every ball in insertion order. Snapshotting the id slice
// (not the live map) before returning lets callers mutate the map while
// iterating the result — each stage pass snapshots before iterating.
func (m *MatchState) Balls() []*Ball {
	out := make([]*Ball, 0, len(m.ballOrder))
	for _, id := range m.ballOrder {
		out = append(out, m.balls[id])
	}
	return out
}

func (m *MatchState) Combatants() []*Combatant {
	out := make([]*Combatant, 0, len(m.comOrder))
	for _, id := range m.comOrder {
		out = append(out, m.combatants[id])
	}
	return out
}

func (m *MatchState) Plates() []*Plate {
	out := make([]*Plate, 0, len(m.plateOrder))
	for _, id := range m.plateOrder {
		out = append(out, m.plates[id])
	}
	return out
}

// Teammates returns every combatant sharing team's alignment, excluding
// self, in insertion order — used by BroadcastBelief commit handling.
func (m *MatchState) Teammates(team TeamId, self CombatantId) []*Combatant {
	var out []*Combatant
	for _, id := range m.comOrder {
		c := m.combatants[id]
		if c.Team == team && c.ID != self {
			out = append(out, c)
		}
	}
	return out
}
