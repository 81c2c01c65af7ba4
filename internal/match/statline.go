package match

import "matchsim/internal/world"

// Statline aggregates one combatant's per-match totals from the committed
// event log — the box-score counters external tooling would plausibly
// want, derived purely by scanning events, never read back into
// simulation logic.
type Statline struct {
	Combatant    world.CombatantId
	Points       int
	BallsThrown  int
	BallsCaught  int
	Shoves       int
	StunsTaken   int
}

// Statlines scans every tick's committed events once and accumulates one
// Statline per roster combatant, in roster order.
func Statlines(roster []*world.Combatant, ticks []Tick) []Statline {
	byID := make(map[world.CombatantId]*Statline, len(roster))
	order := make([]world.CombatantId, 0, len(roster))
	for _, c := range roster {
		byID[c.ID] = &Statline{Combatant: c.ID}
		order = append(order, c.ID)
	}

	for _, tick := range ticks {
		for _, evt := range tick.SimulationEvents {
			switch e := evt.(type) {
			case world.PointsScoredByCombatant:
				if sl, ok := byID[e.Combatant]; ok {
					sl.Points += e.Points
				}
			case world.BallThrownAtEnemy:
				if sl, ok := byID[e.Thrower]; ok {
					sl.BallsThrown++
				}
			case world.BallThrownAtTeammate:
				if sl, ok := byID[e.Thrower]; ok {
					sl.BallsThrown++
				}
			case world.ThrownBallCaught:
				if sl, ok := byID[e.Combatant]; ok {
					sl.BallsCaught++
				}
			case world.CombatantShoveForceApplied:
				if sl, ok := byID[e.Source]; ok {
					sl.Shoves++
				}
			case world.CombatantStunned:
				if e.Start {
					if sl, ok := byID[e.Combatant]; ok {
						sl.StunsTaken++
					}
				}
			}
		}
	}

	out := make([]Statline, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}
