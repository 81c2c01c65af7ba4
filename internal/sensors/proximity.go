package sensors

import (
	"matchsim/internal/beliefs"
	"matchsim/internal/geom"
	"matchsim/internal/world"
)

// Proximity detects entities within a cylindrical radius of its owner. When
// YieldsBeliefs is true it produces InBallPickupRange/CanReachCombatant
// beliefs; when false it instead signals an interrupt whenever a thrown
// ball enters range — the dual mode toggled with set_yields_beliefs.
type Proximity struct {
	enabled       bool
	yieldsBeliefs bool
	shape         geom.Cylinder
	owner         world.CombatantId
}

// NewProximity builds a cylindrical sensor of the given radius and height
// around owner, yielding beliefs by default.
func NewProximity(owner world.CombatantId, height, radius float64) *Proximity {
	return &Proximity{
		enabled:       true,
		yieldsBeliefs: true,
		shape:         geom.Cylinder{Radius: radius, HalfHeight: height / 2},
		owner:         owner,
	}
}

// SetYieldsBeliefs toggles belief production vs. interrupt-signaling mode.
func (p *Proximity) SetYieldsBeliefs(yields bool) { p.yieldsBeliefs = yields }

func (p *Proximity) Enabled() bool       { return p.enabled }
func (p *Proximity) YieldsBeliefs() bool { return p.yieldsBeliefs }

func (p *Proximity) Sense(c *world.Combatant, s *world.MatchState) (bool, []beliefs.ExpiringBelief) {
	if !p.enabled {
		return false, nil
	}
	current := s.CurrentTick

	if !p.yieldsBeliefs {
		interrupt := false
		for _, ball := range s.Balls() {
			if p.shape.Contains(c.Position, ball.Position) && ball.State == world.BallThrownAtTarget {
				interrupt = true
				break
			}
		}
		return interrupt, nil
	}

	var out []beliefs.ExpiringBelief
	for _, ball := range s.Balls() {
		if !p.shape.Contains(c.Position, ball.Position) {
			continue
		}
		out = append(out, beliefs.ExpiringBelief{
			Belief:    beliefs.InBallPickupRange{Ball: ball.ID, Combatant: p.owner},
			ExpiresAt: expiresAt(current, expiryShortLived),
		})
	}
	for _, other := range s.Combatants() {
		if other.ID == p.owner {
			continue
		}
		if !p.shape.Contains(c.Position, other.Position) {
			continue
		}
		out = append(out, beliefs.ExpiringBelief{
			Belief:    beliefs.CanReachCombatant{Self: p.owner, Target: other.ID},
			ExpiresAt: expiresAt(current, expiryShortLived),
		})
	}
	return false, out
}
