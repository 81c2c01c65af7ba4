package strategies

import (
	"matchsim/internal/beliefs"
	"matchsim/internal/physics"
	"matchsim/internal/world"
)

// ShoveCombatant applies an impulse to a reachable target and stuns it.
// The shove-force multiplier (15000) is the tuned SHOVE_FORCE_MULTIPLIER
// constant.
type ShoveCombatant struct {
	self     world.CombatantId
	target   world.CombatantId
	complete bool
}

func NewShoveCombatant(self, target world.CombatantId) *ShoveCombatant {
	return &ShoveCombatant{self: self, target: target}
}

func (s *ShoveCombatant) Name() string                        { return "Shove Combatant" }
func (s *ShoveCombatant) IsComplete() bool                     { return s.complete }
func (s *ShoveCombatant) ShouldInterrupt(*beliefs.BeliefSet) bool { return false }

func (s *ShoveCombatant) CanPerform(bs *beliefs.BeliefSet) bool {
	return bs.CanSatisfy(beliefs.CanReachCombatantTest{
		Self:   beliefs.Exactly(s.self),
		Target: beliefs.Exactly(s.target),
	})
}

func (s *ShoveCombatant) Tick(self *world.Combatant, state *world.MatchState) ([]world.PendingEvent, bool) {
	target, ok := state.Combatant(s.target)
	if !ok {
		s.complete = true
		return nil, false
	}

	direction := target.Position.Sub(self.Position).Normalized()
	impulse := physics.ShoveImpulse(self.Attributes.Strength, target.Attributes.Weight, direction)

	s.complete = true
	return []world.PendingEvent{
		{Event: world.CombatantShoveForceApplied{
			Source:    self.ID,
			Target:    s.target,
			Direction: direction,
			Magnitude: impulse.Length(),
		}},
		{Event: world.CombatantStunned{Combatant: s.target, Start: true}},
	}, true
}
