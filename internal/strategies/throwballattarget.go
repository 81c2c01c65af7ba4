package strategies

import (
	"matchsim/internal/beliefs"
	"matchsim/internal/physics"
	"matchsim/internal/world"
)

// ThrowSpeed is the recovered constant throw_speed_units_per_sec_hack.
const ThrowSpeed = 30.0

// ThrowBallAtTarget throws the combatant's held ball at a target, emitting
// a teammate or enemy variant event depending on team alignment — dys-
// simulation's ThrowBallAtTargetStrategy. If the combatant does not
// authoritatively hold a ball (beliefs may lag reality), the strategy
// completes as a no-op.
type ThrowBallAtTarget struct {
	self     world.CombatantId
	target   world.CombatantId
	complete bool
}

func NewThrowBallAtTarget(self, target world.CombatantId) *ThrowBallAtTarget {
	return &ThrowBallAtTarget{self: self, target: target}
}

func (s *ThrowBallAtTarget) Name() string                        { return "Throw Ball at Target" }
func (s *ThrowBallAtTarget) IsComplete() bool                     { return s.complete }
func (s *ThrowBallAtTarget) ShouldInterrupt(*beliefs.BeliefSet) bool { return false }

func (s *ThrowBallAtTarget) CanPerform(bs *beliefs.BeliefSet) bool {
	return bs.CanSatisfy(beliefs.HeldBallTest{Combatant: beliefs.Exactly(s.self)})
}

func (s *ThrowBallAtTarget) Tick(self *world.Combatant, state *world.MatchState) ([]world.PendingEvent, bool) {
	if !self.HasBall {
		s.complete = true
		return nil, false
	}
	ballID := self.HoldingBall

	target, ok := state.Combatant(s.target)
	if !ok {
		s.complete = true
		return nil, false
	}
	ball, ok := state.Ball(ballID)
	if !ok {
		s.complete = true
		return nil, false
	}

	impulse := physics.ThrowVelocity(ball.Position, target.Position, ThrowSpeed, physics.Gravity)
	sameTeam := self.Team == target.Team

	s.complete = true
	var event world.SimulationEvent
	if sameTeam {
		event = world.BallThrownAtTeammate{Thrower: self.ID, Target: s.target, Ball: ballID, Impulse: impulse}
	} else {
		event = world.BallThrownAtEnemy{Thrower: self.ID, Target: s.target, Ball: ballID, Impulse: impulse}
	}
	return []world.PendingEvent{{Event: event}}, true
}
