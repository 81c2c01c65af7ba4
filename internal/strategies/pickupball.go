package strategies

import (
	"matchsim/internal/beliefs"
	"matchsim/internal/world"
)

// PickUpBall claims a ball the combatant believes is unheld and within
// reach. If the authoritative state disagrees (already held by someone
// else), the strategy completes without producing an event — dys-
// simulation's PickUpBallStrategy.
type PickUpBall struct {
	self     world.CombatantId
	ball     world.BallId
	complete bool
}

func NewPickUpBall(self world.CombatantId, ball world.BallId) *PickUpBall {
	return &PickUpBall{self: self, ball: ball}
}

func (s *PickUpBall) Name() string        { return "Pick Up Ball" }
func (s *PickUpBall) IsComplete() bool    { return s.complete }
func (s *PickUpBall) ShouldInterrupt(*beliefs.BeliefSet) bool { return false }

func (s *PickUpBall) CanPerform(bs *beliefs.BeliefSet) bool {
	selfNotHolding := bs.CanSatisfy(beliefs.HeldBallTest{
		Ball:      beliefs.Exactly(s.ball),
		Combatant: beliefs.NotExactly(s.self),
	})
	canReach := bs.CanSatisfy(beliefs.InBallPickupRangeTest{
		Ball:      beliefs.Exactly(s.ball),
		Combatant: beliefs.Exactly(s.self),
	})
	return selfNotHolding && canReach
}

func (s *PickUpBall) Tick(self *world.Combatant, state *world.MatchState) ([]world.PendingEvent, bool) {
	ball, ok := state.Ball(s.ball)
	if !ok || ball.HasHolder {
		s.complete = true
		return nil, false
	}
	return []world.PendingEvent{
		{Event: world.CombatantPickedUpBall{Combatant: self.ID, Ball: s.ball}},
	}, true
}
