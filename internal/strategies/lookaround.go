package strategies

import (
	"math"

	"matchsim/internal/beliefs"
	"matchsim/internal/world"
)

// LookAround spins the combatant to face the opposite direction and
// completes in a single tick.
type LookAround struct {
	complete bool
}

func NewLookAround() *LookAround { return &LookAround{} }

func (s *LookAround) Name() string                           { return "Look Around" }
func (s *LookAround) CanPerform(*beliefs.BeliefSet) bool      { return true }
func (s *LookAround) ShouldInterrupt(*beliefs.BeliefSet) bool { return false }
func (s *LookAround) IsComplete() bool                        { return s.complete }

func (s *LookAround) Tick(c *world.Combatant, _ *world.MatchState) ([]world.PendingEvent, bool) {
	c.Rotation += math.Pi
	s.complete = true
	return nil, true
}
