// Package strategies implements world.Strategy: the per-tick imperative
// behavior an Action wraps.
package strategies

import (
	"matchsim/internal/beliefs"
	"matchsim/internal/world"
)

// Noop performs no work and completes immediately. No action built by
// internal/ai uses it; the idle goal is served by Look Around.
type Noop struct{}

func (Noop) Name() string                             { return "Noop" }
func (Noop) CanPerform(*beliefs.BeliefSet) bool        { return true }
func (Noop) ShouldInterrupt(*beliefs.BeliefSet) bool   { return false }
func (Noop) IsComplete() bool                          { return true }

func (Noop) Tick(*world.Combatant, *world.MatchState) ([]world.PendingEvent, bool) {
	return nil, true
}
