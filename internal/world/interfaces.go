package world

import "matchsim/internal/beliefs"

// Strategy is the per-tick imperative behavior an Action wraps. Concrete
// implementations live in internal/strategies; defining the interface here
// (rather than there) lets Combatant hold a strategy without internal/world
// importing internal/strategies.
type Strategy interface {
	Name() string
	CanPerform(bs *beliefs.BeliefSet) bool
	ShouldInterrupt(bs *beliefs.BeliefSet) bool
	IsComplete() bool
	// Tick runs one tick of the strategy. ok=false means the strategy failed
	// this tick and the action must be dropped.
	Tick(c *Combatant, s *MatchState) (events []PendingEvent, ok bool)
}

// Action is the gated, effect-bearing unit the planner assembles into a
// plan. Concrete implementation lives in internal/ai; defined here so
// Combatant can hold a plan stack without internal/world importing
// internal/ai.
type Action interface {
	Name() string
	Cost() float64
	Strategy() Strategy
	CanPerform(bs *beliefs.BeliefSet) bool
	CanSatisfy(test beliefs.SatisfiabilityTest) bool
	IsComplete(bs *beliefs.BeliefSet) bool
	ShouldInterrupt(bs *beliefs.BeliefSet) bool
	Prerequisites() []beliefs.SatisfiabilityTest
	Completions() []beliefs.Belief
	Broadcasts() []beliefs.Belief
	Consumes() []beliefs.SatisfiabilityTest
}

// Sensor translates physical state into expiring beliefs (or an interrupt
// signal) once per tick. Concrete implementations (field-of-view,
// proximity) live in internal/sensors.
type Sensor interface {
	Enabled() bool
	YieldsBeliefs() bool
	Sense(c *Combatant, s *MatchState) (interrupt bool, produced []beliefs.ExpiringBelief)
}

// CombatantSensor pairs a Sensor with the SourceId its beliefs are filed
// under.
type CombatantSensor struct {
	Source  SourceId
	Sensor  Sensor
}
