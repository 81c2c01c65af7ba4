// Package ai implements the GOAP layer above beliefs/strategies: Action,
// Goal, the per-combatant action/goal enumerators, the backward-chaining
// planner, and the agent-tick algorithm. The planner requires both
// can_satisfy and can_perform to agree before selecting an action — see
// DESIGN.md's Open Question entry for why that's stricter than a
// can_satisfy-only search.
package ai

import (
	"matchsim/internal/beliefs"
	"matchsim/internal/world"
)

// Action is the concrete, data-driven implementation of world.Action.
// Built via NewActionBuilder rather than populated directly.
type Action struct {
	name          string
	cost          float64
	strategy      world.Strategy
	prerequisites []beliefs.SatisfiabilityTest
	prohibitions  []beliefs.SatisfiabilityTest
	promises      []beliefs.Belief
	completions   []beliefs.Belief
	broadcasts    []beliefs.Belief
	consumes      []beliefs.SatisfiabilityTest
}

func (a *Action) Name() string             { return a.name }
func (a *Action) Cost() float64            { return a.cost }
func (a *Action) Strategy() world.Strategy { return a.strategy }

func (a *Action) Prerequisites() []beliefs.SatisfiabilityTest { return a.prerequisites }
func (a *Action) Completions() []beliefs.Belief               { return a.completions }
func (a *Action) Broadcasts() []beliefs.Belief                { return a.broadcasts }
func (a *Action) Consumes() []beliefs.SatisfiabilityTest       { return a.consumes }

// CanPerform holds iff every prerequisite is satisfied, no prohibition is
// satisfied, and the wrapped strategy agrees it can run.
func (a *Action) CanPerform(bs *beliefs.BeliefSet) bool {
	for _, pre := range a.prerequisites {
		if !bs.CanSatisfy(pre) {
			return false
		}
	}
	for _, pro := range a.prohibitions {
		if bs.CanSatisfy(pro) {
			return false
		}
	}
	return a.strategy.CanPerform(bs)
}

// CanSatisfy holds iff some completion or promise matches the goal pattern —
// the planner's backward-search hook.
func (a *Action) CanSatisfy(test beliefs.SatisfiabilityTest) bool {
	for _, b := range a.completions {
		if test.IsSameVariant(b) && test.SatisfiedBy(b) {
			return true
		}
	}
	for _, b := range a.promises {
		if test.IsSameVariant(b) && test.SatisfiedBy(b) {
			return true
		}
	}
	return false
}

// IsComplete holds when the strategy reports complete, or every promise is
// already observably true — the early-exit the sensor layer drives. An
// empty promise list is vacuously NOT satisfied (there is nothing for the
// sensor layer to observe).
func (a *Action) IsComplete(bs *beliefs.BeliefSet) bool {
	if a.strategy.IsComplete() {
		return true
	}
	if len(a.promises) == 0 {
		return false
	}
	for _, b := range a.promises {
		if !bs.CanSatisfy(exactBeliefTest{b}) {
			return false
		}
	}
	return true
}

func (a *Action) ShouldInterrupt(bs *beliefs.BeliefSet) bool {
	return a.strategy.ShouldInterrupt(bs)
}

// exactBeliefTest adapts a concrete Belief into a SatisfiabilityTest via its
// own IsSameVariant/SatisfiedBy — every Belief value is itself a valid test.
type exactBeliefTest struct{ b beliefs.Belief }

func (t exactBeliefTest) IsSameVariant(o beliefs.Belief) bool { return t.b.IsSameVariant(o) }
func (t exactBeliefTest) SatisfiedBy(o beliefs.Belief) bool   { return t.b.SatisfiedBy(o) }

// Builder assembles an Action fluently.
type Builder struct{ a Action }

func NewActionBuilder(name string, cost float64, strategy world.Strategy) *Builder {
	return &Builder{a: Action{name: name, cost: cost, strategy: strategy}}
}

func (b *Builder) Prerequisite(t beliefs.SatisfiabilityTest) *Builder {
	b.a.prerequisites = append(b.a.prerequisites, t)
	return b
}

func (b *Builder) Prohibition(t beliefs.SatisfiabilityTest) *Builder {
	b.a.prohibitions = append(b.a.prohibitions, t)
	return b
}

func (b *Builder) Promise(belief beliefs.Belief) *Builder {
	b.a.promises = append(b.a.promises, belief)
	return b
}

func (b *Builder) Completion(belief beliefs.Belief) *Builder {
	b.a.completions = append(b.a.completions, belief)
	return b
}

func (b *Builder) Broadcast(belief beliefs.Belief) *Builder {
	b.a.broadcasts = append(b.a.broadcasts, belief)
	return b
}

func (b *Builder) Consumes(t beliefs.SatisfiabilityTest) *Builder {
	b.a.consumes = append(b.a.consumes, t)
	return b
}

func (b *Builder) Build() *Action {
	built := b.a
	return &built
}
