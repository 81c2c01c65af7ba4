package ai

import (
	"math"

	"matchsim/internal/beliefs"
	"matchsim/internal/ids"
	"matchsim/internal/world"
)

// Goal is a desired belief pattern with a priority the planner uses to pick
// which goal to plan for first.
type Goal struct {
	name           string
	priority       uint32
	desiredBeliefs []beliefs.SatisfiabilityTest
	repeatable     bool
}

func (g *Goal) Name() string                                 { return g.name }
func (g *Goal) Priority() uint32                              { return g.priority }
func (g *Goal) DesiredBeliefs() []beliefs.SatisfiabilityTest  { return g.desiredBeliefs }
func (g *Goal) Repeatable() bool                              { return g.repeatable }

// IsLive holds when at least one desired belief is not yet satisfied by bs,
// or when the goal names no desired beliefs at all — an unconditional goal
// is always live.
func (g *Goal) IsLive(bs *beliefs.BeliefSet) bool {
	if len(g.desiredBeliefs) == 0 {
		return true
	}
	for _, want := range g.desiredBeliefs {
		if !bs.CanSatisfy(want) {
			return true
		}
	}
	return false
}

type GoalBuilder struct{ g Goal }

func NewGoalBuilder(name string, priority uint32) *GoalBuilder {
	return &GoalBuilder{g: Goal{name: name, priority: priority}}
}

func (b *GoalBuilder) DesiredBelief(t beliefs.SatisfiabilityTest) *GoalBuilder {
	b.g.desiredBeliefs = append(b.g.desiredBeliefs, t)
	return b
}

func (b *GoalBuilder) Repeatable(v bool) *GoalBuilder {
	b.g.repeatable = v
	return b
}

func (b *GoalBuilder) Build() *Goal {
	built := b.g
	return &built
}

// IdleGoal is the fallback every combatant can always plan for: scan the
// environment. Its low, fixed priority means any other live goal wins.
func IdleGoal() *Goal {
	return NewGoalBuilder("Look Around", 0).
		DesiredBelief(beliefs.ScannedEnvironmentTest{}).
		Repeatable(true).
		Build()
}

// Goals enumerates the combatant's candidate goals for this tick. Priorities
// are derived from the combatant's attributes, floored to an integer.
func Goals(combatant *world.Combatant, state *world.MatchState) []*Goal {
	teammates := state.Teammates(combatant.Team, combatant.ID)
	teammateIDs := make([]ids.CombatantId, 0, len(teammates))
	for _, tm := range teammates {
		teammateIDs = append(teammateIDs, tm.ID)
	}

	goals := []*Goal{
		NewGoalBuilder("Score Points", floorAttr(combatant.Attributes.Dexterity)).
			DesiredBelief(beliefs.OnPlateTest{Combatant: beliefs.Exactly(combatant.ID)}).
			Repeatable(true).
			Build(),

		NewGoalBuilder("Throw Ball At Enemies",
			floorAttr(combatant.Attributes.Coordination)+floorAttr(combatant.Attributes.Strength)).
			DesiredBelief(beliefs.BallThrownAtCombatantTest{Target: beliefs.NotIn(teammateIDs...)}).
			Repeatable(true).
			Build(),

		NewGoalBuilder("Shove Combatants",
			floorAttr(combatant.Attributes.Constitution)+floorAttr(combatant.Attributes.Presence)).
			DesiredBelief(beliefs.CombatantShovedTest{Combatant: beliefs.NotIn(teammateIDs...)}).
			Repeatable(true).
			Build(),

		IdleGoal(),
	}
	return goals
}

func floorAttr(v float64) uint32 {
	if v <= 0 {
		return 0
	}
	return uint32(math.Floor(v))
}
