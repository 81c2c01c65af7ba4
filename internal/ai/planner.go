package ai

import (
	"sort"

	"matchsim/internal/beliefs"
	"matchsim/internal/world"
)

// Plan runs a backward-chaining planner: for each candidate goal, in
// descending priority order, try to build a satisfying action chain from the
// agent's current beliefs. The first goal for which a complete chain closes
// (its open list empties) wins; its plan is returned top-of-stack last, so
// PopPlan hands out the first action needed.
//
// A goal's plan only closes when both CanSatisfy and CanPerform agree an
// action applies, so a candidate action whose prerequisites aren't yet
// believable is skipped in favor of one that is.
func Plan(goals []*Goal, actions []world.Action, bs *beliefs.BeliefSet) []world.Action {
	sorted := make([]*Goal, len(goals))
	copy(sorted, goals)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Priority() > sorted[j].Priority() })

	for _, goal := range sorted {
		if !goal.IsLive(bs) {
			continue
		}
		if plan, ok := planForGoal(goal, actions, bs); ok {
			return plan
		}
	}
	return nil
}

func planForGoal(goal *Goal, actions []world.Action, bs *beliefs.BeliefSet) ([]world.Action, bool) {
	open := append([]beliefs.SatisfiabilityTest(nil), goal.DesiredBeliefs()...)
	var plan []world.Action

	for len(open) > 0 {
		want := open[0]
		open = open[1:]

		var chosen world.Action
		for _, a := range actions {
			if a.CanSatisfy(want) && a.CanPerform(bs) {
				chosen = a
				break
			}
		}
		if chosen == nil {
			return nil, false
		}

		plan = append(plan, chosen)
		for _, pre := range chosen.Prerequisites() {
			if !bs.CanSatisfy(pre) {
				open = append(open, pre)
			}
		}
	}

	if len(plan) == 0 {
		return nil, false
	}
	return plan, true
}
