package ai

import (
	"matchsim/internal/beliefs"
	"matchsim/internal/world"
)

// Tick runs one agent's per-tick algorithm: stun recovery, belief expiry,
// sensing, (re)planning, interrupt checks, strategy execution, and
// completion handling. Returns every PendingEvent produced this tick.
func Tick(c *world.Combatant, s *world.MatchState) []world.PendingEvent {
	if c.Stunned {
		roll := s.RNG.IntRange(0, 1000+int(c.Damage))
		if float64(roll) <= c.Attributes.Constitution {
			c.Velocity = c.Velocity.Scale(0)
			return []world.PendingEvent{{Event: world.CombatantStunned{Combatant: c.ID, Start: false}}}
		}
		return nil
	}

	c.Beliefs.Expire(s.CurrentTick)

	for _, cs := range c.Sensors {
		if !cs.Sensor.Enabled() {
			continue
		}
		interrupt, produced := cs.Sensor.Sense(c, s)
		for _, eb := range produced {
			c.Beliefs.AddSourced(cs.Source, eb.Belief, eb.ExpiresAt)
		}
		if interrupt {
			c.ClearPlan()
		}
	}

	if c.CurrentAction == nil {
		if len(c.Plan) == 0 {
			goals := Goals(c, s)
			actions := Actions(c, s)
			c.PushPlan(Plan(goals, actions, c.Beliefs))
		}
		if a, ok := c.PopPlan(); ok {
			c.CurrentAction = a
		}
	}

	for _, a := range c.Plan {
		if a.ShouldInterrupt(c.Beliefs) {
			c.ClearPlan()
			break
		}
	}

	a := c.CurrentAction
	if a == nil {
		return nil
	}
	if a.ShouldInterrupt(c.Beliefs) {
		c.ClearPlan()
		return nil
	}

	events, ok := a.Strategy().Tick(c, s)
	if !ok {
		c.CurrentAction = nil
		return nil
	}

	if !a.IsComplete(c.Beliefs) {
		return events
	}

	c.CompletedAction = a
	c.CurrentAction = nil

	for _, completion := range a.Completions() {
		c.Beliefs.AddUnsourced(completion, nil)
		if bc, isCaught := completion.(beliefs.BallCaught); isCaught && bc.Combatant == c.ID {
			events = append(events, world.PendingEvent{
				Event: world.ThrownBallCaught{Ball: bc.Ball, Thrower: bc.Thrower, Combatant: bc.Combatant},
			})
		}
	}

	for _, broadcast := range a.Broadcasts() {
		events = append(events, world.PendingEvent{Event: world.BroadcastBelief{From: c.ID, Belief: broadcast}})
	}

	for _, consume := range a.Consumes() {
		c.Beliefs.RemoveBeliefsByTest(consume)
	}

	return events
}
