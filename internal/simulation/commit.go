// Package simulation runs the authoritative per-tick pipeline over a
// world.MatchState: a physics integration pass, ball bookkeeping, the agent
// tick for every combatant, collision resolution, and periodic scoring —
// then commits the resulting events against authoritative state one at a
// time, in order, per each event kind's effect. Grounded on the engine's
// ordered tick-loop stage functions (run once per server tick), generalized
// to the belief/GOAP combat model.
package simulation

import (
	"math"

	"matchsim/internal/beliefs"
	"matchsim/internal/geom"
	"matchsim/internal/world"
)

// heldBallOffset is how far in front of a holder's facing a held ball is
// pinned, in arena units.
const heldBallOffset = 1.5

// ballCollisionRadius approximates a ball's physical radius for broad-phase
// hit testing; the stub engine has no true collider geometry.
const ballCollisionRadius = 0.3

// Commit applies a single pending event to authoritative state. It returns
// whether the event took effect and any secondary events its effect produces
// (none, for every event kind this pipeline currently generates — collisions
// and scoring are detected directly by the stage passes instead of chaining
// through commit).
func Commit(pe world.PendingEvent, s *world.MatchState) (bool, []world.PendingEvent) {
	switch e := pe.Event.(type) {
	case world.BallPositionUpdate:
		return true, nil

	case world.CombatantPositionUpdate:
		c, ok := s.Combatant(e.Combatant)
		if !ok {
			return false, nil
		}
		old := c.Position
		c.Position = e.Pos
		if delta := e.Pos.Sub(old); delta.LengthSquared() > 1e-12 {
			c.Rotation = geom.YawTo(old, e.Pos)
		}
		return true, nil

	case world.ArenaObjectPositionUpdate:
		return true, nil

	case world.CombatantOnPlate:
		c, ok := s.Combatant(e.Combatant)
		if !ok {
			return false, nil
		}
		c.OnPlate = true
		c.Beliefs.AddUnsourced(beliefs.OnPlate{Plate: e.Plate, Combatant: e.Combatant}, nil)
		return true, nil

	case world.CombatantOffPlate:
		c, ok := s.Combatant(e.Combatant)
		if !ok {
			return false, nil
		}
		c.OnPlate = false
		c.Beliefs.RemoveBeliefsByTest(beliefs.OnPlateTest{
			Plate:     beliefs.Exactly(e.Plate),
			Combatant: beliefs.Exactly(e.Combatant),
		})
		return true, nil

	case world.CombatantPickedUpBall:
		ball, ok := s.Ball(e.Ball)
		if !ok || ball.HasHolder {
			return false, nil
		}
		c, ok := s.Combatant(e.Combatant)
		if !ok {
			return false, nil
		}
		c.HoldingBall = e.Ball
		c.HasBall = true
		ball.HasHolder = true
		ball.HeldBy = e.Combatant
		ball.State = world.BallHeld
		ball.StateSinceTick = s.CurrentTick
		ball.Charge = 0
		return true, nil

	case world.BallThrownAtEnemy:
		return commitThrow(s, e.Thrower, e.Ball, e.Target, e.Impulse, true)

	case world.BallThrownAtTeammate:
		return commitThrow(s, e.Thrower, e.Ball, e.Target, e.Impulse, false)

	case world.BallCollisionEnemy:
		ball, ok := s.Ball(e.Ball)
		if !ok {
			return false, nil
		}
		ball.State = world.BallExploding
		ball.StateSinceTick = s.CurrentTick
		return true, nil

	case world.BallCollisionArena:
		return true, nil

	case world.BallExplosion:
		ball, ok := s.Ball(e.Ball)
		if !ok {
			return false, nil
		}
		ball.Velocity = geom.Vec3{}
		ball.Charge = 0
		ball.State = world.BallIdle
		ball.StateSinceTick = s.CurrentTick
		return true, nil

	case world.BallExplosionForceApplied:
		c, ok := s.Combatant(e.Target)
		if !ok {
			return false, nil
		}
		c.Velocity = c.Velocity.Add(e.Direction.Normalized().Scale(e.Magnitude))
		return true, nil

	case world.CombatantShoveForceApplied:
		c, ok := s.Combatant(e.Target)
		if !ok {
			return false, nil
		}
		c.Velocity = c.Velocity.Add(e.Direction.Normalized().Scale(e.Magnitude))
		return true, nil

	case world.CombatantStunned:
		c, ok := s.Combatant(e.Combatant)
		if !ok {
			return false, nil
		}
		c.Stunned = e.Start
		if e.Start {
			c.ClearPlan()
		}
		return true, nil

	case world.PointsScoredByCombatant:
		if e.Team == world.TeamHome {
			s.HomePoints += e.Points
		} else {
			s.AwayPoints += e.Points
		}
		return true, nil

	case world.BroadcastBelief:
		from, ok := s.Combatant(e.From)
		if !ok {
			return false, nil
		}
		for _, mate := range s.Teammates(from.Team, from.ID) {
			mate.Beliefs.AddUnsourced(e.Belief, nil)
		}
		return true, nil

	case world.ThrownBallCaught:
		return true, nil

	default:
		return false, nil
	}
}

func commitThrow(s *world.MatchState, thrower world.CombatantId, ballID world.BallId, target world.CombatantId, impulse geom.Vec3, enemy bool) (bool, []world.PendingEvent) {
	c, ok := s.Combatant(thrower)
	if !ok || !c.HasBall || c.HoldingBall != ballID {
		return false, nil
	}
	ball, ok := s.Ball(ballID)
	if !ok {
		return false, nil
	}
	c.HasBall = false
	c.HoldingBall = 0
	c.Beliefs.RemoveBeliefsByTest(beliefs.HeldBallTest{Combatant: beliefs.Exactly(thrower)})

	ball.HasHolder = false
	ball.State = world.BallThrownAtTarget
	ball.StateSinceTick = s.CurrentTick
	ball.ThrownBy = thrower
	ball.ThrownTarget = target
	ball.ThrownAtEnemy = enemy
	ball.ThrowDir = impulse.Normalized()
	ball.Velocity = impulse
	return true, nil
}

// CommitAll commits pe and, recursively, every secondary event its commit
// produces, in breadth-first order, appending every event whose commit
// succeeded to the returned log. A failed commit drops that event (and its
// would-be secondaries are never produced, since Commit only returns
// secondaries alongside success=true).
func CommitAll(pending []world.PendingEvent, s *world.MatchState) []world.SimulationEvent {
	var log []world.SimulationEvent
	queue := append([]world.PendingEvent(nil), pending...)
	for len(queue) > 0 {
		pe := queue[0]
		queue = queue[1:]
		ok, secondary := Commit(pe, s)
		if !ok {
			continue
		}
		log = append(log, pe.Event)
		queue = append(queue, secondary...)
	}
	return log
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
