package simulation

import (
	"math"

	"matchsim/internal/ai"
	"matchsim/internal/geom"
	"matchsim/internal/physics"
	"matchsim/internal/world"
)

// maxColliderRadiusPad and maxPlateRadiusPad pad broad-phase grid queries
// past the base ball/combatant distance so the query box covers the widest
// plausible combatant collider / plate radius without looking one up before
// querying.
const maxColliderRadiusPad = 3.0
const maxPlateRadiusPad = 10.0

// broadPhaseCellSize is physics.Grid's cell size for collisionPass's
// per-tick combatant and plate grids.
const broadPhaseCellSize = 5.0

// RunTick advances state by one tick: physics integration, ball bookkeeping,
// every combatant's agent tick, collision resolution, and (every
// ticks-per-second ticks) scoring — in that order, each pass's events
// committed before the next pass runs so later passes observe up-to-date
// state. Returns the full committed event log for the tick.
func RunTick(s *world.MatchState) []world.SimulationEvent {
	var log []world.SimulationEvent

	log = append(log, physicsPass(s)...)
	log = append(log, ballPass(s)...)
	log = append(log, combatantPass(s)...)
	log = append(log, collisionPass(s)...)
	if s.Config.TicksPerSecond > 0 && int(s.CurrentTick)%s.Config.TicksPerSecond == 0 {
		log = append(log, scoringPass(s)...)
	}

	s.CurrentTick++
	return log
}

// physicsPass integrates the one class of body the stub engine actually
// steps over time: balls in free flight. Held and idle balls are pinned or
// left in place by the ball pass instead.
func physicsPass(s *world.MatchState) []world.SimulationEvent {
	for _, ball := range s.Balls() {
		if ball.State != world.BallThrownAtTarget {
			continue
		}
		body := physics.Body{Pos: ball.Position, Velocity: ball.Velocity}
		physics.StepProjectile(&body, physics.Gravity)
		ball.Position = body.Pos
		ball.Velocity = body.Velocity
	}
	return nil
}

// ballPass runs each ball's own business logic: explosion resolution, held
// pinning, charge integration, and the position-update broadcast every ball
// emits every tick regardless of state.
func ballPass(s *world.MatchState) []world.SimulationEvent {
	var pending []world.PendingEvent
	for _, ball := range s.Balls() {
		switch ball.State {
		case world.BallExploding:
			pending = append(pending, world.PendingEvent{Event: world.BallExplosion{Ball: ball.ID}})
		case world.BallHeld:
			if holder, ok := s.Combatant(ball.HeldBy); ok {
				ball.Position = holder.Position.Add(geom.Vec3{
					X: heldBallOffset * math.Sin(holder.Rotation),
					Z: heldBallOffset * math.Cos(holder.Rotation),
				})
			}
		case world.BallThrownAtTarget:
			ball.Charge = clamp(ball.Charge+s.Config.BallChargeIncreasePerTick, 0, s.Config.BallChargeMaximum)
		}
		pending = append(pending, world.PendingEvent{
			Event: world.BallPositionUpdate{Ball: ball.ID, Pos: ball.Position, Velocity: ball.Velocity},
		})
	}
	return CommitAll(pending, s)
}

// combatantPass runs the agent tick for every combatant, collecting its
// events, then guarantees a CombatantPositionUpdate was among them — an
// idle or blocked agent still reports its (unchanged) position every tick.
func combatantPass(s *world.MatchState) []world.SimulationEvent {
	var pending []world.PendingEvent
	for _, c := range s.Combatants() {
		events := ai.Tick(c, s)
		sawPosition := false
		for _, pe := range events {
			if _, ok := pe.Event.(world.CombatantPositionUpdate); ok {
				sawPosition = true
			}
		}
		pending = append(pending, events...)
		if !sawPosition {
			pending = append(pending, world.PendingEvent{
				Event: world.CombatantPositionUpdate{Combatant: c.ID, Pos: c.Position},
			})
		}
	}
	return CommitAll(pending, s)
}

// collisionPass detects four collision classes: ball-vs-enemy,
// ball-vs-barrier, combatant-vs-plate (on/off transitions), and
// combatant-vs-barrier (a direct state mutation, not an event, since a wall
// bump has no externally visible effect worth logging). Detection uses
// physics.Grid as a broad phase since the stub engine has no native
// collider queue.
func collisionPass(s *world.MatchState) []world.SimulationEvent {
	var pending []world.PendingEvent

	combatantGrid := buildCombatantGrid(s)
	plateGrid := buildPlateGrid(s)

	for _, ball := range s.Balls() {
		if ball.State != world.BallThrownAtTarget {
			continue
		}
		if hitID, ok := nearestEnemyCombatant(s, combatantGrid, ball); ok {
			pending = append(pending, world.PendingEvent{
				Event: world.BallCollisionEnemy{Ball: ball.ID, Combatant: hitID},
			})
			continue
		}
		if hitsBarrier(s.Arena, ball.Position) {
			pending = append(pending, world.PendingEvent{Event: world.BallCollisionArena{Ball: ball.ID}})
		}
	}

	for _, c := range s.Combatants() {
		occupying, onAny := occupiedPlate(s, plateGrid, c)
		switch {
		case onAny && !c.OnPlate:
			pending = append(pending, world.PendingEvent{
				Event: world.CombatantOnPlate{Combatant: c.ID, Plate: occupying},
			})
		case !onAny && c.OnPlate:
			pending = append(pending, world.PendingEvent{
				Event: world.CombatantOffPlate{Combatant: c.ID, Plate: occupying},
			})
		}
		if hitsBarrier(s.Arena, c.Position) {
			c.Damage += c.Velocity.Length()
		}
	}

	return CommitAll(pending, s)
}

// buildCombatantGrid and buildPlateGrid rebuild a fresh physics.Grid each
// tick from the current combatant/plate positions — collisionPass's broad
// phase for the two O(n) scans below.
func buildCombatantGrid(s *world.MatchState) *physics.Grid {
	min, max := s.Arena.Bounds()
	g := physics.NewGrid(min.X, min.Z, max.X, max.Z, broadPhaseCellSize)
	for _, c := range s.Combatants() {
		g.Insert(uint64(c.ID), c.Position)
	}
	return g
}

func buildPlateGrid(s *world.MatchState) *physics.Grid {
	min, max := s.Arena.Bounds()
	g := physics.NewGrid(min.X, min.Z, max.X, max.Z, broadPhaseCellSize)
	for _, p := range s.Plates() {
		g.Insert(uint64(p.ID), p.Position)
	}
	return g
}

func nearestEnemyCombatant(s *world.MatchState, grid *physics.Grid, ball *world.Ball) (world.CombatantId, bool) {
	thrower, hasThrower := s.Combatant(ball.ThrownBy)
	candidates := grid.QueryRadius(ball.Position, maxColliderRadiusPad+ballCollisionRadius, nil)
	for _, id := range candidates {
		c, ok := s.Combatant(world.CombatantId(id))
		if !ok {
			continue
		}
		if hasThrower && c.ID == thrower.ID {
			continue
		}
		if hasThrower && c.Team == thrower.Team {
			continue
		}
		if geom.Distance(c.Position, ball.Position) <= c.ColliderRadius+ballCollisionRadius {
			return c.ID, true
		}
	}
	return 0, false
}

// hitsBarrier checks pos against every Block-tagged feature's world-space
// axis-aligned footprint. Barrier features are not rotated into the FOV
// sensor's local-frame Cuboid shape; this is a plain world-space AABB test.
func hitsBarrier(arena world.Arena, pos geom.Vec3) bool {
	for _, f := range arena.Features {
		if f.Kind != world.FeatureBarrier || f.Barrier != world.Block {
			continue
		}
		if math.Abs(pos.X-f.Origin.X) > f.HalfSize.X {
			continue
		}
		if math.Abs(pos.Y-f.Origin.Y) > f.HalfSize.Y {
			continue
		}
		if math.Abs(pos.Z-f.Origin.Z) > f.HalfSize.Z {
			continue
		}
		return true
	}
	return false
}

func occupiedPlate(s *world.MatchState, grid *physics.Grid, c *world.Combatant) (world.PlateId, bool) {
	candidates := grid.QueryRadius(c.Position, maxPlateRadiusPad, nil)
	for _, id := range candidates {
		p, ok := s.Plate(world.PlateId(id))
		if !ok {
			continue
		}
		if geom.XZDistance(c.Position, p.Position) <= p.Radius {
			return p.ID, true
		}
	}
	return 0, false
}

// scoringPass runs once every ticks-per-second ticks: each plate awards the
// per-tick rate batched over the elapsed second to whichever combatants
// occupy it, at the owned-team rate when a single team holds it alone,
// otherwise the base per-combatant rate. plate_points_per_tick is a rate,
// not a flat per-event amount — a one-second, one-scoring-event match should
// score home_score == ticks_per_second × plate_points_per_tick ×
// owned_plate_multiplier, which only holds if each pass awards the full
// second's accumulation at once.
func scoringPass(s *world.MatchState) []world.SimulationEvent {
	var pending []world.PendingEvent
	for _, p := range s.Plates() {
		var occupants []*world.Combatant
		for _, c := range s.Combatants() {
			if geom.XZDistance(c.Position, p.Position) <= p.Radius {
				occupants = append(occupants, c)
			}
		}
		if len(occupants) == 0 {
			continue
		}
		singleTeam, team := true, occupants[0].Team
		for _, c := range occupants[1:] {
			if c.Team != team {
				singleTeam = false
				break
			}
		}
		for _, c := range occupants {
			points := s.Config.PlatePointsPerTick * s.Config.TicksPerSecond
			if singleTeam {
				points *= s.Config.OwnedPlateMultiplier
			}
			pending = append(pending, world.PendingEvent{
				Event: world.PointsScoredByCombatant{Combatant: c.ID, Team: c.Team, Points: points},
			})
		}
	}
	return CommitAll(pending, s)
}
