// Package sensors implements world.Sensor: FieldOfView and Proximity,
// translating physical state into expiring beliefs once per tick, using
// direct Cuboid/Cylinder containment tests and an arena-barrier segment
// intersection in place of a physics-engine raycast — see DESIGN.md.
package sensors

import (
	"matchsim/internal/beliefs"
	"matchsim/internal/geom"
	"matchsim/internal/ids"
	"matchsim/internal/world"
)

// Tuned per-belief expiry offsets (ticks from the current tick).
const (
	expiryPosition       = 12
	expiryHeldBallByBall = 4
	expiryBallIsFlying   = 4
	expiryShortLived     = 1
)

func expiresAt(current ids.TickNumber, offset ids.TickNumber) *ids.TickNumber {
	t := current + offset
	return &t
}

// FieldOfView is a forward-facing cuboid volume: every ball/combatant
// inside it yields position beliefs, and a direct line of sight to a
// combatant (no Block barrier between) additionally yields
// DirectLineOfSightToCombatant.
type FieldOfView struct {
	enabled       bool
	sightDistance float64
	halfWidth     float64
	halfHeight    float64
	owner         world.CombatantId
}

// NewFieldOfView builds a sensor whose detection volume extends
// sightDistance forward of its owner, mirroring FieldOfViewSensor::new's
// half_dist cuboid.
func NewFieldOfView(owner world.CombatantId, sightDistance float64) *FieldOfView {
	return &FieldOfView{
		enabled:       true,
		sightDistance: sightDistance,
		halfWidth:     sightDistance / 2,
		halfHeight:    5.0,
		owner:         owner,
	}
}

func (f *FieldOfView) Enabled() bool      { return f.enabled }
func (f *FieldOfView) YieldsBeliefs() bool { return true }

func (f *FieldOfView) Sense(c *world.Combatant, s *world.MatchState) (bool, []beliefs.ExpiringBelief) {
	if !f.enabled {
		return false, nil
	}
	shape := geom.Cuboid{Forward: f.sightDistance, HalfWidth: f.halfWidth, HalfHeight: f.halfHeight}

	var out []beliefs.ExpiringBelief
	current := s.CurrentTick

	for _, other := range s.Combatants() {
		if other.ID == f.owner {
			continue
		}
		local := geom.WorldToLocal(c.Position, c.Rotation, other.Position)
		if !shape.Contains(local) {
			continue
		}

		out = append(out, beliefs.ExpiringBelief{
			Belief:    beliefs.CombatantPosition{Combatant: other.ID, Pos: other.Position},
			ExpiresAt: expiresAt(current, expiryPosition),
		})
		if other.HasBall {
			out = append(out, beliefs.ExpiringBelief{
				Belief:    beliefs.HeldBall{Ball: other.HoldingBall, Combatant: other.ID},
				ExpiresAt: expiresAt(current, expiryShortLived),
			})
		}
		if other.OnPlate {
			if plate, ok := ownedPlate(s, other.Position); ok {
				out = append(out, beliefs.ExpiringBelief{
					Belief:    beliefs.OnPlate{Plate: plate, Combatant: other.ID},
					ExpiresAt: expiresAt(current, expiryShortLived),
				})
			}
		}
		if other.Stunned {
			out = append(out, beliefs.ExpiringBelief{
				Belief:    beliefs.CombatantIsStunned{Combatant: other.ID},
				ExpiresAt: expiresAt(current, expiryShortLived),
			})
		}

		if hasLineOfSight(s, c.Position, other.Position) {
			out = append(out, beliefs.ExpiringBelief{
				Belief:    beliefs.DirectLineOfSightToCombatant{Self: f.owner, Other: other.ID},
				ExpiresAt: expiresAt(current, expiryShortLived),
			})
		}
	}

	for _, ball := range s.Balls() {
		local := geom.WorldToLocal(c.Position, c.Rotation, ball.Position)
		if !shape.Contains(local) {
			continue
		}
		out = append(out, beliefs.ExpiringBelief{
			Belief:    beliefs.BallPosition{Ball: ball.ID, Pos: ball.Position, Velocity: ball.Velocity},
			ExpiresAt: expiresAt(current, expiryPosition),
		})
		if ball.HasHolder {
			out = append(out, beliefs.ExpiringBelief{
				Belief:    beliefs.HeldBall{Ball: ball.ID, Combatant: ball.HeldBy},
				ExpiresAt: expiresAt(current, expiryHeldBallByBall),
			})
		}
		if ball.State == world.BallThrownAtTarget {
			out = append(out, beliefs.ExpiringBelief{
				Belief:    beliefs.BallIsFlying{Ball: ball.ID},
				ExpiresAt: expiresAt(current, expiryBallIsFlying),
			})
		}
	}

	return false, out
}

func ownedPlate(s *world.MatchState, pos geom.Vec3) (world.PlateId, bool) {
	for _, p := range s.Plates() {
		if geom.XZDistance(p.Position, pos) <= p.Radius {
			return p.ID, true
		}
	}
	return 0, false
}

// hasLineOfSight reports whether the segment from origin to target crosses
// no Block-kind arena barrier. Replaces the original's ray-cast-against-
// collider-set with a segment/AABB intersection against arena features —
// the "see through walls" footgun the original's own comments call out is
// preserved: only Block barriers occlude, not Skip ones.
func hasLineOfSight(s *world.MatchState, origin, target geom.Vec3) bool {
	for _, f := range s.Arena.Features {
		if f.Kind != world.FeatureBarrier || f.Barrier != world.Block {
			continue
		}
		if segmentIntersectsAABB(origin, target, f.Origin, f.HalfSize) {
			return false
		}
	}
	return true
}

// segmentIntersectsAABB is a slab-method test on the X/Z plane (barriers are
// treated as vertical walls spanning the full height bucket their HalfSize
// describes).
func segmentIntersectsAABB(a, b, center, halfSize geom.Vec3) bool {
	min := geom.Vec3{X: center.X - halfSize.X, Z: center.Z - halfSize.Z}
	max := geom.Vec3{X: center.X + halfSize.X, Z: center.Z + halfSize.Z}

	dx := b.X - a.X
	dz := b.Z - a.Z
	tmin, tmax := 0.0, 1.0

	if !clipSegment(dx, min.X-a.X, max.X-a.X, &tmin, &tmax) {
		return false
	}
	if !clipSegment(dz, min.Z-a.Z, max.Z-a.Z, &tmin, &tmax) {
		return false
	}
	return tmin <= tmax
}

func clipSegment(d, lo, hi float64, tmin, tmax *float64) bool {
	if d == 0 {
		return lo <= 0 && hi >= 0
	}
	t0 := lo / d
	t1 := hi / d
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	if t0 > *tmin {
		*tmin = t0
	}
	if t1 < *tmax {
		*tmax = t1
	}
	return *tmin <= *tmax
}
