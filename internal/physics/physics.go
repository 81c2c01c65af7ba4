// Package physics steps ball and combatant velocities: integration, ground
// friction, max-speed clamping, and broad-phase collision candidates via a
// uniform spatial grid. It stands in for the external rigid-body engine the
// original used, grounded on internal/game/player.go's inline
// velocity-integration/friction loop and internal/game/spatial.SpatialGrid's
// cell-hash broad phase — see DESIGN.md for why this is the one core
// subsystem built on first-party code rather than a third-party library.
package physics

import (
	"math"

	"matchsim/internal/geom"
)

// Body is anything physics steps: a position/velocity pair plus a collider
// radius for broad-phase queries.
type Body struct {
	ID       uint64
	Pos      geom.Vec3
	Velocity geom.Vec3
	Radius   float64
}

// Gravity matches the recovered original constant (units/tick^2, applied to
// the Y axis only).
const Gravity = 9.81

// StepGrounded advances a grounded body (a combatant) by one tick: clamp
// horizontal speed to maxSpeed, integrate position, apply multiplicative
// ground friction — the exact shape of player.go's Update loop.
func StepGrounded(b *Body, maxSpeed, friction float64) {
	horizontal := geom.Vec3{X: b.Velocity.X, Z: b.Velocity.Z}
	if speed := horizontal.Length(); speed > maxSpeed && speed > 0 {
		scale := maxSpeed / speed
		b.Velocity.X *= scale
		b.Velocity.Z *= scale
	}
	b.Pos = b.Pos.Add(b.Velocity)
	b.Velocity.X *= friction
	b.Velocity.Z *= friction
}

// StepProjectile advances a thrown/flying body (a ball) by one tick: apply
// gravity to vertical velocity, then integrate position. No friction —
// thrown balls only lose energy on collision (handled by the simulation
// commit stage).
func StepProjectile(b *Body, gravity float64) {
	b.Velocity.Y -= gravity
	b.Pos = b.Pos.Add(b.Velocity)
}

// ThrowVelocity computes the launch velocity that sends a projectile from
// `from` to `to` at the given horizontal speed, solving for the vertical
// component that compensates for gravity over the flight time. Recovered
// formula: travel_time = distance/speed, gravity_adjustment =
// (dy + 0.5*gravity*t^2)/t.
func ThrowVelocity(from, to geom.Vec3, speed, gravity float64) geom.Vec3 {
	delta := to.Sub(from)
	horizontalDist := math.Hypot(delta.X, delta.Z)
	if horizontalDist < 1e-9 {
		return geom.Vec3{Y: speed}
	}
	travelTime := horizontalDist / speed
	vy := (delta.Y + 0.5*gravity*travelTime*travelTime) / travelTime

	dirX := delta.X / horizontalDist
	dirZ := delta.Z / horizontalDist
	return geom.Vec3{
		X: dirX * speed,
		Y: vy,
		Z: dirZ * speed,
	}
}

// ShoveImpulse is the recovered shove-force formula: strength * 15000 /
// weight, directed away from the source.
func ShoveImpulse(strength, weight float64, direction geom.Vec3) geom.Vec3 {
	if weight <= 0 {
		weight = 1
	}
	magnitude := strength * 15000.0 / weight
	return direction.Normalized().Scale(magnitude)
}
