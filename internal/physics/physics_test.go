package physics

import (
	"math"
	"testing"

	"matchsim/internal/geom"
)

func TestStepGroundedClampsSpeedAndAppliesFriction(t *testing.T) {
	b := &Body{Pos: geom.Vec3{}, Velocity: geom.Vec3{X: 10, Z: 0}}
	StepGrounded(b, 5, 0.85)

	horizontal := math.Hypot(b.Velocity.X/0.85, b.Velocity.Z/0.85)
	if horizontal > 5.0001 {
		t.Fatalf("expected clamped speed <= 5 before friction, got %v", horizontal)
	}
	if b.Pos.X <= 0 {
		t.Fatal("expected position to integrate forward")
	}
}

func TestStepProjectileAppliesGravity(t *testing.T) {
	b := &Body{Pos: geom.Vec3{}, Velocity: geom.Vec3{Y: 10}}
	StepProjectile(b, Gravity)
	if b.Velocity.Y >= 10 {
		t.Fatal("expected gravity to reduce vertical velocity")
	}
}

func TestThrowVelocityReachesTargetHeight(t *testing.T) {
	from := geom.Vec3{}
	to := geom.Vec3{X: 10, Y: 2}
	v := ThrowVelocity(from, to, 30.0, Gravity)
	if v.Y <= 0 {
		t.Fatal("expected positive vertical component to reach a raised target")
	}
}

func TestShoveImpulseScalesWithStrengthOverWeight(t *testing.T) {
	dir := geom.Vec3{X: 1}
	light := ShoveImpulse(10, 50, dir)
	heavy := ShoveImpulse(10, 200, dir)
	if light.Length() <= heavy.Length() {
		t.Fatal("expected a lighter target to receive more impulse magnitude")
	}
}

func TestGridQueryRadiusFindsNeighbors(t *testing.T) {
	g := NewGrid(0, 0, 100, 100, 5)
	g.Insert(1, geom.Vec3{X: 10, Z: 10})
	g.Insert(2, geom.Vec3{X: 90, Z: 90})

	hits := g.QueryRadius(geom.Vec3{X: 10, Z: 10}, 3, nil)
	found := false
	for _, id := range hits {
		if id == 1 {
			found = true
		}
		if id == 2 {
			t.Fatal("unexpected far id in near-radius query")
		}
	}
	if !found {
		t.Fatal("expected nearby id to be returned")
	}
}

func TestGridClearEmptiesBuckets(t *testing.T) {
	g := NewGrid(0, 0, 10, 10, 5)
	g.Insert(1, geom.Vec3{X: 1, Z: 1})
	g.Clear()
	hits := g.QueryRadius(geom.Vec3{X: 1, Z: 1}, 10, nil)
	if len(hits) != 0 {
		t.Fatal("expected empty grid after Clear")
	}
}
