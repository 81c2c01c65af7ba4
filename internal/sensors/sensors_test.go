package sensors

import (
	"testing"

	"matchsim/internal/beliefs"
	"matchsim/internal/config"
	"matchsim/internal/geom"
	"matchsim/internal/navmesh"
	"matchsim/internal/world"
)

func newTestState() *world.MatchState {
	nm := navmesh.NewNavmesh(0, 0, 50, 50, 1, []navmesh.Region{
		{Kind: navmesh.Walkable, MinX: 0, MinZ: 0, MaxX: 50, MaxZ: 50},
	})
	return world.NewMatchState(config.DefaultSimulation(), world.Arena{}, nm, [32]byte{1})
}

func newCombatant(id world.CombatantId, pos geom.Vec3) *world.Combatant {
	return &world.Combatant{
		ID:       id,
		Position: pos,
		Beliefs:  beliefs.NewBeliefSet(),
	}
}

func TestFieldOfViewSeesCombatantInFront(t *testing.T) {
	s := newTestState()
	self := newCombatant(1, geom.Vec3{X: 1, Z: 0})
	ahead := newCombatant(2, geom.Vec3{X: 1, Z: 3})
	behind := newCombatant(3, geom.Vec3{X: 1, Z: -3})
	s.AddCombatant(self)
	s.AddCombatant(ahead)
	s.AddCombatant(behind)

	fov := NewFieldOfView(1, 10.0)
	_, produced := fov.Sense(self, s)

	sawAhead, sawBehind := false, false
	for _, eb := range produced {
		if cp, ok := eb.Belief.(beliefs.CombatantPosition); ok {
			if cp.Combatant == 2 {
				sawAhead = true
			}
			if cp.Combatant == 3 {
				sawBehind = true
			}
		}
	}
	if !sawAhead {
		t.Fatal("expected to see combatant directly in front")
	}
	if sawBehind {
		t.Fatal("did not expect to see combatant behind")
	}
}

func TestFieldOfViewBlockedByBarrier(t *testing.T) {
	s := newTestState()
	s.Arena = world.Arena{Features: []world.Feature{
		{
			Kind:     world.FeatureBarrier,
			Origin:   geom.Vec3{X: 1, Z: 1.5},
			Barrier:  world.Block,
			HalfSize: geom.Vec3{X: 2.5, Y: 2.5, Z: 0.25},
		},
	}}
	self := newCombatant(1, geom.Vec3{X: 1, Z: 0})
	ahead := newCombatant(2, geom.Vec3{X: 1, Z: 3})
	s.AddCombatant(self)
	s.AddCombatant(ahead)

	fov := NewFieldOfView(1, 10.0)
	_, produced := fov.Sense(self, s)

	sawLOS := false
	for _, eb := range produced {
		if _, ok := eb.Belief.(beliefs.DirectLineOfSightToCombatant); ok {
			sawLOS = true
		}
	}
	if sawLOS {
		t.Fatal("expected the barrier to block line of sight")
	}
}

func TestProximityYieldsPickupRangeBelief(t *testing.T) {
	s := newTestState()
	self := newCombatant(1, geom.Vec3{X: 5, Z: 5})
	s.AddCombatant(self)
	s.AddBall(&world.Ball{ID: 10, Position: geom.Vec3{X: 5.5, Z: 5}})

	prox := NewProximity(1, 2, 3)
	_, produced := prox.Sense(self, s)

	found := false
	for _, eb := range produced {
		if ib, ok := eb.Belief.(beliefs.InBallPickupRange); ok && ib.Ball == 10 {
			found = true
		}
	}
	if !found {
		t.Fatal("expected InBallPickupRange belief for a nearby ball")
	}
}

func TestProximityInterruptModeSignalsOnFlyingBall(t *testing.T) {
	s := newTestState()
	self := newCombatant(1, geom.Vec3{X: 5, Z: 5})
	s.AddCombatant(self)
	s.AddBall(&world.Ball{ID: 10, Position: geom.Vec3{X: 5.5, Z: 5}, State: world.BallThrownAtTarget})

	prox := NewProximity(1, 2, 3)
	prox.SetYieldsBeliefs(false)
	interrupt, produced := prox.Sense(self, s)

	if !interrupt {
		t.Fatal("expected interrupt when a thrown ball enters proximity")
	}
	if len(produced) != 0 {
		t.Fatal("interrupt mode should not also produce beliefs")
	}
}
