package strategies

import (
	"testing"

	"matchsim/internal/beliefs"
	"matchsim/internal/config"
	"matchsim/internal/geom"
	"matchsim/internal/navmesh"
	"matchsim/internal/world"
)

func testState() *world.MatchState {
	nm := navmesh.NewNavmesh(0, 0, 50, 50, 1, []navmesh.Region{
		{Kind: navmesh.Walkable, MinX: 0, MinZ: 0, MaxX: 50, MaxZ: 50},
	})
	return world.NewMatchState(config.DefaultSimulation(), world.Arena{}, nm, [32]byte{1})
}

func testCombatant(id world.CombatantId, pos geom.Vec3) *world.Combatant {
	return &world.Combatant{ID: id, Position: pos, Beliefs: beliefs.NewBeliefSet(), Attributes: world.Attributes{MoveSpeed: 5, Strength: 10, Weight: 50}}
}

func TestNoopCompletesImmediately(t *testing.T) {
	var s Noop
	events, ok := s.Tick(nil, nil)
	if !ok || len(events) != 0 || !s.IsComplete() {
		t.Fatal("expected noop to complete with no events")
	}
}

func TestLookAroundRotatesAndCompletes(t *testing.T) {
	s := NewLookAround()
	c := testCombatant(1, geom.Vec3{})
	before := c.Rotation
	_, ok := s.Tick(c, testState())
	if !ok || !s.IsComplete() {
		t.Fatal("expected look-around to complete in one tick")
	}
	if c.Rotation == before {
		t.Fatal("expected rotation to change")
	}
}

func TestMoveToLocationReachesTargetOverTicks(t *testing.T) {
	state := testState()
	c := testCombatant(1, geom.Vec3{X: 1, Z: 1})
	state.AddCombatant(c)
	s := NewMoveToLocation(1, geom.Vec3{X: 1, Z: 20}, 100)

	for i := 0; i < 100 && !s.IsComplete(); i++ {
		events, ok := s.Tick(c, state)
		if !ok {
			t.Fatal("expected move-to-location tick to succeed")
		}
		if len(events) == 0 {
			t.Fatal("expected a position update event each tick")
		}
	}
	if !s.IsComplete() {
		t.Fatal("expected move-to-location to eventually complete")
	}
}

func TestPickUpBallFailsWhenAlreadyHeld(t *testing.T) {
	state := testState()
	state.AddBall(&world.Ball{ID: 1, HasHolder: true, HeldBy: 2})
	c := testCombatant(1, geom.Vec3{})
	s := NewPickUpBall(1, 1)

	events, ok := s.Tick(c, state)
	if ok {
		t.Fatal("expected pickup to fail when ball already held")
	}
	if events != nil {
		t.Fatal("expected no events on failed pickup")
	}
	if !s.IsComplete() {
		t.Fatal("expected strategy to mark complete on failure")
	}
}

func TestShoveCombatantProducesForceAndStun(t *testing.T) {
	state := testState()
	self := testCombatant(1, geom.Vec3{X: 0, Z: 0})
	target := testCombatant(2, geom.Vec3{X: 1, Z: 0})
	state.AddCombatant(self)
	state.AddCombatant(target)

	s := NewShoveCombatant(1, 2)
	events, ok := s.Tick(self, state)
	if !ok || len(events) != 2 {
		t.Fatalf("expected force + stun events, got %d", len(events))
	}
}

func TestThrowBallAtTargetNoopsWithoutBall(t *testing.T) {
	state := testState()
	self := testCombatant(1, geom.Vec3{})
	self.HasBall = false
	s := NewThrowBallAtTarget(1, 2)

	events, ok := s.Tick(self, state)
	if ok || events != nil {
		t.Fatal("expected throw to no-op when not authoritatively holding a ball")
	}
}

func TestThrowBallAtTargetDistinguishesTeams(t *testing.T) {
	state := testState()
	self := testCombatant(1, geom.Vec3{})
	self.HasBall = true
	self.HoldingBall = 7
	self.Team = world.TeamHome
	enemy := testCombatant(2, geom.Vec3{X: 10})
	enemy.Team = world.TeamAway
	state.AddCombatant(self)
	state.AddCombatant(enemy)
	state.AddBall(&world.Ball{ID: 7, Position: geom.Vec3{}})

	s := NewThrowBallAtTarget(1, 2)
	events, ok := s.Tick(self, state)
	if !ok || len(events) != 1 {
		t.Fatal("expected a single throw event")
	}
	if _, isEnemyThrow := events[0].Event.(world.BallThrownAtEnemy); !isEnemyThrow {
		t.Fatal("expected BallThrownAtEnemy for opposing teams")
	}
}
