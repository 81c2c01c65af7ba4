package ai

import (
	"testing"

	"matchsim/internal/beliefs"
	"matchsim/internal/config"
	"matchsim/internal/geom"
	"matchsim/internal/navmesh"
	"matchsim/internal/sensors"
	"matchsim/internal/world"
)

func newState() *world.MatchState {
	nm := navmesh.NewNavmesh(0, 0, 100, 100, 1, []navmesh.Region{
		{Kind: navmesh.Walkable, MinX: 0, MinZ: 0, MaxX: 100, MaxZ: 100},
	})
	return world.NewMatchState(config.DefaultSimulation(), world.Arena{}, nm, [32]byte{7})
}

func newCombatant(id world.CombatantId, team world.TeamId, pos geom.Vec3) *world.Combatant {
	return &world.Combatant{
		ID:       id,
		Team:     team,
		Position: pos,
		Beliefs:  beliefs.NewBeliefSet(),
		Attributes: world.Attributes{
			Strength: 12, Dexterity: 8, Constitution: 5, Presence: 3,
			Coordination: 6, Weight: 70, MoveSpeed: 5,
		},
	}
}

func TestIdleGoalAlwaysLive(t *testing.T) {
	g := IdleGoal()
	if !g.IsLive(beliefs.NewBeliefSet()) {
		t.Fatal("expected idle goal to be live with no beliefs")
	}
}

func TestGoalsPrioritiesDerivedFromAttributes(t *testing.T) {
	state := newState()
	self := newCombatant(1, world.TeamHome, geom.Vec3{})
	state.AddCombatant(self)

	goals := Goals(self, state)
	var score, throw, shove *Goal
	for _, g := range goals {
		switch g.Name() {
		case "Score Points":
			score = g
		case "Throw Ball At Enemies":
			throw = g
		case "Shove Combatants":
			shove = g
		}
	}
	if score == nil || score.Priority() != 8 {
		t.Fatalf("expected Score Points priority 8 (floor Dexterity), got %+v", score)
	}
	if throw == nil || throw.Priority() != 18 {
		t.Fatalf("expected Throw priority 18 (floor Coordination+Strength), got %+v", throw)
	}
	if shove == nil || shove.Priority() != 8 {
		t.Fatalf("expected Shove priority 8 (floor Constitution+Presence), got %+v", shove)
	}
}

func TestActionsEnumeratesMoveToEachBallAndPlate(t *testing.T) {
	state := newState()
	self := newCombatant(1, world.TeamHome, geom.Vec3{})
	state.AddCombatant(self)
	state.AddBall(&world.Ball{ID: 1, Position: geom.Vec3{X: 10}})
	state.AddPlate(&world.Plate{ID: 1, Position: geom.Vec3{X: 20}, Radius: 3})

	actions := Actions(self, state)
	var sawMoveToBall, sawMoveToPlate, sawPickUp bool
	for _, a := range actions {
		switch a.Name() {
		case "Move to Ball 1":
			sawMoveToBall = true
		case "Move to Plate 1":
			sawMoveToPlate = true
		case "Pick Up Ball 1":
			sawPickUp = true
		}
	}
	if !sawMoveToBall || !sawMoveToPlate || !sawPickUp {
		t.Fatalf("expected move-to-ball, move-to-plate, and pick-up actions; got %d actions", len(actions))
	}
}

// The planner's can_satisfy-AND-can_perform gate means an action is only
// selectable when it can run immediately — so a goal closes by picking
// whichever ready action promises the desired belief, rather than by true
// multi-step backward chaining.
func TestPlanSelectsMoveToBallForInRangeGoal(t *testing.T) {
	state := newState()
	self := newCombatant(1, world.TeamHome, geom.Vec3{})
	state.AddCombatant(self)
	state.AddBall(&world.Ball{ID: 1, Position: geom.Vec3{X: 5}})
	self.Beliefs.AddUnsourced(beliefs.BallPosition{Ball: 1, Pos: geom.Vec3{X: 5}}, nil)

	actions := Actions(self, state)
	goal := NewGoalBuilder("Get In Range", 100).
		DesiredBelief(beliefs.InBallPickupRangeTest{Ball: beliefs.Exactly(world.BallId(1)), Combatant: beliefs.Exactly(self.ID)}).
		Build()

	plan := Plan([]*Goal{goal}, actions, self.Beliefs)
	if len(plan) == 0 {
		t.Fatal("expected a plan to move towards the ball")
	}
	top, ok := topOfStack(plan)
	if !ok {
		t.Fatal("expected a top-of-stack action")
	}
	if top.Name() != "Move to Ball 1" {
		t.Fatalf("expected the move-to-ball action to be selected, got %q", top.Name())
	}
}

func topOfStack(plan []world.Action) (world.Action, bool) {
	if len(plan) == 0 {
		return nil, false
	}
	return plan[len(plan)-1], true
}

func TestTickStunnedRecoveryRollSucceedsWithHighConstitution(t *testing.T) {
	state := newState()
	self := newCombatant(1, world.TeamHome, geom.Vec3{})
	self.Stunned = true
	self.Attributes.Constitution = 1000
	state.AddCombatant(self)

	events := Tick(self, state)
	if len(events) != 1 {
		t.Fatalf("expected a single recovery event: a roll in [0, 1000] never exceeds constitution 1000, got %d", len(events))
	}
}

func TestTickIdlePlansLookAround(t *testing.T) {
	state := newState()
	self := newCombatant(1, world.TeamHome, geom.Vec3{})
	self.Sensors = []world.CombatantSensor{
		{Source: 1, Sensor: sensors.NewFieldOfView(1, 20)},
	}
	state.AddCombatant(self)

	_ = Tick(self, state)
	if self.CompletedAction == nil || self.CompletedAction.Name() != "Look Around" {
		t.Fatalf("expected the idle goal's Look Around action to complete in one tick, got %+v", self.CompletedAction)
	}
}
