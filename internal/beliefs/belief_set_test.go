package beliefs

import (
	"testing"

	"matchsim/internal/geom"
	"matchsim/internal/ids"
)

func tick(n ids.TickNumber) *ids.TickNumber { return &n }

func TestAddSourcedReplacesEqualUniqueKey(t *testing.T) {
	bs := NewBeliefSet()
	source := ids.SourceId(1)

	bs.AddSourced(source, CombatantPosition{Combatant: 7, Pos: zeroVec()}, tick(10))
	bs.AddSourced(source, CombatantPosition{Combatant: 7, Pos: oneVec()}, tick(20))

	all := bs.Beliefs()
	if len(all) != 1 {
		t.Fatalf("expected exactly one belief after replace, got %d", len(all))
	}
	got := all[0].(CombatantPosition)
	if got.Pos != oneVec() {
		t.Fatalf("expected newer belief to win, got %+v", got)
	}
}

func TestNoTwoBeliefsShareSourceAndUniqueKey(t *testing.T) {
	bs := NewBeliefSet()
	source := ids.SourceId(1)
	for i := 0; i < 5; i++ {
		bs.AddSourced(source, HeldBall{Ball: 1, Combatant: 2}, nil)
	}
	if got := bs.Len(); got != 1 {
		t.Fatalf("expected repeated inserts with equal key to collapse to 1, got %d", got)
	}
}

func TestExpireRemovesAtOrBeforeCurrentTick(t *testing.T) {
	bs := NewBeliefSet()
	bs.AddSourced(1, BallIsFlying{Ball: 3}, tick(5))

	bs.Expire(4)
	if bs.Len() != 1 {
		t.Fatalf("belief with expiry 5 should still be visible on tick 4")
	}

	bs.Expire(5)
	if bs.Len() != 0 {
		t.Fatalf("belief with expiry 5 should be gone on tick 5")
	}
}

func TestRemoveBeliefsByTest(t *testing.T) {
	bs := NewBeliefSet()
	bs.AddUnsourced(CombatantIsStunned{Combatant: 1}, nil)
	bs.AddUnsourced(CombatantIsStunned{Combatant: 2}, nil)

	bs.RemoveBeliefsByTest(CombatantIsStunnedTest{Combatant: Exactly[ids.CombatantId](1)})

	all := bs.Beliefs()
	if len(all) != 1 {
		t.Fatalf("expected one belief to remain, got %d", len(all))
	}
	if got := all[0].(CombatantIsStunned).Combatant; got != 2 {
		t.Fatalf("expected combatant 2 to survive, got %d", got)
	}
}

func TestCanSatisfyExactBeliefAsTest(t *testing.T) {
	bs := NewBeliefSet()
	b := OnPlate{Plate: 1, Combatant: 2}
	bs.AddUnsourced(b, nil)

	if !bs.CanSatisfy(b) {
		t.Fatalf("a concrete belief must satisfy itself used as a test")
	}
}

func TestCanSatisfyPatternTest(t *testing.T) {
	bs := NewBeliefSet()
	bs.AddUnsourced(HeldBall{Ball: 9, Combatant: 4}, nil)

	test := HeldBallTest{Combatant: Exactly[ids.CombatantId](4)}
	if !bs.CanSatisfy(test) {
		t.Fatalf("expected pattern test over combatant field to match")
	}

	missing := HeldBallTest{Combatant: Exactly[ids.CombatantId](5)}
	if bs.CanSatisfy(missing) {
		t.Fatalf("expected pattern test for a different combatant to not match")
	}
}

func zeroVec() geom.Vec3 { return geom.Vec3{} }
func oneVec() geom.Vec3  { return geom.Vec3{X: 1} }
