package beliefs

import (
	"matchsim/internal/geom"
	"matchsim/internal/ids"
)

// BeliefKind tags each concrete Belief variant. Declared starting at 1 so a
// zero BeliefKind never aliases a real variant.
type BeliefKind uint8

const (
	KindBallPosition BeliefKind = iota + 1
	KindCombatantPosition
	KindPlatePosition
	KindOnPlate
	KindHeldBall
	KindInBallPickupRange
	KindCanReachCombatant
	KindDirectLineOfSightToCombatant
	KindBallIsFlying
	KindBallThrownAtCombatant
	KindBallCaught
	KindCombatantIsStunned
	KindCombatantShoved
	KindScannedEnvironment
)

// Belief is the tagged union of the fourteen belief variants. Each variant
// is its own comparable struct type implementing SatisfiabilityTest (by
// exact-equality — a concrete belief value is itself a valid test) and
// Uniqueness (the subset-of-fields identity key).
type Belief interface {
	SatisfiabilityTest
	Uniqueness
	Kind() BeliefKind
}

func packKey(k BeliefKind, a, b uint32) uint64 {
	return uint64(k)<<56 | uint64(a)<<28 | uint64(b&0x0FFFFFFF)
}

// BallPosition{ball, pos, velocity}
type BallPosition struct {
	Ball     ids.BallId
	Pos      geom.Vec3
	Velocity geom.Vec3
}

func (b BallPosition) Kind() BeliefKind { return KindBallPosition }
func (b BallPosition) UniqueKey() uint64 {
	return packKey(KindBallPosition, uint32(b.Ball), 0)
}
func (b BallPosition) IsSameVariant(o Belief) bool { _, ok := o.(BallPosition); return ok }
func (b BallPosition) SatisfiedBy(o Belief) bool   { v, ok := o.(BallPosition); return ok && v == b }

type BallPositionTest struct {
	Ball     OrderedField[ids.BallId]
	Pos      EqField[geom.Vec3]
	Velocity EqField[geom.Vec3]
}

func (t BallPositionTest) IsSameVariant(o Belief) bool { _, ok := o.(BallPosition); return ok }
func (t BallPositionTest) SatisfiedBy(o Belief) bool {
	v, ok := o.(BallPosition)
	return ok && t.Ball.SatisfiedBy(v.Ball) && t.Pos.SatisfiedBy(v.Pos) && t.Velocity.SatisfiedBy(v.Velocity)
}

// CombatantPosition{combatant, pos}
type CombatantPosition struct {
	Combatant ids.CombatantId
	Pos       geom.Vec3
}

func (b CombatantPosition) Kind() BeliefKind { return KindCombatantPosition }
func (b CombatantPosition) UniqueKey() uint64 {
	return packKey(KindCombatantPosition, uint32(b.Combatant), 0)
}
func (b CombatantPosition) IsSameVariant(o Belief) bool { _, ok := o.(CombatantPosition); return ok }
func (b CombatantPosition) SatisfiedBy(o Belief) bool {
	v, ok := o.(CombatantPosition)
	return ok && v == b
}

type CombatantPositionTest struct {
	Combatant OrderedField[ids.CombatantId]
	Pos       EqField[geom.Vec3]
}

func (t CombatantPositionTest) IsSameVariant(o Belief) bool {
	_, ok := o.(CombatantPosition)
	return ok
}
func (t CombatantPositionTest) SatisfiedBy(o Belief) bool {
	v, ok := o.(CombatantPosition)
	return ok && t.Combatant.SatisfiedBy(v.Combatant) && t.Pos.SatisfiedBy(v.Pos)
}

// PlatePosition{plate, pos}
type PlatePosition struct {
	Plate ids.PlateId
	Pos   geom.Vec3
}

func (b PlatePosition) Kind() BeliefKind { return KindPlatePosition }
func (b PlatePosition) UniqueKey() uint64 {
	return packKey(KindPlatePosition, uint32(b.Plate), 0)
}
func (b PlatePosition) IsSameVariant(o Belief) bool { _, ok := o.(PlatePosition); return ok }
func (b PlatePosition) SatisfiedBy(o Belief) bool   { v, ok := o.(PlatePosition); return ok && v == b }

type PlatePositionTest struct {
	Plate OrderedField[ids.PlateId]
	Pos   EqField[geom.Vec3]
}

func (t PlatePositionTest) IsSameVariant(o Belief) bool { _, ok := o.(PlatePosition); return ok }
func (t PlatePositionTest) SatisfiedBy(o Belief) bool {
	v, ok := o.(PlatePosition)
	return ok && t.Plate.SatisfiedBy(v.Plate) && t.Pos.SatisfiedBy(v.Pos)
}

// OnPlate{plate, combatant}
type OnPlate struct {
	Plate     ids.PlateId
	Combatant ids.CombatantId
}

func (b OnPlate) Kind() BeliefKind { return KindOnPlate }
func (b OnPlate) UniqueKey() uint64 {
	return packKey(KindOnPlate, uint32(b.Plate), uint32(b.Combatant))
}
func (b OnPlate) IsSameVariant(o Belief) bool { _, ok := o.(OnPlate); return ok }
func (b OnPlate) SatisfiedBy(o Belief) bool   { v, ok := o.(OnPlate); return ok && v == b }

type OnPlateTest struct {
	Plate     OrderedField[ids.PlateId]
	Combatant OrderedField[ids.CombatantId]
}

func (t OnPlateTest) IsSameVariant(o Belief) bool { _, ok := o.(OnPlate); return ok }
func (t OnPlateTest) SatisfiedBy(o Belief) bool {
	v, ok := o.(OnPlate)
	return ok && t.Plate.SatisfiedBy(v.Plate) && t.Combatant.SatisfiedBy(v.Combatant)
}

// HeldBall{ball, combatant}
type HeldBall struct {
	Ball      ids.BallId
	Combatant ids.CombatantId
}

func (b HeldBall) Kind() BeliefKind { return KindHeldBall }
func (b HeldBall) UniqueKey() uint64 {
	return packKey(KindHeldBall, uint32(b.Ball), uint32(b.Combatant))
}
func (b HeldBall) IsSameVariant(o Belief) bool { _, ok := o.(HeldBall); return ok }
func (b HeldBall) SatisfiedBy(o Belief) bool   { v, ok := o.(HeldBall); return ok && v == b }

type HeldBallTest struct {
	Ball      OrderedField[ids.BallId]
	Combatant OrderedField[ids.CombatantId]
}

func (t HeldBallTest) IsSameVariant(o Belief) bool { _, ok := o.(HeldBall); return ok }
func (t HeldBallTest) SatisfiedBy(o Belief) bool {
	v, ok := o.(HeldBall)
	return ok && t.Ball.SatisfiedBy(v.Ball) && t.Combatant.SatisfiedBy(v.Combatant)
}

// InBallPickupRange{ball, combatant}
type InBallPickupRange struct {
	Ball      ids.BallId
	Combatant ids.CombatantId
}

func (b InBallPickupRange) Kind() BeliefKind { return KindInBallPickupRange }
func (b InBallPickupRange) UniqueKey() uint64 {
	return packKey(KindInBallPickupRange, uint32(b.Ball), uint32(b.Combatant))
}
func (b InBallPickupRange) IsSameVariant(o Belief) bool { _, ok := o.(InBallPickupRange); return ok }
func (b InBallPickupRange) SatisfiedBy(o Belief) bool {
	v, ok := o.(InBallPickupRange)
	return ok && v == b
}

type InBallPickupRangeTest struct {
	Ball      OrderedField[ids.BallId]
	Combatant OrderedField[ids.CombatantId]
}

func (t InBallPickupRangeTest) IsSameVariant(o Belief) bool {
	_, ok := o.(InBallPickupRange)
	return ok
}
func (t InBallPickupRangeTest) SatisfiedBy(o Belief) bool {
	v, ok := o.(InBallPickupRange)
	return ok && t.Ball.SatisfiedBy(v.Ball) && t.Combatant.SatisfiedBy(v.Combatant)
}

// CanReachCombatant{self, target}
type CanReachCombatant struct {
	Self   ids.CombatantId
	Target ids.CombatantId
}

func (b CanReachCombatant) Kind() BeliefKind { return KindCanReachCombatant }
func (b CanReachCombatant) UniqueKey() uint64 {
	return packKey(KindCanReachCombatant, uint32(b.Self), uint32(b.Target))
}
func (b CanReachCombatant) IsSameVariant(o Belief) bool { _, ok := o.(CanReachCombatant); return ok }
func (b CanReachCombatant) SatisfiedBy(o Belief) bool {
	v, ok := o.(CanReachCombatant)
	return ok && v == b
}

type CanReachCombatantTest struct {
	Self   OrderedField[ids.CombatantId]
	Target OrderedField[ids.CombatantId]
}

func (t CanReachCombatantTest) IsSameVariant(o Belief) bool {
	_, ok := o.(CanReachCombatant)
	return ok
}
func (t CanReachCombatantTest) SatisfiedBy(o Belief) bool {
	v, ok := o.(CanReachCombatant)
	return ok && t.Self.SatisfiedBy(v.Self) && t.Target.SatisfiedBy(v.Target)
}

// DirectLineOfSightToCombatant{self, other}
type DirectLineOfSightToCombatant struct {
	Self  ids.CombatantId
	Other ids.CombatantId
}

func (b DirectLineOfSightToCombatant) Kind() BeliefKind { return KindDirectLineOfSightToCombatant }
func (b DirectLineOfSightToCombatant) UniqueKey() uint64 {
	return packKey(KindDirectLineOfSightToCombatant, uint32(b.Self), uint32(b.Other))
}
func (b DirectLineOfSightToCombatant) IsSameVariant(o Belief) bool {
	_, ok := o.(DirectLineOfSightToCombatant)
	return ok
}
func (b DirectLineOfSightToCombatant) SatisfiedBy(o Belief) bool {
	v, ok := o.(DirectLineOfSightToCombatant)
	return ok && v == b
}

type DirectLineOfSightToCombatantTest struct {
	Self  OrderedField[ids.CombatantId]
	Other OrderedField[ids.CombatantId]
}

func (t DirectLineOfSightToCombatantTest) IsSameVariant(o Belief) bool {
	_, ok := o.(DirectLineOfSightToCombatant)
	return ok
}
func (t DirectLineOfSightToCombatantTest) SatisfiedBy(o Belief) bool {
	v, ok := o.(DirectLineOfSightToCombatant)
	return ok && t.Self.SatisfiedBy(v.Self) && t.Other.SatisfiedBy(v.Other)
}

// BallIsFlying{ball}
type BallIsFlying struct {
	Ball ids.BallId
}

func (b BallIsFlying) Kind() BeliefKind  { return KindBallIsFlying }
func (b BallIsFlying) UniqueKey() uint64 { return packKey(KindBallIsFlying, uint32(b.Ball), 0) }
func (b BallIsFlying) IsSameVariant(o Belief) bool { _, ok := o.(BallIsFlying); return ok }
func (b BallIsFlying) SatisfiedBy(o Belief) bool   { v, ok := o.(BallIsFlying); return ok && v == b }

type BallIsFlyingTest struct {
	Ball OrderedField[ids.BallId]
}

func (t BallIsFlyingTest) IsSameVariant(o Belief) bool { _, ok := o.(BallIsFlying); return ok }
func (t BallIsFlyingTest) SatisfiedBy(o Belief) bool {
	v, ok := o.(BallIsFlying)
	return ok && t.Ball.SatisfiedBy(v.Ball)
}

// BallThrownAtCombatant{ball, thrower, target, target_on_plate}
type BallThrownAtCombatant struct {
	Ball          ids.BallId
	Thrower       ids.CombatantId
	Target        ids.CombatantId
	TargetOnPlate bool
}

func (b BallThrownAtCombatant) Kind() BeliefKind { return KindBallThrownAtCombatant }
func (b BallThrownAtCombatant) UniqueKey() uint64 {
	return packKey(KindBallThrownAtCombatant, uint32(b.Ball), 0)
}
func (b BallThrownAtCombatant) IsSameVariant(o Belief) bool {
	_, ok := o.(BallThrownAtCombatant)
	return ok
}
func (b BallThrownAtCombatant) SatisfiedBy(o Belief) bool {
	v, ok := o.(BallThrownAtCombatant)
	return ok && v == b
}

type BallThrownAtCombatantTest struct {
	Ball          OrderedField[ids.BallId]
	Thrower       OrderedField[ids.CombatantId]
	Target        OrderedField[ids.CombatantId]
	TargetOnPlate EqField[bool]
}

func (t BallThrownAtCombatantTest) IsSameVariant(o Belief) bool {
	_, ok := o.(BallThrownAtCombatant)
	return ok
}
func (t BallThrownAtCombatantTest) SatisfiedBy(o Belief) bool {
	v, ok := o.(BallThrownAtCombatant)
	return ok && t.Ball.SatisfiedBy(v.Ball) && t.Thrower.SatisfiedBy(v.Thrower) &&
		t.Target.SatisfiedBy(v.Target) && t.TargetOnPlate.SatisfiedBy(v.TargetOnPlate)
}

// BallCaught{ball, combatant, thrower}
type BallCaught struct {
	Ball      ids.BallId
	Combatant ids.CombatantId
	Thrower   ids.CombatantId
}

func (b BallCaught) Kind() BeliefKind  { return KindBallCaught }
func (b BallCaught) UniqueKey() uint64 { return packKey(KindBallCaught, uint32(b.Ball), 0) }
func (b BallCaught) IsSameVariant(o Belief) bool { _, ok := o.(BallCaught); return ok }
func (b BallCaught) SatisfiedBy(o Belief) bool   { v, ok := o.(BallCaught); return ok && v == b }

type BallCaughtTest struct {
	Ball      OrderedField[ids.BallId]
	Combatant OrderedField[ids.CombatantId]
	Thrower   OrderedField[ids.CombatantId]
}

func (t BallCaughtTest) IsSameVariant(o Belief) bool { _, ok := o.(BallCaught); return ok }
func (t BallCaughtTest) SatisfiedBy(o Belief) bool {
	v, ok := o.(BallCaught)
	return ok && t.Ball.SatisfiedBy(v.Ball) && t.Combatant.SatisfiedBy(v.Combatant) && t.Thrower.SatisfiedBy(v.Thrower)
}

// CombatantIsStunned{combatant}
type CombatantIsStunned struct {
	Combatant ids.CombatantId
}

func (b CombatantIsStunned) Kind() BeliefKind { return KindCombatantIsStunned }
func (b CombatantIsStunned) UniqueKey() uint64 {
	return packKey(KindCombatantIsStunned, uint32(b.Combatant), 0)
}
func (b CombatantIsStunned) IsSameVariant(o Belief) bool { _, ok := o.(CombatantIsStunned); return ok }
func (b CombatantIsStunned) SatisfiedBy(o Belief) bool {
	v, ok := o.(CombatantIsStunned)
	return ok && v == b
}

type CombatantIsStunnedTest struct {
	Combatant OrderedField[ids.CombatantId]
}

func (t CombatantIsStunnedTest) IsSameVariant(o Belief) bool {
	_, ok := o.(CombatantIsStunned)
	return ok
}
func (t CombatantIsStunnedTest) SatisfiedBy(o Belief) bool {
	v, ok := o.(CombatantIsStunned)
	return ok && t.Combatant.SatisfiedBy(v.Combatant)
}

// CombatantShoved{combatant, on_plate}
type CombatantShoved struct {
	Combatant ids.CombatantId
	OnPlate   bool
}

func (b CombatantShoved) Kind() BeliefKind { return KindCombatantShoved }
func (b CombatantShoved) UniqueKey() uint64 {
	return packKey(KindCombatantShoved, uint32(b.Combatant), 0)
}
func (b CombatantShoved) IsSameVariant(o Belief) bool { _, ok := o.(CombatantShoved); return ok }
func (b CombatantShoved) SatisfiedBy(o Belief) bool   { v, ok := o.(CombatantShoved); return ok && v == b }

type CombatantShovedTest struct {
	Combatant OrderedField[ids.CombatantId]
	OnPlate   EqField[bool]
}

func (t CombatantShovedTest) IsSameVariant(o Belief) bool { _, ok := o.(CombatantShoved); return ok }
func (t CombatantShovedTest) SatisfiedBy(o Belief) bool {
	v, ok := o.(CombatantShoved)
	return ok && t.Combatant.SatisfiedBy(v.Combatant) && t.OnPlate.SatisfiedBy(v.OnPlate)
}

// ScannedEnvironment{tick}. Its uniqueness key deliberately ignores the tick
// payload: at most one ScannedEnvironment belief is ever live per source, a
// fresh scan always replacing a stale one regardless of which tick produced
// either. See SPEC_FULL.md §1.3 for why.
type ScannedEnvironment struct {
	Tick ids.TickNumber
}

func (b ScannedEnvironment) Kind() BeliefKind  { return KindScannedEnvironment }
func (b ScannedEnvironment) UniqueKey() uint64 { return packKey(KindScannedEnvironment, 0, 0) }
func (b ScannedEnvironment) IsSameVariant(o Belief) bool { _, ok := o.(ScannedEnvironment); return ok }
func (b ScannedEnvironment) SatisfiedBy(o Belief) bool {
	v, ok := o.(ScannedEnvironment)
	return ok && v == b
}

type ScannedEnvironmentTest struct {
	Tick OrderedField[ids.TickNumber]
}

func (t ScannedEnvironmentTest) IsSameVariant(o Belief) bool {
	_, ok := o.(ScannedEnvironment)
	return ok
}
func (t ScannedEnvironmentTest) SatisfiedBy(o Belief) bool {
	v, ok := o.(ScannedEnvironment)
	return ok && t.Tick.SatisfiedBy(v.Tick)
}
