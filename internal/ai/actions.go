package ai

import (
	"fmt"

	"matchsim/internal/beliefs"
	"matchsim/internal/geom"
	"matchsim/internal/ids"
	"matchsim/internal/strategies"
	"matchsim/internal/world"
)

// Hardcoded action-cost weights.
const (
	moveToLocationWeight = 0.8
	moveToBallWeight     = 0.4
	shoveCost            = 15.0
	pickupCost           = 1.0
	catchCost            = 1.0
	minThrowDistance     = 5.0
	lookAroundCost       = 2.0
)

// Actions enumerates every action the combatant could add to a plan this
// tick: move-to-plate, look-for/move-to/shove each other combatant,
// move-to/pick-up/catch each ball, and pass/throw it at every teammate or
// enemy in range.
func Actions(combatant *world.Combatant, state *world.MatchState) []world.Action {
	var out []world.Action
	selfPos := combatant.Position
	moveSpeed := combatant.Attributes.MoveSpeed
	if moveSpeed <= 0 {
		moveSpeed = 1
	}

	// Look Around is available unconditionally so the idle goal always has a
	// way to close even when no other combatant is in range to be scanned
	// by "Look For Combatant" — otherwise LookAroundStrategy would be
	// unreachable from the action enumerator.
	out = append(out, NewActionBuilder(
		"Look Around",
		lookAroundCost,
		strategies.NewLookAround(),
	).
		Completion(beliefs.ScannedEnvironment{Tick: state.CurrentTick}).
		Consumes(beliefs.ScannedEnvironmentTest{}).
		Build())

	for _, plate := range state.Plates() {
		dist := geom.Distance(plate.Position, selfPos)
		out = append(out, NewActionBuilder(
			fmt.Sprintf("Move to Plate %d", plate.ID),
			moveToLocationWeight*dist/moveSpeed,
			strategies.NewMoveToLocation(combatant.ID, plate.Position, 400),
		).
			Promise(beliefs.OnPlate{Plate: plate.ID, Combatant: combatant.ID}).
			Build())
	}

	var enemyIDs, teammateIDs []ids.CombatantId
	for _, other := range state.Combatants() {
		if other.ID == combatant.ID {
			continue
		}
		if other.Team == combatant.Team {
			teammateIDs = append(teammateIDs, other.ID)
		} else {
			enemyIDs = append(enemyIDs, other.ID)
		}
	}

	for _, other := range state.Combatants() {
		if other.ID == combatant.ID {
			continue
		}
		otherID := other.ID
		dist := geom.Distance(other.Position, selfPos)

		out = append(out, NewActionBuilder(
			fmt.Sprintf("Look For Combatant %d", otherID),
			moveToLocationWeight*dist/moveSpeed,
			strategies.NewMoveToLocationTrackingCombatant(combatant.ID, otherID),
		).
			Completion(beliefs.ScannedEnvironment{Tick: state.CurrentTick}).
			Promise(beliefs.DirectLineOfSightToCombatant{Self: combatant.ID, Other: otherID}).
			Consumes(beliefs.ScannedEnvironmentTest{}).
			Build())

		out = append(out, NewActionBuilder(
			fmt.Sprintf("Move to Combatant %d", otherID),
			moveToLocationWeight*dist/moveSpeed,
			strategies.NewMoveToLocationTrackingCombatant(combatant.ID, otherID),
		).
			Promise(beliefs.CanReachCombatant{Self: combatant.ID, Target: otherID}).
			Build())

		out = append(out, NewActionBuilder(
			fmt.Sprintf("Shove Combatant %d", otherID),
			shoveCost,
			strategies.NewShoveCombatant(combatant.ID, otherID),
		).
			Prerequisite(beliefs.CanReachCombatantTest{
				Self:   beliefs.Exactly(combatant.ID),
				Target: beliefs.Exactly(otherID),
			}).
			Promise(beliefs.CombatantShoved{Combatant: otherID, OnPlate: other.OnPlate}).
			Consumes(beliefs.CombatantShovedTest{Combatant: beliefs.Exactly(otherID)}).
			Build())
	}

	for _, ball := range state.Balls() {
		ballID := ball.ID
		dist := geom.Distance(ball.Position, selfPos)

		out = append(out, NewActionBuilder(
			fmt.Sprintf("Move to Ball %d", ballID),
			moveToBallWeight*dist/moveSpeed,
			strategies.NewMoveToLocation(combatant.ID, ball.Position, 400),
		).
			Prerequisite(beliefs.BallPositionTest{Ball: beliefs.Exactly(ballID)}).
			Prohibition(beliefs.HeldBallTest{Combatant: beliefs.Exactly(combatant.ID)}).
			Promise(beliefs.InBallPickupRange{Ball: ballID, Combatant: combatant.ID}).
			Build())

		out = append(out, NewActionBuilder(
			fmt.Sprintf("Pick Up Ball %d", ballID),
			pickupCost,
			strategies.NewPickUpBall(combatant.ID, ballID),
		).
			Prerequisite(beliefs.InBallPickupRangeTest{
				Combatant: beliefs.Exactly(combatant.ID),
				Ball:      beliefs.Exactly(ballID),
			}).
			Prohibition(beliefs.HeldBallTest{Combatant: beliefs.Exactly(combatant.ID)}).
			Prohibition(beliefs.HeldBallTest{Ball: beliefs.Exactly(ballID)}).
			Prohibition(beliefs.BallIsFlyingTest{Ball: beliefs.Exactly(ballID)}).
			Completion(beliefs.HeldBall{Ball: ballID, Combatant: combatant.ID}).
			Build())

		for _, other := range state.Combatants() {
			if other.ID == combatant.ID {
				continue
			}
			out = append(out, NewActionBuilder(
				fmt.Sprintf("Catch Ball %d", ballID),
				catchCost,
				strategies.NewPickUpBall(combatant.ID, ballID),
			).
				Prerequisite(beliefs.InBallPickupRangeTest{
					Combatant: beliefs.Exactly(combatant.ID),
					Ball:      beliefs.Exactly(ballID),
				}).
				Prerequisite(beliefs.BallThrownAtCombatantTest{
					Target: beliefs.Exactly(combatant.ID),
					Ball:   beliefs.Exactly(ballID),
				}).
				Prerequisite(beliefs.BallIsFlyingTest{Ball: beliefs.Exactly(ballID)}).
				Prohibition(beliefs.HeldBallTest{Combatant: beliefs.Exactly(combatant.ID)}).
				Prohibition(beliefs.HeldBallTest{Ball: beliefs.Exactly(ballID)}).
				Completion(beliefs.HeldBall{Ball: ballID, Combatant: combatant.ID}).
				Completion(beliefs.BallCaught{Ball: ballID, Combatant: combatant.ID, Thrower: other.ID}).
				Consumes(beliefs.BallIsFlyingTest{Ball: beliefs.Exactly(ballID)}).
				Consumes(beliefs.BallCaughtTest{
					Ball:      beliefs.Exactly(ballID),
					Combatant: beliefs.Exactly(combatant.ID),
				}).
				Build())
		}

		for _, mate := range state.Combatants() {
			if mate.ID == combatant.ID || mate.Team != combatant.Team {
				continue
			}
			mateID, mateOnPlate := mate.ID, mate.OnPlate
			targetPos := mate.Position
			belief := beliefs.BallThrownAtCombatant{
				Ball: ballID, Thrower: combatant.ID, Target: mateID, TargetOnPlate: mateOnPlate,
			}
			out = append(out, NewActionBuilder(
				fmt.Sprintf("Pass Ball %d to Combatant %d", ballID, mateID),
				10.0+5.0/geom.Distance(targetPos, selfPos),
				strategies.NewThrowBallAtTarget(combatant.ID, mateID),
			).
				Prerequisite(beliefs.HeldBallTest{
					Combatant: beliefs.Exactly(combatant.ID),
					Ball:      beliefs.Exactly(ballID),
				}).
				Prerequisite(beliefs.DirectLineOfSightToCombatantTest{
					Self:  beliefs.Exactly(combatant.ID),
					Other: beliefs.Exactly(mateID),
				}).
				Prerequisite(beliefs.DirectLineOfSightToCombatantTest{Other: beliefs.In(teammateIDs...)}).
				Prohibition(beliefs.CombatantPositionTest{
					Combatant: beliefs.In(enemyIDs...),
					Pos:       beliefs.LambdaEq(nearerThan(selfPos, minThrowDistance)),
				}).
				Prohibition(beliefs.CombatantIsStunnedTest{Combatant: beliefs.Exactly(mateID)}).
				Prerequisite(beliefs.CombatantPositionTest{
					Combatant: beliefs.Exactly(mateID),
					Pos:       beliefs.LambdaEq(atLeastAsFarAs(selfPos, minThrowDistance)),
				}).
				Prohibition(beliefs.HeldBallTest{Combatant: beliefs.Exactly(mateID)}).
				Completion(belief).
				Broadcast(belief).
				Consumes(beliefs.HeldBallTest{
					Combatant: beliefs.Exactly(combatant.ID),
					Ball:      beliefs.Exactly(ballID),
				}).
				Consumes(beliefs.BallThrownAtCombatantTest{
					Ball:    beliefs.Exactly(ballID),
					Thrower: beliefs.Exactly(combatant.ID),
					Target:  beliefs.Exactly(mateID),
				}).
				Build())
		}

		for _, enemy := range state.Combatants() {
			if enemy.ID == combatant.ID || enemy.Team == combatant.Team {
				continue
			}
			enemyID, enemyOnPlate := enemy.ID, enemy.OnPlate
			targetPos := enemy.Position
			belief := beliefs.BallThrownAtCombatant{
				Ball: ballID, Thrower: combatant.ID, Target: enemyID, TargetOnPlate: enemyOnPlate,
			}
			out = append(out, NewActionBuilder(
				fmt.Sprintf("Throw Ball %d at Combatant %d", ballID, enemyID),
				10.0+5.0/geom.Distance(targetPos, selfPos),
				strategies.NewThrowBallAtTarget(combatant.ID, enemyID),
			).
				Prerequisite(beliefs.HeldBallTest{
					Combatant: beliefs.Exactly(combatant.ID),
					Ball:      beliefs.Exactly(ballID),
				}).
				Prerequisite(beliefs.DirectLineOfSightToCombatantTest{
					Self:  beliefs.Exactly(combatant.ID),
					Other: beliefs.Exactly(enemyID),
				}).
				Prerequisite(beliefs.DirectLineOfSightToCombatantTest{Other: beliefs.In(enemyIDs...)}).
				Prohibition(beliefs.CombatantPositionTest{
					Combatant: beliefs.In(enemyIDs...),
					Pos:       beliefs.LambdaEq(nearerThan(selfPos, minThrowDistance)),
				}).
				Completion(belief).
				Broadcast(belief).
				Consumes(beliefs.HeldBallTest{
					Combatant: beliefs.Exactly(combatant.ID),
					Ball:      beliefs.Exactly(ballID),
				}).
				Consumes(beliefs.BallThrownAtCombatantTest{
					Ball:    beliefs.Exactly(ballID),
					Thrower: beliefs.Exactly(combatant.ID),
					Target:  beliefs.Exactly(enemyID),
				}).
				Build())
		}
	}

	return out
}

// nearerThan/atLeastAsFarAs back the throw-safety prohibition/prerequisite:
// a believed enemy within minThrowDistance of the thrower blocks both passes
// and throws, and a pass needs its teammate at least that far away.
func nearerThan(self geom.Vec3, min float64) func(geom.Vec3) bool {
	return func(pos geom.Vec3) bool { return geom.Distance(pos, self) < min }
}

func atLeastAsFarAs(self geom.Vec3, min float64) func(geom.Vec3) bool {
	return func(pos geom.Vec3) bool { return geom.Distance(pos, self) >= min }
}
