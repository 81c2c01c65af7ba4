// Package matchlog implements the persisted MatchLog serialisation: a
// compact binary encoding with a stable variant-tag contract and
// significant field order, plus an async rate-limited disk writer for
// streaming ticks out as a match runs. The format is hand-rolled rather than
// gob or protobuf — see DESIGN.md for why: gob's wire format is tied to
// Go's reflection-driven type descriptors (not a portable contract across
// language boundaries, and liable to shift between compiler versions), and
// protobuf needs a code-generation step this project doesn't run. A fixed
// tag-and-field-order encoder is the smallest thing that keeps event
// variant tags part of the format's contract.
package matchlog

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"matchsim/internal/beliefs"
	"matchsim/internal/geom"
	"matchsim/internal/match"
	"matchsim/internal/world"
)

// FormatVersion is written as the first byte of every encoded MatchLog.
// Bump it whenever a field is added, removed, or reordered.
const FormatVersion uint8 = 1

// eventTag is the stable wire identifier for a SimulationEvent variant.
// Reordering this block changes the format contract — append only.
type eventTag uint8

const (
	tagBallPositionUpdate eventTag = iota
	tagCombatantPositionUpdate
	tagArenaObjectPositionUpdate
	tagCombatantOnPlate
	tagCombatantOffPlate
	tagCombatantPickedUpBall
	tagBallThrownAtEnemy
	tagBallThrownAtTeammate
	tagBallCollisionEnemy
	tagBallCollisionArena
	tagBallExplosion
	tagBallExplosionForceApplied
	tagCombatantShoveForceApplied
	tagCombatantStunned
	tagPointsScoredByCombatant
	tagBroadcastBelief
	tagThrownBallCaught
)

// Encode serialises a MatchLog to its binary wire format.
func Encode(log match.MatchLog) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(FormatVersion)

	writeString(&buf, log.MatchID)
	buf.Write(log.Seed[:])
	writeInt64(&buf, int64(log.HomeScore))
	writeInt64(&buf, int64(log.AwayScore))

	writeUint64(&buf, uint64(len(log.Ticks)))
	for _, t := range log.Ticks {
		if err := encodeTick(&buf, t); err != nil {
			return nil, err
		}
	}

	writeUint64(&buf, uint64(len(log.CombatantStatlines)))
	for _, sl := range log.CombatantStatlines {
		writeUint32(&buf, uint32(sl.Combatant))
		writeInt64(&buf, int64(sl.Points))
		writeInt64(&buf, int64(sl.BallsThrown))
		writeInt64(&buf, int64(sl.BallsCaught))
		writeInt64(&buf, int64(sl.Shoves))
		writeInt64(&buf, int64(sl.StunsTaken))
	}

	writeInt64(&buf, int64(log.Performance.Elapsed))
	return buf.Bytes(), nil
}

func encodeTick(buf *bytes.Buffer, t match.Tick) error {
	writeUint64(buf, uint64(t.TickNumber))
	writeInt64(buf, int64(t.Timings.Elapsed))
	writeBool(buf, t.IsHalftime)
	writeBool(buf, t.IsEndOfGame)

	writeUint64(buf, uint64(len(t.SimulationEvents)))
	for _, evt := range t.SimulationEvents {
		if err := encodeEvent(buf, evt); err != nil {
			return err
		}
	}
	return nil
}

func encodeEvent(buf *bytes.Buffer, evt world.SimulationEvent) error {
	switch e := evt.(type) {
	case world.BallPositionUpdate:
		buf.WriteByte(byte(tagBallPositionUpdate))
		writeUint32(buf, uint32(e.Ball))
		writeVec3(buf, e.Pos)
		writeVec3(buf, e.Velocity)

	case world.CombatantPositionUpdate:
		buf.WriteByte(byte(tagCombatantPositionUpdate))
		writeUint32(buf, uint32(e.Combatant))
		writeVec3(buf, e.Pos)

	case world.ArenaObjectPositionUpdate:
		buf.WriteByte(byte(tagArenaObjectPositionUpdate))
		writeInt64(buf, int64(e.FeatureIndex))
		writeVec3(buf, e.Pos)

	case world.CombatantOnPlate:
		buf.WriteByte(byte(tagCombatantOnPlate))
		writeUint32(buf, uint32(e.Combatant))
		writeUint32(buf, uint32(e.Plate))

	case world.CombatantOffPlate:
		buf.WriteByte(byte(tagCombatantOffPlate))
		writeUint32(buf, uint32(e.Combatant))
		writeUint32(buf, uint32(e.Plate))

	case world.CombatantPickedUpBall:
		buf.WriteByte(byte(tagCombatantPickedUpBall))
		writeUint32(buf, uint32(e.Combatant))
		writeUint32(buf, uint32(e.Ball))

	case world.BallThrownAtEnemy:
		buf.WriteByte(byte(tagBallThrownAtEnemy))
		writeUint32(buf, uint32(e.Thrower))
		writeUint32(buf, uint32(e.Target))
		writeUint32(buf, uint32(e.Ball))
		writeVec3(buf, e.Impulse)

	case world.BallThrownAtTeammate:
		buf.WriteByte(byte(tagBallThrownAtTeammate))
		writeUint32(buf, uint32(e.Thrower))
		writeUint32(buf, uint32(e.Target))
		writeUint32(buf, uint32(e.Ball))
		writeVec3(buf, e.Impulse)

	case world.BallCollisionEnemy:
		buf.WriteByte(byte(tagBallCollisionEnemy))
		writeUint32(buf, uint32(e.Ball))
		writeUint32(buf, uint32(e.Combatant))

	case world.BallCollisionArena:
		buf.WriteByte(byte(tagBallCollisionArena))
		writeUint32(buf, uint32(e.Ball))

	case world.BallExplosion:
		buf.WriteByte(byte(tagBallExplosion))
		writeUint32(buf, uint32(e.Ball))

	case world.BallExplosionForceApplied:
		buf.WriteByte(byte(tagBallExplosionForceApplied))
		writeUint32(buf, uint32(e.Ball))
		writeUint32(buf, uint32(e.Target))
		writeVec3(buf, e.Direction)
		writeFloat64(buf, e.Magnitude)

	case world.CombatantShoveForceApplied:
		buf.WriteByte(byte(tagCombatantShoveForceApplied))
		writeUint32(buf, uint32(e.Source))
		writeUint32(buf, uint32(e.Target))
		writeVec3(buf, e.Direction)
		writeFloat64(buf, e.Magnitude)

	case world.CombatantStunned:
		buf.WriteByte(byte(tagCombatantStunned))
		writeUint32(buf, uint32(e.Combatant))
		writeBool(buf, e.Start)

	case world.PointsScoredByCombatant:
		buf.WriteByte(byte(tagPointsScoredByCombatant))
		writeUint32(buf, uint32(e.Combatant))
		writeUint32(buf, uint32(e.Team))
		writeInt64(buf, int64(e.Points))

	case world.BroadcastBelief:
		buf.WriteByte(byte(tagBroadcastBelief))
		writeUint32(buf, uint32(e.From))
		if err := encodeBelief(buf, e.Belief); err != nil {
			return err
		}

	case world.ThrownBallCaught:
		buf.WriteByte(byte(tagThrownBallCaught))
		writeUint32(buf, uint32(e.Ball))
		writeUint32(buf, uint32(e.Thrower))
		writeUint32(buf, uint32(e.Combatant))

	default:
		return fmt.Errorf("matchlog: unknown event type %T", evt)
	}
	return nil
}

// encodeBelief writes a tagged belief value so BroadcastBelief round-trips
// in full rather than carrying only its source, matching the same
// tag-then-fields scheme as encodeEvent. Tags follow beliefs.BeliefKind's
// declared order — append only, same format-contract rule as eventTag.
func encodeBelief(buf *bytes.Buffer, b beliefs.Belief) error {
	buf.WriteByte(byte(b.Kind()))
	switch v := b.(type) {
	case beliefs.BallPosition:
		writeUint32(buf, uint32(v.Ball))
		writeVec3(buf, v.Pos)
		writeVec3(buf, v.Velocity)
	case beliefs.CombatantPosition:
		writeUint32(buf, uint32(v.Combatant))
		writeVec3(buf, v.Pos)
	case beliefs.PlatePosition:
		writeUint32(buf, uint32(v.Plate))
		writeVec3(buf, v.Pos)
	case beliefs.OnPlate:
		writeUint32(buf, uint32(v.Plate))
		writeUint32(buf, uint32(v.Combatant))
	case beliefs.HeldBall:
		writeUint32(buf, uint32(v.Ball))
		writeUint32(buf, uint32(v.Combatant))
	case beliefs.InBallPickupRange:
		writeUint32(buf, uint32(v.Ball))
		writeUint32(buf, uint32(v.Combatant))
	case beliefs.CanReachCombatant:
		writeUint32(buf, uint32(v.Self))
		writeUint32(buf, uint32(v.Target))
	case beliefs.DirectLineOfSightToCombatant:
		writeUint32(buf, uint32(v.Self))
		writeUint32(buf, uint32(v.Other))
	case beliefs.BallIsFlying:
		writeUint32(buf, uint32(v.Ball))
	case beliefs.BallThrownAtCombatant:
		writeUint32(buf, uint32(v.Ball))
		writeUint32(buf, uint32(v.Thrower))
		writeUint32(buf, uint32(v.Target))
		writeBool(buf, v.TargetOnPlate)
	case beliefs.BallCaught:
		writeUint32(buf, uint32(v.Ball))
		writeUint32(buf, uint32(v.Combatant))
		writeUint32(buf, uint32(v.Thrower))
	case beliefs.CombatantIsStunned:
		writeUint32(buf, uint32(v.Combatant))
	case beliefs.CombatantShoved:
		writeUint32(buf, uint32(v.Combatant))
		writeBool(buf, v.OnPlate)
	case beliefs.ScannedEnvironment:
		writeUint64(buf, uint64(v.Tick))
	default:
		return fmt.Errorf("matchlog: unknown belief type %T", b)
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) {
	writeUint64(buf, uint64(len(s)))
	buf.WriteString(s)
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func writeInt64(buf *bytes.Buffer, v int64) { writeUint64(buf, uint64(v)) }

func writeFloat64(buf *bytes.Buffer, v float64) { writeUint64(buf, math.Float64bits(v)) }

func writeVec3(buf *bytes.Buffer, v geom.Vec3) {
	writeFloat64(buf, v.X)
	writeFloat64(buf, v.Y)
	writeFloat64(buf, v.Z)
}

func writeBool(buf *bytes.Buffer, v bool) {
	if v {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
}
