package matchlog

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"

	"matchsim/internal/beliefs"
	"matchsim/internal/geom"
	"matchsim/internal/ids"
	"matchsim/internal/match"
	"matchsim/internal/world"
)

// Decode parses a binary MatchLog produced by Encode, rejecting anything
// whose FormatVersion byte it doesn't recognise.
func Decode(data []byte) (match.MatchLog, error) {
	r := bytes.NewReader(data)

	version, err := r.ReadByte()
	if err != nil {
		return match.MatchLog{}, fmt.Errorf("matchlog: reading format version: %w", err)
	}
	if version != FormatVersion {
		return match.MatchLog{}, fmt.Errorf("matchlog: unsupported format version %d", version)
	}

	var log match.MatchLog
	if log.MatchID, err = readString(r); err != nil {
		return match.MatchLog{}, err
	}
	if _, err = io.ReadFull(r, log.Seed[:]); err != nil {
		return match.MatchLog{}, fmt.Errorf("matchlog: reading seed: %w", err)
	}
	homeScore, err := readInt64(r)
	if err != nil {
		return match.MatchLog{}, err
	}
	log.HomeScore = int(homeScore)
	awayScore, err := readInt64(r)
	if err != nil {
		return match.MatchLog{}, err
	}
	log.AwayScore = int(awayScore)

	tickCount, err := readUint64(r)
	if err != nil {
		return match.MatchLog{}, err
	}
	log.Ticks = make([]match.Tick, tickCount)
	for i := range log.Ticks {
		if log.Ticks[i], err = decodeTick(r); err != nil {
			return match.MatchLog{}, err
		}
	}

	statCount, err := readUint64(r)
	if err != nil {
		return match.MatchLog{}, err
	}
	log.CombatantStatlines = make([]match.Statline, statCount)
	for i := range log.CombatantStatlines {
		sl := &log.CombatantStatlines[i]
		combatant, err := readUint32(r)
		if err != nil {
			return match.MatchLog{}, err
		}
		sl.Combatant = world.CombatantId(combatant)
		if sl.Points, err = readIntField(r); err != nil {
			return match.MatchLog{}, err
		}
		if sl.BallsThrown, err = readIntField(r); err != nil {
			return match.MatchLog{}, err
		}
		if sl.BallsCaught, err = readIntField(r); err != nil {
			return match.MatchLog{}, err
		}
		if sl.Shoves, err = readIntField(r); err != nil {
			return match.MatchLog{}, err
		}
		if sl.StunsTaken, err = readIntField(r); err != nil {
			return match.MatchLog{}, err
		}
	}

	elapsed, err := readInt64(r)
	if err != nil {
		return match.MatchLog{}, err
	}
	log.Performance.Elapsed = timeDuration(elapsed)

	return log, nil
}

func decodeTick(r *bytes.Reader) (match.Tick, error) {
	var t match.Tick

	tickNumber, err := readUint64(r)
	if err != nil {
		return t, err
	}
	t.TickNumber = world.TickNumber(tickNumber)

	elapsed, err := readInt64(r)
	if err != nil {
		return t, err
	}
	t.Timings.Elapsed = timeDuration(elapsed)

	if t.IsHalftime, err = readBool(r); err != nil {
		return t, err
	}
	if t.IsEndOfGame, err = readBool(r); err != nil {
		return t, err
	}

	eventCount, err := readUint64(r)
	if err != nil {
		return t, err
	}
	t.SimulationEvents = make([]world.SimulationEvent, eventCount)
	for i := range t.SimulationEvents {
		if t.SimulationEvents[i], err = decodeEvent(r); err != nil {
			return t, err
		}
	}
	return t, nil
}

func decodeEvent(r *bytes.Reader) (world.SimulationEvent, error) {
	tagByte, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("matchlog: reading event tag: %w", err)
	}

	switch eventTag(tagByte) {
	case tagBallPositionUpdate:
		ball, pos, velocity, err := readIDPosVelocity(r)
		return world.BallPositionUpdate{Ball: world.BallId(ball), Pos: pos, Velocity: velocity}, err

	case tagCombatantPositionUpdate:
		combatant, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		pos, err := readVec3(r)
		return world.CombatantPositionUpdate{Combatant: world.CombatantId(combatant), Pos: pos}, err

	case tagArenaObjectPositionUpdate:
		index, err := readInt64(r)
		if err != nil {
			return nil, err
		}
		pos, err := readVec3(r)
		return world.ArenaObjectPositionUpdate{FeatureIndex: int(index), Pos: pos}, err

	case tagCombatantOnPlate:
		combatant, plate, err := readTwoIDs(r)
		return world.CombatantOnPlate{Combatant: world.CombatantId(combatant), Plate: world.PlateId(plate)}, err

	case tagCombatantOffPlate:
		combatant, plate, err := readTwoIDs(r)
		return world.CombatantOffPlate{Combatant: world.CombatantId(combatant), Plate: world.PlateId(plate)}, err

	case tagCombatantPickedUpBall:
		combatant, ball, err := readTwoIDs(r)
		return world.CombatantPickedUpBall{Combatant: world.CombatantId(combatant), Ball: world.BallId(ball)}, err

	case tagBallThrownAtEnemy:
		thrower, target, ball, impulse, err := readThrow(r)
		return world.BallThrownAtEnemy{
			Thrower: world.CombatantId(thrower), Target: world.CombatantId(target),
			Ball: world.BallId(ball), Impulse: impulse,
		}, err

	case tagBallThrownAtTeammate:
		thrower, target, ball, impulse, err := readThrow(r)
		return world.BallThrownAtTeammate{
			Thrower: world.CombatantId(thrower), Target: world.CombatantId(target),
			Ball: world.BallId(ball), Impulse: impulse,
		}, err

	case tagBallCollisionEnemy:
		ball, combatant, err := readTwoIDs(r)
		return world.BallCollisionEnemy{Ball: world.BallId(ball), Combatant: world.CombatantId(combatant)}, err

	case tagBallCollisionArena:
		ball, err := readUint32(r)
		return world.BallCollisionArena{Ball: world.BallId(ball)}, err

	case tagBallExplosion:
		ball, err := readUint32(r)
		return world.BallExplosion{Ball: world.BallId(ball)}, err

	case tagBallExplosionForceApplied:
		ball, target, direction, magnitude, err := readForce(r)
		return world.BallExplosionForceApplied{
			Ball: world.BallId(ball), Target: world.CombatantId(target),
			Direction: direction, Magnitude: magnitude,
		}, err

	case tagCombatantShoveForceApplied:
		source, target, direction, magnitude, err := readForce(r)
		return world.CombatantShoveForceApplied{
			Source: world.CombatantId(source), Target: world.CombatantId(target),
			Direction: direction, Magnitude: magnitude,
		}, err

	case tagCombatantStunned:
		combatant, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		start, err := readBool(r)
		return world.CombatantStunned{Combatant: world.CombatantId(combatant), Start: start}, err

	case tagPointsScoredByCombatant:
		combatant, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		team, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		points, err := readIntField(r)
		return world.PointsScoredByCombatant{
			Combatant: world.CombatantId(combatant), Team: world.TeamId(team), Points: points,
		}, err

	case tagBroadcastBelief:
		from, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		belief, err := decodeBelief(r)
		return world.BroadcastBelief{From: world.CombatantId(from), Belief: belief}, err

	case tagThrownBallCaught:
		ball, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		thrower, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		combatant, err := readUint32(r)
		return world.ThrownBallCaught{
			Ball: world.BallId(ball), Thrower: world.CombatantId(thrower), Combatant: world.CombatantId(combatant),
		}, err

	default:
		return nil, fmt.Errorf("matchlog: unknown event tag %d", tagByte)
	}
}

func decodeBelief(r *bytes.Reader) (beliefs.Belief, error) {
	tagByte, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("matchlog: reading belief tag: %w", err)
	}

	switch beliefs.BeliefKind(tagByte) {
	case beliefs.KindBallPosition:
		ball, pos, velocity, err := readIDPosVelocity(r)
		return beliefs.BallPosition{Ball: ids.BallId(ball), Pos: pos, Velocity: velocity}, err

	case beliefs.KindCombatantPosition:
		combatant, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		pos, err := readVec3(r)
		return beliefs.CombatantPosition{Combatant: ids.CombatantId(combatant), Pos: pos}, err

	case beliefs.KindPlatePosition:
		plate, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		pos, err := readVec3(r)
		return beliefs.PlatePosition{Plate: ids.PlateId(plate), Pos: pos}, err

	case beliefs.KindOnPlate:
		plate, combatant, err := readTwoIDs(r)
		return beliefs.OnPlate{Plate: ids.PlateId(plate), Combatant: ids.CombatantId(combatant)}, err

	case beliefs.KindHeldBall:
		ball, combatant, err := readTwoIDs(r)
		return beliefs.HeldBall{Ball: ids.BallId(ball), Combatant: ids.CombatantId(combatant)}, err

	case beliefs.KindInBallPickupRange:
		ball, combatant, err := readTwoIDs(r)
		return beliefs.InBallPickupRange{Ball: ids.BallId(ball), Combatant: ids.CombatantId(combatant)}, err

	case beliefs.KindCanReachCombatant:
		self, target, err := readTwoIDs(r)
		return beliefs.CanReachCombatant{Self: ids.CombatantId(self), Target: ids.CombatantId(target)}, err

	case beliefs.KindDirectLineOfSightToCombatant:
		self, other, err := readTwoIDs(r)
		return beliefs.DirectLineOfSightToCombatant{Self: ids.CombatantId(self), Other: ids.CombatantId(other)}, err

	case beliefs.KindBallIsFlying:
		ball, err := readUint32(r)
		return beliefs.BallIsFlying{Ball: ids.BallId(ball)}, err

	case beliefs.KindBallThrownAtCombatant:
		ball, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		thrower, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		target, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		onPlate, err := readBool(r)
		return beliefs.BallThrownAtCombatant{
			Ball: ids.BallId(ball), Thrower: ids.CombatantId(thrower),
			Target: ids.CombatantId(target), TargetOnPlate: onPlate,
		}, err

	case beliefs.KindBallCaught:
		ball, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		combatant, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		thrower, err := readUint32(r)
		return beliefs.BallCaught{
			Ball: ids.BallId(ball), Combatant: ids.CombatantId(combatant), Thrower: ids.CombatantId(thrower),
		}, err

	case beliefs.KindCombatantIsStunned:
		combatant, err := readUint32(r)
		return beliefs.CombatantIsStunned{Combatant: ids.CombatantId(combatant)}, err

	case beliefs.KindCombatantShoved:
		combatant, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		onPlate, err := readBool(r)
		return beliefs.CombatantShoved{Combatant: ids.CombatantId(combatant), OnPlate: onPlate}, err

	case beliefs.KindScannedEnvironment:
		tick, err := readUint64(r)
		return beliefs.ScannedEnvironment{Tick: ids.TickNumber(tick)}, err

	default:
		return nil, fmt.Errorf("matchlog: unknown belief tag %d", tagByte)
	}
}

func readTwoIDs(r *bytes.Reader) (uint32, uint32, error) {
	a, err := readUint32(r)
	if err != nil {
		return 0, 0, err
	}
	b, err := readUint32(r)
	return a, b, err
}

func readIDPosVelocity(r *bytes.Reader) (uint32, geom.Vec3, geom.Vec3, error) {
	id, err := readUint32(r)
	if err != nil {
		return 0, geom.Vec3{}, geom.Vec3{}, err
	}
	pos, err := readVec3(r)
	if err != nil {
		return 0, geom.Vec3{}, geom.Vec3{}, err
	}
	velocity, err := readVec3(r)
	return id, pos, velocity, err
}

func readThrow(r *bytes.Reader) (uint32, uint32, uint32, geom.Vec3, error) {
	thrower, target, err := readTwoIDs(r)
	if err != nil {
		return 0, 0, 0, geom.Vec3{}, err
	}
	ball, err := readUint32(r)
	if err != nil {
		return 0, 0, 0, geom.Vec3{}, err
	}
	impulse, err := readVec3(r)
	return thrower, target, ball, impulse, err
}

func readForce(r *bytes.Reader) (uint32, uint32, geom.Vec3, float64, error) {
	source, target, err := readTwoIDs(r)
	if err != nil {
		return 0, 0, geom.Vec3{}, 0, err
	}
	direction, err := readVec3(r)
	if err != nil {
		return 0, 0, geom.Vec3{}, 0, err
	}
	magnitude, err := readFloat64(r)
	return source, target, direction, magnitude, err
}

func readString(r *bytes.Reader) (string, error) {
	n, err := readUint64(r)
	if err != nil {
		return "", err
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", fmt.Errorf("matchlog: reading string: %w", err)
	}
	return string(b), nil
}

func readUint32(r *bytes.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("matchlog: reading uint32: %w", err)
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func readUint64(r *bytes.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("matchlog: reading uint64: %w", err)
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

func readInt64(r *bytes.Reader) (int64, error) {
	v, err := readUint64(r)
	return int64(v), err
}

func readIntField(r *bytes.Reader) (int, error) {
	v, err := readInt64(r)
	return int(v), err
}

func readFloat64(r *bytes.Reader) (float64, error) {
	v, err := readUint64(r)
	return math.Float64frombits(v), err
}

func readVec3(r *bytes.Reader) (geom.Vec3, error) {
	x, err := readFloat64(r)
	if err != nil {
		return geom.Vec3{}, err
	}
	y, err := readFloat64(r)
	if err != nil {
		return geom.Vec3{}, err
	}
	z, err := readFloat64(r)
	return geom.Vec3{X: x, Y: y, Z: z}, err
}

func readBool(r *bytes.Reader) (bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return false, fmt.Errorf("matchlog: reading bool: %w", err)
	}
	return b != 0, nil
}

func timeDuration(v int64) time.Duration { return time.Duration(v) }
