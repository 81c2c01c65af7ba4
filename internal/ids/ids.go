// Package ids declares the opaque entity identifiers shared across the
// belief, world, and simulation packages. Split out from internal/world so
// internal/beliefs can reference entity identities without importing the
// full match-state graph (which itself embeds belief sets).
package ids

// CombatantId, BallId, PlateId, and TeamId are distinct opaque unsigned
// integers; TickNumber is a monotonically increasing unsigned integer where
// tick 0 is the initial-state tick.
type (
	CombatantId uint32
	BallId      uint32
	PlateId     uint32
	TeamId      uint32
	TickNumber  uint64
	// SourceId identifies the sensor (or other producer) a belief came from,
	// so BeliefSet can bucket beliefs per source.
	SourceId uint32
)

const (
	TeamHome TeamId = iota
	TeamAway
)

// BroadcastSource is a reserved SourceId. Broadcast beliefs are not filed
// under it: the BroadcastBelief commit adds them to each teammate's
// unsourced bucket.
const BroadcastSource SourceId = 0xFFFFFFFF
