package world

import "matchsim/internal/ids"

// Re-exported so callers working with MatchState never need to import
// internal/ids directly; internal/ids holds the canonical definitions so
// internal/beliefs can use them without an import cycle (world embeds
// belief sets).
type (
	CombatantId = ids.CombatantId
	BallId      = ids.BallId
	PlateId     = ids.PlateId
	TeamId      = ids.TeamId
	TickNumber  = ids.TickNumber
	SourceId    = ids.SourceId
)

const (
	TeamHome        = ids.TeamHome
	TeamAway        = ids.TeamAway
	BroadcastSource = ids.BroadcastSource
)
