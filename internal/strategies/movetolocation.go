package strategies

import (
	"matchsim/internal/beliefs"
	"matchsim/internal/geom"
	"matchsim/internal/world"
)

// MoveToLocation paths a combatant across the navmesh towards a fixed point,
// or (with tracking enabled) towards another entity's current position,
// re-resolving the target and recomputing the path once the cached route
// has been walked to its end.
type MoveToLocation struct {
	self world.CombatantId

	targetLocation  geom.Vec3
	trackCombatant  *world.CombatantId
	trackBall       *world.BallId
	dynamicPathing  bool

	path         []geom.Vec3
	pathIdx      int
	pathComputed bool

	maxTicks int
	complete bool
}

// NewMoveToLocation paths towards a fixed point, giving up (without
// completing) after maxTicks ticks if the target is never reached.
func NewMoveToLocation(self world.CombatantId, target geom.Vec3, maxTicks int) *MoveToLocation {
	return &MoveToLocation{self: self, targetLocation: target, maxTicks: maxTicks}
}

// NewMoveToLocationTrackingCombatant continuously re-paths towards a
// combatant's current position, with no tick budget.
func NewMoveToLocationTrackingCombatant(self, target world.CombatantId) *MoveToLocation {
	return &MoveToLocation{self: self, trackCombatant: &target, dynamicPathing: true, maxTicks: -1}
}

// NewMoveToLocationTrackingBall continuously re-paths towards a ball's
// current position, with no tick budget.
func NewMoveToLocationTrackingBall(self world.CombatantId, target world.BallId) *MoveToLocation {
	return &MoveToLocation{self: self, trackBall: &target, dynamicPathing: true, maxTicks: -1}
}

func (s *MoveToLocation) Name() string                      { return "Move to Location" }
func (s *MoveToLocation) IsComplete() bool                   { return s.complete }
func (s *MoveToLocation) CanPerform(*beliefs.BeliefSet) bool { return !s.pathComputed || s.pathIdx < len(s.path) }
func (s *MoveToLocation) ShouldInterrupt(*beliefs.BeliefSet) bool {
	return s.maxTicks == 0
}

func (s *MoveToLocation) resolveTarget(state *world.MatchState) (geom.Vec3, bool) {
	if s.trackCombatant != nil {
		c, ok := state.Combatant(*s.trackCombatant)
		if !ok {
			return geom.Vec3{}, false
		}
		return c.Position, true
	}
	if s.trackBall != nil {
		b, ok := state.Ball(*s.trackBall)
		if !ok {
			return geom.Vec3{}, false
		}
		return b.Position, true
	}
	return s.targetLocation, true
}

func (s *MoveToLocation) computePath(self *world.Combatant, state *world.MatchState) {
	target, ok := s.resolveTarget(state)
	if !ok {
		s.path = nil
		s.pathIdx = 0
		s.pathComputed = true
		return
	}
	s.targetLocation = target
	s.path = state.Navmesh.FindPath(self.Position, target)
	s.pathIdx = 0
	s.pathComputed = true
}

func (s *MoveToLocation) Tick(self *world.Combatant, state *world.MatchState) ([]world.PendingEvent, bool) {
	if s.maxTicks > 0 {
		s.maxTicks--
	}

	needsPath := !s.pathComputed || (s.dynamicPathing && s.pathIdx >= len(s.path))
	if needsPath {
		s.computePath(self, state)
	}

	budget := self.Attributes.MoveSpeed
	position := self.Position

	for budget > 0 && s.pathIdx < len(s.path) {
		next := s.path[s.pathIdx]
		toNext := next.Sub(position)
		dist := toNext.Length()

		if dist <= budget {
			position = next
			budget -= dist
			s.pathIdx++
		} else {
			position = position.Add(toNext.Normalized().Scale(budget))
			budget = 0
		}
	}

	self.Position = position

	unitResolution := 0.5
	if state.Navmesh != nil {
		unitResolution = state.Navmesh.UnitResolution()
	}
	atTarget := geom.Distance(s.targetLocation, position) <= unitResolution
	if atTarget || s.pathIdx >= len(s.path) {
		s.complete = true
	}

	return []world.PendingEvent{{Event: world.CombatantPositionUpdate{Combatant: self.ID, Pos: position}}}, true
}
