package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/habitat/systems"
	"github.com/pthm-cable/habitat/telemetry"
)

// Move walks e up to min(capacity, maxSteps) unit steps, choosing uniformly
// among the free cardinal neighbours before every step. It stops early when
// no neighbour is free and returns the number of steps taken.
func (s *Simulation) Move(e ecs.Entity, maxSteps int) int {
	id := s.orgMap.Get(e).ID
	steps := systems.StepBudget(s.mobMap.Get(e).Steps, maxSteps)
	free := func(x, y int) bool {
		return s.IsPositionAvailable(x, y, id)
	}

	for i := 0; i < steps; i++ {
		pos := s.posMap.Get(e)
		d, ok := systems.PickDirection(s.rng, systems.ValidDirections(pos.X, pos.Y, s.boardSize, free))
		if !ok {
			return i
		}
		pos.X += d.DX
		pos.Y += d.DY
	}
	return steps
}

// MoveEntitiesOnce runs one movement phase: every animal in collection order,
// then the hunter. Each entity is granted min(capacity, remaining budget)
// steps and the grant is charged in full whether or not it is used. The
// phase ends early once the budget is exhausted.
func (s *Simulation) MoveEntitiesOnce() {
	movers := make([]ecs.Entity, 0, len(s.roster)+1)
	movers = append(movers, s.roster...)
	movers = append(movers, s.hunter)

	for _, e := range movers {
		if s.totalMovement >= s.movementCap {
			break
		}

		from := *s.posMap.Get(e)
		allowed := systems.StepBudget(s.mobMap.Get(e).Steps, s.movementCap-s.totalMovement)
		taken := s.Move(e, allowed)
		s.totalMovement += allowed

		id := s.orgMap.Get(e).ID
		s.lifetime.RecordMove(id, taken, taken < allowed)
		s.emit(telemetry.NewMoveEvent(s.tick, s.actor(e), from, allowed, s.movementCap-s.totalMovement))
	}
}
