package system

import (
	"github.com/younwookim/stickwalk/internal/domain/entity"
	"github.com/younwookim/stickwalk/internal/infrastructure/config"
)

const groundLevel = 500.0

// newFlatSim builds a simulation on flat ground at groundLevel
func newFlatSim(cfg *config.SimulationConfig, skeletons []*entity.Skeleton, props ...entity.Prop) *Simulation {
	world := &World{
		Terrain:   entity.Flat(groundLevel),
		Props:     props,
		Skeletons: skeletons,
	}
	return NewSimulation(cfg, world)
}

// standing returns a skeleton in its rest pose on the flat ground
func standing(x float64) *entity.Skeleton {
	return entity.NewSkeleton(x, groundLevel-config.Default().Gait.StandHeight)
}

func hasEvent(events []Event, kind EventKind) (Event, bool) {
	for _, e := range events {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}
