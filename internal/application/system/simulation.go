package system

import (
	"github.com/younwookim/stickwalk/internal/domain/entity"
	"github.com/younwookim/stickwalk/internal/infrastructure/config"
)

// EventKind identifies a discrete state change reported by a step
type EventKind int

const (
	EventNone EventKind = iota
	EventJump
	EventLand
	EventGrab
	EventThrowStart
	EventThrowRelease
	EventDrop
)

// String returns the event name
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventJump:
		return "Jump"
	case EventLand:
		return "Land"
	case EventGrab:
		return "Grab"
	case EventThrowStart:
		return "ThrowStart"
	case EventThrowRelease:
		return "ThrowRelease"
	case EventDrop:
		return "Drop"
	default:
		return "Unknown"
	}
}

// Event is a state change that happened during a step
type Event struct {
	Kind     EventKind
	Skeleton int
	Prop     entity.PropID
	Tick     int
}

// World is everything the simulation mutates
type World struct {
	Terrain   *entity.Terrain
	Props     []entity.Prop
	Trees     []entity.Tree
	Skeletons []*entity.Skeleton
	Tick      int
}

// Player returns the first skeleton, the one driven by the primary input
func (w *World) Player() *entity.Skeleton {
	if len(w.Skeletons) == 0 {
		return nil
	}
	return w.Skeletons[0]
}

// Simulation advances a World one tick at a time
type Simulation struct {
	World *World

	config      *config.SimulationConfig
	locomotion  *LocomotionSystem
	interaction *InteractionSystem
	physics     *PhysicsSystem
}

// NewSimulation creates a simulation over world. The world's terrain is the ground.
func NewSimulation(cfg *config.SimulationConfig, world *World) *Simulation {
	return &Simulation{
		World:       world,
		config:      cfg,
		locomotion:  NewLocomotionSystem(cfg, world.Terrain),
		interaction: NewInteractionSystem(cfg),
		physics:     NewPhysicsSystem(cfg, world.Terrain),
	}
}

// Config returns the simulation tuning
func (s *Simulation) Config() *config.SimulationConfig {
	return s.config
}

// Step advances the world by one tick with input driving the player
func (s *Simulation) Step(input InputState) []Event {
	return s.StepAll([]InputState{input})
}

// StepAll advances the world by one tick. inputs[i] drives skeleton i;
// skeletons without an entry get no input.
func (s *Simulation) StepAll(inputs []InputState) []Event {
	w := s.World
	var events []Event
	emit := func(kind EventKind, sk int, prop entity.PropID) {
		events = append(events, Event{Kind: kind, Skeleton: sk, Prop: prop, Tick: w.Tick})
	}

	for i, sk := range w.Skeletons {
		var input InputState
		if i < len(inputs) {
			input = inputs[i]
		}
		s.stepSkeleton(i, sk, input, emit)
	}

	s.physics.StepProps(w.Props)
	s.physics.SyncHeld(w.Skeletons, w.Props)
	w.Tick++
	return events
}

func (s *Simulation) stepSkeleton(i int, sk *entity.Skeleton, input InputState, emit func(EventKind, int, entity.PropID)) {
	w := s.World

	// Discrete trigger acts on last tick's target
	if input.Action {
		target, held := sk.Interaction.Target, sk.Interaction.Held
		switch s.interaction.Trigger(sk, w.Props) {
		case EventGrab:
			emit(EventGrab, i, target)
		case EventThrowStart:
			emit(EventThrowStart, i, held)
		}
	}

	motion := s.locomotion.Update(sk, input)
	if motion.Jumped {
		emit(EventJump, i, entity.NoProp)
	}
	if motion.Landed {
		emit(EventLand, i, entity.NoProp)
	}

	held := sk.Interaction.Held
	if s.interaction.UpdateFatigue(sk, w.Props) {
		emit(EventDrop, i, held)
	}
	held = sk.Interaction.Held
	if s.interaction.AdvanceThrow(sk, w.Props) {
		emit(EventThrowRelease, i, held)
	}
	s.interaction.Scan(sk, w.Props)

	swingL, swingR := s.locomotion.SwingTargets(sk)
	intents := s.locomotion.LegIntents(sk)
	intents = append(intents, s.interaction.ArmIntents(sk, w.Props, swingL, swingR, w.Tick)...)
	torso := s.interaction.TorsoTarget(sk, w.Props, s.locomotion.TorsoTarget(sk))
	intents = append(intents, s.locomotion.TorsoIntent(torso))
	ApplyIntents(sk, intents)

	s.physics.Update(sk)

	look, looking := s.interaction.LookTarget(sk, w.Props)
	s.physics.CorrectPose(sk, look, looking)
}
