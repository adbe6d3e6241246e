package system

import (
	"math"

	"github.com/jakecoffman/cp/v2"

	"github.com/younwookim/stickwalk/internal/domain/entity"
	"github.com/younwookim/stickwalk/internal/infrastructure/config"
)

// Hand poses during a throw, relative to the body anchor and neck
const (
	windUpReach   = -40.0
	windUpDrop    = 20.0
	swingReach    = 60.0
	swingRise     = -70.0
	offHandReach  = -10.0
	offHandDrop   = 30.0
	targetLeanY   = -15.0
	targetLeanMix = 0.5
)

// InteractionSystem handles prop targeting, carrying, throwing and fatigue
type InteractionSystem struct {
	config *config.InteractionConfig
}

// NewInteractionSystem creates a new interaction system
func NewInteractionSystem(cfg *config.SimulationConfig) *InteractionSystem {
	return &InteractionSystem{config: &cfg.Interaction}
}

// Trigger handles the discrete grab/throw input.
// Holding starts a throw; targeting grabs if nobody took the prop first.
func (s *InteractionSystem) Trigger(sk *entity.Skeleton, props []entity.Prop) EventKind {
	in := sk.Interaction
	switch {
	case in.Phase == entity.PhaseHolding:
		sk.Interaction = in.StartThrow()
		return EventThrowStart
	case in.IsTargeting():
		p := &props[in.Target]
		if p.IsHeld {
			return EventNone
		}
		p.IsHeld = true
		sk.Interaction = in.Grab()
		return EventGrab
	}
	return EventNone
}

// UpdateFatigue strains the arms while holding and recovers otherwise.
// It returns true when the strain forced the prop out of the hand.
func (s *InteractionSystem) UpdateFatigue(sk *entity.Skeleton, props []entity.Prop) bool {
	in := sk.Interaction
	if !in.IsHolding() {
		sk.Fatigue = math.Max(0, sk.Fatigue-s.config.RecoveryRate)
		return false
	}

	sk.Fatigue += s.config.FatigueRate * props[in.Held].Mass
	if sk.Fatigue <= 1 {
		return false
	}
	props[in.Held].IsHeld = false
	sk.Interaction = in.Drop()
	return true
}

// AdvanceThrow moves the throw clock and releases the prop on the release tick.
// It returns true on release.
func (s *InteractionSystem) AdvanceThrow(sk *entity.Skeleton, props []entity.Prop) bool {
	sk.Interaction = sk.Interaction.Advance()
	if !sk.Interaction.ShouldRelease() {
		return false
	}

	p := &props[sk.Interaction.Held]
	v := s.ReleaseVelocity(sk)
	p.IsHeld = false
	p.SetVelocity(v)
	sk.Interaction = sk.Interaction.Release()
	return true
}

// ReleaseVelocity derives the throw velocity from the right hand's motion
func (s *InteractionSystem) ReleaseVelocity(sk *entity.Skeleton) cp.Vector {
	hand := sk.Joint(entity.HandR).Velocity().Mult(s.config.ThrowMultiplier)
	return hand.Add(cp.Vector{
		X: s.config.ThrowForwardBias * sk.Facing,
		Y: -s.config.ThrowUpBias,
	})
}

// Scan retargets to the nearest free prop inside the capture radius.
// The radius shrinks to the best distance so far, so the result is the true nearest.
func (s *InteractionSystem) Scan(sk *entity.Skeleton, props []entity.Prop) {
	in := sk.Interaction
	if in.Phase != entity.PhaseIdle && in.Phase != entity.PhaseTargeting {
		return
	}
	sk.Interaction = in.WithTarget(s.Nearest(sk, props))
}

// Nearest returns the closest untouched prop within the capture radius, or NoProp
func (s *InteractionSystem) Nearest(sk *entity.Skeleton, props []entity.Prop) entity.PropID {
	best := entity.NoProp
	radius := s.config.CaptureRadius
	origin := cp.Vector{X: sk.X, Y: sk.Pos(entity.Hip).Y}
	for i := range props {
		if props[i].IsHeld {
			continue
		}
		if d := props[i].Pos.Distance(origin); d < radius {
			radius = d
			best = entity.PropID(i)
		}
	}
	return best
}

// ArmStrength returns the hand blend strength, weakened by load and fatigue
func (s *InteractionSystem) ArmStrength(sk *entity.Skeleton, props []entity.Prop) float64 {
	mass := 1.0
	if sk.Interaction.IsHolding() {
		mass = props[sk.Interaction.Held].Mass
	}
	return s.config.ArmStrength / mass * (1 - sk.Fatigue*s.config.FatigueArmLoss)
}

// HandTargets returns the hand targets for the current interaction phase,
// falling back to the idle swing
func (s *InteractionSystem) HandTargets(sk *entity.Skeleton, props []entity.Prop, swingL, swingR cp.Vector, tick int) (left, right cp.Vector) {
	in := sk.Interaction
	neckY := sk.Pos(entity.Neck).Y

	switch {
	case in.Phase == entity.PhaseThrowing:
		left = cp.Vector{X: sk.X + sk.Facing*offHandReach, Y: neckY + offHandDrop}
		if in.ThrowTick < entity.ThrowSwingTick {
			right = cp.Vector{X: sk.X + sk.Facing*windUpReach, Y: neckY + windUpDrop}
		} else {
			right = cp.Vector{X: sk.X + sk.Facing*swingReach, Y: neckY + swingRise}
		}
		return left, right
	case in.IsHolding():
		mass := props[in.Held].Mass
		t := float64(tick) * s.config.FrameMillis
		shake := sk.Fatigue * math.Sin(t*s.config.ShakeFrequency) * s.config.ShakeAmplitude
		carry := cp.Vector{
			X: sk.X + sk.Facing*s.config.CarryReach,
			Y: neckY + s.config.CarryDrop + mass*s.config.CarryMassDrop + sk.Fatigue*s.config.CarryFatigue + shake,
		}
		return carry, carry
	case in.IsTargeting():
		p := props[in.Target].Pos
		return p, p
	}
	return swingL, swingR
}

// ArmIntents returns the hand pulls for this tick
func (s *InteractionSystem) ArmIntents(sk *entity.Skeleton, props []entity.Prop, swingL, swingR cp.Vector, tick int) []Intent {
	left, right := s.HandTargets(sk, props, swingL, swingR, tick)
	strength := s.ArmStrength(sk, props)
	return []Intent{
		BlendIntent{Joint: entity.HandL, Target: left, Strength: strength},
		BlendIntent{Joint: entity.HandR, Target: right, Strength: strength},
	}
}

// TorsoTarget leans the neck toward a targeted prop, otherwise returns upright
func (s *InteractionSystem) TorsoTarget(sk *entity.Skeleton, props []entity.Prop, upright cp.Vector) cp.Vector {
	if !sk.Interaction.IsTargeting() {
		return upright
	}
	p := props[sk.Interaction.Target].Pos
	return cp.Vector{
		X: sk.X + (p.X-sk.X)*targetLeanMix,
		Y: sk.Pos(entity.Hip).Y + targetLeanY,
	}
}

// LookTarget returns the prop the head should point at
func (s *InteractionSystem) LookTarget(sk *entity.Skeleton, props []entity.Prop) (cp.Vector, bool) {
	if !sk.Interaction.IsTargeting() {
		return cp.Vector{}, false
	}
	return props[sk.Interaction.Target].Pos, true
}
