package entity

// InteractionPhase is the carry/throw state of a skeleton
type InteractionPhase int

const (
	PhaseIdle InteractionPhase = iota
	PhaseTargeting
	PhaseHolding
	PhaseThrowing
)

// String returns the phase name
func (p InteractionPhase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseTargeting:
		return "Targeting"
	case PhaseHolding:
		return "Holding"
	case PhaseThrowing:
		return "Throwing"
	default:
		return "Unknown"
	}
}

// Throw timing, in ticks since the throw started
const (
	ThrowSwingTick   = 10 // hand switches from wind-up to forward swing
	ThrowReleaseTick = 12
	ThrowEndTick     = 20 // last tick of the throw animation
)

// Interaction tracks what a skeleton is reaching for or carrying.
// Target and Held are indexes into the world's prop list.
type Interaction struct {
	Phase     InteractionPhase
	Target    PropID
	Held      PropID
	ThrowTick int
}

// NewInteraction returns an idle interaction with no references
func NewInteraction() Interaction {
	return Interaction{Phase: PhaseIdle, Target: NoProp, Held: NoProp}
}

// IsHolding reports whether a prop is attached to the hand.
// A throw keeps holding until the release tick.
func (in Interaction) IsHolding() bool {
	return in.Held != NoProp
}

// IsTargeting reports whether a free prop is the current target
func (in Interaction) IsTargeting() bool {
	return in.Phase == PhaseTargeting && in.Target != NoProp
}

// WithTarget applies a fresh nearest-prop scan result.
// Only idle/targeting states retarget; NoProp returns to idle.
func (in Interaction) WithTarget(id PropID) Interaction {
	if in.Phase != PhaseIdle && in.Phase != PhaseTargeting {
		return in
	}
	in.Target = id
	if id == NoProp {
		in.Phase = PhaseIdle
	} else {
		in.Phase = PhaseTargeting
	}
	return in
}

// Grab attaches the current target
func (in Interaction) Grab() Interaction {
	if !in.IsTargeting() {
		return in
	}
	in.Held = in.Target
	in.Target = NoProp
	in.Phase = PhaseHolding
	return in
}

// StartThrow begins the wind-up while holding
func (in Interaction) StartThrow() Interaction {
	if in.Phase != PhaseHolding {
		return in
	}
	in.Phase = PhaseThrowing
	in.ThrowTick = 0
	return in
}

// Advance moves a throw forward one tick; after ThrowEndTick the skeleton is idle
func (in Interaction) Advance() Interaction {
	if in.Phase != PhaseThrowing {
		return in
	}
	in.ThrowTick++
	if in.ThrowTick > ThrowEndTick {
		in.Phase = PhaseIdle
		in.ThrowTick = 0
	}
	return in
}

// ShouldRelease reports whether this tick lets go of the thrown prop
func (in Interaction) ShouldRelease() bool {
	return in.Phase == PhaseThrowing && in.ThrowTick == ThrowReleaseTick && in.IsHolding()
}

// Release detaches the held prop without changing the phase, as a throw
// keeps animating after the prop leaves the hand
func (in Interaction) Release() Interaction {
	in.Held = NoProp
	return in
}

// Drop detaches the held prop involuntarily. Outside a throw this returns to idle.
func (in Interaction) Drop() Interaction {
	in.Held = NoProp
	if in.Phase == PhaseHolding {
		in.Phase = PhaseIdle
	}
	return in
}
