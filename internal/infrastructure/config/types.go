package config

import (
	"errors"
	"fmt"
)

// Ground clamp policies
const (
	ClampPosition = "position" // move the point back onto the ground only
	ClampDamped   = "damped"   // also reflect and damp the vertical velocity
)

// SimulationConfig is the root config for simulation.json
type SimulationConfig struct {
	Display     DisplayConfig     `json:"display"`
	Physics     PhysicsSettings   `json:"physics"`
	Gait        GaitConfig        `json:"gait"`
	Interaction InteractionConfig `json:"interaction"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type PhysicsSettings struct {
	Gravity          float64 `json:"gravity"`
	Friction         float64 `json:"friction"` // velocity retained per tick
	SolverIterations int     `json:"solverIterations"`
	ClampPolicy      string  `json:"clampPolicy"`
	ClampRestitution float64 `json:"clampRestitution"` // used by the damped policy
	NeckMaxDistance  float64 `json:"neckMaxDistance"`  // 0 disables the torso limit
}

type GaitConfig struct {
	GroundAccel       float64 `json:"groundAccel"`
	AirAccel          float64 `json:"airAccel"`
	Drag              float64 `json:"drag"` // horizontal velocity retained per tick
	JumpImpulse       float64 `json:"jumpImpulse"`
	PhaseScale        float64 `json:"phaseScale"` // radians per unit of X travelled
	StandHeight       float64 `json:"standHeight"`
	GroundCheckOffset float64 `json:"groundCheckOffset"`

	StrideBase  float64 `json:"strideBase"`
	StrideSpeed float64 `json:"strideSpeed"`
	LiftBase    float64 `json:"liftBase"`
	LiftSpeed   float64 `json:"liftSpeed"`

	ArmSwingScale float64 `json:"armSwingScale"` // hand stride relative to foot stride
	ArmDrop       float64 `json:"armDrop"`       // hands below the neck
	ArmSwingLift  float64 `json:"armSwingLift"`

	LegStrength    float64 `json:"legStrength"`
	AirLegStrength float64 `json:"airLegStrength"`
	KneeThrust     float64 `json:"kneeThrust"`
	TorsoStrength  float64 `json:"torsoStrength"`
	TorsoHeight    float64 `json:"torsoHeight"`
	HipPoseSnap    bool    `json:"hipPoseSnap"`
}

type InteractionConfig struct {
	CaptureRadius  float64 `json:"captureRadius"`
	ArmStrength    float64 `json:"armStrength"`
	FatigueRate    float64 `json:"fatigueRate"`
	RecoveryRate   float64 `json:"recoveryRate"`
	FatigueArmLoss float64 `json:"fatigueArmLoss"`
	FrameMillis    float64 `json:"frameMillis"` // clock used for the fatigue shake

	CarryReach     float64 `json:"carryReach"`
	CarryDrop      float64 `json:"carryDrop"`
	CarryMassDrop  float64 `json:"carryMassDrop"`
	CarryFatigue   float64 `json:"carryFatigue"`
	ShakeAmplitude float64 `json:"shakeAmplitude"`
	ShakeFrequency float64 `json:"shakeFrequency"`

	ThrowMultiplier  float64 `json:"throwMultiplier"`
	ThrowForwardBias float64 `json:"throwForwardBias"`
	ThrowUpBias      float64 `json:"throwUpBias"`
}

// Validate checks the values the solver depends on
func (c *SimulationConfig) Validate() error {
	var errs []error
	if c.Physics.SolverIterations <= 0 {
		errs = append(errs, fmt.Errorf("solverIterations must be positive, got %d", c.Physics.SolverIterations))
	}
	if c.Physics.Friction <= 0 || c.Physics.Friction > 1 {
		errs = append(errs, fmt.Errorf("friction must be in (0,1], got %v", c.Physics.Friction))
	}
	switch c.Physics.ClampPolicy {
	case ClampPosition, ClampDamped:
	default:
		errs = append(errs, fmt.Errorf("unknown clampPolicy %q", c.Physics.ClampPolicy))
	}
	strengths := map[string]float64{
		"legStrength":    c.Gait.LegStrength,
		"airLegStrength": c.Gait.AirLegStrength,
		"torsoStrength":  c.Gait.TorsoStrength,
		"armStrength":    c.Interaction.ArmStrength,
	}
	for name, v := range strengths {
		if v <= 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be in (0,1], got %v", name, v))
		}
	}
	if c.Interaction.FatigueRate < 0 || c.Interaction.RecoveryRate < 0 {
		errs = append(errs, errors.New("fatigue rates must not be negative"))
	}
	return errors.Join(errs...)
}

// Default returns the built-in tuning
func Default() *SimulationConfig {
	return &SimulationConfig{
		Display: DisplayConfig{
			ScreenWidth:  1280,
			ScreenHeight: 720,
			Scale:        1,
			Framerate:    60,
		},
		Physics: PhysicsSettings{
			Gravity:          1.2,
			Friction:         0.95,
			SolverIterations: 20,
			ClampPolicy:      ClampPosition,
			ClampRestitution: 0.4,
		},
		Gait: GaitConfig{
			GroundAccel:       0.4,
			AirAccel:          0.2,
			Drag:              0.95,
			JumpImpulse:       8,
			PhaseScale:        0.015,
			StandHeight:       75,
			GroundCheckOffset: 85,
			StrideBase:        50,
			StrideSpeed:       3.2,
			LiftBase:          2,
			LiftSpeed:         1.5,
			ArmSwingScale:     0.8,
			ArmDrop:           25,
			ArmSwingLift:      10,
			LegStrength:       0.8,
			AirLegStrength:    0.15,
			KneeThrust:        15,
			TorsoStrength:     0.25,
			TorsoHeight:       50,
		},
		Interaction: InteractionConfig{
			CaptureRadius:    140,
			ArmStrength:      0.35,
			FatigueRate:      0.002,
			RecoveryRate:     0.01,
			FatigueArmLoss:   0.7,
			FrameMillis:      1000.0 / 60.0,
			CarryReach:       25,
			CarryDrop:        15,
			CarryMassDrop:    12,
			CarryFatigue:     45,
			ShakeAmplitude:   6,
			ShakeFrequency:   0.05,
			ThrowMultiplier:  2.5,
			ThrowForwardBias: 15,
			ThrowUpBias:      10,
		},
	}
}
