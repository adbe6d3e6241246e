package system

import (
	"github.com/jakecoffman/cp/v2"

	"github.com/younwookim/stickwalk/internal/domain/entity"
)

// Intent represents a pull that a controller wants applied to a joint
type Intent interface {
	isIntent()
}

// BlendIntent moves a joint a fraction of the way to a target
type BlendIntent struct {
	Joint    entity.JointID
	Target   cp.Vector
	Strength float64 // (0,1]
}

func (BlendIntent) isIntent() {}

// NudgeIntent offsets a joint horizontally
type NudgeIntent struct {
	Joint entity.JointID
	DX    float64
}

func (NudgeIntent) isIntent() {}

// ApplyIntents applies the intents to the skeleton in order
func ApplyIntents(sk *entity.Skeleton, intents []Intent) {
	for _, in := range intents {
		switch in := in.(type) {
		case BlendIntent:
			sk.Joint(in.Joint).BlendToward(in.Target, in.Strength)
		case NudgeIntent:
			sk.Joint(in.Joint).Pos.X += in.DX
		}
	}
}
