package system

import (
	"testing"

	"github.com/jakecoffman/cp/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/stickwalk/internal/domain/entity"
)

func TestApplyIntents(t *testing.T) {
	sk := entity.NewSkeleton(0, 0)
	hand := sk.Pos(entity.HandL)

	ApplyIntents(sk, []Intent{
		BlendIntent{Joint: entity.HandL, Target: hand.Add(cp.Vector{X: 10, Y: 20}), Strength: 0.5},
		NudgeIntent{Joint: entity.KneeR, DX: 7},
	})

	assert.Equal(t, hand.Add(cp.Vector{X: 5, Y: 10}), sk.Pos(entity.HandL))
	assert.Equal(t, 7.0, sk.Pos(entity.KneeR).X)
	assert.Equal(t, hand, sk.Joint(entity.HandL).Prev, "intents never touch Prev")
}

func TestApplyIntents_InOrder(t *testing.T) {
	sk := entity.NewSkeleton(0, 0)
	target := cp.Vector{X: 100, Y: 0}

	// The nudge lands after the snap, so it survives
	ApplyIntents(sk, []Intent{
		BlendIntent{Joint: entity.Neck, Target: target, Strength: 1},
		NudgeIntent{Joint: entity.Neck, DX: -4},
	})
	assert.Equal(t, cp.Vector{X: 96, Y: 0}, sk.Pos(entity.Neck))
}
