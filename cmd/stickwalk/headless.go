package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/younwookim/stickwalk/internal/application/replay"
	"github.com/younwookim/stickwalk/internal/application/system"
	"github.com/younwookim/stickwalk/internal/domain/entity"
	"github.com/younwookim/stickwalk/internal/infrastructure/config"
)

// runHeadless steps the recorded inputs through a fresh world and
// writes the events and the final player pose to out
func runHeadless(cfg *config.GameConfig, data *replay.ReplayData, out io.Writer) (*system.Simulation, error) {
	if len(data.Frames) == 0 {
		return nil, errors.New("replay has no frames")
	}

	screenH := float64(cfg.Simulation.Display.ScreenHeight)
	world := system.LoadWorld(cfg.World, screenH, rand.New(rand.NewSource(data.Seed)))
	sim := system.NewSimulation(cfg.Simulation, world)
	if world.Player() == nil {
		return nil, errors.New("world has no skeleton to drive")
	}

	replayer := replay.NewReplayer(*data)
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		for _, ev := range sim.Step(input) {
			if ev.Kind == system.EventJump || ev.Kind == system.EventLand {
				continue
			}
			fmt.Fprintf(out, "tick %d: skeleton %d %s prop %d\n", ev.Tick, ev.Skeleton, ev.Kind, ev.Prop)
		}
	}

	printPose(out, sim)
	return sim, nil
}

func printPose(out io.Writer, sim *system.Simulation) {
	p := sim.World.Player()
	fmt.Fprintf(out, "ticks=%d x=%.3f y=%.3f grounded=%t phase=%s fatigue=%.4f\n",
		sim.World.Tick, p.X, p.Y, p.Grounded, p.Interaction.Phase, p.Fatigue)
	for j := range entity.JointCount {
		id := entity.JointID(j)
		pos := p.Pos(id)
		fmt.Fprintf(out, "  %-7s %10.3f %10.3f\n", id, pos.X, pos.Y)
	}
}
