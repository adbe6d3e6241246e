package system

import (
	"math"
	"math/rand"
	"time"

	"github.com/younwookim/stickwalk/internal/domain/entity"
	"github.com/younwookim/stickwalk/internal/infrastructure/config"
)

// LoadTerrain converts a TerrainConfig into a Terrain entity
func LoadTerrain(cfg *config.TerrainConfig, screenHeight float64) *entity.Terrain {
	layers := make([]entity.TerrainLayer, len(cfg.Layers))
	for i, l := range cfg.Layers {
		layers[i] = entity.TerrainLayer{
			Seed:       l.Seed,
			Base:       l.Base,
			Amplitude:  l.Amplitude,
			Speed:      l.Speed,
			Complexity: l.Complexity,
		}
	}
	return &entity.Terrain{
		ScreenHeight:   screenHeight,
		Layers:         layers,
		CollisionLayer: cfg.CollisionLayer,
	}
}

// LoadWorld builds a World from config, placing props and trees with rng.
// The same rng seed always produces the same world.
func LoadWorld(cfg *config.WorldConfig, screenHeight float64, rng *rand.Rand) *World {
	terrain := LoadTerrain(&cfg.Terrain, screenHeight)
	pop := cfg.Population

	props := make([]entity.Prop, 0, pop.Props)
	for i := 0; i < pop.Props; i++ {
		x := rng.Float64() * pop.Span
		size := entity.PropSize(rng.Float64(), rng.Float64(), pop.HeavyThreshold)
		props = append(props, entity.NewProp(x, terrain.Height(x)-pop.PropDropHeight, size))
	}

	trees := make([]entity.Tree, 0, pop.Trees)
	for i := 0; i < pop.Trees; i++ {
		x := rng.Float64() * pop.Span
		trees = append(trees, newTree(x, terrain.Height(x), pop, rng))
	}

	skeletons := make([]*entity.Skeleton, 0, len(cfg.Spawns))
	for _, sp := range cfg.Spawns {
		skeletons = append(skeletons, entity.NewSkeleton(sp.X, sp.Y))
	}

	return &World{
		Terrain:   terrain,
		Props:     props,
		Trees:     trees,
		Skeletons: skeletons,
	}
}

func newTree(x, y float64, pop config.PopulationConfig, rng *rand.Rand) entity.Tree {
	t := entity.Tree{
		X:      x,
		Y:      y,
		Height: pop.TreeMinHeight + rng.Float64()*pop.TreeHeightRange,
	}
	for i := range t.Branches {
		t.Branches[i] = entity.Branch{
			Length: t.Height * (0.3 + rng.Float64()*0.4),
			Angle:  -math.Pi/2 + (rng.Float64()-0.5)*2,
		}
	}
	return t
}

// ResolveSeed picks the population seed. A non-zero override wins over the
// world's own seed; when both are zero the clock decides.
func ResolveSeed(worldSeed, override int64) int64 {
	switch {
	case override != 0:
		return override
	case worldSeed != 0:
		return worldSeed
	default:
		return time.Now().UnixNano()
	}
}
