package config

import (
	"errors"
	"fmt"
)

// WorldConfig is the root config for world.json
type WorldConfig struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Terrain    TerrainConfig    `json:"terrain"`
	Population PopulationConfig `json:"population"`
	Spawns     []PositionConfig `json:"spawns"`
	Smoke      []SmokeConfig    `json:"smoke"`
	Background string           `json:"background"`
}

type TerrainConfig struct {
	Layers         []LayerConfig `json:"layers"`
	CollisionLayer int           `json:"collisionLayer"`
}

type LayerConfig struct {
	Seed       float64         `json:"seed"`
	Base       float64         `json:"base"`
	Amplitude  float64         `json:"amplitude"`
	Speed      float64         `json:"speed"`
	Complexity float64         `json:"complexity"`
	Color      string          `json:"color"`
	Stroke     string          `json:"stroke,omitempty"`
	Basement   *BasementConfig `json:"basement,omitempty"`
}

// BasementConfig describes the building silhouettes standing on a far layer
type BasementConfig struct {
	Seed    float64 `json:"seed"`
	Color   string  `json:"color"`
	Windows string  `json:"windows"`
	Spacing float64 `json:"spacing"`
	Scale   float64 `json:"scale"`
}

type PopulationConfig struct {
	Seed            int64   `json:"seed"` // 0 picks a time-based seed
	Span            float64 `json:"span"` // props and trees are placed in [0, span)
	Props           int     `json:"props"`
	PropDropHeight  float64 `json:"propDropHeight"`
	HeavyThreshold  float64 `json:"heavyThreshold"`
	Trees           int     `json:"trees"`
	TreeMinHeight   float64 `json:"treeMinHeight"`
	TreeHeightRange float64 `json:"treeHeightRange"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type SmokeConfig struct {
	Color string  `json:"color"`
	Speed float64 `json:"speed"`
	Layer int     `json:"layer"` // drawn after this terrain layer
}

// Validate checks that the terrain has a collision layer and at least one spawn
func (c *WorldConfig) Validate() error {
	var errs []error
	if len(c.Terrain.Layers) == 0 {
		errs = append(errs, errors.New("terrain has no layers"))
	} else if c.Terrain.CollisionLayer < 0 || c.Terrain.CollisionLayer >= len(c.Terrain.Layers) {
		errs = append(errs, fmt.Errorf("collisionLayer %d out of range [0,%d)", c.Terrain.CollisionLayer, len(c.Terrain.Layers)))
	}
	if len(c.Spawns) == 0 {
		errs = append(errs, errors.New("world has no spawns"))
	}
	if c.Population.Props < 0 || c.Population.Trees < 0 {
		errs = append(errs, errors.New("population counts must not be negative"))
	}
	for where, v := range c.colors() {
		if _, err := ParseColor(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", where, err))
		}
	}
	for i, s := range c.Smoke {
		if s.Layer < 0 || s.Layer >= len(c.Terrain.Layers) {
			errs = append(errs, fmt.Errorf("smoke[%d].layer %d out of range", i, s.Layer))
		}
	}
	return errors.Join(errs...)
}

// DefaultWorld returns the built-in night landscape
func DefaultWorld() *WorldConfig {
	return &WorldConfig{
		ID:   "night",
		Name: "Night Ridge",
		Terrain: TerrainConfig{
			Layers: []LayerConfig{
				{Seed: 100, Base: 500, Amplitude: 600, Speed: 0.15, Complexity: 0.7, Color: "#2c2c44", Stroke: "#3a3a5a",
					Basement: &BasementConfig{Seed: 1000, Color: "#25253d", Windows: "#3a3a5a", Spacing: 600, Scale: 0.5}},
				{Seed: 123, Base: 350, Amplitude: 450, Speed: 0.4, Complexity: 1.2, Color: "#1a1a2e", Stroke: "#252540",
					Basement: &BasementConfig{Seed: 3500, Color: "#121225", Windows: "#25254a", Spacing: 500, Scale: 0.75}},
				{Seed: 456, Base: 200, Amplitude: 300, Speed: 0.7, Complexity: 2.0, Color: "#0d0d1a", Stroke: "#151525",
					Basement: &BasementConfig{Seed: 5000, Color: "#080815", Windows: "#4a4a7d", Spacing: 400, Scale: 1.1}},
				{Seed: 789, Base: 100, Amplitude: 250, Speed: 1.0, Complexity: 3.5, Color: "#000000", Stroke: "#ffffff"},
			},
			CollisionLayer: 3,
		},
		Population: PopulationConfig{
			Span:            12000,
			Props:           45,
			PropDropHeight:  100,
			HeavyThreshold:  0.85,
			Trees:           30,
			TreeMinHeight:   60,
			TreeHeightRange: 120,
		},
		Spawns: []PositionConfig{{X: 200, Y: 200}},
		Smoke: []SmokeConfig{
			{Color: "#646496", Speed: 0.2, Layer: 0},
			{Color: "#323250", Speed: 0.5, Layer: 2},
		},
		Background: "#3a3a5a",
	}
}
