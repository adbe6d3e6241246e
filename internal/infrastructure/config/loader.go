package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Simulation *SimulationConfig
	World      *WorldConfig
}

// Loader loads configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadSimulation loads simulation.json on top of the defaults,
// so a file only needs the keys it changes
func (l *Loader) LoadSimulation() (*SimulationConfig, error) {
	cfg := Default()
	if err := l.decode("simulation.json", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation.json: %w", err)
	}
	return cfg, nil
}

// LoadWorld loads a world JSON file from worlds/
func (l *Loader) LoadWorld(name string) (*WorldConfig, error) {
	var cfg WorldConfig
	if err := l.decode("worlds/"+name+".json", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world %s: %w", name, err)
	}
	return &cfg, nil
}

// LoadAll loads the simulation config and the named world
func (l *Loader) LoadAll(world string) (*GameConfig, error) {
	sim, err := l.LoadSimulation()
	if err != nil {
		return nil, err
	}

	w, err := l.LoadWorld(world)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Simulation: sim,
		World:      w,
	}, nil
}

func (l *Loader) decode(path string, v any) error {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
