package main

import (
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/younwookim/stickwalk/internal/application/game"
	"github.com/younwookim/stickwalk/internal/application/replay"
	"github.com/younwookim/stickwalk/internal/application/scene/walking"
	"github.com/younwookim/stickwalk/internal/infrastructure/config"
)

func main() {
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded file")
	headlessFlag := flag.Bool("headless", false, "With -replay, simulate without a window and print the final pose")
	worldFlag := flag.String("world", "night", "World to load from configs/worlds")
	seedFlag := flag.Int64("seed", 0, "Population seed (0 uses the world's seed, then the clock)")
	configFlag := flag.String("config", "", "Load configs from this directory instead of the embedded ones")
	flag.Parse()

	loader, err := newLoader(*configFlag)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}

	var data *replay.ReplayData
	worldName := *worldFlag
	if *replayFlag != "" {
		data, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if data.World != "" {
			worldName = data.World
		}
	}

	cfg, err := loader.LoadAll(worldName)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *headlessFlag {
		if data == nil {
			log.Fatalf("-headless requires -replay")
		}
		if _, err := runHeadless(cfg, data, os.Stdout); err != nil {
			log.Fatalf("Headless replay failed: %v", err)
		}
		return
	}

	w := walking.New(cfg, walking.Options{
		WorldName:  worldName,
		Seed:       *seedFlag,
		RecordPath: *recordFlag,
		Replay:     data,
	})

	g := game.New(w, cfg.Simulation.Display)
	if err := game.Run(g, cfg.Simulation.Display, "Stickwalk - "+cfg.World.Name); err != nil {
		log.Fatal(err)
	}
}

func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
