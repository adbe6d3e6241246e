// Command stickwalk-term runs the walking simulation in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/stickwalk/internal/application/system"
	"github.com/younwookim/stickwalk/internal/domain/entity"
	"github.com/younwookim/stickwalk/internal/infrastructure/audio"
	"github.com/younwookim/stickwalk/internal/infrastructure/config"
)

var (
	styleGround = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleProp   = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleHeavy  = tcell.StyleDefault.Foreground(tcell.ColorMaroon)
	styleTarget = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleTree   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// Host drives a simulation from terminal input
type Host struct {
	screen tcell.Screen
	canvas *Canvas
	sim    *system.Simulation
	keys   keyState
	sound  *audio.Player
	last   string
}

func main() {
	configFlag := flag.String("config", "", "Config directory (defaults to the built-in tuning)")
	worldFlag := flag.String("world", "night", "World to load from the config directory")
	seedFlag := flag.Int64("seed", 0, "Population seed (0 uses the world's seed, then the clock)")
	muteFlag := flag.Bool("mute", false, "Disable sound cues")
	flag.Parse()

	cfg, err := loadConfig(*configFlag, *worldFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}

	sound := audio.NewPlayer()
	if !*muteFlag {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, run without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	seed := system.ResolveSeed(cfg.World.Population.Seed, *seedFlag)
	h := NewHost(screen, cfg, seed, sound)
	h.Run(cfg.Simulation.Display.Framerate)

	screen.Fini()
	sound.Close()
	fmt.Fprintf(os.Stdout, "seed %d, %d ticks\n", seed, h.sim.World.Tick)
}

func loadConfig(dir, world string) (*config.GameConfig, error) {
	if dir == "" {
		return &config.GameConfig{Simulation: config.Default(), World: config.DefaultWorld()}, nil
	}
	return config.NewLoader(dir).LoadAll(world)
}

// NewHost builds the world for seed and binds it to screen
func NewHost(screen tcell.Screen, cfg *config.GameConfig, seed int64, sound *audio.Player) *Host {
	w, h := screen.Size()
	world := system.LoadWorld(cfg.World, float64(cfg.Simulation.Display.ScreenHeight), rand.New(rand.NewSource(seed)))
	return &Host{
		screen: screen,
		canvas: NewCanvas(w, h),
		sim:    system.NewSimulation(cfg.Simulation, world),
		sound:  sound,
	}
}

// Run steps the simulation at fps until the user quits
func (h *Host) Run(fps int) {
	ticker := time.NewTicker(time.Second / time.Duration(max(fps, 1)))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !h.handle(ev) {
				return
			}
		case <-ticker.C:
			h.Step()
			h.Draw()
		}
	}
}

func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.keys.Handle(ev)
	case *tcell.EventResize:
		h.canvas.Resize(h.screen.Size())
		h.screen.Sync()
	}
	return true
}

// Step advances the simulation one tick with the current keys
func (h *Host) Step() {
	for _, ev := range h.sim.Step(h.keys.Tick()) {
		if cue, ok := cueFor(ev.Kind); ok {
			h.sound.Play(cue)
		}
		if ev.Kind != system.EventJump && ev.Kind != system.EventLand {
			h.last = fmt.Sprintf("%s prop %d at tick %d", ev.Kind, ev.Prop, ev.Tick)
		}
	}
}

func cueFor(k system.EventKind) (audio.Cue, bool) {
	switch k {
	case system.EventGrab:
		return audio.CueGrab, true
	case system.EventThrowRelease:
		return audio.CueThrow, true
	case system.EventDrop:
		return audio.CueDrop, true
	case system.EventLand:
		return audio.CueLand, true
	}
	return 0, false
}

// Draw rasterizes the world around the player
func (h *Host) Draw() {
	h.Render()
	h.canvas.Flush(h.screen)
}

// Render draws the world into the canvas without touching the screen
func (h *Host) Render() {
	c, w := h.canvas, h.sim.World
	c.Clear()

	p := w.Player()
	if p == nil {
		return
	}
	c.CenterOn(p.Pos(entity.Hip))
	c.FillBelow(w.Terrain.Height, '▀', '░', styleGround)

	for i := range w.Trees {
		t := &w.Trees[i]
		base := t.Y
		c.Line(vec(t.X, base), vec(t.X, base-t.Height), '|', styleTree)
		for b := range t.Branches {
			bx, by := t.BranchBase(b)
			tx, ty := t.BranchTip(b)
			c.Line(vec(bx, by), vec(tx, ty), '/', styleTree)
		}
	}

	for i := range w.Props {
		pr := &w.Props[i]
		style := styleProp
		switch {
		case p.Interaction.IsTargeting() && p.Interaction.Target == entity.PropID(i):
			style = styleTarget
		case pr.IsHeavy():
			style = styleHeavy
		}
		x, y := c.Project(pr.Pos)
		c.Set(x, y, '■', style)
	}

	for _, sk := range w.Skeletons {
		for _, b := range sk.Bones {
			c.Line(sk.Pos(b.A), sk.Pos(b.B), '•', styleBody)
		}
		x, y := c.Project(sk.Pos(entity.Head))
		c.Set(x, y, 'O', styleBody)
	}

	c.Text(0, 0, "a/d move  w jump  e grab/throw  q quit", styleHUD)
	c.Text(0, 1, fmt.Sprintf("%s  fatigue %3.0f%%  %s", p.Interaction.Phase, p.Fatigue*100, h.last), styleHUD)
}
