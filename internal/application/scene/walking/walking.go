// Package walking provides the scene where the stickman walks the landscape.
package walking

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/stickwalk/internal/application/replay"
	"github.com/younwookim/stickwalk/internal/application/scene"
	"github.com/younwookim/stickwalk/internal/application/state"
	"github.com/younwookim/stickwalk/internal/application/system"
	"github.com/younwookim/stickwalk/internal/domain/entity"
	"github.com/younwookim/stickwalk/internal/infrastructure/config"
)

// smokeDrift is how far the smoke noise moves per tick
const smokeDrift = 0.01

// InputSource supplies one InputState per tick
type InputSource interface {
	GetInput() system.InputState
}

// Options configures a Walking scene
type Options struct {
	WorldName  string
	Seed       int64 // 0 uses the world's seed, then the clock
	RecordPath string
	Replay     *replay.ReplayData // plays this back instead of reading the keyboard
	Input      InputSource        // overrides the keyboard, for tests
}

// Walking is the main scene
type Walking struct {
	config  *config.GameConfig
	sim     *system.Simulation
	input   InputSource
	state   state.GameState
	resume  state.GameState
	camera  *Camera
	painter *painter
	screenW int
	screenH int
	seed    int64
	smoke   float64

	recorder       *replay.Recorder
	recordFilename string
	replayer       *replay.Replayer
}

// New creates a new Walking scene.
// If opts.RecordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, opts Options) *Walking {
	display := cfg.Simulation.Display
	w := &Walking{
		config:         cfg,
		input:          opts.Input,
		state:          state.StatePlaying,
		screenW:        display.ScreenWidth,
		screenH:        display.ScreenHeight,
		recordFilename: opts.RecordPath,
	}

	seed := system.ResolveSeed(cfg.World.Population.Seed, opts.Seed)
	if opts.Replay != nil {
		w.replayer = replay.NewReplayer(*opts.Replay)
		w.state = state.StateReplaying
		seed = opts.Replay.Seed
		log.Printf("Replaying %d frames (seed: %d, world: %s)", w.replayer.TotalFrames(), seed, opts.Replay.World)
	}
	w.seed = seed

	if w.input == nil {
		w.input = system.NewInputSystem()
	}

	w.reset()

	if opts.RecordPath != "" && w.replayer == nil {
		w.recorder = replay.NewRecorder(seed, opts.WorldName)
		log.Printf("Recording enabled: %s (seed: %d)", opts.RecordPath, seed)
	}

	return w
}

// reset rebuilds the world from the scene's seed
func (w *Walking) reset() {
	world := system.LoadWorld(w.config.World, float64(w.screenH), rand.New(rand.NewSource(w.seed)))
	w.sim = system.NewSimulation(w.config.Simulation, world)
	w.painter = newPainter(w.config.World)
	w.smoke = 0

	x, hipY := w.focus()
	w.camera = NewCamera(w.config.Simulation.Display.Framerate, w.screenW, w.screenH, x, hipY)
}

func (w *Walking) focus() (float64, float64) {
	p := w.sim.World.Player()
	if p == nil {
		return 0, 0
	}
	return p.X, p.Pos(entity.Hip).Y
}

// Simulation returns the running simulation
func (w *Walking) Simulation() *system.Simulation {
	return w.sim
}

// State returns the scene state
func (w *Walking) State() state.GameState {
	return w.state
}

// Update proceeds the scene by one tick (implements scene.Scene)
func (w *Walking) Update() (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return nil, scene.ErrQuit
	}

	if w.state.Advancing() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			w.pause()
			return nil, nil
		}
		if w.state == state.StateReplaying {
			w.updateReplaying()
		} else {
			w.updatePlaying()
		}
		return nil, nil
	}

	switch w.state {
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			w.state = w.resume
		}
	case state.StateFinished:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			w.restart()
		}
	}

	return nil, nil
}

func (w *Walking) updatePlaying() {
	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && w.recorder != nil {
		w.saveRecording()
	}

	input := w.input.GetInput()
	if w.recorder != nil {
		w.recorder.RecordFrame(input)
	}
	w.step(input)
}

func (w *Walking) updateReplaying() {
	input, ok := w.replayer.GetInput()
	if !ok {
		w.state = state.StateFinished
		log.Printf("Replay finished after %d frames", w.replayer.TotalFrames())
		return
	}
	w.step(input)
}

func (w *Walking) pause() {
	w.resume = w.state
	w.state = state.StatePaused
}

// step advances the simulation and everything that follows it
func (w *Walking) step(input system.InputState) {
	for _, ev := range w.sim.Step(input) {
		logEvent(ev)
	}
	w.camera.Follow(w.focus())
	w.smoke += smokeDrift
}

func logEvent(ev system.Event) {
	switch ev.Kind {
	case system.EventGrab, system.EventThrowStart, system.EventThrowRelease, system.EventDrop:
		log.Printf("tick %d: skeleton %d %s prop %d", ev.Tick, ev.Skeleton, ev.Kind, ev.Prop)
	}
}

// restart replays the recording again, or starts a fresh world
func (w *Walking) restart() {
	if w.replayer != nil {
		w.replayer.Reset()
		w.state = state.StateReplaying
	} else {
		w.state = state.StatePlaying
	}
	w.reset()
}

// saveRecording saves the current recording to file
func (w *Walking) saveRecording() {
	if w.recorder == nil {
		return
	}

	filename := w.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := w.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, w.recorder.FrameCount())
	}
}

// OnEnter is called when entering this scene
func (w *Walking) OnEnter() {}

// OnExit is called when leaving this scene
func (w *Walking) OnExit() {
	w.saveRecording()
}
