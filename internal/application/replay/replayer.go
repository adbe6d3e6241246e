package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/stickwalk/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Left:   fi.L,
		Right:  fi.R,
		Jump:   fi.J,
		Action: fi.A,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the world seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// World returns the world name used for the replay
func (r *Replayer) World() string {
	return r.data.World
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing from a list of inputs
func CreateTestReplayData(seed int64, world string, inputs []system.InputState) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Seed:      seed,
		World:     world,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, len(inputs)),
	}
	for i, in := range inputs {
		data.Frames[i] = toFrame(i, in)
	}
	return data
}

func toFrame(i int, in system.InputState) FrameInput {
	return FrameInput{F: i, L: in.Left, R: in.Right, J: in.Jump, A: in.Action}
}
