package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"time"
)

// Replayer plays recorded frames back. It satisfies the controller's input
// port: Next selects a frame, then Axis and JustPressed answer from it.
type Replayer struct {
	data    ReplayData
	frame   int
	current FrameInput
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

// Next advances to the next frame and returns its duration.
// ok is false once every frame has been played.
func (r *Replayer) Next() (dt float64, ok bool) {
	if r.frame >= len(r.data.Frames) {
		r.current = FrameInput{}
		return 0, false
	}

	r.current = r.data.Frames[r.frame]
	r.frame++
	return r.current.DT, true
}

// Axis returns the recorded axis value for the current frame
func (r *Replayer) Axis(name string) float64 {
	return r.current.Axes[name]
}

// JustPressed reports whether binding was pressed in the current frame
func (r *Replayer) JustPressed(binding string) bool {
	return slices.Contains(r.current.Pressed, binding)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Stage returns the stage the replay was recorded on
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.current = FrameInput{}
}

// CreateTestReplayData creates replay data for testing (constant axis, no presses)
func CreateTestReplayData(frames int, dt float64, axis string, value float64) ReplayData {
	data := ReplayData{
		Version:   Version,
		Stage:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:    i,
			DT:   dt,
			Axes: map[string]float64{axis: value},
		}
	}

	return data
}
