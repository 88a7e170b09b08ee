package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/kumite/internal/domain/entity"
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

func toRaw(p PlayerFrame) entity.RawInput {
	return entity.RawInput{
		Up:      p.U,
		Down:    p.D,
		Left:    p.L,
		Right:   p.R,
		Buttons: entity.Buttons(p.B),
	}
}

// GetInput returns both players' input for the current frame and
// advances. ok is false past the end of the recording.
func (r *Replayer) GetInput() ([2]entity.RawInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return [2]entity.RawInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return [2]entity.RawInput{toRaw(fi.P1), toRaw(fi.P2)}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Stage returns the stage the match was recorded on
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Characters returns the recorded character names
func (r *Replayer) Characters() [2]string {
	return r.data.Characters
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle players)
func CreateTestReplayData(frames int) ReplayData {
	data := ReplayData{
		Version:    "1.0",
		Stage:      "test",
		Characters: [2]string{"testman", "testman"},
		StartTime:  time.Now().Format(time.RFC3339),
		Frames:     make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i}
	}

	return data
}
