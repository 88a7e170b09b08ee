package system

import "github.com/younwookim/kumite/internal/domain/entity"

// BufferDepth is the rolling input buffer length. Deep enough to cover
// the longest recognized motion window with room to spare; charge is
// tracked by counters, not by scanning the buffer.
const BufferDepth = 64

// DefaultChargeFrames is the minimum hold before a charge direction
// reports as ready.
const DefaultChargeFrames = 45

// MotionPattern is an ordered direction subsequence recognized over a
// bounded frame window.
type MotionPattern struct {
	Name   string
	Seq    []entity.Direction
	Window int // max frames from first to last element, inclusive
}

// DefaultMotions returns the stock motion table
func DefaultMotions() []MotionPattern {
	return []MotionPattern{
		{Name: "qcf", Seq: []entity.Direction{entity.DirDown, entity.DirDownForward, entity.DirForward}, Window: 12},
		{Name: "qcb", Seq: []entity.Direction{entity.DirDown, entity.DirDownBack, entity.DirBack}, Window: 12},
		{Name: "dp", Seq: []entity.Direction{entity.DirForward, entity.DirDown, entity.DirDownForward}, Window: 15},
	}
}

type sample struct {
	dir     entity.Direction
	buttons entity.Buttons
}

// InputSampler keeps a per-player rolling buffer of corrected,
// facing-relative input samples and derives motions, taps and charge
// state from it. One sample is pushed per simulation frame.
type InputSampler struct {
	buf   [BufferDepth]sample
	head  int // index of the most recent sample
	size  int
	frame int

	motions  []MotionPattern
	detected []string

	chargeFrames   int
	chargeBack     int
	chargeDown     int
	prevChargeBack int
	prevChargeDown int

	// Most recent press per axis, used to resolve simultaneous
	// opposite directions to the last valid single direction.
	lastHorz int // -1 left, +1 right
	lastVert int // -1 up, +1 down

	prevRaw     entity.RawInput
	prevButtons entity.Buttons
	lastValid   entity.Direction
}

// NewInputSampler creates a sampler with the given charge threshold
// and motion table. Zero/nil arguments select the defaults.
func NewInputSampler(chargeFrames int, motions []MotionPattern) *InputSampler {
	if chargeFrames <= 0 {
		chargeFrames = DefaultChargeFrames
	}
	if motions == nil {
		motions = DefaultMotions()
	}
	return &InputSampler{
		motions:      motions,
		chargeFrames: chargeFrames,
		lastValid:    entity.DirNeutral,
	}
}

// Reset clears all buffered samples and derived state
func (s *InputSampler) Reset() {
	*s = InputSampler{
		motions:      s.motions,
		chargeFrames: s.chargeFrames,
		lastValid:    entity.DirNeutral,
	}
}

// Push records one raw sample for the current frame. Facing converts
// absolute left/right into forward/back so that motions read the same
// on either side of the screen.
func (s *InputSampler) Push(raw entity.RawInput, facing int) {
	// Track the most recent press on each axis for SOCD resolution
	if raw.Left && !s.prevRaw.Left {
		s.lastHorz = -1
	}
	if raw.Right && !s.prevRaw.Right {
		s.lastHorz = 1
	}
	if raw.Up && !s.prevRaw.Up {
		s.lastVert = -1
	}
	if raw.Down && !s.prevRaw.Down {
		s.lastVert = 1
	}

	h := 0
	switch {
	case raw.Left && raw.Right:
		h = s.lastHorz
	case raw.Left:
		h = -1
	case raw.Right:
		h = 1
	}

	v := 0
	switch {
	case raw.Up && raw.Down:
		v = s.lastVert
	case raw.Up:
		v = -1
	case raw.Down:
		v = 1
	}

	s.prevRaw = raw
	s.PushDirection(directionFromAxes(h*facing, v), raw.Buttons)
}

// PushDirection records one already-resolved directional sample.
// Directions outside the legality table are corrected to the last
// valid direction rather than propagated as a fault.
func (s *InputSampler) PushDirection(dir entity.Direction, buttons entity.Buttons) {
	if !dir.Valid() {
		dir = s.lastValid
	}
	s.lastValid = dir

	s.prevButtons = s.Buttons()
	s.head = (s.head + 1) % BufferDepth
	s.buf[s.head] = sample{dir: dir, buttons: buttons}
	if s.size < BufferDepth {
		s.size++
	}
	s.frame++

	s.prevChargeBack = s.chargeBack
	s.prevChargeDown = s.chargeDown
	if dir.HasBack() {
		s.chargeBack++
	} else {
		s.chargeBack = 0
	}
	if dir.HasDown() {
		s.chargeDown++
	} else {
		s.chargeDown = 0
	}

	s.detected = s.detectMotions()
}

// directionFromAxes maps facing-relative axes to a direction.
// fwd: +1 toward the opponent, -1 away. v: +1 down, -1 up.
func directionFromAxes(fwd, v int) entity.Direction {
	switch {
	case fwd > 0 && v > 0:
		return entity.DirDownForward
	case fwd > 0 && v < 0:
		return entity.DirUpForward
	case fwd > 0:
		return entity.DirForward
	case fwd < 0 && v > 0:
		return entity.DirDownBack
	case fwd < 0 && v < 0:
		return entity.DirUpBack
	case fwd < 0:
		return entity.DirBack
	case v > 0:
		return entity.DirDown
	case v < 0:
		return entity.DirUp
	default:
		return entity.DirNeutral
	}
}

// at returns the sample n frames ago. at(0) is the current frame.
func (s *InputSampler) at(n int) sample {
	if n >= s.size {
		return sample{dir: entity.DirNeutral}
	}
	return s.buf[(s.head-n+BufferDepth)%BufferDepth]
}

// Direction returns the corrected direction for the current frame
func (s *InputSampler) Direction() entity.Direction {
	return s.at(0).dir
}

// Buttons returns the buttons held on the current frame
func (s *InputSampler) Buttons() entity.Buttons {
	if s.size == 0 {
		return 0
	}
	return s.buf[s.head].buttons
}

// ButtonsPressed returns buttons newly pressed on the current frame
func (s *InputSampler) ButtonsPressed() entity.Buttons {
	return s.Buttons() &^ s.prevButtons
}

// JustTapped reports whether the direction changed to d this frame
func (s *InputSampler) JustTapped(d entity.Direction) bool {
	return s.at(0).dir == d && s.at(1).dir != d
}

// Motions returns the motions completed on the current frame.
// A completed sequence is reported exactly once, on the frame its
// final direction edge lands.
func (s *InputSampler) Motions() []string {
	return s.detected
}

// HasMotion reports whether the named motion completed this frame
func (s *InputSampler) HasMotion(name string) bool {
	for _, m := range s.detected {
		if m == name {
			return true
		}
	}
	return false
}

func (s *InputSampler) detectMotions() []string {
	var out []string
	cur := s.at(0).dir
	for _, p := range s.motions {
		last := p.Seq[len(p.Seq)-1]
		if cur != last {
			continue
		}
		// Final element must be an edge, otherwise a held direction
		// would re-report the motion every frame.
		if s.at(1).dir == last {
			continue
		}
		idx := len(p.Seq) - 2
		for n := 1; n < p.Window && n < s.size && idx >= 0; n++ {
			d := s.at(n).dir
			switch d {
			case p.Seq[idx]:
				idx--
			case p.Seq[idx+1]:
				// previous element held for more than one frame
			case entity.DirNeutral:
				// a neutral gap between elements does not break the motion
			default:
				idx = len(p.Seq) // foreign direction breaks the sequence
			}
			if idx >= len(p.Seq) {
				break
			}
		}
		if idx < 0 {
			out = append(out, p.Name)
		}
	}
	return out
}

// ChargeBack returns consecutive frames the back component was held
func (s *InputSampler) ChargeBack() int {
	return s.chargeBack
}

// ChargeDown returns consecutive frames the down component was held
func (s *InputSampler) ChargeDown() int {
	return s.chargeDown
}

// HasChargeBack reports a full back charge on the current frame.
// The counter resets immediately on direction change.
func (s *InputSampler) HasChargeBack() bool {
	return s.chargeBack >= s.chargeFrames
}

// HasChargeDown reports a full down charge on the current frame
func (s *InputSampler) HasChargeDown() bool {
	return s.chargeDown >= s.chargeFrames
}

// ChargeReady reports whether a charge of the given kind ("back" or
// "down") is usable this frame. The previous frame's counter also
// qualifies, so a charge release into forward/up on the trigger frame
// still counts.
func (s *InputSampler) ChargeReady(kind string) bool {
	switch kind {
	case "back":
		return s.chargeBack >= s.chargeFrames || s.prevChargeBack >= s.chargeFrames
	case "down":
		return s.chargeDown >= s.chargeFrames || s.prevChargeDown >= s.chargeFrames
	default:
		return false
	}
}
