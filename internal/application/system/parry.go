package system

import "github.com/younwookim/kumite/internal/domain/entity"

// Parry timing defaults. A window is exactly seven frames wide and a
// successful parry grants eight frames of move-independent advantage.
const (
	DefaultParryWindow    = 7
	DefaultParryAdvantage = 8
)

// ParryPhase is the parry state machine phase
type ParryPhase uint8

const (
	ParryIdle ParryPhase = iota
	ParryWindowOpen
	ParryResolved
)

// String returns the string representation of the parry phase
func (p ParryPhase) String() string {
	switch p {
	case ParryIdle:
		return "Idle"
	case ParryWindowOpen:
		return "WindowOpen"
	case ParryResolved:
		return "Resolved"
	default:
		return "Unknown"
	}
}

// ParryResolver tracks one player's parry window. A forward tap opens
// a high/mid window, a down-forward tap opens a low window. At most
// one resolution happens per window; expiry is silent.
type ParryResolver struct {
	phase      ParryPhase
	framesLeft int
	low        bool // window covers low instead of high/mid

	window    int
	advantage int
}

// NewParryResolver creates a resolver with the given window length and
// frame advantage. Zero arguments select the defaults.
func NewParryResolver(window, advantage int) *ParryResolver {
	if window <= 0 {
		window = DefaultParryWindow
	}
	if advantage <= 0 {
		advantage = DefaultParryAdvantage
	}
	return &ParryResolver{window: window, advantage: advantage}
}

// Update advances the window by one frame and opens a new one on a
// qualifying input edge. canOpen gates window opening to fighters who
// are actually free to parry (a stunned fighter cannot).
func (p *ParryResolver) Update(s *InputSampler, canOpen bool) {
	switch p.phase {
	case ParryResolved:
		p.phase = ParryIdle
	case ParryWindowOpen:
		p.framesLeft--
		if p.framesLeft <= 0 {
			// Window expired with no matching event: no effect.
			p.phase = ParryIdle
			p.framesLeft = 0
		}
	case ParryIdle:
		if !canOpen {
			return
		}
		if s.JustTapped(entity.DirDownForward) {
			p.phase = ParryWindowOpen
			p.framesLeft = p.window
			p.low = true
		} else if s.JustTapped(entity.DirForward) {
			p.phase = ParryWindowOpen
			p.framesLeft = p.window
			p.low = false
		}
	}
}

// TryResolve converts an incoming attack into a parry when the window
// is open and covers the attack's guard height. Only one resolution is
// allowed per window.
func (p *ParryResolver) TryResolve(height entity.GuardHeight) bool {
	if p.phase != ParryWindowOpen {
		return false
	}
	if p.low != (height == entity.GuardLow) {
		return false
	}
	p.phase = ParryResolved
	p.framesLeft = 0
	return true
}

// Phase returns the current parry phase
func (p *ParryResolver) Phase() ParryPhase {
	return p.phase
}

// FramesLeft returns the remaining valid-parry frames, 0 when inactive
func (p *ParryResolver) FramesLeft() int {
	return p.framesLeft
}

// CoversLow reports whether the open window covers low attacks
func (p *ParryResolver) CoversLow() bool {
	return p.low
}

// Advantage returns the frame advantage granted on success
func (p *ParryResolver) Advantage() int {
	return p.advantage
}

// Reset clears the window, e.g. between rounds
func (p *ParryResolver) Reset() {
	p.phase = ParryIdle
	p.framesLeft = 0
	p.low = false
}
