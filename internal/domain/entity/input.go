package entity

// Direction is a facing-relative 8-way direction plus neutral.
// Forward always points toward the opponent regardless of which
// side of the screen the fighter stands on.
type Direction uint8

const (
	DirNeutral Direction = iota
	DirUp
	DirUpForward
	DirForward
	DirDownForward
	DirDown
	DirDownBack
	DirBack
	DirUpBack
	directionCount
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirNeutral:
		return "N"
	case DirUp:
		return "U"
	case DirUpForward:
		return "UF"
	case DirForward:
		return "F"
	case DirDownForward:
		return "DF"
	case DirDown:
		return "D"
	case DirDownBack:
		return "DB"
	case DirBack:
		return "B"
	case DirUpBack:
		return "UB"
	default:
		return "invalid"
	}
}

// Valid reports whether the direction code is in the legality table.
// Corrupt sample codes outside this range are corrected by the
// sampler, never propagated.
func (d Direction) Valid() bool {
	return d < directionCount
}

// HasForward reports whether the direction contains a forward component
func (d Direction) HasForward() bool {
	return d == DirForward || d == DirUpForward || d == DirDownForward
}

// HasBack reports whether the direction contains a back component
func (d Direction) HasBack() bool {
	return d == DirBack || d == DirUpBack || d == DirDownBack
}

// HasDown reports whether the direction contains a down component
func (d Direction) HasDown() bool {
	return d == DirDown || d == DirDownForward || d == DirDownBack
}

// HasUp reports whether the direction contains an up component
func (d Direction) HasUp() bool {
	return d == DirUp || d == DirUpForward || d == DirUpBack
}

// Buttons is a bitmask of currently held attack buttons
type Buttons uint8

const (
	ButtonLight Buttons = 1 << iota
	ButtonHeavy
	ButtonKick
	ButtonSweep
)

// Has reports whether all buttons in b are held
func (bs Buttons) Has(b Buttons) bool {
	return bs&b == b
}

// RawInput is one per-player input sample for a single logical frame,
// as delivered by the external input boundary. Directions are absolute
// screen directions; the sampler converts them to facing-relative ones.
type RawInput struct {
	Up      bool
	Down    bool
	Left    bool
	Right   bool
	Buttons Buttons
}
