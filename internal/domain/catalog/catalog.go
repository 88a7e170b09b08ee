// Package catalog holds the read-only move data table queried by the
// simulation. It is loaded once per match and never mutated by a step.
package catalog

import "github.com/younwookim/kumite/internal/domain/entity"

// Trigger describes what input starts a move
type Trigger struct {
	Button entity.Buttons
	Motion string // "", "qcf", "qcb", "dp"
	Charge string // "", "back", "down"
}

// FrameData is the box set and metadata for one frame of a move
type FrameData struct {
	Attack     []entity.AttackBox
	Body       []entity.BodyBox
	Cancel     bool // a new move may start from this frame
	Invincible bool // body boxes present no target this frame
}

// Move is a fixed-length frame sequence within one category
type Move struct {
	Name    string
	Trigger Trigger
	Frames  []FrameData
}

// Duration returns the total frame count of the move
func (m *Move) Duration() int {
	return len(m.Frames)
}

// Character is the full per-character data set
type Character struct {
	Name        string
	MaxVitality int
	WalkSpeed   int // scaled units per frame, forward
	BackSpeed   int // scaled units per frame, backward
	Width       int // pushbox width in pixels

	// States maps each category to its move list. Neutral, Damaged and
	// Blocking typically hold a single entry (the posture) at index 0.
	States map[entity.Category][]Move
}

// Catalog maps character names to their immutable data tables
type Catalog struct {
	chars map[string]*Character
}

// New creates a catalog from the given characters
func New(chars ...*Character) *Catalog {
	c := &Catalog{chars: make(map[string]*Character, len(chars))}
	for _, ch := range chars {
		c.chars[ch.Name] = ch
	}
	return c
}

// Character returns the named character, or nil when absent
func (c *Catalog) Character(name string) *Character {
	return c.chars[name]
}

// Len returns the number of loaded characters
func (c *Catalog) Len() int {
	return len(c.chars)
}

// Move returns the move for (character, category, index).
// Missing entries report ok=false rather than failing.
func (c *Catalog) Move(name string, cat entity.Category, move int) (*Move, bool) {
	ch := c.chars[name]
	if ch == nil {
		return nil, false
	}
	moves := ch.States[cat]
	if move < 0 || move >= len(moves) {
		return nil, false
	}
	return &moves[move], true
}

// Frame returns the frame data for (character, category, move, frame).
// Missing entries report ok=false rather than failing.
func (c *Catalog) Frame(name string, cat entity.Category, move, frame int) (FrameData, bool) {
	m, ok := c.Move(name, cat, move)
	if !ok {
		return FrameData{}, false
	}
	if frame < 0 || frame >= len(m.Frames) {
		return FrameData{}, false
	}
	return m.Frames[frame], true
}

// Boxes returns the active attack and body boxes for the given state
// and frame. A missing entry is simply a frame with no boxes: the
// fighter can neither hit nor be hit through that classification.
func (c *Catalog) Boxes(name string, cat entity.Category, move, frame int) ([]entity.AttackBox, []entity.BodyBox) {
	fd, ok := c.Frame(name, cat, move, frame)
	if !ok {
		return nil, nil
	}
	return fd.Attack, fd.Body
}

// Duration returns the move length in frames, 0 when absent
func (c *Catalog) Duration(name string, cat entity.Category, move int) int {
	m, ok := c.Move(name, cat, move)
	if !ok {
		return 0
	}
	return m.Duration()
}
