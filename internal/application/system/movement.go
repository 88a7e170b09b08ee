package system

import (
	"github.com/younwookim/kumite/internal/domain/catalog"
	"github.com/younwookim/kumite/internal/domain/entity"
)

// MovementSystem handles walking, facing, pushbox separation, hit
// pushback and stage bounds. All math is integer at the 100x position
// scale so two runs with the same inputs land on identical positions.
type MovementSystem struct {
	stage *entity.Stage
}

// NewMovementSystem creates a movement system for the given stage
func NewMovementSystem(stage *entity.Stage) *MovementSystem {
	return &MovementSystem{stage: stage}
}

// Walk moves a neutral fighter holding a pure forward or back
// direction. Up/down components keep the fighter in place.
func (m *MovementSystem) Walk(f *entity.Fighter, ch *catalog.Character, dir entity.Direction) {
	if !f.CanAct() || ch == nil {
		return
	}
	switch dir {
	case entity.DirForward:
		f.X += f.Facing * ch.WalkSpeed
	case entity.DirBack:
		f.X -= f.Facing * ch.BackSpeed
	}
	f.X = m.stage.ClampX(f.X)
}

// Face turns neutral fighters toward their opponent. A fighter mid-move
// keeps its facing until recovery, as the catalog boxes were authored
// against it.
func (m *MovementSystem) Face(a, b *entity.Fighter) {
	if a.IsNeutral() {
		if b.X > a.X {
			a.Facing = 1
		} else if b.X < a.X {
			a.Facing = -1
		}
	}
	if b.IsNeutral() {
		if a.X > b.X {
			b.Facing = 1
		} else if a.X < b.X {
			b.Facing = -1
		}
	}
}

// Separate resolves pushbox overlap by shoving both fighters apart by
// equal halves, respecting the walls. Widths are pushbox widths in
// pixels.
func (m *MovementSystem) Separate(a, b *entity.Fighter, widthA, widthB int) {
	minGap := (widthA + widthB) / 2 * entity.PositionScale
	dist := a.X - b.X
	abs := dist
	if abs < 0 {
		abs = -dist
	}
	if abs >= minGap {
		return
	}

	push := (minGap - abs + 1) / 2
	left, right := a, b
	if a.X > b.X {
		left, right = b, a
	}
	left.X = m.stage.ClampX(left.X - push)
	right.X = m.stage.ClampX(right.X + push)

	// A cornered fighter can't give ground; shove the other one the
	// full distance instead.
	gap := right.X - left.X
	if gap < minGap {
		if m.stage.AtWall(left.X) {
			right.X = m.stage.ClampX(left.X + minGap)
		} else if m.stage.AtWall(right.X) {
			left.X = m.stage.ClampX(right.X - minGap)
		}
	}
}

// ApplyPushback shoves the defender away from the attacker by the
// given pixel amount. When the defender is already cornered, the
// remainder pushes the attacker back instead, as fighting games do.
func (m *MovementSystem) ApplyPushback(attacker, defender *entity.Fighter, pushback int) {
	if pushback <= 0 {
		return
	}
	amount := pushback * entity.PositionScale

	dir := 1
	if defender.X < attacker.X {
		dir = -1
	} else if defender.X == attacker.X {
		dir = -attacker.Facing
	}

	target := defender.X + dir*amount
	clamped := m.stage.ClampX(target)
	defender.X = clamped

	remainder := target - clamped
	if remainder != 0 {
		attacker.X = m.stage.ClampX(attacker.X - remainder)
	}
}
