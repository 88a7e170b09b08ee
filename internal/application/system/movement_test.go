package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/kumite/internal/domain/catalog"
	"github.com/younwookim/kumite/internal/domain/entity"
)

func testStage() *entity.Stage {
	return &entity.Stage{Width: 400, FloorY: 220, WallMargin: 20}
}

func walkChar() *catalog.Character {
	return &catalog.Character{Name: "walker", WalkSpeed: 200, BackSpeed: 150, Width: 24}
}

func TestMovementSystem_Walk(t *testing.T) {
	m := NewMovementSystem(testStage())
	ch := walkChar()

	t.Run("forward moves toward the opponent", func(t *testing.T) {
		f := entity.NewFighter(entity.Player1, "walker", 100, 220, 1, 1000)
		m.Walk(f, ch, entity.DirForward)
		assert.Equal(t, 100*entity.PositionScale+200, f.X)
	})

	t.Run("back walk is slower", func(t *testing.T) {
		f := entity.NewFighter(entity.Player1, "walker", 100, 220, 1, 1000)
		m.Walk(f, ch, entity.DirBack)
		assert.Equal(t, 100*entity.PositionScale-150, f.X)
	})

	t.Run("facing flips the walk direction", func(t *testing.T) {
		f := entity.NewFighter(entity.Player1, "walker", 100, 220, -1, 1000)
		m.Walk(f, ch, entity.DirForward)
		assert.Equal(t, 100*entity.PositionScale-200, f.X)
	})

	t.Run("crouching does not move", func(t *testing.T) {
		f := entity.NewFighter(entity.Player1, "walker", 100, 220, 1, 1000)
		m.Walk(f, ch, entity.DirDownForward)
		assert.Equal(t, 100*entity.PositionScale, f.X)
	})

	t.Run("stunned fighter cannot walk", func(t *testing.T) {
		f := entity.NewFighter(entity.Player1, "walker", 100, 220, 1, 1000)
		f.ForceDamaged(10)
		m.Walk(f, ch, entity.DirForward)
		assert.Equal(t, 100*entity.PositionScale, f.X)
	})

	t.Run("clamped at the wall", func(t *testing.T) {
		f := entity.NewFighter(entity.Player1, "walker", 21, 220, 1, 1000)
		m.Walk(f, ch, entity.DirBack)
		assert.Equal(t, testStage().LeftBound(), f.X)
	})
}

func TestMovementSystem_Face(t *testing.T) {
	m := NewMovementSystem(testStage())

	a := entity.NewFighter(entity.Player1, "walker", 300, 220, 1, 1000)
	b := entity.NewFighter(entity.Player2, "walker", 100, 220, 1, 1000)

	m.Face(a, b)
	assert.Equal(t, -1, a.Facing, "P1 turns to face the opponent on its left")
	assert.Equal(t, 1, b.Facing)

	// A fighter mid-move keeps its facing until recovery.
	a.BeginAttack(0)
	b.X = 350 * entity.PositionScale
	m.Face(a, b)
	assert.Equal(t, -1, a.Facing)
}

func TestMovementSystem_Separate(t *testing.T) {
	m := NewMovementSystem(testStage())

	t.Run("overlapping fighters are pushed apart", func(t *testing.T) {
		a := entity.NewFighter(entity.Player1, "walker", 200, 220, 1, 1000)
		b := entity.NewFighter(entity.Player2, "walker", 210, 220, -1, 1000)

		m.Separate(a, b, 24, 24)

		gap := b.X - a.X
		assert.GreaterOrEqual(t, gap, 24*entity.PositionScale)
	})

	t.Run("cornered fighter gives no ground", func(t *testing.T) {
		a := entity.NewFighter(entity.Player1, "walker", 20, 220, 1, 1000)
		b := entity.NewFighter(entity.Player2, "walker", 25, 220, -1, 1000)

		m.Separate(a, b, 24, 24)

		assert.Equal(t, testStage().LeftBound(), a.X)
		assert.GreaterOrEqual(t, b.X-a.X, 24*entity.PositionScale)
	})

	t.Run("no overlap, no movement", func(t *testing.T) {
		a := entity.NewFighter(entity.Player1, "walker", 100, 220, 1, 1000)
		b := entity.NewFighter(entity.Player2, "walker", 200, 220, -1, 1000)

		m.Separate(a, b, 24, 24)

		assert.Equal(t, 100*entity.PositionScale, a.X)
		assert.Equal(t, 200*entity.PositionScale, b.X)
	})
}

func TestMovementSystem_ApplyPushback(t *testing.T) {
	m := NewMovementSystem(testStage())

	t.Run("defender is shoved away from the attacker", func(t *testing.T) {
		att := entity.NewFighter(entity.Player1, "walker", 100, 220, 1, 1000)
		def := entity.NewFighter(entity.Player2, "walker", 140, 220, -1, 1000)

		m.ApplyPushback(att, def, 6)

		assert.Equal(t, 146*entity.PositionScale, def.X)
		assert.Equal(t, 100*entity.PositionScale, att.X)
	})

	t.Run("cornered defender pushes the attacker back instead", func(t *testing.T) {
		att := entity.NewFighter(entity.Player1, "walker", 340, 220, 1, 1000)
		def := entity.NewFighter(entity.Player2, "walker", 378, 220, -1, 1000)

		m.ApplyPushback(att, def, 10)

		assert.Equal(t, testStage().RightBound(), def.X)
		// 378+10 overshoots the 380 wall by 8; the attacker absorbs it.
		assert.Equal(t, 332*entity.PositionScale, att.X)
	})

	t.Run("zero pushback is a no-op", func(t *testing.T) {
		att := entity.NewFighter(entity.Player1, "walker", 100, 220, 1, 1000)
		def := entity.NewFighter(entity.Player2, "walker", 140, 220, -1, 1000)
		m.ApplyPushback(att, def, 0)
		assert.Equal(t, 140*entity.PositionScale, def.X)
	})
}
