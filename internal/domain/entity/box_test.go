package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_WorldRect(t *testing.T) {
	r := Rect{OffsetX: 10, OffsetY: -40, Width: 30, Height: 20}

	t.Run("facing right", func(t *testing.T) {
		x, y, w, h := r.WorldRect(100, 200, 1)
		assert.Equal(t, 110, x)
		assert.Equal(t, 160, y)
		assert.Equal(t, 30, w)
		assert.Equal(t, 20, h)
	})

	t.Run("facing left mirrors the horizontal offset", func(t *testing.T) {
		x, y, w, h := r.WorldRect(100, 200, -1)
		assert.Equal(t, 60, x) // 100 - 10 - 30
		assert.Equal(t, 160, y)
		assert.Equal(t, 30, w)
		assert.Equal(t, 20, h)
	})

	t.Run("mirrored boxes cover symmetric ground", func(t *testing.T) {
		rx, _, _, _ := r.WorldRect(100, 0, 1)
		lx, _, w, _ := r.WorldRect(100, 0, -1)
		// Right-facing box starts 10 ahead of origin; left-facing box
		// ends 10 behind it.
		assert.Equal(t, 100+10, rx)
		assert.Equal(t, 100-10, lx+w)
	})
}

func TestRectsOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     [4]int
		expected bool
	}{
		{"overlapping", [4]int{0, 0, 10, 10}, [4]int{5, 5, 10, 10}, true},
		{"touching edges do not overlap", [4]int{0, 0, 10, 10}, [4]int{10, 0, 10, 10}, false},
		{"disjoint", [4]int{0, 0, 10, 10}, [4]int{20, 20, 5, 5}, false},
		{"contained", [4]int{0, 0, 20, 20}, [4]int{5, 5, 2, 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RectsOverlap(tt.a[0], tt.a[1], tt.a[2], tt.a[3], tt.b[0], tt.b[1], tt.b[2], tt.b[3])
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestOverlapCenter(t *testing.T) {
	cx, cy := OverlapCenter(0, 0, 10, 10, 6, 4, 10, 10)
	assert.Equal(t, 8, cx)  // intersection x: [6,10]
	assert.Equal(t, 7, cy)  // intersection y: [4,10]
}

func TestStage_Bounds(t *testing.T) {
	s := &Stage{Width: 400, FloorY: 220, WallMargin: 20}

	assert.Equal(t, 20*PositionScale, s.LeftBound())
	assert.Equal(t, 380*PositionScale, s.RightBound())
	assert.Equal(t, s.LeftBound(), s.ClampX(0))
	assert.Equal(t, s.RightBound(), s.ClampX(400*PositionScale))
	assert.Equal(t, 200*PositionScale, s.ClampX(200*PositionScale))
	assert.True(t, s.AtWall(s.LeftBound()))
	assert.False(t, s.AtWall(200*PositionScale))
}

func TestDirection_Components(t *testing.T) {
	assert.True(t, DirDownForward.HasDown())
	assert.True(t, DirDownForward.HasForward())
	assert.False(t, DirDownForward.HasBack())
	assert.True(t, DirUpBack.HasUp())
	assert.True(t, DirUpBack.HasBack())
	assert.False(t, DirNeutral.HasDown())
	assert.True(t, DirForward.Valid())
	assert.False(t, Direction(42).Valid())
}
