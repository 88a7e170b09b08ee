package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/kumite/internal/domain/entity"
)

func pushDirs(s *InputSampler, facing int, dirs ...entity.RawInput) {
	for _, d := range dirs {
		s.Push(d, facing)
	}
}

func rawRight() entity.RawInput { return entity.RawInput{Right: true} }
func rawLeft() entity.RawInput  { return entity.RawInput{Left: true} }
func rawDown() entity.RawInput  { return entity.RawInput{Down: true} }

func TestInputSampler_FacingRelativeDirections(t *testing.T) {
	t.Run("facing right, right is forward", func(t *testing.T) {
		s := NewInputSampler(0, nil)
		s.Push(rawRight(), 1)
		assert.Equal(t, entity.DirForward, s.Direction())
	})

	t.Run("facing left, right is back", func(t *testing.T) {
		s := NewInputSampler(0, nil)
		s.Push(rawRight(), -1)
		assert.Equal(t, entity.DirBack, s.Direction())
	})

	t.Run("diagonals combine", func(t *testing.T) {
		s := NewInputSampler(0, nil)
		s.Push(entity.RawInput{Down: true, Right: true}, 1)
		assert.Equal(t, entity.DirDownForward, s.Direction())
	})
}

func TestInputSampler_SOCDCorrection(t *testing.T) {
	t.Run("left plus right resolves to most recent press", func(t *testing.T) {
		s := NewInputSampler(0, nil)
		s.Push(rawLeft(), 1)
		s.Push(entity.RawInput{Left: true, Right: true}, 1)
		// Right was pressed later, so right wins.
		assert.Equal(t, entity.DirForward, s.Direction())
	})

	t.Run("up plus down resolves to most recent press", func(t *testing.T) {
		s := NewInputSampler(0, nil)
		s.Push(entity.RawInput{Up: true}, 1)
		s.Push(entity.RawInput{Up: true, Down: true}, 1)
		assert.Equal(t, entity.DirDown, s.Direction())
	})
}

func TestInputSampler_InvalidDirectionCorrected(t *testing.T) {
	s := NewInputSampler(0, nil)
	s.PushDirection(entity.DirDownBack, 0)
	s.PushDirection(entity.Direction(200), 0)
	// Corrupt code corrected to the last valid direction, never a fault.
	assert.Equal(t, entity.DirDownBack, s.Direction())
}

func TestInputSampler_QuarterCircleForward(t *testing.T) {
	t.Run("detected exactly once", func(t *testing.T) {
		s := NewInputSampler(0, nil)
		pushDirs(s, 1,
			rawDown(),
			entity.RawInput{Down: true, Right: true},
			rawRight(),
		)
		require.True(t, s.HasMotion("qcf"))
		assert.Equal(t, []string{"qcf"}, s.Motions())

		// Holding forward must not re-report the motion.
		s.Push(rawRight(), 1)
		assert.False(t, s.HasMotion("qcf"))
		s.Push(rawRight(), 1)
		assert.False(t, s.HasMotion("qcf"))
	})

	t.Run("elements may be held several frames", func(t *testing.T) {
		s := NewInputSampler(0, nil)
		pushDirs(s, 1,
			rawDown(), rawDown(), rawDown(),
			entity.RawInput{Down: true, Right: true},
			entity.RawInput{Down: true, Right: true},
			rawRight(),
		)
		assert.True(t, s.HasMotion("qcf"))
	})

	t.Run("mirrored on a left-facing fighter", func(t *testing.T) {
		s := NewInputSampler(0, nil)
		pushDirs(s, -1,
			rawDown(),
			entity.RawInput{Down: true, Left: true},
			rawLeft(),
		)
		assert.True(t, s.HasMotion("qcf"))
	})

	t.Run("too slow to complete within the window", func(t *testing.T) {
		s := NewInputSampler(0, nil)
		s.Push(rawDown(), 1)
		for i := 0; i < 12; i++ {
			s.Push(entity.RawInput{Down: true, Right: true}, 1)
		}
		s.Push(rawRight(), 1)
		assert.False(t, s.HasMotion("qcf"))
	})

	t.Run("foreign direction breaks the sequence", func(t *testing.T) {
		s := NewInputSampler(0, nil)
		pushDirs(s, 1,
			rawDown(),
			rawLeft(), // back: not part of qcf
			entity.RawInput{Down: true, Right: true},
			rawRight(),
		)
		assert.False(t, s.HasMotion("qcf"))
	})
}

func TestInputSampler_QuarterCircleBack(t *testing.T) {
	s := NewInputSampler(0, nil)
	pushDirs(s, 1,
		rawDown(),
		entity.RawInput{Down: true, Left: true},
		rawLeft(),
	)
	assert.True(t, s.HasMotion("qcb"))
	assert.False(t, s.HasMotion("qcf"))
}

func TestInputSampler_DragonPunch(t *testing.T) {
	s := NewInputSampler(0, nil)
	pushDirs(s, 1,
		rawRight(),
		rawDown(),
		entity.RawInput{Down: true, Right: true},
	)
	assert.True(t, s.HasMotion("dp"))
}

func TestInputSampler_ChargeDetection(t *testing.T) {
	t.Run("back charge reached after threshold", func(t *testing.T) {
		s := NewInputSampler(45, nil)
		for i := 0; i < 44; i++ {
			s.Push(rawLeft(), 1)
		}
		assert.False(t, s.HasChargeBack())
		s.Push(rawLeft(), 1)
		assert.True(t, s.HasChargeBack())
		assert.Equal(t, 45, s.ChargeBack())
	})

	t.Run("down-back charges both directions", func(t *testing.T) {
		s := NewInputSampler(45, nil)
		for i := 0; i < 45; i++ {
			s.Push(entity.RawInput{Down: true, Left: true}, 1)
		}
		assert.True(t, s.HasChargeBack())
		assert.True(t, s.HasChargeDown())
	})

	t.Run("resets immediately on direction change", func(t *testing.T) {
		s := NewInputSampler(45, nil)
		for i := 0; i < 45; i++ {
			s.Push(rawLeft(), 1)
		}
		require.True(t, s.HasChargeBack())
		s.Push(rawRight(), 1)
		assert.False(t, s.HasChargeBack())
		assert.Equal(t, 0, s.ChargeBack())
	})

	t.Run("charge remains usable on the release frame", func(t *testing.T) {
		s := NewInputSampler(45, nil)
		for i := 0; i < 45; i++ {
			s.Push(rawLeft(), 1)
		}
		s.Push(rawRight(), 1)
		// The trigger frame releases the charge into forward; the
		// previous frame's full charge still qualifies.
		assert.True(t, s.ChargeReady("back"))
		s.Push(rawRight(), 1)
		assert.False(t, s.ChargeReady("back"))
	})
}

func TestInputSampler_ButtonEdges(t *testing.T) {
	s := NewInputSampler(0, nil)
	s.Push(entity.RawInput{Buttons: entity.ButtonLight}, 1)
	assert.Equal(t, entity.ButtonLight, s.ButtonsPressed())

	s.Push(entity.RawInput{Buttons: entity.ButtonLight | entity.ButtonHeavy}, 1)
	assert.Equal(t, entity.ButtonHeavy, s.ButtonsPressed(), "held light is not a new press")
	assert.True(t, s.Buttons().Has(entity.ButtonLight))
}

func TestInputSampler_JustTapped(t *testing.T) {
	s := NewInputSampler(0, nil)
	s.Push(rawRight(), 1)
	assert.True(t, s.JustTapped(entity.DirForward))

	s.Push(rawRight(), 1)
	assert.False(t, s.JustTapped(entity.DirForward), "held direction is not a tap")

	s.Push(entity.RawInput{Down: true, Right: true}, 1)
	assert.True(t, s.JustTapped(entity.DirDownForward))
}

func TestInputSampler_Reset(t *testing.T) {
	s := NewInputSampler(45, nil)
	for i := 0; i < 50; i++ {
		s.Push(rawLeft(), 1)
	}
	s.Reset()
	assert.Equal(t, entity.DirNeutral, s.Direction())
	assert.False(t, s.HasChargeBack())
	assert.Empty(t, s.Motions())
}
