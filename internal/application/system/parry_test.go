package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/kumite/internal/domain/entity"
)

// tapForward opens a high/mid window on the sampler's next frame
func tapForward(s *InputSampler) {
	s.Push(entity.RawInput{Right: true}, 1)
}

func holdNeutral(s *InputSampler) {
	s.Push(entity.RawInput{}, 1)
}

func TestParryResolver_WindowIsExactlySevenFrames(t *testing.T) {
	t.Run("attack on frame 6 succeeds", func(t *testing.T) {
		s := NewInputSampler(0, nil)
		p := NewParryResolver(0, 0)

		tapForward(s)
		p.Update(s, true) // window opens, frame 0
		for i := 0; i < 6; i++ {
			holdNeutral(s)
			p.Update(s, true)
		}
		require.Equal(t, ParryWindowOpen, p.Phase())
		assert.True(t, p.TryResolve(entity.GuardMid))
	})

	t.Run("attack on frame 7 fails", func(t *testing.T) {
		s := NewInputSampler(0, nil)
		p := NewParryResolver(0, 0)

		tapForward(s)
		p.Update(s, true)
		for i := 0; i < 7; i++ {
			holdNeutral(s)
			p.Update(s, true)
		}
		assert.Equal(t, ParryIdle, p.Phase())
		assert.False(t, p.TryResolve(entity.GuardMid))
	})
}

func TestParryResolver_GuardHeightCoverage(t *testing.T) {
	t.Run("forward tap covers high and mid", func(t *testing.T) {
		s := NewInputSampler(0, nil)
		p := NewParryResolver(0, 0)
		tapForward(s)
		p.Update(s, true)

		assert.False(t, p.CoversLow())
		assert.False(t, p.TryResolve(entity.GuardLow))
		assert.True(t, p.TryResolve(entity.GuardHigh))
	})

	t.Run("down-forward tap covers low only", func(t *testing.T) {
		s := NewInputSampler(0, nil)
		p := NewParryResolver(0, 0)
		s.Push(entity.RawInput{Down: true, Right: true}, 1)
		p.Update(s, true)

		require.Equal(t, ParryWindowOpen, p.Phase())
		assert.True(t, p.CoversLow())
		assert.False(t, p.TryResolve(entity.GuardMid))
		assert.True(t, p.TryResolve(entity.GuardLow))
	})
}

func TestParryResolver_OneResolutionPerWindow(t *testing.T) {
	s := NewInputSampler(0, nil)
	p := NewParryResolver(0, 0)
	tapForward(s)
	p.Update(s, true)

	require.True(t, p.TryResolve(entity.GuardMid))
	assert.Equal(t, ParryResolved, p.Phase())
	assert.False(t, p.TryResolve(entity.GuardMid), "window already consumed")

	holdNeutral(s)
	p.Update(s, true)
	assert.Equal(t, ParryIdle, p.Phase())
}

func TestParryResolver_CannotOpenWhileLocked(t *testing.T) {
	s := NewInputSampler(0, nil)
	p := NewParryResolver(0, 0)

	tapForward(s)
	p.Update(s, false) // e.g. fighter is in hitstun
	assert.Equal(t, ParryIdle, p.Phase())
	assert.Equal(t, 0, p.FramesLeft())
}

func TestParryResolver_ExpiryIsSilent(t *testing.T) {
	s := NewInputSampler(0, nil)
	p := NewParryResolver(3, 0)

	tapForward(s)
	p.Update(s, true)
	assert.Equal(t, 3, p.FramesLeft())

	for i := 0; i < 3; i++ {
		holdNeutral(s)
		p.Update(s, true)
	}
	assert.Equal(t, ParryIdle, p.Phase())
	assert.Equal(t, 0, p.FramesLeft())
}

func TestParryResolver_Defaults(t *testing.T) {
	p := NewParryResolver(0, 0)
	assert.Equal(t, DefaultParryAdvantage, p.Advantage())
}
