package tween

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEasingEndpoints(t *testing.T) {
	for name, ease := range map[string]Easing{
		"Linear":        Linear,
		"EaseInOutQuad": EaseInOutQuad,
		"EaseOutCubic":  EaseOutCubic,
	} {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0, ease(0), 1e-12)
			assert.InDelta(t, 1, ease(1), 1e-12)
		})
	}

	assert.InDelta(t, 0.5, EaseInOutQuad(0.5), 1e-12, "symmetric at the midpoint")
}

func TestVec3Interpolates(t *testing.T) {
	tw := NewVec3(rl.NewVector3(0, 0, 0), rl.NewVector3(10, 20, 30), 1000, Linear)

	tw.Update(500)
	mid := tw.Value()
	assert.InDelta(t, 5, mid.X, 1e-4)
	assert.InDelta(t, 10, mid.Y, 1e-4)
	assert.InDelta(t, 15, mid.Z, 1e-4)
	assert.False(t, tw.Done())

	tw.Update(500)
	end := tw.Value()
	assert.InDelta(t, 10, end.X, 1e-4)
	assert.True(t, tw.Done())
}

func TestVec3CompletionFiresExactlyOnce(t *testing.T) {
	fired := 0
	tw := NewVec3(rl.NewVector3(0, 0, 0), rl.NewVector3(1, 0, 0), 100, EaseInOutQuad).
		OnComplete(func() { fired++ })

	assert.False(t, tw.Update(60))
	assert.Equal(t, 0, fired)

	assert.True(t, tw.Update(60), "crossing the duration completes")
	assert.Equal(t, 1, fired)

	assert.True(t, tw.Update(60))
	assert.True(t, tw.Update(1000))
	assert.Equal(t, 1, fired, "callback must not refire after completion")
}

func TestVec3RetargetEnd(t *testing.T) {
	tw := NewVec3(rl.NewVector3(0, 0, 0), rl.NewVector3(10, 0, 0), 1000, Linear)

	tw.Update(500)
	tw.RetargetEnd(rl.NewVector3(20, 0, 0))
	tw.Update(500)

	assert.InDelta(t, 20, tw.Value().X, 1e-4, "the retargeted end wins")
}

func TestVec3ZeroDuration(t *testing.T) {
	fired := 0
	tw := NewVec3(rl.NewVector3(1, 2, 3), rl.NewVector3(4, 5, 6), 0, nil).
		OnComplete(func() { fired++ })

	require.True(t, tw.Update(16))
	assert.Equal(t, 1, fired)
	assert.InDelta(t, 4, tw.Value().X, 1e-4)
}
