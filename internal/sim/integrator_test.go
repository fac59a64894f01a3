package sim

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Meone101201/Solar-system/internal/scene"
)

func newTestRegistry() *scene.Registry {
	reg := scene.NewRegistry(1)
	reg.Add(&scene.Object{Id: "sun", Kind: scene.KindStar, RotationRate: 0.2})
	reg.Add(&scene.Object{Id: "belt", Kind: scene.KindBelt, OrbitalRate: 0.12})
	reg.Add(&scene.Object{Id: "earth", Kind: scene.KindPlanet, ParentId: "sun",
		Distance: 32, RotationRate: 1.0, OrbitalRate: 1.5})
	reg.Add(&scene.Object{Id: "moon", Kind: scene.KindMoon, ParentId: "earth",
		Distance: 3.4, OrbitalRate: 4.5})
	reg.SetBelt(&scene.BeltState{
		Rocks: []scene.Rock{
			{Position: rl.NewVector3(60, 1.5, 0), Scale: 0.2},
			{Position: rl.NewVector3(0, -0.5, 64), Scale: 0.1},
		},
		LabelAnchor: rl.NewVector3(62, 0, 0),
	})
	return reg
}

func TestSpeedScale(t *testing.T) {
	assert.Equal(t, BaseAngularRate, SpeedScale(1))
	assert.Equal(t, 2*BaseAngularRate, SpeedScale(2))
	assert.Zero(t, SpeedScale(0))
	assert.Zero(t, SpeedScale(-3), "negative multipliers clamp to paused")
}

func TestAdvanceAccumulatesAngles(t *testing.T) {
	reg := newTestRegistry()
	scale := SpeedScale(1)

	Advance(reg, scale)

	earth, _ := reg.Get("earth")
	assert.InDelta(t, 1.5*scale, earth.Angle, 1e-12)
	assert.InDelta(t, 1.0*scale, earth.Spin, 1e-12)

	moon, _ := reg.Get("moon")
	assert.InDelta(t, 4.5*scale, moon.Angle, 1e-12)

	sun, _ := reg.Get("sun")
	assert.InDelta(t, 0.2*scale, sun.Spin, 1e-12)
	assert.Zero(t, sun.Angle, "the star does not orbit")
}

func TestAdvancePausedFreezesEverything(t *testing.T) {
	reg := newTestRegistry()
	Advance(reg, SpeedScale(1))

	earth, _ := reg.Get("earth")
	angle, spin := earth.Angle, earth.Spin
	rock := reg.Belt().Rocks[0].Position

	for i := 0; i < 100; i++ {
		Advance(reg, SpeedScale(0))
	}

	assert.Equal(t, angle, earth.Angle)
	assert.Equal(t, spin, earth.Spin)
	assert.Equal(t, rock, reg.Belt().Rocks[0].Position)
}

func TestAdvanceBeltPolarRotation(t *testing.T) {
	reg := newTestRegistry()
	belt := reg.Belt()

	radii := make([]float64, len(belt.Rocks))
	heights := make([]float32, len(belt.Rocks))
	for i, r := range belt.Rocks {
		radii[i] = math.Hypot(float64(r.Position.X), float64(r.Position.Z))
		heights[i] = r.Position.Y
	}
	labelRadius := math.Hypot(float64(belt.LabelAnchor.X), float64(belt.LabelAnchor.Z))

	scale := SpeedScale(4)
	for i := 0; i < 50; i++ {
		Advance(reg, scale)
	}

	obj, _ := reg.Get("belt")
	require.InDelta(t, 0.12*scale*50, obj.Angle, 1e-9)

	for i, r := range belt.Rocks {
		assert.InDelta(t, radii[i], math.Hypot(float64(r.Position.X), float64(r.Position.Z)), 1e-3,
			"rock %d radius must survive repeated polar rotation", i)
		assert.Equal(t, heights[i], r.Position.Y, "rock %d height is untouched", i)
	}
	assert.InDelta(t, labelRadius, math.Hypot(float64(belt.LabelAnchor.X), float64(belt.LabelAnchor.Z)), 1e-3)
}

func TestAdvanceRotatesRockByBeltDelta(t *testing.T) {
	reg := newTestRegistry()
	belt := reg.Belt()
	scale := SpeedScale(1)

	start := belt.Rocks[0].Position
	Advance(reg, scale)
	got := belt.Rocks[0].Position

	delta := 0.12 * scale
	want := rl.NewVector3(
		float32(math.Cos(delta)*60),
		start.Y,
		float32(math.Sin(delta)*60),
	)
	assert.InDelta(t, want.X, got.X, 1e-4)
	assert.InDelta(t, want.Z, got.Z, 1e-4)
}
