// Package sim advances the orbital and rotational motion of every
// registry entry once per rendered frame.
package sim

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Meone101201/Solar-system/internal/scene"
)

// BaseAngularRate is the per-frame angular increment, in radians, of
// an object with a unit orbital rate at speed multiplier 1.
const BaseAngularRate = 0.004

// SpeedScale combines the base rate with the user speed multiplier.
// A multiplier of 0 pauses all motion; negative input is clamped to 0.
func SpeedScale(multiplier float64) float64 {
	if multiplier < 0 {
		multiplier = 0
	}
	return BaseAngularRate * multiplier
}

// Advance runs one integration tick. Self-rotation and orbital phase
// both accumulate rate*scale. The phase angle is the single source of
// truth: world positions are derived from it on demand rather than
// patched incrementally, so repeated ticks cannot drift the transforms.
// Belt entries additionally rotate every rock and the label anchor
// around the vertical axis by polar decomposition.
func Advance(reg *scene.Registry, scale float64) {
	if scale == 0 {
		return
	}
	for _, id := range reg.Ids() {
		o, _ := reg.Get(id)

		if o.RotationRate != 0 {
			o.Spin += o.RotationRate * scale
		}

		orbits := o.Kind != scene.KindStar && o.OrbitalRate != 0
		if !orbits {
			continue
		}
		delta := o.OrbitalRate * scale
		o.Angle += delta

		if o.Kind == scene.KindBelt {
			if belt := reg.Belt(); belt != nil {
				for i := range belt.Rocks {
					belt.Rocks[i].Position = rotateY(belt.Rocks[i].Position, delta)
				}
				belt.LabelAnchor = rotateY(belt.LabelAnchor, delta)
			}
		}
	}
}

// rotateY rotates a point around the vertical axis by decomposing it
// into polar coordinates and re-applying cos/sin with the new angle.
// The Y component and the radius are preserved exactly.
func rotateY(p rl.Vector3, delta float64) rl.Vector3 {
	radius := math.Hypot(float64(p.X), float64(p.Z))
	angle := math.Atan2(float64(p.Z), float64(p.X)) + delta
	return rl.NewVector3(
		float32(math.Cos(angle)*radius),
		p.Y,
		float32(math.Sin(angle)*radius),
	)
}
