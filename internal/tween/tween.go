// Package tween provides time-bounded interpolation tasks advanced by
// the frame tick. A task holds its start and end values, duration,
// elapsed time, and easing curve; completion fires a callback exactly
// once. No goroutines: the tick driver calls Update with elapsed
// milliseconds and everything runs synchronously.
package tween

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Easing maps normalized progress [0,1] to an eased fraction.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseInOutQuad accelerates through the first half and decelerates
// through the second.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 2*(1-t)*(1-t)
}

// EaseOutCubic decelerates toward the end.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Vec3 interpolates a vector over a fixed duration.
type Vec3 struct {
	from, to   rl.Vector3
	durationMs float64
	elapsedMs  float64
	ease       Easing
	onComplete func()
	done       bool
}

// NewVec3 creates a vector tween. Non-positive durations complete on
// the first Update.
func NewVec3(from, to rl.Vector3, durationMs float64, ease Easing) *Vec3 {
	if ease == nil {
		ease = Linear
	}
	return &Vec3{from: from, to: to, durationMs: durationMs, ease: ease}
}

// OnComplete registers the completion callback and returns the tween.
func (v *Vec3) OnComplete(fn func()) *Vec3 {
	v.onComplete = fn
	return v
}

// RetargetEnd replaces the end value mid-flight. Used for look-at
// tweens whose target keeps moving during the transition.
func (v *Vec3) RetargetEnd(to rl.Vector3) {
	v.to = to
}

// Update advances the tween by dtMs and reports whether it is done.
// The completion callback fires exactly once, on the Update that
// crosses the duration.
func (v *Vec3) Update(dtMs float64) bool {
	if v.done {
		return true
	}
	v.elapsedMs += dtMs
	if v.elapsedMs >= v.durationMs {
		v.elapsedMs = v.durationMs
		v.done = true
		if v.onComplete != nil {
			v.onComplete()
		}
		return true
	}
	return false
}

// Done reports whether the duration has fully elapsed.
func (v *Vec3) Done() bool {
	return v.done
}

// Value returns the current interpolated vector.
func (v *Vec3) Value() rl.Vector3 {
	if v.durationMs <= 0 {
		return v.to
	}
	t := v.elapsedMs / v.durationMs
	if t > 1 {
		t = 1
	}
	f := float32(v.ease(t))
	return rl.Vector3Add(v.from, rl.Vector3Scale(rl.Vector3Subtract(v.to, v.from), f))
}
