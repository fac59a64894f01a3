// Package focus owns the camera: flying it to a framed view of a
// selected object, then locking onto that object's orbital motion
// frame by frame until the focus changes or the user returns to the
// overview.
package focus

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Meone101201/Solar-system/internal/scene"
	"github.com/Meone101201/Solar-system/internal/tween"
)

// TransitionMs is the duration of every camera transition.
const TransitionMs = 1500

var (
	worldUp = rl.NewVector3(0, 1, 0)
	origin  = rl.NewVector3(0, 0, 0)

	// OverviewPosition is the fixed unfocused camera pose, looking at
	// the origin.
	OverviewPosition = rl.NewVector3(-120, 90, -120)

	// starViewDir frames the star from an elevated forward angle,
	// since a radial/tangent split is meaningless at the origin.
	starViewDir = rl.Vector3Normalize(rl.NewVector3(0, 0.5, 1))
)

// Controller drives the camera. All methods run on the frame tick or
// from input handlers between ticks; there is no locking because there
// is no concurrency.
type Controller struct {
	reg    *scene.Registry
	Camera *rl.Camera3D

	// Narrow doubles the framing distance for narrow viewports.
	Narrow bool

	current       string
	transitioning bool

	posTween  *tween.Vec3
	lookTween *tween.Vec3
}

// New creates a controller bound to a registry and a camera, leaving
// the camera at the overview pose.
func New(reg *scene.Registry, cam *rl.Camera3D) *Controller {
	cam.Position = OverviewPosition
	cam.Target = origin
	cam.Up = worldUp
	return &Controller{reg: reg, Camera: cam}
}

// Focused returns the id of the focused object, "" for the overview.
func (c *Controller) Focused() string {
	return c.current
}

// Transitioning reports whether a camera transition is in flight.
func (c *Controller) Transitioning() bool {
	return c.transitioning
}

// RequestFocus starts a transition to a framed view of id. It is a
// silent no-op while a transition is in flight, when id is already
// focused, and when id is unknown.
func (c *Controller) RequestFocus(id string) {
	if c.transitioning || id == c.current {
		return
	}
	obj, ok := c.reg.Get(id)
	if !ok {
		return
	}

	c.current = id
	scene.ApplyVisibility(c.reg, id)

	world := c.reg.WorldPosition(id)
	c.transitioning = true
	c.posTween = tween.NewVec3(c.Camera.Position, TargetPose(obj, world, c.Narrow), TransitionMs, tween.EaseInOutQuad)
	c.lookTween = tween.NewVec3(c.Camera.Target, world, TransitionMs, tween.EaseInOutQuad).
		OnComplete(func() {
			c.transitioning = false
			// Snap exactly onto the object's then-current position,
			// eliminating residual interpolation error.
			c.Camera.Target = c.reg.WorldPosition(id)
		})
}

// RequestOverview returns the camera to the fixed overview pose and
// restores full visibility. Unlike RequestFocus it is always allowed;
// an in-flight transition is replaced rather than left to fight the
// new one over the camera.
func (c *Controller) RequestOverview() {
	c.current = ""
	scene.ApplyVisibility(c.reg, "")

	c.transitioning = true
	c.posTween = tween.NewVec3(c.Camera.Position, OverviewPosition, TransitionMs, tween.EaseOutCubic)
	c.lookTween = tween.NewVec3(c.Camera.Target, origin, TransitionMs, tween.EaseOutCubic).
		OnComplete(func() {
			c.transitioning = false
			c.Camera.Target = origin
		})
}

// Update advances the controller by one tick: active transitions move
// the camera; otherwise a settled focus tracks its object. speedScale
// must be the same value the integrator used this tick, and the
// integrator must have run first, so the pivots already reflect this
// frame's motion.
func (c *Controller) Update(dtMs float64, speedScale float64) {
	if c.posTween != nil {
		if c.current != "" {
			// The object keeps moving during the transition; chase its
			// live position instead of the stale start-of-transition one.
			c.lookTween.RetargetEnd(c.reg.WorldPosition(c.current))
		}
		done := c.posTween.Update(dtMs)
		c.lookTween.Update(dtMs)
		c.Camera.Position = c.posTween.Value()
		if !done {
			c.Camera.Target = c.lookTween.Value()
			return
		}
		c.posTween = nil
		c.lookTween = nil
		return
	}

	if c.current == "" || c.transitioning {
		return
	}
	c.track(speedScale)
}

// track keeps the settled camera locked to the focused object. The
// look-at point snaps to the object every frame; the camera position
// co-rotates around the relevant orbital pivots by exactly the angular
// delta the object advanced, so the relative offset vector stays
// constant in angle and the target never appears to strafe.
func (c *Controller) track(speedScale float64) {
	obj, ok := c.reg.Get(c.current)
	if !ok {
		return
	}

	switch obj.Kind {
	case scene.KindPlanet:
		c.Camera.Position = RotateAroundPoint(c.Camera.Position, origin, worldUp, obj.OrbitalRate*speedScale)
	case scene.KindMoon:
		parent, ok := c.reg.Get(obj.ParentId)
		if ok {
			// Parent first: the planet pivot used below must already
			// carry this frame's planetary motion.
			c.Camera.Position = RotateAroundPoint(c.Camera.Position, origin, worldUp, parent.OrbitalRate*speedScale)
			pivot := c.reg.WorldPosition(parent.Id)
			c.Camera.Position = RotateAroundPoint(c.Camera.Position, pivot, worldUp, obj.OrbitalRate*speedScale)
		}
		// Missing parent degrades to look-at-only tracking.
	}

	c.Camera.Target = c.reg.WorldPosition(c.current)
}

// Reattach rebinds the controller to a freshly built registry after a
// quality rebuild. In-flight transitions are cancelled; the surviving
// focus is re-applied and the camera snapped to the focused pose so
// the user's context survives the rebuild.
func (c *Controller) Reattach(reg *scene.Registry) {
	c.reg = reg
	c.posTween = nil
	c.lookTween = nil
	c.transitioning = false

	if c.current == "" {
		scene.ApplyVisibility(reg, "")
		return
	}
	obj, ok := reg.Get(c.current)
	if !ok {
		c.current = ""
		scene.ApplyVisibility(reg, "")
		c.Camera.Position = OverviewPosition
		c.Camera.Target = origin
		return
	}
	scene.ApplyVisibility(reg, c.current)
	world := reg.WorldPosition(c.current)
	c.Camera.Position = TargetPose(obj, world, c.Narrow)
	c.Camera.Target = world
}

// TargetPose computes the framed camera position for an object at its
// current world position. The star gets a fixed elevated-forward
// direction. Everything else gets an oblique three-quarter framing:
// the outward radial direction plus the tangent (world-up cross
// radial), at four radii out, lifted by 30% of the offset.
func TargetPose(obj *scene.Object, world rl.Vector3, narrow bool) rl.Vector3 {
	offset := float32(obj.Radius) * 4
	if narrow {
		offset *= 2
	}

	outward := rl.Vector3Subtract(world, origin)
	if obj.Kind == scene.KindStar || rl.Vector3Length(outward) < 1e-6 {
		// At the origin there is no radial direction to frame from;
		// the belt centered on it gets the same treatment.
		return rl.Vector3Add(world, rl.Vector3Scale(starViewDir, offset))
	}

	outward = rl.Vector3Normalize(outward)
	tangent := rl.Vector3Normalize(rl.Vector3CrossProduct(worldUp, outward))
	view := rl.Vector3Add(outward, tangent)

	pos := rl.Vector3Add(world, rl.Vector3Scale(view, offset))
	pos.Y += 0.3 * offset
	return pos
}

// RotateAroundPoint rotates p around pivot by theta radians about
// axis: translate to pivot-relative coordinates, apply the axis-angle
// rotation, translate back.
func RotateAroundPoint(p, pivot, axis rl.Vector3, theta float64) rl.Vector3 {
	rel := rl.Vector3Subtract(p, pivot)
	rel = rl.Vector3RotateByAxisAngle(rel, axis, float32(theta))
	return rl.Vector3Add(pivot, rel)
}
