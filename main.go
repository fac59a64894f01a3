package main

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Meone101201/Solar-system/internal/body"
	"github.com/Meone101201/Solar-system/internal/config"
	"github.com/Meone101201/Solar-system/internal/focus"
	"github.com/Meone101201/Solar-system/internal/scene"
	"github.com/Meone101201/Solar-system/internal/sim"
	"github.com/Meone101201/Solar-system/internal/ui"
	"github.com/Meone101201/Solar-system/internal/utils"
)

const (
	minCameraDistance = 15
	maxCameraDistance = 420
	maxSpeed          = 8.0
	speedStep         = 0.25
)

var worldUp = rl.NewVector3(0, 1, 0)

// listItems flattens the registry into the object list: star, belt,
// then each planet with its moons indented beneath it.
func listItems(reg *scene.Registry) []ui.ListItem {
	items := make([]ui.ListItem, 0, reg.Len())
	for _, id := range reg.Ids() {
		o, _ := reg.Get(id)
		indent := int32(0)
		if o.Kind == scene.KindMoon {
			indent = 1
		}
		items = append(items, ui.ListItem{Id: o.Id, Label: o.Name, Indent: indent})
	}
	return items
}

// pick casts a ray through the mouse position and returns the nearest
// visible body hit, or "".
func pick(reg *scene.Registry, camera rl.Camera) string {
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), camera)

	best := ""
	bestDist := float32(math.MaxFloat32)
	for _, id := range reg.Ids() {
		o, _ := reg.Get(id)
		if o.Kind == scene.KindBelt {
			continue
		}
		if !drawable(reg, o) {
			continue
		}
		// Slightly padded sphere so small moons stay clickable.
		hit := rl.GetRayCollisionSphere(ray, reg.WorldPosition(id), float32(o.Radius)*1.2)
		if hit.Hit && hit.Distance < bestDist {
			best = id
			bestDist = hit.Distance
		}
	}
	return best
}

// drawable resolves effective visibility: stars by mesh flag, planets
// by pivot flag, moons by their parent planet's pivot flag.
func drawable(reg *scene.Registry, o *scene.Object) bool {
	switch o.Kind {
	case scene.KindStar:
		return o.MeshVisible
	case scene.KindPlanet:
		return o.PivotVisible
	case scene.KindMoon:
		parent, ok := reg.Get(o.ParentId)
		return ok && parent.PivotVisible
	case scene.KindBelt:
		return o.PivotVisible
	}
	return false
}

func drawScene(reg *scene.Registry, showOrbits bool) {
	one := rl.NewVector3(1, 1, 1)
	ringColor := rl.Fade(rl.LightGray, 0.35)

	for _, id := range reg.Ids() {
		o, _ := reg.Get(id)
		if !drawable(reg, o) {
			continue
		}

		switch o.Kind {
		case scene.KindStar, scene.KindPlanet, scene.KindMoon:
			pos := reg.WorldPosition(id)
			rl.DrawModelEx(o.Model, pos, worldUp, float32(o.Spin)*rl.Rad2deg, one, o.Color)

			if showOrbits && o.RingVisible && o.Distance > 0 {
				center := rl.NewVector3(0, 0, 0)
				if o.ParentId != "" {
					center = reg.WorldPosition(o.ParentId)
				}
				rl.DrawCircle3D(center, float32(o.Distance), rl.NewVector3(1, 0, 0), 90, ringColor)
			}

		case scene.KindBelt:
			belt := reg.Belt()
			if belt == nil {
				continue
			}
			for _, rock := range belt.Rocks {
				s := float32(rock.Scale)
				rl.DrawModelEx(belt.Model, rock.Position, worldUp, 0, rl.NewVector3(s, s, s), o.Color)
			}
		}
	}
}

// freeOrbitInput applies manual orbit-style camera control: right-drag
// rotates around the look-at target, the wheel zooms along the view
// direction. Active only when unfocused and settled, so it never
// fights a transition or the tracking lock.
func freeOrbitInput(camera *rl.Camera) {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		camera.Position = focus.RotateAroundPoint(camera.Position, camera.Target, worldUp, float64(-delta.X)*0.005)

		camera.Position.Y += delta.Y * 0.5
	}

	wheel := rl.GetMouseWheelMoveV().Y
	if wheel != 0 {
		diff := rl.Vector3Subtract(camera.Target, camera.Position)
		dist := rl.Vector3Length(diff)
		next := rl.Clamp(dist-wheel*8, minCameraDistance, maxCameraDistance)
		dir := rl.Vector3Normalize(diff)
		camera.Position = rl.Vector3Subtract(camera.Target, rl.Vector3Scale(dir, next))
	}
}

func main() {
	cfg, err := config.Load("res/config.ini")
	if err != nil {
		utils.PrintTagged("config", utils.ColorYellow, "using defaults: ", err)
	}
	utils.PrintTagged("config", utils.ColorCyan, "quality=", cfg.Quality, " speed=", cfg.Speed)
	ui.AccentColor = ui.HexToColor(cfg.AccentColor)

	catalog := body.Default()
	if cfg.CatalogPath != "" {
		loaded, err := body.Load(cfg.CatalogPath)
		if err != nil {
			utils.PrintTagged("catalog", utils.ColorRed, "failed to load, using built-in: ", err)
		} else {
			catalog = loaded
			utils.PrintTagged("catalog", utils.ColorCyan, "loaded ", cfg.CatalogPath)
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.SetTraceLogLevel(rl.LogNone)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), catalog.Star.Name+" System")
	defer rl.CloseWindow()
	rl.SetExitKey(0) // Esc returns to the overview instead of quitting

	ui.Font = rl.LoadFontEx("res/ShareTechMono-Regular.ttf", 40, nil)
	rl.SetTextureFilter(ui.Font.Texture, rl.FilterBilinear)
	defer rl.UnloadFont(ui.Font)

	quality := scene.ParseQuality(cfg.Quality)
	generation := 1
	reg := scene.Build(catalog, quality, generation)
	defer func() { reg.Unload() }()

	camera := rl.Camera{}
	camera.Fovy = 45.0
	camera.Projection = rl.CameraPerspective
	ctrl := focus.New(reg, &camera)

	speed := cfg.Speed
	paused := false
	showOrbits := cfg.ShowOrbits

	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		dtMs := float64(rl.GetFrameTime()) * 1000
		ctrl.Narrow = rl.GetScreenWidth() < 900

		// Input handlers run between ticks.
		if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyO) {
			ctrl.RequestOverview()
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}
		if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
			speed = clampSpeed(speed + speedStep)
		}
		if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
			speed = clampSpeed(speed - speedStep)
		}
		if rl.IsKeyPressed(rl.KeyR) {
			showOrbits = !showOrbits
		}
		if rl.IsKeyPressed(rl.KeyTab) {
			quality = quality.Next()
			utils.PrintTagged("scene", utils.ColorCyan, "rebuilding at quality ", quality.String())
			old := reg
			generation++
			reg = scene.Build(catalog, quality, generation)
			old.Unload()
			ctrl.Reattach(reg)
		}

		effective := speed
		if paused {
			effective = 0
		}
		scale := sim.SpeedScale(effective)

		// Integrator first, then camera tracking against the advanced pivots.
		sim.Advance(reg, scale)
		ctrl.Update(dtMs, scale)

		if ctrl.Focused() == "" && !ctrl.Transitioning() {
			freeOrbitInput(&camera)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		rl.BeginMode3D(camera)
		drawScene(reg, showOrbits)
		rl.EndMode3D()

		// Floating labels over the 3D view.
		if id := ctrl.Focused(); id != "" {
			if o, ok := reg.Get(id); ok && o.Kind != scene.KindBelt {
				world := reg.WorldPosition(id)
				world.Y += float32(o.Radius) * 1.6
				ui.Label(o.Name, rl.GetWorldToScreen(world, camera), ui.AccentColor)
			}
		} else if belt := reg.Belt(); belt != nil {
			// Anchored on the belt's rotating label point.
			ui.Label(beltName(reg), rl.GetWorldToScreen(belt.LabelAnchor, camera), ui.DimColor)
		}

		// Panels: list on the left, info on the right when focused.
		clicked := ui.ObjectList(listItems(reg), ctrl.Focused(), 10, 10)
		uiConsumedClick := clicked != ""

		if id := ctrl.Focused(); id != "" {
			if o, ok := reg.Get(id); ok {
				children := make([]ui.ListItem, 0, len(o.ChildIds))
				for _, cid := range o.ChildIds {
					if child, ok := reg.Get(cid); ok {
						children = append(children, ui.ListItem{Id: child.Id, Label: child.Name})
					}
				}
				childId, overview := ui.InfoPanel(ui.Info{
					Name:        o.Name,
					Kind:        o.Kind.String(),
					Radius:      o.Radius,
					Distance:    o.Distance,
					Description: o.Description,
					Children:    children,
				}, int32(rl.GetScreenWidth())-270, 10)
				if childId != "" {
					clicked = childId
					uiConsumedClick = true
				}
				if overview {
					ctrl.RequestOverview()
					uiConsumedClick = true
				}
			}
		}

		ui.HUD(speed, quality.String(), paused)

		rl.EndDrawing()

		overPanel := rl.GetMousePosition().X < 280 ||
			(ctrl.Focused() != "" && rl.GetMousePosition().X > float32(rl.GetScreenWidth())-280)

		if clicked != "" {
			ctrl.RequestFocus(clicked)
		} else if !uiConsumedClick && !overPanel && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			if id := pick(reg, camera); id != "" {
				ctrl.RequestFocus(id)
			}
		}
	}
}

func clampSpeed(v float64) float64 {
	return math.Min(math.Max(v, 0), maxSpeed)
}

func beltName(reg *scene.Registry) string {
	for _, id := range reg.Ids() {
		if o, _ := reg.Get(id); o.Kind == scene.KindBelt {
			return o.Name
		}
	}
	return ""
}
