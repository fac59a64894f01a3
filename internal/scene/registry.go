// Package scene owns the registry of celestial objects and their
// rendering handles, the quality-dependent scene builder, and the
// focus-driven visibility filter.
package scene

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind classifies a registry entry.
type Kind int

const (
	KindStar Kind = iota
	KindPlanet
	KindMoon
	KindBelt
)

func (k Kind) String() string {
	switch k {
	case KindStar:
		return "Star"
	case KindPlanet:
		return "Planet"
	case KindMoon:
		return "Moon"
	case KindBelt:
		return "Asteroid Belt"
	default:
		return "Unknown"
	}
}

// Object is one celestial entry. The rendering handle (Model) is owned
// by the registry generation that created it and released on rebuild.
// Angle is written only by the integrator; everything else reads it.
type Object struct {
	Id           string
	Kind         Kind
	Name         string
	Radius       float64
	Distance     float64 // from parent center; 0 for the star
	ParentId     string  // "" for the star and the belt
	ChildIds     []string
	RotationRate float64
	OrbitalRate  float64
	Angle        float64 // orbital phase, radians
	Spin         float64 // self-rotation, radians
	Color        rl.Color
	Description  string

	Model    rl.Model
	HasModel bool

	MeshVisible  bool
	PivotVisible bool
	RingVisible  bool
}

// Rock is one asteroid of the belt, positioned in world space and
// rotated by the integrator via polar decomposition.
type Rock struct {
	Position rl.Vector3
	Scale    float64
}

// BeltState holds the belt's auxiliary render data beyond its Object
// entry: the individual rocks, the shared rock model, and the anchor
// point where the belt label is drawn.
type BeltState struct {
	Rocks       []Rock
	LabelAnchor rl.Vector3
	Model       rl.Model
	HasModel    bool
}

// Registry maps object ids to entries, preserving registration order.
// One registry corresponds to one scene build generation; a quality
// change discards it wholesale and builds a fresh one.
type Registry struct {
	ids        []string
	objects    map[string]*Object
	starId     string
	belt       *BeltState
	generation int
}

// NewRegistry returns an empty registry for the given build generation.
func NewRegistry(generation int) *Registry {
	return &Registry{
		objects:    make(map[string]*Object),
		generation: generation,
	}
}

// Add registers an object. Later adds with a duplicate id are ignored;
// the catalog is validated upstream so this should not happen.
func (r *Registry) Add(o *Object) {
	if _, exists := r.objects[o.Id]; exists {
		return
	}
	r.ids = append(r.ids, o.Id)
	r.objects[o.Id] = o
	if o.Kind == KindStar {
		r.starId = o.Id
	}
}

// Get returns the entry for id.
func (r *Registry) Get(id string) (*Object, bool) {
	o, ok := r.objects[id]
	return o, ok
}

// Ids returns all ids in registration order.
func (r *Registry) Ids() []string {
	return r.ids
}

// Len returns the number of registered objects.
func (r *Registry) Len() int {
	return len(r.ids)
}

// StarId returns the id of the system anchor.
func (r *Registry) StarId() string {
	return r.starId
}

// Generation returns the scene build generation this registry belongs to.
func (r *Registry) Generation() int {
	return r.generation
}

// Belt returns the belt auxiliary state, nil if the scene has no belt.
func (r *Registry) Belt() *BeltState {
	return r.belt
}

// SetBelt installs the belt auxiliary state.
func (r *Registry) SetBelt(b *BeltState) {
	r.belt = b
}

// SystemRoot resolves the top-level planet for id: the planet itself,
// or a moon's parent. Returns "" for the star, the belt, or unknown ids.
func (r *Registry) SystemRoot(id string) string {
	o, ok := r.objects[id]
	if !ok {
		return ""
	}
	switch o.Kind {
	case KindPlanet:
		return o.Id
	case KindMoon:
		return o.ParentId
	default:
		return ""
	}
}

// WorldPosition computes the current world-space position of id from
// the orbital phases up its parent chain. The phase angles are the
// single source of truth; nothing caches derived positions.
func (r *Registry) WorldPosition(id string) rl.Vector3 {
	o, ok := r.objects[id]
	if !ok {
		return rl.NewVector3(0, 0, 0)
	}
	pos := rl.NewVector3(0, 0, 0)
	if o.ParentId != "" {
		pos = r.WorldPosition(o.ParentId)
	}
	if o.Distance > 0 {
		pos.X += float32(math.Cos(o.Angle) * o.Distance)
		pos.Z += float32(math.Sin(o.Angle) * o.Distance)
	}
	return pos
}

// Unload releases every rendering handle owned by this generation and
// clears the mapping. No handle may be referenced afterwards.
func (r *Registry) Unload() {
	for _, id := range r.ids {
		o := r.objects[id]
		if o.HasModel {
			rl.UnloadModel(o.Model)
			o.HasModel = false
		}
	}
	if r.belt != nil && r.belt.HasModel {
		rl.UnloadModel(r.belt.Model)
		r.belt.HasModel = false
	}
	r.ids = nil
	r.objects = make(map[string]*Object)
	r.belt = nil
	r.starId = ""
}
