package scene

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Meone101201/Solar-system/internal/body"
	"github.com/Meone101201/Solar-system/internal/ui"
)

// Quality selects mesh detail and asteroid count.
type Quality int

const (
	QualityLow Quality = iota
	QualityMedium
	QualityHigh
)

func (q Quality) String() string {
	switch q {
	case QualityLow:
		return "low"
	case QualityMedium:
		return "medium"
	case QualityHigh:
		return "high"
	default:
		return "medium"
	}
}

// ParseQuality maps a config string to a Quality, defaulting to medium.
func ParseQuality(s string) Quality {
	switch s {
	case "low":
		return QualityLow
	case "high":
		return QualityHigh
	default:
		return QualityMedium
	}
}

// Next cycles low -> medium -> high -> low.
func (q Quality) Next() Quality {
	switch q {
	case QualityLow:
		return QualityMedium
	case QualityMedium:
		return QualityHigh
	default:
		return QualityLow
	}
}

func (q Quality) sphereDetail() (rings, slices int32) {
	switch q {
	case QualityLow:
		return 8, 12
	case QualityHigh:
		return 32, 48
	default:
		return 16, 24
	}
}

func (q Quality) beltCount(c body.BeltCount) int {
	switch q {
	case QualityLow:
		return c.Low
	case QualityHigh:
		return c.High
	default:
		return c.Medium
	}
}

// sphereModel generates a unit-ish sphere handle for an object. Must
// run with the window (GL context) open.
func sphereModel(radius float64, q Quality) rl.Model {
	rings, slices := q.sphereDetail()
	mesh := rl.GenMeshSphere(float32(radius), int(rings), int(slices))
	return rl.LoadModelFromMesh(mesh)
}

// Build constructs a fresh registry from the catalog in one pass,
// root to leaf: star, belt, then each planet and its moons. A quality
// change calls Build again on a new generation; the previous registry
// must be Unloaded by the caller.
func Build(cat body.Catalog, q Quality, generation int) *Registry {
	reg := NewRegistry(generation)

	reg.Add(&Object{
		Id:           cat.Star.Id,
		Kind:         KindStar,
		Name:         cat.Star.Name,
		Radius:       cat.Star.Radius,
		RotationRate: cat.Star.RotationRate,
		Color:        ui.HexToColor(cat.Star.Color),
		Description:  cat.Star.Description,
		Model:        sphereModel(cat.Star.Radius, q),
		HasModel:     true,
		MeshVisible:  true,
		PivotVisible: true,
	})

	if cat.Belt != nil {
		buildBelt(reg, *cat.Belt, q)
	}

	for _, p := range cat.Planets {
		childIds := make([]string, 0, len(p.Moons))
		for _, m := range p.Moons {
			childIds = append(childIds, m.Id)
		}
		reg.Add(&Object{
			Id:           p.Id,
			Kind:         KindPlanet,
			Name:         p.Name,
			Radius:       p.Radius,
			Distance:     p.Distance,
			ParentId:     cat.Star.Id,
			ChildIds:     childIds,
			RotationRate: p.RotationRate,
			OrbitalRate:  p.OrbitalRate,
			Angle:        rand.Float64() * 2 * math.Pi,
			Color:        ui.HexToColor(p.Color),
			Description:  p.Description,
			Model:        sphereModel(p.Radius, q),
			HasModel:     true,
			MeshVisible:  true,
			PivotVisible: true,
			RingVisible:  true,
		})
		for _, m := range p.Moons {
			reg.Add(&Object{
				Id:           m.Id,
				Kind:         KindMoon,
				Name:         m.Name,
				Radius:       m.Radius,
				Distance:     m.Distance,
				ParentId:     p.Id,
				RotationRate: m.RotationRate,
				OrbitalRate:  m.OrbitalRate,
				Angle:        rand.Float64() * 2 * math.Pi,
				Color:        ui.HexToColor(m.Color),
				Description:  m.Description,
				Model:        sphereModel(m.Radius, q),
				HasModel:     true,
				MeshVisible:  true,
				PivotVisible: true,
				RingVisible:  true,
			})
		}
	}

	return reg
}

func buildBelt(reg *Registry, b body.Belt, q Quality) {
	reg.Add(&Object{
		Id:           b.Id,
		Kind:         KindBelt,
		Name:         b.Name,
		Radius:       (b.InnerRadius + b.OuterRadius) / 2,
		OrbitalRate:  b.OrbitalRate,
		Color:        ui.HexToColor(b.Color),
		Description:  b.Description,
		MeshVisible:  true,
		PivotVisible: true,
	})

	count := q.beltCount(b.Count)
	rocks := make([]Rock, count)
	for i := range rocks {
		ang := rand.Float64() * 2 * math.Pi
		radius := b.InnerRadius + rand.Float64()*(b.OuterRadius-b.InnerRadius)
		height := (rand.Float64() - 0.5) * (b.OuterRadius - b.InnerRadius) * 0.3
		rocks[i] = Rock{
			Position: rl.NewVector3(
				float32(math.Cos(ang)*radius),
				float32(height),
				float32(math.Sin(ang)*radius),
			),
			Scale: b.RockMin + rand.Float64()*(b.RockMax-b.RockMin),
		}
	}

	reg.SetBelt(&BeltState{
		Rocks:       rocks,
		LabelAnchor: rl.NewVector3(float32((b.InnerRadius+b.OuterRadius)/2), 0, 0),
		Model:       sphereModel(1, QualityLow),
		HasModel:    true,
	})
}
