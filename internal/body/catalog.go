// Package body defines the scene-description catalog: the star, the
// planets and their moons, and the asteroid belt, in stylized world
// units (not real kilometers).
package body

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Moon describes a natural satellite of a planet.
type Moon struct {
	Id           string  `json:"id"`
	Name         string  `json:"name"`
	Radius       float64 `json:"radius"`
	Distance     float64 `json:"distance"` // from parent planet center
	Color        string  `json:"color"`    // hex, #RRGGBB
	RotationRate float64 `json:"rotation_rate"`
	OrbitalRate  float64 `json:"orbital_rate"`
	Description  string  `json:"description,omitempty"`
}

// Planet describes a planet and its moons.
type Planet struct {
	Id           string  `json:"id"`
	Name         string  `json:"name"`
	Radius       float64 `json:"radius"`
	Distance     float64 `json:"distance"` // from the star
	Color        string  `json:"color"`
	RotationRate float64 `json:"rotation_rate"`
	OrbitalRate  float64 `json:"orbital_rate"`
	Description  string  `json:"description,omitempty"`
	Moons        []Moon  `json:"moons,omitempty"`
}

// Star describes the system anchor.
type Star struct {
	Id           string  `json:"id"`
	Name         string  `json:"name"`
	Radius       float64 `json:"radius"`
	Color        string  `json:"color"`
	RotationRate float64 `json:"rotation_rate"`
	Description  string  `json:"description,omitempty"`
}

// BeltCount holds the asteroid count per render quality.
type BeltCount struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// Belt describes the asteroid belt.
type Belt struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	InnerRadius float64   `json:"inner_radius"`
	OuterRadius float64   `json:"outer_radius"`
	Count       BeltCount `json:"count"`
	RockMin     float64   `json:"rock_min"`
	RockMax     float64   `json:"rock_max"`
	Color       string    `json:"color"`
	OrbitalRate float64   `json:"orbital_rate"`
	Description string    `json:"description,omitempty"`
}

// Catalog is the full scene description.
type Catalog struct {
	Star    Star     `json:"star"`
	Belt    *Belt    `json:"belt,omitempty"`
	Planets []Planet `json:"planets"`
}

// Load reads a catalog from a JSON file and validates it.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, errors.Wrapf(err, "reading catalog %s", path)
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return Catalog{}, errors.Wrapf(err, "parsing catalog %s", path)
	}

	if err := cat.Validate(); err != nil {
		return Catalog{}, errors.Wrapf(err, "invalid catalog %s", path)
	}
	return cat, nil
}

// Validate checks structural invariants: unique ids, positive sizes,
// moons listed under exactly one planet (implied by the tree shape).
func (c Catalog) Validate() error {
	if c.Star.Id == "" {
		return errors.New("star id is empty")
	}
	if c.Star.Radius <= 0 {
		return errors.Errorf("star %q has non-positive radius", c.Star.Id)
	}

	seen := map[string]bool{c.Star.Id: true}
	claim := func(id string) error {
		if id == "" {
			return errors.New("empty object id")
		}
		if seen[id] {
			return errors.Errorf("duplicate object id %q", id)
		}
		seen[id] = true
		return nil
	}

	if c.Belt != nil {
		if err := claim(c.Belt.Id); err != nil {
			return err
		}
		if c.Belt.InnerRadius <= 0 || c.Belt.OuterRadius <= c.Belt.InnerRadius {
			return errors.Errorf("belt %q has invalid radii %v..%v",
				c.Belt.Id, c.Belt.InnerRadius, c.Belt.OuterRadius)
		}
	}

	for _, p := range c.Planets {
		if err := claim(p.Id); err != nil {
			return err
		}
		if p.Radius <= 0 || p.Distance <= 0 {
			return errors.Errorf("planet %q has non-positive radius or distance", p.Id)
		}
		for _, m := range p.Moons {
			if err := claim(m.Id); err != nil {
				return err
			}
			if m.Radius <= 0 || m.Distance <= 0 {
				return errors.Errorf("moon %q has non-positive radius or distance", m.Id)
			}
		}
	}
	return nil
}
