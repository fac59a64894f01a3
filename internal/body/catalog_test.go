package body

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefaultShape(t *testing.T) {
	cat := Default()
	assert.Equal(t, "sun", cat.Star.Id)
	assert.Len(t, cat.Planets, 8)
	require.NotNil(t, cat.Belt)
	assert.Greater(t, cat.Belt.OuterRadius, cat.Belt.InnerRadius)
}

func TestValidate(t *testing.T) {
	base := func() Catalog {
		return Catalog{
			Star: Star{Id: "sun", Name: "Sun", Radius: 10},
			Planets: []Planet{
				{Id: "earth", Name: "Earth", Radius: 1.7, Distance: 32,
					Moons: []Moon{{Id: "moon", Name: "Moon", Radius: 0.45, Distance: 3.4}}},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Catalog)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Catalog) {},
		},
		{
			name:    "empty star id",
			mutate:  func(c *Catalog) { c.Star.Id = "" },
			wantErr: "star id is empty",
		},
		{
			name:    "non-positive star radius",
			mutate:  func(c *Catalog) { c.Star.Radius = 0 },
			wantErr: "non-positive radius",
		},
		{
			name:    "duplicate planet id",
			mutate:  func(c *Catalog) { c.Planets = append(c.Planets, Planet{Id: "earth", Radius: 1, Distance: 5}) },
			wantErr: `duplicate object id "earth"`,
		},
		{
			name:    "moon reuses star id",
			mutate:  func(c *Catalog) { c.Planets[0].Moons[0].Id = "sun" },
			wantErr: `duplicate object id "sun"`,
		},
		{
			name:    "zero planet distance",
			mutate:  func(c *Catalog) { c.Planets[0].Distance = 0 },
			wantErr: "non-positive radius or distance",
		},
		{
			name:    "negative moon radius",
			mutate:  func(c *Catalog) { c.Planets[0].Moons[0].Radius = -1 },
			wantErr: "non-positive radius or distance",
		},
		{
			name: "belt inner not below outer",
			mutate: func(c *Catalog) {
				c.Belt = &Belt{Id: "belt", InnerRadius: 60, OuterRadius: 60}
			},
			wantErr: "invalid radii",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := base()
			tt.mutate(&cat)
			err := cat.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(dir, "system.json")
		data := `{
			"star": {"id": "sun", "name": "Sun", "radius": 10, "color": "#FDB813"},
			"planets": [
				{"id": "earth", "name": "Earth", "radius": 1.7, "distance": 32,
				 "orbital_rate": 1.5, "rotation_rate": 1.0,
				 "moons": [{"id": "moon", "name": "Moon", "radius": 0.45, "distance": 3.4}]}
			]
		}`
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		cat, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Sun", cat.Star.Name)
		require.Len(t, cat.Planets, 1)
		assert.Equal(t, 1.5, cat.Planets[0].OrbitalRate)
		require.Len(t, cat.Planets[0].Moons, 1)
		assert.Equal(t, "moon", cat.Planets[0].Moons[0].Id)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading catalog")
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing catalog")
	})

	t.Run("invalid catalog", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"star": {"id": "", "radius": 1}}`), 0644))
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid catalog")
	})
}
