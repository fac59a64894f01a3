// Package config loads the application settings from res/config.ini.
package config

import (
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

// Config holds the user-tunable settings.
type Config struct {
	Quality     string  // low, medium, high
	Speed       float64 // speed multiplier, 0 pauses
	AccentColor string  // hex, #RRGGBB
	ShowOrbits  bool
	CatalogPath string // optional JSON scene description; "" uses the built-in one
	Width       int
	Height      int
}

// Default returns the settings used when no config file is present.
func Default() Config {
	return Config{
		Quality:     "medium",
		Speed:       1.0,
		AccentColor: "#78C8FF",
		ShowOrbits:  true,
		Width:       1280,
		Height:      720,
	}
}

// Load reads settings from an ini file. A missing or unreadable file
// yields the defaults along with the wrapped error, so the caller can
// log it and keep going.
func Load(path string) (Config, error) {
	def := Default()

	file, err := ini.Load(path)
	if err != nil {
		return def, errors.Wrapf(err, "reading config %s", path)
	}

	sec := file.Section("Visualizer")
	return Config{
		Quality:     sec.Key("quality").In(def.Quality, []string{"low", "medium", "high"}),
		Speed:       sec.Key("speed").MustFloat64(def.Speed),
		AccentColor: sec.Key("accent_color").MustString(def.AccentColor),
		ShowOrbits:  sec.Key("show_orbits").MustBool(def.ShowOrbits),
		CatalogPath: sec.Key("catalog").String(),
		Width:       sec.Key("width").MustInt(def.Width),
		Height:      sec.Key("height").MustInt(def.Height),
	}, nil
}
