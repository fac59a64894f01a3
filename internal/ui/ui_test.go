package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestHexToColor(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want rl.Color
	}{
		{"rgb", "#2E86AB", rl.NewColor(0x2E, 0x86, 0xAB, 0xFF)},
		{"rgba", "#2E86AB80", rl.NewColor(0x2E, 0x86, 0xAB, 0x80)},
		{"no hash", "C1440E", rl.NewColor(0xC1, 0x44, 0x0E, 0xFF)},
		{"too short", "#FFF", rl.White},
		{"empty", "", rl.White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HexToColor(tt.hex))
		})
	}
}

func TestWrap(t *testing.T) {
	assert.Nil(t, wrap("", 10))
	assert.Equal(t, []string{"one two", "three"}, wrap("one two three", 8))
	assert.Equal(t, []string{"exactlyten"}, wrap("exactlyten", 10))

	for _, line := range wrap("The only known world to support life in the system", 20) {
		assert.LessOrEqual(t, len(line), 20)
	}
}
