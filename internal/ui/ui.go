// Package ui draws the immediate-mode presentation layer: the object
// list, the info panel, floating labels, and the HUD.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	AccentColor = rl.NewColor(120, 200, 255, 255)
	PanelColor  = rl.NewColor(12, 16, 24, 210)
	TextColor   = rl.NewColor(200, 210, 220, 255)
	DimColor    = rl.NewColor(110, 120, 130, 255)

	Font rl.Font
)

const (
	fontSize    = 18
	lineHeight  = 24
	panelPad    = 10
	panelWidth  = 260
	rowHeight   = 22
	textSpacing = 1.0
)

// HexToColor parses #RRGGBB or #RRGGBBAA, falling back to white.
func HexToColor(hex string) rl.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return rl.White
	}

	r, _ := strconv.ParseUint(hex[0:2], 16, 8)
	g, _ := strconv.ParseUint(hex[2:4], 16, 8)
	b, _ := strconv.ParseUint(hex[4:6], 16, 8)
	a := uint64(255)
	if len(hex) == 8 {
		a, _ = strconv.ParseUint(hex[6:8], 16, 8)
	}

	return rl.NewColor(uint8(r), uint8(g), uint8(b), uint8(a))
}

func drawText(text string, x, y float32, color rl.Color) {
	rl.DrawTextEx(Font, text, rl.NewVector2(x, y), fontSize, textSpacing, color)
}

// row draws one clickable text row and reports whether it was clicked
// this frame.
func row(text string, x, y int32, width int32, highlighted bool) bool {
	bounds := rl.NewRectangle(float32(x), float32(y), float32(width), rowHeight)
	hover := rl.CheckCollisionPointRec(rl.GetMousePosition(), bounds)

	color := TextColor
	if highlighted {
		color = AccentColor
	} else if hover {
		color = rl.White
	}
	if hover {
		rl.DrawRectangleRec(bounds, rl.Fade(AccentColor, 0.15))
	}
	drawText(text, float32(x)+4, float32(y)+2, color)

	return hover && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// ListItem is one entry of the object list.
type ListItem struct {
	Id     string
	Label  string
	Indent int32
}

// ObjectList draws the pickable object list and returns the id of a
// clicked entry, or "".
func ObjectList(items []ListItem, focusedId string, x, y int32) string {
	height := int32(len(items))*rowHeight + 2*panelPad
	rl.DrawRectangle(x, y, panelWidth, height, PanelColor)

	clicked := ""
	rowY := y + panelPad
	for _, it := range items {
		if row(it.Label, x+panelPad+it.Indent*16, rowY, panelWidth-2*panelPad-it.Indent*16, it.Id == focusedId) {
			clicked = it.Id
		}
		rowY += rowHeight
	}
	return clicked
}

// Info is the display record for the focused object.
type Info struct {
	Name        string
	Kind        string
	Radius      float64
	Distance    float64
	Description string
	Children    []ListItem
}

// InfoPanel draws the focused-object panel. It returns the id of a
// clicked child link and whether the overview action was clicked.
func InfoPanel(info Info, x, y int32) (childId string, overview bool) {
	lines := wrap(info.Description, 34)
	height := int32(4+len(lines)+len(info.Children)+2)*rowHeight + 2*panelPad

	rl.DrawRectangle(x, y, panelWidth, height, PanelColor)
	rowY := y + panelPad

	drawText(info.Name, float32(x+panelPad), float32(rowY), AccentColor)
	rowY += rowHeight
	drawText(info.Kind, float32(x+panelPad), float32(rowY), DimColor)
	rowY += rowHeight
	drawText(fmt.Sprintf("Radius   %.2f", info.Radius), float32(x+panelPad), float32(rowY), TextColor)
	rowY += rowHeight
	if info.Distance > 0 {
		drawText(fmt.Sprintf("Distance %.2f", info.Distance), float32(x+panelPad), float32(rowY), TextColor)
	}
	rowY += rowHeight

	for _, line := range lines {
		drawText(line, float32(x+panelPad), float32(rowY), DimColor)
		rowY += rowHeight
	}

	for _, child := range info.Children {
		if row("> "+child.Label, x+panelPad, rowY, panelWidth-2*panelPad, false) {
			childId = child.Id
		}
		rowY += rowHeight
	}

	rowY += rowHeight / 2
	if row("[ Overview ]", x+panelPad, rowY, panelWidth-2*panelPad, false) {
		overview = true
	}
	return childId, overview
}

// Label draws a centered floating label at a projected screen position.
func Label(text string, screenPos rl.Vector2, color rl.Color) {
	width := rl.MeasureTextEx(Font, text, fontSize, textSpacing).X
	rl.DrawTextEx(Font, text, rl.NewVector2(screenPos.X-width/2, screenPos.Y), fontSize, textSpacing, color)
}

// HUD draws the status line: speed multiplier, quality, and key help.
func HUD(speed float64, quality string, paused bool) {
	status := fmt.Sprintf("speed x%.2f   quality %s", speed, quality)
	if paused {
		status = "paused   quality " + quality
	}
	drawText(status, 10, float32(rl.GetScreenHeight())-2*lineHeight, AccentColor)
	drawText("click: focus   esc: overview   +/-: speed   space: pause   tab: quality   r: rings",
		10, float32(rl.GetScreenHeight())-lineHeight, DimColor)
	drawText(fmt.Sprintf("%d fps", rl.GetFPS()), float32(rl.GetScreenWidth())-80, 10, DimColor)
}

// wrap breaks a description into lines of at most width runes, on
// word boundaries.
func wrap(s string, width int) []string {
	if s == "" {
		return nil
	}
	words := strings.Fields(s)
	var lines []string
	line := ""
	for _, w := range words {
		if line == "" {
			line = w
		} else if len(line)+1+len(w) <= width {
			line += " " + w
		} else {
			lines = append(lines, line)
			line = w
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
