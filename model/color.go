package model

import (
	"fmt"
)

// Color represent (R, G, B) color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// NewColor construct new color.
func NewColor(R, G, B uint8) Color {
	return Color{R: R, G: G, B: B}
}

// ParseHexColor reads a "#RRGGBB" display color. Malformed values resolve
// to Gray, matching the element table fallback.
func ParseHexColor(hex string) Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return Gray
	}
	return NewColor(r, g, b)
}

// Hex renders the color in "#RRGGBB" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

var (
	// White color.
	White = NewColor(0xFF, 0xFF, 0xFF)

	//Gray color.
	Gray = NewColor(0x80, 0x80, 0x80)
)
