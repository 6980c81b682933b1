package forecast

import (
	"github.com/rprouse/AvalancheForecast/pixel"
)

// Elevation band label colors.
var (
	Alpine        = pixel.White
	Treeline      = pixel.New(0xC1, 0xD8, 0x31)
	BelowTreeline = pixel.New(0x6E, 0xA4, 0x69)
)

var gray = pixel.New(0x80, 0x80, 0x80)

// Danger scale colors, as published by Avalanche Canada.
var dangerBG = map[string]pixel.RGB565{
	"low":          pixel.New(0x50, 0xB8, 0x48),
	"moderate":     pixel.New(0xFF, 0xF2, 0x00),
	"considerable": pixel.New(0xF7, 0x94, 0x1E),
	"high":         pixel.New(0xED, 0x1C, 0x24),
	"extreme":      pixel.New(0x23, 0x1F, 0x20),
}

var dangerFG = map[string]pixel.RGB565{
	"low":          pixel.Black,
	"moderate":     pixel.Black,
	"considerable": pixel.Black,
	"high":         pixel.Black,
	"extreme":      pixel.White,
}

// DangerColors returns the background and text color for a rating value.
// Unknown values (including "norating") render gray on black.
func DangerColors(value string) (bg, fg pixel.RGB565) {
	bg, ok := dangerBG[value]
	if !ok {
		return gray, pixel.Black
	}
	return bg, dangerFG[value]
}
