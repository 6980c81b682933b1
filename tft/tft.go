// Package tft contains direct-to-GRAM drivers for MIPI-DBI style serial TFT
// controllers (ILI9341, ST7796S).
//
// The driver keeps no frame buffer: every drawing call addresses a window in
// the controller's graphics RAM and streams RGB565 pixel data straight over
// the bus. Calls are synchronous and block until the bus transaction
// completes. A Display and its bus are owned by a single goroutine; sharing
// one handle across goroutines requires external locking.
package tft

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
)

// Errors
var (
	ErrSpriteSize = errors.New("tft: sprite buffer length does not match dimensions")
)

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// Config is the display configuration.
type Config struct {
	// Width of the panel in pixels at no rotation. Zero selects the
	// controller's default.
	Width int

	// Height of the panel in pixels at no rotation. Zero selects the
	// controller's default.
	Height int

	// Rotation of the display.
	Rotation Rotation

	// BGR is set for panels wired for blue-green-red subpixel order,
	// which is common on many modules.
	BGR bool

	// Invert enables display inversion (module dependent).
	Invert bool

	// ColumnOffset and RowOffset shift the address window for panel
	// variants whose GRAM origin is not (0, 0).
	ColumnOffset int
	RowOffset    int

	// Backlight pin, optional.
	Backlight gpio.PinOut
}
