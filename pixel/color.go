package pixel

import "image/color"

// RGB565 is a 16-bit 5-6-5 packed RGB color, the pixel format the display
// controllers consume. On the wire it is transmitted big-endian, high byte
// first.
type RGB565 uint16

// New packs three 8-bit channels into an RGB565 value.
func New(r, g, b uint8) RGB565 {
	return RGB565(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3)
}

// Common colors.
var (
	Black = New(0x00, 0x00, 0x00)
	White = New(0xFF, 0xFF, 0xFF)
)

// Hi returns the high (first on the wire) byte of the packed value.
func (c RGB565) Hi() byte { return byte(c >> 8) }

// Lo returns the low (second on the wire) byte of the packed value.
func (c RGB565) Lo() byte { return byte(c) }

func (c RGB565) RGBA() (r, g, b, a uint32) {
	// Build a 5- or 6-bit value at the top of the low byte of each component.
	red := (uint32(c) & 0xF800) >> 8
	grn := (uint32(c) & 0x07E0) >> 3
	blu := (uint32(c) & 0x001F) << 3
	// Duplicate the high bits in the low bits.
	red |= red >> 5
	grn |= grn >> 6
	blu |= blu >> 5
	// Duplicate the whole value in the high byte.
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return red, grn, blu, 0xffff
}

// Model converts any color.Color to the nearest RGB565 value.
var Model color.Model = color.ModelFunc(rgb565Model)

func rgb565Model(c color.Color) color.Color {
	if c, ok := c.(RGB565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	r = r & 0xF800
	g = (g & 0xFC00) >> 5
	b = (b & 0xF800) >> 11
	return RGB565(r | g | b)
}
