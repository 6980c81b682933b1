package tft

import (
	"github.com/rprouse/AvalancheForecast/pixel"
)

// BlitRGB565 copies a raw sprite to the display. The buffer holds big-endian
// RGB565 pixels in row-major order and must be exactly w*h*2 bytes; any
// other length is rejected before touching the bus. The whole sprite is
// streamed after a single window set.
func (d *Display) BlitRGB565(x, y, w, h int, data []byte) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	if len(data) != w*h*2 {
		return ErrSpriteSize
	}
	if err := d.setWindow(x, y, x+w-1, y+h-1); err != nil {
		return err
	}
	return d.c.Data(data...)
}

// BlitRGB565Keyed copies a sprite, skipping every pixel equal to key. This
// decodes and writes pixels one at a time and is much slower than the
// keyless path.
func (d *Display) BlitRGB565Keyed(x, y, w, h int, data []byte, key pixel.RGB565) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	if len(data) != w*h*2 {
		return ErrSpriteSize
	}
	i := 0
	for yy := 0; yy < h; yy++ {
		for xx := 0; xx < w; xx++ {
			c := pixel.RGB565(uint16(data[i])<<8 | uint16(data[i+1]))
			if c != key {
				if err := d.Pixel(x+xx, y+yy, c); err != nil {
					return err
				}
			}
			i += 2
		}
	}
	return nil
}
