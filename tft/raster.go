package tft

import (
	"github.com/rprouse/AvalancheForecast/pixel"
)

// Fill paints the whole visible area in the given color.
func (d *Display) Fill(c pixel.RGB565) error {
	return d.FillRect(0, 0, d.Width(), d.Height(), c)
}

// Erase fills the display with black.
func (d *Display) Erase() error {
	return d.Fill(pixel.Black)
}

// Pixel sets a single pixel. Coordinates outside the display are ignored.
func (d *Display) Pixel(x, y int, c pixel.RGB565) error {
	if x < 0 || y < 0 || x >= d.Width() || y >= d.Height() {
		return nil
	}
	if err := d.setWindow(x, y, x, y); err != nil {
		return err
	}
	return d.c.Data(c.Hi(), c.Lo())
}

// HLine draws a horizontal line of w pixels starting at (x, y).
func (d *Display) HLine(x, y, w int, c pixel.RGB565) error {
	return d.FillRect(x, y, w, 1, c)
}

// VLine draws a vertical line of h pixels starting at (x, y).
func (d *Display) VLine(x, y, h int, c pixel.RGB565) error {
	return d.FillRect(x, y, 1, h, c)
}

// Rect draws a rectangle outline. Empty rectangles are ignored.
func (d *Display) Rect(x, y, w, h int, c pixel.RGB565) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	if err := d.HLine(x, y, w, c); err != nil {
		return err
	}
	if err := d.HLine(x, y+h-1, w, c); err != nil {
		return err
	}
	if err := d.VLine(x, y, h, c); err != nil {
		return err
	}
	return d.VLine(x+w-1, y, h, c)
}

// FillRect fills a rectangle, clipped to the visible area. Rectangles that
// are empty or entirely off screen generate no bus traffic at all. The color
// is streamed through the handle's fixed-size chunk buffer, so arbitrarily
// large fills use constant memory.
func (d *Display) FillRect(x, y, w, h int, c pixel.RGB565) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	if x+w-1 < 0 || y+h-1 < 0 || x >= d.Width() || y >= d.Height() {
		return nil
	}

	// Clip to the visible region.
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > d.Width() {
		w = d.Width() - x
	}
	if y+h > d.Height() {
		h = d.Height() - y
	}

	if err := d.setWindow(x, y, x+w-1, y+h-1); err != nil {
		return err
	}

	hi, lo := c.Hi(), c.Lo()
	for i := 0; i < len(d.chunk); i += 2 {
		d.chunk[i] = hi
		d.chunk[i+1] = lo
	}

	for total := w * h; total > 0; {
		n := fillChunkPixels
		if total < n {
			n = total
		}
		if err := d.c.Data(d.chunk[:2*n]...); err != nil {
			return err
		}
		total -= n
	}
	return nil
}

// Line draws a line between two points using Bresenham's algorithm. Each
// endpoint is drawn exactly once; out-of-bounds points are skipped.
func (d *Display) Line(x0, y0, x1, y1 int, c pixel.RGB565) error {
	dx := abs(x1 - x0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	dy := -abs(y1 - y0)
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if derr := d.Pixel(x0, y0, c); derr != nil {
			return derr
		}
		if x0 == x1 && y0 == y1 {
			return nil
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Circle draws a circle outline using the midpoint algorithm. Radius zero
// plots the single center pixel.
func (d *Display) Circle(x0, y0, r int, c pixel.RGB565) error {
	if r < 0 {
		return nil
	}
	if r == 0 {
		return d.Pixel(x0, y0, c)
	}
	x := r
	y := 0
	err := 1 - r
	for x >= y {
		for _, p := range [8][2]int{
			{x0 + x, y0 + y},
			{x0 + y, y0 + x},
			{x0 - y, y0 + x},
			{x0 - x, y0 + y},
			{x0 - x, y0 - y},
			{x0 - y, y0 - x},
			{x0 + y, y0 - x},
			{x0 + x, y0 - y},
		} {
			if derr := d.Pixel(p[0], p[1], c); derr != nil {
				return derr
			}
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
	return nil
}

// FillCircle draws a solid disc by emitting paired horizontal spans per
// midpoint step. A radius of zero or less draws nothing.
func (d *Display) FillCircle(x0, y0, r int, c pixel.RGB565) error {
	if r <= 0 {
		return nil
	}
	x := r
	y := 0
	err := 1 - r
	for x >= y {
		if derr := d.HLine(x0-x, y0+y, 2*x+1, c); derr != nil {
			return derr
		}
		if derr := d.HLine(x0-x, y0-y, 2*x+1, c); derr != nil {
			return derr
		}
		if derr := d.HLine(x0-y, y0+x, 2*y+1, c); derr != nil {
			return derr
		}
		if derr := d.HLine(x0-y, y0-x, 2*y+1, c); derr != nil {
			return derr
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
