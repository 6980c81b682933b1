package tft

import (
	"github.com/rprouse/AvalancheForecast/font"
	"github.com/rprouse/AvalancheForecast/pixel"
)

// letterSpacing is the gap in pixels between adjacent glyphs. Newlines
// advance the vertical cursor by the font height plus lineSpacing.
const (
	letterSpacing = 1
	lineSpacing   = 2
)

// SetFont selects the font used by subsequent Text calls. Previously drawn
// text is not re-rendered.
func (d *Display) SetFont(f *font.Font) {
	d.font = f
}

// Font returns the active font.
func (d *Display) Font() *font.Font {
	return d.font
}

// Text draws s at (x, y) with a transparent background: only the glyphs'
// "on" pixels are written, the panel content in between stays untouched. A
// newline resets the horizontal cursor to x and advances one line.
func (d *Display) Text(s string, x, y int, fg pixel.RGB565) error {
	return d.text(s, x, y, fg, 0, false)
}

// TextOpaque draws s like Text, but paints the glyph background (including
// the one-pixel spacing row and column after each glyph) in bg. Each glyph
// is built as a tile in memory and streamed in a single windowed write,
// which takes far fewer bus transactions than the transparent path.
func (d *Display) TextOpaque(s string, x, y int, fg, bg pixel.RGB565) error {
	return d.text(s, x, y, fg, bg, true)
}

func (d *Display) text(s string, x, y int, fg, bg pixel.RGB565, opaque bool) error {
	cx := x
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '\n' {
			cx = x
			y += d.font.Height + lineSpacing
			continue
		}
		w, err := d.drawChar(ch, cx, y, fg, bg, opaque)
		if err != nil {
			return err
		}
		cx += w + letterSpacing
	}
	return nil
}

// drawChar renders one glyph and reports its advance width. Glyph columns
// missing from a truncated font table read as blank; a malformed font
// degrades visually instead of failing.
func (d *Display) drawChar(ch byte, x, y int, fg, bg pixel.RGB565, opaque bool) (int, error) {
	gw, bits := d.font.Glyph(ch)
	bpc := d.font.BytesPerColumn()

	if opaque {
		// Tile one pixel wider and taller than the glyph, so the
		// inter-glyph spacing carries the background too. The tile is
		// assembled locally and sent as one windowed write.
		tw, th := gw+1, d.font.Height+1
		buf := make([]byte, tw*th*2)
		for i := 0; i < len(buf); i += 2 {
			buf[i] = bg.Hi()
			buf[i+1] = bg.Lo()
		}
		for col := 0; col < gw; col++ {
			for row := 0; row < d.font.Height; row++ {
				if !glyphBit(bits, bpc, col, row) {
					continue
				}
				p := (row*tw + col) * 2
				buf[p] = fg.Hi()
				buf[p+1] = fg.Lo()
			}
		}
		if err := d.setWindow(x, y, x+tw-1, y+th-1); err != nil {
			return gw, err
		}
		return gw, d.c.Data(buf...)
	}

	for col := 0; col < gw; col++ {
		for row := 0; row < d.font.Height; row++ {
			if !glyphBit(bits, bpc, col, row) {
				continue
			}
			if err := d.Pixel(x+col, y+row, fg); err != nil {
				return gw, err
			}
		}
	}
	return gw, nil
}

// glyphBit tests the pixel at (col, row) of a packed glyph. Indexes beyond
// the available data are off.
func glyphBit(bits []byte, bytesPerColumn, col, row int) bool {
	i := col*bytesPerColumn + row/8
	if i < 0 || i >= len(bits) {
		return false
	}
	return bits[i]&(1<<uint(row%8)) != 0
}
