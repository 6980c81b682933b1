// Package font provides fixed-height, variable-width packed bitmap fonts for
// the TFT driver.
//
// Glyph bitmaps are stored column-major: each column occupies
// ceil(Height/8) bytes, and bit 0 of a column's first byte is the glyph's
// top row. Fonts are baked tables, loaded once and shared read-only; see
// cmd/mkfont for generating new tables from a TrueType font.
package font

// A Font is an immutable fixed-height, variable-width bitmap font covering a
// contiguous range of character codes starting at First.
type Font struct {
	Name   string
	Height int    // pixel height of every glyph
	First  byte   // first character code in the table
	Widths []byte // per-character width in columns
	Bits   []byte // packed glyph columns for all characters, in order

	offsets []int // byte offset of each glyph's first column in Bits
}

// New assembles a font from baked table data. The glyphs in bits must be
// laid out back to back in character order.
func New(name string, height int, first byte, widths, bits []byte) *Font {
	f := &Font{
		Name:    name,
		Height:  height,
		First:   first,
		Widths:  widths,
		Bits:    bits,
		offsets: make([]int, len(widths)),
	}
	bpc := f.BytesPerColumn()
	off := 0
	for i, w := range widths {
		f.offsets[i] = off
		off += int(w) * bpc
	}
	return f
}

// BytesPerColumn returns the number of bytes that encode one glyph column.
func (f *Font) BytesPerColumn() int {
	return (f.Height + 7) / 8
}

// Width returns the width in pixels of ch, excluding inter-glyph spacing.
func (f *Font) Width(ch byte) int {
	w, _ := f.Glyph(ch)
	return w
}

// Glyph returns the declared width and the packed column data for ch.
// Characters outside the table fall back to the first table entry. Truncated
// table data yields a short (possibly nil) slice rather than an error; the
// renderer treats missing bytes as blank columns.
func (f *Font) Glyph(ch byte) (width int, bits []byte) {
	i := int(ch) - int(f.First)
	if i < 0 || i >= len(f.Widths) {
		i = 0
	}
	width = int(f.Widths[i])
	off := f.offsets[i]
	if off >= len(f.Bits) {
		return width, nil
	}
	end := off + width*f.BytesPerColumn()
	if end > len(f.Bits) {
		end = len(f.Bits)
	}
	return width, f.Bits[off:end]
}

// TextWidth returns the rendered width in pixels of a single line of text,
// with spacing pixels between adjacent glyphs.
func (f *Font) TextWidth(s string, spacing int) int {
	w := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			break
		}
		if w > 0 {
			w += spacing
		}
		w += f.Width(s[i])
	}
	return w
}

// fixedWidths builds a width table for a font whose glyphs are all width wide.
func fixedWidths(count int, width byte) []byte {
	w := make([]byte, count)
	for i := range w {
		w[i] = width
	}
	return w
}
