package font

// Font10x14 is Font5x7 with every glyph pixel doubled in both directions,
// for headings and other text that should read at arm's length.
var Font10x14 = scale2x(Font5x7, "10x14")

// scale2x derives a new font from src by doubling each glyph pixel. The
// source must fit in single-byte columns (height 8 or less).
func scale2x(src *Font, name string) *Font {
	height := src.Height * 2
	bpc := (height + 7) / 8

	widths := make([]byte, len(src.Widths))
	var bits []byte
	for i := range src.Widths {
		ch := src.First + byte(i)
		w, glyph := src.Glyph(ch)
		widths[i] = byte(w * 2)
		for col := 0; col < w; col++ {
			var v uint16
			if col < len(glyph) {
				for row := 0; row < src.Height; row++ {
					if glyph[col]&(1<<uint(row)) != 0 {
						v |= 3 << uint(2*row)
					}
				}
			}
			packed := make([]byte, bpc)
			packed[0] = byte(v)
			if bpc > 1 {
				packed[1] = byte(v >> 8)
			}
			// Each source column becomes two identical columns.
			bits = append(bits, packed...)
			bits = append(bits, packed...)
		}
	}
	return New(name, height, src.First, widths, bits)
}
