package tft

import (
	"testing"

	"github.com/rprouse/AvalancheForecast/font"
	"github.com/rprouse/AvalancheForecast/pixel"
	"github.com/rprouse/AvalancheForecast/tft/tfttest"
)

// onBits counts the set pixels of a glyph.
func onBits(f *font.Font, ch byte) int {
	w, bits := f.Glyph(ch)
	bpc := f.BytesPerColumn()
	var n int
	for col := 0; col < w; col++ {
		for row := 0; row < f.Height; row++ {
			if glyphBit(bits, bpc, col, row) {
				n++
			}
		}
	}
	return n
}

func TestTextNewline(t *testing.T) {
	rc := &tfttest.RecordConn{}
	d := testDisplay(rc)

	const x, y = 30, 40
	if err := d.Text("A\nB", x, y, pixel.White); err != nil {
		t.Fatal(err)
	}
	points := decodePixels(t, rc.Ops)

	nA := onBits(d.font, 'A')
	nB := onBits(d.font, 'B')
	if len(points) != nA+nB {
		t.Fatalf("plotted %d pixels, want %d", len(points), nA+nB)
	}

	// 'A' column 0 is 0x7E, so its first plotted pixel is (x, y+1).
	if points[0] != [2]int{x, y + 1} {
		t.Errorf("first A pixel = %v, want [%d %d]", points[0], x, y+1)
	}

	// The newline must reset the horizontal cursor to the original x and
	// advance by the font height plus the line gap. 'B' column 0 is 0x7F,
	// so its first pixel sits exactly at the new origin.
	wantY := y + d.font.Height + lineSpacing
	if points[nA] != [2]int{x, wantY} {
		t.Errorf("first B pixel = %v, want [%d %d]", points[nA], x, wantY)
	}
	for _, p := range points[nA:] {
		if p[0] < x {
			t.Errorf("B pixel %v starts left of the line origin %d", p, x)
		}
		if p[1] < wantY {
			t.Errorf("B pixel %v is above the second line", p)
		}
	}
}

func TestTextAdvance(t *testing.T) {
	rc := &tfttest.RecordConn{}
	d := testDisplay(rc)

	// "!!": the only lit column of '!' is column 2, so the two glyphs
	// produce pixel columns 6 apart (width 5 plus 1 spacing).
	if err := d.Text("!!", 0, 0, pixel.White); err != nil {
		t.Fatal(err)
	}
	points := decodePixels(t, rc.Ops)
	first, second := points[0][0], points[len(points)-1][0]
	if second-first != d.font.Width('!')+letterSpacing {
		t.Errorf("glyph advance = %d, want %d", second-first, d.font.Width('!')+letterSpacing)
	}
}

func TestTextOpaqueTile(t *testing.T) {
	rc := &tfttest.RecordConn{}
	d := testDisplay(rc)

	fg := pixel.White
	bg := pixel.New(0x00, 0x00, 0xFF)
	const x, y = 3, 4
	if err := d.TextOpaque("A", x, y, fg, bg); err != nil {
		t.Fatal(err)
	}

	windows := decodeWindows(t, rc.Ops)
	if len(windows) != 1 {
		t.Fatalf("expected one windowed write per glyph, got %d", len(windows))
	}
	w := windows[0]

	// The tile is one pixel wider and taller than the glyph so the
	// spacing row and column carry the background.
	tw, th := d.font.Width('A')+1, d.font.Height+1
	if w.x0 != x || w.y0 != y || w.x1 != x+tw-1 || w.y1 != y+th-1 {
		t.Errorf("tile window = (%d,%d)-(%d,%d), want (%d,%d)-(%d,%d)",
			w.x0, w.y0, w.x1, w.y1, x, y, x+tw-1, y+th-1)
	}
	if len(w.data) != tw*th*2 {
		t.Fatalf("tile data = %d bytes, want %d", len(w.data), tw*th*2)
	}

	at := func(col, row int) pixel.RGB565 {
		p := (row*tw + col) * 2
		return pixel.RGB565(uint16(w.data[p])<<8 | uint16(w.data[p+1]))
	}

	gw, bits := d.font.Glyph('A')
	bpc := d.font.BytesPerColumn()
	for col := 0; col < gw; col++ {
		for row := 0; row < d.font.Height; row++ {
			want := bg
			if glyphBit(bits, bpc, col, row) {
				want = fg
			}
			if got := at(col, row); got != want {
				t.Errorf("tile (%d,%d) = %#04x, want %#04x", col, row, got, want)
			}
		}
	}
	for row := 0; row < th; row++ {
		if got := at(tw-1, row); got != bg {
			t.Errorf("spacing column row %d = %#04x, want background", row, got)
		}
	}
	for col := 0; col < tw; col++ {
		if got := at(col, th-1); got != bg {
			t.Errorf("spacing row column %d = %#04x, want background", col, got)
		}
	}
}

func TestTextTruncatedFont(t *testing.T) {
	rc := &tfttest.RecordConn{}
	d := testDisplay(rc)

	// A font whose table is shorter than its declared widths renders the
	// missing columns as blank instead of failing.
	d.SetFont(font.New("broken", 7, 'A', []byte{5}, []byte{0x7F}))
	if err := d.Text("A", 0, 0, pixel.White); err != nil {
		t.Fatal(err)
	}
	points := decodePixels(t, rc.Ops)
	if len(points) != 7 {
		t.Errorf("plotted %d pixels, want 7 (first column only)", len(points))
	}
	for _, p := range points {
		if p[0] != 0 {
			t.Errorf("pixel %v outside the surviving column", p)
		}
	}
}

func TestSetFont(t *testing.T) {
	rc := &tfttest.RecordConn{}
	d := testDisplay(rc)

	if d.Font() != font.Default {
		t.Error("expected a new display to use the default font")
	}
	d.SetFont(font.Font10x14)
	if d.Font() != font.Font10x14 {
		t.Error("expected SetFont to swap the active font")
	}

	// The larger font advances the line cursor further.
	if err := d.Text("\n!", 0, 0, pixel.White); err != nil {
		t.Fatal(err)
	}
	points := decodePixels(t, rc.Ops)
	if points[0][1] < font.Font10x14.Height+lineSpacing {
		t.Errorf("second line starts at y=%d, want at least %d",
			points[0][1], font.Font10x14.Height+lineSpacing)
	}
}
