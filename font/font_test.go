package font

import "testing"

func TestFont5x7Layout(t *testing.T) {
	if Font5x7.Height != 7 {
		t.Errorf("expected height 7, got %d", Font5x7.Height)
	}
	if Font5x7.BytesPerColumn() != 1 {
		t.Errorf("expected 1 byte per column, got %d", Font5x7.BytesPerColumn())
	}
	if len(Font5x7.Bits) != 96*5 {
		t.Errorf("expected %d table bytes, got %d", 96*5, len(Font5x7.Bits))
	}
}

func TestGlyphLookup(t *testing.T) {
	w, bits := Font5x7.Glyph('!')
	if w != 5 {
		t.Errorf("expected width 5, got %d", w)
	}
	want := []byte{0x00, 0x00, 0x5F, 0x00, 0x00}
	if len(bits) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(bits))
	}
	for i := range want {
		if bits[i] != want[i] {
			t.Errorf("column %d = %#02x, want %#02x", i, bits[i], want[i])
		}
	}
}

func TestGlyphFallback(t *testing.T) {
	// Codes outside the table render as the first entry (space).
	for _, ch := range []byte{0x00, 0x1F, 0x80, 0xFF} {
		w, bits := Font5x7.Glyph(ch)
		if w != 5 {
			t.Errorf("glyph %#02x: expected width 5, got %d", ch, w)
		}
		for i, b := range bits {
			if b != 0 {
				t.Errorf("glyph %#02x: column %d = %#02x, want blank", ch, i, b)
			}
		}
	}
}

func TestGlyphTruncatedTable(t *testing.T) {
	// A table shorter than its widths declare degrades to short or nil
	// column data, never a panic.
	f := New("broken", 7, 'A', []byte{5, 5}, []byte{0x7F, 0x09})
	if w, bits := f.Glyph('A'); w != 5 || len(bits) != 2 {
		t.Errorf("glyph A = (%d, %d columns), want (5, 2 columns)", w, len(bits))
	}
	if w, bits := f.Glyph('B'); w != 5 || bits != nil {
		t.Errorf("glyph B = (%d, %v), want (5, nil)", w, bits)
	}
}

func TestScale2x(t *testing.T) {
	if Font10x14.Height != 14 {
		t.Errorf("expected height 14, got %d", Font10x14.Height)
	}
	if Font10x14.BytesPerColumn() != 2 {
		t.Errorf("expected 2 bytes per column, got %d", Font10x14.BytesPerColumn())
	}
	if w := Font10x14.Width('M'); w != 10 {
		t.Errorf("expected width 10, got %d", w)
	}

	// '!' column 2 is 0x5F: rows 0,1,2,3,4,6 set. Doubled, that is rows
	// 0..9 and 12,13, i.e. bytes 0xFF, 0x33 — in two adjacent columns.
	_, bits := Font10x14.Glyph('!')
	if len(bits) != 10*2 {
		t.Fatalf("expected 20 bytes, got %d", len(bits))
	}
	for _, col := range []int{4, 5} {
		lo, hi := bits[col*2], bits[col*2+1]
		if lo != 0xFF || hi != 0x33 {
			t.Errorf("column %d = %#02x %#02x, want 0xff 0x33", col, lo, hi)
		}
	}
}

func TestTextWidth(t *testing.T) {
	tests := []struct {
		s       string
		spacing int
		want    int
	}{
		{"", 1, 0},
		{"A", 1, 5},
		{"AB", 1, 11},
		{"AB", 2, 12},
		{"AB\nCDE", 1, 11}, // first line only
	}
	for _, test := range tests {
		if got := Font5x7.TextWidth(test.s, test.spacing); got != test.want {
			t.Errorf("TextWidth(%q, %d) = %d, want %d", test.s, test.spacing, got, test.want)
		}
	}
}
