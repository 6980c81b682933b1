package pixel

import "testing"

func TestNewKnownValues(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    RGB565
	}{
		{0x00, 0x00, 0x00, 0x0000},
		{0xFF, 0xFF, 0xFF, 0xFFFF},
		{0xFF, 0x00, 0x00, 0xF800},
		{0x00, 0xFF, 0x00, 0x07E0},
		{0x00, 0x00, 0xFF, 0x001F},
		{0x08, 0x04, 0x08, 0x0821}, // lowest non-zero step per channel
	}
	for _, test := range tests {
		if got := New(test.r, test.g, test.b); got != test.want {
			t.Errorf("New(%#02x, %#02x, %#02x) = %#04x, want %#04x",
				test.r, test.g, test.b, got, test.want)
		}
	}
}

// TestNewQuantization checks that packing and expanding any 8-bit triple
// recovers the channels within the 5/6/5 quantization error.
func TestNewQuantization(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 5 {
			for b := 0; b < 256; b += 5 {
				c := New(uint8(r), uint8(g), uint8(b))
				if c != New(uint8(r), uint8(g), uint8(b)) {
					t.Fatalf("New(%d, %d, %d) is not deterministic", r, g, b)
				}
				cr, cg, cb, _ := c.RGBA()
				if d := abs(int(cr>>8) - r); d > 8 {
					t.Fatalf("red %d expanded to %d, off by %d", r, cr>>8, d)
				}
				if d := abs(int(cg>>8) - g); d > 4 {
					t.Fatalf("green %d expanded to %d, off by %d", g, cg>>8, d)
				}
				if d := abs(int(cb>>8) - b); d > 8 {
					t.Fatalf("blue %d expanded to %d, off by %d", b, cb>>8, d)
				}
			}
		}
	}
}

func TestWireBytes(t *testing.T) {
	c := RGB565(0xABCD)
	if c.Hi() != 0xAB || c.Lo() != 0xCD {
		t.Errorf("expected bytes ab cd, got %02x %02x", c.Hi(), c.Lo())
	}
}

func TestModel(t *testing.T) {
	c := Model.Convert(White)
	if c != White {
		t.Errorf("expected RGB565 values to convert to themselves, got %v", c)
	}
	c = Model.Convert(New(0x10, 0x20, 0x30))
	if _, ok := c.(RGB565); !ok {
		t.Errorf("expected an RGB565 value, got %T", c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
