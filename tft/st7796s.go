package tft

const (
	st7796sDefaultWidth  = 320
	st7796sDefaultHeight = 480
)

// Command Set Control (CSCON, from st7796s.pdf). The controller gates its
// extended command set behind these two writes; many modules expect them
// before anything else after reset.
const st7796sCSCON = 0xF0

// ST7796S initializes a display driven by an ST7796S controller, commonly
// found on 320x480 modules.
func ST7796S(c Conn, config *Config) (*Display, error) {
	return newDisplay(c, config, variant{
		name:          "ST7796S",
		defaultWidth:  st7796sDefaultWidth,
		defaultHeight: st7796sDefaultHeight,
		unlock: [][]byte{
			{st7796sCSCON, 0xC3}, // enable command 2 part I
			{st7796sCSCON, 0x96}, // enable command 2 part II
		},
	})
}
