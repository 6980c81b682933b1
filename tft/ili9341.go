package tft

const (
	ili9341DefaultWidth  = 240
	ili9341DefaultHeight = 320
)

// ILI9341 initializes a display driven by an ILI9341 controller, commonly
// found on 240x320 modules. The controller accepts the common MIPI-DBI init
// sequence as-is, with no vendor unlock.
func ILI9341(c Conn, config *Config) (*Display, error) {
	return newDisplay(c, config, variant{
		name:          "ILI9341",
		defaultWidth:  ili9341DefaultWidth,
		defaultHeight: ili9341DefaultHeight,
	})
}
