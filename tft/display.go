package tft

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/rprouse/AvalancheForecast/conn"
	"github.com/rprouse/AvalancheForecast/font"
)

// Common MIPI-DBI command set, shared by the ILI9341 and ST7796S.
const (
	cmdNOP     = 0x00
	cmdSWRESET = 0x01 // Software Reset
	cmdSLPOUT  = 0x11 // Sleep Out
	cmdINVOFF  = 0x20 // Display Inversion Off
	cmdINVON   = 0x21 // Display Inversion On
	cmdDISPOFF = 0x28 // Display Off
	cmdDISPON  = 0x29 // Display On
	cmdCASET   = 0x2A // Column Address Set
	cmdRASET   = 0x2B // Row Address Set
	cmdRAMWR   = 0x2C // Memory Write
	cmdMADCTL  = 0x36 // Memory Data Access Control
	cmdCOLMOD  = 0x3A // Interface Pixel Format
)

// Memory Data Access Control (MADCTL) bit fields.
const (
	_         byte = 1 << iota // D0: reserved
	_                          // D1: reserved
	madctlMH                   // D2: horizontal refresh order
	madctlBGR                  // D3: BGR subpixel order
	madctlML                   // D4: vertical refresh order
	madctlMV                   // D5: row/column exchange
	madctlMX                   // D6: column address order
	madctlMY                   // D7: row address order
)

// COLMOD value for 16-bit/pixel RGB565.
const colmod16Bit = 0x55

// fillChunkPixels is the size of the reusable solid-fill buffer. Fills of any
// area stream through it, so peak memory is independent of rectangle size.
const fillChunkPixels = 64

// variant describes one supported controller.
type variant struct {
	name          string
	defaultWidth  int
	defaultHeight int

	// unlock holds command/data writes issued after the software reset and
	// before the common init steps, for controllers that gate their
	// command set behind a vendor unlock.
	unlock [][]byte
}

// Display is a handle to one physical TFT panel.
//
// The handle owns the bus connection, the control lines, a small reusable
// fill buffer and the active font. It is constructed once per panel and
// lives for the whole process.
type Display struct {
	c         Conn
	v         variant
	backlight gpio.PinOut

	physWidth  int // panel width at no rotation
	physHeight int // panel height at no rotation
	rotation   Rotation
	bgr        bool
	invert     bool
	colOffset  int
	rowOffset  int

	chunk [fillChunkPixels * 2]byte
	font  *font.Font
}

func newDisplay(c Conn, config *Config, v variant) (*Display, error) {
	if config == nil {
		config = new(Config)
	}

	if spi, ok := c.(SPI); ok {
		if err := spi.SetMode(conn.SPIMode0); err != nil {
			return nil, err
		}
		if err := spi.SetMaxSpeed(40_000_000); err != nil {
			return nil, err
		}
	}

	d := &Display{
		c:          c,
		v:          v,
		backlight:  config.Backlight,
		physWidth:  config.Width,
		physHeight: config.Height,
		rotation:   config.Rotation & 3,
		bgr:        config.BGR,
		invert:     config.Invert,
		colOffset:  config.ColumnOffset,
		rowOffset:  config.RowOffset,
		font:       font.Default,
	}
	if d.physWidth == 0 {
		d.physWidth = v.defaultWidth
	}
	if d.physHeight == 0 {
		d.physHeight = v.defaultHeight
	}

	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// init runs the one-shot initialization sequence. The inter-stage delays are
// empirical power-up timings required by the panel hardware.
func (d *Display) init() error {
	if err := d.reset(); err != nil {
		return err
	}

	if err := d.command(cmdSWRESET); err != nil {
		return err
	}
	time.Sleep(120 * time.Millisecond)

	for _, u := range d.v.unlock {
		if err := d.command(u[0], u[1:]...); err != nil {
			return err
		}
	}

	if err := d.command(cmdSLPOUT); err != nil {
		return err
	}
	time.Sleep(120 * time.Millisecond)

	if err := d.command(cmdCOLMOD, colmod16Bit); err != nil {
		return err
	}
	time.Sleep(10 * time.Millisecond)

	if err := d.SetRotation(d.rotation); err != nil {
		return err
	}

	if err := d.Invert(d.invert); err != nil {
		return err
	}

	if err := d.command(cmdDISPON); err != nil {
		return err
	}
	time.Sleep(50 * time.Millisecond)

	if d.backlight != nil {
		return d.backlight.Out(gpio.High)
	}
	return nil
}

// reset pulses the reset line. Controllers latch the falling and rising
// edges; the dwell times are datasheet minimums with margin.
func (d *Display) reset() error {
	if err := d.c.Reset(gpio.High); err != nil {
		return err
	}
	time.Sleep(10 * time.Millisecond)
	if err := d.c.Reset(gpio.Low); err != nil {
		return err
	}
	time.Sleep(20 * time.Millisecond)
	if err := d.c.Reset(gpio.High); err != nil {
		return err
	}
	time.Sleep(120 * time.Millisecond)
	return nil
}

func (d *Display) command(command byte, data ...byte) error {
	return d.c.Command(command, data...)
}

func (d *Display) commands(commands [][]byte) (err error) {
	for _, command := range commands {
		if err = d.c.Command(command[0], command[1:]...); err != nil {
			return
		}
	}
	return
}

func (d *Display) String() string {
	return fmt.Sprintf("%s %dx%d", d.v.name, d.Width(), d.Height())
}

// Close shuts the display off and releases the bus.
func (d *Display) Close() error {
	if err := d.Show(false); err != nil {
		_ = d.c.Close()
		return err
	}
	return d.c.Close()
}

// Width is the display width in pixels under the current rotation.
func (d *Display) Width() int {
	if d.rotation&1 == 0 {
		return d.physWidth
	}
	return d.physHeight
}

// Height is the display height in pixels under the current rotation.
func (d *Display) Height() int {
	if d.rotation&1 == 0 {
		return d.physHeight
	}
	return d.physWidth
}

// Rotation returns the current rotation.
func (d *Display) Rotation() Rotation {
	return d.rotation
}

// SetRotation stores the rotation and reprograms the controller's memory
// access order to match.
func (d *Display) SetRotation(rotation Rotation) error {
	d.rotation = rotation & 3

	var madctl byte
	switch d.rotation {
	case NoRotation:
		madctl = madctlMX
	case Rotate90:
		madctl = madctlMV
	case Rotate180:
		madctl = madctlMY
	case Rotate270:
		madctl = madctlMX | madctlMY | madctlMV
	}
	if d.bgr {
		madctl |= madctlBGR
	}
	return d.command(cmdMADCTL, madctl)
}

// Show toggles the display on or off.
func (d *Display) Show(show bool) error {
	command := byte(cmdDISPOFF)
	if show {
		command = cmdDISPON
	}
	return d.command(command)
}

// Invert enables or disables display inversion.
func (d *Display) Invert(invert bool) error {
	command := byte(cmdINVOFF)
	if invert {
		command = cmdINVON
	}
	return d.command(command)
}

// setWindow addresses the GRAM rectangle (x0,y0)-(x1,y1) inclusive and
// issues the memory write command, leaving the bus ready to stream exactly
// (x1-x0+1)*(y1-y0+1) pixels of data. Streaming any other amount
// desynchronizes the controller's write pointer until the next window.
func (d *Display) setWindow(x0, y0, x1, y1 int) error {
	x0 += d.colOffset
	x1 += d.colOffset
	y0 += d.rowOffset
	y1 += d.rowOffset
	return d.commands([][]byte{
		{cmdCASET, byte(x0 >> 8), byte(x0), byte(x1 >> 8), byte(x1)},
		{cmdRASET, byte(y0 >> 8), byte(y0), byte(y1 >> 8), byte(y1)},
		{cmdRAMWR},
	})
}
