// Package tfttest provides a Conn implementation that records bus traffic,
// so driver behavior can be verified without panel hardware.
package tfttest

import (
	"periph.io/x/conn/v3/gpio"
)

// Op is one recorded bus transaction.
type Op struct {
	// Command is true for a command write, false for a data write.
	Command bool

	// Bytes holds the command byte followed by its arguments, or the raw
	// data payload.
	Bytes []byte
}

// RecordConn implements tft.Conn and records every transaction in order.
// The zero value is ready to use.
type RecordConn struct {
	Ops    []Op
	Resets []gpio.Level
	Closed bool

	// Err, when set, is returned by every bus write. It simulates a
	// failing transport.
	Err error
}

func (c *RecordConn) String() string {
	return "record"
}

func (c *RecordConn) Close() error {
	c.Closed = true
	return nil
}

func (c *RecordConn) Reset(level gpio.Level) error {
	c.Resets = append(c.Resets, level)
	return nil
}

func (c *RecordConn) Command(cmnd byte, data ...byte) error {
	if c.Err != nil {
		return c.Err
	}
	b := make([]byte, 0, 1+len(data))
	b = append(b, cmnd)
	b = append(b, data...)
	c.Ops = append(c.Ops, Op{Command: true, Bytes: b})
	return nil
}

func (c *RecordConn) Data(data ...byte) error {
	if c.Err != nil {
		return c.Err
	}
	b := make([]byte, len(data))
	copy(b, data)
	c.Ops = append(c.Ops, Op{Bytes: b})
	return nil
}

// Commands returns the sequence of recorded command bytes, ignoring data
// writes.
func (c *RecordConn) Commands() []byte {
	var cmds []byte
	for _, op := range c.Ops {
		if op.Command {
			cmds = append(cmds, op.Bytes[0])
		}
	}
	return cmds
}

// DataLen returns the total number of bytes written as data payloads,
// excluding command arguments.
func (c *RecordConn) DataLen() int {
	var n int
	for _, op := range c.Ops {
		if !op.Command {
			n += len(op.Bytes)
		}
	}
	return n
}
