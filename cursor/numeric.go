package cursor

import (
	"encoding/binary"
	"math"
)

// ReadU8 reads one byte.
func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadI8 reads one byte as a two's complement signed value.
func (c *Cursor) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return int8(v), err
}

func (c *Cursor) read16(order binary.ByteOrder) (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return order.Uint16(b), nil
}

func (c *Cursor) read32(order binary.ByteOrder) (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return order.Uint32(b), nil
}

func (c *Cursor) read64(order binary.ByteOrder) (uint64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return order.Uint64(b), nil
}

// ReadU16LE reads a little-endian uint16.
func (c *Cursor) ReadU16LE() (uint16, error) { return c.read16(binary.LittleEndian) }

// ReadU16BE reads a big-endian uint16.
func (c *Cursor) ReadU16BE() (uint16, error) { return c.read16(binary.BigEndian) }

// ReadU32LE reads a little-endian uint32.
func (c *Cursor) ReadU32LE() (uint32, error) { return c.read32(binary.LittleEndian) }

// ReadU32BE reads a big-endian uint32.
func (c *Cursor) ReadU32BE() (uint32, error) { return c.read32(binary.BigEndian) }

// ReadU64LE reads a little-endian uint64.
func (c *Cursor) ReadU64LE() (uint64, error) { return c.read64(binary.LittleEndian) }

// ReadU64BE reads a big-endian uint64.
func (c *Cursor) ReadU64BE() (uint64, error) { return c.read64(binary.BigEndian) }

// ReadI16LE reads a little-endian int16.
func (c *Cursor) ReadI16LE() (int16, error) {
	v, err := c.read16(binary.LittleEndian)
	return int16(v), err
}

// ReadI16BE reads a big-endian int16.
func (c *Cursor) ReadI16BE() (int16, error) {
	v, err := c.read16(binary.BigEndian)
	return int16(v), err
}

// ReadI32LE reads a little-endian int32.
func (c *Cursor) ReadI32LE() (int32, error) {
	v, err := c.read32(binary.LittleEndian)
	return int32(v), err
}

// ReadI32BE reads a big-endian int32.
func (c *Cursor) ReadI32BE() (int32, error) {
	v, err := c.read32(binary.BigEndian)
	return int32(v), err
}

// ReadI64LE reads a little-endian int64.
func (c *Cursor) ReadI64LE() (int64, error) {
	v, err := c.read64(binary.LittleEndian)
	return int64(v), err
}

// ReadI64BE reads a big-endian int64.
func (c *Cursor) ReadI64BE() (int64, error) {
	v, err := c.read64(binary.BigEndian)
	return int64(v), err
}

// ReadF32LE reads a little-endian IEEE-754 single.
func (c *Cursor) ReadF32LE() (float32, error) {
	v, err := c.read32(binary.LittleEndian)
	return math.Float32frombits(v), err
}

// ReadF32BE reads a big-endian IEEE-754 single.
func (c *Cursor) ReadF32BE() (float32, error) {
	v, err := c.read32(binary.BigEndian)
	return math.Float32frombits(v), err
}

// ReadF64LE reads a little-endian IEEE-754 double.
func (c *Cursor) ReadF64LE() (float64, error) {
	v, err := c.read64(binary.LittleEndian)
	return math.Float64frombits(v), err
}

// ReadF64BE reads a big-endian IEEE-754 double.
func (c *Cursor) ReadF64BE() (float64, error) {
	v, err := c.read64(binary.BigEndian)
	return math.Float64frombits(v), err
}
