package cursor

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a fixed-width read needs more bytes than remain.
	ErrOutOfRange = errors.New("cursor: read out of range")
	// ErrInvalidArgument is returned for arguments no position could satisfy.
	ErrInvalidArgument = errors.New("cursor: invalid argument")
)

// Cursor is a read position over an immutable byte buffer.
type Cursor struct {
	buf []byte
	pos int
}

// New returns a cursor positioned at the start of buf.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// NewView returns a cursor over backing[offset:offset+length] without copying.
// An offset or length that falls outside backing is clamped to it, so the
// view may be shorter than requested.
func NewView(backing []byte, offset, length int) *Cursor {
	if offset < 0 {
		offset = 0
	}
	if offset > len(backing) {
		offset = len(backing)
	}
	end := offset + length
	if length < 0 {
		end = offset
	}
	if end > len(backing) || end < offset {
		end = len(backing)
	}
	return &Cursor{buf: backing[offset:end:end]}
}

// Clone returns an independent cursor over the same buffer at the same position.
func (c *Cursor) Clone() *Cursor {
	return &Cursor{buf: c.buf, pos: c.pos}
}

// Position returns the current read offset.
func (c *Cursor) Position() int {
	return c.pos
}

// Size returns the number of addressable bytes.
func (c *Cursor) Size() int {
	return len(c.buf)
}

// Remain returns the number of unread bytes. It is zero when the position has
// been seeked outside the buffer.
func (c *Cursor) Remain() int {
	if c.pos < 0 || c.pos > len(c.buf) {
		return 0
	}
	return len(c.buf) - c.pos
}

// AtEnd reports whether no bytes remain.
func (c *Cursor) AtEnd() bool {
	return c.Remain() <= 0
}

// Seek sets the position to n. The value is not validated; reads from an
// invalid position fail or come back empty.
func (c *Cursor) Seek(n int) *Cursor {
	c.pos = n
	return c
}

// Skip advances the position by n bytes, stopping at the end of the buffer.
// A negative n does nothing.
func (c *Cursor) Skip(n int) *Cursor {
	if n <= 0 {
		return c
	}
	if r := c.Remain(); n > r {
		n = r
	}
	c.pos += n
	return c
}

// Align advances the position to the next multiple of n. It does nothing if
// the position is already aligned and stops at the end of the buffer.
func (c *Cursor) Align(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: alignment %d", ErrInvalidArgument, n)
	}
	if m := c.pos % n; m != 0 {
		c.Skip(n - m)
	}
	return nil
}

// PeekBytes returns up to n bytes at the current position without advancing.
// The result aliases the buffer and must not be modified.
func (c *Cursor) PeekBytes(n int) []byte {
	r := c.Remain()
	if n <= 0 || r == 0 {
		return []byte{}
	}
	if n > r {
		n = r
	}
	end := c.pos + n
	return c.buf[c.pos:end:end]
}

// PeekRemaining returns all unread bytes without advancing.
func (c *Cursor) PeekRemaining() []byte {
	return c.PeekBytes(c.Remain())
}

// ReadBytes returns up to n bytes and advances past them.
func (c *Cursor) ReadBytes(n int) []byte {
	b := c.PeekBytes(n)
	c.Skip(len(b))
	return b
}

// ReadRemaining returns all unread bytes and moves to the end.
func (c *Cursor) ReadRemaining() []byte {
	return c.ReadBytes(c.Remain())
}

// take returns exactly n bytes and advances, or fails without moving.
func (c *Cursor) take(n int) ([]byte, error) {
	if r := c.Remain(); r < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, %d available", ErrOutOfRange, n, c.pos, r)
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}
