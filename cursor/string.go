package cursor

import (
	"bytes"

	"github.com/tsawler/bytecursor/internal/charset"
)

// SupportedCharset reports whether label names an encoding the string reads
// can decode. An empty label means UTF-8.
func SupportedCharset(label string) bool {
	_, err := charset.Lookup(label)
	return err == nil
}

// ReadString decodes the next n bytes as UTF-8 and advances past them.
// It returns ok == false, without moving, if fewer than n bytes remain or the
// bytes are not valid UTF-8.
func (c *Cursor) ReadString(n int) (string, bool) {
	return c.ReadStringCharset(n, charset.DefaultLabel)
}

// ReadStringCharset is like ReadString but decodes with the named encoding.
func (c *Cursor) ReadStringCharset(n int, label string) (string, bool) {
	s, used, ok := c.fixedString(n, label)
	if ok {
		c.pos += used
	}
	return s, ok
}

// PeekString is ReadString without advancing.
func (c *Cursor) PeekString(n int) (string, bool) {
	s, _, ok := c.fixedString(n, charset.DefaultLabel)
	return s, ok
}

// ReadCString decodes UTF-8 bytes up to the next NUL and advances past the
// terminator. It returns ok == false, without moving, if no NUL remains or
// the bytes before it are not valid UTF-8.
func (c *Cursor) ReadCString() (string, bool) {
	return c.ReadCStringCharset(charset.DefaultLabel)
}

// ReadCStringCharset is like ReadCString but decodes with the named encoding.
// The terminator is always a single zero byte.
func (c *Cursor) ReadCStringCharset(label string) (string, bool) {
	s, used, ok := c.cString(label)
	if ok {
		c.pos += used
	}
	return s, ok
}

// PeekCString is ReadCString without advancing.
func (c *Cursor) PeekCString() (string, bool) {
	s, _, ok := c.cString(charset.DefaultLabel)
	return s, ok
}

// fixedString decodes n bytes at the position and reports how many bytes a
// successful read consumes.
func (c *Cursor) fixedString(n int, label string) (string, int, bool) {
	if n < 0 || c.pos < 0 || c.pos > len(c.buf) || c.Remain() < n {
		return "", 0, false
	}
	s, ok := decode(c.buf[c.pos:c.pos+n], label)
	return s, n, ok
}

func (c *Cursor) cString(label string) (string, int, bool) {
	rest := c.PeekRemaining()
	n := bytes.IndexByte(rest, 0)
	if n < 0 {
		return "", 0, false
	}
	s, ok := decode(rest[:n], label)
	return s, n + 1, ok
}

func decode(b []byte, label string) (string, bool) {
	d, err := charset.Lookup(label)
	if err != nil {
		return "", false
	}
	s, err := d.Decode(b)
	if err != nil {
		return "", false
	}
	return s, true
}
