// Package cursor provides a sequential reader over an in-memory byte buffer.
//
// A [Cursor] pairs an immutable byte slice with a mutable read position and
// exposes typed extraction operations: fixed-width integers and floats in
// either byte order, raw byte windows, and length-delimited or NUL-terminated
// strings with strict charset validation.
//
// # Buffers and Views
//
// [New] wraps a slice the caller owns outright. [NewView] borrows the window
// [offset, offset+length) of a larger backing slice without copying it; the
// backing slice must stay alive and unmodified for as long as the cursor is
// used. Byte windows returned by the cursor alias the same memory.
//
// # Positioning
//
// [Cursor.Seek] moves the position without validation, so seeking to the end
// of the buffer (or speculatively past it) is allowed; a later read reports the
// problem. [Cursor.Skip] and [Cursor.Align] clamp at the end of the buffer and
// never fail on overshoot.
//
// # Failure Modes
//
// Two return conventions are used and are intentionally kept apart:
//
//   - Numeric reads return an error wrapping [ErrOutOfRange] when fewer bytes
//     than the field width remain. [Cursor.Align] returns [ErrInvalidArgument]
//     for a non-positive alignment. These are hard errors.
//   - Byte windows and string reads never fail. Byte reads return whatever is
//     available (possibly nothing). String reads return ok == false when the
//     data is missing, unterminated or not decodable.
//
// Every failed read leaves the position unchanged.
//
// # Strings
//
//	c := cursor.New([]byte("abc\x00def"))
//	s, ok := c.ReadCString() // "abc", true; position 4
//	t, ok := c.ReadString(3) // "def", true; position 7
//
// Charset labels follow the WHATWG Encoding Standard:
//
//	name, ok := c.ReadStringCharset(16, "utf-16le")
//
// # Concurrency
//
// A Cursor is not safe for concurrent use. Give each goroutine its own cursor,
// for example with [Cursor.Clone], which shares the buffer but not the position.
package cursor
