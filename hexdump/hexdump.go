// Package hexdump formats byte buffers as classic hex dump lines.
//
// Each line shows an address, the bytes of one fold in hexadecimal (grouped
// by eight) and, optionally, their printable ASCII characters:
//
//	00000000:  48 65 6c 6c 6f 2c 20 77  6f 72 6c 64 21 0a        |Hello, world!.  |
//
// Formatting is a pure function of the buffer and the Options value passed in.
package hexdump

import (
	"fmt"
	"io"
	"strings"
)

// DefaultFoldSize is the number of bytes per line when Options.FoldSize is unset.
const DefaultFoldSize = 16

// Options controls the dump layout. The zero value dumps the whole buffer,
// 16 bytes per line, with addresses starting at zero and the character column
// shown.
type Options struct {
	// AddrOffset is the address printed for the first byte of the buffer.
	AddrOffset int
	// Length limits the dump to the first Length bytes; zero or negative
	// dumps everything.
	Length int
	// Prefix is printed before each address and shortens the address field
	// so the two together stay eight characters wide.
	Prefix string
	// FoldSize is the number of bytes per line.
	FoldSize int
	// HideChars omits the |...| character column.
	HideChars bool
}

func (o Options) foldSize() int {
	if o.FoldSize <= 0 {
		return DefaultFoldSize
	}
	return o.FoldSize
}

// Dump formats buf and returns the lines joined by newlines. An empty
// buffer produces an empty string.
func Dump(buf []byte, opts Options) string {
	return strings.Join(Lines(buf, opts), "\n")
}

// Write writes the dump of buf to w, one line per fold.
func Write(w io.Writer, buf []byte, opts Options) error {
	for _, line := range Lines(buf, opts) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Lines formats buf and returns one string per line.
func Lines(buf []byte, opts Options) []string {
	fold := opts.foldSize()

	length := len(buf)
	if opts.Length > 0 && opts.Length < length {
		length = opts.Length
	}
	data := buf[:length]

	addr := opts.AddrOffset
	if addr < 0 {
		addr = 0
	}
	// When the first address is not on a fold boundary the first line is
	// padded so later lines start on aligned addresses. The first line still
	// shows the address of its first byte.
	lead := addr % fold
	base := addr - lead

	width := 8 - len(opts.Prefix)
	if width < 0 {
		width = 0
	}

	count := (lead + len(data) + fold - 1) / fold
	lines := make([]string, 0, count)

	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.Reset()
		lineAddr := base + i*fold
		if i == 0 {
			lineAddr = addr
		}
		fmt.Fprintf(&sb, "%s%0*x: ", opts.Prefix, width, lineAddr)

		for j := 0; j < fold; j++ {
			if j%8 == 0 {
				sb.WriteByte(' ')
			}
			if b, ok := at(data, i*fold+j-lead); ok {
				fmt.Fprintf(&sb, "%02x ", b)
			} else {
				sb.WriteString("   ")
			}
		}

		if !opts.HideChars {
			sb.WriteString(" |")
			for j := 0; j < fold; j++ {
				b, ok := at(data, i*fold+j-lead)
				switch {
				case !ok:
					sb.WriteByte(' ')
				case b >= 0x20 && b < 0x7f:
					sb.WriteByte(b)
				default:
					sb.WriteByte('.')
				}
			}
			sb.WriteByte('|')
		}

		lines = append(lines, sb.String())
	}
	return lines
}

func at(data []byte, idx int) (byte, bool) {
	if idx < 0 || idx >= len(data) {
		return 0, false
	}
	return data[idx], true
}
