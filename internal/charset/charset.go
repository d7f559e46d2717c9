// Package charset resolves encoding labels and performs strict decoding.
//
// Labels follow the WHATWG Encoding Standard ("utf-8", "utf-16le",
// "windows-1252", "shift_jis", ...). Decoding never substitutes: any byte
// sequence that is not valid in the selected encoding is rejected with
// ErrMalformed instead of being replaced with U+FFFD.
package charset

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	htmlcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

var (
	// ErrUnknownCharset is returned for labels that name no usable encoding.
	ErrUnknownCharset = errors.New("charset: unknown encoding label")
	// ErrMalformed is returned when input is not valid in the encoding.
	ErrMalformed = errors.New("charset: malformed input")
)

// DefaultLabel is used when a caller passes an empty label.
const DefaultLabel = "utf-8"

const byteOrderMark = "\ufeff"

// Decoder decodes bytes of one encoding into UTF-8 strings.
type Decoder struct {
	name string
	enc  encoding.Encoding // nil for utf-8
}

// UTF8 is the strict UTF-8 decoder.
var UTF8 = &Decoder{name: DefaultLabel}

// Lookup returns the strict decoder for label. Labels of the "replacement"
// encoding are rejected, since it decodes nothing.
func Lookup(label string) (*Decoder, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return UTF8, nil
	}

	enc, name := htmlcharset.Lookup(label)
	if enc == nil || enc == encoding.Replacement {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, label)
	}
	if name == DefaultLabel {
		return UTF8, nil
	}
	return &Decoder{name: name, enc: enc}, nil
}

// Name returns the canonical name of the encoding.
func (d *Decoder) Name() string {
	return d.name
}

// Decode converts b to a UTF-8 string, rejecting invalid input.
// A leading byte order mark is dropped for UTF-8 and UTF-16.
func (d *Decoder) Decode(b []byte) (string, error) {
	if d.enc == nil {
		out, _, err := transform.Bytes(encoding.UTF8Validator, b)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return strings.TrimPrefix(string(out), byteOrderMark), nil
	}

	out, err := d.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	// x/text decoders emit U+FFFD for invalid input. A replacement rune is
	// only genuine if encoding the output reproduces the input exactly.
	if bytes.ContainsRune(out, utf8.RuneError) {
		back, err := d.enc.NewEncoder().Bytes(out)
		if err != nil || !bytes.Equal(back, b) {
			return "", ErrMalformed
		}
	}

	s := string(out)
	if d.name == "utf-16le" || d.name == "utf-16be" {
		s = strings.TrimPrefix(s, byteOrderMark)
	}
	return s, nil
}
