// Package format identifies common binary container formats.
//
// Detection is done either from the file name extension or, more reliably,
// from the magic numbers at the start of the data, read with a cursor.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/tsawler/bytecursor/cursor"
)

// Format represents a recognized binary format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PNG indicates a Portable Network Graphics image.
	PNG
	// GIF indicates a GIF87a or GIF89a image.
	GIF
	// JPEG indicates a JPEG/JFIF image.
	JPEG
	// ZIP indicates a ZIP archive (including empty archives).
	ZIP
	// GZIP indicates a gzip stream.
	GZIP
	// PDF indicates a PDF document.
	PDF
	// ELF indicates an ELF executable or shared object.
	ELF
	// PE indicates a Windows Portable Executable.
	PE
	// WASM indicates a WebAssembly binary module.
	WASM
	// SQLite indicates an SQLite 3 database file.
	SQLite
)

// sniffLen is how much of a file DetectFromReader inspects. It covers the PE
// header offset found in typical executables.
const sniffLen = 4096

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case GIF:
		return "GIF"
	case JPEG:
		return "JPEG"
	case ZIP:
		return "ZIP"
	case GZIP:
		return "GZIP"
	case PDF:
		return "PDF"
	case ELF:
		return "ELF"
	case PE:
		return "PE"
	case WASM:
		return "WASM"
	case SQLite:
		return "SQLite"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PNG:
		return ".png"
	case GIF:
		return ".gif"
	case JPEG:
		return ".jpg"
	case ZIP:
		return ".zip"
	case GZIP:
		return ".gz"
	case PDF:
		return ".pdf"
	case ELF:
		return ".so"
	case PE:
		return ".exe"
	case WASM:
		return ".wasm"
	case SQLite:
		return ".sqlite"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png":
		return PNG
	case ".gif":
		return GIF
	case ".jpg", ".jpeg":
		return JPEG
	case ".zip":
		return ZIP
	case ".gz", ".tgz":
		return GZIP
	case ".pdf":
		return PDF
	case ".so", ".o", ".elf":
		return ELF
	case ".exe", ".dll":
		return PE
	case ".wasm":
		return WASM
	case ".db", ".sqlite", ".sqlite3":
		return SQLite
	default:
		return Unknown
	}
}

var (
	pngMagic    = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}
	jpegMagic   = []byte{0xFF, 0xD8, 0xFF}
	gzipMagic   = []byte{0x1F, 0x8B}
	elfMagic    = []byte{0x7F, 'E', 'L', 'F'}
	zipMagic    = []byte{'P', 'K', 0x03, 0x04}
	zipEmpty    = []byte{'P', 'K', 0x05, 0x06}
	wasmMagic   = []byte{0x00, 'a', 's', 'm'}
	sqliteMagic = "SQLite format 3"
)

// DetectFromMagic checks the magic bytes at the start of data.
// Returns Unknown if no known signature matches.
func DetectFromMagic(data []byte) Format {
	c := cursor.New(data)

	switch {
	case bytes.HasPrefix(c.PeekBytes(len(pngMagic)), pngMagic):
		return PNG
	case bytes.HasPrefix(c.PeekBytes(len(jpegMagic)), jpegMagic):
		return JPEG
	case bytes.HasPrefix(c.PeekBytes(len(gzipMagic)), gzipMagic):
		return GZIP
	case bytes.HasPrefix(c.PeekBytes(len(elfMagic)), elfMagic):
		return ELF
	case bytes.HasPrefix(c.PeekBytes(4), zipMagic), bytes.HasPrefix(c.PeekBytes(4), zipEmpty):
		return ZIP
	}

	if s, ok := c.PeekString(6); ok && (s == "GIF87a" || s == "GIF89a") {
		return GIF
	}
	if s, ok := c.PeekString(5); ok && s == "%PDF-" {
		return PDF
	}
	if s, ok := c.PeekCString(); ok && s == sqliteMagic {
		return SQLite
	}
	if isWASM(c.Clone()) {
		return WASM
	}
	if isPE(c.Clone()) {
		return PE
	}
	return Unknown
}

// isWASM checks for "\0asm" followed by a little-endian version of 1.
func isWASM(c *cursor.Cursor) bool {
	if !bytes.Equal(c.ReadBytes(len(wasmMagic)), wasmMagic) {
		return false
	}
	version, err := c.ReadU32LE()
	return err == nil && version == 1
}

// isPE follows the DOS header's e_lfanew field to the "PE\0\0" signature.
func isPE(c *cursor.Cursor) bool {
	if s, ok := c.ReadString(2); !ok || s != "MZ" {
		return false
	}
	c.Seek(0x3C)
	off, err := c.ReadU32LE()
	if err != nil || int64(off) > int64(c.Size()) {
		return false
	}
	sig, err := c.Seek(int(off)).ReadU32BE()
	return err == nil && sig == 0x50450000
}

// DetectFromReader inspects up to the first few kilobytes of r.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	n := size
	if n > sniffLen {
		n = sniffLen
	}
	if n <= 0 {
		return Unknown, nil
	}

	magic := make([]byte, n)
	read, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:read]), nil
}
