// Command bindump prints a hex dump of a byte range of a file, or the
// NUL-terminated strings found in it.
//
// Usage:
//
//	bindump [-offset N] [-length N] [-fold N] [-prefix S] [-no-chars] FILE
//	bindump -strings [-min N] [-charset LABEL] FILE
//
// Defaults for -fold, -prefix, -charset and -min are read from BINDUMP_FOLD,
// BINDUMP_PREFIX, BINDUMP_CHARSET and BINDUMP_MIN_STRING.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"unicode"

	"github.com/caarlos0/env/v11"

	"github.com/tsawler/bytecursor/cursor"
	"github.com/tsawler/bytecursor/format"
	"github.com/tsawler/bytecursor/hexdump"
)

type config struct {
	FoldSize  int    `env:"BINDUMP_FOLD" envDefault:"16"`
	Prefix    string `env:"BINDUMP_PREFIX"`
	Charset   string `env:"BINDUMP_CHARSET" envDefault:"utf-8"`
	MinString int    `env:"BINDUMP_MIN_STRING" envDefault:"4"`
}

// loadConfig parses environment defaults. A nil environ reads the process
// environment.
func loadConfig(environ map[string]string) (config, error) {
	var cfg config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bindump: ")

	cfg, err := loadConfig(nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := run(os.Args[1:], cfg, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, cfg config, out io.Writer) error {
	fs := flag.NewFlagSet("bindump", flag.ContinueOnError)
	offset := fs.Int("offset", 0, "byte offset of the range to inspect")
	length := fs.Int("length", -1, "number of bytes to inspect (-1 = to end of file)")
	fold := fs.Int("fold", cfg.FoldSize, "bytes per dump line")
	prefix := fs.String("prefix", cfg.Prefix, "text printed before each address")
	noChars := fs.Bool("no-chars", false, "omit the character column")
	listStrings := fs.Bool("strings", false, "list NUL-terminated strings instead of dumping")
	minLen := fs.Int("min", cfg.MinString, "minimum length of listed strings")
	charsetLabel := fs.String("charset", cfg.Charset, "encoding of listed strings")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("expected exactly one FILE argument")
	}
	if *offset < 0 {
		return fmt.Errorf("invalid -offset %d", *offset)
	}
	if !cursor.SupportedCharset(*charsetLabel) {
		return fmt.Errorf("unsupported -charset %q", *charsetLabel)
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	n := *length
	if n < 0 {
		n = len(data)
	}
	c := cursor.NewView(data, *offset, n)

	fmt.Fprintf(out, "format: %s\n", format.DetectFromMagic(c.PeekRemaining()))

	if *listStrings {
		return writeStrings(out, c, *offset, *minLen, *charsetLabel)
	}
	return hexdump.Write(out, c.ReadRemaining(), hexdump.Options{
		AddrOffset: *offset,
		Prefix:     *prefix,
		FoldSize:   *fold,
		HideChars:  *noChars,
	})
}

// writeStrings prints every printable NUL-terminated string of at least
// minLen runes, with its file offset. A run that does not decode is skipped
// up to and including its terminator.
func writeStrings(out io.Writer, c *cursor.Cursor, base, minLen int, label string) error {
	for !c.AtEnd() {
		n := bytes.IndexByte(c.PeekRemaining(), 0)
		if n < 0 {
			break
		}
		start := c.Position()
		s, ok := c.ReadStringCharset(n, label)
		c.Skip(1)
		if !ok {
			c.Skip(n)
			continue
		}
		if !printable(s, minLen) {
			continue
		}
		if _, err := fmt.Fprintf(out, "%08x: %s\n", base+start, s); err != nil {
			return err
		}
	}
	return nil
}

func printable(s string, minLen int) bool {
	count := 0
	for _, r := range s {
		if !unicode.IsPrint(r) && r != '\t' {
			return false
		}
		count++
	}
	return count > 0 && count >= minLen
}
