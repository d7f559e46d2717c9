package cursor

import "testing"

func TestReadCString(t *testing.T) {
	c := New([]byte("abc\x00def"))

	s, ok := c.ReadCString()
	if !ok || s != "abc" {
		t.Fatalf("ReadCString() = %q, %v; want \"abc\", true", s, ok)
	}
	if c.Position() != 4 {
		t.Errorf("Position() = %d, want 4", c.Position())
	}

	s, ok = c.ReadString(3)
	if !ok || s != "def" {
		t.Fatalf("ReadString(3) = %q, %v; want \"def\", true", s, ok)
	}
	if !c.AtEnd() {
		t.Errorf("Remain() = %d, want 0", c.Remain())
	}
}

func TestReadCString_Cases(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		start   int
		want    string
		wantOK  bool
		wantPos int
	}{
		{"empty string", []byte{0, 'a'}, 0, "", true, 1},
		{"terminator at end", []byte("xyz\x00"), 0, "xyz", true, 4},
		{"from offset", []byte("ab\x00cd\x00"), 3, "cd", true, 6},
		{"unterminated", []byte("abc"), 0, "", false, 0},
		{"empty buffer", []byte{}, 0, "", false, 0},
		{"at end", []byte("a\x00"), 2, "", false, 2},
		{"malformed", []byte{0xFF, 0xFE, 0x00}, 0, "", false, 0},
		{"utf-8", []byte("h\xc3\xa9\x00"), 0, "hé", true, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.data).Seek(tt.start)
			got, ok := c.ReadCString()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ReadCString() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
			if c.Position() != tt.wantPos {
				t.Errorf("Position() = %d, want %d", c.Position(), tt.wantPos)
			}
		})
	}
}

func TestReadString_Cases(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		n       int
		want    string
		wantOK  bool
		wantPos int
	}{
		{"exact fit", []byte("hello"), 5, "hello", true, 5},
		{"prefix", []byte("hello"), 2, "he", true, 2},
		{"zero length", []byte("hello"), 0, "", true, 0},
		{"exceeds remaining", []byte("hi"), 3, "", false, 0},
		{"negative length", []byte("hi"), -1, "", false, 0},
		{"embedded nul kept", []byte("a\x00b"), 3, "a\x00b", true, 3},
		{"malformed", []byte{'o', 'k', 0xC3, 0x28}, 4, "", false, 0},
		{"split multibyte", []byte("\xe2\x82\xac"), 2, "", false, 0},
		{"bom dropped", []byte("\xef\xbb\xbfhi"), 5, "hi", true, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.data)
			got, ok := c.ReadString(tt.n)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ReadString(%d) = %q, %v; want %q, %v", tt.n, got, ok, tt.want, tt.wantOK)
			}
			if c.Position() != tt.wantPos {
				t.Errorf("Position() = %d, want %d", c.Position(), tt.wantPos)
			}
		})
	}
}

func TestReadString_TooLongIsRepeatable(t *testing.T) {
	c := New([]byte("abcd")).Seek(1)

	_, ok1 := c.ReadString(8)
	pos1 := c.Position()
	_, ok2 := c.ReadString(8)
	pos2 := c.Position()

	if ok1 || ok2 {
		t.Fatalf("ReadString(8) ok = %v, %v; want false, false", ok1, ok2)
	}
	if pos1 != 1 || pos2 != 1 {
		t.Errorf("positions after failed reads = %d, %d; want 1, 1", pos1, pos2)
	}
}

func TestReadString_MalformedThenRecover(t *testing.T) {
	// 0xC0 0xAF is an overlong encoding of '/', valid as two Latin-1 bytes.
	c := New([]byte{0xC0, 0xAF, 'x'})

	if _, ok := c.ReadString(2); ok {
		t.Fatal("ReadString(2) on overlong sequence ok = true, want false")
	}
	if c.Position() != 0 {
		t.Fatalf("Position() after malformed read = %d, want 0", c.Position())
	}

	s, ok := c.ReadStringCharset(2, "iso-8859-1")
	if !ok {
		t.Fatal("ReadStringCharset(2, iso-8859-1) ok = false")
	}
	if s != "À¯" {
		t.Errorf("ReadStringCharset() = %q, want %q", s, "À¯")
	}

	b, err := c.ReadU8()
	if err != nil || b != 'x' {
		t.Errorf("ReadU8() = %q, %v; want 'x'", b, err)
	}
}

func TestReadStringCharset(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		n       int
		label   string
		want    string
		wantOK  bool
		wantPos int
	}{
		{"utf-16le", []byte{'h', 0, 'i', 0}, 4, "utf-16le", "hi", true, 4},
		{"utf-16be", []byte{0, 'h', 0, 'i'}, 4, "UTF-16BE", "hi", true, 4},
		{"windows-1252", []byte{0x93, 'q', 0x94}, 3, "windows-1252", "“q”", true, 3},
		{"shift_jis", []byte{0x93, 0xFA, 0x96, 0x7B}, 4, "sjis", "日本", true, 4},
		{"empty label is utf-8", []byte("ok"), 2, "", "ok", true, 2},
		{"unknown label", []byte("ok"), 2, "klingon", "", false, 0},
		{"utf-16le bom", []byte{0xFF, 0xFE, 'h', 0, 'i', 0}, 6, "utf-16le", "hi", true, 6},
		{"utf-16be bom", []byte{0xFE, 0xFF, 0, 'h', 0, 'i'}, 6, "utf-16be", "hi", true, 6},
		{"replacement encoding", []byte{0xEF, 0xBF, 0xBD}, 3, "iso-2022-kr", "", false, 0},
		{"bad utf-16", []byte{0x00, 0xDC}, 2, "utf-16le", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.data)
			got, ok := c.ReadStringCharset(tt.n, tt.label)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ReadStringCharset(%d, %q) = %q, %v; want %q, %v", tt.n, tt.label, got, ok, tt.want, tt.wantOK)
			}
			if c.Position() != tt.wantPos {
				t.Errorf("Position() = %d, want %d", c.Position(), tt.wantPos)
			}
		})
	}
}

func TestReadCStringCharset(t *testing.T) {
	c := New([]byte{0xE9, 't', 0xE9, 0x00, 'z'})

	s, ok := c.ReadCStringCharset("latin1")
	if !ok || s != "été" {
		t.Fatalf("ReadCStringCharset(latin1) = %q, %v; want \"été\", true", s, ok)
	}
	if c.Position() != 4 {
		t.Errorf("Position() = %d, want 4", c.Position())
	}

	if _, ok := New([]byte{0xE9, 0x00}).ReadCString(); ok {
		t.Error("ReadCString() on latin-1 bytes ok = true, want false")
	}
}

func TestPeekString(t *testing.T) {
	c := New([]byte("key\x00value"))

	s, ok := c.PeekCString()
	if !ok || s != "key" {
		t.Errorf("PeekCString() = %q, %v", s, ok)
	}
	s, ok = c.PeekString(3)
	if !ok || s != "key" {
		t.Errorf("PeekString(3) = %q, %v", s, ok)
	}
	if c.Position() != 0 {
		t.Errorf("Position() after peeks = %d, want 0", c.Position())
	}

	if _, ok := c.PeekString(100); ok {
		t.Error("PeekString(100) ok = true, want false")
	}
}

func TestSupportedCharset(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{"", true},
		{"utf-8", true},
		{"utf-16le", true},
		{"euc-kr", true},
		{"gb18030", true},
		{"not-a-charset", false},
		{"iso-2022-kr", false},
	}

	for _, tt := range tests {
		if got := SupportedCharset(tt.label); got != tt.want {
			t.Errorf("SupportedCharset(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}
