// Package textcursor provides a sequential reader over a string.
//
// It is the text counterpart of package cursor: a position into an immutable
// string that advances as prefixes, patterns and fixed-size runs are
// consumed. Positions are byte offsets into the string.
package textcursor

import (
	"regexp"
	"strings"
)

// Reader is a read position over a string.
type Reader struct {
	s   string
	pos int
}

// New returns a reader positioned at the start of s.
func New(s string) *Reader {
	return &Reader{s: s}
}

// Position returns the current byte offset.
func (r *Reader) Position() int {
	return r.pos
}

// Size returns the length of the string in bytes.
func (r *Reader) Size() int {
	return len(r.s)
}

// Remain returns the number of unread bytes.
func (r *Reader) Remain() int {
	if r.pos < 0 || r.pos > len(r.s) {
		return 0
	}
	return len(r.s) - r.pos
}

// AtEnd reports whether nothing remains.
func (r *Reader) AtEnd() bool {
	return r.Remain() <= 0
}

// Seek sets the position to n without validation.
func (r *Reader) Seek(n int) *Reader {
	r.pos = n
	return r
}

// Skip advances by n bytes, stopping at the end. A negative n does nothing.
func (r *Reader) Skip(n int) *Reader {
	if n <= 0 {
		return r
	}
	if rem := r.Remain(); n > rem {
		n = rem
	}
	r.pos += n
	return r
}

func (r *Reader) rest() string {
	if r.AtEnd() {
		return ""
	}
	return r.s[r.pos:]
}

// Match consumes prefix if the unread text starts with it.
func (r *Reader) Match(prefix string) bool {
	if r.AtEnd() || !strings.HasPrefix(r.rest(), prefix) {
		return false
	}
	r.Skip(len(prefix))
	return true
}

// MatchRegexp consumes a match of re that starts exactly at the current
// position. It returns the match followed by its submatches.
func (r *Reader) MatchRegexp(re *regexp.Regexp) ([]string, bool) {
	if r.AtEnd() {
		return nil, false
	}
	rest := r.rest()
	loc := re.FindStringSubmatchIndex(rest)
	if loc == nil || loc[0] != 0 {
		return nil, false
	}
	r.Skip(loc[1])
	return submatches(rest, loc), true
}

// SkipUntil advances to the next occurrence of sub, leaving the position at
// its first byte. It returns the text skipped over.
func (r *Reader) SkipUntil(sub string) (string, bool) {
	if r.AtEnd() {
		return "", false
	}
	rest := r.rest()
	i := strings.Index(rest, sub)
	if i < 0 {
		return "", false
	}
	r.Skip(i)
	return rest[:i], true
}

// SkipUntilRegexp advances to the start of the next match of re. It returns
// the text skipped over and the match with its submatches.
func (r *Reader) SkipUntilRegexp(re *regexp.Regexp) (string, []string, bool) {
	if r.AtEnd() {
		return "", nil, false
	}
	rest := r.rest()
	loc := re.FindStringSubmatchIndex(rest)
	if loc == nil {
		return "", nil, false
	}
	r.Skip(loc[0])
	return rest[:loc[0]], submatches(rest, loc), true
}

// Read consumes and returns up to n bytes. A non-positive n reads all but the
// last -n bytes. At the end it returns "".
func (r *Reader) Read(n int) string {
	if r.AtEnd() {
		return ""
	}
	rem := r.Remain()
	if n <= 0 {
		n = rem + n
	}
	if n <= 0 {
		return ""
	}
	if n > rem {
		n = rem
	}
	out := r.s[r.pos : r.pos+n]
	r.Skip(n)
	return out
}

func submatches(s string, loc []int) []string {
	out := make([]string, len(loc)/2)
	for i := range out {
		if loc[2*i] >= 0 {
			out[i] = s[loc[2*i]:loc[2*i+1]]
		}
	}
	return out
}
