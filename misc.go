package ustring

import (
	"strings"
	"unicode"
)

// Reverse returns s with its grapheme clusters in reverse order. Codepoints
// inside a cluster keep their order, so combining marks stay attached.
func Reverse(s string) string {
	gs := Graphemes(s)
	if len(gs) < 2 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := len(gs) - 1; i >= 0; i-- {
		b.WriteString(gs[i])
	}
	return b.String()
}

// Duplicate returns s repeated n times. n <= 0 yields the empty string.
func Duplicate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}

// PadLeading pads the start of s with pad until the result is count
// grapheme clusters long, cycling through pad's clusters. s is returned
// unchanged when already long enough or when pad is empty.
func PadLeading(s string, count int, pad string) string {
	return justify(s, count, pad, true)
}

// PadTrailing pads the end of s with pad until the result is count grapheme
// clusters long, cycling through pad's clusters.
func PadTrailing(s string, count int, pad string) string {
	return justify(s, count, pad, false)
}

func justify(s string, count int, pad string, leading bool) string {
	gap := count - Length(s)
	if gap <= 0 || pad == "" {
		return s
	}
	padding := Graphemes(pad)
	var b strings.Builder
	for i := 0; i < gap; i++ {
		b.WriteString(padding[i%len(padding)])
	}
	if leading {
		return b.String() + s
	}
	return s + b.String()
}

// Trim removes leading and trailing Unicode whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimLeading removes leading Unicode whitespace.
func TrimLeading(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// TrimTrailing removes trailing Unicode whitespace.
func TrimTrailing(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// ChunkTrait selects the predicate Chunk groups by.
type ChunkTrait int

const (
	// ChunkValid groups by encoding validity: runs of well-formed
	// codepoints versus runs of opaque one-byte invalid units.
	ChunkValid ChunkTrait = iota
	// ChunkPrintable groups by the printable character classes; invalid
	// units are never printable.
	ChunkPrintable
)

// Chunk splits s into maximal runs of codepoints that agree on the trait.
// The concatenation of all chunks reproduces s exactly; a lone malformed
// byte forms its own single-byte run adjoining its neighbors.
func Chunk(s string, trait ChunkTrait) []string {
	if s == "" {
		return nil
	}
	pred := func(cp Codepoint) bool { return cp.Valid }
	if trait == ChunkPrintable {
		pred = func(cp Codepoint) bool { return cp.Valid && printableScalar(cp.Scalar) }
	}

	var out []string
	from, pos := 0, 0
	var current, started bool
	for rest := s; rest != ""; {
		cp, next, _ := NextCodepoint(rest)
		v := pred(cp)
		if started && v != current {
			out = append(out, s[from:pos])
			from = pos
		}
		current, started = v, true
		pos += cp.Width
		rest = next
	}
	return append(out, s[from:])
}
