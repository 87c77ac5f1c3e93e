package ustring

// Codepoint is one decoded unit of a string: a Unicode scalar value plus the
// number of bytes that encoded it. A malformed byte run decodes to an opaque
// unit of width 1 with Valid=false, so decoding is self-synchronizing.
type Codepoint struct {
	Scalar rune
	Width  int
	Valid  bool
}

// invalidScalar is the replacement scalar carried by opaque invalid units.
const invalidScalar = 0xFFFD

// NextCodepoint decodes the first codepoint of s and returns the remainder
// after it. ok is false only for the empty string; a malformed unit still
// decodes, consuming exactly one byte.
func NextCodepoint(s string) (cp Codepoint, rest string, ok bool) {
	if s == "" {
		return Codepoint{}, "", false
	}
	cp = decodeCodepoint(s)
	return cp, s[cp.Width:], true
}

// decodeCodepoint with fast paths for common cases. Unlike a permissive
// decoder it rejects stray continuation bytes, overlong forms, surrogates
// and scalars past the Unicode ceiling; every rejection consumes one byte.
func decodeCodepoint(s string) Codepoint {
	b0 := s[0]
	if b0 < 0x80 {
		return Codepoint{Scalar: rune(b0), Width: 1, Valid: true}
	}

	invalid := Codepoint{Scalar: invalidScalar, Width: 1}

	if b0 < 0xC2 { // continuation byte, or the overlong 2-byte prefixes C0/C1
		return invalid
	}

	if b0 < 0xE0 { // 2-byte sequence
		if len(s) < 2 || !isContinuation(s[1]) {
			return invalid
		}
		return Codepoint{Scalar: rune(b0&0x1F)<<6 | rune(s[1]&0x3F), Width: 2, Valid: true}
	}

	if b0 < 0xF0 { // 3-byte sequence
		if len(s) < 3 || !isContinuation(s[1]) || !isContinuation(s[2]) {
			return invalid
		}
		r := rune(b0&0x0F)<<12 | rune(s[1]&0x3F)<<6 | rune(s[2]&0x3F)
		if r < 0x800 || (r >= 0xD800 && r <= 0xDFFF) {
			return invalid
		}
		return Codepoint{Scalar: r, Width: 3, Valid: true}
	}

	if b0 < 0xF5 { // 4-byte sequence
		if len(s) < 4 || !isContinuation(s[1]) || !isContinuation(s[2]) || !isContinuation(s[3]) {
			return invalid
		}
		r := rune(b0&0x07)<<18 | rune(s[1]&0x3F)<<12 | rune(s[2]&0x3F)<<6 | rune(s[3]&0x3F)
		if r < 0x10000 || r > 0x10FFFF {
			return invalid
		}
		return Codepoint{Scalar: r, Width: 4, Valid: true}
	}

	return invalid
}

func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// isNoncharacter reports whether r is permanently reserved to never encode a
// character: U+FDD0..U+FDEF plus the last two code points of every plane.
func isNoncharacter(r rune) bool {
	if r >= 0xFDD0 && r <= 0xFDEF {
		return true
	}
	return r&0xFFFE == 0xFFFE
}

// Valid reports whether s is a well-formed scalar-value encoding containing
// no noncharacters. A single left-to-right pass over the units.
func Valid(s string) bool {
	for s != "" {
		cp, rest, _ := NextCodepoint(s)
		if !cp.Valid || isNoncharacter(cp.Scalar) {
			return false
		}
		s = rest
	}
	return true
}

// Printable reports whether s contains only printable characters: the
// visible scalar ranges plus the handful of control characters that still
// render as text controls. Any malformed unit fails the check.
func Printable(s string) bool {
	for s != "" {
		cp, rest, _ := NextCodepoint(s)
		if !cp.Valid || !printableScalar(cp.Scalar) {
			return false
		}
		s = rest
	}
	return true
}

func printableScalar(r rune) bool {
	switch {
	case r >= 0x20 && r <= 0x7E:
		return true
	case r >= 0xA0 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	switch r {
	case '\n', '\r', '\t', '\v', '\b', '\f', '\x1b', '\x7f', '\a':
		return true
	}
	return false
}

// Codepoints returns the codepoints of s as individual strings, with each
// malformed byte as its own one-byte entry.
func Codepoints(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	for s != "" {
		cp, rest, _ := NextCodepoint(s)
		out = append(out, s[:cp.Width])
		s = rest
	}
	return out
}
