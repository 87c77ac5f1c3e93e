package ustring

import (
	"sort"
	"strconv"
	"strings"
)

// ReplaceOptions control ReplaceWith. First limits the substitution to the
// first match. InsertReplaced lists byte offsets into the replacement at
// which the matched substring is reinserted; an offset that is negative or
// exceeds the replacement's length panics.
type ReplaceOptions struct {
	First          bool
	InsertReplaced []int
}

// ReplaceAll replaces every match of p in s with repl.
func ReplaceAll(s string, p Pattern, repl string) string {
	return ReplaceWith(s, p, repl, ReplaceOptions{})
}

// ReplaceFirst replaces only the first match of p in s with repl.
func ReplaceFirst(s string, p Pattern, repl string) string {
	return ReplaceWith(s, p, repl, ReplaceOptions{First: true})
}

// ReplaceWith replaces matches of p in s under the given options. The empty
// pattern matches at every codepoint boundary, including both ends.
func ReplaceWith(s string, p Pattern, repl string, o ReplaceOptions) string {
	expand := expandReplacement(repl, o.InsertReplaced)
	if isEmptyPattern(p) {
		p = zeroPattern{}
	}

	var b strings.Builder
	rest := s
	replaced := false
	for {
		start, end, ok := p.find(rest)
		if !ok {
			break
		}
		b.WriteString(rest[:start])
		b.WriteString(expand(rest[start:end]))
		rest = rest[end:]
		replaced = true
		if o.First {
			break
		}
		if end == start {
			// Zero-width match: copy one codepoint so the scan always
			// makes progress.
			if rest == "" {
				break
			}
			cp, _, _ := NextCodepoint(rest)
			b.WriteString(rest[:cp.Width])
			rest = rest[cp.Width:]
		}
	}
	if !replaced {
		return s
	}
	b.WriteString(rest)
	return b.String()
}

// expandReplacement validates the insert offsets once and returns the
// function producing the replacement text for one matched substring.
func expandReplacement(repl string, offsets []int) func(matched string) string {
	if len(offsets) == 0 {
		return func(string) string { return repl }
	}
	for _, off := range offsets {
		if off < 0 || off > len(repl) {
			panic("ustring: insert offset " + strconv.Itoa(off) + " out of bounds for replacement of length " + strconv.Itoa(len(repl)))
		}
	}
	sorted := append([]int(nil), offsets...)
	sort.Ints(sorted)
	return func(matched string) string {
		var b strings.Builder
		prev := 0
		for _, off := range sorted {
			b.WriteString(repl[prev:off])
			b.WriteString(matched)
			prev = off
		}
		b.WriteString(repl[prev:])
		return b.String()
	}
}

// ReplaceLeading replaces every copy of match anchored at the start of s,
// repeating until the start no longer matches.
func ReplaceLeading(s, match, repl string) string {
	if match == "" {
		panic("ustring: ReplaceLeading with empty match")
	}
	count := 0
	for strings.HasPrefix(s, match) {
		s = s[len(match):]
		count++
	}
	if count == 0 {
		return s
	}
	return strings.Repeat(repl, count) + s
}

// ReplaceTrailing replaces every copy of match anchored at the end of s,
// repeating until the end no longer matches.
func ReplaceTrailing(s, match, repl string) string {
	if match == "" {
		panic("ustring: ReplaceTrailing with empty match")
	}
	count := 0
	for strings.HasSuffix(s, match) {
		s = s[:len(s)-len(match)]
		count++
	}
	if count == 0 {
		return s
	}
	return s + strings.Repeat(repl, count)
}

// ReplacePrefix performs at most one substitution at the start of s; no
// match leaves s unchanged. An empty match always matches.
func ReplacePrefix(s, match, repl string) string {
	if strings.HasPrefix(s, match) {
		return repl + s[len(match):]
	}
	return s
}

// ReplaceSuffix performs at most one substitution at the end of s; no match
// leaves s unchanged. An empty match always matches.
func ReplaceSuffix(s, match, repl string) string {
	if strings.HasSuffix(s, match) {
		return s[:len(s)-len(match)] + repl
	}
	return s
}
