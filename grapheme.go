package ustring

import "github.com/rivo/uniseg"

// NextGrapheme returns the first extended grapheme cluster of s and the
// remainder after it. Successive calls partition s into contiguous,
// non-overlapping spans whose concatenation is exactly s; malformed bytes
// come back as single-byte clusters.
func NextGrapheme(s string) (cluster, rest string, ok bool) {
	if s == "" {
		return "", "", false
	}
	cluster, rest, _, _ = uniseg.FirstGraphemeClusterInString(s, -1)
	return cluster, rest, true
}

// Length returns the number of grapheme clusters in s. O(len(s)).
func Length(s string) int {
	n := 0
	state := -1
	for len(s) > 0 {
		_, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		n++
	}
	return n
}

// Graphemes returns the grapheme clusters of s in order.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	state := -1
	var cluster string
	for len(s) > 0 {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}
	return out
}

// SplitAt splits s at the n-th grapheme boundary. Negative n resolves as
// length+n; a position before the start yields ("", s) and one past the end
// yields (s, ""). The two halves always concatenate back to s.
func SplitAt(s string, n int) (left, right string) {
	off := boundaryOffset(s, n)
	if off < 0 {
		return "", s
	}
	return s[:off], s[off:]
}

// boundaryOffset returns the byte offset of the n-th grapheme boundary,
// clamped to the end of s when n exceeds the cluster count. A negative n
// that still resolves negative returns -1: "before the start" is distinct
// from "at the start", which is offset 0.
func boundaryOffset(s string, n int) int {
	if n < 0 {
		n += Length(s)
		if n < 0 {
			return -1
		}
	}
	off := 0
	state := -1
	var cluster string
	for n > 0 && len(s) > 0 {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		off += len(cluster)
		n--
	}
	return off
}

// First returns the first grapheme cluster of s, with ok=false for "".
func First(s string) (string, bool) {
	cluster, _, ok := NextGrapheme(s)
	return cluster, ok
}

// Last returns the last grapheme cluster of s, with ok=false for "".
func Last(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	state := -1
	var cluster string
	for len(s) > 0 {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
	}
	return cluster, true
}
