package ustring

import (
	"sync"

	"github.com/rivo/uniseg"
)

// At returns the grapheme cluster at logical index i. Negative i counts from
// the end. Out-of-range indices report ok=false, never an error.
func At(s string, i int) (string, bool) {
	if i < 0 {
		i += Length(s)
		if i < 0 {
			return "", false
		}
	}
	state := -1
	var cluster string
	for len(s) > 0 {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		if i == 0 {
			return cluster, true
		}
		i--
	}
	return "", false
}

// Slice returns up to n grapheme clusters starting at logical index start.
// n == 0 is always empty, whatever start is. Negative start resolves as
// length+start and is empty if still negative. n past the available
// remainder is silently clamped. A negative n is treated as empty.
func Slice(s string, start, n int) string {
	if n <= 0 {
		return ""
	}
	if start < 0 {
		start += Length(s)
		if start < 0 {
			return ""
		}
	}
	state := -1
	rest := s
	for start > 0 && len(rest) > 0 {
		_, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		start--
	}
	if start > 0 || len(rest) == 0 {
		return ""
	}
	from := len(s) - len(rest)
	cut := rest
	for n > 0 && len(cut) > 0 {
		_, cut, _, state = uniseg.FirstGraphemeClusterInString(cut, state)
		n--
	}
	return s[from : len(s)-len(cut)]
}

// SliceFrom returns the clusters from logical index first to the end of s,
// the open-ended range form. Negative first resolves against the length and
// is empty if still negative.
func SliceFrom(s string, first int) string {
	if first < 0 {
		first += Length(s)
		if first < 0 {
			return ""
		}
	}
	state := -1
	for first > 0 && len(s) > 0 {
		_, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		first--
	}
	return s
}

// widthsPool recycles the per-call width buffer used by the negative-range
// slice path, the one operation that needs O(n) extra space.
var widthsPool = sync.Pool{
	New: func() interface{} {
		buf := make([]int, 0, 64)
		return &buf
	},
}

// SliceRange returns the clusters from logical index first through last,
// inclusive. With both bounds non-negative this is a single forward pass
// (empty when last < first). When either bound is negative, one pass
// materializes every cluster width so both bounds can be resolved against
// the total length; the result is then empty if first is still negative,
// first > last, or first is past the end.
func SliceRange(s string, first, last int) string {
	if first >= 0 && last >= 0 {
		if last < first {
			return ""
		}
		return Slice(s, first, last-first+1)
	}

	bufp := widthsPool.Get().(*[]int)
	widths := (*bufp)[:0]
	defer func() {
		*bufp = widths[:0]
		widthsPool.Put(bufp)
	}()

	state := -1
	rest := s
	var cluster string
	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		widths = append(widths, len(cluster))
	}

	length := len(widths)
	if first < 0 {
		first += length
	}
	if last < 0 {
		last += length
	}
	if first < 0 || first > last || first > length {
		return ""
	}
	if last >= length {
		last = length - 1
	}

	from := 0
	for i := 0; i < first; i++ {
		from += widths[i]
	}
	to := from
	for i := first; i <= last; i++ {
		to += widths[i]
	}
	return s[from:to]
}
