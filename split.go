package ustring

import "strings"

// SplitOptions control SplitWith. Parts caps the number of segments emitted
// (0 or negative means unlimited); the final segment is always the raw
// unconsumed remainder, never matched further. Trim drops empty segments
// from the output.
type SplitOptions struct {
	Parts int
	Trim  bool
}

// Fields splits s on maximal runs of Unicode whitespace, discarding leading
// and trailing empty segments.
func Fields(s string) []string {
	return strings.Fields(s)
}

// Split divides s around every match of p.
func Split(s string, p Pattern) []string {
	return SplitWith(s, p, SplitOptions{})
}

// SplitWith divides s around matches of p under the given options. The
// empty pattern degenerates to one-codepoint-at-a-time splitting with one
// trailing empty segment, which Trim removes.
func SplitWith(s string, p Pattern, o SplitOptions) []string {
	var segs []string
	if isEmptyPattern(p) {
		segs = splitEveryCodepoint(s, o.Parts)
	} else if rp, isRegex := p.(regexPattern); isRegex {
		segs = splitRegex(s, rp, o.Parts)
	} else {
		segs = splitPattern(s, p, o.Parts)
	}
	if o.Trim {
		segs = dropEmpty(segs)
	}
	return segs
}

func splitPattern(s string, p Pattern, parts int) []string {
	out := make([]string, 0, 8)
	for parts <= 0 || len(out) < parts-1 {
		start, end, ok := p.find(s)
		if !ok {
			break
		}
		out = append(out, s[:start])
		s = s[end:]
	}
	return append(out, s)
}

// splitRegex delegates to the regexp engine, which already implements the
// same parts semantics and handles zero-width matches.
func splitRegex(s string, p regexPattern, parts int) []string {
	if parts <= 0 {
		parts = -1
	}
	return p.re.Split(s, parts)
}

// splitEveryCodepoint emits one segment per codepoint plus one trailing
// empty segment, unless a parts cap stops the walk first.
func splitEveryCodepoint(s string, parts int) []string {
	out := make([]string, 0, len(s)+1)
	for s != "" && (parts <= 0 || len(out) < parts-1) {
		cp, rest, _ := NextCodepoint(s)
		out = append(out, s[:cp.Width])
		s = rest
	}
	if s == "" {
		return append(out, "")
	}
	return append(out, s)
}

func dropEmpty(segs []string) []string {
	out := segs[:0]
	for _, seg := range segs {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// Splitter is a lazy, single-pass split: each Next consumes one pattern
// occurrence and makes the preceding segment available via Value. It is the
// on-demand equivalent of Split without a parts cap. The zero cost of
// stopping early is the whole point; there is no Close.
type Splitter struct {
	rest         string
	pat          Pattern
	perCodepoint bool
	trim         bool
	value        string
	done         bool
}

// NewSplitter returns a lazy splitter over s. Regular-expression patterns
// are not supported here; use Split for those.
func NewSplitter(s string, p Pattern, trim bool) *Splitter {
	if _, isRegex := p.(regexPattern); isRegex {
		panic("ustring: NewSplitter does not accept regular-expression patterns")
	}
	return &Splitter{
		rest:         s,
		pat:          p,
		perCodepoint: isEmptyPattern(p),
		trim:         trim,
	}
}

// Next advances to the next segment, reporting whether one is available.
func (sp *Splitter) Next() bool {
	for {
		seg, ok := sp.step()
		if !ok {
			return false
		}
		if sp.trim && seg == "" {
			continue
		}
		sp.value = seg
		return true
	}
}

// Value returns the segment made available by the last call to Next.
func (sp *Splitter) Value() string {
	return sp.value
}

// step produces the next raw segment, before trim filtering. A pure cursor
// transition: consume one match, emit one segment.
func (sp *Splitter) step() (string, bool) {
	if sp.done {
		return "", false
	}
	if sp.perCodepoint {
		if sp.rest == "" {
			sp.done = true
			return "", true // the trailing empty segment
		}
		cp, rest, _ := NextCodepoint(sp.rest)
		seg := sp.rest[:cp.Width]
		sp.rest = rest
		return seg, true
	}
	start, end, ok := sp.pat.find(sp.rest)
	if !ok {
		sp.done = true
		return sp.rest, true
	}
	seg := sp.rest[:start]
	sp.rest = sp.rest[end:]
	return seg, true
}
