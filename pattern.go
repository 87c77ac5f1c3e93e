package ustring

import (
	"regexp"
	"sort"
	"strings"
)

// Pattern selects match positions in a string. It is one of: a single
// literal (Literal), a set of literals (Literals), a precompiled
// multi-literal matcher (Compile), or a regular expression (Regex).
// Patterns are stateless and safe for concurrent use; a compiled pattern is
// the one form meant to be built once and reused across many calls.
//
// When several literals of a set match at the same leftmost byte offset,
// the longest one wins.
type Pattern interface {
	// find returns the span of the leftmost match in s.
	find(s string) (start, end int, ok bool)
	// matchLen returns the length of a match anchored at the start of s,
	// or -1 when nothing matches there.
	matchLen(s string) int
}

type literalPattern string

// Literal returns a Pattern matching a single literal byte sequence.
func Literal(lit string) Pattern {
	return literalPattern(lit)
}

func (p literalPattern) find(s string) (int, int, bool) {
	if p == "" {
		return 0, 0, false
	}
	i := strings.Index(s, string(p))
	if i < 0 {
		return 0, 0, false
	}
	return i, i + len(p), true
}

func (p literalPattern) matchLen(s string) int {
	if p != "" && strings.HasPrefix(s, string(p)) {
		return len(p)
	}
	return -1
}

type listPattern []string

// Literals returns a Pattern matching any literal in the set. Empty
// literals never match and are dropped at construction.
func Literals(lits ...string) Pattern {
	p := make(listPattern, 0, len(lits))
	for _, lit := range lits {
		if lit != "" {
			p = append(p, lit)
		}
	}
	return p
}

func (p listPattern) find(s string) (int, int, bool) {
	start, length := -1, 0
	for _, lit := range p {
		i := strings.Index(s, lit)
		if i < 0 {
			continue
		}
		if start < 0 || i < start || (i == start && len(lit) > length) {
			start, length = i, len(lit)
		}
	}
	if start < 0 {
		return 0, 0, false
	}
	return start, start + length, true
}

func (p listPattern) matchLen(s string) int {
	best := -1
	for _, lit := range p {
		if len(lit) > best && strings.HasPrefix(s, lit) {
			best = len(lit)
		}
	}
	return best
}

// CompiledPattern is a multi-literal matcher built once and shared across
// calls. It precomputes a first-byte table so scan positions that cannot
// start any literal are rejected with a single lookup.
type CompiledPattern struct {
	lits      []string // ordered longest first
	firstByte [256]bool
}

// Compile builds a reusable matcher from a set of literals. Empty literals
// are dropped. The zero-literal result never matches.
func Compile(lits ...string) *CompiledPattern {
	p := &CompiledPattern{}
	for _, lit := range lits {
		if lit != "" {
			p.lits = append(p.lits, lit)
			p.firstByte[lit[0]] = true
		}
	}
	sort.SliceStable(p.lits, func(i, j int) bool {
		return len(p.lits[i]) > len(p.lits[j])
	})
	return p
}

func (p *CompiledPattern) find(s string) (int, int, bool) {
	for i := 0; i < len(s); i++ {
		if !p.firstByte[s[i]] {
			continue
		}
		if n := p.matchLen(s[i:]); n >= 0 {
			return i, i + n, true
		}
	}
	return 0, 0, false
}

func (p *CompiledPattern) matchLen(s string) int {
	// Longest-first order makes the first prefix hit the winning one.
	for _, lit := range p.lits {
		if strings.HasPrefix(s, lit) {
			return len(lit)
		}
	}
	return -1
}

type regexPattern struct {
	re *regexp.Regexp
}

// Regex wraps a compiled regular expression as a Pattern. Matching is
// delegated entirely to the regexp engine.
func Regex(re *regexp.Regexp) Pattern {
	return regexPattern{re: re}
}

func (p regexPattern) find(s string) (int, int, bool) {
	loc := p.re.FindStringIndex(s)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

func (p regexPattern) matchLen(s string) int {
	loc := p.re.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return -1
	}
	return loc[1]
}

// zeroPattern matches the empty string at the current position. It backs the
// empty-pattern degenerate cases in Replace; Split handles them directly.
type zeroPattern struct{}

func (zeroPattern) find(s string) (int, int, bool) { return 0, 0, true }
func (zeroPattern) matchLen(s string) int          { return 0 }

// isEmptyPattern reports whether p has no usable literals, the degenerate
// form that splits one codepoint at a time.
func isEmptyPattern(p Pattern) bool {
	switch q := p.(type) {
	case literalPattern:
		return q == ""
	case listPattern:
		return len(q) == 0
	case *CompiledPattern:
		return len(q.lits) == 0
	case zeroPattern:
		return true
	}
	return false
}

// StartsWith reports whether s starts with any of the given prefixes. An
// empty prefix list is always false.
func StartsWith(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// EndsWith reports whether s ends with any of the given suffixes. An empty
// suffix list is always false.
func EndsWith(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

// Contains reports whether s contains any of the given substrings. An empty
// substring list is always false.
func Contains(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// ContainsPattern reports whether p matches anywhere in s.
func ContainsPattern(s string, p Pattern) bool {
	_, _, ok := p.find(s)
	return ok
}

// StartsWithPattern reports whether a match of p is anchored at the start
// of s.
func StartsWithPattern(s string, p Pattern) bool {
	return p.matchLen(s) >= 0
}

// Match reports whether the regular expression matches s.
func Match(s string, re *regexp.Regexp) bool {
	return re.MatchString(s)
}
