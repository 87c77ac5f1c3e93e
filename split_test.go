package ustring

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "simple", input: "foo bar baz", want: []string{"foo", "bar", "baz"}},
		{name: "runs collapse", input: "foos  bar\t\nbaz", want: []string{"foos", "bar", "baz"}},
		{name: "leading and trailing dropped", input: "  a b  ", want: []string{"a", "b"}},
		{name: "unicode whitespace", input: "a b c", want: []string{"a", "b", "c"}},
		{name: "empty", input: "", want: nil},
		{name: "only whitespace", input: " \t ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fields(tt.input)
			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pat   Pattern
		opts  SplitOptions
		want  []string
	}{
		{
			name:  "single literal",
			input: "a,b,c",
			pat:   Literal(","),
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "parts cap",
			input: "a,b,c",
			pat:   Literal(","),
			opts:  SplitOptions{Parts: 2},
			want:  []string{"a", "b,c"},
		},
		{
			name:  "parts one returns whole",
			input: "a,b,c",
			pat:   Literal(","),
			opts:  SplitOptions{Parts: 1},
			want:  []string{"a,b,c"},
		},
		{
			name:  "literal set",
			input: "1,2 3,4",
			pat:   Literals(" ", ","),
			want:  []string{"1", "2", "3", "4"},
		},
		{
			name:  "adjacent matches give empties",
			input: "a,,b",
			pat:   Literal(","),
			want:  []string{"a", "", "b"},
		},
		{
			name:  "trim drops empties",
			input: ",a,,b,",
			pat:   Literal(","),
			opts:  SplitOptions{Trim: true},
			want:  []string{"a", "b"},
		},
		{
			name:  "no match",
			input: "abc",
			pat:   Literal(","),
			want:  []string{"abc"},
		},
		{
			name:  "empty input",
			input: "",
			pat:   Literal(","),
			want:  []string{""},
		},
		{
			name:  "empty pattern",
			input: "abc",
			pat:   Literal(""),
			want:  []string{"a", "b", "c", ""},
		},
		{
			name:  "empty pattern trim",
			input: "abc",
			pat:   Literal(""),
			opts:  SplitOptions{Trim: true},
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "empty pattern with parts",
			input: "abc",
			pat:   Literal(""),
			opts:  SplitOptions{Parts: 2},
			want:  []string{"a", "bc"},
		},
		{
			name:  "regex",
			input: "a1b22c",
			pat:   Regex(regexp.MustCompile(`[0-9]+`)),
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "regex with parts",
			input: "a1b22c",
			pat:   Regex(regexp.MustCompile(`[0-9]+`)),
			opts:  SplitOptions{Parts: 2},
			want:  []string{"a", "b22c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitWith(tt.input, tt.pat, tt.opts))
		})
	}
}

func TestSplitRejoinProperty(t *testing.T) {
	// Untrimmed, uncapped split rejoined with the separator reproduces
	// the input.
	seps := []string{",", "ab", " "}
	for _, s := range fixtureStrings {
		for _, sep := range seps {
			segs := Split(s, Literal(sep))
			assert.Equal(t, s, strings.Join(segs, sep), "split %q on %q", s, sep)
		}
	}
}

func TestSplitterMatchesEagerSplit(t *testing.T) {
	inputs := []struct {
		s   string
		pat Pattern
	}{
		{s: "a,b,,c", pat: Literal(",")},
		{s: "1,2 3,4", pat: Literals(" ", ",")},
		{s: "xaaaybbz", pat: Compile("aa", "a", "bb")},
		{s: "abc", pat: Literal("")},
		{s: "", pat: Literal(",")},
		{s: "no match here", pat: Literal("|")},
	}

	for _, tt := range inputs {
		for _, trim := range []bool{false, true} {
			want := SplitWith(tt.s, tt.pat, SplitOptions{Trim: trim})
			sp := NewSplitter(tt.s, tt.pat, trim)
			var got []string
			for sp.Next() {
				got = append(got, sp.Value())
			}
			if len(want) == 0 {
				assert.Empty(t, got, "splitter(%q, trim=%v)", tt.s, trim)
			} else {
				assert.Equal(t, want, got, "splitter(%q, trim=%v)", tt.s, trim)
			}
		}
	}
}

func TestSplitterLazy(t *testing.T) {
	// The consumer just stops requesting steps; nothing else is consumed.
	sp := NewSplitter("a,b,c,d", Literal(","), false)
	require.True(t, sp.Next())
	assert.Equal(t, "a", sp.Value())
	require.True(t, sp.Next())
	assert.Equal(t, "b", sp.Value())
	// Abandoning the splitter here is fine.
}

func TestSplitterRejectsRegex(t *testing.T) {
	assert.Panics(t, func() {
		NewSplitter("abc", Regex(regexp.MustCompile(`a`)), false)
	})
}
