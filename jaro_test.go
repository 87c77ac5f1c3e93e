package ustring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaroDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "classic pair", a: "dwayne", b: "duane", want: 0.8222},
		{name: "transposed pair", a: "martha", b: "marhta", want: 0.9444},
		{name: "dixon", a: "dixon", b: "dicksonx", want: 0.7667},
		{name: "nothing in common", a: "abc", b: "xyz", want: 0},
		{name: "same short", a: "a", b: "a", want: 1},
		{name: "too far apart", a: "ab", b: "ba", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, JaroDistance(tt.a, tt.b), 0.0001)
		})
	}
}

func TestJaroDistanceEdges(t *testing.T) {
	assert.Equal(t, 1.0, JaroDistance("", ""))
	assert.Equal(t, 1.0, JaroDistance("same", "same"))
	assert.Equal(t, 0.0, JaroDistance("", "abc"))
	assert.Equal(t, 0.0, JaroDistance("abc", ""))
}

func TestJaroDistanceSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"dwayne", "duane"},
		{"martha", "marhta"},
		{"elixir", "elixr"},
		{"👨‍👩‍👧‍👦ab", "ab👨‍👩‍👧‍👦"},
		{"", "x"},
	}
	for _, p := range pairs {
		assert.Equal(t, JaroDistance(p[0], p[1]), JaroDistance(p[1], p[0]), "jaro(%q, %q)", p[0], p[1])
	}
}

func TestJaroDistanceGraphemes(t *testing.T) {
	// Distances count grapheme clusters, not bytes: the family emoji is
	// one unit on each side.
	d := JaroDistance("👨‍👩‍👧‍👦x", "👨‍👩‍👧‍👦y")
	// One match out of two clusters on each side: (1/2 + 1/2 + 1)/3.
	assert.InDelta(t, 2.0/3.0, d, 0.0001)
}

func TestJaroDistanceRange(t *testing.T) {
	for _, a := range fixtureStrings {
		for _, b := range fixtureStrings {
			d := JaroDistance(a, b)
			assert.GreaterOrEqual(t, d, 0.0)
			assert.LessOrEqual(t, d, 1.0)
		}
	}
}
