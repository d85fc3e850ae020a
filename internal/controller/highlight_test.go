package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func bracket(s string) string { return "[" + s + "]" }

func TestMatchSpans(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		words []string
		want  []span
	}{
		{"no words", "password", nil, nil},
		{"no occurrence", "hello", []string{"password"}, nil},
		{"single", "my password=1", []string{"password"}, []span{{3, 11}}},
		{"repeated", "ab ab", []string{"ab"}, []span{{0, 2}, {3, 5}}},
		{"overlapping words merge", "password", []string{"pass", "sword"}, []span{{0, 8}}},
		{"nested word", "secret", []string{"secret", "cre"}, []span{{0, 6}}},
		{"adjacent words merge", "foobar", []string{"foo", "bar"}, []span{{0, 6}}},
		{"empty word ignored", "abc", []string{""}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchSpans(tt.line, tt.words))
		})
	}
}

func TestHighlight(t *testing.T) {
	assert.Equal(t, "my [password]=123", highlight("my password=123", []string{"password"}, bracket))
	assert.Equal(t, "[TODO] and [TODO]", highlight("TODO and TODO", []string{"TODO"}, bracket))
	assert.Equal(t, "nothing", highlight("nothing", []string{"x*y"}, bracket))
}

// A word that occurs inside another word's highlight markup must not be
// re-highlighted.
func TestHighlight_MarkupIsNotRematched(t *testing.T) {
	got := highlight("key", []string{"key", "["}, bracket)
	assert.Equal(t, "[key]", got)
}
