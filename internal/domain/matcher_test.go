package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "badwords.dev/pkg/badwords/internal/model"
)

func TestGroupMatcher_Match(t *testing.T) {
	matcher, err := NewGroupMatcher(m.Group{
		Name:  "mixed",
		Words: []string{"password", "TODO", "api_*_key", "fixm?", "debug{ger,()}", "[Xx]xx"},
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		line string
		want []string
	}{
		{"no match", "nothing to see here", nil},
		{"substring", "my password=123", []string{"password"}},
		{"several words, config order", "TODO: rotate password", []string{"password", "TODO"}},
		{"star spans characters", "const api_prod_key = 1", []string{"api_*_key"}},
		{"star spans slashes", "api_a/b/c_key", []string{"api_*_key"}},
		{"single char", "fixme later", []string{"fixm?"}},
		{"alternation", "debugger;", []string{"debug{ger,()}"}},
		{"alternation second term", "debug()", []string{"debug{ger,()}"}},
		{"class", "the Xxx value", []string{"[Xx]xx"}},
		{"case sensitive", "PASSWORD", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matcher.Match(tt.line))
		})
	}
}

func TestGroupMatcher_Group(t *testing.T) {
	g := m.Group{Name: "g", Words: []string{"x"}}

	matcher, err := NewGroupMatcher(g)
	require.NoError(t, err)
	assert.Equal(t, g, matcher.Group())
}

func TestNewGroupMatcher_BadPattern(t *testing.T) {
	_, err := NewGroupMatcher(m.Group{Name: "g", Words: []string{"[unterminated"}})
	assert.Error(t, err)
}

func TestNewGroupMatcher_TrailingBackslash(t *testing.T) {
	_, err := NewGroupMatcher(m.Group{Name: "g", Words: []string{`a\`}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trailing backslash")

	_, err = NewGroupMatcher(m.Group{Name: "g", Words: []string{`a\\\`}})
	assert.Error(t, err)
}

func TestGroupMatcher_EscapedBackslash(t *testing.T) {
	matcher, err := NewGroupMatcher(m.Group{Name: "g", Words: []string{`C:\\`}})
	require.NoError(t, err)

	assert.Equal(t, []string{`C:\\`}, matcher.Match(`cd C:\Users`))
	assert.Nil(t, matcher.Match("cd C:/Users"))
}
