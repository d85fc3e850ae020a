package domain

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	m "badwords.dev/pkg/badwords/internal/model"
)

// wordMatcher tests a single bad-word pattern against a line in "contains"
// mode. Plain words use substring search; words with glob syntax are compiled.
type wordMatcher struct {
	word string
	glob glob.Glob
}

func (w wordMatcher) match(line string) bool {
	if w.glob == nil {
		return strings.Contains(line, w.word)
	}

	return w.glob.Match(line)
}

// GroupMatcher holds the compiled word patterns of a group.
type GroupMatcher struct {
	group m.Group
	words []wordMatcher
}

// NewGroupMatcher compiles the words of g.
func NewGroupMatcher(g m.Group) (*GroupMatcher, error) {
	words := make([]wordMatcher, 0, len(g.Words))

	for _, w := range g.Words {
		if glob.QuoteMeta(w) == w {
			words = append(words, wordMatcher{word: w})
			continue
		}

		if trailingEscape(w) {
			return nil, fmt.Errorf("group %q: bad word pattern %q: trailing backslash escapes nothing, write \\\\ for a literal backslash", g.Name, w)
		}

		// No separators: '*' spans the whole line.
		compiled, err := glob.Compile("*" + w + "*")
		if err != nil {
			return nil, fmt.Errorf("group %q: bad word pattern %q: %w", g.Name, w, err)
		}

		words = append(words, wordMatcher{word: w, glob: compiled})
	}

	return &GroupMatcher{group: g, words: words}, nil
}

// trailingEscape reports whether w ends in an unpaired backslash, which would
// escape the closing '*' of the contains glob.
func trailingEscape(w string) bool {
	n := len(w) - len(strings.TrimRight(w, `\`))

	return n%2 == 1
}

// Group returns the group the matcher was built from.
func (g *GroupMatcher) Group() m.Group {
	return g.group
}

// Match returns every word pattern found in line, in configuration order.
func (g *GroupMatcher) Match(line string) []string {
	var found []string

	for _, w := range g.words {
		if w.match(line) {
			found = append(found, w.word)
		}
	}

	return found
}
