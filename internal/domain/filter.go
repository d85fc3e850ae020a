package domain

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	m "badwords.dev/pkg/badwords/internal/model"
)

// FilterByGlob keeps the paths matching any of patterns, in input order.
// Patterns starting with "!" exclude; when only exclusions are given every
// other path is kept.
func FilterByGlob(paths []m.Path, patterns []string) []m.Path {
	var include, exclude []string

	for _, p := range patterns {
		if neg, ok := strings.CutPrefix(p, "!"); ok {
			exclude = append(exclude, neg)
			continue
		}

		include = append(include, p)
	}

	kept := make([]m.Path, 0, len(paths))

	for _, path := range paths {
		name := strings.TrimPrefix(string(path), "./")

		if matchAny(exclude, name) {
			continue
		}

		if len(include) == 0 || matchAny(include, name) {
			kept = append(kept, path)
		}
	}

	return kept
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		// Patterns are validated when the config is loaded.
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}

	return false
}
