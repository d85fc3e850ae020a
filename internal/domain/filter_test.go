package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "badwords.dev/pkg/badwords/internal/model"
)

func TestFilterByGlob(t *testing.T) {
	staged := []m.Path{
		"a.txt",
		"a.py",
		"docs/readme.md",
		"src/app/main.go",
		"src/app/main_test.go",
		"web/index.js",
		"web/view.tsx",
	}

	tests := []struct {
		name     string
		patterns []string
		want     []m.Path
	}{
		{"star stays in one segment", []string{"*.txt"}, []m.Path{"a.txt"}},
		{"globstar", []string{"**/*.go"}, []m.Path{"src/app/main.go", "src/app/main_test.go"}},
		{"any of several", []string{"*.py", "docs/*"}, []m.Path{"a.py", "docs/readme.md"}},
		{"braces", []string{"web/*.{js,tsx}"}, []m.Path{"web/index.js", "web/view.tsx"}},
		{"character class", []string{"a.[pt]*"}, []m.Path{"a.txt", "a.py"}},
		{"negation", []string{"**/*.go", "!**/*_test.go"}, []m.Path{"src/app/main.go"}},
		{"only negation keeps the rest", []string{"!**/*.go", "!web/**"}, []m.Path{"a.txt", "a.py", "docs/readme.md"}},
		{"no match", []string{"*.rs"}, []m.Path{}},
		{"keeps input order", []string{"**"}, staged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterByGlob(staged, tt.patterns))
		})
	}
}

func TestFilterByGlob_EmptyInput(t *testing.T) {
	assert.Empty(t, FilterByGlob(nil, []string{"*"}))
}

func TestFilterByGlob_DotSlashPrefix(t *testing.T) {
	assert.Equal(t, []m.Path{"./a.txt"}, FilterByGlob([]m.Path{"./a.txt"}, []string{"*.txt"}))
}

func TestFilterByGlob_Dotfiles(t *testing.T) {
	staged := []m.Path{".env", ".hidden.txt", ".github/x.yml", "src/.env", "a.txt"}

	tests := []struct {
		name     string
		patterns []string
		want     []m.Path
	}{
		{"star matches a leading dot", []string{"*.txt"}, []m.Path{".hidden.txt", "a.txt"}},
		{"globstar enters dot directories", []string{"**/*"}, staged},
		{"dotfiles can be excluded explicitly", []string{"**/*", "!**/.*", "!.github/**"}, []m.Path{"a.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterByGlob(staged, tt.patterns))
		})
	}
}
