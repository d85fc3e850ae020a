package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/gjson"

	"badwords.dev/pkg/badwords/internal/adapter"
	m "badwords.dev/pkg/badwords/internal/model"
)

// ConfigRelPath is the location of the hook configuration inside the git dir.
const ConfigRelPath = "hooks/config/pre-commit.json"

const (
	badWordsKey = "bad_words"
	patternsKey = "patterns"
)

var (
	// ErrConfigNotFound is returned when pre-commit.json does not exist.
	ErrConfigNotFound = errors.New("config not found")
	// ErrConfigParse is returned for malformed JSON or values of the wrong shape.
	ErrConfigParse = errors.New("config parse error")
	// ErrConfigInvalid is returned when a well-formed config is inconsistent.
	ErrConfigInvalid = errors.New("config invalid")
)

// ConfigLoader loads and validates the hook configuration of a repository.
type ConfigLoader interface {
	Load(repo m.Repo) (m.Configuration, error)
}

type configLoader struct {
	fs adapter.RepoFSAdapter
}

// NewConfigLoader creates a ConfigLoader reading through fs.
func NewConfigLoader(fs adapter.RepoFSAdapter) ConfigLoader {
	return &configLoader{fs: fs}
}

// ConfigPath returns the pre-commit.json path for repo.
func ConfigPath(repo m.Repo) m.Path {
	return m.Path(filepath.Join(string(repo.GitDir), filepath.FromSlash(ConfigRelPath)))
}

func (l *configLoader) Load(repo m.Repo) (m.Configuration, error) {
	path := ConfigPath(repo)

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.Configuration{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}

		return m.Configuration{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return m.Configuration{}, fmt.Errorf("%s: %w", path, err)
	}

	cfg.Source = path
	slog.Debug("Loaded config", "path", path, "groups", len(cfg.Groups))

	return cfg, nil
}

// ParseConfig parses and validates a pre-commit.json document. Groups are
// returned in the key order of the bad_words object.
func ParseConfig(data []byte) (m.Configuration, error) {
	if !gjson.ValidBytes(data) {
		return m.Configuration{}, fmt.Errorf("%w: invalid JSON", ErrConfigParse)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return m.Configuration{}, fmt.Errorf("%w: top level must be an object", ErrConfigParse)
	}

	badWords := root.Get(badWordsKey)
	if !badWords.Exists() {
		return m.Configuration{}, fmt.Errorf("%w: missing %q", ErrConfigInvalid, badWordsKey)
	}

	if !badWords.IsObject() {
		return m.Configuration{}, fmt.Errorf("%w: %q must be an object", ErrConfigParse, badWordsKey)
	}

	patterns, err := parsePatterns(root.Get(patternsKey))
	if err != nil {
		return m.Configuration{}, err
	}

	groups, err := parseGroups(badWords)
	if err != nil {
		return m.Configuration{}, err
	}

	var missing []string

	for i := range groups {
		globs, ok := patterns[groups[i].Name]
		if !ok {
			missing = append(missing, groups[i].Name)
			continue
		}

		groups[i].Patterns = globs
	}

	if len(missing) > 0 {
		return m.Configuration{}, fmt.Errorf("%w: no %q entry for group(s) %s",
			ErrConfigInvalid, patternsKey, strings.Join(missing, ", "))
	}

	for name := range patterns {
		if !hasGroup(groups, name) {
			slog.Debug("Ignoring pattern without bad_words group", "group", name)
		}
	}

	for _, g := range groups {
		if err := validateGroup(g); err != nil {
			return m.Configuration{}, err
		}
	}

	return m.Configuration{Groups: groups}, nil
}

func parseGroups(badWords gjson.Result) ([]m.Group, error) {
	var (
		groups []m.Group
		err    error
	)

	index := make(map[string]int)

	badWords.ForEach(func(key, value gjson.Result) bool {
		var words []string

		words, err = stringList(value, false)
		if err != nil {
			err = fmt.Errorf("%w: %s.%s: %w", ErrConfigParse, badWordsKey, key.String(), err)
			return false
		}

		// A repeated key overrides the earlier value in place.
		if i, seen := index[key.String()]; seen {
			groups[i].Words = words
			return true
		}

		index[key.String()] = len(groups)
		groups = append(groups, m.Group{Name: key.String(), Words: words})

		return true
	})

	return groups, err
}

func parsePatterns(value gjson.Result) (map[string][]string, error) {
	patterns := make(map[string][]string)

	if !value.Exists() {
		return patterns, nil
	}

	if !value.IsObject() {
		return nil, fmt.Errorf("%w: %q must be an object", ErrConfigParse, patternsKey)
	}

	var err error

	value.ForEach(func(key, v gjson.Result) bool {
		var globs []string

		globs, err = stringList(v, true)
		if err != nil {
			err = fmt.Errorf("%w: %s.%s: %w", ErrConfigParse, patternsKey, key.String(), err)
			return false
		}

		patterns[key.String()] = globs

		return true
	})

	return patterns, err
}

// stringList accepts an array of strings, or a bare string when allowScalar is set.
func stringList(value gjson.Result, allowScalar bool) ([]string, error) {
	if allowScalar && value.Type == gjson.String {
		return []string{value.String()}, nil
	}

	if !value.IsArray() {
		if allowScalar {
			return nil, errors.New("expected a string or an array of strings")
		}

		return nil, errors.New("expected an array of strings")
	}

	items := value.Array()
	list := make([]string, 0, len(items))

	for i, item := range items {
		if item.Type != gjson.String {
			return nil, fmt.Errorf("item %d is not a string", i)
		}

		list = append(list, item.String())
	}

	return list, nil
}

func validateGroup(g m.Group) error {
	if len(g.Patterns) == 0 {
		return fmt.Errorf("%w: group %q has no file patterns", ErrConfigInvalid, g.Name)
	}

	for _, p := range g.Patterns {
		if !doublestar.ValidatePattern(strings.TrimPrefix(p, "!")) {
			return fmt.Errorf("%w: group %q: bad file pattern %q", ErrConfigInvalid, g.Name, p)
		}
	}

	for _, w := range g.Words {
		if w == "" {
			return fmt.Errorf("%w: group %q: empty word", ErrConfigInvalid, g.Name)
		}
	}

	if _, err := NewGroupMatcher(g); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}

	return nil
}

func hasGroup(groups []m.Group, name string) bool {
	for _, g := range groups {
		if g.Name == name {
			return true
		}
	}

	return false
}
