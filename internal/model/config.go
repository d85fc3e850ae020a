package model

// Group bundles a set of bad-word patterns with the file globs it applies to.
type Group struct {
	Name     string
	Words    []string
	Patterns []string
}

// Configuration is the parsed pre-commit.json. Groups keep the key order of
// the bad_words object.
type Configuration struct {
	Groups []Group
	Source Path
}

// Group returns the group with the given name.
func (c Configuration) Group(name string) (Group, bool) {
	for _, g := range c.Groups {
		if g.Name == name {
			return g, true
		}
	}

	return Group{}, false
}

// GroupPlan lists the staged files a group would scan.
type GroupPlan struct {
	Group Group
	Files []Path
}
