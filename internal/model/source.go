// Package model defines the data structures shared by the bad-word check.
package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Join resolves a repository-relative path against root.
func (p Path) Join(root Path) Path {
	if filepath.IsAbs(string(p)) {
		return p
	}

	return Path(filepath.Join(string(root), filepath.FromSlash(string(p))))
}

// Repo describes the git working tree a check runs against.
type Repo struct {
	// Root is the working tree root (the directory holding .git).
	Root Path
	// GitDir is Root joined with the git metadata directory.
	GitDir Path
}
