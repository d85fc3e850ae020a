// Package adapter contains filesystem and git adapters for the badwords CLI.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "badwords.dev/pkg/badwords/internal/model"
)

// GitDirName is the git metadata directory that marks a repository root.
const GitDirName = ".git"

// ErrRepoRootNotFound is returned when no ancestor directory contains .git.
var ErrRepoRootNotFound = errors.New("git repository root not found")

// RepoFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on, so the check workflow can be tested without touching the disk.
type RepoFSAdapter interface {
	// LocateRepoRoot walks from startDir up to the filesystem root and returns
	// the first directory that has a .git directory as a direct child.
	LocateRepoRoot(startDir m.Path) (m.Repo, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// Open opens a file for streaming reads.
	Open(path m.Path) (io.ReadCloser, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error
}

// LocalRepoFSAdapter is the os-backed RepoFSAdapter.
type LocalRepoFSAdapter struct{}

// NewLocalRepoFSAdapter constructs a LocalRepoFSAdapter.
func NewLocalRepoFSAdapter() *LocalRepoFSAdapter {
	return &LocalRepoFSAdapter{}
}

// LocateRepoRoot searches for the .git directory walking up the directory tree.
func (a *LocalRepoFSAdapter) LocateRepoRoot(startDir m.Path) (m.Repo, error) {
	dir, err := filepath.Abs(string(startDir))
	if err != nil {
		return m.Repo{}, fmt.Errorf("resolve %s: %w", startDir, err)
	}

	for {
		gitDir := filepath.Join(dir, GitDirName)
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return m.Repo{Root: m.Path(dir), GitDir: m.Path(gitDir)}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return m.Repo{}, fmt.Errorf("%w: no %s in any parent directory of %s", ErrRepoRootNotFound, GitDirName, startDir)
		}

		dir = parent
	}
}

// ReadFile loads file contents from disk.
func (a *LocalRepoFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// Open opens the file at path.
func (a *LocalRepoFSAdapter) Open(path m.Path) (io.ReadCloser, error) {
	// #nosec G304 - path comes from the git index of the user's own repository
	return os.Open(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalRepoFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// WriteFile writes content to a file with the given permissions, creating
// parent directories as needed.
func (a *LocalRepoFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	if err := os.WriteFile(string(path), content, perm); err != nil {
		return err
	}

	// WriteFile keeps the mode of an existing file.
	return os.Chmod(string(path), perm)
}
