package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	m "badwords.dev/pkg/badwords/internal/model"
)

// ErrVCSQuery is returned when git fails to list the staged files.
var ErrVCSQuery = errors.New("git query failed")

// GitAdapter abstracts the git CLI.
type GitAdapter interface {
	// ListStagedFiles returns the paths staged for commit, relative to the
	// repository root, in the order git reports them.
	ListStagedFiles(ctx context.Context, repoRoot m.Path) ([]m.Path, error)
}

// LocalGitAdapter runs the git binary found on PATH.
type LocalGitAdapter struct {
	binary string
}

// NewLocalGitAdapter constructs a LocalGitAdapter.
func NewLocalGitAdapter() *LocalGitAdapter {
	return &LocalGitAdapter{binary: "git"}
}

// ListStagedFiles runs 'git diff --cached --name-only' in repoRoot.
// Any stderr output is treated as a failure.
func (a *LocalGitAdapter) ListStagedFiles(ctx context.Context, repoRoot m.Path) ([]m.Path, error) {
	// core.quotePath=false keeps non-ASCII names readable instead of octal-escaped.
	cmd := exec.CommandContext(ctx, a.binary, "-c", "core.quotePath=false", "diff", "--cached", "--name-only")
	cmd.Dir = string(repoRoot)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}

		return nil, fmt.Errorf("%w: %s", ErrVCSQuery, msg)
	}

	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return nil, fmt.Errorf("%w: %s", ErrVCSQuery, msg)
	}

	return parseStagedFiles(stdout.String()), nil
}

// parseStagedFiles splits git output into paths, dropping empty lines.
func parseStagedFiles(output string) []m.Path {
	var files []m.Path

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			files = append(files, m.Path(line))
		}
	}

	return files
}
