// Package domain implements the bad-word check workflow.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"badwords.dev/pkg/badwords/internal/adapter"
	"badwords.dev/pkg/badwords/internal/controller"
	m "badwords.dev/pkg/badwords/internal/model"
)

// ErrBadWordsFound is returned by callers that turn a Fail verdict into an error.
var ErrBadWordsFound = errors.New("bad words found")

// CheckArgs holds the arguments of a check run.
type CheckArgs struct {
	// StartDir is where the search for the repository root begins.
	StartDir m.Path
}

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	// Check scans the staged files and reports findings. The verdict is only
	// meaningful when err is nil.
	Check(ctx context.Context, args CheckArgs) (m.Verdict, error)
	// Plan lists the staged files each group would scan without reading them.
	Plan(ctx context.Context, args CheckArgs) error
	// ShowConfig prints the loaded configuration.
	ShowConfig(ctx context.Context, args CheckArgs) error
	// Init writes a starter pre-commit.json.
	Init(ctx context.Context, args SetupArgs) error
	// Install writes the git pre-commit hook script.
	Install(ctx context.Context, args SetupArgs) error
}

type workflow struct {
	adapter.RepoFSAdapter
	adapter.GitAdapter
	controller.UI
	ConfigLoader
	Scanner
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.RepoFSAdapter,
	gitAdapter adapter.GitAdapter,
	ui controller.UI,
	loader ConfigLoader,
	scanner Scanner,
) Workflow {
	return &workflow{
		RepoFSAdapter: fsAdapter,
		GitAdapter:    gitAdapter,
		UI:            ui,
		ConfigLoader:  loader,
		Scanner:       scanner,
	}
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) (m.Verdict, error) {
	repo, cfg, err := w.prepare(ctx, args)
	if err != nil {
		return m.Fail, err
	}

	files, err := w.ListStagedFiles(ctx, repo.Root)
	if err != nil {
		slog.Error("Failed to list staged files", "error", err)
		return m.Fail, err
	}

	slog.Info("Checking staged files", "repo", repo.Root, "files", len(files), "groups", len(cfg.Groups))

	verdict := m.Pass

	for _, group := range cfg.Groups {
		result, err := w.scanGroup(ctx, repo, group, files)
		if err != nil {
			return m.Fail, err
		}

		if result.Found() {
			verdict = verdict.Merge(m.Fail)
			w.DisplayFindings(ctx, cfg, result)
		}
	}

	if verdict == m.Pass {
		w.DisplaySuccess(ctx)
	}

	slog.Info("Check finished", "verdict", verdict)

	return verdict, nil
}

func (w *workflow) Plan(ctx context.Context, args CheckArgs) error {
	repo, cfg, err := w.prepare(ctx, args)
	if err != nil {
		return err
	}

	files, err := w.ListStagedFiles(ctx, repo.Root)
	if err != nil {
		slog.Error("Failed to list staged files", "error", err)
		return err
	}

	plans := make([]m.GroupPlan, 0, len(cfg.Groups))
	for _, group := range cfg.Groups {
		plans = append(plans, m.GroupPlan{Group: group, Files: FilterByGlob(files, group.Patterns)})
	}

	return w.DisplayPlan(ctx, plans)
}

func (w *workflow) ShowConfig(ctx context.Context, args CheckArgs) error {
	_, cfg, err := w.prepare(ctx, args)
	if err != nil {
		return err
	}

	return w.DisplayConfiguration(ctx, cfg)
}

// prepare locates the repository and loads its configuration.
func (w *workflow) prepare(ctx context.Context, args CheckArgs) (m.Repo, m.Configuration, error) {
	repo, err := w.locate(ctx, args.StartDir)
	if err != nil {
		return m.Repo{}, m.Configuration{}, err
	}

	w.DisplayRepo(ctx, repo)

	cfg, err := w.Load(repo)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return m.Repo{}, m.Configuration{}, err
	}

	return repo, cfg, nil
}

func (w *workflow) locate(ctx context.Context, startDir m.Path) (m.Repo, error) {
	repo, err := w.LocateRepoRoot(startDir)
	if err != nil {
		if errors.Is(err, adapter.ErrRepoRootNotFound) {
			w.DisplayRepoRootNotFound(ctx, startDir)
		}

		slog.Error("Failed to locate repository root", "start", startDir, "error", err)

		return m.Repo{}, err
	}

	slog.Debug("Located repository", "root", repo.Root)

	return repo, nil
}

// scanGroup scans the staged files matching the group's patterns. Unreadable
// files are reported and skipped.
func (w *workflow) scanGroup(ctx context.Context, repo m.Repo, group m.Group, staged []m.Path) (m.GroupResult, error) {
	matcher, err := NewGroupMatcher(group)
	if err != nil {
		return m.GroupResult{}, fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}

	files := FilterByGlob(staged, group.Patterns)
	slog.Debug("Filtered staged files", "group", group.Name, "files", len(files))

	result := m.GroupResult{Group: group}

	for _, file := range files {
		lines, err := w.ScanFile(ctx, matcher, file.Join(repo.Root))
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return m.GroupResult{}, ctxErr
			}

			slog.Warn("Skipping unreadable file", "group", group.Name, "path", file, "error", err)
			w.DisplayFileError(ctx, file, err)

			continue
		}

		if len(lines) > 0 {
			result.Files = append(result.Files, m.FileResult{File: file, Lines: lines})
		}
	}

	return result, nil
}
