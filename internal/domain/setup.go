package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	m "badwords.dev/pkg/badwords/internal/model"
)

// HookRelPath is the location of the pre-commit hook inside the git dir.
const HookRelPath = "hooks/pre-commit"

// ErrAlreadyExists is returned when init or install would overwrite a file.
var ErrAlreadyExists = errors.New("file already exists")

// SetupArgs holds the arguments of init and install.
type SetupArgs struct {
	StartDir m.Path
	Force    bool
	// Binary is the command the installed hook runs.
	Binary string
}

const starterConfig = `{
  "bad_words": {
    "secrets": ["password=", "BEGIN RSA PRIVATE KEY", "aws_secret_access_key"],
    "debug": ["console.log(", "debugger;", "fmt.Println("]
  },
  "patterns": {
    "secrets": "**/*",
    "debug": ["**/*.{js,jsx,ts,tsx}", "**/*.go", "!**/*_test.go"]
  }
}
`

const hookScriptTemplate = `#!/bin/sh
# Installed by badwords. Scans staged files for disallowed words.
exec %q "$@"
`

func (w *workflow) Init(ctx context.Context, args SetupArgs) error {
	repo, err := w.locate(ctx, args.StartDir)
	if err != nil {
		return err
	}

	return w.writeSetupFile(ctx, ConfigPath(repo), []byte(starterConfig), 0o644, args.Force)
}

func (w *workflow) Install(ctx context.Context, args SetupArgs) error {
	repo, err := w.locate(ctx, args.StartDir)
	if err != nil {
		return err
	}

	binary := args.Binary
	if binary == "" {
		binary = "badwords"
	}

	path := m.Path(filepath.Join(string(repo.GitDir), filepath.FromSlash(HookRelPath)))
	script := fmt.Sprintf(hookScriptTemplate, binary)

	// #nosec G306 - git only runs hooks that are executable
	return w.writeSetupFile(ctx, path, []byte(script), 0o755, args.Force)
}

func (w *workflow) writeSetupFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode, force bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := w.FileInfo(path); err == nil && !force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrAlreadyExists, path)
	}

	if err := w.WriteFile(path, content, perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	slog.Info("Wrote file", "path", path)
	w.DisplayCreated(ctx, path)

	return nil
}
