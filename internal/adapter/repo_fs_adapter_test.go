package adapter

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "badwords.dev/pkg/badwords/internal/model"
)

func TestLocalRepoFSAdapter_LocateRepoRoot(t *testing.T) {
	adapter := NewLocalRepoFSAdapter()

	t.Run("finds root from nested directory", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
		nested := filepath.Join(root, "a", "b", "c")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		repo, err := adapter.LocateRepoRoot(m.Path(nested))
		require.NoError(t, err)
		assert.Equal(t, m.Path(root), repo.Root)
		assert.Equal(t, m.Path(filepath.Join(root, ".git")), repo.GitDir)
	})

	t.Run("finds root from the root itself", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))

		repo, err := adapter.LocateRepoRoot(m.Path(root))
		require.NoError(t, err)
		assert.Equal(t, m.Path(root), repo.Root)
	})

	t.Run("nearest ancestor wins", func(t *testing.T) {
		outer := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(outer, ".git"), 0o755))
		inner := filepath.Join(outer, "vendor", "sub")
		require.NoError(t, os.MkdirAll(filepath.Join(inner, ".git"), 0o755))

		repo, err := adapter.LocateRepoRoot(m.Path(filepath.Join(inner, "pkg")))
		require.NoError(t, err)
		assert.Equal(t, m.Path(inner), repo.Root)
	})

	t.Run("ignores .git file", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, ".git"), []byte("gitdir: elsewhere\n"), 0o600))

		_, err := adapter.LocateRepoRoot(m.Path(root))
		assert.ErrorIs(t, err, ErrRepoRootNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := adapter.LocateRepoRoot(m.Path(t.TempDir()))
		assert.ErrorIs(t, err, ErrRepoRootNotFound)
	})
}

func TestLocalRepoFSAdapter_Files(t *testing.T) {
	adapter := NewLocalRepoFSAdapter()
	dir := t.TempDir()
	path := m.Path(filepath.Join(dir, "hooks", "config", "pre-commit.json"))

	require.NoError(t, adapter.WriteFile(path, []byte("{}"), 0o644))

	data, err := adapter.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	rc, err := adapter.Open(path)
	require.NoError(t, err)

	streamed, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "{}", string(streamed))

	info, err := adapter.FileInfo(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	_, err = adapter.Open(m.Path(filepath.Join(dir, "missing")))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
