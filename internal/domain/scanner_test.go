package domain

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badwords.dev/pkg/badwords/internal/adapter"
	m "badwords.dev/pkg/badwords/internal/model"
)

func secretsMatcher(t *testing.T) *GroupMatcher {
	t.Helper()

	matcher, err := NewGroupMatcher(m.Group{Name: "secrets", Words: []string{"password", "token"}})
	require.NoError(t, err)

	return matcher
}

func TestScanner_ScanFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	writeFile(t, path, "first line\nmy password=123\n\ntoken and password\nclean\n")

	lines, err := NewScanner(adapter.NewLocalRepoFSAdapter()).ScanFile(context.Background(), secretsMatcher(t), m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, []m.MatchLine{
		{Group: "secrets", Row: 1, Matches: []string{"password"}, Source: "my password=123"},
		{Group: "secrets", Row: 3, Matches: []string{"password", "token"}, Source: "token and password"},
	}, lines)
}

func TestScanner_ScanFile_LineEndings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		rows    []int
	}{
		{"lf", "x\npassword\n", []int{1}},
		{"crlf", "x\r\npassword\r\n", []int{1}},
		{"lone cr", "x\rpassword\r", []int{1}},
		{"mixed", "x\r\ny\rz\npassword", []int{3}},
		{"no trailing newline", "password", []int{0}},
		{"blank lines count", "\n\n\npassword\n", []int{3}},
	}

	scanner := NewScanner(adapter.NewLocalRepoFSAdapter())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "f.txt")
			writeFile(t, path, tt.content)

			lines, err := scanner.ScanFile(context.Background(), secretsMatcher(t), m.Path(path))
			require.NoError(t, err)

			rows := make([]int, 0, len(lines))
			for _, l := range lines {
				rows = append(rows, l.Row)
				assert.Equal(t, "password", l.Source)
			}

			assert.Equal(t, tt.rows, rows)
		})
	}
}

func TestScanner_ScanFile_NoMatches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clean.txt")
	writeFile(t, path, "nothing\nhere\n")

	lines, err := NewScanner(adapter.NewLocalRepoFSAdapter()).ScanFile(context.Background(), secretsMatcher(t), m.Path(path))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestScanner_ScanFile_Missing(t *testing.T) {
	_, err := NewScanner(adapter.NewLocalRepoFSAdapter()).
		ScanFile(context.Background(), secretsMatcher(t), m.Path(filepath.Join(t.TempDir(), "gone.txt")))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScanner_ScanFile_LongLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.txt")
	writeFile(t, path, strings.Repeat("a", maxLineSize+1))

	_, err := NewScanner(adapter.NewLocalRepoFSAdapter()).ScanFile(context.Background(), secretsMatcher(t), m.Path(path))
	require.ErrorIs(t, err, bufio.ErrTooLong)
	assert.Contains(t, err.Error(), "line 0 is longer than 16 MiB, file not scanned")
}

func TestScanner_ScanFile_Canceled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	writeFile(t, path, "password\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScanner(adapter.NewLocalRepoFSAdapter()).ScanFile(ctx, secretsMatcher(t), m.Path(path))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScanLines(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader("a\r\nb\rc\n\nd"))
	sc.Split(scanLines)

	var got []string
	for sc.Scan() {
		got = append(got, sc.Text())
	}

	require.NoError(t, sc.Err())
	assert.Equal(t, []string{"a", "b", "c", "", "d"}, got)
}
