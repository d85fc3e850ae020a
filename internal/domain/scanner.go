package domain

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"badwords.dev/pkg/badwords/internal/adapter"
	m "badwords.dev/pkg/badwords/internal/model"
)

// maxLineSize bounds a single line; longer lines fail the file read.
const maxLineSize = 16 * 1024 * 1024

// Scanner reads staged files and reports the lines containing bad words.
type Scanner interface {
	// ScanFile returns one MatchLine per matching line of path, in file order.
	ScanFile(ctx context.Context, matcher *GroupMatcher, path m.Path) ([]m.MatchLine, error)
}

type scanner struct {
	fs adapter.RepoFSAdapter
}

// NewScanner creates a Scanner reading through fs.
func NewScanner(fs adapter.RepoFSAdapter) Scanner {
	return &scanner{fs: fs}
}

func (s *scanner) ScanFile(ctx context.Context, matcher *GroupMatcher, path m.Path) ([]m.MatchLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := s.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	defer func() { _ = f.Close() }()

	group := matcher.Group().Name

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	sc.Split(scanLines)

	var lines []m.MatchLine

	row := 0
	for sc.Scan() {
		source := sc.Text()
		if found := matcher.Match(source); len(found) > 0 {
			lines = append(lines, m.MatchLine{
				Group:   group,
				Row:     row,
				Matches: found,
				Source:  source,
			})
		}

		row++
	}

	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("read %s: line %d is longer than %d MiB, file not scanned: %w", path, row, maxLineSize>>20, err)
		}

		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	slog.Debug("Scanned file", "group", group, "path", path, "lines", row, "matches", len(lines))

	return lines, nil
}

// scanLines is a bufio.SplitFunc that ends lines at "\n", "\r\n" or a lone "\r".
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}

		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}

			return i + 1, data[:i], nil
		}

		if atEOF {
			return i + 1, data[:i], nil
		}

		// Need the next byte to tell "\r" from "\r\n".
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}
