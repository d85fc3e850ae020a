package controller

import (
	"sort"
	"strings"
)

// span is a half-open byte range of a line.
type span struct {
	start, end int
}

// matchSpans collects every literal occurrence of words in line and merges
// overlapping or adjacent ranges. Spans are computed on the original line, so
// one word can never match inside the highlight of another.
func matchSpans(line string, words []string) []span {
	var spans []span

	for _, w := range words {
		if w == "" {
			continue
		}

		for off := 0; off <= len(line)-len(w); {
			i := strings.Index(line[off:], w)
			if i < 0 {
				break
			}

			start := off + i
			spans = append(spans, span{start: start, end: start + len(w)})
			off = start + len(w)
		}
	}

	if len(spans) == 0 {
		return nil
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start == spans[j].start {
			return spans[i].end > spans[j].end
		}

		return spans[i].start < spans[j].start
	})

	merged := []span{spans[0]}

	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.start <= last.end {
			if s.end > last.end {
				last.end = s.end
			}

			continue
		}

		merged = append(merged, s)
	}

	return merged
}

// highlight renders line with every span passed through mark.
func highlight(line string, words []string, mark func(string) string) string {
	spans := matchSpans(line, words)
	if len(spans) == 0 {
		return line
	}

	var b strings.Builder

	prev := 0
	for _, s := range spans {
		b.WriteString(line[prev:s.start])
		b.WriteString(mark(line[s.start:s.end]))
		prev = s.end
	}

	b.WriteString(line[prev:])

	return b.String()
}
