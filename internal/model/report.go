package model

// MatchLine is a single line that contains at least one bad word.
type MatchLine struct {
	Group   string
	Row     int      // 0-based line index
	Matches []string // word patterns found on the line, in configuration order
	Source  string
}

// FileResult holds the matching lines of one file. It is only created when
// at least one line matched.
type FileResult struct {
	File  Path
	Lines []MatchLine
}

// GroupResult holds every FileResult produced for a group.
type GroupResult struct {
	Group Group
	Files []FileResult
}

// Found reports whether the group matched anything.
func (r GroupResult) Found() bool {
	return len(r.Files) > 0
}

// Verdict is the outcome of a check run.
type Verdict int

const (
	// Pass indicates no bad words were found.
	Pass Verdict = iota
	// Fail indicates at least one bad word was found.
	Fail
)

// Merge combines two verdicts; Fail wins.
func (v Verdict) Merge(other Verdict) Verdict {
	if v == Fail || other == Fail {
		return Fail
	}

	return Pass
}

func (v Verdict) String() string {
	switch v {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	default:
		return "unknown"
	}
}
