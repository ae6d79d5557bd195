package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/egz13/logprobe/internal/domain"
)

const (
	DefaultContextLines = 2

	// minRelevantLen filters out noise lines: blanks and fragments shorter
	// than this never count as matches.
	minRelevantLen = 10
)

// SearchResult carries the true match count alongside the possibly capped
// match list; the two may differ and both are surfaced.
type SearchResult struct {
	Total   int
	Matches []domain.SearchMatch
}

// Searcher performs literal keyword search over a line snapshot with a fixed
// context window around every hit.
type Searcher struct {
	contextLines  int
	caseSensitive bool
}

func NewSearcher(contextLines int, caseSensitive bool) *Searcher {
	if contextLines < 0 {
		contextLines = DefaultContextLines
	}
	return &Searcher{contextLines: contextLines, caseSensitive: caseSensitive}
}

// Search scans lines in order and emits a match per relevant line containing
// the keyword. maxResults caps the returned list only; Total keeps counting.
// maxResults <= 0 means unlimited.
func (s *Searcher) Search(lines []string, keyword string, maxResults int) SearchResult {
	needle := keyword
	if !s.caseSensitive {
		needle = strings.ToLower(keyword)
	}

	var result SearchResult
	for i, line := range lines {
		if utf8.RuneCountInString(strings.TrimSpace(line)) < minRelevantLen {
			continue
		}

		haystack := line
		if !s.caseSensitive {
			haystack = strings.ToLower(line)
		}
		if !strings.Contains(haystack, needle) {
			continue
		}

		result.Total++
		if maxResults > 0 && len(result.Matches) >= maxResults {
			continue
		}

		result.Matches = append(result.Matches, domain.SearchMatch{
			Line:          line,
			LineNum:       i + 1,
			ContextBefore: window(lines, i-s.contextLines, i),
			ContextAfter:  window(lines, i+1, i+1+s.contextLines),
		})
	}

	return result
}

func window(lines []string, from, to int) []string {
	if from < 0 {
		from = 0
	}
	if to > len(lines) {
		to = len(lines)
	}
	if from >= to {
		return nil
	}
	out := make([]string, to-from)
	copy(out, lines[from:to])
	return out
}
