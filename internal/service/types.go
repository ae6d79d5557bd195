package service

import (
	"github.com/egz13/logprobe/internal/domain"
	"github.com/egz13/logprobe/internal/resolver"
)

type AnalyzeParams struct {
	Kind     resolver.Kind
	MaxLines int
	// LogPath overrides path resolution for this call when non-empty.
	LogPath string
}

type DefectReport struct {
	Type          domain.DefectType
	Severity      domain.Severity
	ExceptionType string
	Message       string
	StackFrames   []domain.FilteredFrame
	SourceExcerpt string
	LineNum       int
}

type AnalyzeReport struct {
	// TotalDefects is the true count; Defects may be capped below it.
	TotalDefects int
	Defects      []DefectReport
	LogPath      string
}

type SearchParams struct {
	Keyword    string
	Kind       resolver.Kind
	MaxResults int
	LogPath    string
}

type SearchReport struct {
	// TotalMatches is the true count; Matches may be capped below it.
	TotalMatches int
	Matches      []domain.SearchMatch
	LogPath      string
}

type ResolvedField struct {
	Value  string
	Source resolver.Source
}

// ConfigReport is the read-only echo of the resolver's output.
type ConfigReport struct {
	AppName    ResolvedField
	AppPackage ResolvedField
	ErrorPath  ResolvedField
	WarnPath   ResolvedField
	AllPath    ResolvedField
}

// DefectInput is the defect-shaped payload accepted by SuggestFix. Type may
// be empty, in which case the exception type and message are classified
// fresh.
type DefectInput struct {
	Type          domain.DefectType
	ExceptionType string
	Message       string
	Level         domain.Level
	Frames        []domain.StackFrame
}
