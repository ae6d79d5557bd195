package domain

type DefectType string

const (
	DefectNullReference      DefectType = "NullReference"
	DefectBounds             DefectType = "Bounds"
	DefectResourceExhaustion DefectType = "ResourceExhaustion"
	DefectDataAccess         DefectType = "DataAccess"
	DefectSerialization      DefectType = "Serialization"
	DefectConcurrency        DefectType = "Concurrency"
	DefectConfiguration      DefectType = "Configuration"
	DefectTimeout            DefectType = "Timeout"
	DefectUnknown            DefectType = "Unknown"
)

type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Rank orders severities for sorting, critical first.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	default:
		return 3
	}
}

type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// Defect is a classified finding derived from one exception occurrence.
type Defect struct {
	Type      DefectType
	Severity  Severity
	Exception *ExceptionRecord
	Entry     *LogEntry
}

// FixSuggestion is pattern-level guidance for a defect. No source code is
// available here, so the suggested fix is a template, never a line edit.
type FixSuggestion struct {
	LikelyCause  string
	CodeLocation *StackFrame
	SuggestedFix string
	Confidence   Confidence
}

// SearchMatch is one keyword hit with its surrounding context window.
type SearchMatch struct {
	Line          string
	LineNum       int
	ContextBefore []string
	ContextAfter  []string
}
