package domain

import "time"

type Level string

const (
	LevelTrace Level = "TRACE"
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// LogEntry is one parsed header line of a logback-style log together with the
// raw block of lines (header plus continuations) it opened.
type LogEntry struct {
	Timestamp time.Time
	Level     Level
	Logger    string
	Thread    string
	Message   string
	Block     []string
	// LineNum is the 1-based index of the header line within the snapshot.
	LineNum int
}
