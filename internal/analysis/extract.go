package analysis

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/egz13/logprobe/internal/domain"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultMaxBlockLines = 200
	DefaultMaxCauseDepth = 10
)

var (
	// headerRe recognizes a logback-style header line: timestamp, level, rest.
	headerRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}:\d{2}(?:[.,]\d{1,9})?)\s+(TRACE|DEBUG|INFO|WARN|ERROR)\s+(.*)$`)

	// restRe splits the post-level remainder into optional pid, optional
	// thread, logger name and message. Lines that do not fit keep the whole
	// remainder as the message.
	restRe = regexp.MustCompile(`^(?:\d+\s+)?(?:---\s+)?(?:\[([^\]]+)\]\s+)?([\w$.]+)\s*[-:]\s?(.*)$`)

	// signatureRe matches a generic fully-qualified exception signature,
	// "package.Sub.ClassName[: message]". It is deliberately not restricted
	// to a catalog of known exception class names.
	signatureRe = regexp.MustCompile(`^((?:[\w$]+\.)+[A-Z][\w$]*)(?::\s*(.*))?$`)

	// frameRe matches "at FQCN.method(File.java:123)" including frames
	// without a line number such as (Unknown Source) and (Native Method).
	frameRe = regexp.MustCompile(`^\s*at\s+([\w$.]+)\.([\w$<>]+)\(([^():]*)(?::(\d+))?\)`)

	elidedRe = regexp.MustCompile(`^\s*\.\.\.\s+\d+\s+more\s*$`)
)

var headerTimeFormats = []string{
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05,000",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
}

const causedByMarker = "Caused by:"

// Extraction pairs a WARN/ERROR log entry with the exception record parsed
// from its block.
type Extraction struct {
	Entry  *domain.LogEntry
	Record *domain.ExceptionRecord
}

// Extractor segments raw log lines into exception blocks and materializes
// ExceptionRecord chains out of them. An Extractor holds no per-call state
// and is safe for concurrent use.
type Extractor struct {
	maxBlockLines int
	maxCauseDepth int
}

func NewExtractor(maxBlockLines, maxCauseDepth int) *Extractor {
	if maxBlockLines <= 0 {
		maxBlockLines = DefaultMaxBlockLines
	}
	if maxCauseDepth <= 0 {
		maxCauseDepth = DefaultMaxCauseDepth
	}
	return &Extractor{maxBlockLines: maxBlockLines, maxCauseDepth: maxCauseDepth}
}

// Extract scans lines in order. A WARN or ERROR header opens a candidate
// block; continuation lines are appended until the next header, a run of
// blank lines, or the block length guard. Blocks without a recognizable
// exception signature yield nothing. A block truncated at end of input still
// yields the partial record parsed so far.
func (e *Extractor) Extract(lines []string) []Extraction {
	var out []Extraction

	i := 0
	for i < len(lines) {
		entry := parseHeader(lines[i], i+1)
		if entry == nil || (entry.Level != domain.LevelWarn && entry.Level != domain.LevelError) {
			i++
			continue
		}

		block := []string{lines[i]}
		blanks := 0
		j := i + 1
		for j < len(lines) && len(block) < e.maxBlockLines {
			if headerRe.MatchString(lines[j]) {
				break
			}
			if strings.TrimSpace(lines[j]) == "" {
				blanks++
				if blanks >= 2 {
					break
				}
				j++
				continue
			}
			blanks = 0
			block = append(block, lines[j])
			j++
		}

		entry.Block = block
		if rec := e.parseRecord(entry, block); rec != nil {
			out = append(out, Extraction{Entry: entry, Record: rec})
		}
		i = j
	}

	return out
}

// parseRecord walks a closed block: the first signature opens the top-level
// record, "Caused by:" signatures open nested records, and frame lines attach
// to whichever record is currently open. The signature may sit either in the
// header line's own message or on a continuation line of its own. The cause
// chain is bounded; a deeper chain is truncated and kept as parsed so far.
func (e *Extractor) parseRecord(entry *domain.LogEntry, block []string) *domain.ExceptionRecord {
	var top, cur *domain.ExceptionRecord

	if m := signatureRe.FindStringSubmatch(strings.TrimSpace(entry.Message)); m != nil {
		top = &domain.ExceptionRecord{Type: m[1], Message: m[2]}
		cur = top
	}

	for _, line := range block[1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || elidedRe.MatchString(line) {
			continue
		}

		if m := frameRe.FindStringSubmatch(line); m != nil {
			if cur == nil {
				continue
			}
			cur.Frames = append(cur.Frames, parseFrame(m))
			continue
		}

		causedBy := strings.HasPrefix(trimmed, causedByMarker)
		sig := trimmed
		if causedBy {
			sig = strings.TrimSpace(strings.TrimPrefix(trimmed, causedByMarker))
		}

		m := signatureRe.FindStringSubmatch(sig)
		if m == nil {
			continue
		}

		switch {
		case cur == nil:
			if causedBy {
				// Cause marker with no enclosing record: malformed, skip.
				continue
			}
			top = &domain.ExceptionRecord{Type: m[1], Message: m[2]}
			cur = top
		case causedBy:
			if top.Depth() >= e.maxCauseDepth {
				log.WithFields(log.Fields{
					"type":  top.Type,
					"depth": top.Depth(),
				}).Warn("cause chain exceeds depth guard, truncating")
				return top
			}
			rec := &domain.ExceptionRecord{Type: m[1], Message: m[2]}
			cur.Cause = rec
			cur = rec
		default:
			// A second top-level signature inside one block; the first wins.
		}
	}

	return top
}

func parseFrame(m []string) domain.StackFrame {
	frame := domain.StackFrame{
		DeclaringType: m[1],
		Method:        m[2],
		SourceFile:    m[3],
	}
	if m[4] != "" {
		frame.Line, _ = strconv.Atoi(m[4])
	}
	return frame
}

// parseHeader parses a header line into a LogEntry, or returns nil when the
// line is not a header.
func parseHeader(line string, lineNum int) *domain.LogEntry {
	m := headerRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	entry := &domain.LogEntry{
		Level:   domain.Level(m[2]),
		Message: m[3],
		LineNum: lineNum,
	}

	for _, format := range headerTimeFormats {
		if ts, err := time.Parse(format, m[1]); err == nil {
			entry.Timestamp = ts
			break
		}
	}

	if rm := restRe.FindStringSubmatch(m[3]); rm != nil {
		entry.Thread = rm[1]
		entry.Logger = rm[2]
		entry.Message = rm[3]
	}

	return entry
}
