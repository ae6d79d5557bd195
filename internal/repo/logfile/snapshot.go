package logfile

import (
	"bufio"
	"context"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/egz13/logprobe/internal/repo/repoerrs"
	errorsUtils "github.com/egz13/logprobe/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// maxLineBytes bounds a single scanned line; logback lines beyond this are
// truncated rather than failing the whole read.
const maxLineBytes = 1 << 20

type SnapshotRepo struct{}

func NewSnapshotRepo() *SnapshotRepo {
	return &SnapshotRepo{}
}

// ReadTail streams the file line by line through a ring buffer of maxLines
// entries, so the file is never fully buffered. When the file holds more
// lines than maxLines only the most recent ones are returned.
func (r *SnapshotRepo) ReadTail(ctx context.Context, path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, repoerrs.ErrMaxLines
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repoerrs.ErrNotFound
		}
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	next, total := 0, 0
	lossy := false

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := scanner.Text()
		if !utf8.ValidString(line) {
			line = strings.ToValidUTF8(line, string(utf8.RuneError))
			lossy = true
		}

		ring[next] = line
		next = (next + 1) % maxLines
		total++
	}
	if err := scanner.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if lossy {
		// Recovered per the decode policy: keep scanning, surface nothing.
		log.WithField("path", path).
			Warnf("undecodable bytes replaced: %v", repoerrs.ErrDecode)
	}

	if total <= maxLines {
		return ring[:total], nil
	}

	tail := make([]string, 0, maxLines)
	tail = append(tail, ring[next:]...)
	tail = append(tail, ring[:next]...)
	return tail, nil
}
