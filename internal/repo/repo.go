package repo

import (
	"context"

	"github.com/egz13/logprobe/internal/repo/logfile"
)

// Snapshot gives bounded, read-only access to a log file. Each call opens its
// own handle over the current state of the file, so concurrent calls never
// share anything mutable.
type Snapshot interface {
	// ReadTail returns at most maxLines lines from the end of the file.
	ReadTail(ctx context.Context, path string, maxLines int) ([]string, error)
}

type Repositories struct {
	Snapshot
}

func NewRepositories() *Repositories {
	return &Repositories{
		Snapshot: logfile.NewSnapshotRepo(),
	}
}
