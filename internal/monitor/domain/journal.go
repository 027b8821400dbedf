package domain

import (
	"context"
	"errors"
)

// ErrNoEntries is returned by Last when the journal is empty or does not
// exist yet.
var ErrNoEntries = errors.New("journal has no entries")

// Journal is the append-only record of heartbeats and downtime entries.
// Implementations never rewrite or reorder existing entries.
type Journal interface {
	Append(ctx context.Context, entry Entry) error
	Last(ctx context.Context) (Entry, error)
}
