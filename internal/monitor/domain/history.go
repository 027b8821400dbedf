package domain

import (
	"context"
	"time"
)

// Outage is one detected downtime interval. Started is nil when the journal
// had no prior record to measure against.
type Outage struct {
	Started *time.Time
	Ended   time.Time
}

// OutageFilters narrows ListOutages results. Nil time bounds match
// everything; Limit <= 0 means the repository default.
type OutageFilters struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// History is the optional queryable mirror of the journal. The journal stays
// the source of truth; a history write failure must never stop the monitor.
type History interface {
	RecordBeat(ctx context.Context, ts time.Time) error
	RecordOutage(ctx context.Context, outage Outage) error
	LastBeat(ctx context.Context) (time.Time, error)
	ListOutages(ctx context.Context, filters OutageFilters) ([]Outage, error)
}

// BootClock reports when the machine came up. On boards without an RTC the
// value is only as good as the kernel clock behind it.
type BootClock interface {
	BootTime(ctx context.Context) (time.Time, error)
}
