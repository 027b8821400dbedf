package infrastructure

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"downtimed/internal/monitor/domain"
)

// HistoryFileName is the sqlite database created inside the data directory.
const HistoryFileName = "history.db"

// HistoryRepository implements the history mirror using SQLite. Reads and
// writes go through separate handles so the single write connection never
// starves queries.
type HistoryRepository struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

// NewHistoryRepository creates a new SQLite history repository.
func NewHistoryRepository(readDB *sql.DB, writeDB *sql.DB) *HistoryRepository {
	return &HistoryRepository{
		readDB:  readDB,
		writeDB: writeDB,
	}
}

// RecordBeat inserts one heartbeat timestamp.
func (r *HistoryRepository) RecordBeat(ctx context.Context, ts time.Time) error {
	_, err := r.writeDB.ExecContext(ctx, `insert into beats (ts) values (?1)`, ts)
	if err != nil {
		return fmt.Errorf("inserting beat: %w", err)
	}
	return nil
}

// RecordOutage inserts one downtime interval. Started is stored as NULL for
// the no-prior-record case.
func (r *HistoryRepository) RecordOutage(ctx context.Context, outage domain.Outage) error {
	var started sql.NullTime
	if outage.Started != nil {
		started.Time = *outage.Started
		started.Valid = true
	}

	_, err := r.writeDB.ExecContext(ctx,
		`insert into outages (started_ts, ended_ts) values (?1, ?2)`,
		started, outage.Ended)
	if err != nil {
		return fmt.Errorf("inserting outage: %w", err)
	}
	return nil
}

// LastBeat returns the most recent heartbeat timestamp, or ErrNoEntries when
// none have been recorded.
func (r *HistoryRepository) LastBeat(ctx context.Context) (time.Time, error) {
	var ts time.Time
	err := r.readDB.QueryRowContext(ctx,
		`select ts from beats order by ts desc limit 1`).Scan(&ts)
	if err == sql.ErrNoRows {
		return time.Time{}, domain.ErrNoEntries
	} else if err != nil {
		return time.Time{}, fmt.Errorf("querying last beat: %w", err)
	}
	return ts, nil
}

// ListOutages queries downtime intervals with optional filters, newest
// first.
func (r *HistoryRepository) ListOutages(ctx context.Context, filters domain.OutageFilters) ([]domain.Outage, error) {
	limit := int64(100)
	if filters.Limit > 0 {
		limit = int64(filters.Limit)
	}
	offset := int64(filters.Offset)

	var from sql.NullTime
	if filters.From != nil {
		from.Time = *filters.From
		from.Valid = true
	}

	var to sql.NullTime
	if filters.To != nil {
		to.Time = *filters.To
		to.Valid = true
	}

	query := `select started_ts, ended_ts
from outages
where (ended_ts >= ?1 or ?1 is null)
  and (ended_ts <= ?2 or ?2 is null)
order by ended_ts desc
limit ?3 offset ?4`

	rows, err := r.readDB.QueryContext(ctx, query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying outages: %w", err)
	}
	defer rows.Close()

	var outages []domain.Outage
	for rows.Next() {
		var started sql.NullTime
		var ended time.Time
		if err := rows.Scan(&started, &ended); err != nil {
			return nil, fmt.Errorf("scanning outage: %w", err)
		}

		outage := domain.Outage{Ended: ended}
		if started.Valid {
			ts := started.Time
			outage.Started = &ts
		}
		outages = append(outages, outage)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return outages, nil
}
