package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"downtimed/internal/infrastructure/logger"
	"downtimed/internal/monitor/domain"
)

// Service drives the downtime monitor: one downtime record at startup, then
// heartbeats until the process is killed.
type Service struct {
	logger    *logger.Logger
	journal   domain.Journal
	history   domain.History
	bootClock domain.BootClock

	interval time.Duration

	// Overridable for tests
	now func() time.Time
}

// NewService creates a monitor service. history and bootClock may be nil;
// the journal is mandatory.
func NewService(logger *logger.Logger, journal domain.Journal, history domain.History, bootClock domain.BootClock, interval time.Duration) *Service {
	return &Service{
		logger:    logger,
		journal:   journal,
		history:   history,
		bootClock: bootClock,
		interval:  interval,
		now:       time.Now,
	}
}

// RecordDowntime reads the last journal entry and appends the downtime
// record for this boot. The previous and current timestamps are recorded
// verbatim; no ordering check, since the clock may legitimately have gone
// backwards while network time sync was still pending.
func (s *Service) RecordDowntime(ctx context.Context) error {
	now := s.now()

	last, err := s.journal.Last(ctx)

	var entry domain.Entry
	var outage domain.Outage
	switch {
	case errors.Is(err, domain.ErrNoEntries):
		entry = domain.NewNoPrior(now)
		outage = domain.Outage{Ended: now}
		s.logger.Info("No prior record found", "ts", now.Format(domain.TimestampLayout))
	case err != nil:
		return fmt.Errorf("failed to read last journal entry: %w", err)
	default:
		entry = domain.NewDowntime(last.Timestamp, now)
		started := last.Timestamp
		outage = domain.Outage{Started: &started, Ended: now}
		s.logger.Info("Recording downtime",
			"from", last.Timestamp.Format(domain.TimestampLayout),
			"to", now.Format(domain.TimestampLayout),
		)
	}

	if err := s.journal.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to append downtime record: %w", err)
	}

	s.recordOutage(ctx, outage)
	return nil
}

// Run appends one heartbeat per interval until ctx is cancelled. It blocks
// in the calling goroutine; there is no other work to interleave. A journal
// write failure is fatal and propagates out.
//
// The wait is re-armed only after each append. A ticker's absolute schedule
// can deliver a late tick followed by an on-time one, producing journal
// lines closer together than the interval; the timer keeps the spacing
// floor at the cost of slow drift, which is fine for a liveness log.
func (s *Service) Run(ctx context.Context) error {
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	s.logger.Info("Heartbeat loop started", "interval", s.interval)

	for {
		select {
		case <-timer.C:
			now := s.now()
			if err := s.journal.Append(ctx, domain.NewHeartbeat(now)); err != nil {
				// Cancellation racing a pending beat is a clean shutdown
				if errors.Is(err, context.Canceled) {
					s.logger.Info("Heartbeat loop stopped")
					return nil
				}
				return fmt.Errorf("failed to append heartbeat: %w", err)
			}
			s.recordBeat(ctx, now)
			s.logger.Debug("Heartbeat", "ts", now.Format(domain.TimestampLayout))
			timer.Reset(s.interval)
		case <-ctx.Done():
			s.logger.Info("Heartbeat loop stopped")
			return nil
		}
	}
}

// recordBeat mirrors a heartbeat into the history store. The journal is the
// source of truth; history failures only warn.
func (s *Service) recordBeat(ctx context.Context, ts time.Time) {
	if s.history == nil {
		return
	}
	if err := s.history.RecordBeat(ctx, ts); err != nil {
		s.logger.Warn("Failed to record beat in history", "err", err)
	}
}

func (s *Service) recordOutage(ctx context.Context, outage domain.Outage) {
	if s.history == nil {
		return
	}
	if err := s.history.RecordOutage(ctx, outage); err != nil {
		s.logger.Warn("Failed to record outage in history", "err", err)
	}
}

// Status describes the monitor's current view of the machine.
type Status struct {
	LastHeartbeat *time.Time
	BootTime      *time.Time
	Interval      time.Duration
}

// Status reports the last journal timestamp, the boot time if the boot
// clock can supply one, and the configured interval.
func (s *Service) Status(ctx context.Context) (Status, error) {
	status := Status{Interval: s.interval}

	last, err := s.journal.Last(ctx)
	if err == nil {
		ts := last.Timestamp
		status.LastHeartbeat = &ts
	} else if !errors.Is(err, domain.ErrNoEntries) {
		return Status{}, fmt.Errorf("failed to read last journal entry: %w", err)
	}

	if s.bootClock != nil {
		boot, err := s.bootClock.BootTime(ctx)
		if err != nil {
			s.logger.Warn("Failed to read boot time", "err", err)
		} else {
			status.BootTime = &boot
		}
	}

	return status, nil
}

// ListOutages queries recorded downtime intervals from the history store.
func (s *Service) ListOutages(ctx context.Context, filters domain.OutageFilters) ([]domain.Outage, error) {
	if s.history == nil {
		return nil, errors.New("history store is disabled")
	}
	return s.history.ListOutages(ctx, filters)
}
