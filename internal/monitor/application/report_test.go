package application

import (
	"context"
	"strings"
	"testing"
	"time"

	"downtimed/internal/infrastructure/logger"
	"downtimed/internal/monitor/domain"
)

func TestWriteReport(t *testing.T) {
	history := &mockHistory{}
	started := mustTime(t, "2021-01-01T10:00:00")
	history.outages = []domain.Outage{
		{Started: &started, Ended: mustTime(t, "2021-01-01T10:10:00")},
		{Ended: mustTime(t, "2021-01-01T09:00:00")},
	}

	svc := NewService(logger.DefaultLogger(), &mockJournal{}, history, nil, time.Second)

	var b strings.Builder
	if err := svc.WriteReport(context.Background(), &b, domain.OutageFilters{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "2021-01-01T10:10:00: down between 2021-01-01T10:00:00 and 2021-01-01T10:10:00\n" +
		"2021-01-01T09:00:00: no prior record\n"
	if b.String() != want {
		t.Errorf("expected report:\n%q\ngot:\n%q", want, b.String())
	}
}

func TestWriteReport_Empty(t *testing.T) {
	svc := NewService(logger.DefaultLogger(), &mockJournal{}, &mockHistory{}, nil, time.Second)

	var b strings.Builder
	if err := svc.WriteReport(context.Background(), &b, domain.OutageFilters{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(b.String(), "no outages recorded") {
		t.Errorf("expected empty-report marker, got %q", b.String())
	}
}
