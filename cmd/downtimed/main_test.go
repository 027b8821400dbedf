package main

import (
	"context"
	"errors"
	"testing"

	"downtimed/internal/shared/validation"
)

func TestRun_MissingConfigFails(t *testing.T) {
	t.Setenv("DOWNTIMED_DATA_DIR", "")
	t.Setenv("DOWNTIMED_HEARTBEAT_INTERVAL", "")

	err := newApp().RunContext(context.Background(), []string{"downtimed", "run"})
	if err == nil {
		t.Fatal("expected error without data dir and interval")
	}
	if !errors.Is(err, &validation.ValidationError{}) {
		t.Errorf("expected a validation error, got: %v", err)
	}
}

func TestRun_MissingDataDirFailsFast(t *testing.T) {
	t.Setenv("DOWNTIMED_DATA_DIR", "/definitely/not/a/real/dir")
	t.Setenv("DOWNTIMED_HEARTBEAT_INTERVAL", "30")

	err := newApp().RunContext(context.Background(), []string{"downtimed", "run"})
	if err == nil {
		t.Fatal("expected error for missing data directory")
	}
}

func TestReport_EmptyDataDir(t *testing.T) {
	t.Setenv("DOWNTIMED_DATA_DIR", t.TempDir())
	t.Setenv("DOWNTIMED_HEARTBEAT_INTERVAL", "")

	err := newApp().RunContext(context.Background(), []string{"downtimed", "report"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
