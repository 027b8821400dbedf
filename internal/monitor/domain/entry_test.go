package domain

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation(TimestampLayout, value, time.Local)
	if err != nil {
		t.Fatalf("failed to parse test timestamp %q: %v", value, err)
	}
	return ts
}

func TestEntryString(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "heartbeat",
			entry: NewHeartbeat(mustTime(t, "2021-01-01T10:00:00")),
			want:  "2021-01-01T10:00:00",
		},
		{
			name: "downtime",
			entry: NewDowntime(
				mustTime(t, "2021-01-01T10:00:00"),
				mustTime(t, "2021-01-01T10:05:30"),
			),
			want: "2021-01-01T10:05:30 down between 2021-01-01T10:00:00 and 2021-01-01T10:05:30",
		},
		{
			// The clock went backwards across the reboot; the pair is
			// recorded verbatim.
			name: "downtime with clock skew",
			entry: NewDowntime(
				mustTime(t, "2021-01-01T10:00:00"),
				mustTime(t, "2021-01-01T09:59:50"),
			),
			want: "2021-01-01T09:59:50 down between 2021-01-01T10:00:00 and 2021-01-01T09:59:50",
		},
		{
			name:  "no prior record",
			entry: NewNoPrior(mustTime(t, "2021-01-01T10:00:00")),
			want:  "2021-01-01T10:00:00 no prior record",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name           string
		line           string
		wantTimestamp  string
		wantAnnotation string
		expectError    bool
	}{
		{
			name:          "heartbeat line",
			line:          "2021-01-01T10:00:00",
			wantTimestamp: "2021-01-01T10:00:00",
		},
		{
			name:           "downtime line",
			line:           "2021-01-01T10:05:30 down between 2021-01-01T10:00:00 and 2021-01-01T10:05:30",
			wantTimestamp:  "2021-01-01T10:05:30",
			wantAnnotation: "down between 2021-01-01T10:00:00 and 2021-01-01T10:05:30",
		},
		{
			name:           "no prior record line",
			line:           "2021-01-01T10:00:00 no prior record",
			wantTimestamp:  "2021-01-01T10:00:00",
			wantAnnotation: "no prior record",
		},
		{
			name:          "surrounding whitespace",
			line:          "  2021-01-01T10:00:00  \n",
			wantTimestamp: "2021-01-01T10:00:00",
		},
		{
			name:        "empty line",
			line:        "",
			expectError: true,
		},
		{
			name:        "garbage timestamp",
			line:        "not-a-timestamp down between a and b",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := ParseEntry(tt.line)
			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error, got entry %+v", entry)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if want := mustTime(t, tt.wantTimestamp); !entry.Timestamp.Equal(want) {
				t.Errorf("expected timestamp %v, got %v", want, entry.Timestamp)
			}
			if entry.Annotation != tt.wantAnnotation {
				t.Errorf("expected annotation %q, got %q", tt.wantAnnotation, entry.Annotation)
			}
		})
	}
}

func TestParseEntryRoundTrip(t *testing.T) {
	original := NewDowntime(
		mustTime(t, "2021-01-01T10:00:00"),
		mustTime(t, "2021-01-01T10:05:30"),
	)

	parsed, err := ParseEntry(original.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !parsed.Timestamp.Equal(original.Timestamp) {
		t.Errorf("expected timestamp %v, got %v", original.Timestamp, parsed.Timestamp)
	}
	if parsed.Annotation != original.Annotation {
		t.Errorf("expected annotation %q, got %q", original.Annotation, parsed.Annotation)
	}
	if parsed.IsHeartbeat() {
		t.Error("downtime entry should not be a heartbeat")
	}
}

func TestIsHeartbeat(t *testing.T) {
	if !NewHeartbeat(time.Now()).IsHeartbeat() {
		t.Error("heartbeat entry should report IsHeartbeat")
	}
	if NewNoPrior(time.Now()).IsHeartbeat() {
		t.Error("no-prior entry should not report IsHeartbeat")
	}
}
