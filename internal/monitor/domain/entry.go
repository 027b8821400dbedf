package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the journal timestamp format: ISO-8601 at second
// precision, local time. Boards without an RTC have no trustworthy zone to
// record, so none is written.
const TimestampLayout = "2006-01-02T15:04:05"

// NoPriorAnnotation marks a startup that found an empty or missing journal.
const NoPriorAnnotation = "no prior record"

// Entry is a single journal line: a timestamp plus an optional free-text
// annotation. Heartbeats carry no annotation.
type Entry struct {
	Timestamp  time.Time
	Annotation string
}

// NewHeartbeat creates a bare heartbeat entry.
func NewHeartbeat(ts time.Time) Entry {
	return Entry{Timestamp: ts}
}

// NewDowntime records the gap between the previous journal entry and now.
// The pair is preserved verbatim even when the clock went backwards and the
// interval reads end-before-start.
func NewDowntime(prev, now time.Time) Entry {
	return Entry{
		Timestamp: now,
		Annotation: fmt.Sprintf("down between %s and %s",
			prev.Format(TimestampLayout), now.Format(TimestampLayout)),
	}
}

// NewNoPrior records a startup with no journal history to measure against.
func NewNoPrior(now time.Time) Entry {
	return Entry{Timestamp: now, Annotation: NoPriorAnnotation}
}

// IsHeartbeat reports whether the entry is a plain heartbeat.
func (e Entry) IsHeartbeat() bool {
	return e.Annotation == ""
}

// String renders the entry as one journal line, without the trailing newline.
func (e Entry) String() string {
	ts := e.Timestamp.Format(TimestampLayout)
	if e.Annotation == "" {
		return ts
	}
	return ts + " " + e.Annotation
}

// ParseEntry parses a journal line. The first whitespace-delimited token is
// the timestamp; anything after it is the annotation, kept verbatim.
func ParseEntry(line string) (Entry, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Entry{}, fmt.Errorf("empty journal line")
	}

	token := line
	var annotation string
	if i := strings.IndexByte(line, ' '); i >= 0 {
		token = line[:i]
		annotation = strings.TrimSpace(line[i+1:])
	}

	ts, err := time.ParseInLocation(TimestampLayout, token, time.Local)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid journal timestamp %q: %w", token, err)
	}

	return Entry{Timestamp: ts, Annotation: annotation}, nil
}
