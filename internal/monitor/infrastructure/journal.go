package infrastructure

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"downtimed/internal/monitor/domain"
)

// JournalFileName is the journal file created inside the data directory.
const JournalFileName = "downtime.log"

// FileJournal is the append-only journal backed by a plain text file, one
// entry per line. The file is opened per call; there is exactly one writer
// per data directory.
type FileJournal struct {
	path string
}

// NewFileJournal validates the data directory and returns a journal rooted
// in it. A missing directory is a configuration problem the operator has to
// fix, so it fails here rather than at the first write.
func NewFileJournal(dataDir string) (*FileJournal, error) {
	info, err := os.Stat(dataDir)
	if err != nil {
		return nil, fmt.Errorf("data directory %s: %w", dataDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data directory %s: not a directory", dataDir)
	}

	return &FileJournal{path: filepath.Join(dataDir, JournalFileName)}, nil
}

// Path returns the journal file path.
func (j *FileJournal) Path() string {
	return j.path
}

// Append writes one entry as a new line at the end of the journal.
func (j *FileJournal) Append(ctx context.Context, entry domain.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening journal %s: %w", j.path, err)
	}

	_, werr := fmt.Fprintln(f, entry.String())
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("appending to journal %s: %w", j.path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("closing journal %s: %w", j.path, cerr)
	}

	return nil
}

// Last returns the final non-empty entry of the journal, or ErrNoEntries
// when the file is missing or holds nothing.
func (j *FileJournal) Last(ctx context.Context) (domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return domain.Entry{}, err
	}

	f, err := os.Open(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Entry{}, domain.ErrNoEntries
	} else if err != nil {
		return domain.Entry{}, fmt.Errorf("opening journal %s: %w", j.path, err)
	}
	defer f.Close()

	var last string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			last = line
		}
	}
	if err := scanner.Err(); err != nil {
		return domain.Entry{}, fmt.Errorf("reading journal %s: %w", j.path, err)
	}

	if last == "" {
		return domain.Entry{}, domain.ErrNoEntries
	}

	return domain.ParseEntry(last)
}
