// Package changelog keeps an append-only, human-readable audit trail of
// inventory mutations. The log is a plain text file with one timestamped
// line per change; it is only ever read back as raw lines, most-recent-N.
package changelog

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/models"
)

// Action identifies the kind of mutation a log line records.
type Action string

const (
	ActionAdded    Action = "ADDED"
	ActionModified Action = "MODIFIED"
	ActionDeleted  Action = "DELETED"
)

const timestampLayout = "2006-01-02 15:04:05"

// DefaultRecentWindow bounds how many trailing lines Recent keeps in memory.
const DefaultRecentWindow = 100

// FileChangeLog appends change lines to a text file. The file handle is
// acquired and released within each call.
type FileChangeLog struct {
	path   string
	window int
}

// NewFileChangeLog creates a change log over the given path. window
// bounds the in-memory tail kept by Recent; zero or negative falls back
// to DefaultRecentWindow.
func NewFileChangeLog(path string, window int) *FileChangeLog {
	if window <= 0 {
		window = DefaultRecentWindow
	}
	return &FileChangeLog{path: path, window: window}
}

// Append writes one timestamped line for the change. ADDED lines carry
// the after snapshot, DELETED lines the before snapshot, and MODIFIED
// lines the before -> after quantity and price deltas.
func (l *FileChangeLog) Append(action Action, before, after *models.Product) error {
	line := formatLine(time.Now(), action, before, after)
	if line == "" {
		return nil
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open change log %s: %w", l.path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("write change log %s: %w", l.path, err)
	}
	return nil
}

// Recent returns up to the last n log lines in chronological order, or
// fewer if the log is shorter. A missing log file yields no lines. The
// read keeps a sliding window of the trailing lines, so memory stays
// bounded however long the log grows.
func (l *FileChangeLog) Recent(n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open change log %s: %w", l.path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
		if len(lines) > l.window {
			lines = lines[1:]
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read change log %s: %w", l.path, err)
	}

	if n < len(lines) {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

// Truncate empties the log file, creating it if necessary.
func (l *FileChangeLog) Truncate() error {
	f, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("truncate change log %s: %w", l.path, err)
	}
	return f.Close()
}

func formatLine(ts time.Time, action Action, before, after *models.Product) string {
	stamp := ts.Format(timestampLayout)
	switch {
	case action == ActionAdded && after != nil:
		return fmt.Sprintf("[%s] %s: %s (ID: %s, Qty: %d, Price: %s)",
			stamp, action, after.Name, after.ID, after.Quantity, after.Price.StringFixed(2))
	case action == ActionDeleted && before != nil:
		return fmt.Sprintf("[%s] %s: %s (ID: %s, Qty: %d, Price: %s)",
			stamp, action, before.Name, before.ID, before.Quantity, before.Price.StringFixed(2))
	case action == ActionModified && before != nil && after != nil:
		return fmt.Sprintf("[%s] %s: %s (ID: %s, Qty: %d -> %d, Price: %s -> %s)",
			stamp, action, after.Name, after.ID,
			before.Quantity, after.Quantity,
			before.Price.StringFixed(2), after.Price.StringFixed(2))
	}
	return ""
}
