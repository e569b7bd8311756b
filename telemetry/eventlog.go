package telemetry

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// EventLog writes events to a text file, one rendered event per line group.
type EventLog struct {
	file *os.File
	w    *bufio.Writer
	err  error // first write error, reported by Close
}

// OpenEventLog creates (or truncates) the event log at path.
func OpenEventLog(path string) (*EventLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating event log: %w", err)
	}
	return &EventLog{file: f, w: bufio.NewWriter(f)}, nil
}

// NewEventLog writes events to w. Close flushes but does not close w.
func NewEventLog(w io.Writer) *EventLog {
	return &EventLog{w: bufio.NewWriter(w)}
}

// Record writes e followed by a newline.
func (l *EventLog) Record(e Event) {
	if l == nil || l.err != nil {
		return
	}
	if _, err := fmt.Fprintln(l.w, e.String()); err != nil {
		l.err = fmt.Errorf("writing event log: %w", err)
	}
}

// Flush writes buffered events.
func (l *EventLog) Flush() error {
	if l == nil {
		return nil
	}
	if l.err != nil {
		return l.err
	}
	if err := l.w.Flush(); err != nil {
		l.err = fmt.Errorf("flushing event log: %w", err)
	}
	return l.err
}

// Close flushes and closes the log file.
func (l *EventLog) Close() error {
	if l == nil {
		return nil
	}
	err := l.Flush()
	if l.file != nil {
		if cerr := l.file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
