package pipeline

import (
	"fmt"
	"os"

	"github.com/moodlens/moodlens/internal/report"
)

// FrameLog is the append-only UTF-8 text log, one line per detected face on
// a processed frame. The file is truncated at run start; each entry is
// flushed immediately so partial logs survive a crash.
type FrameLog struct {
	f *os.File
}

// NewFrameLog opens (truncating) the log file and writes the run header.
func NewFrameLog(path string) (*FrameLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create frame log: %w", err)
	}
	if _, err := f.WriteString("Analiz Başladı\n\n"); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write log header: %w", err)
	}
	return &FrameLog{f: f}, nil
}

// Append writes one entry and flushes it to disk.
func (l *FrameLog) Append(e report.Entry) error {
	if _, err := fmt.Fprintf(l.f, "Frame #%d | Person: %s | Emotion: %s\n",
		e.Frame, e.Identity, e.Emotion); err != nil {
		return fmt.Errorf("failed to append log entry: %w", err)
	}
	return l.f.Sync()
}

// Close releases the log file handle.
func (l *FrameLog) Close() error {
	return l.f.Close()
}
