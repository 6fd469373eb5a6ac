package log

import (
	"errors"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileLogger appends flow events to a trace file.
// It is safe for concurrent use from multiple goroutines.
type FileLogger struct {
	file    *os.File
	encoder *cbor.Encoder
	mu      sync.Mutex
	closed  bool
	written int
	err     error
}

// NewFileLogger opens path for appending, creating it with mode 0644.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &FileLogger{
		file:    f,
		encoder: encMode.NewEncoder(f),
	}, nil
}

// Log appends the event. Failures do not reach the caller; the first one
// is kept for Err and Close.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	if err := l.encoder.Encode(event); err != nil {
		if l.err == nil {
			l.err = err
		}
		return
	}
	l.written++
}

// Written returns how many events reached the file.
func (l *FileLogger) Written() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.written
}

// Err returns the first write failure, if any.
func (l *FileLogger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Close closes the trace file and reports the first write failure along
// with any close error. Later calls return nil, and later events are
// dropped.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	return errors.Join(l.err, l.file.Close())
}

var _ Logger = (*FileLogger)(nil)
