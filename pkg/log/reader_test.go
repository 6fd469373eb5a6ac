package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"
)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.flog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func readAll(t *testing.T, r *Reader) []Event {
	t.Helper()
	var read []Event
	for {
		event, err := r.Next()
		if err == io.EOF {
			return read
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, event)
	}
}

func testEvents(base time.Time) []Event {
	return []Event{
		{Timestamp: base, RegistryID: "reg-1", Category: CategoryValue, Object: ObjectRef{Type: 43000}},
		{Timestamp: base.Add(time.Second), RegistryID: "reg-1", Category: CategoryPush, Object: ObjectRef{Type: 43001}},
		{Timestamp: base.Add(2 * time.Second), RegistryID: "reg-2", Category: CategoryPull, Object: ObjectRef{Type: 43000}},
		{Timestamp: base.Add(3 * time.Second), RegistryID: "reg-1", Category: CategoryError, Object: ObjectRef{Type: 43000, Instance: 1}},
	}
}

func TestReaderIteratesEvents(t *testing.T) {
	path := createTestLogFile(t, testEvents(time.Now()))

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 4 {
		t.Fatalf("got %d events, want 4", len(read))
	}
	if read[0].Category != CategoryValue || read[3].Category != CategoryError {
		t.Error("events out of order")
	}
}

func TestReaderFilters(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	path := createTestLogFile(t, testEvents(base))

	push := CategoryPush
	obj := ObjectRef{Type: 43000}
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"None", Filter{}, 4},
		{"Registry", Filter{RegistryID: "reg-1"}, 3},
		{"Category", Filter{Category: &push}, 1},
		{"Object", Filter{Object: &obj}, 2},
		{"TimeRange", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"Combined", Filter{RegistryID: "reg-2", Object: &obj}, 1},
		{"NoMatch", Filter{RegistryID: "reg-9"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := NewFilteredReader(path, tt.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader failed: %v", err)
			}
			defer reader.Close()

			if got := len(readAll(t, reader)); got != tt.want {
				t.Errorf("got %d events, want %d", got, tt.want)
			}
		})
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "nope.flog")); err == nil {
		t.Error("expected error for missing file")
	}
}
