package log

import (
	"testing"
	"time"
)

// mockLogger records events for testing
type mockLogger struct {
	events []Event
}

func (m *mockLogger) Log(event Event) {
	m.events = append(m.events, event)
}

func TestMultiLoggerCallsAll(t *testing.T) {
	mock1 := &mockLogger{}
	mock2 := &mockLogger{}
	mock3 := &mockLogger{}

	multi := NewMultiLogger(mock1, mock2, mock3)

	multi.Log(Event{
		Timestamp:  time.Now(),
		RegistryID: "reg-123",
		Category:   CategoryPull,
	})

	for i, mock := range []*mockLogger{mock1, mock2, mock3} {
		if len(mock.events) != 1 {
			t.Errorf("logger %d: got %d events, want 1", i, len(mock.events))
			continue
		}
		if mock.events[0].RegistryID != "reg-123" {
			t.Errorf("logger %d: RegistryID = %q, want %q", i, mock.events[0].RegistryID, "reg-123")
		}
	}
}

func TestMultiLoggerEmptyList(t *testing.T) {
	multi := NewMultiLogger()
	multi.Log(Event{Timestamp: time.Now()})
	if multi.Len() != 0 {
		t.Errorf("Len = %d, want 0", multi.Len())
	}
}

func TestMultiLoggerSkipsNil(t *testing.T) {
	mock := &mockLogger{}
	multi := NewMultiLogger(nil, mock, nil)
	if multi.Len() != 1 {
		t.Errorf("Len = %d, want 1", multi.Len())
	}

	multi.Log(Event{Category: CategoryPush})
	multi.Log(Event{Category: CategoryPull})

	if len(mock.events) != 2 {
		t.Fatalf("got %d events, want 2", len(mock.events))
	}
	if mock.events[1].Category != CategoryPull {
		t.Errorf("second event category = %v, want PULL", mock.events[1].Category)
	}
}
