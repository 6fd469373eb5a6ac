package log

import "sync"

// Recorder keeps events in memory, up to a limit.
// When the limit is reached the oldest events are dropped.
// It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	limit  int
	events []Event
}

// NewRecorder creates a Recorder holding at most limit events.
// A limit <= 0 keeps every event.
func NewRecorder(limit int) *Recorder {
	return &Recorder{limit: limit}
}

// Log stores the event.
func (r *Recorder) Log(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
	if r.limit > 0 && len(r.events) > r.limit {
		r.events = r.events[len(r.events)-r.limit:]
	}
}

// Events returns a copy of the stored events matching filter.
func (r *Recorder) Events(filter Filter) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []Event
	for _, e := range r.events {
		if filter.Matches(e) {
			result = append(result, e)
		}
	}
	return result
}

// Len returns the number of stored events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Reset drops all stored events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// Compile-time interface satisfaction check.
var _ Logger = (*Recorder)(nil)
