package log

// Logger receives the flow events a registry produces. Registries call
// Log synchronously from the operation that caused the event, so
// implementations should not block. Implementations shared between
// registries must be safe for concurrent use.
type Logger interface {
	Log(event Event)
}

// NoopLogger discards events. Registries use it when no tracer is set.
type NoopLogger struct{}

// Log does nothing.
func (NoopLogger) Log(Event) {}

var _ Logger = NoopLogger{}
