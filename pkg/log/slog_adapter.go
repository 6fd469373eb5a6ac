package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes flow events to an slog.Logger.
// Useful for development when you want to see flow events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
// Error events are written at Warn level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("registry_id", event.RegistryID),
		slog.String("category", event.Category.String()),
		slog.String("object", event.Object.String()),
	}

	if event.Resource != nil {
		attrs = append(attrs, slog.String("resource", event.Resource.String()))
	}
	if event.Value != nil {
		attrs = append(attrs,
			slog.String("kind", event.Value.Kind),
			slog.String("value", event.Value.Text),
		)
	}
	if event.Peer != nil {
		attrs = append(attrs, slog.String("peer", event.Peer.String()))
	}
	if event.Interval != nil {
		attrs = append(attrs,
			slog.Uint64("now", uint64(event.Interval.Now)),
			slog.Uint64("elapsed", uint64(event.Interval.Elapsed)),
			slog.Uint64("interval", uint64(event.Interval.Interval)),
		)
	}

	level := slog.LevelDebug
	if event.Error != nil {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error_msg", event.Error.Message))
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), level, "flow", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
