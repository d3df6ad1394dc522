package observability

import (
	"context"
	"log/slog"
)

// SlogObserver writes each event as one slog record: message = event type,
// level = Level.SlogLevel, attributes = "source" then Data in key order.
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver wraps logger, or slog.Default when logger is nil.
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogObserver{logger: logger}
}

func (o *SlogObserver) OnEvent(ctx context.Context, event Event) {
	attrs := make([]slog.Attr, 0, len(event.Data)+1)
	attrs = append(attrs, slog.String("source", event.Source))
	for _, k := range sortedKeys(event.Data) {
		attrs = append(attrs, slog.Any(k, event.Data[k]))
	}

	o.logger.LogAttrs(ctx, event.Level.SlogLevel(), string(event.Type), attrs...)
}
