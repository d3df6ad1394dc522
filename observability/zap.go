package observability

import (
	"context"

	"go.uber.org/zap"
)

// ZapObserver emits events to a zap.Logger using the same layout as
// SlogObserver: event type as message, "source" plus flattened Data fields.
type ZapObserver struct {
	logger *zap.Logger
}

// NewZapObserver creates a ZapObserver. A nil logger yields zap.NewNop.
func NewZapObserver(logger *zap.Logger) *ZapObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapObserver{logger: logger}
}

func (o *ZapObserver) OnEvent(ctx context.Context, event Event) {
	ce := o.logger.Check(event.Level.ZapLevel(), string(event.Type))
	if ce == nil {
		return
	}

	fields := make([]zap.Field, 0, len(event.Data)+1)
	fields = append(fields, zap.String("source", event.Source))
	for _, k := range sortedKeys(event.Data) {
		fields = append(fields, zap.Any(k, event.Data[k]))
	}
	ce.Write(fields...)
}
