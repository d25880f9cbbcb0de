package events

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/pkg/constvars"
	"context"

	"go.uber.org/zap"
)

type noopPublisher struct {
	Log *zap.Logger
}

// NewNoopPublisher is used when no broker is configured.
func NewNoopPublisher(logger *zap.Logger) contracts.EventPublisher {
	return &noopPublisher{Log: logger}
}

func (p *noopPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Debug("noopPublisher.Publish skipped",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventRoutingKey, routingKey),
	)
	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
