package notify

import (
	"context"

	"go.uber.org/zap"
)

// LogPublisher writes notifications to the log. It stands in for the broker
// when no RabbitMQ URL is configured.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With(zap.String("component", "log_publisher"))}
}

func (p *LogPublisher) Publish(_ context.Context, msg Message) error {
	p.logger.Info("notification",
		zap.String("event", msg.Event),
		zap.String("routing_key", msg.RoutingKey),
		zap.Any("payload", msg.Payload),
	)
	return nil
}
