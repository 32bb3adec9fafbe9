package notify

import (
	"context"
	"sync/atomic"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/ports"

	"go.uber.org/zap"
)

// Publisher delivers one message to the outside world.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

const drainTimeout = 5 * time.Second

// AsyncSink implements ports.NotificationSink over a bounded queue drained by Run.
type AsyncSink struct {
	queue     chan Message
	publisher Publisher
	clock     ports.Clock
	logger    *zap.Logger
	dropped   atomic.Int64
}

func NewAsyncSink(publisher Publisher, size int, clock ports.Clock, logger *zap.Logger) *AsyncSink {
	if size < 1 {
		size = 1
	}
	return &AsyncSink{
		queue:     make(chan Message, size),
		publisher: publisher,
		clock:     clock,
		logger:    logger.With(zap.String("component", "notification_sink")),
	}
}

// EmitToRoles queues one message per role of the outlet.
func (s *AsyncSink) EmitToRoles(_ context.Context, outletID kernel.UUID, roles staff.RoleSet, event string, payload any) {
	for _, role := range roles {
		s.enqueue(Message{RoutingKey: OutletRoleKey(outletID, role), Event: event, Payload: payload})
	}
}

func (s *AsyncSink) EmitToCustomer(_ context.Context, customerID kernel.UUID, event string, payload any) {
	s.enqueue(Message{RoutingKey: CustomerKey(customerID), Event: event, Payload: payload})
}

// Dropped returns how many messages were discarded because the queue was full.
func (s *AsyncSink) Dropped() int64 {
	return s.dropped.Load()
}

func (s *AsyncSink) enqueue(msg Message) {
	msg.At = s.clock.Now()
	select {
	case s.queue <- msg:
	default:
		s.dropped.Add(1)
		s.logger.Warn("notification queue full, dropping message",
			zap.String("event", msg.Event),
			zap.String("routing_key", msg.RoutingKey),
		)
	}
}

// Run publishes queued messages until ctx is cancelled, then flushes what is
// left within drainTimeout. Publish failures are logged and not retried.
func (s *AsyncSink) Run(ctx context.Context) error {
	for {
		select {
		case msg := <-s.queue:
			s.publish(ctx, msg)
		case <-ctx.Done():
			s.drain()
			return nil
		}
	}
}

func (s *AsyncSink) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	for {
		select {
		case msg := <-s.queue:
			s.publish(ctx, msg)
		default:
			return
		}
	}
}

func (s *AsyncSink) publish(ctx context.Context, msg Message) {
	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.logger.Error("failed to publish notification",
			zap.Error(err),
			zap.String("event", msg.Event),
			zap.String("routing_key", msg.RoutingKey),
		)
	}
}
