package rabbitmq

import (
	"context"
	"encoding/json"

	"laundry/internal/adapters/out/notify"

	"github.com/google/uuid"
)

type publishClient interface {
	Publish(ctx context.Context, exchange, key, messageID string, body []byte) error
}

// Publisher implements notify.Publisher on top of a confirming Client.
type Publisher struct {
	client   publishClient
	exchange string
}

func NewPublisher(client publishClient, exchange string) *Publisher {
	return &Publisher{client: client, exchange: exchange}
}

func (p *Publisher) Publish(ctx context.Context, msg notify.Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, p.exchange, msg.RoutingKey, uuid.NewString(), body)
}
