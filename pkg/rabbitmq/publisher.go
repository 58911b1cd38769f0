package rabbitmq

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/config"
)

const (
	RoutingKeyUploaded = "video.uploaded"
	RoutingKeyDeleted  = "video.deleted"
)

// Publisher emits video lifecycle events to the transcoding exchange.
// A nil Publisher is valid and drops every event, for deployments
// without a broker.
type Publisher struct {
	conn     *amqp.Connection
	exchange string
	kind     string
}

func NewPublisher(conn *amqp.Connection, cfg *config.RabbitMQ) *Publisher {
	exchange := cfg.ExchangeName
	if exchange == "" {
		exchange = "transcoding_exchange"
	}
	kind := cfg.Kind
	if kind == "" {
		kind = "topic"
	}
	return &Publisher{
		conn:     conn,
		exchange: exchange,
		kind:     kind,
	}
}

func (p *Publisher) Publish(ctx context.Context, routingKey string, event any) error {
	if p == nil {
		return nil
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	err = ch.ExchangeDeclare(p.exchange, p.kind, true, false, false, false, nil)
	if err != nil {
		zerolog.Ctx(ctx).Error().Str("exchange", p.exchange).Msg("failed to declare exchange")
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}
