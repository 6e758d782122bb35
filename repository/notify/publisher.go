package notifyrepo

import (
	"context"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Declarations mirror the broker setup the listener consumes from.
const (
	ExchangeName = "livroExchange"
	QueueName    = "livroQueue"
	RoutingKey   = "livro.key"
)

// Publisher sends a human-readable change notification. Best effort: callers
// log failures and move on, delivery is never confirmed back to them.
type Publisher interface {
	Publish(ctx context.Context, message string) error
}

type Rabbit struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewRabbit connects, declares the durable topic exchange, queue and binding,
// and returns a Publisher over one shared channel.
func NewRabbit(url string) (*Rabbit, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(ExchangeName, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, err
	}
	if _, err := ch.QueueDeclare(QueueName, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.QueueBind(QueueName, RoutingKey, ExchangeName, false, nil); err != nil {
		conn.Close()
		return nil, err
	}

	return &Rabbit{conn: conn, ch: ch}, nil
}

func (r *Rabbit) Publish(ctx context.Context, message string) error {
	return r.ch.PublishWithContext(ctx, ExchangeName, RoutingKey, false, false, amqp.Publishing{
		ContentType:  "text/plain",
		DeliveryMode: amqp.Persistent,
		Body:         []byte(message),
	})
}

// Listen consumes livroQueue and hands each text payload to handler. It
// returns when the context is cancelled or the delivery channel closes.
func (r *Rabbit) Listen(ctx context.Context, log *slog.Logger, handler func(message string)) error {
	deliveries, err := r.ch.Consume(QueueName, "", true, false, false, false, nil)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			log.Info("notification received", "queue", QueueName, "body", string(d.Body))
			handler(string(d.Body))
		}
	}
}

func (r *Rabbit) Close() error {
	r.ch.Close()
	return r.conn.Close()
}

// Nop is used when the broker is disabled (tests, local runs).
type Nop struct{}

func (Nop) Publish(ctx context.Context, message string) error { return nil }
