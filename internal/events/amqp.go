package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"

	applog "finanzas/internal/log"
)

// AMQPClient publishes and consumes transaction events over a durable fanout
// exchange. With more than one API replica, or with the export worker
// deployed, AMQP replaces the in-process Dispatcher so every consumer sees
// every write.
//
// Fanout copies each event to every bound queue, so consumers never compete:
// the export worker binds its own durable queue, and each server replica
// binds a private broker-named queue for cache invalidation.
type AMQPClient struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
}

var _ Publisher = (*AMQPClient)(nil)

const exchangeKind = "fanout"

// queueParams returns the declaration flags for a consumer queue. A named
// queue is durable and shared; an empty name asks the broker for a private
// per-consumer queue that goes away with its connection.
func queueParams(name string) (durable, autoDelete, exclusive bool) {
	if name == "" {
		return false, true, true
	}
	return true, false, false
}

// NewAMQPClient connects and declares the topology. Pass an empty queueName
// for a per-replica private queue, or a fixed name for a durable shared one.
func NewAMQPClient(url, exchangeName, queueName string) (*AMQPClient, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := &AMQPClient{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
	}

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return client, nil
}

func (c *AMQPClient) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName, // name
		exchangeKind,   // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	durable, autoDelete, exclusive := queueParams(c.queueName)
	queue, err := c.channel.QueueDeclare(
		c.queueName, // name, empty for broker-named
		durable,
		autoDelete,
		exclusive,
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	c.queueName = queue.Name

	// Fanout ignores routing keys; every bound queue gets every event.
	err = c.channel.QueueBind(c.queueName, "", c.exchangeName, false, nil)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// PublishTransactionEvent implements Publisher with a persistent JSON message.
func (c *AMQPClient) PublishTransactionEvent(ctx context.Context, e TransactionEvent) error {
	body, err := e.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = c.channel.PublishWithContext(
		ctx,
		c.exchangeName, // exchange
		"",             // routing key, ignored by fanout
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	slog.DebugContext(ctx, "Published transaction event",
		"action", e.Action,
		applog.FieldUserID, e.UserID,
		"transaction_id", e.TransactionID,
		"exchange", c.exchangeName)

	return nil
}

// ConsumeTransactionEvents delivers queued events to handler until ctx ends.
// Handler failures are nack-requeued; undecodable messages are dropped.
func (c *AMQPClient) ConsumeTransactionEvents(ctx context.Context, handler func(*TransactionEvent) error) error {
	msgs, err := c.channel.Consume(
		c.queueName, // queue
		"",          // consumer
		false,       // auto-ack off, we ack after handling
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	slog.InfoContext(ctx, "Started consuming transaction events", "queue", c.queueName)

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Stopping event consumption", "reason", ctx.Err())
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				return fmt.Errorf("message channel closed")
			}

			event, err := TransactionEventFromJSON(delivery.Body)
			if err != nil {
				slog.ErrorContext(ctx, "Failed to unmarshal event", applog.FieldError, err)
				delivery.Nack(false, false)
				continue
			}

			if err := handler(event); err != nil {
				slog.ErrorContext(ctx, "Failed to handle event",
					applog.FieldError, err,
					"action", event.Action,
					applog.FieldUserID, event.UserID,
					"transaction_id", event.TransactionID)
				delivery.Nack(false, true)
				continue
			}

			delivery.Ack(false)
		}
	}
}

func (c *AMQPClient) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
