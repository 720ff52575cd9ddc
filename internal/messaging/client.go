// Package messaging carries the bot's asynchronous traffic over AMQP: one
// durable queue of outbound user messages and one of expense sync requests.
package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/rabbitmq/amqp091-go"

	"finbot/internal/log"
)

// Messenger publishes outbound user messages. The bot and the scheduler
// depend on this interface only; tests substitute a recording fake.
type Messenger interface {
	PublishOutbound(ctx context.Context, msg *OutboundMessage) error
}

const (
	publishAttempts = 3
	publishDelay    = 500 * time.Millisecond
	publishTimeout  = 5 * time.Second
)

type Client struct {
	conn          *amqp091.Connection
	channel       *amqp091.Channel
	exchangeName  string
	outboundQueue string
	syncQueue     string
	logger        *log.Logger
}

func NewClient(url, exchangeName, outboundQueue, syncQueue string, logger *log.Logger) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := &Client{
		conn:          conn,
		channel:       channel,
		exchangeName:  exchangeName,
		outboundQueue: outboundQueue,
		syncQueue:     syncQueue,
		logger:        logger.WithComponent(log.ComponentAMQP),
	}

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange and queues: %w", err)
	}

	return client, nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	for _, queue := range []string{c.outboundQueue, c.syncQueue} {
		_, err = c.channel.QueueDeclare(
			queue, // name
			true,  // durable
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			nil,   // arguments
		)
		if err != nil {
			return fmt.Errorf("declare queue %s: %w", queue, err)
		}

		// Routing key matches the queue name on a direct exchange
		err = c.channel.QueueBind(queue, queue, c.exchangeName, false, nil)
		if err != nil {
			return fmt.Errorf("bind queue %s: %w", queue, err)
		}
	}

	return nil
}

// PublishOutbound enqueues a user-facing message. Publishing is retried so a
// transient broker hiccup does not drop a reply or a reminder.
func (c *Client) PublishOutbound(ctx context.Context, msg *OutboundMessage) error {
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	if err := c.publish(ctx, c.outboundQueue, body); err != nil {
		return err
	}
	c.logger.InfoContext(ctx, "Published outbound message",
		log.FieldPhone, msg.Phone,
		log.FieldQueue, c.outboundQueue)
	return nil
}

// PublishExpenseSync enqueues a sheets export request for one expense.
func (c *Client) PublishExpenseSync(ctx context.Context, msg *ExpenseSyncMessage) error {
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	if err := c.publish(ctx, c.syncQueue, body); err != nil {
		return err
	}
	c.logger.InfoContext(ctx, "Published expense sync message",
		log.FieldExpenseID, msg.ID,
		log.FieldQueue, c.syncQueue)
	return nil
}

func (c *Client) publish(ctx context.Context, routingKey string, body []byte) error {
	err := retry.Do(
		func() error {
			publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
			defer cancel()

			return c.channel.PublishWithContext(
				publishCtx,
				c.exchangeName, // exchange
				routingKey,     // routing key
				false,          // mandatory
				false,          // immediate
				amqp091.Publishing{
					ContentType:  "application/json",
					DeliveryMode: amqp091.Persistent,
					Timestamp:    time.Now(),
					Body:         body,
				},
			)
		},
		retry.Attempts(publishAttempts),
		retry.Delay(publishDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", routingKey, err)
	}
	return nil
}

// ConsumeExpenseSync delivers sync messages to handler until ctx is done.
// Messages are acked only after the handler succeeds; handler failures are
// requeued, undecodable payloads are dropped.
func (c *Client) ConsumeExpenseSync(ctx context.Context, handler func(*ExpenseSyncMessage) error) error {
	msgs, err := c.channel.Consume(
		c.syncQueue, // queue
		"",          // consumer
		false,       // auto-ack (we want manual ack)
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	c.logger.InfoContext(ctx, "Started consuming expense sync messages", log.FieldQueue, c.syncQueue)

	for {
		select {
		case <-ctx.Done():
			c.logger.InfoContext(ctx, "Stopping message consumption", "reason", ctx.Err())
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				return fmt.Errorf("message channel closed")
			}

			msg, err := ExpenseSyncMessageFromJSON(delivery.Body)
			if err != nil {
				c.logger.ErrorContext(ctx, "Failed to unmarshal message", log.FieldError, err)
				delivery.Nack(false, false)
				continue
			}

			if err := handler(msg); err != nil {
				c.logger.ErrorContext(ctx, "Failed to handle message",
					log.FieldError, err,
					log.FieldExpenseID, msg.ID)
				delivery.Nack(false, true)
				continue
			}

			delivery.Ack(false)
		}
	}
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
