// Package queue publishes booking lifecycle events to RabbitMQ. Publishing
// is best effort: a missing broker disables it and booking flow continues.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const bookingQueueName = "booking.events"

type BookingEvent struct {
	Type        string    `json:"type"` // booking.confirmed | booking.cancelled
	BookingID   string    `json:"booking_id"`
	OrderID     string    `json:"order_id"`
	UserID      string    `json:"user_id"`
	TotalAmount float64   `json:"total_amount"`
	At          time.Time `json:"at"`
}

type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	log  *zap.Logger
}

// NewPublisher connects to the broker and declares the durable booking
// queue. An empty URL returns a nil publisher, which disables publishing.
func NewPublisher(url string, log *zap.Logger) (*Publisher, error) {
	if url == "" {
		return nil, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(bookingQueueName, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", bookingQueueName, err)
	}

	return &Publisher{
		conn: conn,
		ch:   ch,
		log:  log.With(zap.String("service", "queue")),
	}, nil
}

// Publish sends a booking event. Safe on a nil publisher. Failures are
// logged, never propagated; events are informational, not part of the
// commit.
func (p *Publisher) Publish(ctx context.Context, event BookingEvent) {
	if p == nil {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error("Failed to marshal booking event", zap.Error(err))
		return
	}

	err = p.ch.PublishWithContext(ctx, "", bookingQueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.At,
		Body:         body,
	})
	if err != nil {
		p.log.Error("Failed to publish booking event",
			zap.Error(err),
			zap.String("type", event.Type),
			zap.String("booking_id", event.BookingID),
		)
		return
	}

	p.log.Info("Booking event published",
		zap.String("type", event.Type),
		zap.String("booking_id", event.BookingID),
	)
}

// Close releases the channel and connection. Safe on a nil publisher.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	p.ch.Close()
	p.conn.Close()
}
