// Reservation lifecycle events are mirrored to a message broker so external
// consumers (notifications, analytics) can react without polling the API.
// Publishing is best-effort: errors are logged and returned, and callers are
// expected to ignore them rather than fail the request.
package events

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const reservationQueue = "reservation.events"

// ReservationEvent is the broker payload for a reservation lifecycle change.
// It carries enough for downstream consumers to act without querying the API.
type ReservationEvent struct {
	Event         string `json:"event"`
	ReservationID uint   `json:"reservation_id"`
	TableID       uint   `json:"table_id"`
	CustomerName  string `json:"customer_name"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Guests        int    `json:"guests"`
	OccurredAt    string `json:"occurred_at"`
}

// PublishReservationEvent sends the event to the reservation.events queue.
// A missing RABBITMQ_URL disables publishing entirely. Messages are durable
// and persistent; the queue declare is idempotent.
func PublishReservationEvent(ctx context.Context, event ReservationEvent) error {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		return nil
	}
	if event.OccurredAt == "" {
		event.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		reservationQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",               // default exchange
		reservationQueue, // routing key = queue name
		false,            // mandatory
		false,            // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
