package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/darkhuo10/vgameshop/internal/config"
)

// DownloadEvent is emitted after a successful game download so external
// consumers (sales stats, recommendations) can react without coupling to the
// request path.
type DownloadEvent struct {
	UserID       uint      `json:"user_id"`
	GameID       uint      `json:"game_id"`
	GameName     string    `json:"game_name"`
	Price        float64   `json:"price"`
	DownloadedAt time.Time `json:"downloaded_at"`
}

// Publisher is the outbound side of the download-event queue.
type Publisher interface {
	PublishDownload(ctx context.Context, event DownloadEvent) error
	Close()
}

// Client publishes download events to a RabbitMQ queue.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
}

func NewClient(cfg *config.Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	// Idempotent: creates the queue if absent, no-op otherwise.
	q, err := ch.QueueDeclare(
		cfg.RabbitMQQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &Client{conn: conn, channel: ch, queue: q}, nil
}

func (c *Client) PublishDownload(ctx context.Context, event DownloadEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal download event: %w", err)
	}

	return c.channel.PublishWithContext(ctx,
		"",           // default exchange
		c.queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		})
}

func (c *Client) Close() {
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			log.Printf("Error closing RabbitMQ channel: %v", err)
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			log.Printf("Error closing RabbitMQ connection: %v", err)
		}
	}
}

// NopPublisher drops events. Used when no queue is configured.
type NopPublisher struct{}

func (NopPublisher) PublishDownload(context.Context, DownloadEvent) error { return nil }
func (NopPublisher) Close()                                              {}
