package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"travel-journal/pkg/config"
	"travel-journal/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	NotificationQueueName = "notification_queue"
	EventsExchange        = "travel_events"
)

// Event types published by the services. Delivery to users happens in a
// separate notification worker.
const (
	EventPostLiked     = "post_liked"
	EventCommentAdded  = "comment_added"
	EventCourseCreated = "course_created"
)

type Event struct {
	Type        string    `json:"type"`
	RecipientID string    `json:"recipient_id,omitempty"`
	ActorID     string    `json:"actor_id"`
	PostID      string    `json:"post_id,omitempty"`
	CourseID    string    `json:"course_id,omitempty"`
	Priority    int       `json:"priority"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Publisher is what the usecases depend on; *Client satisfies it.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func declareTopology(channel *amqp.Channel) error {
	if err := channel.ExchangeDeclare(EventsExchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err := channel.QueueDeclare(
		NotificationQueueName,
		true,
		false,
		false,
		false,
		amqp.Table{"x-max-priority": 10},
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	for _, key := range []string{EventPostLiked, EventCommentAdded, EventCourseCreated} {
		if err := channel.QueueBind(NotificationQueueName, key, EventsExchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue for %s: %w", key, err)
		}
	}
	return nil
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

// Publish sends event with its type as routing key. Priority is clamped to 0-10.
func (c *Client) Publish(ctx context.Context, event Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	priority := clampPriority(event.Priority)
	event.Priority = priority

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = c.channel.PublishWithContext(ctx,
		EventsExchange,
		event.Type,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			Priority:     uint8(priority),
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish %s event: %v", event.Type, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Debug("[RABBITMQ] Published %s event: %s", event.Type, string(body))
	return nil
}

func clampPriority(p int) int {
	if p < 0 {
		return 0
	}
	if p > 10 {
		return 10
	}
	return p
}

// PublishAsync publishes in the background and only logs failures. A nil
// publisher is a no-op so services start without RabbitMQ.
func PublishAsync(p Publisher, log *logger.Logger, event Event) {
	if p == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.Publish(ctx, event); err != nil {
			log.Error("[NOTIFICATION QUEUE] Failed to publish %s event: %v", event.Type, err)
		}
	}()
}
