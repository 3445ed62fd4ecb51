// Package outbox publishes events written by order placement to Kafka.
package outbox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/foodstore/internal/domain"
	"github.com/nikolayk812/foodstore/internal/port"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
)

// MessageWriter is the part of *kafka.Writer the relay needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Config struct {
	PollInterval time.Duration
	BatchSize    int32
	// Consecutive publish failures that open the breaker.
	MaxFailures uint32
	// How long the breaker stays open before a trial publish.
	OpenTimeout time.Duration
}

type Relay struct {
	repo    port.OutboxRepository
	writer  MessageWriter
	breaker *gobreaker.CircuitBreaker[struct{}]
	cfg     Config
	log     logrus.FieldLogger
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

func NewRelay(repo port.OutboxRepository, writer MessageWriter, cfg Config, log logrus.FieldLogger) *Relay {
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = 5
	}
	if cfg.OpenTimeout == 0 {
		cfg.OpenTimeout = 30 * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:    "outbox-kafka",
		Timeout: cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("circuit breaker state changed")
		},
	})

	return &Relay{
		repo:    repo,
		writer:  writer,
		breaker: breaker,
		cfg:     cfg,
		log:     log,
	}
}

// Run relays on every tick until ctx is done.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	r.log.WithField("interval", r.cfg.PollInterval.String()).Info("outbox relay started")

	for {
		select {
		case <-ctx.Done():
			r.log.Info("outbox relay stopped")
			return
		case <-ticker.C:
			if _, err := r.RelayOnce(ctx); err != nil && ctx.Err() == nil {
				r.log.WithError(err).Error("outbox relay failed")
			}
		}
	}
}

// RelayOnce publishes one batch of pending events and returns how many were
// published and marked. Events that fail stay pending for the next call.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	events, err := r.repo.ListUnpublished(ctx, r.cfg.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("repo.ListUnpublished: %w", err)
	}

	published := 0
	for _, event := range events {
		_, err := r.breaker.Execute(func() (struct{}, error) {
			return struct{}{}, r.writer.WriteMessages(ctx, toMessage(event))
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				return published, fmt.Errorf("breaker.Execute: %w", err)
			}
			r.log.WithError(err).WithField("event_id", event.ID.String()).Warn("event publish failed")
			continue
		}

		if err := r.repo.MarkPublished(ctx, event.ID); err != nil {
			r.log.WithError(err).WithField("event_id", event.ID.String()).Warn("event mark failed")
			continue
		}

		published++
	}

	return published, nil
}

func toMessage(event domain.OutboxEvent) kafka.Message {
	return kafka.Message{
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.ID.String())},
			{Key: "event_type", Value: []byte(event.EventType)},
		},
		Time: event.CreatedAt,
	}
}
