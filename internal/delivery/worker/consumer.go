package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"

	"padelpoint/config"
	"padelpoint/internal/delivery"
	deliverycontext "padelpoint/internal/delivery/context"
	"padelpoint/internal/domain/constants"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
	"padelpoint/internal/infra/pubsub"
	"padelpoint/internal/usecase"
)

const (
	maxDeliveryAttempts = 5
	retryBackoff        = 2 * time.Second
)

// messageReader is the subset of *kafka.Reader the consumer needs.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaConsumer feeds order events from a Kafka topic to the notifier.
type kafkaConsumer struct {
	reader   messageReader
	notifier usecase.OrderNotificationUsecase
	logger   *slog.Logger
	backoff  time.Duration
}

type ConsumerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	Notifier usecase.OrderNotificationUsecase
}

func NewKafkaConsumer(params ConsumerParams) (delivery.Delivery, error) {
	kafkaCfg := params.Cfg.PubSub.Kafka
	if len(kafkaCfg.Brokers) == 0 || kafkaCfg.Topic == "" {
		return nil, errors.New("kafka brokers and topic are required")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  kafkaCfg.Brokers,
		Topic:    kafkaCfg.Topic,
		GroupID:  kafkaCfg.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})

	consumer := &kafkaConsumer{
		reader:   reader,
		notifier: params.Notifier,
		logger:   params.Logger,
		backoff:  retryBackoff,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(consumer.reader.Close())
		},
	})

	return consumer, nil
}

// Serve blocks until ctx is cancelled or the reader is closed.
func (k *kafkaConsumer) Serve(ctx context.Context) error {
	k.logger.Info("Starting Kafka order event consumer")

	for {
		msg, err := k.reader.FetchMessage(ctx)
		if err != nil {
			// Close on shutdown surfaces as io.EOF.
			if ctx.Err() != nil || errors.IsAny(err, context.Canceled, io.EOF) {
				return nil
			}

			return errors.Wrap(err, "fetch kafka message")
		}

		k.handle(ctx, msg)

		if err := k.reader.CommitMessages(ctx, msg); err != nil {
			k.logger.Error("[Kafka] Failed to commit offset",
				slog.Int64("offset", msg.Offset),
				slog.Any("error", err),
			)
		}
	}
}

// handle retries retryable failures in place. Anything else, or exhausting the
// attempts, drops the message.
func (k *kafkaConsumer) handle(ctx context.Context, msg kafka.Message) {
	var event service.OrderCreatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		k.logger.Error("[Kafka] Dropping malformed order event",
			slog.Int64("offset", msg.Offset),
			slog.Any("error", err),
		)

		return
	}

	requestID := extractRequestID(msg, &event)
	logger := k.logger.With(slog.String("request_id", requestID), slog.Int64("order_id", event.OrderID))
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, requestID), logger)

	for attempt := 1; attempt <= maxDeliveryAttempts; attempt++ {
		err := k.notifier.NotifyOrderCreated(ctx, &event)
		if err == nil {
			logger.Info("[Kafka] Order event processed")

			return
		}

		retryable := usecase.IsRetryableError(err)
		logger.Error("[Kafka] Failed to process order event",
			slog.Int("attempt", attempt),
			slog.Bool("retryable", retryable),
			slog.Any("error", err),
		)
		if !retryable {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(k.backoff * time.Duration(attempt)):
		}
	}

	logger.Warn("[Kafka] Giving up on order event", slog.Int("attempts", maxDeliveryAttempts))
}

func extractRequestID(msg kafka.Message, event *service.OrderCreatedEvent) string {
	if requestID := pubsub.HeaderValue(msg, constants.AttributeRequestID); requestID != "" {
		return requestID
	}

	return event.RequestID
}
