package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	deliverycontext "padelpoint/internal/delivery/context"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePubSubPublisher sends order events to a Pub/Sub topic whose push subscription targets the notifier.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topicPath string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher fails fast when the topic does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "order events topic %s is not reachable", topicPath)
	}

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		topicPath: topicPath,
		logger:    logger,
	}, nil
}

func (p *googlePubSubPublisher) PublishOrderCreated(ctx context.Context, event *service.OrderCreatedEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)

	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "encode order event")
	}

	// Get blocks until the server acknowledges, so a failure reaches the order service's log.
	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish order %d to %s", event.OrderID, p.topicPath)
	}

	logger.Info("[GooglePubSub] Order event published",
		slog.Int64("order_id", event.OrderID),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
