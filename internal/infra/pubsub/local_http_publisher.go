package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	deliverycontext "padelpoint/internal/delivery/context"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
)

const (
	localSubscription   = "projects/local/subscriptions/order-sub"
	localPublishTimeout = 10 * time.Second
	maxErrorBodyBytes   = 512
)

// localHTTPPublisher posts events straight to the notifier's push endpoint, in the same
// envelope a Pub/Sub push subscription would deliver.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPublishTimeout},
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishOrderCreated(ctx context.Context, event *service.OrderCreatedEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)

	pushMsg, err := NewPushMessage(event, localSubscription)
	if err != nil {
		return err
	}
	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.Wrap(err, "encode push message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push order %d to %s", event.OrderID, p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return errors.Errorf("notifier answered %d for order %d: %s",
			resp.StatusCode, event.OrderID, strings.TrimSpace(string(snippet)))
	}

	logger.Info("[LocalPubSub] Order event pushed",
		slog.String("endpoint", p.endpoint),
		slog.Int64("order_id", event.OrderID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
