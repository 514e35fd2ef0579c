package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"padelpoint/config"
	"padelpoint/internal/domain/constants"
	"padelpoint/internal/domain/service"
)

func testEvent() *service.OrderCreatedEvent {
	return &service.OrderCreatedEvent{
		RequestID: "req-1",
		OrderID:   42,
		UserID:    7,
		PaymentID: 12345,
		Total:     302.5,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PostsPushMessage(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishOrderCreated(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "42", received.Message.MessageID)
	assert.Equal(t, constants.EventTypeOrderCreated, received.Message.Attributes[constants.AttributeEventType])

	event, err := received.DecodeOrderCreated()
	require.NoError(t, err)
	assert.Equal(t, int64(42), event.OrderID)
	assert.InDelta(t, 302.5, event.Total, 1e-9)
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishOrderCreated(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)

	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true

	return nil
}

func TestKafkaPublisher_KeysByOrderID(t *testing.T) {
	writer := &fakeWriter{}
	publisher := &kafkaPublisher{writer: writer, logger: discardLogger()}

	require.NoError(t, publisher.PublishOrderCreated(context.Background(), testEvent()))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, "42", string(msg.Key))
	assert.Equal(t, "req-1", HeaderValue(msg, constants.AttributeRequestID))
	assert.Equal(t, constants.EventTypeOrderCreated, HeaderValue(msg, constants.AttributeEventType))
	assert.Empty(t, HeaderValue(msg, "missing"))

	var event service.OrderCreatedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, int64(12345), event.PaymentID)

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "no provider falls back to noop", cfg: &config.PubSubConfig{}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:3001/push"}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: true},
		{name: "kafka without brokers", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderKafka}, wantErr: true},
		{name: "kafka", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderKafka, Kafka: config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "order-events"}}},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "sqs"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)
			if tt.cfg.Provider == "" {
				require.NoError(t, publisher.PublishOrderCreated(context.Background(), &service.OrderCreatedEvent{}))
			}
		})
	}
}
