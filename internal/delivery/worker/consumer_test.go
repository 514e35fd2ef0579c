package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliverycontext "padelpoint/internal/delivery/context"
	"padelpoint/internal/domain/constants"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
	mockUsecase "padelpoint/internal/mocks/usecase"
	"padelpoint/internal/usecase"
)

// fakeReader hands out queued messages, then reports io.EOF like a closed reader.
type fakeReader struct {
	mu        sync.Mutex
	queue     []kafka.Message
	committed []int64
}

func (r *fakeReader) FetchMessage(context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.queue) == 0 {
		return kafka.Message{}, io.EOF
	}
	msg := r.queue[0]
	r.queue = r.queue[1:]

	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, msg := range msgs {
		r.committed = append(r.committed, msg.Offset)
	}

	return nil
}

func (r *fakeReader) Close() error { return nil }

func eventMessage(t *testing.T, offset int64, event *service.OrderCreatedEvent) kafka.Message {
	t.Helper()

	value, err := json.Marshal(event)
	require.NoError(t, err)

	return kafka.Message{Offset: offset, Value: value}
}

func newTestConsumer(reader messageReader, notifier usecase.OrderNotificationUsecase) *kafkaConsumer {
	return &kafkaConsumer{
		reader:   reader,
		notifier: notifier,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestKafkaConsumer_CommitsEveryMessage(t *testing.T) {
	reader := &fakeReader{queue: []kafka.Message{
		eventMessage(t, 1, &service.OrderCreatedEvent{OrderID: 10}),
		{Offset: 2, Value: []byte("{not json")},
		eventMessage(t, 3, &service.OrderCreatedEvent{OrderID: 11}),
	}}

	notifier := mockUsecase.NewMockOrderNotificationUsecase(t)
	notifier.EXPECT().
		NotifyOrderCreated(mock.Anything, mock.MatchedBy(func(e *service.OrderCreatedEvent) bool { return e.OrderID == 10 })).
		Return(nil).Once()
	notifier.EXPECT().
		NotifyOrderCreated(mock.Anything, mock.MatchedBy(func(e *service.OrderCreatedEvent) bool { return e.OrderID == 11 })).
		Return(errors.New("order deleted")).Once()

	require.NoError(t, newTestConsumer(reader, notifier).Serve(context.Background()))
	assert.Equal(t, []int64{1, 2, 3}, reader.committed)
}

func TestKafkaConsumer_RetriesRetryableFailures(t *testing.T) {
	reader := &fakeReader{queue: []kafka.Message{eventMessage(t, 5, &service.OrderCreatedEvent{OrderID: 12})}}

	notifier := mockUsecase.NewMockOrderNotificationUsecase(t)
	notifier.EXPECT().
		NotifyOrderCreated(mock.Anything, mock.Anything).
		Return(usecase.NewRetryableError(errors.New("smtp down"))).Twice()
	notifier.EXPECT().
		NotifyOrderCreated(mock.Anything, mock.Anything).
		Return(nil).Once()

	require.NoError(t, newTestConsumer(reader, notifier).Serve(context.Background()))
	assert.Equal(t, []int64{5}, reader.committed)
}

func TestKafkaConsumer_GivesUpAfterMaxAttempts(t *testing.T) {
	reader := &fakeReader{queue: []kafka.Message{eventMessage(t, 8, &service.OrderCreatedEvent{OrderID: 13})}}

	notifier := mockUsecase.NewMockOrderNotificationUsecase(t)
	notifier.EXPECT().
		NotifyOrderCreated(mock.Anything, mock.Anything).
		Return(usecase.NewRetryableError(errors.New("smtp down"))).Times(maxDeliveryAttempts)

	require.NoError(t, newTestConsumer(reader, notifier).Serve(context.Background()))
	assert.Equal(t, []int64{8}, reader.committed)
}

func TestKafkaConsumer_RequestIDFromHeader(t *testing.T) {
	msg := eventMessage(t, 1, &service.OrderCreatedEvent{OrderID: 14, RequestID: "from-event"})
	msg.Headers = []kafka.Header{{Key: constants.AttributeRequestID, Value: []byte("from-header")}}
	reader := &fakeReader{queue: []kafka.Message{msg}}

	notifier := mockUsecase.NewMockOrderNotificationUsecase(t)
	notifier.EXPECT().
		NotifyOrderCreated(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "from-header"
		}), mock.Anything).
		Return(nil)

	require.NoError(t, newTestConsumer(reader, notifier).Serve(context.Background()))
}
