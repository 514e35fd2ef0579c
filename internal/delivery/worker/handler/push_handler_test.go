package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	deliverycontext "padelpoint/internal/delivery/context"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
	"padelpoint/internal/infra/pubsub"
	mockUsecase "padelpoint/internal/mocks/usecase"
	"padelpoint/internal/usecase"
)

func newTestPushHandler(notifier usecase.OrderNotificationUsecase) *PushHandler {
	return &PushHandler{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		notifier: notifier,
		validate: func(context.Context, string, string) (*idtoken.Payload, error) {
			return nil, errors.New("validator not expected")
		},
	}
}

func pushRequest(t *testing.T, event *service.OrderCreatedEvent) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event, "projects/padel/subscriptions/orders")
	require.NoError(t, err)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return rec, echo.New().NewContext(req, rec)
}

func TestPushHandler_StatusByOutcome(t *testing.T) {
	tests := []struct {
		name       string
		notifyErr  error
		wantStatus int
	}{
		{name: "processed", wantStatus: http.StatusOK},
		{name: "retryable failure asks for redelivery", notifyErr: usecase.NewRetryableError(errors.New("smtp down")), wantStatus: http.StatusServiceUnavailable},
		{name: "permanent failure is acknowledged", notifyErr: errors.New("order gone"), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := mockUsecase.NewMockOrderNotificationUsecase(t)
			notifier.EXPECT().
				NotifyOrderCreated(mock.Anything, mock.MatchedBy(func(event *service.OrderCreatedEvent) bool {
					return event.OrderID == 42 && event.PaymentID == 777
				})).
				Return(tt.notifyErr)

			rec, c := pushRequest(t, &service.OrderCreatedEvent{OrderID: 42, PaymentID: 777, Total: 121})

			require.NoError(t, newTestPushHandler(notifier).HandlePush(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_MalformedBody(t *testing.T) {
	notifier := mockUsecase.NewMockOrderNotificationUsecase(t)

	body := `{"message":{"data":"not base64!","messageId":"1"}}`
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, newTestPushHandler(notifier).HandlePush(echo.New().NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_RequestIDFromAttributes(t *testing.T) {
	notifier := mockUsecase.NewMockOrderNotificationUsecase(t)
	notifier.EXPECT().
		NotifyOrderCreated(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-1"
		}), mock.Anything).
		Return(nil)

	rec, c := pushRequest(t, &service.OrderCreatedEvent{OrderID: 1, RequestID: "req-1"})

	require.NoError(t, newTestPushHandler(notifier).HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_VerifiesToken(t *testing.T) {
	newHandler := func(notifier usecase.OrderNotificationUsecase, issuer string, validateErr error) *PushHandler {
		h := newTestPushHandler(notifier)
		h.verifyPushAuth = true
		h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			if validateErr != nil {
				return nil, validateErr
			}
			assert.Equal(t, "good-token", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{Issuer: issuer, Claims: map[string]any{"email_verified": true}}, nil
		}

		return h
	}

	t.Run("missing header", func(t *testing.T) {
		rec, c := pushRequest(t, &service.OrderCreatedEvent{OrderID: 1})

		require.NoError(t, newHandler(mockUsecase.NewMockOrderNotificationUsecase(t), "https://accounts.google.com", nil).HandlePush(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		rec, c := pushRequest(t, &service.OrderCreatedEvent{OrderID: 1})
		c.Request().Header.Set(echo.HeaderAuthorization, "Bearer good-token")

		require.NoError(t, newHandler(mockUsecase.NewMockOrderNotificationUsecase(t), "https://evil.example", nil).HandlePush(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		notifier := mockUsecase.NewMockOrderNotificationUsecase(t)
		notifier.EXPECT().NotifyOrderCreated(mock.Anything, mock.Anything).Return(nil)

		rec, c := pushRequest(t, &service.OrderCreatedEvent{OrderID: 1})
		c.Request().Header.Set(echo.HeaderAuthorization, "Bearer good-token")

		require.NoError(t, newHandler(notifier, "https://accounts.google.com", nil).HandlePush(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
