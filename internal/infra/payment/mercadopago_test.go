package payment

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padelpoint/config"
	"padelpoint/internal/domain/entity"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *mercadoPagoClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Payment: &config.PaymentConfig{
		BaseURL:         server.URL,
		AccessToken:     "APP_USR-test",
		Timeout:         time.Second,
		ClientDomain:    "https://shop.padel.test/",
		MaxInstallments: 6,
		PreferenceTTL:   15 * time.Minute,
	}}
	client, ok := NewMercadoPagoClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*mercadoPagoClient)
	require.True(t, ok)
	client.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	return client
}

func TestGetPayment(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantStatus string
	}{
		{name: "approved payment", status: http.StatusOK, body: `{"id":99,"status":"approved","status_detail":"accredited"}`, wantStatus: "approved"},
		{name: "http 404", status: http.StatusNotFound, body: `{"message":"Payment not found"}`, wantErr: service.ErrPaymentNotFound},
		{name: "404 inside body", status: http.StatusOK, body: `{"status":404,"message":"not found"}`, wantErr: service.ErrPaymentNotFound},
		{name: "unreadable body", status: http.StatusOK, body: `<html>`, wantErr: service.ErrGatewayUnavailable},
		{name: "server error", status: http.StatusInternalServerError, body: `{"message":"boom"}`, wantErr: service.ErrGatewayUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/payments/99", r.URL.Path)
				assert.Equal(t, "Bearer APP_USR-test", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			info, err := client.GetPayment(t.Context(), 99)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(99), info.ID)
			assert.Equal(t, tt.wantStatus, info.Status)
		})
	}
}

func TestGetPayment_TransportError(t *testing.T) {
	client := newTestClient(t, func(http.ResponseWriter, *http.Request) {})
	client.baseURL = "http://127.0.0.1:1"

	_, err := client.GetPayment(t.Context(), 1)
	require.ErrorIs(t, err, service.ErrGatewayUnavailable)
}

func TestCreatePreference(t *testing.T) {
	var sent map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/checkout/preferences", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"pref-1","init_point":"https://mp.test/checkout/pref-1"}`))
	})

	preference, err := client.CreatePreference(t.Context(), &entity.PreferenceInput{
		User:    &entity.User{ID: 7, Name: "Ana", Surname: "Perez", Email: "ana@padel.test", IDNumber: "30111222", IDType: &entity.CatalogItem{Name: "DNI"}},
		Address: &entity.Address{ID: 3, Street: "Calle 7", Number: "1234", PostalCode: "1900"},
		Items:   []entity.PreferenceItem{{ID: 5, Title: "Vertex 04", Quantity: 2, UnitPrice: 250}},
	})
	require.NoError(t, err)
	assert.Equal(t, "pref-1", preference.ID)
	assert.Equal(t, "https://mp.test/checkout/pref-1", preference.InitPoint)

	assert.Equal(t, "7-3", sent["external_reference"])
	assert.Equal(t, "approved", sent["auto_return"])
	assert.Equal(t, "2026-03-01T12:15:00Z", sent["expiration_date_to"])

	backURLs, ok := sent["back_urls"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://shop.padel.test/payment/result", backURLs["success"])

	methods, ok := sent["payment_methods"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 6, methods["installments"], 0)
	assert.Equal(t, []any{map[string]any{"id": "ticket"}}, methods["excluded_payment_types"])

	items, ok := sent["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "5", item["id"])
	assert.Equal(t, "ARS", item["currency_id"])
}

func TestCreatePreference_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"invalid items"}`))
	})

	_, err := client.CreatePreference(t.Context(), &entity.PreferenceInput{})
	require.ErrorIs(t, err, service.ErrGatewayUnavailable)
}
