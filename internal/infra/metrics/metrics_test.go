package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_OrderCounters(t *testing.T) {
	m := New()

	m.OrderCreated("MP_TRANSFER", 12_100)
	m.OrderCreated("MP_TRANSFER", 500)
	m.OrderRejected("insufficient_stock")

	assert.InDelta(t, 2, testutil.ToFloat64(m.ordersCreated.WithLabelValues("MP_TRANSFER")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ordersRejected.WithLabelValues("insufficient_stock")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.orderAmount))
}

func TestMetrics_RequestObservations(t *testing.T) {
	m := New()

	m.RequestStarted()
	assert.InDelta(t, 1, testutil.ToFloat64(m.requestInFlight), 0)
	m.ObserveRequest(http.MethodGet, "/products/:id", http.StatusOK, 25*time.Millisecond)
	m.RequestFinished()

	assert.InDelta(t, 0, testutil.ToFloat64(m.requestInFlight), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.requestTotal.WithLabelValues("GET", "/products/:id", "200")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.CacheLookup(true)
	m.CacheLookup(false)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `padelpoint_cache_lookups_total{result="hit"} 1`))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
