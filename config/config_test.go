package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsEmptyConfig(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTTL)
	assert.Equal(t, 2*time.Hour, cfg.Auth.RefreshTTL)
	assert.Equal(t, 5*time.Minute, cfg.Auth.PasswordResetTTL)
	assert.Equal(t, 2*time.Minute, cfg.Auth.ResetCodeTTL)

	assert.Equal(t, int64(12345), cfg.Payment.SentinelPaymentID)
	assert.Equal(t, "https://api.mercadopago.com", cfg.Payment.BaseURL)
	assert.InDelta(t, 0.21, cfg.Order.DefaultIVA, 1e-9)
	assert.Equal(t, int64(5<<20), cfg.Images.MaxUploadSize)
	assert.Equal(t, "products", cfg.Search.Elasticsearch.Index)
	assert.Equal(t, "padelpoint-notifier", cfg.PubSub.Kafka.GroupID)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "2MB", cfg.HTTP.MaxRequestBodySize)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{AccessTTL: 30 * time.Minute, BcryptCost: 12},
		Payment: &PaymentConfig{SentinelPaymentID: 1},
		Order:   &OrderConfig{DefaultIVA: 0.105},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTTL)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, int64(1), cfg.Payment.SentinelPaymentID)
	assert.InDelta(t, 0.105, cfg.Order.DefaultIVA, 1e-9)
}
