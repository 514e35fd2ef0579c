package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padelpoint/config"
)

func testConfig(level string, pretty bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "develop"
	cfg.Env.ServiceName = "padelpoint"
	cfg.Env.Log.Level = level
	cfg.Env.Log.Pretty = pretty

	return cfg
}

func TestNewWithWriter_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := NewWithWriter(testConfig("info", false), buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("order created", slog.Int64("order_id", 7))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "order created", line["msg"])
	assert.Equal(t, "padelpoint", line["service"])
	assert.Equal(t, "develop", line["env"])
	assert.InDelta(t, 7, line["order_id"], 0)
}

func TestNewWithWriter_Pretty(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := NewWithWriter(testConfig("warn", true), buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("slow gateway")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=\"slow gateway\"")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "DEBUG", want: slog.LevelDebug},
		{in: "", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
