package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"padelpoint/config"
	"padelpoint/internal/domain/entity"
)

func TestNewProductCache_DisabledWithoutAddr(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cache := NewProductCache(CacheParams{
		Lc:     lc,
		Config: &config.Config{Cache: &config.CacheConfig{}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	_, ok := cache.(noopProductCache)
	require.True(t, ok)

	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, &entity.Product{ID: 1, Name: "Vertex"}))

	got, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
	require.NoError(t, cache.Invalidate(ctx, 1))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "product:42", key(42))
}
