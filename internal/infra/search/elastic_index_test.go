package search

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padelpoint/config"
	"padelpoint/internal/domain/entity"
)

type recordedRequest struct {
	method string
	path   string
	body   map[string]any
}

func newTestIndex(t *testing.T, status int, response string) (*elasticIndex, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{method: r.Method, path: r.URL.Path}
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.body)
		}
		requests = append(requests, rec)

		// The client refuses servers that do not identify as Elasticsearch.
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	index, err := NewProductIndex(&config.Config{Search: &config.SearchConfig{
		Elasticsearch: config.ElasticsearchConfig{Addresses: []string{srv.URL}, Index: "products-test"},
	}}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	es, ok := index.(*elasticIndex)
	require.True(t, ok)

	return es, &requests
}

func TestElasticIndex_Search(t *testing.T) {
	index, requests := newTestIndex(t, http.StatusOK, `{
		"hits": {
			"total": {"value": 1},
			"hits": [{"_source": {"id": 3, "name": "Bullpadel Vertex", "brand": "Bullpadel", "price": 250, "stock": 4}}]
		}
	}`)

	result, err := index.Search(context.Background(), "vertex", 0, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Products, 1)
	assert.Equal(t, int64(3), result.Products[0].ID)
	assert.Equal(t, "Bullpadel", result.Products[0].Brand.Name)

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, "/products-test/_search", req.path)
	match := req.body["query"].(map[string]any)["multi_match"].(map[string]any)
	assert.Equal(t, "vertex", match["query"])
	assert.Equal(t, "AUTO", match["fuzziness"])
	assert.InDelta(t, 10, req.body["size"], 0)
}

func TestElasticIndex_IndexDocument(t *testing.T) {
	index, requests := newTestIndex(t, http.StatusCreated, `{"result":"created"}`)

	err := index.Index(context.Background(), &entity.Product{
		ID:    9,
		Name:  "Nox AT10",
		Price: 300,
		Brand: &entity.CatalogItem{ID: 1, Name: "Nox"},
	})
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "/products-test/_doc/9", req.path)
	assert.Equal(t, "Nox", req.body["brand"])
}

func TestElasticIndex_RemoveMissingIsNotAnError(t *testing.T) {
	index, _ := newTestIndex(t, http.StatusNotFound, `{"result":"not_found"}`)

	require.NoError(t, index.Remove(context.Background(), 5))
}

func TestElasticIndex_SearchError(t *testing.T) {
	index, _ := newTestIndex(t, http.StatusBadRequest, `{"error":"parsing_exception"}`)

	_, err := index.Search(context.Background(), "x", 0, 10)
	require.ErrorContains(t, err, "parsing_exception")
}

func TestNewProductIndex_DisabledWithoutAddresses(t *testing.T) {
	index, err := NewProductIndex(&config.Config{Search: &config.SearchConfig{}}, slog.Default())
	require.NoError(t, err)

	result, err := index.Search(context.Background(), "anything", 0, 10)
	require.NoError(t, err)
	assert.Zero(t, result.Total)
	assert.Empty(t, result.Products)
}
