// Package search keeps the product catalog in an Elasticsearch index for full-text queries.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"padelpoint/config"
	"padelpoint/internal/domain/entity"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"

	"github.com/elastic/go-elasticsearch/v9"
)

const defaultIndex = "products"

// productDocument is the indexed shape of a product.
type productDocument struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Brand       string    `json:"brand,omitempty"`
	Type        string    `json:"type,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Image       string    `json:"image,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toDocument(product *entity.Product) productDocument {
	doc := productDocument{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		Image:       product.Image,
		UpdatedAt:   product.UpdatedAt,
	}
	if product.Brand != nil {
		doc.Brand = product.Brand.Name
	}
	if product.Type != nil {
		doc.Type = product.Type.Name
	}

	return doc
}

func (d productDocument) toProduct() *entity.Product {
	product := &entity.Product{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Stock:       d.Stock,
		Image:       d.Image,
		IsActive:    true,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.Brand != "" {
		product.Brand = &entity.CatalogItem{Name: d.Brand}
	}
	if d.Type != "" {
		product.Type = &entity.CatalogItem{Name: d.Type}
	}

	return product
}

type elasticIndex struct {
	client *elasticsearch.Client
	index  string
	logger *slog.Logger
}

// NewProductIndex returns an Elasticsearch index, or one that finds nothing when no address is configured.
func NewProductIndex(cfg *config.Config, logger *slog.Logger) (service.ProductIndex, error) {
	esCfg := cfg.Search.Elasticsearch
	if len(esCfg.Addresses) == 0 {
		logger.Info("Elasticsearch not configured, product search disabled")

		return noopIndex{}, nil
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: esCfg.Addresses,
		Username:  esCfg.Username,
		Password:  esCfg.Password,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create elasticsearch client")
	}

	index := esCfg.Index
	if index == "" {
		index = defaultIndex
	}

	return &elasticIndex{client: client, index: index, logger: logger}, nil
}

func (e *elasticIndex) Index(ctx context.Context, product *entity.Product) error {
	body, err := json.Marshal(toDocument(product))
	if err != nil {
		return errors.WithStack(err)
	}

	res, err := e.client.Index(
		e.index,
		bytes.NewReader(body),
		e.client.Index.WithContext(ctx),
		e.client.Index.WithDocumentID(strconv.FormatInt(product.ID, 10)),
	)
	if err != nil {
		return errors.Wrap(err, "index product")
	}
	defer res.Body.Close()

	if res.IsError() {
		return errors.Errorf("index product %d: %s", product.ID, responseError(res.Body, res.Status()))
	}

	return nil
}

func (e *elasticIndex) Remove(ctx context.Context, productID int64) error {
	res, err := e.client.Delete(
		e.index,
		strconv.FormatInt(productID, 10),
		e.client.Delete.WithContext(ctx),
	)
	if err != nil {
		return errors.Wrap(err, "remove product")
	}
	defer res.Body.Close()

	// Never indexed is as good as removed.
	if res.StatusCode == http.StatusNotFound {
		return nil
	}
	if res.IsError() {
		return errors.Errorf("remove product %d: %s", productID, responseError(res.Body, res.Status()))
	}

	return nil
}

func (e *elasticIndex) Search(ctx context.Context, query string, from, size int) (*service.ProductSearchResult, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"name^2", "description", "brand"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, errors.WithStack(err)
	}

	res, err := e.client.Search(
		e.client.Search.WithContext(ctx),
		e.client.Search.WithIndex(e.index),
		e.client.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, errors.Wrap(err, "search products")
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.Errorf("search products: %s", responseError(res.Body, res.Status()))
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source productDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, errors.Wrap(err, "decode search response")
	}

	products := make([]*entity.Product, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		products = append(products, hit.Source.toProduct())
	}

	return &service.ProductSearchResult{Total: r.Hits.Total.Value, Products: products}, nil
}

func responseError(body io.Reader, status string) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 1024))
	if len(raw) == 0 {
		return status
	}

	return status + " " + string(raw)
}

type noopIndex struct{}

func (noopIndex) Index(context.Context, *entity.Product) error { return nil }

func (noopIndex) Remove(context.Context, int64) error { return nil }

func (noopIndex) Search(context.Context, string, int, int) (*service.ProductSearchResult, error) {
	return &service.ProductSearchResult{Products: []*entity.Product{}}, nil
}
