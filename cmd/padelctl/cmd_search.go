package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"padelpoint/internal/domain/entity"
	"padelpoint/internal/errors"
	"padelpoint/internal/infra/persistence/postgres"
	"padelpoint/internal/infra/search"
	"padelpoint/internal/util"
)

// padelctl reindex-products
var reindexProductsCmd = &cobra.Command{
	Use:   "reindex-products",
	Short: "Push every active product to the search index",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot()
		if err != nil {
			return err
		}
		defer a.close()
		started := time.Now()

		index, err := search.NewProductIndex(a.cfg, a.logger)
		if err != nil {
			return err
		}

		products, err := postgres.NewProductRepository(a.db).List(cmd.Context(), entity.ProductFilter{IsActive: true})
		if err != nil {
			return err
		}

		var failed int
		for _, product := range products {
			if err := index.Index(cmd.Context(), product); err != nil {
				failed++
				a.logger.Error("Failed to index product", slog.Int64("product_id", product.ID), slog.Any("error", err))
			}
		}
		a.logger.Info("Reindex finished",
			slog.Int("indexed", len(products)-failed),
			slog.Int("failed", failed),
			slog.String("took", util.FormatDuration(time.Since(started))),
		)

		if failed > 0 {
			return errors.Errorf("%d of %d products failed to index", failed, len(products))
		}

		return nil
	},
}
