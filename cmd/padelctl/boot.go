package main

import (
	"log/slog"
	"os"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"padelpoint/config"
	"padelpoint/internal/errors"
	logs "padelpoint/internal/infra/log"
)

// app is what every command needs: config, a stderr logger and the database.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
}

func boot() (*app, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return nil, errors.Wrap(err, "create logger")
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, db: db}, nil
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	if dsnFlag != "" {
		db, err := gorm.Open(gormpostgres.Open(dsnFlag), &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return nil, errors.Wrap(err, "open postgres from --dsn")
		}

		return db, nil
	}

	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is missing, pass --dsn")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	db.TranslateError = true

	return db, nil
}

func (a *app) close() {
	sqlDB, err := a.db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		a.logger.Warn("Failed to close database", slog.Any("error", err))
	}
}
