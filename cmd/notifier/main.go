package main

import (
	"context"
	"log/slog"
	"os"

	"padelpoint/config"
	"padelpoint/internal/delivery"
	"padelpoint/internal/delivery/worker"
	"padelpoint/internal/delivery/worker/handler"
	"padelpoint/internal/domain/constants"
	logs "padelpoint/internal/infra/log"
	"padelpoint/internal/infra/mail"
	"padelpoint/internal/infra/metrics"
	"padelpoint/internal/infra/persistence/postgres"
	"padelpoint/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(cfg),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewOrderRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			mail.NewMailer,
		),
		metrics.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

// injectDelivery always serves the push endpoint and adds a topic consumer when events go through Kafka.
func injectDelivery(cfg *config.Config) fx.Option {
	deliveries := []any{
		fx.Annotate(
			worker.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	}
	if cfg.PubSub != nil && cfg.PubSub.Provider == constants.PubSubProviderKafka {
		deliveries = append(deliveries, fx.Annotate(
			worker.NewKafkaConsumer,
			fx.ResultTags(`group:"deliveries"`),
		))
	}

	return fx.Options(
		fx.Provide(deliveries...),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
