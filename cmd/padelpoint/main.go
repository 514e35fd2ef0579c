package main

import (
	"context"
	"log/slog"
	"os"

	"padelpoint/config"
	"padelpoint/internal/delivery"
	"padelpoint/internal/delivery/api"
	"padelpoint/internal/delivery/api/middleware"
	"padelpoint/internal/delivery/api/router/handler"
	"padelpoint/internal/infra/auth"
	"padelpoint/internal/infra/auth/google"
	"padelpoint/internal/infra/cache"
	"padelpoint/internal/infra/imaging"
	logs "padelpoint/internal/infra/log"
	"padelpoint/internal/infra/mail"
	"padelpoint/internal/infra/metrics"
	"padelpoint/internal/infra/payment"
	"padelpoint/internal/infra/persistence/postgres"
	"padelpoint/internal/infra/pubsub"
	"padelpoint/internal/infra/search"
	"padelpoint/internal/infra/storage"
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
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRoleRepository,
			postgres.NewAddressRepository,
			postgres.NewCatalogRepository,
			postgres.NewProductRepository,
			postgres.NewImageRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
			cache.NewProductCache,
			search.NewProductIndex,
			imaging.NewThumbnailer,
			payment.NewMercadoPagoClient,
			storage.NewS3Storage,
			mail.NewMailer,
		),
		metrics.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewRoleService,
			impl.NewCatalogService,
			impl.NewAddressService,
			impl.NewProductService,
			impl.NewImageService,
			impl.NewPaymentService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthGuard,
			middleware.NewResetPasswordGuard,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewRoleHandler,
			handler.NewCatalogHandlers,
			handler.NewAddressHandler,
			handler.NewProductHandler,
			handler.NewImageHandler,
			handler.NewPaymentHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
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
