package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"padelpoint/config"
	"padelpoint/internal/domain/repository"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
	"padelpoint/internal/usecase"
)

const orderMailSubject = "Padel point - Nueva orden de pago"

// ErrInvalidOrderEvent is returned for events that can never be processed.
var ErrInvalidOrderEvent = errors.New("order created event has no order id")

type notificationService struct {
	orderRepo    repository.OrderRepository
	mailer       service.Mailer
	adminAddress string
	logger       *slog.Logger
}

type NotificationServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Mailer    service.Mailer
	Config    *config.Config
	Logger    *slog.Logger
}

// NewNotificationService creates the admin order notifier.
func NewNotificationService(params NotificationServiceParams) usecase.OrderNotificationUsecase {
	return &notificationService{
		orderRepo:    params.OrderRepo,
		mailer:       params.Mailer,
		adminAddress: params.Config.Mail.AdminAddress,
		logger:       params.Logger,
	}
}

// NotifyOrderCreated emails the order summary to the admin. Store and mail failures are retryable;
// a deleted order or a malformed event is not.
func (srv *notificationService) NotifyOrderCreated(ctx context.Context, event *service.OrderCreatedEvent) error {
	if event == nil || event.OrderID <= 0 {
		return ErrInvalidOrderEvent
	}

	logger := loggerFor(ctx, srv.logger).With(slog.Int64("order_id", event.OrderID))

	if srv.adminAddress == "" {
		logger.Warn("No admin address configured, skipping order mail")

		return nil
	}

	order, err := srv.orderRepo.FindByID(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			logger.Warn("Order no longer exists, skipping notification")

			return nil
		}

		return usecase.NewRetryableError(errors.Wrap(err, "load order"))
	}

	html, text, err := renderOrder(order)
	if err != nil {
		return errors.Wrap(err, "render order mail")
	}

	err = srv.mailer.Send(ctx, &service.MailMessage{
		To:      srv.adminAddress,
		Subject: orderMailSubject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		return usecase.NewRetryableError(errors.Wrap(err, "send order mail"))
	}

	logger.Info("Order mail sent to admin")

	return nil
}
