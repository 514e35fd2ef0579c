// Package mail delivers outbound email through SendGrid, or logs it when no provider is configured.
package mail

import (
	"context"
	"log/slog"

	"padelpoint/config"
	"padelpoint/internal/domain/constants"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"

	"go.uber.org/fx"
)

type MailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailer picks the delivery backend from the mail config section.
func NewMailer(params MailerParams) (service.Mailer, error) {
	cfg := params.Config.Mail

	switch cfg.Provider {
	case "":
		params.Logger.Info("Mail provider not configured, messages will only be logged")

		return &logMailer{logger: params.Logger}, nil
	case constants.MailProviderSendGrid:
		if cfg.APIKey == "" {
			return nil, errors.New("api key is required for sendgrid provider")
		}

		return NewSendGridMailer(cfg, params.Logger), nil
	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}
}

// logMailer writes the message envelope to the log instead of sending it.
type logMailer struct {
	logger *slog.Logger
}

func (m *logMailer) Send(_ context.Context, msg *service.MailMessage) error {
	m.logger.Info("[LogMailer] Mail not sent, no provider configured",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)

	return nil
}
