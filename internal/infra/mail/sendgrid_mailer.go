package mail

import (
	"context"
	"log/slog"

	"padelpoint/config"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendClient is satisfied by *sendgrid.Client.
type sendClient interface {
	SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error)
}

type sendGridMailer struct {
	client sendClient
	from   *sgmail.Email
	logger *slog.Logger
}

func NewSendGridMailer(cfg *config.MailConfig, logger *slog.Logger) service.Mailer {
	return &sendGridMailer{
		client: sendgrid.NewSendClient(cfg.APIKey),
		from:   sgmail.NewEmail(cfg.FromName, cfg.FromAddress),
		logger: logger,
	}
}

func (m *sendGridMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	if msg.To == "" {
		return errors.New("mail recipient is required")
	}

	to := sgmail.NewEmail(msg.ToName, msg.To)
	var email *sgmail.SGMailV3
	if msg.HTML == "" {
		email = sgmail.NewSingleEmailPlainText(m.from, msg.Subject, to, msg.Text)
	} else {
		email = sgmail.NewSingleEmail(m.from, msg.Subject, to, msg.Text, msg.HTML)
	}

	resp, err := m.client.SendWithContext(ctx, email)
	if err != nil {
		return errors.Wrap(err, "sendgrid request failed")
	}
	if resp.StatusCode >= 300 {
		return errors.Errorf("sendgrid rejected message with status %d: %s", resp.StatusCode, resp.Body)
	}

	m.logger.Info("[SendGrid] Mail sent",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.Int("status", resp.StatusCode),
	)

	return nil
}
