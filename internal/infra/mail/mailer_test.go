package mail

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/sendgrid/rest"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padelpoint/config"
	"padelpoint/internal/domain/constants"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
)

type fakeSendClient struct {
	sent     []*sgmail.SGMailV3
	response *rest.Response
	err      error
}

func (c *fakeSendClient) SendWithContext(_ context.Context, email *sgmail.SGMailV3) (*rest.Response, error) {
	c.sent = append(c.sent, email)

	return c.response, c.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSendGridMailer_Send(t *testing.T) {
	client := &fakeSendClient{response: &rest.Response{StatusCode: http.StatusAccepted}}
	mailer := &sendGridMailer{client: client, from: sgmail.NewEmail("Padel Point", "no-reply@padel.test"), logger: testLogger()}

	err := mailer.Send(context.Background(), &service.MailMessage{
		To:      "admin@padel.test",
		Subject: "Padel point - Nueva orden de pago",
		HTML:    "<p>order</p>",
		Text:    "order",
	})
	require.NoError(t, err)
	require.Len(t, client.sent, 1)

	email := client.sent[0]
	assert.Equal(t, "Padel point - Nueva orden de pago", email.Subject)
	assert.Equal(t, "no-reply@padel.test", email.From.Address)
	require.Len(t, email.Personalizations, 1)
	assert.Equal(t, "admin@padel.test", email.Personalizations[0].To[0].Address)
}

func TestSendGridMailer_Failures(t *testing.T) {
	t.Run("rejected by api", func(t *testing.T) {
		client := &fakeSendClient{response: &rest.Response{StatusCode: http.StatusUnauthorized, Body: "bad key"}}
		mailer := &sendGridMailer{client: client, from: sgmail.NewEmail("", "no-reply@padel.test"), logger: testLogger()}

		err := mailer.Send(context.Background(), &service.MailMessage{To: "a@padel.test"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("transport error", func(t *testing.T) {
		client := &fakeSendClient{err: errors.New("dial tcp: timeout")}
		mailer := &sendGridMailer{client: client, from: sgmail.NewEmail("", "no-reply@padel.test"), logger: testLogger()}

		err := mailer.Send(context.Background(), &service.MailMessage{To: "a@padel.test"})
		require.ErrorContains(t, err, "sendgrid request failed")
	})

	t.Run("missing recipient", func(t *testing.T) {
		mailer := &sendGridMailer{client: &fakeSendClient{}, logger: testLogger()}

		require.Error(t, mailer.Send(context.Background(), &service.MailMessage{}))
	})
}

func TestNewMailer(t *testing.T) {
	mailer, err := NewMailer(MailerParams{Config: &config.Config{Mail: &config.MailConfig{}}, Logger: testLogger()})
	require.NoError(t, err)
	require.NoError(t, mailer.Send(context.Background(), &service.MailMessage{To: "a@padel.test"}))

	_, err = NewMailer(MailerParams{Config: &config.Config{Mail: &config.MailConfig{Provider: constants.MailProviderSendGrid}}, Logger: testLogger()})
	require.Error(t, err)

	_, err = NewMailer(MailerParams{Config: &config.Config{Mail: &config.MailConfig{Provider: "postmark"}}, Logger: testLogger()})
	require.Error(t, err)
}
