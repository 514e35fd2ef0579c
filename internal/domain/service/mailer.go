package service

import "context"

// MailMessage is a single outbound email.
type MailMessage struct {
	To      string
	ToName  string
	Subject string
	HTML    string
	Text    string
}

type Mailer interface {
	Send(ctx context.Context, msg *MailMessage) error
}
