// Package mail sends RFP emails over SMTP and retrieves vendor replies
// over IMAP. Both directions are thin, synchronous wrappers; failures
// surface as TransportError and are never retried here.
package mail

import (
	"context"

	"procurement/internal/apperr"
	"procurement/internal/config"

	gomail "github.com/wneessen/go-mail"
)

// Sender delivers single plain-text messages over authenticated SMTP.
type Sender struct {
	cfg config.SMTPConfig
}

func NewSender(cfg config.SMTPConfig) *Sender {
	return &Sender{cfg: cfg}
}

// Send delivers one plain-text message to one recipient.
func (s *Sender) Send(ctx context.Context, recipient, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return apperr.NewTransportError("invalid from address %q: %v", s.cfg.From, err)
	}
	if err := msg.To(recipient); err != nil {
		return apperr.NewTransportError("invalid recipient address %q: %v", recipient, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	client, err := gomail.NewClient(s.cfg.Host,
		gomail.WithPort(s.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.Username),
		gomail.WithPassword(s.cfg.Password),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return apperr.NewTransportError("failed to create SMTP client: %v", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return apperr.NewTransportError("failed to send email: %v", err)
	}
	return nil
}
