package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bloomshine/storefront/internal/config"
	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// SMTPSender delivers messages through an authenticated SMTP relay.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
	log    *slog.Logger
}

// NewSMTPSender creates a sender for the configured relay
func NewSMTPSender(cfg config.MailConfig, log *slog.Logger) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
		from:   cfg.Username,
		log:    log,
	}
}

// Send delivers one message. The dial blocks until the relay accepts the
// message or the connection fails; gomail has no context support, so
// cancellation is only observed before dialing.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", fmt.Sprintf("<%s@bloomshine.store>", uuid.NewString()))
	m.SetBody("text/html", msg.HTMLBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp relay rejected message: %w", err)
	}

	s.log.Debug("message accepted by relay", "subject", msg.Subject)
	return nil
}
