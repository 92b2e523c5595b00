// Package email implements the notification Mailer port over SMTP.
package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/stoyanovb/gradina-api/internal/application/notify"
	"github.com/stoyanovb/gradina-api/pkg/config"
	"github.com/stoyanovb/gradina-api/pkg/logger"
)

var _ notify.Mailer = (*GomailMailer)(nil)
var _ notify.Mailer = (*LogMailer)(nil)

// GomailMailer sends plain-text mail through an SMTP relay.
type GomailMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailMailer constructs the mailer from SMTP config.
func NewGomailMailer(cfg config.SMTPConfig) *GomailMailer {
	return &GomailMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// Send delivers one message. Called only from the notification worker;
// errors are logged there, never propagated to the state machines.
func (m *GomailMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain; charset=UTF-8", body)
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// LogMailer is the development fallback when no SMTP host is configured:
// it logs the message instead of sending it.
type LogMailer struct {
	log *logger.Logger
}

// NewLogMailer constructs the fallback mailer.
func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// Send logs the would-be message.
func (m *LogMailer) Send(to, subject, body string) error {
	m.log.Info().
		Str("to", to).
		Str("subject", subject).
		Msg("smtp disabled, notification logged only")
	return nil
}
