package mailer

import (
	"context"
	"errors"

	"gopkg.in/gomail.v2"
)

// smtpImplicitTLSPort is the conventional SMTPS port requiring implicit TLS.
const smtpImplicitTLSPort = 465

// SMTPSender delivers mail through a plain SMTP relay.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender builds an SMTP sender from configuration. Credentials are
// attached only when both username and password are present; port 465
// switches the dialer to implicit TLS.
func NewSMTPSender(cfg Config) *SMTPSender {
	d := &gomail.Dialer{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
	}
	if cfg.SMTPUser != "" && cfg.SMTPPass != "" {
		d.Username = cfg.SMTPUser
		d.Password = cfg.SMTPPass
	}
	if cfg.SMTPPort == smtpImplicitTLSPort {
		d.SSL = true
	}
	return &SMTPSender{dialer: d, from: cfg.From}
}

// Send delivers msg, honoring context cancellation between dial and send.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}
