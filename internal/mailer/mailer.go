package mailer

import (
	"context"
	"fmt"
	"log/slog"
)

// Message is a single outbound email with both plain-text and HTML bodies.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers a single message through a concrete provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender picks a provider for the given configuration:
// a dev directory routes mail to disk, a Postmark token selects the Postmark
// API, a complete SMTP configuration selects SMTP, and anything less returns
// the Disabled sender without constructing any transport.
func NewSender(cfg Config, log *slog.Logger) Sender {
	switch {
	case cfg.DevDir != "":
		return NewDevSender(cfg.DevDir)
	case cfg.enabled() && cfg.PostmarkServerToken != "":
		return NewPostmarkSender(cfg)
	case cfg.enabled() && cfg.SMTPHost != "":
		return NewSMTPSender(cfg)
	default:
		return Disabled{log: log}
	}
}

// Disabled is the no-op sender used when email is not configured.
// It logs the skip so operators can tell notifications are off.
type Disabled struct {
	log *slog.Logger
}

func (d Disabled) Send(_ context.Context, msg Message) error {
	d.log.Info("email notifications not configured, skipping", "subject", msg.Subject)
	return nil
}

// Notifier composes and dispatches page-created notifications.
type Notifier struct {
	sender Sender
	to     string
	log    *slog.Logger
}

// NewNotifier builds a Notifier from configuration.
func NewNotifier(cfg Config, log *slog.Logger) *Notifier {
	return &Notifier{sender: NewSender(cfg, log), to: cfg.To, log: log}
}

// NewNotifierWithSender builds a Notifier around an existing Sender.
func NewNotifierWithSender(sender Sender, to string, log *slog.Logger) *Notifier {
	return &Notifier{sender: sender, to: to, log: log}
}

// PageCreated sends a notification that a page was published at pageURL.
// It never returns an error: delivery failures are logged and discarded, so
// a broken relay cannot affect the request that created the page.
func (n *Notifier) PageCreated(ctx context.Context, pageURL, title string) {
	msg := Message{
		To:      n.to,
		Subject: fmt.Sprintf("New page created: %s", title),
		Text:    fmt.Sprintf("A new page %q is available at %s", title, pageURL),
		HTML: fmt.Sprintf(`<p>A new page <strong>%s</strong> is available at <a href="%s">%s</a></p>`,
			title, pageURL, pageURL),
	}

	if err := n.sender.Send(ctx, msg); err != nil {
		n.log.Error("failed to send page notification", "url", pageURL, "error", err)
		return
	}
	n.log.Info("page notification sent", "url", pageURL, "to", n.to)
}
