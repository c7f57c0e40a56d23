package mailer

// Config holds notification configuration. All fields are optional: an empty
// SMTP host, sender address, or recipient address disables email entirely,
// which supports development environments without an SMTP relay.
type Config struct {
	SMTPHost string `env:"SMTP_HOST"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"25"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`

	From string `env:"MAIL_FROM"`
	To   string `env:"MAIL_TO"`

	// Postmark is preferred over SMTP when a server token is present.
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	// DevDir, when set, routes all mail to files in that directory.
	DevDir string `env:"MAIL_DEV_DIR"`
}

// enabled reports whether the config carries enough to address a message at
// all: a sender and a recipient.
func (c Config) enabled() bool {
	return c.From != "" && c.To != ""
}
