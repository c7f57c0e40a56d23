package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSMTPSender_DialerSetup(t *testing.T) {
	t.Parallel()

	t.Run("port 465 enables implicit TLS", func(t *testing.T) {
		t.Parallel()

		s := NewSMTPSender(Config{SMTPHost: "smtp.example.com", SMTPPort: 465, From: "a@b.c", To: "d@e.f"})
		assert.True(t, s.dialer.SSL)
	})

	t.Run("default port stays plain", func(t *testing.T) {
		t.Parallel()

		s := NewSMTPSender(Config{SMTPHost: "smtp.example.com", SMTPPort: 25, From: "a@b.c", To: "d@e.f"})
		assert.False(t, s.dialer.SSL)
		assert.Equal(t, 25, s.dialer.Port)
	})

	t.Run("credentials attached only when both present", func(t *testing.T) {
		t.Parallel()

		s := NewSMTPSender(Config{SMTPHost: "h", SMTPPort: 25, SMTPUser: "user", SMTPPass: "pass"})
		assert.Equal(t, "user", s.dialer.Username)
		assert.Equal(t, "pass", s.dialer.Password)

		s = NewSMTPSender(Config{SMTPHost: "h", SMTPPort: 25, SMTPUser: "user"})
		assert.Empty(t, s.dialer.Username)
		assert.Empty(t, s.dialer.Password)
	})
}
