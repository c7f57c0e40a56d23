// Package mailer provides best-effort email notification for created pages.
//
// The package is built around the Sender interface so providers can be
// swapped without changing application code:
//   - SMTPSender delivers through a plain SMTP relay (implicit TLS on 465)
//   - PostmarkSender delivers through Postmark's transactional API
//   - DevSender saves messages to disk for local development
//   - Disabled logs and skips when the service is not configured for email
//
// Incomplete configuration is a supported state, not an error: without an
// SMTP host, sender address, or recipient address the notifier degrades to
// the Disabled sender and the rest of the service is unaffected.
//
// Notifier is the application-facing entry point. Its PageCreated method
// never returns an error; delivery outcomes are logged and otherwise
// discarded, matching the fire-and-forget contract of page creation.
package mailer
