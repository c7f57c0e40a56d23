package mailer

import "errors"

var (
	// ErrInvalidConfig indicates the provider configuration is unusable.
	ErrInvalidConfig = errors.New("invalid mailer config")
	// ErrSendFailed indicates the provider accepted the message but delivery failed.
	ErrSendFailed = errors.New("failed to send email")
)
