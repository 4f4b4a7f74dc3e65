package email

import (
	"errors"
	"fmt"
)

// ErrDisabled is returned by Send when the client is switched off in config.
type ErrDisabled struct{}

func (ErrDisabled) Error() string { return "email is disabled" }

// ErrInvalidMessage reports a message or client setting that cannot be sent.
type ErrInvalidMessage struct{ Reason string }

func (e ErrInvalidMessage) Error() string { return "invalid email message: " + e.Reason }

// ErrSend wraps a transport failure from the SMTP relay.
type ErrSend struct {
	Provider string
	Err      error
}

func (e ErrSend) Error() string {
	return fmt.Sprintf("email send failed (%s): %v", e.Provider, e.Err)
}

func (e ErrSend) Unwrap() error { return e.Err }

// IsDisabled reports whether err came from a disabled client.
func IsDisabled(err error) bool {
	return errors.As(err, &ErrDisabled{})
}
