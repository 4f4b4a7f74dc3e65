package notification

import "errors"

var (
	ErrNoRecipients = errors.New("no notification recipients configured")
	ErrUnknownEvent = errors.New("unknown notification event")
	ErrSinkPanic    = errors.New("notification sink panicked")
)
