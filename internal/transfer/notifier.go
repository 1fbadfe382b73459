package transfer

import (
	"errors"

	"gitlab.com/avolkov/dau_transfer/internal/converter"
)

const (
	SuccessMessage = "Tokens send successfully!"
	FailureMessage = "Ops, something went wrong. Please try again."
)

// Notifier shows short-lived messages to the user.
type Notifier interface {
	NotifyError(message, category string) error
	NotifySuccess(message string) error
}

// Report tells the user how an operation ended. A nil err is a success.
func Report(n Notifier, err error) error {
	switch {
	case err == nil:
		return n.NotifySuccess(SuccessMessage)
	case IsValidationError(err):
		return n.NotifyError(err.Error(), ErrorCategory)
	case errors.Is(err, converter.ErrNotFinite), errors.Is(err, converter.ErrMalformedAmount):
		return n.NotifyError(ErrInvalidAmount.Error(), ErrorCategory)
	default:
		return n.NotifyError(FailureMessage, ErrorCategory)
	}
}
