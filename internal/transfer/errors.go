package transfer

import "errors"

// ErrorCategory is the title shown with every validation error.
const ErrorCategory = "Major Error"

// Validation errors. The text is shown to the user as is.
var (
	ErrInvalidAmount         = errors.New("Token should be a valid number and cannot be negative or zero")
	ErrEmptyAmount           = errors.New("Please enter some amount")
	ErrNonPositiveAmount     = errors.New("Token can not be negative or zero")
	ErrInsufficientBalance   = errors.New("Amount should be less than current balance")
	ErrInsufficientAfterFees = errors.New("Insufficient funds after deducting fees")
	ErrUnknownFeeTier        = errors.New("Unknown network fee type")
)

var validationErrors = []error{
	ErrInvalidAmount,
	ErrEmptyAmount,
	ErrNonPositiveAmount,
	ErrInsufficientBalance,
	ErrInsufficientAfterFees,
	ErrUnknownFeeTier,
}

// IsValidationError reports whether err is a user-facing validation failure.
func IsValidationError(err error) bool {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
