// Package error defines domain-specific errors for the Finance Dashboard application.
package error

import "errors"

// Credit card domain errors.
var (
	// ErrCardNotFound is returned when a credit card is not found in the system.
	ErrCardNotFound = errors.New("card not found")

	// ErrNotAuthorizedToModifyCard is returned when user is not authorized to modify a card.
	ErrNotAuthorizedToModifyCard = errors.New("not authorized to modify card")

	// ErrInvalidClosingDay is returned when the closing day is outside 1-31.
	ErrInvalidClosingDay = errors.New("closing day must be between 1 and 31")

	// ErrInvalidDueDay is returned when the due day is outside 1-31.
	ErrInvalidDueDay = errors.New("due day must be between 1 and 31")

	// ErrInvalidCardLimit is returned when the card limit is not positive.
	ErrInvalidCardLimit = errors.New("card limit must be positive")

	// ErrCardHasTransactions is returned when deleting a card that still has
	// transactions referencing it.
	ErrCardHasTransactions = errors.New("card has transactions and cannot be deleted")
)

// CardErrorCode defines error codes for credit card errors.
// Format: CARD-XXYYYY where XX is category and YYYY is specific error.
type CardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCardNotFound        CardErrorCode = "CARD-010001"
	ErrCodeNotAuthorizedCard   CardErrorCode = "CARD-010002"
	ErrCodeCardHasTransactions CardErrorCode = "CARD-010003"
	ErrCodeInvalidClosingDay   CardErrorCode = "CARD-010004"
	ErrCodeInvalidDueDay       CardErrorCode = "CARD-010005"
	ErrCodeInvalidCardLimit    CardErrorCode = "CARD-010006"
)

// CardError represents a credit card error with code and message.
type CardError struct {
	Code    CardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CardError) Unwrap() error {
	return e.Err
}

// NewCardError creates a new CardError with the given code and message.
func NewCardError(code CardErrorCode, message string, err error) *CardError {
	return &CardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
