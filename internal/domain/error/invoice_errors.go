// Package error defines domain-specific errors for the Finance Dashboard application.
package error

import "errors"

// Invoice domain errors.
var (
	// ErrInvalidInvoicePeriod is returned when the invoice period is malformed.
	ErrInvalidInvoicePeriod = errors.New("invalid invoice period")
)

// InvoiceErrorCode defines error codes for invoice errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InvoiceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidInvoicePeriod InvoiceErrorCode = "INV-010001"

	// Rate limiting (02XXXX)
	ErrCodeRateLimited InvoiceErrorCode = "INV-020001"
)

// InvoiceError represents an invoice error with code and message.
type InvoiceError struct {
	Code    InvoiceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvoiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InvoiceError) Unwrap() error {
	return e.Err
}

// NewInvoiceError creates a new InvoiceError with the given code and message.
func NewInvoiceError(code InvoiceErrorCode, message string, err error) *InvoiceError {
	return &InvoiceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
