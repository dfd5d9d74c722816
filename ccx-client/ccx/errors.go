package ccx

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrHostRequired is returned by New for an empty host.
	ErrHostRequired = errors.New("host required")
	// ErrInvalidHost is returned by New when host has no http(s) scheme.
	ErrInvalidHost = errors.New("host must begin with http(s)://")
)

const (
	reasonNonNegative = "must be a non-negative integer"
	reasonHex         = "must be a hexadecimal string"
	reasonHex64       = "must be a 64-digit hexadecimal string"
	reasonAddress     = "must be a 98-character string beginning with `ccx`"
	reasonRawAmount   = "must be a non-negative raw amount"
	reasonRequired    = "is required"
	reasonTransfers   = "must be a non-empty array of transfers each of which must be " +
		"{address: 98-character string beginning with `ccx`, amount: non-negative raw amount, message: optional string}"
	reasonAddresses = "must be an array of addresses each of which " + reasonAddress
	reasonTxs       = "must be a non-empty array of transaction hashes each of which " + reasonHex64
)

// ValidationError reports an argument rejected before any request was sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, reason string) error {
	return &ValidationError{
		Field:   field,
		Message: field + " " + reason,
	}
}

func outOfRange(field string, min, max int64) error {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%d <= %s <= %d", min, field, max),
	}
}

// IsValidationError reports whether err was raised by argument validation.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
