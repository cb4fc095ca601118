package qbittorrent

import (
	"errors"
	"fmt"
)

// Error type constants
const (
	ErrorTypeTransport = "TRANSPORT"
	ErrorTypeDecode    = "DECODE"
)

// Error is returned by every Client call. Type tells a network or status
// failure apart from a response that does not match the expected schema.
type Error struct {
	Type    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewTransportError creates an error for a request that never produced a usable response.
func NewTransportError(message string, cause error) *Error {
	return &Error{Type: ErrorTypeTransport, Message: message, Cause: cause}
}

// NewDecodeError creates an error for a response body that does not fit the schema.
func NewDecodeError(message string, cause error) *Error {
	return &Error{Type: ErrorTypeDecode, Message: message, Cause: cause}
}

// IsTransport reports whether err is a transport failure.
func IsTransport(err error) bool {
	return hasType(err, ErrorTypeTransport)
}

// IsDecode reports whether err is a decode failure.
func IsDecode(err error) bool {
	return hasType(err, ErrorTypeDecode)
}

func hasType(err error, errorType string) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == errorType
}
