package trim

import "errors"

// Sentinel errors for trim operations.
var (
	// ErrInvalidArgument indicates Trim was called with an argument it cannot use.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidOptions indicates an options document could not be decoded.
	ErrInvalidOptions = errors.New("invalid options")
)

const (
	msgText      = "first argument must be a string"
	msgMaxLength = "second argument must be a non-negative integer"
)

// ArgumentError describes a rejected argument.
type ArgumentError struct {
	Position int    // 1-based argument position
	Name     string // Argument name ("text", "maxLength")
	Reason   string // Human readable message
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return e.Reason
}

// Unwrap returns ErrInvalidArgument for errors.Is support.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func errTextNotString() *ArgumentError {
	return &ArgumentError{Position: 1, Name: "text", Reason: msgText}
}

func errMaxLength() *ArgumentError {
	return &ArgumentError{Position: 2, Name: "maxLength", Reason: msgMaxLength}
}

// IsInvalidArgument reports whether err was caused by a rejected argument.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
