// Package apperr defines the client-visible error taxonomy of the
// procurement pipeline. Every boundary converts failures into one of
// these types; none of them is retried automatically.
package apperr

import (
	"errors"
	"fmt"
)

// GenerationError means a language-model reply could not be parsed into
// the expected JSON object.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError wraps an error as a GenerationError.
func NewGenerationError(format string, args ...any) error {
	return &GenerationError{Err: fmt.Errorf(format, args...)}
}

// IsGeneration reports whether err is a GenerationError.
func IsGeneration(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}

// NotFoundError means a referenced RFP, vendor or proposal does not exist.
type NotFoundError struct {
	Err error
}

func (e *NotFoundError) Error() string {
	return e.Err.Error()
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// NewNotFoundError wraps an error as a NotFoundError.
func NewNotFoundError(format string, args ...any) error {
	return &NotFoundError{Err: fmt.Errorf(format, args...)}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// TransportError means a mail send or receive failed.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError wraps an error as a TransportError.
func NewTransportError(format string, args ...any) error {
	return &TransportError{Err: fmt.Errorf(format, args...)}
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// ValidationError means a required request field is missing or invalid.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError wraps an error as a ValidationError.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Err: fmt.Errorf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
