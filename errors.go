package dossier

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnknownClass indicates an envelope names a class with no registry entry.
	ErrUnknownClass = errors.New("unknown class")

	// ErrInvalidEnvelope indicates a record is not a {class, data} envelope.
	ErrInvalidEnvelope = errors.New("invalid envelope")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrMissingField indicates a loader's payload lacks a required field.
	ErrMissingField = errors.New("missing field")

	// ErrFieldType indicates a payload field holds a value of the wrong type.
	ErrFieldType = errors.New("invalid field type")

	// ErrEmptyClassName indicates an attempt to register an empty class name.
	ErrEmptyClassName = errors.New("empty class name")

	// ErrNilLoader indicates an attempt to register a nil loader.
	ErrNilLoader = errors.New("nil loader")

	// ErrRegistrySealed indicates an attempt to register into a sealed registry.
	ErrRegistrySealed = errors.New("registry sealed")
)

// UnknownClassError reports a class name that could not be resolved.
// It names the offending class and the family being resolved.
type UnknownClassError struct {
	Family Family // Family whose registry was consulted
	Class  string // Class name taken from the envelope
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("invalid %s class %q: failed to load", e.Family, e.Class)
}

func (e *UnknownClassError) Unwrap() error {
	return ErrUnknownClass
}

// EnvelopeError represents a malformed envelope.
type EnvelopeError struct {
	Field  string // Envelope key at fault ("class" or "data")
	Reason string // What was wrong with it
}

func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidEnvelope.Error(), e.Field, e.Reason)
}

func (e *EnvelopeError) Unwrap() error {
	return ErrInvalidEnvelope
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err         error  // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	ContentType string // Content type of the codec that failed
	Cause       error  // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Err.Error(), e.ContentType, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.ContentType)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// FieldError represents a payload field a loader could not read.
type FieldError struct {
	Err   error  // Underlying sentinel error (ErrMissingField, ErrFieldType)
	Field string // Payload key
	Want  string // Expected kind of value, empty for missing fields
	Got   any    // Value found, nil for missing fields
}

func (e *FieldError) Error() string {
	if e.Want != "" {
		return fmt.Sprintf("%s %q: want %s, got %T", e.Err.Error(), e.Field, e.Want, e.Got)
	}
	return fmt.Sprintf("%s %q", e.Err.Error(), e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// newUnknownClassError creates an UnknownClassError for a failed lookup.
func newUnknownClassError(family Family, class string) error {
	return &UnknownClassError{
		Family: family,
		Class:  class,
	}
}

// newEnvelopeError creates an EnvelopeError for a malformed envelope key.
func newEnvelopeError(field, reason string) error {
	return &EnvelopeError{
		Field:  field,
		Reason: reason,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, contentType string, cause error) error {
	return &CodecError{
		Err:         sentinel,
		ContentType: contentType,
		Cause:       cause,
	}
}

// missingField creates a FieldError for an absent payload key.
func missingField(field string) error {
	return &FieldError{
		Err:   ErrMissingField,
		Field: field,
	}
}

// wrongType creates a FieldError for a payload value of the wrong kind.
func wrongType(field, want string, got any) error {
	return &FieldError{
		Err:   ErrFieldType,
		Field: field,
		Want:  want,
		Got:   got,
	}
}
