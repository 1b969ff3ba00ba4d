package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is returned when a raw field value fails its type's rule.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrDuplicate is returned when an add or replace would put two entities
// with the same normalized name into one list.
// Handlers should map this to HTTP 409.
var ErrDuplicate = errors.New("duplicate")

// ErrNotFound is returned when the target entity is not in its list.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrInvalidIndex is returned when a well-formed index is outside the
// currently visible view.
var ErrInvalidIndex = errors.New("invalid index")

// ErrInvalidIndexFormat is returned when an index string is not a positive
// integer. It is raised before any list is touched.
var ErrInvalidIndexFormat = errors.New("invalid index format")

// ErrPersistence is returned by storage when a snapshot cannot be read,
// decoded, or written.
var ErrPersistence = errors.New("persistence error")

// FieldKind names the validated field a ValidationError refers to.
type FieldKind string

const (
	FieldName         FieldKind = "name"
	FieldPhone        FieldKind = "phone"
	FieldEmail        FieldKind = "email"
	FieldAddress      FieldKind = "address"
	FieldDescription  FieldKind = "description"
	FieldLocation     FieldKind = "location"
	FieldOpeningHours FieldKind = "opening_hours"
	FieldPriceRange   FieldKind = "price_range"
	FieldRating       FieldKind = "rating"
	FieldTag          FieldKind = "tag"
	FieldDate         FieldKind = "date"
	FieldTimeOfDay    FieldKind = "time"
	FieldDays         FieldKind = "days"
)

// ValidationError reports a field value rejected by its type.
// Message is the fixed constraint text for that type.
type ValidationError struct {
	Field   FieldKind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Error is a core failure carrying one of the sentinel kinds above and a
// fixed message meant to be shown to the user as is.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Kind }

// NewError builds an *Error of the given kind.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// UserMessage extracts the user-facing message from err, looking through any
// wrapping. Errors that did not originate in the core return err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

func invalid(field FieldKind, message string) error {
	return &ValidationError{Field: field, Message: message}
}
