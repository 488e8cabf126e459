package model

import (
	"errors"
	"net/http"
)

// Error kinds. The kind is the stable discriminant of a domain error; the
// message and detail are for humans.
const (
	KindNotProvided  = "NOT_PROVIDED"
	KindValidation   = "VALIDATION"
	KindInvalidItems = "INVALID_ORDER_ITEMS"
	KindNotFound     = "NOT_FOUND"
	KindInvalidState = "INVALID_STATE"
	KindUnexpected   = "UNEXPECTED"
)

// Error is the typed error carried from services to the HTTP boundary.
type Error struct {
	Kind    string `json:"-"`
	Status  int    `json:"-"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
	cause   error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

// Unwrap exposes the original cause for diagnostics.
func (e *Error) Unwrap() error {
	return e.cause
}

// NotProvided signals an empty or absent request payload.
func NotProvided(message string) *Error {
	return &Error{Kind: KindNotProvided, Status: http.StatusBadRequest, Message: message}
}

// Validation signals a malformed or missing required field.
func Validation(message, detail string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: message, Detail: detail}
}

// InvalidItems signals an item-level resolution failure on an order.
func InvalidItems(detail string) *Error {
	return &Error{
		Kind:    KindInvalidItems,
		Status:  http.StatusBadRequest,
		Message: "Order with invalid items",
		Detail:  detail,
	}
}

// NotFound signals a missing entity or an unparsable identifier.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: message}
}

// InvalidState signals a rejected status transition.
func InvalidState(message string) *Error {
	return &Error{Kind: KindInvalidState, Status: http.StatusBadRequest, Message: message}
}

// Unexpected wraps an unclassified failure with a stage-specific message.
func Unexpected(message string, cause error) *Error {
	return &Error{Kind: KindUnexpected, Status: http.StatusInternalServerError, Message: message, cause: cause}
}

// Wrap passes domain errors through unchanged and coerces anything else into
// an Unexpected error, so the boundary never sees a raw failure.
func Wrap(err error, defaultMessage string) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Unexpected(defaultMessage, err)
}
