package util

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation     Kind = "validation"
	KindAuthentication Kind = "authentication"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindInternal       Kind = "internal"
)

// AppError carries the error kind alongside the client-facing message.
// Err holds the underlying cause and is never serialised.
type AppError struct {
	Kind    Kind
	Message string
	Details map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func ValidationError(msg string) *AppError {
	return &AppError{Kind: KindValidation, Message: msg}
}

func FieldValidationError(msg string, details map[string]string) *AppError {
	return &AppError{Kind: KindValidation, Message: msg, Details: details}
}

func AuthenticationError(msg string) *AppError {
	return &AppError{Kind: KindAuthentication, Message: msg}
}

func NotFoundError(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func ConflictError(msg string) *AppError {
	return &AppError{Kind: KindConflict, Message: msg}
}

func InternalError(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: INTERNAL_SERVER_ERROR, Err: err}
}

// AsAppError converts any error into an AppError. Unknown errors become internal.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return InternalError(err)
}

func KindOf(err error) Kind {
	return AsAppError(err).Kind
}

/*
* Conflict maps to 400 because clients treat a duplicate email like any other
* rejected signup field
 */
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
