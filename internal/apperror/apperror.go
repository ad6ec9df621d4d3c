// Package apperror defines the application error taxonomy and its mapping to
// HTTP status codes. Handlers convert any error crossing the boundary into a
// JSON {message} body; only the safe Message travels to the caller.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorType int

const (
	UnknownError ErrorType = iota
	// ValidationError: malformed or missing input.
	ValidationError
	// AuthError: bad credentials. Kept at 400 so login failures for unknown
	// emails and wrong passwords are indistinguishable from validation noise.
	AuthError
	// UnauthorizedError: missing or invalid bearer token.
	UnauthorizedError
	// ConflictError: duplicate registration. The API contract returns 400
	// here, not 409.
	ConflictError
	// NotFoundError: unknown identifier.
	NotFoundError
	// StoreError: underlying persistence failure, logged server-side.
	StoreError
)

type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) StatusCode() int {
	switch e.Type {
	case ValidationError, AuthError, ConflictError:
		return http.StatusBadRequest
	case UnauthorizedError:
		return http.StatusUnauthorized
	case NotFoundError:
		return http.StatusNotFound
	case StoreError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func New(t ErrorType, message string, err error) *AppError {
	return &AppError{Type: t, Message: message, Err: err}
}

func NewValidation(message string) *AppError {
	return New(ValidationError, message, nil)
}

func NewAuth(message string) *AppError {
	return New(AuthError, message, nil)
}

func NewUnauthorized(message string) *AppError {
	return New(UnauthorizedError, message, nil)
}

func NewConflict(message string) *AppError {
	return New(ConflictError, message, nil)
}

func NewNotFound(message string) *AppError {
	return New(NotFoundError, message, nil)
}

func NewStore(message string, err error) *AppError {
	return New(StoreError, message, err)
}

func is(err error, t ErrorType) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Type == t
}

func IsValidation(err error) bool { return is(err, ValidationError) }
func IsConflict(err error) bool   { return is(err, ConflictError) }
func IsNotFound(err error) bool   { return is(err, NotFoundError) }
func IsAuth(err error) bool       { return is(err, AuthError) }
