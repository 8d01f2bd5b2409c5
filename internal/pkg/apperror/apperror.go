// Package apperror defines the typed failure taxonomy surfaced by the service
// layer. Controllers and the error-handler middleware map these onto HTTP
// statuses; everything else wraps driver errors as BackendUnavailable.
package apperror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindDuplicate
	KindInvalidCredentials
	KindBackendUnavailable
	KindValidation
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Duplicate(message string) *Error {
	return &Error{Kind: KindDuplicate, Message: message}
}

func InvalidCredentials(message string) *Error {
	return &Error{Kind: KindInvalidCredentials, Message: message}
}

func BackendUnavailable(message string, err error) *Error {
	return &Error{Kind: KindBackendUnavailable, Message: message, Err: err}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// KindOf extracts the kind from an error chain, KindUnknown if none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// HTTPStatus maps an error to the status code the REST surface reports.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return 404
	case KindDuplicate:
		return 409
	case KindInvalidCredentials:
		return 401
	case KindValidation:
		return 400
	case KindBackendUnavailable:
		return 503
	default:
		return 500
	}
}
