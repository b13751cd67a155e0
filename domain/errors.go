package domain

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a failure regardless of which call produced it.
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeInvalid      ErrorCode = "INVALID"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeNetwork      ErrorCode = "NETWORK"
	ErrCodeInternal     ErrorCode = "INTERNAL"
)

// Error is the normalized failure shape every backend call resolves to:
// a human-readable detail (server-supplied when available), the HTTP
// status when one was received, and a semantic code derived from it.
type Error struct {
	Code   ErrorCode
	Detail string
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a normalized error.
func NewError(code ErrorCode, detail string) *Error {
	return &Error{Code: code, Detail: detail}
}

// WrapError attaches a classification to an underlying error.
func WrapError(code ErrorCode, detail string, err error) *Error {
	return &Error{
		Code:   code,
		Detail: detail,
		Err:    err,
	}
}

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}

// ErrorMessage extracts the user-facing detail from any error, using
// fallback when the error carries none.
func ErrorMessage(err error, fallback string) string {
	var dErr *Error
	if errors.As(err, &dErr) && dErr.Detail != "" {
		return dErr.Detail
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
