// Package apperr defines the error taxonomy of §7: a small set of sentinel
// classes the HTTP layer maps to status codes. Domain and service code
// return these directly and the HTTP layer never inspects anything else
// about an error — no stack traces, library identifiers, or query text ever
// reach a response body.
package apperr

import (
	"errors"
	"fmt"
)

// Class is one of the fixed error classes. Each maps to exactly one HTTP
// status code in the adapter layer.
type Class string

const (
	ClassInputInvalid  Class = "INPUT_INVALID"
	ClassNotFound      Class = "NOT_FOUND"
	ClassUnimplemented Class = "UNIMPLEMENTED"
	ClassRateLimited   Class = "RATE_LIMITED"
	ClassTimeout       Class = "TIMEOUT"
	ClassStoreError    Class = "STORE_ERROR"
)

// Error carries a class and an opaque, caller-safe detail string. The
// wrapped cause (if any) is never rendered to a response; it exists only so
// %w/errors.Is/errors.As and logging can see the original failure.
type Error struct {
	class  Class
	detail string
	cause  error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.class, e.detail, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.class, e.detail)
}

func (e *Error) Unwrap() error { return e.cause }

// ClassOf returns the error's class, or "" if err is not an *Error.
func ClassOf(err error) Class {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.class
	}
	return ""
}

// Detail returns the opaque detail string safe to return to a caller, or a
// generic fallback if err is not an *Error.
func Detail(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.detail
	}
	return "internal error"
}

func InputInvalid(detail string, cause error) error {
	return &Error{class: ClassInputInvalid, detail: detail, cause: cause}
}

func NotFound(detail string) error {
	return &Error{class: ClassNotFound, detail: detail}
}

func Unimplemented(detail string) error {
	return &Error{class: ClassUnimplemented, detail: detail}
}

func RateLimited(detail string) error {
	return &Error{class: ClassRateLimited, detail: detail}
}

func Timeout(detail string) error {
	return &Error{class: ClassTimeout, detail: detail}
}

func StoreError(detail string, cause error) error {
	return &Error{class: ClassStoreError, detail: detail, cause: cause}
}

func IsInputInvalid(err error) bool  { return ClassOf(err) == ClassInputInvalid }
func IsNotFound(err error) bool      { return ClassOf(err) == ClassNotFound }
func IsUnimplemented(err error) bool { return ClassOf(err) == ClassUnimplemented }
func IsRateLimited(err error) bool   { return ClassOf(err) == ClassRateLimited }
func IsTimeout(err error) bool       { return ClassOf(err) == ClassTimeout }
func IsStoreError(err error) bool    { return ClassOf(err) == ClassStoreError }
