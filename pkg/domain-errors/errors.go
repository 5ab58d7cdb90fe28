// Package dErrors defines the domain error taxonomy and its mapping to HTTP
// status codes. Services return these; transport translates them exactly once.
package dErrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a class of domain failure. Codes are stable strings that
// appear verbatim in API responses.
type Code string

const (
	CodeUnauthorized        Code = "unauthorized"
	CodeBadRequest          Code = "bad_request"
	CodeNotFound            Code = "not_found"
	CodeNoDataExtracted     Code = "no_data_extracted"
	CodeServiceUnavailable  Code = "service_unavailable"
	CodeExtractionFailed    Code = "extraction_failed"
	CodeMalformedResponse   Code = "malformed_response"
	CodeRegistryUnavailable Code = "registry_unavailable"
	CodeInternal            Code = "internal_error"
)

// Error is a domain error with a taxonomy code and a human-readable message.
// The wrapped cause, if any, is kept for logging but never serialized.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New constructs a domain error without a cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap constructs a domain error that keeps the underlying cause for logs.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// HasCode reports whether err is (or wraps) a domain error with the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf returns the code carried by err, or CodeInternal for unclassified errors.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a taxonomy code to its HTTP status.
//
// NoDataExtracted is 422 rather than 500: the extraction completed but the
// document contained nothing usable, which callers treat differently from an
// upstream failure.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeNoDataExtracted:
		return http.StatusUnprocessableEntity
	case CodeServiceUnavailable, CodeExtractionFailed, CodeMalformedResponse,
		CodeRegistryUnavailable, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
