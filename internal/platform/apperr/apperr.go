// Copyright (c) 2026 Frameteca. All rights reserved.
// Author: a.navarrete.dev@gmail.com

/*
Package apperr defines the centralized error handling framework for Frameteca.

It provides a rich error type that bridges the gap between low-level Domain/Storage
errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing a machine-readable Code and a user-facing message.
  - Mapping: Explicit mapping from AppError to standard HTTP status codes.
  - Cause: The underlying error is carried along and surfaced in the response
    "details" field, matching the API contract the frontend already consumes.

Every error that leaves the service layer should be wrapped as an [AppError] to ensure
consistent API responses.
*/
package apperr

import (
	"errors"
	"net/http"
)

// AppError is the canonical error type for the Frameteca API.
//
// Message is the fixed, client-facing error string (the topic endpoints use
// Spanish copy, e.g. "Topic no encontrado"). Cause, when present, is exposed
// verbatim in the response "details" field; the API contract deliberately
// leaks driver error text there for debuggability.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND"), used in logs.
	Code string `json:"code"`
	// Message is the client-facing description.
	Message string `json:"error"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error; its text is returned in "details".
	Cause error `json:"-"`
}

// Error implements the error interface. It returns the client-facing message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// Validation creates a 400 [AppError] with a fixed message.
func Validation(msg string) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NotFound creates a 404 [AppError] with a fixed message.
func NotFound(msg string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    msg,
		HTTPStatus: http.StatusNotFound,
	}
}

// Unauthorized creates a 401 [AppError].
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    msg,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates a 403 [AppError].
func Forbidden(msg string) *AppError {
	return &AppError{
		Code:       "FORBIDDEN",
		Message:    msg,
		HTTPStatus: http.StatusForbidden,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] with the endpoint's fixed message and
// the underlying cause. Slug-uniqueness violations also land here: the API
// does not classify them as 409, the driver message simply shows up in
// "details".
func Internal(msg string, cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
