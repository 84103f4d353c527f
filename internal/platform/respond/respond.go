// Copyright (c) 2026 Frameteca. All rights reserved.
// Author: a.navarrete.dev@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Every response (success or error) follows a single JSON envelope:
//
//	{ "success": bool, "data"?, "error"?, "details"?, "message"?, "count"? }
//
// Collection reads carry "count", mutations carry "message", and failures
// carry a fixed "error" string plus the underlying cause in "details".
// The frontend parses this shape everywhere, so handlers never write JSON
// themselves.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/anavarrete/frameteca/internal/platform/apperr"
	"github.com/anavarrete/frameteca/internal/platform/ctxutil"
)

// Envelope is the uniform response body for the entire API.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details string      `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 response with a single resource.
func OK(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusOK, Envelope{Success: true, Data: data})
}

// Collection writes a 200 response with a list of resources and its count.
func Collection(writer http.ResponseWriter, data interface{}, count int) {
	JSON(writer, http.StatusOK, Envelope{Success: true, Data: data, Count: &count})
}

// Created writes a 201 response for a successful create mutation.
func Created(writer http.ResponseWriter, data interface{}, message string) {
	JSON(writer, http.StatusCreated, Envelope{Success: true, Data: data, Message: message})
}

// Mutated writes a 200 response for a successful update/delete mutation.
func Mutated(writer http.ResponseWriter, data interface{}, message string) {
	JSON(writer, http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

// Error converts any Go error into the standardized failure envelope.
//
// Non-[apperr.AppError] values should not reach this function — handlers are
// the single translation boundary and wrap storage errors with their fixed
// per-endpoint message. If one slips through anyway it is logged and served
// as a generic 500.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unclassified_error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal("An unexpected error occurred", err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	envelope := Envelope{Success: false, Error: appError.Message}
	if appError.Cause != nil {
		envelope.Details = appError.Cause.Error()
	}

	JSON(writer, appError.HTTPStatus, envelope)
}
