// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pawadopt/adoption-service/pkg/errors"
)

// errorResponse is the JSON body written for every failed request
type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps application error types to HTTP status codes
func statusFor(err error) int {
	switch err.(type) {
	case errors.Validation:
		return http.StatusBadRequest
	case errors.NotFound:
		return http.StatusNotFound
	case errors.ServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs the error and writes the mapped status with a JSON body
func writeError(ctx context.Context, w http.ResponseWriter, err error) {

	slog.ErrorContext(ctx, "request failed",
		"error", err,
	)

	message := "unknown error"
	if err != nil {
		message = err.Error()
	}

	writeJSON(ctx, w, statusFor(err), errorResponse{Error: message})
}

// writeJSON writes v as a JSON response with the given status code
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}
