// Copyright the adoption-service contributors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pawadopt/adoption-service/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "validation error maps to 400",
			err:            errors.NewValidation("bad input"),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "not found error maps to 404",
			err:            errors.NewNotFound("no dog detected"),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "service unavailable error maps to 503",
			err:            errors.NewServiceUnavailable("classifier down"),
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "unexpected error maps to 500",
			err:            errors.NewUnexpected("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "plain error maps to 500",
			err:            fmt.Errorf("plain"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStatus, statusFor(tc.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(context.Background(), rec, errors.NewValidation("no file uploaded"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body errorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "no file uploaded", body.Error)
}

func TestWriteErrorNil(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(context.Background(), rec, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body errorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unknown error", body.Error)
}
