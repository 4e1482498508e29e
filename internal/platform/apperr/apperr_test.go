// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skritch/tech-screen-api/internal/platform/apperr"
)

/*
TestConstructors_StatusAndCode verifies every constructor maps to the expected
HTTP status and machine-readable code.
*/
func TestConstructors_StatusAndCode(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	tests := []struct {
		name   string
		err    *apperr.AppError
		status int
		code   string
	}{
		{"invalid_input", apperr.InvalidInput("Cannot supply id"), http.StatusBadRequest, apperr.CodeInvalidInput},
		{"invalid_range", apperr.InvalidRange("price_gte must be less than price_lte"), http.StatusBadRequest, apperr.CodeInvalidRange},
		{"validation", apperr.ValidationError("Validation failed"), http.StatusBadRequest, apperr.CodeValidation},
		{"not_found", apperr.NotFound("Route"), http.StatusNotFound, apperr.CodeNotFound},
		{"method_not_allowed", apperr.MethodNotAllowed(), http.StatusMethodNotAllowed, apperr.CodeMethodNotAllowed},
		{"internal", apperr.Internal(cause), http.StatusInternalServerError, apperr.CodeInternal},
		{"storage_unavailable", apperr.StorageUnavailable(cause), http.StatusServiceUnavailable, apperr.CodeStorageUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

/*
TestInvalidInput_MessageIsCause checks that client errors echo the cause verbatim.
*/
func TestInvalidInput_MessageIsCause(t *testing.T) {
	err := apperr.InvalidInput("Cannot create albums with this endpoint")
	assert.Equal(t, "Cannot create albums with this endpoint", err.Error())
}

/*
TestServerErrors_HideCause ensures 5xx messages never leak the underlying error.
*/
func TestServerErrors_HideCause(t *testing.T) {
	cause := errors.New("pq: password authentication failed")

	internal := apperr.Internal(cause)
	assert.NotContains(t, internal.Error(), "password")
	assert.ErrorIs(t, internal, cause)

	unavailable := apperr.StorageUnavailable(cause)
	assert.NotContains(t, unavailable.Error(), "password")
	assert.ErrorIs(t, unavailable, cause)
}

/*
TestAs_WrappedChain verifies extraction through fmt.Errorf wrapping.
*/
func TestAs_WrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("create album: %w", apperr.InvalidInput("Cannot supply id"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeInvalidInput, ae.Code)
	assert.True(t, apperr.IsAppError(wrapped))
	assert.True(t, apperr.HasCode(wrapped, apperr.CodeInvalidInput))
	assert.False(t, apperr.HasCode(wrapped, apperr.CodeInvalidRange))

	assert.Nil(t, apperr.As(errors.New("plain")))
	assert.False(t, apperr.HasCode(nil, apperr.CodeInvalidInput))
}
