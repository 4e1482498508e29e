// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skritch/tech-screen-api/internal/platform/apperr"
	"github.com/skritch/tech-screen-api/internal/platform/respond"
)

/*
TestOK_BareBody verifies successful payloads are written without an envelope.
*/
func TestOK_BareBody(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.OK(recorder, []map[string]any{{"id": 1, "name": "the first ones"}})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"id":1,"name":"the first ones"}]`, recorder.Body.String())
}

/*
TestError_AppError renders client errors with their own message and code.
*/
func TestError_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/artist/1/albums", nil)

	respond.Error(recorder, request, apperr.InvalidRange("price_gte must be less than price_lte"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var body respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "price_gte must be less than price_lte", body.Error)
	assert.Equal(t, apperr.CodeInvalidRange, body.Code)
	assert.Empty(t, body.Details)
}

/*
TestError_PlainError hides unknown errors behind a generic 500.
*/
func TestError_PlainError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/artists", nil)

	respond.Error(recorder, request, errors.New("relation \"artist\" does not exist"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "relation")
	assert.Contains(t, recorder.Body.String(), apperr.CodeInternal)
}
