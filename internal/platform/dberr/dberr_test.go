// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skritch/tech-screen-api/internal/platform/apperr"
	"github.com/skritch/tech-screen-api/internal/platform/dberr"
)

/*
TestWrap_Classification checks how driver errors are mapped onto API errors.
*/
func TestWrap_Classification(t *testing.T) {
	dialErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"no_rows", pgx.ErrNoRows, http.StatusNotFound, apperr.CodeNotFound},
		{"dial_failure", dialErr, http.StatusServiceUnavailable, apperr.CodeStorageUnavailable},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), http.StatusServiceUnavailable, apperr.CodeStorageUnavailable},
		{"syntax_error", &pgconn.PgError{Code: "42601", Message: "syntax error"}, http.StatusInternalServerError, apperr.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "list_albums")

			ae := apperr.As(wrapped)
			require.NotNil(t, ae)
			assert.Equal(t, tt.status, ae.HTTPStatus)
			assert.Equal(t, tt.code, ae.Code)
		})
	}
}

/*
TestWrap_Nil verifies nil passes through untouched.
*/
func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "create_artist"))
}

/*
TestWrap_KeepsCauseChain verifies the driver error stays reachable for logging.
*/
func TestWrap_KeepsCauseChain(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "XX000", Message: "internal"}

	wrapped := dberr.Wrap(pgErr, "create_album")

	var target *pgconn.PgError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, "XX000", target.Code)
	assert.Contains(t, apperr.As(wrapped).Cause.Error(), "create_album")
}

/*
TestConstraintHelpers checks SQLSTATE detection through wrapping.
*/
func TestConstraintHelpers(t *testing.T) {
	fk := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"})
	unique := &pgconn.PgError{Code: "23505"}

	assert.True(t, dberr.IsForeignKeyViolation(fk))
	assert.False(t, dberr.IsUniqueViolation(fk))
	assert.True(t, dberr.IsUniqueViolation(unique))
	assert.False(t, dberr.IsForeignKeyViolation(errors.New("plain")))
}
