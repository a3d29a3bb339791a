// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
	"github.com/phamtuan/vitalog/internal/platform/dberr"
)

/*
TestIsUniqueViolation verifies SQLSTATE 23505 classification, including
wrapped errors.
*/
func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}

	assert.True(t, dberr.IsUniqueViolation(unique))
	assert.True(t, dberr.IsUniqueViolation(fmt.Errorf("diary_repo_createplan_failed: %w", unique)))
	assert.False(t, dberr.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, dberr.IsUniqueViolation(errors.New("plain error")))
	assert.False(t, dberr.IsUniqueViolation(nil))
}

/*
TestIsForeignKeyViolation verifies SQLSTATE 23503 classification.
*/
func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, dberr.IsForeignKeyViolation(fk))
	assert.True(t, dberr.IsForeignKeyViolation(fmt.Errorf("catalog_repo_delete_failed: %w", fk)))
	assert.False(t, dberr.IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, dberr.IsForeignKeyViolation(nil))
}

/*
TestWrap verifies translation of raw database errors into application
errors.
*/
func TestWrap(t *testing.T) {
	// 1. nil passes through
	assert.NoError(t, dberr.Wrap(nil, "unused"))

	// 2. Missing rows map to NOT_FOUND
	err := dberr.Wrap(pgx.ErrNoRows, "unused")
	assert.True(t, apperr.IsNotFound(err))

	// 3. Unique violations surface the caller's conflict message
	err = dberr.Wrap(&pgconn.PgError{Code: "23505"}, "Email already registered.")
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, "Email already registered.", ae.Message)

	// 4. Anything else is an internal error
	err = dberr.Wrap(errors.New("connection reset"), "unused")
	ae = apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "INTERNAL_ERROR", ae.Code)
}
