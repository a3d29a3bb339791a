// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package admin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
	"github.com/phamtuan/vitalog/internal/users/admin"
	"github.com/phamtuan/vitalog/pkg/pagination"
)

// fakeAdminRepository serves a fixed account listing.
type fakeAdminRepository struct {
	rows []admin.UserRow
}

func (f *fakeAdminRepository) ListUsers(_ context.Context, params pagination.Params) ([]admin.UserRow, int, error) {
	start := params.Offset()
	if start > len(f.rows) {
		return []admin.UserRow{}, len(f.rows), nil
	}
	end := start + params.Limit
	if end > len(f.rows) {
		end = len(f.rows)
	}
	return f.rows[start:end], len(f.rows), nil
}

func (f *fakeAdminRepository) SetBanned(_ context.Context, userID string, banned bool) (*admin.UserRow, error) {
	for i := range f.rows {
		if f.rows[i].ID == userID {
			f.rows[i].IsBanned = banned
			return &f.rows[i], nil
		}
	}
	return nil, apperr.NotFound("User")
}

// fakeInvalidator records evicted user IDs.
type fakeInvalidator struct {
	evicted []string
	err     error
}

func (f *fakeInvalidator) Invalidate(_ context.Context, userID string) error {
	f.evicted = append(f.evicted, userID)
	return f.err
}

/*
TestListUsers verifies page slicing and the metadata calculation.
*/
func TestListUsers(t *testing.T) {
	repository := &fakeAdminRepository{}
	for _, id := range []string{"u1", "u2", "u3", "u4", "u5"} {
		repository.rows = append(repository.rows, admin.UserRow{ID: id, Email: id + "@vitalog.com"})
	}
	service := admin.NewService(repository, &fakeInvalidator{})

	// 1. First page of two
	users, meta, err := service.ListUsers(context.Background(), pagination.Params{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, 5, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	// 2. Last, partial page
	users, meta, err = service.ListUsers(context.Background(), pagination.Params{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, 3, meta.Page)
}

/*
TestSetBanned verifies the write-then-evict order and that a failed cache
eviction does not fail the request.
*/
func TestSetBanned(t *testing.T) {
	repository := &fakeAdminRepository{rows: []admin.UserRow{{ID: "u1", Email: "u1@vitalog.com"}}}
	invalidator := &fakeInvalidator{}
	service := admin.NewService(repository, invalidator)

	// 1. The flag is persisted and the cached verdict evicted
	row, err := service.SetBanned(context.Background(), "u1", true)
	require.NoError(t, err)
	assert.True(t, row.IsBanned)
	assert.Equal(t, []string{"u1"}, invalidator.evicted)

	// 2. Eviction failure is tolerated; the TTL bounds the staleness
	invalidator.err = errors.New("redis down")
	row, err = service.SetBanned(context.Background(), "u1", false)
	require.NoError(t, err)
	assert.False(t, row.IsBanned)

	// 3. A missing account answers NotFound and evicts nothing
	before := len(invalidator.evicted)
	_, err = service.SetBanned(context.Background(), "ghost", true)
	assert.True(t, apperr.IsNotFound(err))
	assert.Len(t, invalidator.evicted, before)
}
