// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package admin

import (
	"context"

	"github.com/phamtuan/vitalog/pkg/pagination"
)

// # Admin Data Access

// Repository defines the data access contract for admin user management.
type Repository interface {

	/*
		ListUsers returns one page of accounts with their profile display
		names, ordered by email ascending.

		Parameters:
		  - context: context.Context
		  - params: pagination.Params (page and limit, already clamped)

		Returns:
		  - []UserRow: Admin view rows for the requested page
		  - int: Total account count across all pages
		  - error: Retrieval failures
	*/
	ListUsers(context context.Context, params pagination.Params) ([]UserRow, int, error)

	/*
		SetBanned updates the ban flag and returns the refreshed admin row.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - banned: bool

		Returns:
		  - *UserRow: Post-update state
		  - error: apperr.NotFound or persistence failures
	*/
	SetBanned(context context.Context, userID string, banned bool) (*UserRow, error)
}

// BanCacheInvalidator evicts a cached ban verdict after it changes.
type BanCacheInvalidator interface {
	Invalidate(context context.Context, userID string) error
}
