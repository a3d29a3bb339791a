// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phamtuan/vitalog/internal/platform/ctxutil"
	"github.com/phamtuan/vitalog/pkg/pagination"
)

// Service implements the admin user management use cases.
type Service struct {
	repository  Repository
	invalidator BanCacheInvalidator
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repository Repository, invalidator BanCacheInvalidator) *Service {
	return &Service{repository: repository, invalidator: invalidator}
}

/*
ListUsers returns one page of the admin account listing ordered by email.

Parameters:
  - context: context.Context
  - params: pagination.Params

Returns:
  - []UserRow: Admin view rows for the requested page
  - pagination.Meta: Page metadata including the total count
  - err: Retrieval failures
*/
func (service *Service) ListUsers(context context.Context, params pagination.Params) ([]UserRow, pagination.Meta, error) {
	users, total, err := service.repository.ListUsers(context, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return users, pagination.NewMeta(params.Page, params.Limit, total), nil
}

/*
SetBanned flips the ban flag on an account and evicts its cached verdict.

Description: The cache eviction runs after the database write commits, so
the access guard's next lookup observes the fresh flag. A failed eviction is
logged but does not fail the request; the cache TTL bounds the staleness.

Parameters:
  - context: context.Context
  - userID: string
  - banned: bool

Returns:
  - *UserRow: Post-update state
  - err: NotFound or persistence failures
*/
func (service *Service) SetBanned(context context.Context, userID string, banned bool) (*UserRow, error) {
	row, err := service.repository.SetBanned(context, userID, banned)
	if err != nil {
		return nil, err
	}

	if err := service.invalidator.Invalidate(context, userID); err != nil {
		ctxutil.GetLogger(context).WarnContext(context, "ban_cache_invalidation_failed",
			slog.String("user_id", userID),
			slog.Any("error", fmt.Errorf("admin_service_invalidate_failed: %w", err)),
		)
	}

	return row, nil
}
