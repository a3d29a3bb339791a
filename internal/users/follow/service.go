// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package follow

import (
	"context"
	"fmt"
	"time"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
	"github.com/phamtuan/vitalog/internal/platform/dberr"
)

// Service implements the social graph use cases.
type Service struct {
	repository Repository
	directory  TargetDirectory
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repository Repository, directory TargetDirectory) *Service {
	return &Service{repository: repository, directory: directory}
}

/*
Follow creates a directed edge from the caller to the target account.

Description: Enforces the graph invariants in order: no self-edges, the
target must exist, the target must not be banned, and the edge must be new.
The composite primary key resolves duplicate races the pre-check missed.

Parameters:
  - context: context.Context
  - followerID: string
  - targetID: string

Returns:
  - err: ValidationError (self/banned target), NotFound (missing target),
    Conflict (duplicate edge), or storage failures
*/
func (service *Service) Follow(context context.Context, followerID, targetID string) error {
	if followerID == targetID {
		return apperr.ValidationError("Cannot follow yourself.")
	}

	// Target existence and ban state share one directory lookup.
	banned, err := service.directory.IsBanned(context, targetID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return apperr.NotFound("User")
		}
		return fmt.Errorf("follow_service_target_lookup_failed: %w", err)
	}
	if banned {
		return apperr.ValidationError("Cannot follow that user.")
	}

	// Friendly duplicate answer before attempting the insert.
	exists, err := service.repository.EdgeExists(context, followerID, targetID)
	if err != nil {
		return fmt.Errorf("follow_service_edge_check_failed: %w", err)
	}
	if exists {
		return apperr.Conflict("Already following.")
	}

	edge := &Edge{
		FollowerID: followerID,
		TargetID:   targetID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := service.repository.CreateEdge(context, edge); err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("Already following.")
		}
		return fmt.Errorf("follow_service_create_failed: %w", err)
	}

	return nil
}

/*
Unfollow removes the caller's edge to the target account.

Parameters:
  - context: context.Context
  - followerID: string
  - targetID: string

Returns:
  - err: NotFound when no edge exists, or storage failures
*/
func (service *Service) Unfollow(context context.Context, followerID, targetID string) error {
	deleted, err := service.repository.DeleteEdge(context, followerID, targetID)
	if err != nil {
		return fmt.Errorf("follow_service_delete_failed: %w", err)
	}

	if !deleted {
		return apperr.NotFound("Follow")
	}

	return nil
}

/*
Following lists the accounts the caller follows, oldest edge first.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []ListedUser: Display rows
  - err: Retrieval failures
*/
func (service *Service) Following(context context.Context, userID string) ([]ListedUser, error) {
	return service.repository.ListFollowing(context, userID)
}

/*
Followers lists the accounts following the caller, oldest edge first.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []ListedUser: Display rows
  - err: Retrieval failures
*/
func (service *Service) Followers(context context.Context, userID string) ([]ListedUser, error) {
	return service.repository.ListFollowers(context, userID)
}

/*
SearchUsers finds candidate follow targets for the caller.

Parameters:
  - context: context.Context
  - callerID: string
  - search: string (optional substring filter)

Returns:
  - []DiscoveredUser: Capped, ordered result rows
  - err: Retrieval failures
*/
func (service *Service) SearchUsers(context context.Context, callerID, search string) ([]DiscoveredUser, error) {
	return service.repository.SearchUsers(context, callerID, search)
}
