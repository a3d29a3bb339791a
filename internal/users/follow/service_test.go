// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package follow_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
	"github.com/phamtuan/vitalog/internal/users/follow"
)

// fakeEdgeRepository keeps the social graph as a set of "follower|target" keys.
type fakeEdgeRepository struct {
	edges     map[string]bool
	createErr error
}

func newFakeEdgeRepository() *fakeEdgeRepository {
	return &fakeEdgeRepository{edges: make(map[string]bool)}
}

func edgeKey(followerID, targetID string) string { return followerID + "|" + targetID }

func (f *fakeEdgeRepository) CreateEdge(_ context.Context, edge *follow.Edge) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.edges[edgeKey(edge.FollowerID, edge.TargetID)] = true
	return nil
}

func (f *fakeEdgeRepository) DeleteEdge(_ context.Context, followerID, targetID string) (bool, error) {
	key := edgeKey(followerID, targetID)
	if !f.edges[key] {
		return false, nil
	}
	delete(f.edges, key)
	return true, nil
}

func (f *fakeEdgeRepository) EdgeExists(_ context.Context, followerID, targetID string) (bool, error) {
	return f.edges[edgeKey(followerID, targetID)], nil
}

func (f *fakeEdgeRepository) ListFollowing(_ context.Context, _ string) ([]follow.ListedUser, error) {
	return nil, nil
}

func (f *fakeEdgeRepository) ListFollowers(_ context.Context, _ string) ([]follow.ListedUser, error) {
	return nil, nil
}

func (f *fakeEdgeRepository) SearchUsers(_ context.Context, _, _ string) ([]follow.DiscoveredUser, error) {
	return nil, nil
}

// fakeDirectory resolves account existence and ban state.
type fakeDirectory struct {
	banned map[string]bool // userid -> flag; absent means the account is gone
}

func (f *fakeDirectory) IsBanned(_ context.Context, userID string) (bool, error) {
	banned, ok := f.banned[userID]
	if !ok {
		return false, apperr.NotFound("User")
	}
	return banned, nil
}

func newFollowService() (*follow.Service, *fakeEdgeRepository, *fakeDirectory) {
	repository := newFakeEdgeRepository()
	directory := &fakeDirectory{banned: map[string]bool{
		"alice":   false,
		"bob":     false,
		"mallory": true,
	}}
	return follow.NewService(repository, directory), repository, directory
}

/*
TestFollow verifies the edge invariants: no self-follow, target must exist
and not be banned, and duplicate edges conflict.
*/
func TestFollow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service, repository, _ := newFollowService()

		err := service.Follow(context.Background(), "alice", "bob")
		require.NoError(t, err)
		assert.True(t, repository.edges[edgeKey("alice", "bob")])
	})

	t.Run("self_follow", func(t *testing.T) {
		service, _, _ := newFollowService()

		err := service.Follow(context.Background(), "alice", "alice")
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		assert.Equal(t, "Cannot follow yourself.", ae.Message)
	})

	t.Run("missing_target", func(t *testing.T) {
		service, _, _ := newFollowService()

		err := service.Follow(context.Background(), "alice", "ghost")
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("banned_target", func(t *testing.T) {
		service, _, _ := newFollowService()

		err := service.Follow(context.Background(), "alice", "mallory")
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		assert.Equal(t, "Cannot follow that user.", ae.Message)
	})

	t.Run("duplicate_edge", func(t *testing.T) {
		service, _, _ := newFollowService()

		require.NoError(t, service.Follow(context.Background(), "alice", "bob"))

		err := service.Follow(context.Background(), "alice", "bob")
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "CONFLICT", ae.Code)
		assert.Equal(t, "Already following.", ae.Message)
	})

	t.Run("insert_race", func(t *testing.T) {
		// Concurrent follow passing the pre-check loses on the composite key.
		service, repository, _ := newFollowService()
		repository.createErr = &pgconn.PgError{Code: "23505"}

		err := service.Follow(context.Background(), "alice", "bob")
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "CONFLICT", ae.Code)
	})
}

/*
TestUnfollow verifies edge removal and the missing-edge answer.
*/
func TestUnfollow(t *testing.T) {
	service, repository, _ := newFollowService()

	require.NoError(t, service.Follow(context.Background(), "alice", "bob"))

	// 1. Removing the edge succeeds once
	err := service.Unfollow(context.Background(), "alice", "bob")
	require.NoError(t, err)
	assert.Empty(t, repository.edges)

	// 2. A second removal reports the edge as gone
	err = service.Unfollow(context.Background(), "alice", "bob")
	assert.True(t, apperr.IsNotFound(err))
}
