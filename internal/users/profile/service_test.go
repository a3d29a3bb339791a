// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package profile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
	"github.com/phamtuan/vitalog/internal/users/profile"
	"github.com/phamtuan/vitalog/pkg/pointer"
)

// fakeProfileRepository is an in-memory profile Repository keyed by user ID.
type fakeProfileRepository struct {
	profiles map[string]*profile.Profile
	creates  int
	updates  int
}

func newFakeProfileRepository() *fakeProfileRepository {
	return &fakeProfileRepository{profiles: make(map[string]*profile.Profile)}
}

func (f *fakeProfileRepository) FindByUserID(_ context.Context, userID string) (*profile.Profile, error) {
	existing, ok := f.profiles[userID]
	if !ok {
		return nil, apperr.NotFound("Profile")
	}
	return existing, nil
}

func (f *fakeProfileRepository) Create(_ context.Context, entity *profile.Profile) error {
	f.creates++
	f.profiles[entity.UserID] = entity
	return nil
}

func (f *fakeProfileRepository) Update(_ context.Context, entity *profile.Profile) error {
	f.updates++
	f.profiles[entity.UserID] = entity
	return nil
}

/*
TestGet verifies that an absent profile is null, not an error.
*/
func TestGet(t *testing.T) {
	service := profile.NewService(newFakeProfileRepository())

	entity, err := service.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Nil(t, entity)
}

/*
TestUpdate verifies the lazy upsert: the first write creates the row,
later writes mutate it, and blank text fields clear their columns.
*/
func TestUpdate(t *testing.T) {
	repository := newFakeProfileRepository()
	service := profile.NewService(repository)

	// 1. First PUT creates the profile
	created, err := service.Update(context.Background(), "user-1", profile.UpdateInput{
		DisplayName: pointer.To("  Tuan  "),
		Gender:      pointer.To("male"),
		HeightCm:    pointer.To(175.0),
		WeightKg:    pointer.To(70.5),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repository.creates)
	assert.Equal(t, "Tuan", pointer.Val(created.DisplayName))
	assert.Nil(t, created.UpdatedAt)

	// 2. Second PUT mutates in place and stamps UpdatedAt
	updated, err := service.Update(context.Background(), "user-1", profile.UpdateInput{
		DisplayName: pointer.To("Tuan Pham"),
		WeightKg:    pointer.To(69.0),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repository.creates)
	assert.Equal(t, 1, repository.updates)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Tuan Pham", pointer.Val(updated.DisplayName))
	assert.NotNil(t, updated.UpdatedAt)

	// 3. Omitted measurements are cleared, not preserved
	assert.Nil(t, updated.HeightCm)
	assert.Equal(t, 69.0, pointer.Val(updated.WeightKg))

	// 4. A sent-blank display name clears the column
	cleared, err := service.Update(context.Background(), "user-1", profile.UpdateInput{
		DisplayName: pointer.To("   "),
	})
	require.NoError(t, err)
	assert.Nil(t, cleared.DisplayName)

	// 5. An unsent display name leaves the column alone
	repository.profiles["user-1"].DisplayName = pointer.To("Tuan")
	untouched, err := service.Update(context.Background(), "user-1", profile.UpdateInput{
		WeightKg: pointer.To(68.0),
	})
	require.NoError(t, err)
	assert.Equal(t, "Tuan", pointer.Val(untouched.DisplayName))
}
