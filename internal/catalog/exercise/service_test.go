// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package exercise_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamtuan/vitalog/internal/catalog/exercise"
	"github.com/phamtuan/vitalog/internal/platform/apperr"
	"github.com/phamtuan/vitalog/pkg/pointer"
)

// fakeExerciseRepository is an in-memory exercise Repository.
type fakeExerciseRepository struct {
	exercises map[string]*exercise.Exercise
	listCalls int
	deleteErr error
}

func newFakeExerciseRepository() *fakeExerciseRepository {
	return &fakeExerciseRepository{exercises: make(map[string]*exercise.Exercise)}
}

func (f *fakeExerciseRepository) List(_ context.Context, search string) ([]exercise.Exercise, error) {
	f.listCalls++
	result := make([]exercise.Exercise, 0)
	for _, item := range f.exercises {
		if search == "" || strings.Contains(strings.ToLower(item.Name), strings.ToLower(search)) {
			result = append(result, *item)
		}
	}
	return result, nil
}

func (f *fakeExerciseRepository) FindByID(_ context.Context, id string) (*exercise.Exercise, error) {
	item, ok := f.exercises[id]
	if !ok {
		return nil, apperr.NotFound("Exercise")
	}
	return item, nil
}

func (f *fakeExerciseRepository) Create(_ context.Context, item *exercise.Exercise) error {
	f.exercises[item.ID] = item
	return nil
}

func (f *fakeExerciseRepository) Update(_ context.Context, item *exercise.Exercise) (bool, error) {
	if _, ok := f.exercises[item.ID]; !ok {
		return false, nil
	}
	f.exercises[item.ID] = item
	return true, nil
}

func (f *fakeExerciseRepository) Delete(_ context.Context, id string) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	if _, ok := f.exercises[id]; !ok {
		return false, nil
	}
	delete(f.exercises, id)
	return true, nil
}

// fakeListCache is an in-memory ListCache.
type fakeListCache struct {
	exercises []exercise.Exercise
	held      bool
}

func (f *fakeListCache) Get(_ context.Context) ([]exercise.Exercise, bool) {
	return f.exercises, f.held
}

func (f *fakeListCache) Set(_ context.Context, exercises []exercise.Exercise) {
	f.exercises = exercises
	f.held = true
}

func (f *fakeListCache) Invalidate(_ context.Context) {
	f.exercises = nil
	f.held = false
}

func newExerciseService() (*exercise.Service, *fakeExerciseRepository, *fakeListCache) {
	repository := newFakeExerciseRepository()
	cache := &fakeListCache{}
	return exercise.NewService(repository, cache), repository, cache
}

/*
TestList verifies the cache-aside behavior: the unfiltered listing is
served from cache, searches bypass it, and writes invalidate it.
*/
func TestList(t *testing.T) {
	service, repository, cache := newExerciseService()

	created, err := service.Create(context.Background(), exercise.Input{Name: "Deadlift"})
	require.NoError(t, err)

	// 1. First unfiltered list hits the store and fills the cache
	_, err = service.List(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, repository.listCalls)
	assert.True(t, cache.held)

	// 2. Second unfiltered list is served from cache
	_, err = service.List(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, repository.listCalls)

	// 3. Searches always hit the store
	results, err := service.List(context.Background(), "dead")
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 2, repository.listCalls)

	// 4. A write drops the cached listing
	_, err = service.Update(context.Background(), created.ID, exercise.Input{Name: "Deadlift", Category: pointer.To("strength")})
	require.NoError(t, err)
	assert.False(t, cache.held)
}

/*
TestCreateUpdate verifies trimming, the blank-to-NULL mapping on the
optional fields, and the missing-row answer on update.
*/
func TestCreateUpdate(t *testing.T) {
	service, _, _ := newExerciseService()

	created, err := service.Create(context.Background(), exercise.Input{
		Name:        "  Bench Press  ",
		Description: pointer.To("   "),
		Category:    pointer.To(" strength "),
	})
	require.NoError(t, err)
	assert.Equal(t, "Bench Press", created.Name)
	assert.Nil(t, created.Description)
	require.NotNil(t, created.Category)
	assert.Equal(t, "strength", *created.Category)

	updated, err := service.Update(context.Background(), created.ID, exercise.Input{Name: "Bench Press", Category: pointer.To("")})
	require.NoError(t, err)
	assert.Nil(t, updated.Category)

	_, err = service.Update(context.Background(), "exercise-ghost", exercise.Input{Name: "X"})
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestDelete verifies that a referenced exercise refuses deletion with a
Conflict instead of cascading.
*/
func TestDelete(t *testing.T) {
	service, repository, _ := newExerciseService()

	created, err := service.Create(context.Background(), exercise.Input{Name: "Deadlift"})
	require.NoError(t, err)

	// 1. Workout entries still point at the exercise
	repository.deleteErr = &pgconn.PgError{Code: "23503"}
	err = service.Delete(context.Background(), created.ID)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, "Exercise is referenced by diary entries.", ae.Message)

	// 2. Unreferenced exercise deletes cleanly
	repository.deleteErr = nil
	require.NoError(t, service.Delete(context.Background(), created.ID))

	// 3. A second delete answers NotFound
	err = service.Delete(context.Background(), created.ID)
	assert.True(t, apperr.IsNotFound(err))
}
