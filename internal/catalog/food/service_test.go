// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package food_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamtuan/vitalog/internal/catalog/food"
	"github.com/phamtuan/vitalog/internal/platform/apperr"
)

// fakeFoodRepository is an in-memory food Repository.
type fakeFoodRepository struct {
	foods     map[string]*food.Food
	listCalls int
	deleteErr error
}

func newFakeFoodRepository() *fakeFoodRepository {
	return &fakeFoodRepository{foods: make(map[string]*food.Food)}
}

func (f *fakeFoodRepository) List(_ context.Context, search string) ([]food.Food, error) {
	f.listCalls++
	result := make([]food.Food, 0)
	for _, item := range f.foods {
		if search == "" || strings.Contains(strings.ToLower(item.Name), strings.ToLower(search)) {
			result = append(result, *item)
		}
	}
	return result, nil
}

func (f *fakeFoodRepository) FindByID(_ context.Context, id string) (*food.Food, error) {
	item, ok := f.foods[id]
	if !ok {
		return nil, apperr.NotFound("Food")
	}
	return item, nil
}

func (f *fakeFoodRepository) Create(_ context.Context, item *food.Food) error {
	f.foods[item.ID] = item
	return nil
}

func (f *fakeFoodRepository) Update(_ context.Context, item *food.Food) (bool, error) {
	if _, ok := f.foods[item.ID]; !ok {
		return false, nil
	}
	f.foods[item.ID] = item
	return true, nil
}

func (f *fakeFoodRepository) Delete(_ context.Context, id string) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	if _, ok := f.foods[id]; !ok {
		return false, nil
	}
	delete(f.foods, id)
	return true, nil
}

// fakeListCache is an in-memory ListCache.
type fakeListCache struct {
	foods []food.Food
	held  bool
}

func (f *fakeListCache) Get(_ context.Context) ([]food.Food, bool) {
	return f.foods, f.held
}

func (f *fakeListCache) Set(_ context.Context, foods []food.Food) {
	f.foods = foods
	f.held = true
}

func (f *fakeListCache) Invalidate(_ context.Context) {
	f.foods = nil
	f.held = false
}

func newFoodService() (*food.Service, *fakeFoodRepository, *fakeListCache) {
	repository := newFakeFoodRepository()
	cache := &fakeListCache{}
	return food.NewService(repository, cache), repository, cache
}

/*
TestList verifies the cache-aside behavior: the unfiltered listing is
served from cache, searches bypass it, and writes invalidate it.
*/
func TestList(t *testing.T) {
	service, repository, cache := newFoodService()

	created, err := service.Create(context.Background(), food.Input{Name: "Oatmeal", CaloriesPer100g: 380})
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
	results, err := service.List(context.Background(), "oat")
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 2, repository.listCalls)

	// 4. A write drops the cached listing
	_, err = service.Update(context.Background(), created.ID, food.Input{Name: "Oatmeal", CaloriesPer100g: 370})
	require.NoError(t, err)
	assert.False(t, cache.held)
}

/*
TestCreateUpdate verifies trimming and the missing-row answer on update.
*/
func TestCreateUpdate(t *testing.T) {
	service, _, _ := newFoodService()

	created, err := service.Create(context.Background(), food.Input{Name: "  Brown Rice  ", CaloriesPer100g: 110})
	require.NoError(t, err)
	assert.Equal(t, "Brown Rice", created.Name)

	updated, err := service.Update(context.Background(), created.ID, food.Input{Name: "Brown Rice", CaloriesPer100g: 112})
	require.NoError(t, err)
	assert.Equal(t, 112.0, updated.CaloriesPer100g)

	_, err = service.Update(context.Background(), "food-ghost", food.Input{Name: "X"})
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestDelete verifies that a referenced food refuses deletion with a
Conflict instead of cascading.
*/
func TestDelete(t *testing.T) {
	service, repository, _ := newFoodService()

	created, err := service.Create(context.Background(), food.Input{Name: "Oatmeal"})
	require.NoError(t, err)

	// 1. Diary entries still point at the food
	repository.deleteErr = &pgconn.PgError{Code: "23503"}
	err = service.Delete(context.Background(), created.ID)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, "Food is referenced by diary entries.", ae.Message)

	// 2. Unreferenced food deletes cleanly
	repository.deleteErr = nil
	require.NoError(t, service.Delete(context.Background(), created.ID))

	// 3. A second delete answers NotFound
	err = service.Delete(context.Background(), created.ID)
	assert.True(t, apperr.IsNotFound(err))
}
