// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package food

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
	"github.com/phamtuan/vitalog/internal/platform/dberr"
	"github.com/phamtuan/vitalog/pkg/uuid"
)

// Service implements the food vocabulary use cases.
type Service struct {
	repository Repository
	cache      ListCache
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repository Repository, cache ListCache) *Service {
	return &Service{repository: repository, cache: cache}
}

// # Input Types

// Input carries the client-sent food fields for create and update.
type Input struct {
	Name            string
	CaloriesPer100g float64
	ProteinPer100g  float64
	CarbsPer100g    float64
	FatPer100g      float64
}

/*
List returns foods ordered by name, serving the unfiltered listing from
cache when possible.

Parameters:
  - context: context.Context
  - search: string (optional name filter; filtered queries bypass the cache)

Returns:
  - []Food: Ordered rows
  - err: Retrieval failures
*/
func (service *Service) List(context context.Context, search string) ([]Food, error) {
	term := strings.TrimSpace(search)

	// Only the unfiltered listing is cache-worthy; search terms fan out too much.
	if term == "" {
		if cached, ok := service.cache.Get(context); ok {
			return cached, nil
		}
	}

	foods, err := service.repository.List(context, term)
	if err != nil {
		return nil, err
	}

	if term == "" {
		service.cache.Set(context, foods)
	}

	return foods, nil
}

/*
Get returns one food by ID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Food: Hydrated entity
  - err: NotFound or retrieval failures
*/
func (service *Service) Get(context context.Context, id string) (*Food, error) {
	return service.repository.FindByID(context, id)
}

/*
Create adds a new food to the vocabulary.

Parameters:
  - context: context.Context
  - input: Input

Returns:
  - *Food: The persisted entity
  - err: Storage failures
*/
func (service *Service) Create(context context.Context, input Input) (*Food, error) {
	entity := &Food{
		ID:              uuid.New(),
		Name:            strings.TrimSpace(input.Name),
		CaloriesPer100g: input.CaloriesPer100g,
		ProteinPer100g:  input.ProteinPer100g,
		CarbsPer100g:    input.CarbsPer100g,
		FatPer100g:      input.FatPer100g,
		CreatedAt:       time.Now().UTC(),
	}

	if err := service.repository.Create(context, entity); err != nil {
		return nil, fmt.Errorf("food_service_create_failed: %w", err)
	}

	service.cache.Invalidate(context)
	return entity, nil
}

/*
Update replaces the mutable fields of an existing food.

Parameters:
  - context: context.Context
  - id: string
  - input: Input

Returns:
  - *Food: The persisted state
  - err: NotFound or storage failures
*/
func (service *Service) Update(context context.Context, id string, input Input) (*Food, error) {
	existing, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	existing.Name = strings.TrimSpace(input.Name)
	existing.CaloriesPer100g = input.CaloriesPer100g
	existing.ProteinPer100g = input.ProteinPer100g
	existing.CarbsPer100g = input.CarbsPer100g
	existing.FatPer100g = input.FatPer100g

	updated, err := service.repository.Update(context, existing)
	if err != nil {
		return nil, fmt.Errorf("food_service_update_failed: %w", err)
	}
	if !updated {
		return nil, apperr.NotFound("Food")
	}

	service.cache.Invalidate(context)
	return existing, nil
}

/*
Delete removes a food from the vocabulary.

Description: The RESTRICT foreign key from eating entries refuses deletion
while references exist; that surfaces as a Conflict, not a cascade.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - err: NotFound, Conflict (still referenced), or storage failures
*/
func (service *Service) Delete(context context.Context, id string) error {
	deleted, err := service.repository.Delete(context, id)
	if err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return apperr.Conflict("Food is referenced by diary entries.")
		}
		return fmt.Errorf("food_service_delete_failed: %w", err)
	}
	if !deleted {
		return apperr.NotFound("Food")
	}

	service.cache.Invalidate(context)
	return nil
}
