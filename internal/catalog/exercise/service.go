// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package exercise

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
	"github.com/phamtuan/vitalog/internal/platform/dberr"
	"github.com/phamtuan/vitalog/pkg/uuid"
)

// Service implements the exercise vocabulary use cases.
type Service struct {
	repository Repository
	cache      ListCache
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repository Repository, cache ListCache) *Service {
	return &Service{repository: repository, cache: cache}
}

// Input carries the client-sent exercise fields for create and update.
type Input struct {
	Name        string
	Description *string
	Category    *string
}

// List returns exercises ordered by name, serving the unfiltered listing
// from cache when possible.
func (service *Service) List(context context.Context, search string) ([]Exercise, error) {
	term := strings.TrimSpace(search)

	if term == "" {
		if cached, ok := service.cache.Get(context); ok {
			return cached, nil
		}
	}

	exercises, err := service.repository.List(context, term)
	if err != nil {
		return nil, err
	}

	if term == "" {
		service.cache.Set(context, exercises)
	}

	return exercises, nil
}

// Get returns one exercise by ID.
func (service *Service) Get(context context.Context, id string) (*Exercise, error) {
	return service.repository.FindByID(context, id)
}

// Create adds a new exercise to the vocabulary. Blank description or
// category values are stored as NULL.
func (service *Service) Create(context context.Context, input Input) (*Exercise, error) {
	entity := &Exercise{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: blankToNil(input.Description),
		Category:    blankToNil(input.Category),
		CreatedAt:   time.Now().UTC(),
	}

	if err := service.repository.Create(context, entity); err != nil {
		return nil, fmt.Errorf("exercise_service_create_failed: %w", err)
	}

	service.cache.Invalidate(context)
	return entity, nil
}

// Update replaces the mutable fields of an existing exercise.
func (service *Service) Update(context context.Context, id string, input Input) (*Exercise, error) {
	existing, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	existing.Name = strings.TrimSpace(input.Name)
	existing.Description = blankToNil(input.Description)
	existing.Category = blankToNil(input.Category)

	updated, err := service.repository.Update(context, existing)
	if err != nil {
		return nil, fmt.Errorf("exercise_service_update_failed: %w", err)
	}
	if !updated {
		return nil, apperr.NotFound("Exercise")
	}

	service.cache.Invalidate(context)
	return existing, nil
}

// Delete removes an exercise; refused with a Conflict while workout entries
// still reference it.
func (service *Service) Delete(context context.Context, id string) error {
	deleted, err := service.repository.Delete(context, id)
	if err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return apperr.Conflict("Exercise is referenced by diary entries.")
		}
		return fmt.Errorf("exercise_service_delete_failed: %w", err)
	}
	if !deleted {
		return apperr.NotFound("Exercise")
	}

	service.cache.Invalidate(context)
	return nil
}

// blankToNil trims an optional value and maps blank input to nil.
func blankToNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
