// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
	"github.com/phamtuan/vitalog/pkg/uuid"
)

// Service implements the profile read/upsert use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

/*
Get returns the caller's profile, or nil when none exists yet.

Description: Absence is not an error at this endpoint; the SPA renders an
empty form when it receives null.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *Profile: Hydrated entity, or nil when absent
  - error: Retrieval failures
*/
func (service *Service) Get(context context.Context, userID string) (*Profile, error) {
	existing, err := service.repository.FindByUserID(context, userID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return existing, nil
}

// # Upsert Flow

// UpdateInput carries the client-sent profile fields.
//
// DisplayName and Gender distinguish "not sent" (nil) from "sent blank"
// (blank clears the column). The measurement fields overwrite unconditionally.
type UpdateInput struct {
	DisplayName *string
	Gender      *string
	DateOfBirth *time.Time
	HeightCm    *float64
	WeightKg    *float64
}

/*
Update lazily creates or updates the caller's profile.

Description: The first PUT creates the row; later PUTs mutate it. Blank
display name or gender values are stored as NULL, which also flips the
hasProfile flag back to false on the next login.

Parameters:
  - context: context.Context
  - userID: string
  - input: UpdateInput

Returns:
  - *Profile: The persisted state after the write
  - err: Storage failures
*/
func (service *Service) Update(context context.Context, userID string, input UpdateInput) (*Profile, error) {
	existing, err := service.Get(context, userID)
	if err != nil {
		return nil, err
	}

	isNew := existing == nil
	if isNew {
		existing = &Profile{
			ID:        uuid.New(),
			UserID:    userID,
			CreatedAt: time.Now().UTC(),
		}
	} else {
		now := time.Now().UTC()
		existing.UpdatedAt = &now
	}

	// Only sent text fields are touched; blank values clear the column.
	if input.DisplayName != nil {
		existing.DisplayName = blankToNil(*input.DisplayName)
	}
	if input.Gender != nil {
		existing.Gender = blankToNil(*input.Gender)
	}

	// Measurements mirror the request verbatim, including absence.
	existing.DateOfBirth = input.DateOfBirth
	existing.HeightCm = input.HeightCm
	existing.WeightKg = input.WeightKg

	if isNew {
		err = service.repository.Create(context, existing)
	} else {
		err = service.repository.Update(context, existing)
	}
	if err != nil {
		return nil, fmt.Errorf("profile_service_upsert_failed: %w", err)
	}

	return existing, nil
}

// blankToNil trims the value and maps an empty result to nil (stored as NULL).
func blankToNil(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
