// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package diary

import (
	"context"
	"fmt"
	"time"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
	"github.com/phamtuan/vitalog/internal/platform/dberr"
	"github.com/phamtuan/vitalog/pkg/uuid"
)

// EatingService implements the eating diary use cases.
type EatingService struct {
	repository EatingRepository
	catalog    FoodCatalog
}

// NewEatingService constructs a new [EatingService] with its dependencies.
func NewEatingService(repository EatingRepository, catalog FoodCatalog) *EatingService {
	return &EatingService{repository: repository, catalog: catalog}
}

/*
List returns the caller's eating plans ordered by date.

Parameters:
  - userID: The authenticated owner.
  - from, to: Optional inclusive day bounds, nil for unbounded.
*/
func (service *EatingService) List(context context.Context, userID string, from, to *time.Time) ([]EatingPlan, error) {
	return service.repository.ListPlans(context, userID, normalizeBound(from), normalizeBound(to))
}

// GetByDate returns the caller's plan for one calendar day.
func (service *EatingService) GetByDate(context context.Context, userID string, day time.Time) (*EatingPlan, error) {
	return service.repository.FindPlanByDate(context, userID, NormalizeDay(day))
}

// GetByID returns one of the caller's plans with its entries.
func (service *EatingService) GetByID(context context.Context, userID, planID string) (*EatingPlan, error) {
	return service.repository.FindPlanByID(context, userID, planID)
}

/*
CreatePlan opens a new eating plan for a calendar day.

The date is normalized to UTC midnight first. A second plan on the same
day is refused with a Conflict; the unique index on (userid, plandate)
gives the same answer when two creates race.
*/
func (service *EatingService) CreatePlan(context context.Context, userID string, date time.Time) (*EatingPlan, error) {
	day := NormalizeDay(date)

	exists, err := service.repository.PlanExistsForDate(context, userID, day, "")
	if err != nil {
		return nil, fmt.Errorf("diary_eating_create_check_failed: %w", err)
	}
	if exists {
		return nil, apperr.Conflict("A plan already exists for this date.")
	}

	plan := &EatingPlan{
		ID:        uuid.New(),
		UserID:    userID,
		PlanDate:  day,
		CreatedAt: time.Now().UTC(),
		Entries:   []EatingEntry{},
	}

	if err := service.repository.CreatePlan(context, plan); err != nil {
		if dberr.IsUniqueViolation(err) {
			return nil, apperr.Conflict("A plan already exists for this date.")
		}
		return nil, fmt.Errorf("diary_eating_create_failed: %w", err)
	}

	return plan, nil
}

/*
ChangePlanDate moves one of the caller's plans to a different day.

A request for the day the plan already sits on is a no-op. Otherwise the
target day must be free, excluding the plan itself from the check.
*/
func (service *EatingService) ChangePlanDate(context context.Context, userID, planID string, date time.Time) (*EatingPlan, error) {
	plan, err := service.repository.FindPlanByID(context, userID, planID)
	if err != nil {
		return nil, err
	}

	day := NormalizeDay(date)
	if day.Equal(NormalizeDay(plan.PlanDate)) {
		return plan, nil
	}

	exists, err := service.repository.PlanExistsForDate(context, userID, day, planID)
	if err != nil {
		return nil, fmt.Errorf("diary_eating_move_check_failed: %w", err)
	}
	if exists {
		return nil, apperr.Conflict("A plan already exists for this date.")
	}

	updated, err := service.repository.UpdatePlanDate(context, userID, planID, day)
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return nil, apperr.Conflict("A plan already exists for this date.")
		}
		return nil, fmt.Errorf("diary_eating_move_failed: %w", err)
	}
	if !updated {
		return nil, apperr.NotFound("Plan")
	}

	plan.PlanDate = day
	return plan, nil
}

// DeletePlan removes one of the caller's plans together with its entries.
func (service *EatingService) DeletePlan(context context.Context, userID, planID string) error {
	deleted, err := service.repository.DeletePlan(context, userID, planID)
	if err != nil {
		return fmt.Errorf("diary_eating_delete_failed: %w", err)
	}
	if !deleted {
		return apperr.NotFound("Plan")
	}
	return nil
}

/*
AddEntry appends a food line to one of the caller's plans.

The referenced food must exist in the catalog; a dangling reference is a
validation failure, not a conflict. The foreign key gives the same
answer when the food disappears between the check and the insert.
*/
func (service *EatingService) AddEntry(context context.Context, userID, planID, foodID string, quantityGrams float64) (*EatingEntry, error) {
	if _, err := service.repository.FindPlanByID(context, userID, planID); err != nil {
		return nil, err
	}

	referenced, err := service.catalog.FindByID(context, foodID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.ValidationError("Food not found.")
		}
		return nil, err
	}

	entry := &EatingEntry{
		ID:            uuid.New(),
		PlanID:        planID,
		FoodID:        foodID,
		QuantityGrams: quantityGrams,
	}

	if err := service.repository.CreateEntry(context, entry); err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return nil, apperr.ValidationError("Food not found.")
		}
		return nil, fmt.Errorf("diary_eating_entry_create_failed: %w", err)
	}

	entry.FoodName = &referenced.Name
	return entry, nil
}

// UpdateEntry replaces the quantity of one entry in the caller's plan.
func (service *EatingService) UpdateEntry(context context.Context, userID, planID, entryID string, quantityGrams float64) (*EatingEntry, error) {
	if _, err := service.repository.FindPlanByID(context, userID, planID); err != nil {
		return nil, err
	}

	entry, err := service.repository.FindEntry(context, planID, entryID)
	if err != nil {
		return nil, err
	}

	entry.QuantityGrams = quantityGrams

	updated, err := service.repository.UpdateEntry(context, entry)
	if err != nil {
		return nil, fmt.Errorf("diary_eating_entry_update_failed: %w", err)
	}
	if !updated {
		return nil, apperr.NotFound("Entry")
	}

	return entry, nil
}

// DeleteEntry removes one entry of the caller's plan.
func (service *EatingService) DeleteEntry(context context.Context, userID, planID, entryID string) error {
	if _, err := service.repository.FindPlanByID(context, userID, planID); err != nil {
		return err
	}

	deleted, err := service.repository.DeleteEntry(context, planID, entryID)
	if err != nil {
		return fmt.Errorf("diary_eating_entry_delete_failed: %w", err)
	}
	if !deleted {
		return apperr.NotFound("Entry")
	}
	return nil
}

// normalizeBound maps an optional timestamp bound to UTC midnight.
func normalizeBound(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	day := NormalizeDay(*value)
	return &day
}
