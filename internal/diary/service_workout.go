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

// WorkoutService implements the workout diary use cases, following the
// same consistency rules as [EatingService].
type WorkoutService struct {
	repository WorkoutRepository
	catalog    ExerciseCatalog
}

// NewWorkoutService constructs a new [WorkoutService] with its dependencies.
func NewWorkoutService(repository WorkoutRepository, catalog ExerciseCatalog) *WorkoutService {
	return &WorkoutService{repository: repository, catalog: catalog}
}

// WorkoutMeasurements carries the optional per-entry measurement fields.
type WorkoutMeasurements struct {
	DurationMinutes *int
	Sets            *int
	Reps            *int
}

// List returns the caller's workout plans ordered by date, optionally
// bounded by inclusive from/to days.
func (service *WorkoutService) List(context context.Context, userID string, from, to *time.Time) ([]WorkoutPlan, error) {
	return service.repository.ListPlans(context, userID, normalizeBound(from), normalizeBound(to))
}

// GetByDate returns the caller's plan for one calendar day.
func (service *WorkoutService) GetByDate(context context.Context, userID string, day time.Time) (*WorkoutPlan, error) {
	return service.repository.FindPlanByDate(context, userID, NormalizeDay(day))
}

// GetByID returns one of the caller's plans with its entries.
func (service *WorkoutService) GetByID(context context.Context, userID, planID string) (*WorkoutPlan, error) {
	return service.repository.FindPlanByID(context, userID, planID)
}

// CreatePlan opens a new workout plan for a calendar day. One plan per
// day and owner; concurrent creates resolve at the unique index.
func (service *WorkoutService) CreatePlan(context context.Context, userID string, date time.Time) (*WorkoutPlan, error) {
	day := NormalizeDay(date)

	exists, err := service.repository.PlanExistsForDate(context, userID, day, "")
	if err != nil {
		return nil, fmt.Errorf("diary_workout_create_check_failed: %w", err)
	}
	if exists {
		return nil, apperr.Conflict("A plan already exists for this date.")
	}

	plan := &WorkoutPlan{
		ID:        uuid.New(),
		UserID:    userID,
		PlanDate:  day,
		CreatedAt: time.Now().UTC(),
		Entries:   []WorkoutEntry{},
	}

	if err := service.repository.CreatePlan(context, plan); err != nil {
		if dberr.IsUniqueViolation(err) {
			return nil, apperr.Conflict("A plan already exists for this date.")
		}
		return nil, fmt.Errorf("diary_workout_create_failed: %w", err)
	}

	return plan, nil
}

// ChangePlanDate moves one of the caller's plans to a different day.
// Same-day requests are a no-op.
func (service *WorkoutService) ChangePlanDate(context context.Context, userID, planID string, date time.Time) (*WorkoutPlan, error) {
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
		return nil, fmt.Errorf("diary_workout_move_check_failed: %w", err)
	}
	if exists {
		return nil, apperr.Conflict("A plan already exists for this date.")
	}

	updated, err := service.repository.UpdatePlanDate(context, userID, planID, day)
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return nil, apperr.Conflict("A plan already exists for this date.")
		}
		return nil, fmt.Errorf("diary_workout_move_failed: %w", err)
	}
	if !updated {
		return nil, apperr.NotFound("Plan")
	}

	plan.PlanDate = day
	return plan, nil
}

// DeletePlan removes one of the caller's plans together with its entries.
func (service *WorkoutService) DeletePlan(context context.Context, userID, planID string) error {
	deleted, err := service.repository.DeletePlan(context, userID, planID)
	if err != nil {
		return fmt.Errorf("diary_workout_delete_failed: %w", err)
	}
	if !deleted {
		return apperr.NotFound("Plan")
	}
	return nil
}

// AddEntry appends an exercise line to one of the caller's plans. The
// referenced exercise must exist in the catalog.
func (service *WorkoutService) AddEntry(context context.Context, userID, planID, exerciseID string, measurements WorkoutMeasurements) (*WorkoutEntry, error) {
	if _, err := service.repository.FindPlanByID(context, userID, planID); err != nil {
		return nil, err
	}

	referenced, err := service.catalog.FindByID(context, exerciseID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.ValidationError("Exercise not found.")
		}
		return nil, err
	}

	entry := &WorkoutEntry{
		ID:              uuid.New(),
		PlanID:          planID,
		ExerciseID:      exerciseID,
		DurationMinutes: measurements.DurationMinutes,
		Sets:            measurements.Sets,
		Reps:            measurements.Reps,
	}

	if err := service.repository.CreateEntry(context, entry); err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return nil, apperr.ValidationError("Exercise not found.")
		}
		return nil, fmt.Errorf("diary_workout_entry_create_failed: %w", err)
	}

	entry.ExerciseName = &referenced.Name
	return entry, nil
}

// UpdateEntry replaces the measurements of one entry in the caller's
// plan. Omitted measurements are cleared, not preserved.
func (service *WorkoutService) UpdateEntry(context context.Context, userID, planID, entryID string, measurements WorkoutMeasurements) (*WorkoutEntry, error) {
	if _, err := service.repository.FindPlanByID(context, userID, planID); err != nil {
		return nil, err
	}

	entry, err := service.repository.FindEntry(context, planID, entryID)
	if err != nil {
		return nil, err
	}

	entry.DurationMinutes = measurements.DurationMinutes
	entry.Sets = measurements.Sets
	entry.Reps = measurements.Reps

	updated, err := service.repository.UpdateEntry(context, entry)
	if err != nil {
		return nil, fmt.Errorf("diary_workout_entry_update_failed: %w", err)
	}
	if !updated {
		return nil, apperr.NotFound("Entry")
	}

	return entry, nil
}

// DeleteEntry removes one entry of the caller's plan.
func (service *WorkoutService) DeleteEntry(context context.Context, userID, planID, entryID string) error {
	if _, err := service.repository.FindPlanByID(context, userID, planID); err != nil {
		return err
	}

	deleted, err := service.repository.DeleteEntry(context, planID, entryID)
	if err != nil {
		return fmt.Errorf("diary_workout_entry_delete_failed: %w", err)
	}
	if !deleted {
		return apperr.NotFound("Entry")
	}
	return nil
}
