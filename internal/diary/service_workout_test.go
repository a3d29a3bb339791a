// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package diary_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamtuan/vitalog/internal/catalog/exercise"
	"github.com/phamtuan/vitalog/internal/diary"
	"github.com/phamtuan/vitalog/internal/platform/apperr"
	"github.com/phamtuan/vitalog/pkg/pointer"
)

// fakeWorkoutRepository is an in-memory WorkoutRepository.
type fakeWorkoutRepository struct {
	plans   map[string]*diary.WorkoutPlan
	entries map[string]*diary.WorkoutEntry
}

func newFakeWorkoutRepository() *fakeWorkoutRepository {
	return &fakeWorkoutRepository{
		plans:   make(map[string]*diary.WorkoutPlan),
		entries: make(map[string]*diary.WorkoutEntry),
	}
}

func (f *fakeWorkoutRepository) ListPlans(_ context.Context, userID string, _, _ *time.Time) ([]diary.WorkoutPlan, error) {
	var result []diary.WorkoutPlan
	for _, plan := range f.plans {
		if plan.UserID == userID {
			result = append(result, *plan)
		}
	}
	return result, nil
}

func (f *fakeWorkoutRepository) FindPlanByDate(_ context.Context, userID string, day time.Time) (*diary.WorkoutPlan, error) {
	for _, plan := range f.plans {
		if plan.UserID == userID && plan.PlanDate.Equal(day) {
			return plan, nil
		}
	}
	return nil, apperr.NotFound("Plan")
}

func (f *fakeWorkoutRepository) FindPlanByID(_ context.Context, userID, planID string) (*diary.WorkoutPlan, error) {
	plan, ok := f.plans[planID]
	if !ok || plan.UserID != userID {
		return nil, apperr.NotFound("Plan")
	}
	return plan, nil
}

func (f *fakeWorkoutRepository) PlanExistsForDate(_ context.Context, userID string, day time.Time, excludeID string) (bool, error) {
	for id, plan := range f.plans {
		if plan.UserID == userID && plan.PlanDate.Equal(day) && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeWorkoutRepository) CreatePlan(_ context.Context, plan *diary.WorkoutPlan) error {
	f.plans[plan.ID] = plan
	return nil
}

func (f *fakeWorkoutRepository) UpdatePlanDate(_ context.Context, userID, planID string, day time.Time) (bool, error) {
	plan, ok := f.plans[planID]
	if !ok || plan.UserID != userID {
		return false, nil
	}
	plan.PlanDate = day
	return true, nil
}

func (f *fakeWorkoutRepository) DeletePlan(_ context.Context, userID, planID string) (bool, error) {
	plan, ok := f.plans[planID]
	if !ok || plan.UserID != userID {
		return false, nil
	}
	delete(f.plans, planID)
	return true, nil
}

func (f *fakeWorkoutRepository) CreateEntry(_ context.Context, entry *diary.WorkoutEntry) error {
	f.entries[entry.ID] = entry
	return nil
}

func (f *fakeWorkoutRepository) FindEntry(_ context.Context, planID, entryID string) (*diary.WorkoutEntry, error) {
	entry, ok := f.entries[entryID]
	if !ok || entry.PlanID != planID {
		return nil, apperr.NotFound("Entry")
	}
	return entry, nil
}

func (f *fakeWorkoutRepository) UpdateEntry(_ context.Context, entry *diary.WorkoutEntry) (bool, error) {
	if _, ok := f.entries[entry.ID]; !ok {
		return false, nil
	}
	f.entries[entry.ID] = entry
	return true, nil
}

func (f *fakeWorkoutRepository) DeleteEntry(_ context.Context, planID, entryID string) (bool, error) {
	entry, ok := f.entries[entryID]
	if !ok || entry.PlanID != planID {
		return false, nil
	}
	delete(f.entries, entryID)
	return true, nil
}

// fakeExerciseCatalog serves a fixed exercise vocabulary.
type fakeExerciseCatalog struct {
	exercises map[string]*exercise.Exercise
}

func (f *fakeExerciseCatalog) FindByID(_ context.Context, id string) (*exercise.Exercise, error) {
	if item, ok := f.exercises[id]; ok {
		return item, nil
	}
	return nil, apperr.NotFound("Exercise")
}

func newWorkoutService() (*diary.WorkoutService, *fakeWorkoutRepository) {
	repository := newFakeWorkoutRepository()
	catalog := &fakeExerciseCatalog{exercises: map[string]*exercise.Exercise{
		"ex-1": {ID: "ex-1", Name: "Deadlift"},
	}}
	return diary.NewWorkoutService(repository, catalog), repository
}

/*
TestWorkoutAddEntry verifies measurement handling and catalog reference
checks for workout entries.
*/
func TestWorkoutAddEntry(t *testing.T) {
	service, _ := newWorkoutService()

	plan, err := service.CreatePlan(context.Background(), "user-1", day("2026-03-01"))
	require.NoError(t, err)

	t.Run("all_measurements_optional", func(t *testing.T) {
		entry, err := service.AddEntry(context.Background(), "user-1", plan.ID, "ex-1", diary.WorkoutMeasurements{})
		require.NoError(t, err)

		assert.Nil(t, entry.DurationMinutes)
		assert.Nil(t, entry.Sets)
		assert.Nil(t, entry.Reps)
		require.NotNil(t, entry.ExerciseName)
		assert.Equal(t, "Deadlift", *entry.ExerciseName)
	})

	t.Run("measurements_stored_verbatim", func(t *testing.T) {
		entry, err := service.AddEntry(context.Background(), "user-1", plan.ID, "ex-1", diary.WorkoutMeasurements{
			DurationMinutes: pointer.To(45),
			Sets:            pointer.To(5),
		})
		require.NoError(t, err)

		assert.Equal(t, 45, pointer.Val(entry.DurationMinutes))
		assert.Equal(t, 5, pointer.Val(entry.Sets))
		assert.Nil(t, entry.Reps)
	})

	t.Run("unknown_exercise_is_a_validation_failure", func(t *testing.T) {
		_, err := service.AddEntry(context.Background(), "user-1", plan.ID, "ex-ghost", diary.WorkoutMeasurements{})
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		assert.Equal(t, "Exercise not found.", ae.Message)
	})
}

/*
TestWorkoutUpdateEntry verifies that omitted measurements are cleared on
update, not preserved.
*/
func TestWorkoutUpdateEntry(t *testing.T) {
	service, _ := newWorkoutService()

	plan, err := service.CreatePlan(context.Background(), "user-1", day("2026-03-01"))
	require.NoError(t, err)

	entry, err := service.AddEntry(context.Background(), "user-1", plan.ID, "ex-1", diary.WorkoutMeasurements{
		DurationMinutes: pointer.To(45),
		Sets:            pointer.To(5),
		Reps:            pointer.To(8),
	})
	require.NoError(t, err)

	// Update sends only sets; duration and reps must come back empty
	updated, err := service.UpdateEntry(context.Background(), "user-1", plan.ID, entry.ID, diary.WorkoutMeasurements{
		Sets: pointer.To(6),
	})
	require.NoError(t, err)

	assert.Nil(t, updated.DurationMinutes)
	assert.Equal(t, 6, pointer.Val(updated.Sets))
	assert.Nil(t, updated.Reps)
}
