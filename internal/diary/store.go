// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package diary

import (
	"context"
	"time"

	"github.com/phamtuan/vitalog/internal/catalog/exercise"
	"github.com/phamtuan/vitalog/internal/catalog/food"
)

/*
EatingRepository defines the data access contract for eating plans.

Every plan lookup and mutation is scoped to the owning user in the same
query, so a plan belonging to someone else is indistinguishable from a
missing one. Create methods return raw driver errors for SQLSTATE
classification upstream.
*/
type EatingRepository interface {

	// ListPlans returns the user's plans ordered by date ascending, with
	// entries and resolved food names. Nil bounds mean unbounded.
	ListPlans(context context.Context, userID string, from, to *time.Time) ([]EatingPlan, error)

	// FindPlanByDate returns the user's plan for the given day, or
	// apperr.NotFound.
	FindPlanByDate(context context.Context, userID string, day time.Time) (*EatingPlan, error)

	// FindPlanByID returns the user's plan by ID, or apperr.NotFound.
	FindPlanByID(context context.Context, userID, planID string) (*EatingPlan, error)

	// PlanExistsForDate reports whether the user already has a plan on the
	// given day, ignoring the plan with excludeID when non-empty.
	PlanExistsForDate(context context.Context, userID string, day time.Time, excludeID string) (bool, error)

	// CreatePlan persists a new plan row. Unique violations on
	// (userid, plandate) are returned raw.
	CreatePlan(context context.Context, plan *EatingPlan) error

	// UpdatePlanDate moves the user's plan to a new day, reporting whether
	// a row matched. Unique violations are returned raw.
	UpdatePlanDate(context context.Context, userID, planID string, day time.Time) (bool, error)

	// DeletePlan removes the user's plan and its entries in one
	// transaction, reporting whether a plan matched.
	DeletePlan(context context.Context, userID, planID string) (bool, error)

	// CreateEntry persists a new entry row. Foreign key violations from a
	// missing food are returned raw.
	CreateEntry(context context.Context, entry *EatingEntry) error

	// FindEntry returns one entry of the given plan with its resolved food
	// name, or apperr.NotFound.
	FindEntry(context context.Context, planID, entryID string) (*EatingEntry, error)

	// UpdateEntry persists a changed quantity, reporting whether a row of
	// the given plan matched.
	UpdateEntry(context context.Context, entry *EatingEntry) (bool, error)

	// DeleteEntry removes one entry of the given plan, reporting whether a
	// row matched.
	DeleteEntry(context context.Context, planID, entryID string) (bool, error)
}

// WorkoutRepository mirrors [EatingRepository] for workout plans.
type WorkoutRepository interface {
	ListPlans(context context.Context, userID string, from, to *time.Time) ([]WorkoutPlan, error)
	FindPlanByDate(context context.Context, userID string, day time.Time) (*WorkoutPlan, error)
	FindPlanByID(context context.Context, userID, planID string) (*WorkoutPlan, error)
	PlanExistsForDate(context context.Context, userID string, day time.Time, excludeID string) (bool, error)
	CreatePlan(context context.Context, plan *WorkoutPlan) error
	UpdatePlanDate(context context.Context, userID, planID string, day time.Time) (bool, error)
	DeletePlan(context context.Context, userID, planID string) (bool, error)
	CreateEntry(context context.Context, entry *WorkoutEntry) error
	FindEntry(context context.Context, planID, entryID string) (*WorkoutEntry, error)
	UpdateEntry(context context.Context, entry *WorkoutEntry) (bool, error)
	DeleteEntry(context context.Context, planID, entryID string) (bool, error)
}

// FoodCatalog is the slice of the food vocabulary the eating diary needs.
// Satisfied by [food.PostgresRepository].
type FoodCatalog interface {
	FindByID(context context.Context, id string) (*food.Food, error)
}

// ExerciseCatalog is the slice of the exercise vocabulary the workout
// diary needs. Satisfied by [exercise.PostgresRepository].
type ExerciseCatalog interface {
	FindByID(context context.Context, id string) (*exercise.Exercise, error)
}
