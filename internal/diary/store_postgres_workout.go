// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package diary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
)

// PostgresWorkoutRepository persists workout plans in diary.workoutplan
// and their entries in diary.workoutentry.
type PostgresWorkoutRepository struct {
	pool *pgxpool.Pool
}

// NewWorkoutRepository constructs a new [PostgresWorkoutRepository].
func NewWorkoutRepository(pool *pgxpool.Pool) *PostgresWorkoutRepository {
	return &PostgresWorkoutRepository{pool: pool}
}

func (repository *PostgresWorkoutRepository) ListPlans(context context.Context, userID string, from, to *time.Time) ([]WorkoutPlan, error) {
	query := `
		SELECT id, userid, plandate, createdat
		FROM diary.workoutplan
		WHERE userid = $1
		  AND ($2::date IS NULL OR plandate >= $2)
		  AND ($3::date IS NULL OR plandate <= $3)
		ORDER BY plandate ASC`

	rows, err := repository.pool.Query(context, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("diary_workout_repo_list_failed: %w", err)
	}
	defer rows.Close()

	plans := make([]WorkoutPlan, 0)
	for rows.Next() {
		var plan WorkoutPlan
		if err := rows.Scan(&plan.ID, &plan.UserID, &plan.PlanDate, &plan.CreatedAt); err != nil {
			return nil, fmt.Errorf("diary_workout_repo_scan_failed: %w", err)
		}
		plan.Entries = []WorkoutEntry{}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("diary_workout_repo_rows_failed: %w", err)
	}

	if err := repository.attachEntries(context, plans); err != nil {
		return nil, err
	}

	return plans, nil
}

func (repository *PostgresWorkoutRepository) FindPlanByDate(context context.Context, userID string, day time.Time) (*WorkoutPlan, error) {
	query := `
		SELECT id, userid, plandate, createdat
		FROM diary.workoutplan
		WHERE userid = $1 AND plandate = $2`

	return repository.scanPlan(context, query, userID, day)
}

func (repository *PostgresWorkoutRepository) FindPlanByID(context context.Context, userID, planID string) (*WorkoutPlan, error) {
	query := `
		SELECT id, userid, plandate, createdat
		FROM diary.workoutplan
		WHERE id = $2 AND userid = $1`

	return repository.scanPlan(context, query, userID, planID)
}

func (repository *PostgresWorkoutRepository) PlanExistsForDate(context context.Context, userID string, day time.Time, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM diary.workoutplan
			WHERE userid = $1 AND plandate = $2 AND ($3 = '' OR id <> $3::uuid)
		)`

	var exists bool
	if err := repository.pool.QueryRow(context, query, userID, day, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("diary_workout_repo_exists_failed: %w", err)
	}

	return exists, nil
}

// CreatePlan returns the raw driver error so the service can classify
// unique violations on (userid, plandate).
func (repository *PostgresWorkoutRepository) CreatePlan(context context.Context, plan *WorkoutPlan) error {
	query := `
		INSERT INTO diary.workoutplan (id, userid, plandate, createdat)
		VALUES ($1, $2, $3, $4)`

	_, err := repository.pool.Exec(context, query, plan.ID, plan.UserID, plan.PlanDate, plan.CreatedAt)
	return err
}

func (repository *PostgresWorkoutRepository) UpdatePlanDate(context context.Context, userID, planID string, day time.Time) (bool, error) {
	query := `
		UPDATE diary.workoutplan
		SET plandate = $3
		WHERE id = $2 AND userid = $1`

	tag, err := repository.pool.Exec(context, query, userID, planID, day)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (repository *PostgresWorkoutRepository) DeletePlan(context context.Context, userID, planID string) (bool, error) {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return false, fmt.Errorf("diary_workout_repo_begin_failed: %w", err)
	}
	defer transaction.Rollback(context)

	entriesQuery := `
		DELETE FROM diary.workoutentry
		WHERE planid IN (SELECT id FROM diary.workoutplan WHERE id = $2 AND userid = $1)`
	if _, err := transaction.Exec(context, entriesQuery, userID, planID); err != nil {
		return false, fmt.Errorf("diary_workout_repo_delete_entries_failed: %w", err)
	}

	tag, err := transaction.Exec(context,
		`DELETE FROM diary.workoutplan WHERE id = $2 AND userid = $1`, userID, planID)
	if err != nil {
		return false, fmt.Errorf("diary_workout_repo_delete_failed: %w", err)
	}

	if err := transaction.Commit(context); err != nil {
		return false, fmt.Errorf("diary_workout_repo_commit_failed: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// CreateEntry returns the raw driver error so the service can classify
// foreign key violations from a missing exercise.
func (repository *PostgresWorkoutRepository) CreateEntry(context context.Context, entry *WorkoutEntry) error {
	query := `
		INSERT INTO diary.workoutentry (id, planid, exerciseid, durationminutes, sets, reps)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := repository.pool.Exec(context, query,
		entry.ID, entry.PlanID, entry.ExerciseID, entry.DurationMinutes, entry.Sets, entry.Reps)
	return err
}

func (repository *PostgresWorkoutRepository) FindEntry(context context.Context, planID, entryID string) (*WorkoutEntry, error) {
	query := `
		SELECT e.id, e.planid, e.exerciseid, x.name, e.durationminutes, e.sets, e.reps
		FROM diary.workoutentry e
		LEFT JOIN catalog.exercise x ON x.id = e.exerciseid
		WHERE e.id = $2 AND e.planid = $1`

	var entry WorkoutEntry
	err := repository.pool.QueryRow(context, query, planID, entryID).
		Scan(&entry.ID, &entry.PlanID, &entry.ExerciseID, &entry.ExerciseName,
			&entry.DurationMinutes, &entry.Sets, &entry.Reps)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Entry")
		}
		return nil, fmt.Errorf("diary_workout_repo_find_entry_failed: %w", err)
	}

	return &entry, nil
}

func (repository *PostgresWorkoutRepository) UpdateEntry(context context.Context, entry *WorkoutEntry) (bool, error) {
	query := `
		UPDATE diary.workoutentry
		SET durationminutes = $3, sets = $4, reps = $5
		WHERE id = $2 AND planid = $1`

	tag, err := repository.pool.Exec(context, query,
		entry.PlanID, entry.ID, entry.DurationMinutes, entry.Sets, entry.Reps)
	if err != nil {
		return false, fmt.Errorf("diary_workout_repo_update_entry_failed: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (repository *PostgresWorkoutRepository) DeleteEntry(context context.Context, planID, entryID string) (bool, error) {
	tag, err := repository.pool.Exec(context,
		`DELETE FROM diary.workoutentry WHERE id = $2 AND planid = $1`, planID, entryID)
	if err != nil {
		return false, fmt.Errorf("diary_workout_repo_delete_entry_failed: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (repository *PostgresWorkoutRepository) scanPlan(context context.Context, query string, arguments ...any) (*WorkoutPlan, error) {
	var plan WorkoutPlan
	err := repository.pool.QueryRow(context, query, arguments...).
		Scan(&plan.ID, &plan.UserID, &plan.PlanDate, &plan.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Plan")
		}
		return nil, fmt.Errorf("diary_workout_repo_find_failed: %w", err)
	}

	plan.Entries = []WorkoutEntry{}
	plans := []WorkoutPlan{plan}
	if err := repository.attachEntries(context, plans); err != nil {
		return nil, err
	}

	return &plans[0], nil
}

func (repository *PostgresWorkoutRepository) attachEntries(context context.Context, plans []WorkoutPlan) error {
	if len(plans) == 0 {
		return nil
	}

	planIDs := make([]string, len(plans))
	index := make(map[string]*WorkoutPlan, len(plans))
	for i := range plans {
		planIDs[i] = plans[i].ID
		index[plans[i].ID] = &plans[i]
	}

	query := `
		SELECT e.id, e.planid, e.exerciseid, x.name, e.durationminutes, e.sets, e.reps
		FROM diary.workoutentry e
		LEFT JOIN catalog.exercise x ON x.id = e.exerciseid
		WHERE e.planid = ANY($1)
		ORDER BY e.id ASC`

	rows, err := repository.pool.Query(context, query, planIDs)
	if err != nil {
		return fmt.Errorf("diary_workout_repo_entries_failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry WorkoutEntry
		err := rows.Scan(&entry.ID, &entry.PlanID, &entry.ExerciseID, &entry.ExerciseName,
			&entry.DurationMinutes, &entry.Sets, &entry.Reps)
		if err != nil {
			return fmt.Errorf("diary_workout_repo_entry_scan_failed: %w", err)
		}
		if plan, ok := index[entry.PlanID]; ok {
			plan.Entries = append(plan.Entries, entry)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("diary_workout_repo_entry_rows_failed: %w", err)
	}

	return nil
}
