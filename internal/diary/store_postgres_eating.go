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

// PostgresEatingRepository persists eating plans in diary.eatingplan and
// their entries in diary.eatingentry.
type PostgresEatingRepository struct {
	pool *pgxpool.Pool
}

// NewEatingRepository constructs a new [PostgresEatingRepository].
func NewEatingRepository(pool *pgxpool.Pool) *PostgresEatingRepository {
	return &PostgresEatingRepository{pool: pool}
}

func (repository *PostgresEatingRepository) ListPlans(context context.Context, userID string, from, to *time.Time) ([]EatingPlan, error) {
	query := `
		SELECT id, userid, plandate, createdat
		FROM diary.eatingplan
		WHERE userid = $1
		  AND ($2::date IS NULL OR plandate >= $2)
		  AND ($3::date IS NULL OR plandate <= $3)
		ORDER BY plandate ASC`

	rows, err := repository.pool.Query(context, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("diary_eating_repo_list_failed: %w", err)
	}
	defer rows.Close()

	plans := make([]EatingPlan, 0)
	for rows.Next() {
		var plan EatingPlan
		if err := rows.Scan(&plan.ID, &plan.UserID, &plan.PlanDate, &plan.CreatedAt); err != nil {
			return nil, fmt.Errorf("diary_eating_repo_scan_failed: %w", err)
		}
		plan.Entries = []EatingEntry{}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("diary_eating_repo_rows_failed: %w", err)
	}

	if err := repository.attachEntries(context, plans); err != nil {
		return nil, err
	}

	return plans, nil
}

func (repository *PostgresEatingRepository) FindPlanByDate(context context.Context, userID string, day time.Time) (*EatingPlan, error) {
	query := `
		SELECT id, userid, plandate, createdat
		FROM diary.eatingplan
		WHERE userid = $1 AND plandate = $2`

	return repository.scanPlan(context, query, userID, day)
}

func (repository *PostgresEatingRepository) FindPlanByID(context context.Context, userID, planID string) (*EatingPlan, error) {
	query := `
		SELECT id, userid, plandate, createdat
		FROM diary.eatingplan
		WHERE id = $2 AND userid = $1`

	return repository.scanPlan(context, query, userID, planID)
}

func (repository *PostgresEatingRepository) PlanExistsForDate(context context.Context, userID string, day time.Time, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM diary.eatingplan
			WHERE userid = $1 AND plandate = $2 AND ($3 = '' OR id <> $3::uuid)
		)`

	var exists bool
	if err := repository.pool.QueryRow(context, query, userID, day, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("diary_eating_repo_exists_failed: %w", err)
	}

	return exists, nil
}

// CreatePlan returns the raw driver error so the service can classify
// unique violations on (userid, plandate).
func (repository *PostgresEatingRepository) CreatePlan(context context.Context, plan *EatingPlan) error {
	query := `
		INSERT INTO diary.eatingplan (id, userid, plandate, createdat)
		VALUES ($1, $2, $3, $4)`

	_, err := repository.pool.Exec(context, query, plan.ID, plan.UserID, plan.PlanDate, plan.CreatedAt)
	return err
}

func (repository *PostgresEatingRepository) UpdatePlanDate(context context.Context, userID, planID string, day time.Time) (bool, error) {
	query := `
		UPDATE diary.eatingplan
		SET plandate = $3
		WHERE id = $2 AND userid = $1`

	tag, err := repository.pool.Exec(context, query, userID, planID, day)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// DeletePlan removes the plan and its entries in one transaction so a
// reader never observes a plan with a partially removed diary.
func (repository *PostgresEatingRepository) DeletePlan(context context.Context, userID, planID string) (bool, error) {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return false, fmt.Errorf("diary_eating_repo_begin_failed: %w", err)
	}
	defer transaction.Rollback(context)

	entriesQuery := `
		DELETE FROM diary.eatingentry
		WHERE planid IN (SELECT id FROM diary.eatingplan WHERE id = $2 AND userid = $1)`
	if _, err := transaction.Exec(context, entriesQuery, userID, planID); err != nil {
		return false, fmt.Errorf("diary_eating_repo_delete_entries_failed: %w", err)
	}

	tag, err := transaction.Exec(context,
		`DELETE FROM diary.eatingplan WHERE id = $2 AND userid = $1`, userID, planID)
	if err != nil {
		return false, fmt.Errorf("diary_eating_repo_delete_failed: %w", err)
	}

	if err := transaction.Commit(context); err != nil {
		return false, fmt.Errorf("diary_eating_repo_commit_failed: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// CreateEntry returns the raw driver error so the service can classify
// foreign key violations from a missing food.
func (repository *PostgresEatingRepository) CreateEntry(context context.Context, entry *EatingEntry) error {
	query := `
		INSERT INTO diary.eatingentry (id, planid, foodid, quantitygrams)
		VALUES ($1, $2, $3, $4)`

	_, err := repository.pool.Exec(context, query, entry.ID, entry.PlanID, entry.FoodID, entry.QuantityGrams)
	return err
}

func (repository *PostgresEatingRepository) FindEntry(context context.Context, planID, entryID string) (*EatingEntry, error) {
	query := `
		SELECT e.id, e.planid, e.foodid, f.name, e.quantitygrams
		FROM diary.eatingentry e
		LEFT JOIN catalog.food f ON f.id = e.foodid
		WHERE e.id = $2 AND e.planid = $1`

	var entry EatingEntry
	err := repository.pool.QueryRow(context, query, planID, entryID).
		Scan(&entry.ID, &entry.PlanID, &entry.FoodID, &entry.FoodName, &entry.QuantityGrams)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Entry")
		}
		return nil, fmt.Errorf("diary_eating_repo_find_entry_failed: %w", err)
	}

	return &entry, nil
}

func (repository *PostgresEatingRepository) UpdateEntry(context context.Context, entry *EatingEntry) (bool, error) {
	query := `
		UPDATE diary.eatingentry
		SET quantitygrams = $3
		WHERE id = $2 AND planid = $1`

	tag, err := repository.pool.Exec(context, query, entry.PlanID, entry.ID, entry.QuantityGrams)
	if err != nil {
		return false, fmt.Errorf("diary_eating_repo_update_entry_failed: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (repository *PostgresEatingRepository) DeleteEntry(context context.Context, planID, entryID string) (bool, error) {
	tag, err := repository.pool.Exec(context,
		`DELETE FROM diary.eatingentry WHERE id = $2 AND planid = $1`, planID, entryID)
	if err != nil {
		return false, fmt.Errorf("diary_eating_repo_delete_entry_failed: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// scanPlan runs a single-plan query and loads its entries.
func (repository *PostgresEatingRepository) scanPlan(context context.Context, query string, arguments ...any) (*EatingPlan, error) {
	var plan EatingPlan
	err := repository.pool.QueryRow(context, query, arguments...).
		Scan(&plan.ID, &plan.UserID, &plan.PlanDate, &plan.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Plan")
		}
		return nil, fmt.Errorf("diary_eating_repo_find_failed: %w", err)
	}

	plan.Entries = []EatingEntry{}
	plans := []EatingPlan{plan}
	if err := repository.attachEntries(context, plans); err != nil {
		return nil, err
	}

	return &plans[0], nil
}

// attachEntries loads the entries of every plan in one round trip and
// distributes them in memory.
func (repository *PostgresEatingRepository) attachEntries(context context.Context, plans []EatingPlan) error {
	if len(plans) == 0 {
		return nil
	}

	planIDs := make([]string, len(plans))
	index := make(map[string]*EatingPlan, len(plans))
	for i := range plans {
		planIDs[i] = plans[i].ID
		index[plans[i].ID] = &plans[i]
	}

	query := `
		SELECT e.id, e.planid, e.foodid, f.name, e.quantitygrams
		FROM diary.eatingentry e
		LEFT JOIN catalog.food f ON f.id = e.foodid
		WHERE e.planid = ANY($1)
		ORDER BY e.id ASC`

	rows, err := repository.pool.Query(context, query, planIDs)
	if err != nil {
		return fmt.Errorf("diary_eating_repo_entries_failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry EatingEntry
		if err := rows.Scan(&entry.ID, &entry.PlanID, &entry.FoodID, &entry.FoodName, &entry.QuantityGrams); err != nil {
			return fmt.Errorf("diary_eating_repo_entry_scan_failed: %w", err)
		}
		if plan, ok := index[entry.PlanID]; ok {
			plan.Entries = append(plan.Entries, entry)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("diary_eating_repo_entry_rows_failed: %w", err)
	}

	return nil
}
