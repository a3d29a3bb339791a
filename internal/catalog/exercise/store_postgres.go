// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package exercise

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
	"github.com/phamtuan/vitalog/internal/platform/postgres"
)

// PostgresRepository persists the exercise vocabulary in catalog.exercise.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a new [PostgresRepository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) List(context context.Context, search string) ([]Exercise, error) {
	query := `
		SELECT id, name, description, category, createdat
		FROM catalog.exercise
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name ASC`

	rows, err := repository.pool.Query(context, query, postgres.EscapeLike(search))
	if err != nil {
		return nil, fmt.Errorf("exercise_repo_list_failed: %w", err)
	}
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		var entity Exercise
		if err := rows.Scan(&entity.ID, &entity.Name, &entity.Description, &entity.Category, &entity.CreatedAt); err != nil {
			return nil, fmt.Errorf("exercise_repo_scan_failed: %w", err)
		}
		exercises = append(exercises, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise_repo_rows_failed: %w", err)
	}

	return exercises, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Exercise, error) {
	query := `
		SELECT id, name, description, category, createdat
		FROM catalog.exercise
		WHERE id = $1`

	var entity Exercise
	err := repository.pool.QueryRow(context, query, id).
		Scan(&entity.ID, &entity.Name, &entity.Description, &entity.Category, &entity.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Exercise")
		}
		return nil, fmt.Errorf("exercise_repo_find_failed: %w", err)
	}

	return &entity, nil
}

func (repository *PostgresRepository) Create(context context.Context, entity *Exercise) error {
	query := `
		INSERT INTO catalog.exercise (id, name, description, category, createdat)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := repository.pool.Exec(context, query,
		entity.ID, entity.Name, entity.Description, entity.Category, entity.CreatedAt)
	if err != nil {
		return fmt.Errorf("exercise_repo_create_failed: %w", err)
	}

	return nil
}

func (repository *PostgresRepository) Update(context context.Context, entity *Exercise) (bool, error) {
	query := `
		UPDATE catalog.exercise
		SET name = $2, description = $3, category = $4
		WHERE id = $1`

	tag, err := repository.pool.Exec(context, query,
		entity.ID, entity.Name, entity.Description, entity.Category)
	if err != nil {
		return false, fmt.Errorf("exercise_repo_update_failed: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete returns the raw driver error so the service can classify
// foreign key violations from referencing workout entries.
func (repository *PostgresRepository) Delete(context context.Context, id string) (bool, error) {
	tag, err := repository.pool.Exec(context, `DELETE FROM catalog.exercise WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
