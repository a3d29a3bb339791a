// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package food

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
	"github.com/phamtuan/vitalog/internal/platform/postgres"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the food Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
List returns foods ordered by name with an optional ILIKE name filter.

Parameters:
  - context: context.Context
  - search: string

Returns:
  - []Food: Ordered rows
  - error: Retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context, search string) ([]Food, error) {
	const query = `
		SELECT id, name, caloriesper100g, proteinper100g, carbsper100g, fatper100g, createdat
		FROM catalog.food
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name ASC`

	rows, err := repository.pool.Query(context, query, postgres.EscapeLike(search))
	if err != nil {
		return nil, fmt.Errorf("postgres_food_repo_list_failed: %w", err)
	}
	defer rows.Close()

	foods := make([]Food, 0)
	for rows.Next() {
		var entity Food
		err := rows.Scan(
			&entity.ID,
			&entity.Name,
			&entity.CaloriesPer100g,
			&entity.ProteinPer100g,
			&entity.CarbsPer100g,
			&entity.FatPer100g,
			&entity.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres_food_repo_list_scan_failed: %w", err)
		}
		foods = append(foods, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_food_repo_list_rows_failed: %w", err)
	}

	return foods, nil
}

/*
FindByID returns the food with the given ID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Food: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Food, error) {
	const query = `
		SELECT id, name, caloriesper100g, proteinper100g, carbsper100g, fatper100g, createdat
		FROM catalog.food
		WHERE id = $1`

	entity := &Food{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&entity.ID,
		&entity.Name,
		&entity.CaloriesPer100g,
		&entity.ProteinPer100g,
		&entity.CarbsPer100g,
		&entity.FatPer100g,
		&entity.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Food")
		}
		return nil, fmt.Errorf("postgres_food_repo_find_failed: %w", err)
	}

	return entity, nil
}

/*
Create persists a new food row.

Parameters:
  - context: context.Context
  - food: *Food

Returns:
  - error: Constraint violations or connectivity errors
*/
func (repository *PostgresRepository) Create(context context.Context, food *Food) error {
	const query = `
		INSERT INTO catalog.food (
			id, name, caloriesper100g, proteinper100g, carbsper100g, fatper100g, createdat
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := repository.pool.Exec(context, query,
		food.ID,
		food.Name,
		food.CaloriesPer100g,
		food.ProteinPer100g,
		food.CarbsPer100g,
		food.FatPer100g,
		food.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_food_repo_create_failed: %w", err)
	}

	return nil
}

/*
Update persists changes to an existing food row.

Parameters:
  - context: context.Context
  - food: *Food

Returns:
  - bool: Whether a row was actually updated
  - error: Execution errors
*/
func (repository *PostgresRepository) Update(context context.Context, food *Food) (bool, error) {
	const query = `
		UPDATE catalog.food
		SET name = $2, caloriesper100g = $3, proteinper100g = $4, carbsper100g = $5, fatper100g = $6
		WHERE id = $1`

	tag, err := repository.pool.Exec(context, query,
		food.ID,
		food.Name,
		food.CaloriesPer100g,
		food.ProteinPer100g,
		food.CarbsPer100g,
		food.FatPer100g,
	)

	if err != nil {
		return false, fmt.Errorf("postgres_food_repo_update_failed: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

/*
Delete removes a food row.

Description: Foreign-key violations are returned raw so the service can map
them to a Conflict while the diary still references the food.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - bool: Whether a row was actually deleted
  - error: Constraint violations or execution errors
*/
func (repository *PostgresRepository) Delete(context context.Context, id string) (bool, error) {
	const query = "DELETE FROM catalog.food WHERE id = $1"

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
