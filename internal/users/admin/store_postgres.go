// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
	"github.com/phamtuan/vitalog/pkg/pagination"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the admin Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
ListUsers returns one page of accounts with their profile display names.

Description: The total count rides along on every row via a window function,
so the page and the count come from a single consistent snapshot.

Parameters:
  - context: context.Context
  - params: pagination.Params

Returns:
  - []UserRow: Rows ordered by email ascending
  - int: Total account count
  - error: Retrieval failures
*/
func (repository *PostgresRepository) ListUsers(context context.Context, params pagination.Params) ([]UserRow, int, error) {
	const query = `
		SELECT a.id, a.email, p.displayname, a.isbanned, a.isadmin, COUNT(*) OVER() AS total
		FROM users.account a
		LEFT JOIN users.profile p ON p.userid = a.id
		ORDER BY a.email ASC
		LIMIT $1 OFFSET $2`

	rows, err := repository.pool.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_admin_repo_list_failed: %w", err)
	}
	defer rows.Close()

	users := make([]UserRow, 0)
	total := 0
	for rows.Next() {
		var row UserRow
		if err := rows.Scan(&row.ID, &row.Email, &row.DisplayName, &row.IsBanned, &row.IsAdmin, &total); err != nil {
			return nil, 0, fmt.Errorf("postgres_admin_repo_list_scan_failed: %w", err)
		}
		users = append(users, row)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_admin_repo_list_rows_failed: %w", err)
	}

	return users, total, nil
}

/*
SetBanned updates the ban flag and returns the refreshed row.

Description: The UPDATE and the read-back run as one statement via RETURNING,
joined back to the profile for the display name.

Parameters:
  - context: context.Context
  - userID: string
  - banned: bool

Returns:
  - *UserRow: Post-update state
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) SetBanned(context context.Context, userID string, banned bool) (*UserRow, error) {
	const query = `
		WITH updated AS (
			UPDATE users.account
			SET isbanned = $2
			WHERE id = $1
			RETURNING id, email, isbanned, isadmin
		)
		SELECT u.id, u.email, p.displayname, u.isbanned, u.isadmin
		FROM updated u
		LEFT JOIN users.profile p ON p.userid = u.id`

	row := &UserRow{}
	err := repository.pool.QueryRow(context, query, userID, banned).Scan(
		&row.ID,
		&row.Email,
		&row.DisplayName,
		&row.IsBanned,
		&row.IsAdmin,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_admin_repo_set_banned_failed: %w", err)
	}

	return row, nil
}
