// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package follow

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phamtuan/vitalog/internal/platform/postgres"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the follow Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
CreateEdge inserts a follow edge keyed by its composite primary key.

Description: Unique violations are returned raw for SQLSTATE classification
upstream.

Parameters:
  - context: context.Context
  - edge: *Edge

Returns:
  - error: Constraint violations or connectivity errors
*/
func (repository *PostgresRepository) CreateEdge(context context.Context, edge *Edge) error {
	const query = `
		INSERT INTO users.follow (followerid, targetid, createdat)
		VALUES ($1, $2, $3)`

	_, err := repository.pool.Exec(context, query, edge.FollowerID, edge.TargetID, edge.CreatedAt)
	if err != nil {
		return fmt.Errorf("postgres_follow_repo_create_failed: %w", err)
	}

	return nil
}

/*
DeleteEdge removes the follow edge and reports whether one existed.

Parameters:
  - context: context.Context
  - followerID: string
  - targetID: string

Returns:
  - bool: True when a row was deleted
  - error: Execution errors
*/
func (repository *PostgresRepository) DeleteEdge(context context.Context, followerID, targetID string) (bool, error) {
	const query = "DELETE FROM users.follow WHERE followerid = $1 AND targetid = $2"

	tag, err := repository.pool.Exec(context, query, followerID, targetID)
	if err != nil {
		return false, fmt.Errorf("postgres_follow_repo_delete_failed: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

/*
EdgeExists reports whether the follower already follows the target.

Parameters:
  - context: context.Context
  - followerID: string
  - targetID: string

Returns:
  - bool: Edge presence
  - error: Execution errors
*/
func (repository *PostgresRepository) EdgeExists(context context.Context, followerID, targetID string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM users.follow WHERE followerid = $1 AND targetid = $2
		)`

	var exists bool
	if err := repository.pool.QueryRow(context, query, followerID, targetID).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres_follow_repo_exists_failed: %w", err)
	}

	return exists, nil
}

/*
ListFollowing returns the accounts the user follows, oldest edge first.

Description: Joins the profile for the display name, falling back to the
account email when the profile carries no usable name.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []ListedUser: Display rows
  - error: Retrieval failures
*/
func (repository *PostgresRepository) ListFollowing(context context.Context, userID string) ([]ListedUser, error) {
	const query = `
		SELECT f.targetid,
		       COALESCE(NULLIF(btrim(p.displayname), ''), a.email)
		FROM users.follow f
		JOIN users.account a ON a.id = f.targetid
		LEFT JOIN users.profile p ON p.userid = a.id
		WHERE f.followerid = $1
		ORDER BY f.createdat ASC`

	return repository.queryListedUsers(context, query, userID)
}

/*
ListFollowers returns the accounts following the user, oldest edge first.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []ListedUser: Display rows
  - error: Retrieval failures
*/
func (repository *PostgresRepository) ListFollowers(context context.Context, userID string) ([]ListedUser, error) {
	const query = `
		SELECT f.followerid,
		       COALESCE(NULLIF(btrim(p.displayname), ''), a.email)
		FROM users.follow f
		JOIN users.account a ON a.id = f.followerid
		LEFT JOIN users.profile p ON p.userid = a.id
		WHERE f.targetid = $1
		ORDER BY f.createdat ASC`

	return repository.queryListedUsers(context, query, userID)
}

/*
SearchUsers finds candidate follow targets for the caller.

Description: One round trip resolves the candidate set, the effective display
name ordering, and the caller's isFollowing flag via a correlated EXISTS.

Parameters:
  - context: context.Context
  - callerID: string
  - search: string

Returns:
  - []DiscoveredUser: Capped, ordered rows
  - error: Retrieval failures
*/
func (repository *PostgresRepository) SearchUsers(context context.Context, callerID, search string) ([]DiscoveredUser, error) {
	const query = `
		SELECT a.id,
		       COALESCE(NULLIF(btrim(p.displayname), ''), a.email) AS effectivename,
		       EXISTS (
		           SELECT 1 FROM users.follow f
		           WHERE f.followerid = $1 AND f.targetid = a.id
		       ) AS isfollowing
		FROM users.account a
		LEFT JOIN users.profile p ON p.userid = a.id
		WHERE a.isbanned = FALSE
		  AND a.id <> $1
		  AND ($2 = '' OR p.displayname ILIKE '%' || $2 || '%' OR a.email ILIKE '%' || $2 || '%')
		ORDER BY effectivename ASC
		LIMIT $3`

	// Search terms match literally; LIKE metacharacters in the input
	// must not widen the pattern.
	term := postgres.EscapeLike(strings.TrimSpace(search))

	rows, err := repository.pool.Query(context, query, callerID, term, SearchResultCap)
	if err != nil {
		return nil, fmt.Errorf("postgres_follow_repo_search_failed: %w", err)
	}
	defer rows.Close()

	users := make([]DiscoveredUser, 0)
	for rows.Next() {
		var user DiscoveredUser
		if err := rows.Scan(&user.ID, &user.DisplayName, &user.IsFollowing); err != nil {
			return nil, fmt.Errorf("postgres_follow_repo_search_scan_failed: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_follow_repo_search_rows_failed: %w", err)
	}

	return users, nil
}

// queryListedUsers runs one of the edge-list queries and hydrates the rows.
func (repository *PostgresRepository) queryListedUsers(context context.Context, query, userID string) ([]ListedUser, error) {
	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_follow_repo_list_failed: %w", err)
	}
	defer rows.Close()

	users := make([]ListedUser, 0)
	for rows.Next() {
		var user ListedUser
		if err := rows.Scan(&user.UserID, &user.DisplayName); err != nil {
			return nil, fmt.Errorf("postgres_follow_repo_list_scan_failed: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_follow_repo_list_rows_failed: %w", err)
	}

	return users, nil
}
