// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package forum

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
	"github.com/phamtuan/vitalog/internal/platform/postgres"
)

// PostgresRepository persists posts in community.forumpost and comments
// in community.forumcomment. Author display names come from a LEFT JOIN
// on users.profile so a member without a profile still appears, nameless.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a new [PostgresRepository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) ListPosts(context context.Context, search string) ([]PostListItem, error) {
	query := `
		SELECT p.id, p.title, p.userid, pr.displayname, p.createdat,
		       (SELECT COUNT(*) FROM community.forumcomment c WHERE c.postid = p.id) AS commentcount
		FROM community.forumpost p
		LEFT JOIN users.profile pr ON pr.userid = p.userid
		WHERE ($1 = '' OR p.title ILIKE '%' || $1 || '%' OR p.content ILIKE '%' || $1 || '%')
		ORDER BY p.createdat DESC`

	rows, err := repository.pool.Query(context, query, postgres.EscapeLike(search))
	if err != nil {
		return nil, fmt.Errorf("forum_repo_list_failed: %w", err)
	}
	defer rows.Close()

	posts := make([]PostListItem, 0)
	for rows.Next() {
		var item PostListItem
		if err := rows.Scan(&item.ID, &item.Title, &item.UserID, &item.AuthorDisplayName, &item.CreatedAt, &item.CommentCount); err != nil {
			return nil, fmt.Errorf("forum_repo_scan_failed: %w", err)
		}
		posts = append(posts, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("forum_repo_rows_failed: %w", err)
	}

	return posts, nil
}

func (repository *PostgresRepository) FindPostByID(context context.Context, postID string) (*Post, error) {
	postQuery := `
		SELECT p.id, p.title, p.content, p.userid, pr.displayname, p.createdat, p.updatedat
		FROM community.forumpost p
		LEFT JOIN users.profile pr ON pr.userid = p.userid
		WHERE p.id = $1`

	var post Post
	err := repository.pool.QueryRow(context, postQuery, postID).
		Scan(&post.ID, &post.Title, &post.Content, &post.UserID, &post.AuthorDisplayName, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Post")
		}
		return nil, fmt.Errorf("forum_repo_find_failed: %w", err)
	}

	commentsQuery := `
		SELECT c.id, c.postid, c.userid, pr.displayname, c.content, c.createdat
		FROM community.forumcomment c
		LEFT JOIN users.profile pr ON pr.userid = c.userid
		WHERE c.postid = $1
		ORDER BY c.createdat ASC`

	rows, err := repository.pool.Query(context, commentsQuery, postID)
	if err != nil {
		return nil, fmt.Errorf("forum_repo_comments_failed: %w", err)
	}
	defer rows.Close()

	post.Comments = make([]Comment, 0)
	for rows.Next() {
		var comment Comment
		if err := rows.Scan(&comment.ID, &comment.PostID, &comment.UserID, &comment.AuthorDisplayName, &comment.Content, &comment.CreatedAt); err != nil {
			return nil, fmt.Errorf("forum_repo_comment_scan_failed: %w", err)
		}
		post.Comments = append(post.Comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("forum_repo_comment_rows_failed: %w", err)
	}

	return &post, nil
}

func (repository *PostgresRepository) PostExists(context context.Context, postID string) (bool, error) {
	var exists bool
	err := repository.pool.QueryRow(context,
		`SELECT EXISTS (SELECT 1 FROM community.forumpost WHERE id = $1)`, postID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("forum_repo_exists_failed: %w", err)
	}
	return exists, nil
}

func (repository *PostgresRepository) CreatePost(context context.Context, post *Post) error {
	query := `
		INSERT INTO community.forumpost (id, userid, title, content, createdat)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := repository.pool.Exec(context, query, post.ID, post.UserID, post.Title, post.Content, post.CreatedAt)
	if err != nil {
		return fmt.Errorf("forum_repo_create_failed: %w", err)
	}
	return nil
}

func (repository *PostgresRepository) UpdatePost(context context.Context, post *Post) (bool, error) {
	query := `
		UPDATE community.forumpost
		SET title = $2, content = $3, updatedat = $4
		WHERE id = $1`

	tag, err := repository.pool.Exec(context, query, post.ID, post.Title, post.Content, post.UpdatedAt)
	if err != nil {
		return false, fmt.Errorf("forum_repo_update_failed: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeletePost removes the post and its comments in one transaction so a
// reader never sees orphaned comments.
func (repository *PostgresRepository) DeletePost(context context.Context, postID string) (bool, error) {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return false, fmt.Errorf("forum_repo_begin_failed: %w", err)
	}
	defer transaction.Rollback(context)

	if _, err := transaction.Exec(context,
		`DELETE FROM community.forumcomment WHERE postid = $1`, postID); err != nil {
		return false, fmt.Errorf("forum_repo_delete_comments_failed: %w", err)
	}

	tag, err := transaction.Exec(context, `DELETE FROM community.forumpost WHERE id = $1`, postID)
	if err != nil {
		return false, fmt.Errorf("forum_repo_delete_failed: %w", err)
	}

	if err := transaction.Commit(context); err != nil {
		return false, fmt.Errorf("forum_repo_commit_failed: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (repository *PostgresRepository) CreateComment(context context.Context, comment *Comment) error {
	query := `
		INSERT INTO community.forumcomment (id, postid, userid, content, createdat)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := repository.pool.Exec(context, query,
		comment.ID, comment.PostID, comment.UserID, comment.Content, comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("forum_repo_comment_create_failed: %w", err)
	}
	return nil
}

func (repository *PostgresRepository) FindComment(context context.Context, postID, commentID string) (*Comment, error) {
	query := `
		SELECT c.id, c.postid, c.userid, pr.displayname, c.content, c.createdat
		FROM community.forumcomment c
		LEFT JOIN users.profile pr ON pr.userid = c.userid
		WHERE c.id = $2 AND c.postid = $1`

	var comment Comment
	err := repository.pool.QueryRow(context, query, postID, commentID).
		Scan(&comment.ID, &comment.PostID, &comment.UserID, &comment.AuthorDisplayName, &comment.Content, &comment.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Comment")
		}
		return nil, fmt.Errorf("forum_repo_comment_find_failed: %w", err)
	}

	return &comment, nil
}

func (repository *PostgresRepository) DeleteComment(context context.Context, postID, commentID string) (bool, error) {
	tag, err := repository.pool.Exec(context,
		`DELETE FROM community.forumcomment WHERE id = $2 AND postid = $1`, postID, commentID)
	if err != nil {
		return false, fmt.Errorf("forum_repo_comment_delete_failed: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
