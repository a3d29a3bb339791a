// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package blog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
)

// PostgresCategoryRepository persists categories in
// community.articlecategory.
type PostgresCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository constructs a new
// [PostgresCategoryRepository].
func NewCategoryRepository(pool *pgxpool.Pool) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{pool: pool}
}

func (repository *PostgresCategoryRepository) List(context context.Context) ([]Category, error) {
	rows, err := repository.pool.Query(context,
		`SELECT id, name FROM community.articlecategory ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("blog_category_repo_list_failed: %w", err)
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		var category Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("blog_category_repo_scan_failed: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("blog_category_repo_rows_failed: %w", err)
	}

	return categories, nil
}

func (repository *PostgresCategoryRepository) FindByID(context context.Context, id string) (*Category, error) {
	var category Category
	err := repository.pool.QueryRow(context,
		`SELECT id, name FROM community.articlecategory WHERE id = $1`, id).
		Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Category")
		}
		return nil, fmt.Errorf("blog_category_repo_find_failed: %w", err)
	}

	return &category, nil
}

func (repository *PostgresCategoryRepository) NameExists(context context.Context, name, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM community.articlecategory
			WHERE name = $1 AND ($2 = '' OR id <> $2::uuid)
		)`

	var exists bool
	if err := repository.pool.QueryRow(context, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("blog_category_repo_exists_failed: %w", err)
	}
	return exists, nil
}

// Create returns the raw driver error so the service can classify
// unique violations on the name.
func (repository *PostgresCategoryRepository) Create(context context.Context, category *Category) error {
	_, err := repository.pool.Exec(context,
		`INSERT INTO community.articlecategory (id, name) VALUES ($1, $2)`,
		category.ID, category.Name)
	return err
}

func (repository *PostgresCategoryRepository) Update(context context.Context, category *Category) (bool, error) {
	tag, err := repository.pool.Exec(context,
		`UPDATE community.articlecategory SET name = $2 WHERE id = $1`,
		category.ID, category.Name)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (repository *PostgresCategoryRepository) Delete(context context.Context, id string) (bool, error) {
	tag, err := repository.pool.Exec(context,
		`DELETE FROM community.articlecategory WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("blog_category_repo_delete_failed: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// PostgresArticleRepository persists articles in community.article.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewArticleRepository constructs a new
// [PostgresArticleRepository].
func NewArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

func (repository *PostgresArticleRepository) List(context context.Context, categoryID, authorUserID string) ([]ArticleListItem, error) {
	query := `
		SELECT a.id, a.title, a.categoryid, c.name, pr.displayname, a.createdat
		FROM community.article a
		LEFT JOIN community.articlecategory c ON c.id = a.categoryid
		LEFT JOIN users.profile pr ON pr.userid = a.authoruserid
		WHERE ($1 = '' OR a.categoryid = $1::uuid)
		  AND ($2 = '' OR a.authoruserid = $2::uuid)
		ORDER BY a.createdat DESC`

	rows, err := repository.pool.Query(context, query, categoryID, authorUserID)
	if err != nil {
		return nil, fmt.Errorf("blog_article_repo_list_failed: %w", err)
	}
	defer rows.Close()

	articles := make([]ArticleListItem, 0)
	for rows.Next() {
		var item ArticleListItem
		if err := rows.Scan(&item.ID, &item.Title, &item.CategoryID, &item.CategoryName, &item.AuthorDisplayName, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("blog_article_repo_scan_failed: %w", err)
		}
		articles = append(articles, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("blog_article_repo_rows_failed: %w", err)
	}

	return articles, nil
}

func (repository *PostgresArticleRepository) FindByID(context context.Context, id string) (*Article, error) {
	query := `
		SELECT a.id, a.title, a.content, a.categoryid, c.name, a.authoruserid, pr.displayname, a.createdat, a.updatedat
		FROM community.article a
		LEFT JOIN community.articlecategory c ON c.id = a.categoryid
		LEFT JOIN users.profile pr ON pr.userid = a.authoruserid
		WHERE a.id = $1`

	var article Article
	err := repository.pool.QueryRow(context, query, id).
		Scan(&article.ID, &article.Title, &article.Content, &article.CategoryID, &article.CategoryName,
			&article.AuthorUserID, &article.AuthorDisplayName, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Article")
		}
		return nil, fmt.Errorf("blog_article_repo_find_failed: %w", err)
	}

	return &article, nil
}

// Create returns the raw driver error so the service can classify
// foreign key violations from a missing category.
func (repository *PostgresArticleRepository) Create(context context.Context, article *Article) error {
	query := `
		INSERT INTO community.article (id, title, content, categoryid, authoruserid, createdat)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := repository.pool.Exec(context, query,
		article.ID, article.Title, article.Content, article.CategoryID, article.AuthorUserID, article.CreatedAt)
	return err
}

func (repository *PostgresArticleRepository) Update(context context.Context, article *Article) (bool, error) {
	query := `
		UPDATE community.article
		SET title = $2, content = $3, categoryid = $4, updatedat = $5
		WHERE id = $1`

	tag, err := repository.pool.Exec(context, query,
		article.ID, article.Title, article.Content, article.CategoryID, article.UpdatedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (repository *PostgresArticleRepository) Delete(context context.Context, id string) (bool, error) {
	tag, err := repository.pool.Exec(context, `DELETE FROM community.article WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("blog_article_repo_delete_failed: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
