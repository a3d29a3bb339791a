// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package blog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
	"github.com/phamtuan/vitalog/internal/platform/dberr"
	"github.com/phamtuan/vitalog/pkg/uuid"
)

// Service implements the blog use cases. Articles belong to their
// author; category names are unique across the section.
type Service struct {
	categories CategoryRepository
	articles   ArticleRepository
}

// NewService constructs a new [Service] with its repository dependencies.
func NewService(categories CategoryRepository, articles ArticleRepository) *Service {
	return &Service{categories: categories, articles: articles}
}

// # Categories

// ListCategories returns all categories ordered by name.
func (service *Service) ListCategories(context context.Context) ([]Category, error) {
	return service.categories.List(context)
}

// GetCategory returns one category by ID.
func (service *Service) GetCategory(context context.Context, id string) (*Category, error) {
	return service.categories.FindByID(context, id)
}

// CreateCategory adds a new category. Duplicate names are refused; the
// unique index gives the same answer when two creates race.
func (service *Service) CreateCategory(context context.Context, name string) (*Category, error) {
	trimmed := strings.TrimSpace(name)

	exists, err := service.categories.NameExists(context, trimmed, "")
	if err != nil {
		return nil, fmt.Errorf("blog_service_category_check_failed: %w", err)
	}
	if exists {
		return nil, apperr.Conflict("Category with this name already exists.")
	}

	category := &Category{ID: uuid.New(), Name: trimmed}
	if err := service.categories.Create(context, category); err != nil {
		if dberr.IsUniqueViolation(err) {
			return nil, apperr.Conflict("Category with this name already exists.")
		}
		return nil, fmt.Errorf("blog_service_category_create_failed: %w", err)
	}

	return category, nil
}

// UpdateCategory renames a category, keeping names unique.
func (service *Service) UpdateCategory(context context.Context, id, name string) (*Category, error) {
	category, err := service.categories.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(name)
	exists, err := service.categories.NameExists(context, trimmed, id)
	if err != nil {
		return nil, fmt.Errorf("blog_service_category_check_failed: %w", err)
	}
	if exists {
		return nil, apperr.Conflict("Category with this name already exists.")
	}

	category.Name = trimmed
	updated, err := service.categories.Update(context, category)
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return nil, apperr.Conflict("Category with this name already exists.")
		}
		return nil, fmt.Errorf("blog_service_category_update_failed: %w", err)
	}
	if !updated {
		return nil, apperr.NotFound("Category")
	}

	return category, nil
}

// DeleteCategory removes a category. Articles referencing it keep
// running with a null category.
func (service *Service) DeleteCategory(context context.Context, id string) error {
	deleted, err := service.categories.Delete(context, id)
	if err != nil {
		return fmt.Errorf("blog_service_category_delete_failed: %w", err)
	}
	if !deleted {
		return apperr.NotFound("Category")
	}
	return nil
}

// # Articles

// ArticleInput carries the client-sent article fields.
type ArticleInput struct {
	Title      string
	Content    string
	CategoryID *string
}

// ListArticles returns article projections ordered newest first,
// optionally filtered by category and author.
func (service *Service) ListArticles(context context.Context, categoryID, authorUserID string) ([]ArticleListItem, error) {
	return service.articles.List(context, categoryID, authorUserID)
}

// GetArticle returns one article.
func (service *Service) GetArticle(context context.Context, id string) (*Article, error) {
	return service.articles.FindByID(context, id)
}

// CreateArticle publishes a new article under the caller's name. A
// dangling category reference is a validation failure.
func (service *Service) CreateArticle(context context.Context, authorID string, input ArticleInput) (*Article, error) {
	article := &Article{
		ID:           uuid.New(),
		Title:        strings.TrimSpace(input.Title),
		Content:      strings.TrimSpace(input.Content),
		CategoryID:   input.CategoryID,
		AuthorUserID: &authorID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := service.articles.Create(context, article); err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return nil, apperr.ValidationError("Category not found.")
		}
		return nil, fmt.Errorf("blog_service_article_create_failed: %w", err)
	}

	return service.articles.FindByID(context, article.ID)
}

// UpdateArticle replaces the mutable fields of the caller's article.
func (service *Service) UpdateArticle(context context.Context, callerID, articleID string, input ArticleInput) (*Article, error) {
	article, err := service.articles.FindByID(context, articleID)
	if err != nil {
		return nil, err
	}
	if article.AuthorUserID == nil || *article.AuthorUserID != callerID {
		return nil, apperr.Forbidden("You are not the author of this article.")
	}

	article.Title = strings.TrimSpace(input.Title)
	article.Content = strings.TrimSpace(input.Content)
	article.CategoryID = input.CategoryID
	now := time.Now().UTC()
	article.UpdatedAt = &now

	updated, err := service.articles.Update(context, article)
	if err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return nil, apperr.ValidationError("Category not found.")
		}
		return nil, fmt.Errorf("blog_service_article_update_failed: %w", err)
	}
	if !updated {
		return nil, apperr.NotFound("Article")
	}

	return service.articles.FindByID(context, articleID)
}

// DeleteArticle removes an article. The author may always delete their
// own; an admin may delete anyone's.
func (service *Service) DeleteArticle(context context.Context, callerID string, callerIsAdmin bool, articleID string) error {
	article, err := service.articles.FindByID(context, articleID)
	if err != nil {
		return err
	}

	isAuthor := article.AuthorUserID != nil && *article.AuthorUserID == callerID
	if !isAuthor && !callerIsAdmin {
		return apperr.Forbidden("You are not the author of this article.")
	}

	deleted, err := service.articles.Delete(context, articleID)
	if err != nil {
		return fmt.Errorf("blog_service_article_delete_failed: %w", err)
	}
	if !deleted {
		return apperr.NotFound("Article")
	}
	return nil
}
