// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package blog

import "context"

// CategoryRepository defines the data access contract for article
// categories.
type CategoryRepository interface {

	// List returns all categories ordered by name.
	List(context context.Context) ([]Category, error)

	// FindByID returns one category, or apperr.NotFound.
	FindByID(context context.Context, id string) (*Category, error)

	// NameExists reports whether a category with the exact name exists,
	// ignoring the category with excludeID when non-empty.
	NameExists(context context.Context, name, excludeID string) (bool, error)

	// Create persists a new category. Unique violations on the name are
	// returned raw.
	Create(context context.Context, category *Category) error

	// Update persists a renamed category, reporting whether a row matched.
	// Unique violations are returned raw.
	Update(context context.Context, category *Category) (bool, error)

	// Delete removes a category, reporting whether a row matched.
	// Referencing articles keep running with a null category (SET NULL).
	Delete(context context.Context, id string) (bool, error)
}

// ArticleRepository defines the data access contract for articles.
type ArticleRepository interface {

	// List returns article projections ordered newest first, optionally
	// filtered by category and author.
	List(context context.Context, categoryID, authorUserID string) ([]ArticleListItem, error)

	// FindByID returns one article with resolved category and author
	// names, or apperr.NotFound.
	FindByID(context context.Context, id string) (*Article, error)

	// Create persists a new article. Foreign key violations from a
	// missing category are returned raw.
	Create(context context.Context, article *Article) error

	// Update persists changed fields, reporting whether a row matched.
	// Foreign key violations are returned raw.
	Update(context context.Context, article *Article) (bool, error)

	// Delete removes an article, reporting whether a row matched.
	Delete(context context.Context, id string) (bool, error)
}
