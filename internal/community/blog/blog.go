// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

// Package blog implements the public article section: named categories
// and long-form articles. Reading needs no account; writing does.
package blog

import "time"

// Category is a named grouping for articles. Names are unique.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Article is one long-form piece. Category and author are both
// optional; deleting either leaves the article behind with a null
// reference.
type Article struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Content           string     `json:"content"`
	CategoryID        *string    `json:"categoryId"`
	CategoryName      *string    `json:"categoryName"`
	AuthorUserID      *string    `json:"authorUserId"`
	AuthorDisplayName *string    `json:"authorDisplayName"`
	CreatedAt         time.Time  `json:"createdAtUtc"`
	UpdatedAt         *time.Time `json:"updatedAtUtc"`
}

// ArticleListItem is the listing projection of an article.
type ArticleListItem struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	CategoryID        *string   `json:"categoryId"`
	CategoryName      *string   `json:"categoryName"`
	AuthorDisplayName *string   `json:"authorDisplayName"`
	CreatedAt         time.Time `json:"createdAtUtc"`
}

const (
	FieldName    = "name"
	FieldTitle   = "title"
	FieldContent = "content"
)

const (
	MaxCategoryNameLength = 100
	MaxTitleLength        = 300
	MaxContentLength      = 50000
)
