// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

// Package forum implements the community discussion board: posts with
// threaded comments, readable by any member, editable by their authors.
package forum

import "time"

// Post is one discussion thread with its comments. AuthorDisplayName is
// resolved from the author's profile at read time and falls back to nil
// when no profile exists.
type Post struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Content           string     `json:"content"`
	UserID            string     `json:"userId"`
	AuthorDisplayName *string    `json:"authorDisplayName"`
	CreatedAt         time.Time  `json:"createdAtUtc"`
	UpdatedAt         *time.Time `json:"updatedAtUtc"`
	Comments          []Comment  `json:"comments"`
}

// PostListItem is the listing projection of a post: no content, just a
// comment count.
type PostListItem struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	UserID            string    `json:"userId"`
	AuthorDisplayName *string   `json:"authorDisplayName"`
	CreatedAt         time.Time `json:"createdAtUtc"`
	CommentCount      int       `json:"commentCount"`
}

// Comment is one reply inside a post.
type Comment struct {
	ID                string    `json:"id"`
	PostID            string    `json:"postId"`
	UserID            string    `json:"userId"`
	AuthorDisplayName *string   `json:"authorDisplayName"`
	Content           string    `json:"content"`
	CreatedAt         time.Time `json:"createdAtUtc"`
}

const (
	FieldTitle   = "title"
	FieldContent = "content"
)

const (
	MaxTitleLength   = 300
	MaxContentLength = 10000
	MaxCommentLength = 5000
)
