// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package forum

import "context"

// Repository defines the data access contract for forum posts and
// comments. Posts are readable by any member, so lookups are not scoped
// to a caller; authorship checks happen in the service.
type Repository interface {

	// ListPosts returns post projections ordered newest first, optionally
	// filtered by a case-insensitive substring on title or content.
	ListPosts(context context.Context, search string) ([]PostListItem, error)

	// FindPostByID returns one post with its comments ordered oldest
	// first, or apperr.NotFound.
	FindPostByID(context context.Context, postID string) (*Post, error)

	// PostExists reports whether a post row exists.
	PostExists(context context.Context, postID string) (bool, error)

	// CreatePost persists a new post row.
	CreatePost(context context.Context, post *Post) error

	// UpdatePost persists changed title, content and update timestamp,
	// reporting whether a row matched.
	UpdatePost(context context.Context, post *Post) (bool, error)

	// DeletePost removes a post and its comments in one transaction,
	// reporting whether a post matched.
	DeletePost(context context.Context, postID string) (bool, error)

	// CreateComment persists a new comment row.
	CreateComment(context context.Context, comment *Comment) error

	// FindComment returns one comment of the given post with its resolved
	// author name, or apperr.NotFound.
	FindComment(context context.Context, postID, commentID string) (*Comment, error)

	// DeleteComment removes one comment of the given post, reporting
	// whether a row matched.
	DeleteComment(context context.Context, postID, commentID string) (bool, error)
}
