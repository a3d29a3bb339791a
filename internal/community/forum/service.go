// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package forum

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
	"github.com/phamtuan/vitalog/pkg/uuid"
)

// Service implements the forum use cases. Any member may read and post;
// only the author of a post or comment may change or remove it.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// List returns post projections ordered newest first.
func (service *Service) List(context context.Context, search string) ([]PostListItem, error) {
	return service.repository.ListPosts(context, strings.TrimSpace(search))
}

// Get returns one post with its comments.
func (service *Service) Get(context context.Context, postID string) (*Post, error) {
	return service.repository.FindPostByID(context, postID)
}

// Create opens a new discussion thread.
func (service *Service) Create(context context.Context, authorID, title, content string) (*Post, error) {
	post := &Post{
		ID:        uuid.New(),
		UserID:    authorID,
		Title:     strings.TrimSpace(title),
		Content:   strings.TrimSpace(content),
		CreatedAt: time.Now().UTC(),
	}

	if err := service.repository.CreatePost(context, post); err != nil {
		return nil, fmt.Errorf("forum_service_create_failed: %w", err)
	}

	return service.repository.FindPostByID(context, post.ID)
}

// Update replaces the title and content of the caller's post. A caller
// who is not the author is refused, not told the post is missing.
func (service *Service) Update(context context.Context, callerID, postID, title, content string) (*Post, error) {
	post, err := service.repository.FindPostByID(context, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != callerID {
		return nil, apperr.Forbidden("You are not the author of this post.")
	}

	post.Title = strings.TrimSpace(title)
	post.Content = strings.TrimSpace(content)
	now := time.Now().UTC()
	post.UpdatedAt = &now

	updated, err := service.repository.UpdatePost(context, post)
	if err != nil {
		return nil, fmt.Errorf("forum_service_update_failed: %w", err)
	}
	if !updated {
		return nil, apperr.NotFound("Post")
	}

	return post, nil
}

// Delete removes the caller's post together with its comments.
func (service *Service) Delete(context context.Context, callerID, postID string) error {
	post, err := service.repository.FindPostByID(context, postID)
	if err != nil {
		return err
	}
	if post.UserID != callerID {
		return apperr.Forbidden("You are not the author of this post.")
	}

	deleted, err := service.repository.DeletePost(context, postID)
	if err != nil {
		return fmt.Errorf("forum_service_delete_failed: %w", err)
	}
	if !deleted {
		return apperr.NotFound("Post")
	}
	return nil
}

// AddComment appends a reply to an existing post.
func (service *Service) AddComment(context context.Context, authorID, postID, content string) (*Comment, error) {
	exists, err := service.repository.PostExists(context, postID)
	if err != nil {
		return nil, fmt.Errorf("forum_service_comment_check_failed: %w", err)
	}
	if !exists {
		return nil, apperr.NotFound("Post")
	}

	comment := &Comment{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    authorID,
		Content:   strings.TrimSpace(content),
		CreatedAt: time.Now().UTC(),
	}

	if err := service.repository.CreateComment(context, comment); err != nil {
		return nil, fmt.Errorf("forum_service_comment_create_failed: %w", err)
	}

	return service.repository.FindComment(context, postID, comment.ID)
}

// DeleteComment removes the caller's comment from a post.
func (service *Service) DeleteComment(context context.Context, callerID, postID, commentID string) error {
	comment, err := service.repository.FindComment(context, postID, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != callerID {
		return apperr.Forbidden("You are not the author of this comment.")
	}

	deleted, err := service.repository.DeleteComment(context, postID, commentID)
	if err != nil {
		return fmt.Errorf("forum_service_comment_delete_failed: %w", err)
	}
	if !deleted {
		return apperr.NotFound("Comment")
	}
	return nil
}
