// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package forum_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamtuan/vitalog/internal/community/forum"
	"github.com/phamtuan/vitalog/internal/platform/apperr"
)

// fakeForumRepository is an in-memory forum Repository.
type fakeForumRepository struct {
	posts    map[string]*forum.Post
	comments map[string]*forum.Comment
}

func newFakeForumRepository() *fakeForumRepository {
	return &fakeForumRepository{
		posts:    make(map[string]*forum.Post),
		comments: make(map[string]*forum.Comment),
	}
}

func (f *fakeForumRepository) ListPosts(_ context.Context, _ string) ([]forum.PostListItem, error) {
	return nil, nil
}

func (f *fakeForumRepository) FindPostByID(_ context.Context, postID string) (*forum.Post, error) {
	post, ok := f.posts[postID]
	if !ok {
		return nil, apperr.NotFound("Post")
	}
	return post, nil
}

func (f *fakeForumRepository) PostExists(_ context.Context, postID string) (bool, error) {
	_, ok := f.posts[postID]
	return ok, nil
}

func (f *fakeForumRepository) CreatePost(_ context.Context, post *forum.Post) error {
	f.posts[post.ID] = post
	return nil
}

func (f *fakeForumRepository) UpdatePost(_ context.Context, post *forum.Post) (bool, error) {
	if _, ok := f.posts[post.ID]; !ok {
		return false, nil
	}
	f.posts[post.ID] = post
	return true, nil
}

func (f *fakeForumRepository) DeletePost(_ context.Context, postID string) (bool, error) {
	if _, ok := f.posts[postID]; !ok {
		return false, nil
	}
	delete(f.posts, postID)
	for id, comment := range f.comments {
		if comment.PostID == postID {
			delete(f.comments, id)
		}
	}
	return true, nil
}

func (f *fakeForumRepository) CreateComment(_ context.Context, comment *forum.Comment) error {
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeForumRepository) FindComment(_ context.Context, postID, commentID string) (*forum.Comment, error) {
	comment, ok := f.comments[commentID]
	if !ok || comment.PostID != postID {
		return nil, apperr.NotFound("Comment")
	}
	return comment, nil
}

func (f *fakeForumRepository) DeleteComment(_ context.Context, postID, commentID string) (bool, error) {
	comment, ok := f.comments[commentID]
	if !ok || comment.PostID != postID {
		return false, nil
	}
	delete(f.comments, commentID)
	return true, nil
}

/*
TestPostAuthorship verifies that only the author may update or delete a
post, and that non-authors get Forbidden rather than NotFound.
*/
func TestPostAuthorship(t *testing.T) {
	repository := newFakeForumRepository()
	service := forum.NewService(repository)

	post, err := service.Create(context.Background(), "alice", "  Title  ", "  Body  ")
	require.NoError(t, err)

	// 1. Input is trimmed on the way in
	assert.Equal(t, "Title", post.Title)
	assert.Equal(t, "Body", post.Content)

	// 2. A different caller is refused, not told the post is missing
	_, err = service.Update(context.Background(), "bob", post.ID, "New", "Body")
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "FORBIDDEN", ae.Code)
	assert.Equal(t, "You are not the author of this post.", ae.Message)

	err = service.Delete(context.Background(), "bob", post.ID)
	ae = apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "FORBIDDEN", ae.Code)

	// 3. The author may update; the edit stamps UpdatedAt
	updated, err := service.Update(context.Background(), "alice", post.ID, "New", "Body")
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.NotNil(t, updated.UpdatedAt)

	// 4. The author may delete; comments go with the post
	_, err = service.AddComment(context.Background(), "bob", post.ID, "Nice")
	require.NoError(t, err)
	require.NoError(t, service.Delete(context.Background(), "alice", post.ID))
	assert.Empty(t, repository.posts)
	assert.Empty(t, repository.comments)

	// 5. A missing post stays NotFound for everyone
	_, err = service.Update(context.Background(), "alice", post.ID, "New", "Body")
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestComments verifies comment creation against live posts and the
author-only delete rule.
*/
func TestComments(t *testing.T) {
	repository := newFakeForumRepository()
	service := forum.NewService(repository)

	post, err := service.Create(context.Background(), "alice", "Title", "Body")
	require.NoError(t, err)

	// 1. Commenting on a missing post answers NotFound
	_, err = service.AddComment(context.Background(), "bob", "post-ghost", "First!")
	assert.True(t, apperr.IsNotFound(err))

	// 2. Comment lands on the post
	comment, err := service.AddComment(context.Background(), "bob", post.ID, "  First!  ")
	require.NoError(t, err)
	assert.Equal(t, "First!", comment.Content)

	// 3. Only the comment author may delete it
	err = service.DeleteComment(context.Background(), "alice", post.ID, comment.ID)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "FORBIDDEN", ae.Code)
	assert.Equal(t, "You are not the author of this comment.", ae.Message)

	require.NoError(t, service.DeleteComment(context.Background(), "bob", post.ID, comment.ID))
	assert.Empty(t, repository.comments)
}
