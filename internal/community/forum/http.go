// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package forum

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phamtuan/vitalog/internal/platform/middleware"
	requestutil "github.com/phamtuan/vitalog/internal/platform/request"
	"github.com/phamtuan/vitalog/internal/platform/respond"
	"github.com/phamtuan/vitalog/internal/platform/validate"
)

// Handler implements the /forumposts HTTP endpoints.
type Handler struct {
	forumService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{forumService: service}
}

// Routes returns a [chi.Router] for the forum endpoints.
//
// # Endpoints
//   - GET    /                               : Listing with optional ?search=.
//   - GET    /{postId}                       : Post with comments.
//   - POST   /                               : Create a post.
//   - PUT    /{postId}                       : Update (author only).
//   - DELETE /{postId}                       : Delete (author only).
//   - POST   /{postId}/comments              : Add a comment.
//   - DELETE /{postId}/comments/{commentId}  : Delete a comment (author only).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.list)
	router.Get("/{postId}", handler.get)
	router.Post("/", handler.create)
	router.Put("/{postId}", handler.update)
	router.Delete("/{postId}", handler.remove)

	router.Post("/{postId}/comments", handler.addComment)
	router.Delete("/{postId}/comments/{commentId}", handler.removeComment)

	return router
}

type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type commentRequest struct {
	Content string `json:"content"`
}

func validatePost(input postRequest) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, MaxTitleLength).
		Required(FieldContent, input.Content).
		MaxLen(FieldContent, input.Content, MaxContentLength)
	return validator.Err()
}

// GET /api/forumposts?search=
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.forumService.List(request.Context(), request.URL.Query().Get("search"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, posts)
}

// GET /api/forumposts/{postId}
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	postID := requestutil.ID(request, "postId")
	validator := &validate.Validator{}
	if err := validator.UUID("postId", postID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.forumService.Get(request.Context(), postID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, post)
}

// POST /api/forumposts
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input postRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := validatePost(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.forumService.Create(request.Context(), userID, input.Title, input.Content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, post)
}

// PUT /api/forumposts/{postId}
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	postID := requestutil.ID(request, "postId")
	validator := &validate.Validator{}
	if err := validator.UUID("postId", postID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input postRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := validatePost(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.forumService.Update(request.Context(), userID, postID, input.Title, input.Content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, post)
}

// DELETE /api/forumposts/{postId}
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	postID := requestutil.ID(request, "postId")
	validator := &validate.Validator{}
	if err := validator.UUID("postId", postID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.forumService.Delete(request.Context(), userID, postID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// POST /api/forumposts/{postId}/comments
func (handler *Handler) addComment(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	postID := requestutil.ID(request, "postId")
	validator := &validate.Validator{}
	if err := validator.UUID("postId", postID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input commentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	bodyValidator := &validate.Validator{}
	if err := bodyValidator.Required(FieldContent, input.Content).
		MaxLen(FieldContent, input.Content, MaxCommentLength).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.forumService.AddComment(request.Context(), userID, postID, input.Content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, comment)
}

// DELETE /api/forumposts/{postId}/comments/{commentId}
func (handler *Handler) removeComment(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	postID := requestutil.ID(request, "postId")
	commentID := requestutil.ID(request, "commentId")
	validator := &validate.Validator{}
	if err := validator.UUID("postId", postID).UUID("commentId", commentID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.forumService.DeleteComment(request.Context(), userID, postID, commentID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
