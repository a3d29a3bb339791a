// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package follow

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phamtuan/vitalog/internal/platform/middleware"
	requestutil "github.com/phamtuan/vitalog/internal/platform/request"
	"github.com/phamtuan/vitalog/internal/platform/respond"
	"github.com/phamtuan/vitalog/internal/platform/validate"
)

// Handler implements the /follows HTTP endpoints.
type Handler struct {
	followService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{followService: service}
}

// Routes returns a [chi.Router] for the authenticated follow-graph endpoints.
//
// # Endpoints
//   - GET    /users            : User discovery with optional ?search=.
//   - GET    /following        : Accounts the caller follows.
//   - GET    /followers        : Accounts following the caller.
//   - POST   /{targetUserId}   : Follow the target.
//   - DELETE /{targetUserId}   : Unfollow the target.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/users", handler.searchUsers)
	router.Get("/following", handler.listFollowing)
	router.Get("/followers", handler.listFollowers)
	router.Post("/{targetUserId}", handler.follow)
	router.Delete("/{targetUserId}", handler.unfollow)

	return router
}

/*
SearchUsers lists candidate follow targets.

GET /api/follows/users?search=

Description: Case-insensitive substring match on display name or email;
excludes the caller and banned accounts; capped result set with the caller's
isFollowing flag resolved per row.

Response:
  - 200: []DiscoveredUser
*/
func (handler *Handler) searchUsers(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	users, err := handler.followService.SearchUsers(request.Context(), userID, request.URL.Query().Get("search"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, users)
}

/*
ListFollowing lists the accounts the caller follows.

GET /api/follows/following

Response:
  - 200: []ListedUser ordered by edge creation ascending
*/
func (handler *Handler) listFollowing(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	users, err := handler.followService.Following(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, users)
}

/*
ListFollowers lists the accounts following the caller.

GET /api/follows/followers

Response:
  - 200: []ListedUser ordered by edge creation ascending
*/
func (handler *Handler) listFollowers(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	users, err := handler.followService.Followers(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, users)
}

/*
Follow creates a follow edge to the target user.

POST /api/follows/{targetUserId}

Response:
  - 204: Edge created
  - 400: ErrValidation: Self-follow or banned target
  - 404: ErrNotFound: Target does not exist
  - 409: ErrConflict: Already following
*/
func (handler *Handler) follow(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	targetID := requestutil.ID(request, "targetUserId")
	validator := &validate.Validator{}
	if err := validator.UUID("targetUserId", targetID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.followService.Follow(request.Context(), userID, targetID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
Unfollow removes the follow edge to the target user.

DELETE /api/follows/{targetUserId}

Response:
  - 204: Edge removed
  - 404: ErrNotFound: No edge existed
*/
func (handler *Handler) unfollow(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	targetID := requestutil.ID(request, "targetUserId")
	validator := &validate.Validator{}
	if err := validator.UUID("targetUserId", targetID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.followService.Unfollow(request.Context(), userID, targetID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
