// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phamtuan/vitalog/internal/platform/middleware"
	requestutil "github.com/phamtuan/vitalog/internal/platform/request"
	"github.com/phamtuan/vitalog/internal/platform/respond"
	"github.com/phamtuan/vitalog/internal/platform/sec"
	"github.com/phamtuan/vitalog/internal/platform/validate"
	"github.com/phamtuan/vitalog/pkg/pagination"
)

// Handler implements the /admin HTTP endpoints.
type Handler struct {
	adminService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{adminService: service}
}

// Routes returns a [chi.Router] for the admin-only endpoints.
//
// # Endpoints
//   - GET   /users          : Paged account listing ordered by email.
//   - PATCH /users/{id}/ban : Toggle the ban flag.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleAdmin))

	router.Get("/users", handler.listUsers)
	router.Patch("/users/{id}/ban", handler.setBanned)

	return router
}

// # Request Payloads

type setBannedRequest struct {
	IsBanned bool `json:"isBanned"`
}

/*
ListUsers returns one page of the account listing for administrators.

GET /api/admin/users?page=1&limit=20

Response:
  - 200: []UserRow ordered by email, with pagination metadata
  - 403: ErrForbidden: Caller lacks the admin role
*/
func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	users, meta, err := handler.adminService.ListUsers(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, users, meta)
}

/*
SetBanned toggles an account's ban flag.

PATCH /api/admin/users/{id}/ban

Description: Persists the new flag, evicts the cached ban verdict, and
returns the updated row.

Request:
  - Body: setBannedRequest (IsBanned)

Response:
  - 200: UserRow: Post-update state
  - 404: ErrNotFound: Account does not exist
*/
func (handler *Handler) setBanned(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.ID(request, "id")
	validator := &validate.Validator{}
	if err := validator.UUID("id", userID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input setBannedRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	row, err := handler.adminService.SetBanned(request.Context(), userID, input.IsBanned)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, row)
}
