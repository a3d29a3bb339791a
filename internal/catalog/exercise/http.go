// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package exercise

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phamtuan/vitalog/internal/platform/middleware"
	requestutil "github.com/phamtuan/vitalog/internal/platform/request"
	"github.com/phamtuan/vitalog/internal/platform/respond"
	"github.com/phamtuan/vitalog/internal/platform/sec"
	"github.com/phamtuan/vitalog/internal/platform/validate"
	"github.com/phamtuan/vitalog/pkg/pointer"
)

// Handler implements the /exercises HTTP endpoints.
type Handler struct {
	exerciseService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{exerciseService: service}
}

// Routes returns a [chi.Router] for the exercise vocabulary endpoints.
// Reads and member writes mirror /foods; deletion is admin only.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Post("/", handler.create)
	router.Put("/{id}", handler.update)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Delete("/{id}", handler.remove)
	})

	return router
}

type exerciseRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

func validateExercise(input exerciseRequest) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, MaxNameLength).
		MaxLen(FieldDescription, pointer.Val(input.Description), MaxDescriptionLength).
		MaxLen(FieldCategory, pointer.Val(input.Category), MaxCategoryLength)
	return validator.Err()
}

// GET /api/exercises?search=
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	exercises, err := handler.exerciseService.List(request.Context(), request.URL.Query().Get("search"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, exercises)
}

// GET /api/exercises/{id}
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	validator := &validate.Validator{}
	if err := validator.UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.exerciseService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

// POST /api/exercises
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input exerciseRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := validateExercise(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.exerciseService.Create(request.Context(), Input{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entity)
}

// PUT /api/exercises/{id}
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	validator := &validate.Validator{}
	if err := validator.UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input exerciseRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := validateExercise(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.exerciseService.Update(request.Context(), id, Input{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

// DELETE /api/exercises/{id} (admin only, 409 while referenced)
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	validator := &validate.Validator{}
	if err := validator.UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.exerciseService.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
