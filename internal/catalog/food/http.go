// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package food

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phamtuan/vitalog/internal/platform/middleware"
	requestutil "github.com/phamtuan/vitalog/internal/platform/request"
	"github.com/phamtuan/vitalog/internal/platform/respond"
	"github.com/phamtuan/vitalog/internal/platform/sec"
	"github.com/phamtuan/vitalog/internal/platform/validate"
)

// Handler implements the /foods HTTP endpoints.
type Handler struct {
	foodService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{foodService: service}
}

// Routes returns a [chi.Router] for the food vocabulary endpoints.
//
// # Endpoints
//   - GET    /       : Listing with optional ?search=.
//   - GET    /{id}   : Single food.
//   - POST   /       : Create (any authenticated member).
//   - PUT    /{id}   : Update (any authenticated member).
//   - DELETE /{id}   : Delete (admin only, refused while referenced).
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

// # Request Payloads

type foodRequest struct {
	Name            string  `json:"name"`
	CaloriesPer100g float64 `json:"caloriesPer100g"`
	ProteinPer100g  float64 `json:"proteinPer100g"`
	CarbsPer100g    float64 `json:"carbsPer100g"`
	FatPer100g      float64 `json:"fatPer100g"`
}

// validateFood runs the shared create/update rules.
func validateFood(input foodRequest) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, MaxNameLength).
		RangeFloat(FieldCalories, input.CaloriesPer100g, 0, MaxCalories).
		RangeFloat(FieldProtein, input.ProteinPer100g, 0, MaxMacro).
		RangeFloat(FieldCarbs, input.CarbsPer100g, 0, MaxMacro).
		RangeFloat(FieldFat, input.FatPer100g, 0, MaxMacro)
	return validator.Err()
}

/*
List returns the food vocabulary.

GET /api/foods?search=

Response:
  - 200: []Food ordered by name
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	foods, err := handler.foodService.List(request.Context(), request.URL.Query().Get("search"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, foods)
}

/*
Get returns one food by ID.

GET /api/foods/{id}

Response:
  - 200: Food
  - 404: ErrNotFound
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	validator := &validate.Validator{}
	if err := validator.UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.foodService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

/*
Create adds a new food to the vocabulary.

POST /api/foods

Request:
  - Body: foodRequest

Response:
  - 201: Food: The persisted entity
  - 400: ErrInvalidJSON: Bad input or out-of-range macros
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input foodRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := validateFood(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.foodService.Create(request.Context(), Input{
		Name:            input.Name,
		CaloriesPer100g: input.CaloriesPer100g,
		ProteinPer100g:  input.ProteinPer100g,
		CarbsPer100g:    input.CarbsPer100g,
		FatPer100g:      input.FatPer100g,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entity)
}

/*
Update replaces the mutable fields of a food.

PUT /api/foods/{id}

Request:
  - Body: foodRequest

Response:
  - 200: Food: The persisted state
  - 404: ErrNotFound
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	validator := &validate.Validator{}
	if err := validator.UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input foodRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := validateFood(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.foodService.Update(request.Context(), id, Input{
		Name:            input.Name,
		CaloriesPer100g: input.CaloriesPer100g,
		ProteinPer100g:  input.ProteinPer100g,
		CarbsPer100g:    input.CarbsPer100g,
		FatPer100g:      input.FatPer100g,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

/*
Remove deletes a food from the vocabulary.

DELETE /api/foods/{id}

Response:
  - 204: Deleted
  - 404: ErrNotFound
  - 409: ErrConflict: Diary entries still reference the food
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	validator := &validate.Validator{}
	if err := validator.UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.foodService.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
