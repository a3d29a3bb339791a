// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package diary

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/phamtuan/vitalog/internal/platform/apperr"
	"github.com/phamtuan/vitalog/internal/platform/middleware"
	requestutil "github.com/phamtuan/vitalog/internal/platform/request"
	"github.com/phamtuan/vitalog/internal/platform/respond"
	"github.com/phamtuan/vitalog/internal/platform/validate"
)

// EatingHandler implements the /eatingplans HTTP endpoints.
type EatingHandler struct {
	eatingService *EatingService
}

// NewEatingHandler constructs a new [EatingHandler] with its service
// dependency.
func NewEatingHandler(service *EatingService) *EatingHandler {
	return &EatingHandler{eatingService: service}
}

// Routes returns a [chi.Router] for the eating diary endpoints.
//
// # Endpoints
//   - GET    /                          : Listing with optional ?from=&to=.
//   - GET    /by-date/{date}            : Plan for one calendar day.
//   - GET    /{planId}                  : Plan by ID.
//   - POST   /                          : Open a plan for a day.
//   - PUT    /{planId}                  : Move a plan to another day.
//   - DELETE /{planId}                  : Delete a plan and its entries.
//   - POST   /{planId}/entries          : Add a food line.
//   - PUT    /{planId}/entries/{entryId}: Change a line's quantity.
//   - DELETE /{planId}/entries/{entryId}: Remove a line.
func (handler *EatingHandler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.list)
	router.Get("/by-date/{date}", handler.getByDate)
	router.Get("/{planId}", handler.getByID)
	router.Post("/", handler.create)
	router.Put("/{planId}", handler.update)
	router.Delete("/{planId}", handler.remove)

	router.Post("/{planId}/entries", handler.addEntry)
	router.Put("/{planId}/entries/{entryId}", handler.updateEntry)
	router.Delete("/{planId}/entries/{entryId}", handler.removeEntry)

	return router
}

// # Request Payloads

type planRequest struct {
	PlanDate string `json:"planDate"`
}

type createEatingEntryRequest struct {
	FoodID        string  `json:"foodId"`
	QuantityGrams float64 `json:"quantityGrams"`
}

type updateEatingEntryRequest struct {
	QuantityGrams float64 `json:"quantityGrams"`
}

// validateQuantity enforces the (0, 10000] gram range.
func validateQuantity(quantityGrams float64) error {
	validator := &validate.Validator{}
	validator.Positive("quantityGrams", quantityGrams).
		RangeFloat("quantityGrams", quantityGrams, 0, MaxQuantityGrams)
	return validator.Err()
}

// parseDayParam parses a date URL or query parameter, mapping bad input
// to a validation error.
func parseDayParam(value string) (time.Time, error) {
	day, err := ParseDay(value)
	if err != nil {
		return time.Time{}, apperr.ValidationError("Invalid date format.")
	}
	return day, nil
}

// parseRangeParams parses the optional from/to listing bounds.
func parseRangeParams(request *http.Request) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if raw := request.URL.Query().Get("from"); raw != "" {
		day, err := parseDayParam(raw)
		if err != nil {
			return nil, nil, err
		}
		from = &day
	}
	if raw := request.URL.Query().Get("to"); raw != "" {
		day, err := parseDayParam(raw)
		if err != nil {
			return nil, nil, err
		}
		to = &day
	}

	return from, to, nil
}

/*
List returns the caller's eating plans ordered by date.

GET /api/eatingplans?from=&to=

Response:
  - 200: []EatingPlan with entries and resolved food names
*/
func (handler *EatingHandler) list(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	from, to, err := parseRangeParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	plans, err := handler.eatingService.List(request.Context(), userID, from, to)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, plans)
}

/*
GetByDate returns the caller's plan for one calendar day.

GET /api/eatingplans/by-date/{date}

Response:
  - 200: EatingPlan
  - 404: ErrNotFound: No plan on that day
*/
func (handler *EatingHandler) getByDate(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	day, err := parseDayParam(requestutil.Param(request, "date"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	plan, err := handler.eatingService.GetByDate(request.Context(), userID, day)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, plan)
}

/*
GetByID returns one of the caller's plans.

GET /api/eatingplans/{planId}

Response:
  - 200: EatingPlan
  - 404: ErrNotFound: Missing, or owned by someone else
*/
func (handler *EatingHandler) getByID(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.ID(request, "planId")
	validator := &validate.Validator{}
	if err := validator.UUID("planId", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	plan, err := handler.eatingService.GetByID(request.Context(), userID, id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, plan)
}

/*
Create opens a new eating plan for a calendar day.

POST /api/eatingplans

Request:
  - Body: planRequest

Response:
  - 201: EatingPlan
  - 409: ErrConflict: A plan already exists on that day
*/
func (handler *EatingHandler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input planRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	day, err := parseDayParam(input.PlanDate)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	plan, err := handler.eatingService.CreatePlan(request.Context(), userID, day)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, plan)
}

/*
Update moves one of the caller's plans to a different day.

PUT /api/eatingplans/{planId}

Request:
  - Body: planRequest

Response:
  - 200: EatingPlan: Same-day requests return the plan unchanged
  - 404: ErrNotFound
  - 409: ErrConflict: Target day already holds a plan
*/
func (handler *EatingHandler) update(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.ID(request, "planId")
	validator := &validate.Validator{}
	if err := validator.UUID("planId", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input planRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	day, err := parseDayParam(input.PlanDate)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	plan, err := handler.eatingService.ChangePlanDate(request.Context(), userID, id, day)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, plan)
}

/*
Remove deletes one of the caller's plans and all its entries.

DELETE /api/eatingplans/{planId}

Response:
  - 204: Deleted
  - 404: ErrNotFound
*/
func (handler *EatingHandler) remove(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.ID(request, "planId")
	validator := &validate.Validator{}
	if err := validator.UUID("planId", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.eatingService.DeletePlan(request.Context(), userID, id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
AddEntry appends a food line to one of the caller's plans.

POST /api/eatingplans/{planId}/entries

Request:
  - Body: createEatingEntryRequest

Response:
  - 201: EatingEntry with resolved food name
  - 400: ErrValidation: Unknown food or out-of-range quantity
  - 404: ErrNotFound: Missing plan
*/
func (handler *EatingHandler) addEntry(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	planID := requestutil.ID(request, "planId")
	validator := &validate.Validator{}
	if err := validator.UUID("planId", planID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createEatingEntryRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	entryValidator := &validate.Validator{}
	if err := entryValidator.UUID("foodId", input.FoodID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := validateQuantity(input.QuantityGrams); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.eatingService.AddEntry(request.Context(), userID, planID, input.FoodID, input.QuantityGrams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

/*
UpdateEntry changes the quantity of one line in the caller's plan.

PUT /api/eatingplans/{planId}/entries/{entryId}

Request:
  - Body: updateEatingEntryRequest

Response:
  - 200: EatingEntry
  - 404: ErrNotFound: Missing plan or entry
*/
func (handler *EatingHandler) updateEntry(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	planID := requestutil.ID(request, "planId")
	entryID := requestutil.ID(request, "entryId")
	validator := &validate.Validator{}
	if err := validator.UUID("planId", planID).UUID("entryId", entryID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateEatingEntryRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := validateQuantity(input.QuantityGrams); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.eatingService.UpdateEntry(request.Context(), userID, planID, entryID, input.QuantityGrams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

/*
RemoveEntry deletes one line of the caller's plan.

DELETE /api/eatingplans/{planId}/entries/{entryId}

Response:
  - 204: Deleted
  - 404: ErrNotFound: Missing plan or entry
*/
func (handler *EatingHandler) removeEntry(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	planID := requestutil.ID(request, "planId")
	entryID := requestutil.ID(request, "entryId")
	validator := &validate.Validator{}
	if err := validator.UUID("planId", planID).UUID("entryId", entryID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.eatingService.DeleteEntry(request.Context(), userID, planID, entryID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
