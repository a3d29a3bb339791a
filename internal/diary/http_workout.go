// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package diary

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phamtuan/vitalog/internal/platform/middleware"
	requestutil "github.com/phamtuan/vitalog/internal/platform/request"
	"github.com/phamtuan/vitalog/internal/platform/respond"
	"github.com/phamtuan/vitalog/internal/platform/validate"
)

// WorkoutHandler implements the /workoutplans HTTP endpoints, the same
// shape as [EatingHandler].
type WorkoutHandler struct {
	workoutService *WorkoutService
}

// NewWorkoutHandler constructs a new [WorkoutHandler] with its service
// dependency.
func NewWorkoutHandler(service *WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: service}
}

// Routes returns a [chi.Router] for the workout diary endpoints.
func (handler *WorkoutHandler) Routes() chi.Router {
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

type workoutEntryRequest struct {
	ExerciseID      string `json:"exerciseId"`
	DurationMinutes *int   `json:"durationMinutes"`
	Sets            *int   `json:"sets"`
	Reps            *int   `json:"reps"`
}

// validateMeasurements bounds the optional fields when present.
func validateMeasurements(input workoutEntryRequest) error {
	validator := &validate.Validator{}
	if input.DurationMinutes != nil {
		validator.Range("durationMinutes", *input.DurationMinutes, 0, MaxDurationMinutes)
	}
	if input.Sets != nil {
		validator.Range("sets", *input.Sets, 0, MaxSets)
	}
	if input.Reps != nil {
		validator.Range("reps", *input.Reps, 0, MaxReps)
	}
	return validator.Err()
}

func measurementsOf(input workoutEntryRequest) WorkoutMeasurements {
	return WorkoutMeasurements{
		DurationMinutes: input.DurationMinutes,
		Sets:            input.Sets,
		Reps:            input.Reps,
	}
}

// GET /api/workoutplans?from=&to=
func (handler *WorkoutHandler) list(writer http.ResponseWriter, request *http.Request) {
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

	plans, err := handler.workoutService.List(request.Context(), userID, from, to)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, plans)
}

// GET /api/workoutplans/by-date/{date}
func (handler *WorkoutHandler) getByDate(writer http.ResponseWriter, request *http.Request) {
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

	plan, err := handler.workoutService.GetByDate(request.Context(), userID, day)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, plan)
}

// GET /api/workoutplans/{planId}
func (handler *WorkoutHandler) getByID(writer http.ResponseWriter, request *http.Request) {
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

	plan, err := handler.workoutService.GetByID(request.Context(), userID, id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, plan)
}

// POST /api/workoutplans
func (handler *WorkoutHandler) create(writer http.ResponseWriter, request *http.Request) {
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

	plan, err := handler.workoutService.CreatePlan(request.Context(), userID, day)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, plan)
}

// PUT /api/workoutplans/{planId}
func (handler *WorkoutHandler) update(writer http.ResponseWriter, request *http.Request) {
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

	plan, err := handler.workoutService.ChangePlanDate(request.Context(), userID, id, day)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, plan)
}

// DELETE /api/workoutplans/{planId}
func (handler *WorkoutHandler) remove(writer http.ResponseWriter, request *http.Request) {
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

	if err := handler.workoutService.DeletePlan(request.Context(), userID, id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// POST /api/workoutplans/{planId}/entries
func (handler *WorkoutHandler) addEntry(writer http.ResponseWriter, request *http.Request) {
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

	var input workoutEntryRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	entryValidator := &validate.Validator{}
	if err := entryValidator.UUID("exerciseId", input.ExerciseID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := validateMeasurements(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.workoutService.AddEntry(request.Context(), userID, planID, input.ExerciseID, measurementsOf(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

// PUT /api/workoutplans/{planId}/entries/{entryId}
func (handler *WorkoutHandler) updateEntry(writer http.ResponseWriter, request *http.Request) {
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

	var input workoutEntryRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := validateMeasurements(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.workoutService.UpdateEntry(request.Context(), userID, planID, entryID, measurementsOf(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

// DELETE /api/workoutplans/{planId}/entries/{entryId}
func (handler *WorkoutHandler) removeEntry(writer http.ResponseWriter, request *http.Request) {
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

	if err := handler.workoutService.DeleteEntry(request.Context(), userID, planID, entryID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
