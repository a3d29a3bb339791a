// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package profile

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/phamtuan/vitalog/internal/platform/middleware"
	requestutil "github.com/phamtuan/vitalog/internal/platform/request"
	"github.com/phamtuan/vitalog/internal/platform/respond"
	"github.com/phamtuan/vitalog/internal/platform/validate"
	"github.com/phamtuan/vitalog/pkg/pointer"
)

// Handler implements the /me/profile HTTP endpoints.
type Handler struct {
	profileService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{profileService: service}
}

// Routes returns a [chi.Router] for the authenticated profile endpoints.
//
// The router is mounted at /me/profile, so both handlers hang off the
// mount root.
//
// # Endpoints
//   - GET / : Returns the caller's profile or null.
//   - PUT / : Lazily creates or updates the profile.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.getProfile)
	router.Put("/", handler.updateProfile)

	return router
}

// # Request Payloads

type updateProfileRequest struct {
	DisplayName *string    `json:"displayName"`
	Gender      *string    `json:"gender"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	HeightCm    *float64   `json:"heightCm"`
	WeightKg    *float64   `json:"weightKg"`
}

/*
GetProfile returns the caller's profile.

GET /api/me/profile

Description: Absence is represented as a null data payload, not a 404, so
the SPA can render an empty profile form.

Response:
  - 200: Profile or null
*/
func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.profileService.Get(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

/*
UpdateProfile lazily creates or updates the caller's profile.

PUT /api/me/profile

Description: Blank display name or gender clears the column; measurements
mirror the request verbatim.

Request:
  - Body: updateProfileRequest

Response:
  - 200: Profile: The persisted state
  - 400: ErrInvalidJSON: Bad input or out-of-range measurements
*/
func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateProfileRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.MaxLen(FieldDisplayName, pointer.Val(input.DisplayName), MaxDisplayNameLength).
		MaxLen(FieldGender, pointer.Val(input.Gender), MaxGenderLength)

	if input.HeightCm != nil {
		validator.RangeFloat(FieldHeightCm, *input.HeightCm, 0, MaxHeightCm).
			Positive(FieldHeightCm, *input.HeightCm)
	}
	if input.WeightKg != nil {
		validator.RangeFloat(FieldWeightKg, *input.WeightKg, 0, MaxWeightKg).
			Positive(FieldWeightKg, *input.WeightKg)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.profileService.Update(request.Context(), userID, UpdateInput{
		DisplayName: input.DisplayName,
		Gender:      input.Gender,
		DateOfBirth: input.DateOfBirth,
		HeightCm:    input.HeightCm,
		WeightKg:    input.WeightKg,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}
