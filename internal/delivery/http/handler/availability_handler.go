package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/usecase"
	"go-trainer-booking/pkg/response"
	"go-trainer-booking/pkg/validator"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

// List handles GET /api/availability?serviceId=&date= (public, open slots only)
func (h *AvailabilityHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

// ListAll handles GET /api/admin/availability?serviceId=&date= (blocked included)
func (h *AvailabilityHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

func (h *AvailabilityHandler) list(w http.ResponseWriter, r *http.Request, onlyOpen bool) {
	serviceID, err := optionalUintQuery(r, "serviceId")
	if err != nil || serviceID == nil {
		response.BadRequest(w, "serviceId query parameter is required")
		return
	}

	var date *time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "date must be in YYYY-MM-DD format")
			return
		}
		date = &parsed
	}

	result, err := h.availabilityUsecase.ListByService(r.Context(), *serviceID, date, onlyOpen)
	if err != nil {
		response.InternalServerError(w, "Failed to list availability")
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// Create handles POST /api/admin/availability
func (h *AvailabilityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.availabilityUsecase.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate),
			errors.Is(err, usecase.ErrInvalidTimeValue),
			errors.Is(err, usecase.ErrInvalidTimeRange):
			response.BadRequest(w, err.Error())
		case errors.Is(err, usecase.ErrServiceNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create availability")
		}
		return
	}
	response.JSON(w, http.StatusCreated, result)
}

// Delete handles DELETE /api/admin/availability/{id}
func (h *AvailabilityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.availabilityUsecase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrSlotNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to delete availability")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
