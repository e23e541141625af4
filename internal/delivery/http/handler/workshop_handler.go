package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/usecase"
	"go-trainer-booking/pkg/response"
	"go-trainer-booking/pkg/validator"
)

type WorkshopHandler struct {
	workshopUsecase usecase.WorkshopUsecase
	validator       *validator.CustomValidator
}

func NewWorkshopHandler(workshopUsecase usecase.WorkshopUsecase, validator *validator.CustomValidator) *WorkshopHandler {
	return &WorkshopHandler{
		workshopUsecase: workshopUsecase,
		validator:       validator,
	}
}

// List handles GET /api/workshops (public, active only)
func (h *WorkshopHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.workshopUsecase.ListActive(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list workshops")
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// ListAll handles GET /api/admin/workshops
func (h *WorkshopHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.workshopUsecase.ListAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list workshops")
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// Create handles POST /api/admin/workshops
func (h *WorkshopHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWorkshopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.workshopUsecase.Create(r.Context(), &req)
	if err != nil {
		if isWorkshopInputError(err) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to create workshop")
		return
	}
	response.JSON(w, http.StatusCreated, result)
}

// Update handles PATCH /api/admin/workshops/{id}
func (h *WorkshopHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateWorkshopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.workshopUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrWorkshopNotFound):
			response.NotFound(w, err.Error())
		case isWorkshopInputError(err):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update workshop")
		}
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// Delete handles DELETE /api/admin/workshops/{id}
func (h *WorkshopHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.workshopUsecase.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrWorkshopNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrWorkshopHasRegistrants):
			response.Error(w, http.StatusConflict, err.Error())
		default:
			response.InternalServerError(w, "Failed to delete workshop")
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Registrations handles GET /api/admin/workshops/{id}/registrations
func (h *WorkshopHandler) Registrations(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.workshopUsecase.Registrations(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrWorkshopNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to list registrations")
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func isWorkshopInputError(err error) bool {
	return errors.Is(err, usecase.ErrWorkshopDate) ||
		errors.Is(err, usecase.ErrWorkshopPastDate) ||
		errors.Is(err, usecase.ErrWorkshopSeats) ||
		errors.Is(err, usecase.ErrWorkshopSeatsBelowTaken) ||
		errors.Is(err, usecase.ErrWorkshopPriceNegative)
}
