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

type LeadHandler struct {
	leadUsecase usecase.LeadUsecase
	validator   *validator.CustomValidator
}

func NewLeadHandler(leadUsecase usecase.LeadUsecase, validator *validator.CustomValidator) *LeadHandler {
	return &LeadHandler{
		leadUsecase: leadUsecase,
		validator:   validator,
	}
}

// Create handles POST /api/leads (public funnel signup)
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.leadUsecase.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPlanNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrPlanInactive):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create lead")
		}
		return
	}
	response.JSON(w, http.StatusCreated, result)
}

// ListAll handles GET /api/admin/leads
func (h *LeadHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.leadUsecase.ListAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list leads")
		return
	}
	response.JSON(w, http.StatusOK, result)
}
