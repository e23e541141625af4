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

type PlanHandler struct {
	planUsecase usecase.PlanUsecase
	validator   *validator.CustomValidator
}

func NewPlanHandler(planUsecase usecase.PlanUsecase, validator *validator.CustomValidator) *PlanHandler {
	return &PlanHandler{
		planUsecase: planUsecase,
		validator:   validator,
	}
}

// List handles GET /api/plans (public, active only)
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.planUsecase.ListActive(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list plans")
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// ListAll handles GET /api/admin/plans
func (h *PlanHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.planUsecase.ListAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list plans")
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// Create handles POST /api/admin/plans
func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.planUsecase.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPlanSlugTaken):
			response.Error(w, http.StatusConflict, err.Error())
		case errors.Is(err, usecase.ErrPlanPriceNegative):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create plan")
		}
		return
	}
	response.JSON(w, http.StatusCreated, result)
}

// Update handles PUT /api/admin/plans/{id}
func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	req.ID = id
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.planUsecase.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPlanNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrPlanSlugTaken):
			response.Error(w, http.StatusConflict, err.Error())
		case errors.Is(err, usecase.ErrPlanPriceNegative):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update plan")
		}
		return
	}
	response.JSON(w, http.StatusOK, result)
}
