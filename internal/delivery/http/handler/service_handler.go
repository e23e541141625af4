package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/usecase"
	"go-trainer-booking/pkg/response"
	"go-trainer-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type ServiceHandler struct {
	serviceUsecase usecase.ServiceUsecase
	validator      *validator.CustomValidator
}

func NewServiceHandler(serviceUsecase usecase.ServiceUsecase, validator *validator.CustomValidator) *ServiceHandler {
	return &ServiceHandler{
		serviceUsecase: serviceUsecase,
		validator:      validator,
	}
}

// List handles GET /api/services (public catalog, active only)
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.serviceUsecase.ListActive(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list services")
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// ListAll handles GET /api/admin/services
func (h *ServiceHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.serviceUsecase.ListAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list services")
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// Create handles POST /api/admin/services
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.serviceUsecase.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrServicePriceNegative) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to create service")
		return
	}
	response.JSON(w, http.StatusCreated, result)
}

// Update handles PUT /api/admin/services/{id}
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	req.ID = id
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.serviceUsecase.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrServiceNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrServicePriceNegative):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update service")
		}
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// Delete handles DELETE /api/admin/services/{id}
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.serviceUsecase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrServiceNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to delete service")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} route variable, writing a 400 on failure
func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := mux.Vars(r)["id"]
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		response.BadRequest(w, "id must be a positive integer")
		return 0, false
	}
	return uint(parsed), true
}
