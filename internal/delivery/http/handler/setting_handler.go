package handler

import (
	"encoding/json"
	"net/http"

	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/usecase"
	"go-trainer-booking/pkg/response"
)

type SettingHandler struct {
	settingUsecase usecase.SettingUsecase
}

func NewSettingHandler(settingUsecase usecase.SettingUsecase) *SettingHandler {
	return &SettingHandler{settingUsecase: settingUsecase}
}

// Get handles GET /api/settings (public site copy)
func (h *SettingHandler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingUsecase.Get(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load settings")
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// Update handles PUT /api/admin/settings
func (h *SettingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.settingUsecase.Update(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to update settings")
		return
	}
	response.JSON(w, http.StatusOK, result)
}
