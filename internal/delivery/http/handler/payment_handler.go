package handler

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go-trainer-booking/config"
	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/usecase"
	"go-trainer-booking/pkg/response"
	"go-trainer-booking/pkg/validator"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
	cfg            *config.Config
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator, cfg *config.Config) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
		cfg:            cfg,
	}
}

// Webhook handles POST /api/payments/webhook.
//
// The shared token travels in the query string or the x-webhook-token header
// and is compared in constant time. Consumed notifications always return
// 200 {"received":true} so the provider stops retrying; only internal
// failures return 500, which requests a retry.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		token = r.Header.Get("x-webhook-token")
	}

	expected := h.cfg.MercadoPago.WebhookToken
	if expected == "" || subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
		response.Unauthorized(w, "Invalid webhook token")
		return
	}

	var req dto.WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	paymentID, ok := coercePaymentID(req.Data.ID)
	if !ok {
		response.BadRequest(w, "data.id is required and must be numeric")
		return
	}

	if err := h.paymentUsecase.ProcessWebhook(r.Context(), paymentID); err != nil {
		response.InternalServerError(w, "Failed to process payment notification")
		return
	}

	response.JSON(w, http.StatusOK, dto.WebhookAck{Received: true})
}

// CreatePlanPreference handles POST /api/payments/plan-preference
func (h *PaymentHandler) CreatePlanPreference(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePlanPreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.paymentUsecase.CreatePlanPreference(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPlanNotFound), errors.Is(err, usecase.ErrLeadNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrPlanInactive):
			response.BadRequest(w, err.Error())
		case errors.Is(err, usecase.ErrCheckoutUnavailable):
			response.Error(w, http.StatusBadGateway, err.Error())
		default:
			response.InternalServerError(w, "Failed to create plan preference")
		}
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// ForceApprove handles POST /api/payments/dev/force-approve.
// Disabled outside development.
func (h *PaymentHandler) ForceApprove(w http.ResponseWriter, r *http.Request) {
	if h.cfg.App.Env == "production" {
		response.Forbidden(w, "Not available in production")
		return
	}

	var req dto.ForceApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.paymentUsecase.ForceApprove(r.Context(), req.PaymentID); err != nil {
		if errors.Is(err, usecase.ErrPaymentNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to force approve payment")
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{"approved": true})
}

// coercePaymentID accepts the id as a JSON number or a numeric string
func coercePaymentID(raw any) (int, bool) {
	switch v := raw.(type) {
	case float64:
		if v > 0 {
			return int(v), true
		}
	case string:
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed, true
		}
	}
	return 0, false
}
