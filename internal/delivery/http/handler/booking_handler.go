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
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.bookingUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingTarget),
			errors.Is(err, usecase.ErrInvalidScheduledAt),
			errors.Is(err, usecase.ErrSlotBlocked),
			errors.Is(err, usecase.ErrWorkshopFull),
			errors.Is(err, usecase.ErrServiceInactive),
			errors.Is(err, usecase.ErrWorkshopInactive):
			response.BadRequest(w, err.Error())
		case errors.Is(err, usecase.ErrServiceNotFound),
			errors.Is(err, usecase.ErrWorkshopNotFound),
			errors.Is(err, usecase.ErrSlotNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrCheckoutUnavailable):
			response.Error(w, http.StatusBadGateway, err.Error())
		default:
			response.InternalServerError(w, "Failed to create booking")
		}
		return
	}

	response.JSON(w, http.StatusCreated, result)
}

// OccupiedTimes handles GET /api/bookings/occupied
func (h *BookingHandler) OccupiedTimes(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date query parameter is required")
		return
	}

	serviceID, err := optionalUintQuery(r, "serviceId")
	if err != nil {
		response.BadRequest(w, "serviceId must be a positive integer")
		return
	}
	workshopID, err := optionalUintQuery(r, "workshopId")
	if err != nil {
		response.BadRequest(w, "workshopId must be a positive integer")
		return
	}
	if serviceID == nil && workshopID == nil {
		response.BadRequest(w, "serviceId or workshopId query parameter is required")
		return
	}

	result, err := h.bookingUsecase.GetOccupiedTimes(r.Context(), date, serviceID, workshopID)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDate) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to list occupied times")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// Upcoming handles GET /api/admin/bookings/upcoming
func (h *BookingHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	result, err := h.bookingUsecase.GetUpcoming(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list upcoming bookings")
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func optionalUintQuery(r *http.Request, name string) (*uint, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return nil, errors.New("invalid " + name)
	}
	value := uint(parsed)
	return &value, nil
}
