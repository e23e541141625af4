package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type BookingCustomer struct {
	Name   string `json:"name" validate:"required,min=2"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone"`
	Gender string `json:"gender"`
}

type CreateBookingRequest struct {
	ServiceID      *uint           `json:"serviceId"`
	WorkshopID     *uint           `json:"workshopId"`
	AvailabilityID *uint           `json:"availabilityId"`
	ScheduledAt    string          `json:"scheduledAt" validate:"required"`
	Customer       BookingCustomer `json:"customer"`
	Notes          string          `json:"notes"`
	CustomField    string          `json:"customField"`
}

// Response DTOs

type CreateBookingResponse struct {
	BookingID        uint   `json:"bookingId"`
	PaymentID        uint   `json:"paymentId"`
	InitPoint        string `json:"initPoint"`
	SandboxInitPoint string `json:"sandboxInitPoint"`
}

type OccupiedTimesResponse struct {
	OccupiedTimes []string `json:"occupiedTimes"`
}

type UpcomingBookingResponse struct {
	ID            uint             `json:"id"`
	UserName      string           `json:"userName"`
	UserEmail     string           `json:"userEmail"`
	UserPhone     string           `json:"userPhone"`
	Gender        string           `json:"gender"`
	CustomField   string           `json:"customField"`
	Status        string           `json:"status"`
	ScheduledAt   time.Time        `json:"scheduledAt"`
	ServiceName   *string          `json:"serviceName"`
	WorkshopTitle *string          `json:"workshopTitle"`
	PaymentStatus *string          `json:"paymentStatus"`
	PaymentAmount *decimal.Decimal `json:"paymentAmount"`
}

type WorkshopRegistrationResponse struct {
	ID            uint      `json:"id"`
	UserName      string    `json:"userName"`
	UserEmail     string    `json:"userEmail"`
	UserPhone     string    `json:"userPhone"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	PaymentStatus *string   `json:"paymentStatus"`
}
