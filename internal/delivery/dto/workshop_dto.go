package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateWorkshopRequest struct {
	Title       string          `json:"title" validate:"required,min=2"`
	Description string          `json:"description"`
	Date        string          `json:"date" validate:"required"`
	DurationMin int             `json:"durationMin"`
	MaxSeats    int             `json:"maxSeats"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	ImageURL    string          `json:"imageUrl"`
}

type UpdateWorkshopRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Date        *string          `json:"date"`
	DurationMin *int             `json:"durationMin"`
	MaxSeats    *int             `json:"maxSeats"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"imageUrl"`
	Active      *bool            `json:"active"`
}

type WorkshopResponse struct {
	ID                uint            `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Date              time.Time       `json:"date"`
	DurationMin       int             `json:"durationMin"`
	MaxSeats          int             `json:"maxSeats"`
	Price             decimal.Decimal `json:"price"`
	Active            bool            `json:"active"`
	ImageURL          string          `json:"imageUrl"`
	RemainingSeats    int             `json:"remainingSeats"`
	ConfirmedBookings *int            `json:"confirmedBookings,omitempty"`
}
