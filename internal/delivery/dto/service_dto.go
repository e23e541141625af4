package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateServiceRequest struct {
	Name        string          `json:"name" validate:"required,min=2"`
	Description string          `json:"description"`
	DurationMin int             `json:"durationMin" validate:"required,gt=0"`
	BasePrice   decimal.Decimal `json:"basePrice" validate:"required"`
	Type        string          `json:"type" validate:"required,oneof=individual_lesson paired_lesson physical_assessment technical_consultation"`
	Active      *bool           `json:"active"`
}

type UpdateServiceRequest struct {
	ID          uint            `json:"id" validate:"required"`
	Name        string          `json:"name" validate:"required,min=2"`
	Description string          `json:"description"`
	DurationMin int             `json:"durationMin" validate:"required,gt=0"`
	BasePrice   decimal.Decimal `json:"basePrice" validate:"required"`
	Type        string          `json:"type" validate:"required,oneof=individual_lesson paired_lesson physical_assessment technical_consultation"`
	Active      *bool           `json:"active"`
}

type DeleteServiceRequest struct {
	ID uint `json:"id" validate:"required"`
}

type ServiceResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	DurationMin int             `json:"durationMin"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	Type        string          `json:"type"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
