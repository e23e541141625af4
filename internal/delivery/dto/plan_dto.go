package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePlanRequest struct {
	Slug        string          `json:"slug" validate:"required,min=2"`
	Name        string          `json:"name" validate:"required,min=2"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Features    string          `json:"features"`
	Active      *bool           `json:"active"`
}

type UpdatePlanRequest struct {
	ID          uint            `json:"id" validate:"required"`
	Slug        string          `json:"slug" validate:"required,min=2"`
	Name        string          `json:"name" validate:"required,min=2"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Features    string          `json:"features"`
	Active      *bool           `json:"active"`
}

type PlanResponse struct {
	ID          uint            `json:"id"`
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Features    string          `json:"features"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
