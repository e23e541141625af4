package dto

import "time"

type CreateLeadRequest struct {
	Name      string `json:"name" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Instagram string `json:"instagram"`
	Notes     string `json:"notes"`
	PlanID    string `json:"planId" validate:"required"`
}

type LeadResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Instagram string    `json:"instagram"`
	Notes     string    `json:"notes"`
	PlanID    string    `json:"planId"`
	HasPaid   bool      `json:"hasPaid"`
	CreatedAt time.Time `json:"createdAt"`
}
