package dto

import "time"

type CreateAvailabilityRequest struct {
	ServiceID uint   `json:"serviceId" validate:"required"`
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

type DeleteAvailabilityRequest struct {
	ID uint `json:"id" validate:"required"`
}

type AvailabilityResponse struct {
	ID        uint      `json:"id"`
	ServiceID uint      `json:"serviceId"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	IsBlocked bool      `json:"isBlocked"`
}
