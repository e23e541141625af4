package converter

import (
	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/domain/entity"
)

func AvailabilityToResponse(availability *entity.Availability) *dto.AvailabilityResponse {
	return &dto.AvailabilityResponse{
		ID:        availability.ID,
		ServiceID: availability.ServiceID,
		Date:      availability.Date,
		StartTime: availability.StartTime,
		EndTime:   availability.EndTime,
		IsBlocked: availability.IsBlocked,
	}
}

func AvailabilitiesToResponses(availabilities []entity.Availability) []dto.AvailabilityResponse {
	responses := make([]dto.AvailabilityResponse, 0, len(availabilities))
	for i := range availabilities {
		responses = append(responses, *AvailabilityToResponse(&availabilities[i]))
	}
	return responses
}
