package converter

import (
	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/domain/entity"
)

func ServiceToResponse(service *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:          service.ID,
		Name:        service.Name,
		Description: service.Description,
		DurationMin: service.DurationMin,
		BasePrice:   service.BasePrice,
		Type:        string(service.Type),
		Active:      service.Active,
		CreatedAt:   service.CreatedAt,
		UpdatedAt:   service.UpdatedAt,
	}
}

func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, 0, len(services))
	for i := range services {
		responses = append(responses, *ServiceToResponse(&services[i]))
	}
	return responses
}
