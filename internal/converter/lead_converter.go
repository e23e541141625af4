package converter

import (
	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/domain/entity"
)

func LeadToResponse(lead *entity.Lead) *dto.LeadResponse {
	return &dto.LeadResponse{
		ID:        lead.ID,
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Instagram: lead.Instagram,
		Notes:     lead.Notes,
		PlanID:    lead.PlanID,
		HasPaid:   lead.HasPaid,
		CreatedAt: lead.CreatedAt,
	}
}

func LeadsToResponses(leads []entity.Lead) []dto.LeadResponse {
	responses := make([]dto.LeadResponse, 0, len(leads))
	for i := range leads {
		responses = append(responses, *LeadToResponse(&leads[i]))
	}
	return responses
}
