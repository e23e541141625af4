package converter

import (
	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/domain/entity"
)

func PlanToResponse(plan *entity.Plan) *dto.PlanResponse {
	return &dto.PlanResponse{
		ID:          plan.ID,
		Slug:        plan.Slug,
		Name:        plan.Name,
		Description: plan.Description,
		Price:       plan.Price,
		Features:    plan.Features,
		Active:      plan.Active,
		CreatedAt:   plan.CreatedAt,
		UpdatedAt:   plan.UpdatedAt,
	}
}

func PlansToResponses(plans []entity.Plan) []dto.PlanResponse {
	responses := make([]dto.PlanResponse, 0, len(plans))
	for i := range plans {
		responses = append(responses, *PlanToResponse(&plans[i]))
	}
	return responses
}
