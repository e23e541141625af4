package repository

import (
	"context"

	"go-trainer-booking/internal/domain/entity"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *entity.Plan) error
	FindAll(ctx context.Context) ([]entity.Plan, error)
	FindAllActive(ctx context.Context) ([]entity.Plan, error)
	FindByID(ctx context.Context, id uint) (*entity.Plan, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Plan, error)
	Update(ctx context.Context, plan *entity.Plan) error
}
