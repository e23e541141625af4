package repository

import (
	"context"

	"go-trainer-booking/internal/domain/entity"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	FindAll(ctx context.Context) ([]entity.Service, error)
	FindAllActive(ctx context.Context) ([]entity.Service, error)
	FindByID(ctx context.Context, id uint) (*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id uint) error
}
