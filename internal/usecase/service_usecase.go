package usecase

import (
	"context"
	"errors"

	"go-trainer-booking/internal/converter"
	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/domain/entity"
	"go-trainer-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrServicePriceNegative = errors.New("basePrice must not be negative")

type ServiceUsecase interface {
	// ListActive feeds the public catalog; ListAll the admin panel.
	ListActive(ctx context.Context) ([]dto.ServiceResponse, error)
	ListAll(ctx context.Context) ([]dto.ServiceResponse, error)
	Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	Update(ctx context.Context, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	Delete(ctx context.Context, id uint) error
}

type serviceUsecase struct {
	log         *logrus.Logger
	serviceRepo repository.ServiceRepository
}

func NewServiceUsecase(log *logrus.Logger, serviceRepo repository.ServiceRepository) ServiceUsecase {
	return &serviceUsecase{log: log, serviceRepo: serviceRepo}
}

func (u *serviceUsecase) ListActive(ctx context.Context) ([]dto.ServiceResponse, error) {
	services, err := u.serviceRepo.FindAllActive(ctx)
	if err != nil {
		u.log.Warnf("Failed to list active services: %+v", err)
		return nil, err
	}
	return converter.ServicesToResponses(services), nil
}

func (u *serviceUsecase) ListAll(ctx context.Context) ([]dto.ServiceResponse, error) {
	services, err := u.serviceRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list services: %+v", err)
		return nil, err
	}
	return converter.ServicesToResponses(services), nil
}

func (u *serviceUsecase) Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if req.BasePrice.IsNegative() {
		return nil, ErrServicePriceNegative
	}

	service := &entity.Service{
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		BasePrice:   req.BasePrice,
		Type:        entity.ServiceType(req.Type),
		Active:      true,
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := u.serviceRepo.Create(ctx, service); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}
	return converter.ServiceToResponse(service), nil
}

func (u *serviceUsecase) Update(ctx context.Context, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if req.BasePrice.IsNegative() {
		return nil, ErrServicePriceNegative
	}

	service, err := u.serviceRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	service.Name = req.Name
	service.Description = req.Description
	service.DurationMin = req.DurationMin
	service.BasePrice = req.BasePrice
	service.Type = entity.ServiceType(req.Type)
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := u.serviceRepo.Update(ctx, service); err != nil {
		u.log.Warnf("Failed to update service %d: %+v", req.ID, err)
		return nil, err
	}
	return converter.ServiceToResponse(service), nil
}

func (u *serviceUsecase) Delete(ctx context.Context, id uint) error {
	service, err := u.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if service == nil {
		return ErrServiceNotFound
	}
	return u.serviceRepo.Delete(ctx, id)
}
