package usecase

import (
	"context"
	"errors"
	"time"

	"go-trainer-booking/internal/converter"
	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/domain/entity"
	"go-trainer-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidTimeRange = errors.New("endTime must be after startTime")
	ErrInvalidTimeValue = errors.New("startTime and endTime must be in HH:MM format")
)

type AvailabilityUsecase interface {
	Create(ctx context.Context, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error)
	// ListByService returns open slots for the public booking form, or all
	// slots (blocked included) for the admin panel.
	ListByService(ctx context.Context, serviceID uint, date *time.Time, onlyOpen bool) ([]dto.AvailabilityResponse, error)
	Delete(ctx context.Context, id uint) error
}

type availabilityUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	availabilityRepo repository.AvailabilityRepository
	serviceRepo      repository.ServiceRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	availabilityRepo repository.AvailabilityRepository,
	serviceRepo repository.ServiceRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:               db,
		log:              log,
		availabilityRepo: availabilityRepo,
		serviceRepo:      serviceRepo,
	}
}

func (u *availabilityUsecase) Create(ctx context.Context, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	start, err := time.Parse("15:04", req.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeValue
	}
	end, err := time.Parse("15:04", req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeValue
	}
	if !end.After(start) {
		return nil, ErrInvalidTimeRange
	}

	service, err := u.serviceRepo.FindByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	availability := &entity.Availability{
		ServiceID: req.ServiceID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := u.availabilityRepo.Create(u.db.WithContext(ctx), availability); err != nil {
		u.log.Warnf("Failed to create availability: %+v", err)
		return nil, err
	}
	return converter.AvailabilityToResponse(availability), nil
}

func (u *availabilityUsecase) ListByService(ctx context.Context, serviceID uint, date *time.Time, onlyOpen bool) ([]dto.AvailabilityResponse, error) {
	slots, err := u.availabilityRepo.FindByService(u.db.WithContext(ctx), serviceID, date, onlyOpen)
	if err != nil {
		u.log.Warnf("Failed to list availability for service %d: %+v", serviceID, err)
		return nil, err
	}
	return converter.AvailabilitiesToResponses(slots), nil
}

func (u *availabilityUsecase) Delete(ctx context.Context, id uint) error {
	slot, err := u.availabilityRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return err
	}
	if slot == nil {
		return ErrSlotNotFound
	}
	return u.availabilityRepo.Delete(u.db.WithContext(ctx), id)
}
