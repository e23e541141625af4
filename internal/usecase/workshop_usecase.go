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
)

var (
	ErrWorkshopDate            = errors.New("date must be a valid RFC3339 timestamp")
	ErrWorkshopPastDate        = errors.New("workshop date must not be in the past")
	ErrWorkshopSeats           = errors.New("maxSeats must be greater than zero")
	ErrWorkshopPriceNegative   = errors.New("price must not be negative")
	ErrWorkshopHasRegistrants  = errors.New("workshop has confirmed registrations and cannot be deleted")
	ErrWorkshopSeatsBelowTaken = errors.New("maxSeats cannot be lower than confirmed registrations")
)

type WorkshopUsecase interface {
	ListActive(ctx context.Context) ([]dto.WorkshopResponse, error)
	ListAll(ctx context.Context) ([]dto.WorkshopResponse, error)
	Create(ctx context.Context, req *dto.CreateWorkshopRequest) (*dto.WorkshopResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateWorkshopRequest) (*dto.WorkshopResponse, error)
	Delete(ctx context.Context, id uint) error
	Registrations(ctx context.Context, id uint) ([]dto.WorkshopRegistrationResponse, error)
}

type workshopUsecase struct {
	log          *logrus.Logger
	workshopRepo repository.WorkshopRepository
}

func NewWorkshopUsecase(log *logrus.Logger, workshopRepo repository.WorkshopRepository) WorkshopUsecase {
	return &workshopUsecase{log: log, workshopRepo: workshopRepo}
}

func (u *workshopUsecase) ListActive(ctx context.Context) ([]dto.WorkshopResponse, error) {
	workshops, err := u.workshopRepo.FindAllActive(ctx)
	if err != nil {
		u.log.Warnf("Failed to list active workshops: %+v", err)
		return nil, err
	}
	return converter.WorkshopsToResponses(workshops, false), nil
}

func (u *workshopUsecase) ListAll(ctx context.Context) ([]dto.WorkshopResponse, error) {
	workshops, err := u.workshopRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list workshops: %+v", err)
		return nil, err
	}
	return converter.WorkshopsToResponses(workshops, true), nil
}

func (u *workshopUsecase) Create(ctx context.Context, req *dto.CreateWorkshopRequest) (*dto.WorkshopResponse, error) {
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, ErrWorkshopDate
	}
	if date.Before(startOfToday()) {
		return nil, ErrWorkshopPastDate
	}
	if req.Price.IsNegative() {
		return nil, ErrWorkshopPriceNegative
	}

	workshop := &entity.Workshop{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		DurationMin: req.DurationMin,
		MaxSeats:    req.MaxSeats,
		Price:       req.Price,
		Active:      true,
		ImageURL:    req.ImageURL,
	}
	if workshop.DurationMin <= 0 {
		workshop.DurationMin = 240
	}
	if workshop.MaxSeats <= 0 {
		workshop.MaxSeats = 10
	}

	if err := u.workshopRepo.Create(ctx, workshop); err != nil {
		u.log.Warnf("Failed to create workshop: %+v", err)
		return nil, err
	}
	return converter.WorkshopToResponse(workshop, false), nil
}

func (u *workshopUsecase) Update(ctx context.Context, id uint, req *dto.UpdateWorkshopRequest) (*dto.WorkshopResponse, error) {
	workshop, err := u.workshopRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if workshop == nil {
		return nil, ErrWorkshopNotFound
	}

	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			return nil, ErrWorkshopDate
		}
		if date.Before(startOfToday()) {
			return nil, ErrWorkshopPastDate
		}
		workshop.Date = date
	}
	if req.Title != nil {
		workshop.Title = *req.Title
	}
	if req.Description != nil {
		workshop.Description = *req.Description
	}
	if req.DurationMin != nil {
		workshop.DurationMin = *req.DurationMin
	}
	if req.MaxSeats != nil {
		if *req.MaxSeats <= 0 {
			return nil, ErrWorkshopSeats
		}
		confirmed, err := u.workshopRepo.CountConfirmedBookings(ctx, id)
		if err != nil {
			return nil, err
		}
		if int64(*req.MaxSeats) < confirmed {
			return nil, ErrWorkshopSeatsBelowTaken
		}
		workshop.MaxSeats = *req.MaxSeats
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, ErrWorkshopPriceNegative
		}
		workshop.Price = *req.Price
	}
	if req.ImageURL != nil {
		workshop.ImageURL = *req.ImageURL
	}
	if req.Active != nil {
		workshop.Active = *req.Active
	}

	if err := u.workshopRepo.Update(ctx, workshop); err != nil {
		u.log.Warnf("Failed to update workshop %d: %+v", id, err)
		return nil, err
	}
	return converter.WorkshopToResponse(workshop, true), nil
}

// Delete refuses to remove a workshop that already has confirmed seats;
// deactivating it is the right move in that case.
func (u *workshopUsecase) Delete(ctx context.Context, id uint) error {
	workshop, err := u.workshopRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if workshop == nil {
		return ErrWorkshopNotFound
	}

	confirmed, err := u.workshopRepo.CountConfirmedBookings(ctx, id)
	if err != nil {
		return err
	}
	if confirmed > 0 {
		return ErrWorkshopHasRegistrants
	}
	return u.workshopRepo.Delete(ctx, id)
}

func (u *workshopUsecase) Registrations(ctx context.Context, id uint) ([]dto.WorkshopRegistrationResponse, error) {
	workshop, err := u.workshopRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if workshop == nil {
		return nil, ErrWorkshopNotFound
	}

	bookings, err := u.workshopRepo.FindRegistrations(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to list registrations for workshop %d: %+v", id, err)
		return nil, err
	}
	return converter.WorkshopRegistrationsToResponses(bookings), nil
}

func startOfToday() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
