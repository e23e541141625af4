package repository

import (
	"context"
	"errors"

	"go-trainer-booking/internal/domain/entity"
	domainRepo "go-trainer-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type workshopRepository struct {
	db *gorm.DB
}

func NewWorkshopRepository(db *gorm.DB) domainRepo.WorkshopRepository {
	return &workshopRepository{db: db}
}

func (r *workshopRepository) Create(ctx context.Context, workshop *entity.Workshop) error {
	return r.db.WithContext(ctx).Create(workshop).Error
}

func (r *workshopRepository) FindAllActive(ctx context.Context) ([]entity.Workshop, error) {
	var workshops []entity.Workshop
	err := r.db.WithContext(ctx).
		Preload("Bookings", "status = ?", entity.BookingStatusConfirmed).
		Where("active = ?", true).
		Order("date ASC").
		Find(&workshops).Error
	if err != nil {
		return nil, err
	}
	return workshops, nil
}

func (r *workshopRepository) FindAll(ctx context.Context) ([]entity.Workshop, error) {
	var workshops []entity.Workshop
	err := r.db.WithContext(ctx).
		Preload("Bookings", "status = ?", entity.BookingStatusConfirmed).
		Order("date DESC").
		Find(&workshops).Error
	if err != nil {
		return nil, err
	}
	return workshops, nil
}

func (r *workshopRepository) FindByID(ctx context.Context, id uint) (*entity.Workshop, error) {
	var workshop entity.Workshop
	err := r.db.WithContext(ctx).
		Preload("Bookings", "status = ?", entity.BookingStatusConfirmed).
		Where("id = ?", id).
		First(&workshop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workshop, nil
}

func (r *workshopRepository) Update(ctx context.Context, workshop *entity.Workshop) error {
	return r.db.WithContext(ctx).Save(workshop).Error
}

func (r *workshopRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Workshop{}).Error
}

func (r *workshopRepository) CountConfirmedBookings(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Booking{}).
		Where("workshop_id = ? AND status = ?", id, entity.BookingStatusConfirmed).
		Count(&count).Error
	return count, err
}

func (r *workshopRepository) FindRegistrations(ctx context.Context, id uint) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.WithContext(ctx).
		Preload("Payment").
		Where("workshop_id = ?", id).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
