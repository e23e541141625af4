package repository

import (
	"errors"
	"time"

	"go-trainer-booking/internal/domain/entity"
	domainRepo "go-trainer-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uint) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Service").Preload("Workshop").Preload("Availability").
		Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// Confirm atomically confirms a booking ONLY if it is not already confirmed.
// Returns affected rows: 1 = success, 0 = already confirmed.
func (r *bookingRepository) Confirm(db *gorm.DB, id uint) (int64, error) {
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status != ?", id, entity.BookingStatusConfirmed).
		Update("status", entity.BookingStatusConfirmed)
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) FindOccupiedTimes(db *gorm.DB, dayStart, dayEnd time.Time, serviceID, workshopID *uint) ([]time.Time, error) {
	query := db.Model(&entity.Booking{}).
		Where("scheduled_at >= ? AND scheduled_at < ?", dayStart, dayEnd).
		Where("status IN ?", []entity.BookingStatus{entity.BookingStatusPending, entity.BookingStatusConfirmed})

	if serviceID != nil {
		query = query.Where("service_id = ?", *serviceID)
	}
	if workshopID != nil {
		query = query.Where("workshop_id = ?", *workshopID)
	}

	var times []time.Time
	if err := query.Order("scheduled_at ASC").Pluck("scheduled_at", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

func (r *bookingRepository) FindUpcoming(db *gorm.DB, from time.Time, limit int) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("Service").Preload("Workshop").Preload("Payment").
		Where("scheduled_at >= ?", from).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
