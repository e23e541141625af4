package repository

import (
	"time"

	"go-trainer-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uint) (*entity.Booking, error)
	// Confirm atomically moves a booking to CONFIRMED unless it already is.
	// Returns affected rows.
	Confirm(db *gorm.DB, id uint) (int64, error)
	// FindOccupiedTimes returns the scheduled timestamps of PENDING and
	// CONFIRMED bookings inside [dayStart, dayEnd) for the given target.
	FindOccupiedTimes(db *gorm.DB, dayStart, dayEnd time.Time, serviceID, workshopID *uint) ([]time.Time, error)
	// FindUpcoming returns up to limit future bookings ordered by schedule,
	// with service, workshop and payment preloaded.
	FindUpcoming(db *gorm.DB, from time.Time, limit int) ([]entity.Booking, error)
}
