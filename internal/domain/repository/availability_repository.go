package repository

import (
	"time"

	"go-trainer-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type AvailabilityRepository interface {
	Create(db *gorm.DB, availability *entity.Availability) error
	// FindByService lists slots for a service ordered by date and start time.
	// When onlyOpen is true, blocked slots are excluded. A non-nil date
	// restricts results to that calendar day.
	FindByService(db *gorm.DB, serviceID uint, date *time.Time, onlyOpen bool) ([]entity.Availability, error)
	FindByID(db *gorm.DB, id uint) (*entity.Availability, error)
	Delete(db *gorm.DB, id uint) error
	// Block atomically flips is_blocked false -> true.
	// Returns affected rows: 0 means the slot was already blocked.
	Block(db *gorm.DB, id uint) (int64, error)
}
