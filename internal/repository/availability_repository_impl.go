package repository

import (
	"errors"
	"time"

	"go-trainer-booking/internal/domain/entity"
	domainRepo "go-trainer-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type availabilityRepository struct{}

func NewAvailabilityRepository() domainRepo.AvailabilityRepository {
	return &availabilityRepository{}
}

func (r *availabilityRepository) Create(db *gorm.DB, availability *entity.Availability) error {
	return db.Create(availability).Error
}

func (r *availabilityRepository) FindByService(db *gorm.DB, serviceID uint, date *time.Time, onlyOpen bool) ([]entity.Availability, error) {
	query := db.Where("service_id = ?", serviceID)

	if onlyOpen {
		query = query.Where("is_blocked = ?", false)
	}

	if date != nil {
		dayStart := date.Truncate(24 * time.Hour)
		dayEnd := dayStart.AddDate(0, 0, 1)
		query = query.Where("date >= ? AND date < ?", dayStart, dayEnd)
	}

	var availabilities []entity.Availability
	err := query.Order("date ASC, start_time ASC").Find(&availabilities).Error
	if err != nil {
		return nil, err
	}
	return availabilities, nil
}

func (r *availabilityRepository) FindByID(db *gorm.DB, id uint) (*entity.Availability, error) {
	var availability entity.Availability
	err := db.Where("id = ?", id).First(&availability).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &availability, nil
}

func (r *availabilityRepository) Delete(db *gorm.DB, id uint) error {
	return db.Where("id = ?", id).Delete(&entity.Availability{}).Error
}

// Block flips is_blocked false -> true in a single conditional update so a
// duplicate confirmation cannot double-apply the transition.
func (r *availabilityRepository) Block(db *gorm.DB, id uint) (int64, error) {
	result := db.Model(&entity.Availability{}).
		Where("id = ? AND is_blocked = ?", id, false).
		Update("is_blocked", true)
	return result.RowsAffected, result.Error
}
