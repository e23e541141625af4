package repository

import (
	"errors"

	"go-trainer-booking/internal/domain/entity"
	domainRepo "go-trainer-booking/internal/domain/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) FindByID(db *gorm.DB, id uint) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Preload("Booking").Where("id = ?", id).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByProviderID(db *gorm.DB, providerID string) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Preload("Booking").Where("provider_id = ?", providerID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) SetProviderID(db *gorm.DB, id uint, providerID string) error {
	return db.Model(&entity.Payment{}).Where("id = ?", id).
		Update("provider_id", providerID).Error
}

// Approve performs the terminal transition as one conditional update so
// concurrent or repeated webhook deliveries cannot apply it twice.
// Returns affected rows: 1 = this call won the transition, 0 = already approved.
func (r *paymentRepository) Approve(db *gorm.DB, id uint, method string, rawPayload datatypes.JSON) (int64, error) {
	result := db.Model(&entity.Payment{}).
		Where("id = ? AND status != ?", id, entity.PaymentStatusApproved).
		Updates(map[string]interface{}{
			"status":      entity.PaymentStatusApproved,
			"method":      method,
			"raw_payload": rawPayload,
		})
	return result.RowsAffected, result.Error
}

// Reject moves a PENDING payment to REJECTED. An already approved or already
// rejected payment is left untouched (0 affected rows).
func (r *paymentRepository) Reject(db *gorm.DB, id uint, method string, rawPayload datatypes.JSON) (int64, error) {
	result := db.Model(&entity.Payment{}).
		Where("id = ? AND status = ?", id, entity.PaymentStatusPending).
		Updates(map[string]interface{}{
			"status":      entity.PaymentStatusRejected,
			"method":      method,
			"raw_payload": rawPayload,
		})
	return result.RowsAffected, result.Error
}
