package repository

import (
	"go-trainer-booking/internal/domain/entity"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	FindByID(db *gorm.DB, id uint) (*entity.Payment, error)
	// FindByProviderID resolves the gateway transaction id to a local payment
	// with its booking preloaded. Returns nil, nil when nothing matches.
	FindByProviderID(db *gorm.DB, providerID string) (*entity.Payment, error)
	SetProviderID(db *gorm.DB, id uint, providerID string) error
	// Approve performs the idempotent terminal transition as a single
	// conditional update (status <> APPROVED). Returns affected rows:
	// 0 means another delivery already applied the transition.
	Approve(db *gorm.DB, id uint, method string, rawPayload datatypes.JSON) (int64, error)
	// Reject moves a PENDING payment to REJECTED. Returns affected rows.
	Reject(db *gorm.DB, id uint, method string, rawPayload datatypes.JSON) (int64, error)
}
