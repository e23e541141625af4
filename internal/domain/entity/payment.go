package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusApproved PaymentStatus = "APPROVED"
	PaymentStatusRejected PaymentStatus = "REJECTED"
)

// Payment is the local record of a gateway payment, one per booking.
// ProviderID is the gateway-side identifier used to resolve webhook
// notifications back to this row. RawPayload keeps the provider's payment
// object verbatim for audit.
type Payment struct {
	ID         uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingID  uint            `gorm:"not null;uniqueIndex" json:"booking_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status     PaymentStatus   `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	ProviderID string          `gorm:"type:varchar(255);index" json:"provider_id"`
	Method     string          `gorm:"type:varchar(100)" json:"method"`
	RawPayload datatypes.JSON  `gorm:"type:jsonb" json:"raw_payload,omitempty"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Booking *Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

// IsApproved checks if the payment already reached its terminal approved state
func (p *Payment) IsApproved() bool {
	return p.Status == PaymentStatusApproved
}
