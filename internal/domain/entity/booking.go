package entity

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking represents a customer booking for a service slot or a workshop seat.
// Exactly one of ServiceID/WorkshopID is set. Bookings are always created
// PENDING and only reach CONFIRMED through payment reconciliation.
type Booking struct {
	ID          uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserName    string        `gorm:"type:varchar(255);not null" json:"user_name"`
	UserEmail   string        `gorm:"type:varchar(255);not null;index" json:"user_email"`
	UserPhone   string        `gorm:"type:varchar(50)" json:"user_phone"`
	Gender      string        `gorm:"type:varchar(30)" json:"gender"`
	Notes       string        `gorm:"type:text" json:"notes"`
	CustomField string        `gorm:"type:text" json:"custom_field"`
	Status      BookingStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	ScheduledAt time.Time     `gorm:"not null;index" json:"scheduled_at"`

	ServiceID      *uint `gorm:"index" json:"service_id"`
	WorkshopID     *uint `gorm:"index" json:"workshop_id"`
	AvailabilityID *uint `gorm:"index" json:"availability_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Service      *Service      `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Workshop     *Workshop     `gorm:"foreignKey:WorkshopID" json:"workshop,omitempty"`
	Availability *Availability `gorm:"foreignKey:AvailabilityID" json:"availability,omitempty"`
	Payment      *Payment      `gorm:"foreignKey:BookingID" json:"payment,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsPending checks if booking is in pending status
func (b *Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

// IsConfirmed checks if booking is confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed
}
