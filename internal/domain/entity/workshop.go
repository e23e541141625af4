package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Workshop represents a group event with limited seats.
// Remaining seats are computed from confirmed bookings at read time, never stored.
type Workshop struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string          `gorm:"type:varchar(255);not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	DurationMin int             `gorm:"not null;default:240" json:"duration_min"`
	MaxSeats    int             `gorm:"not null;default:10" json:"max_seats"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Active      bool            `gorm:"not null;default:true;index" json:"active"`
	ImageURL    string          `gorm:"type:text" json:"image_url"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Bookings []Booking `gorm:"foreignKey:WorkshopID" json:"bookings,omitempty"`
}

func (Workshop) TableName() string {
	return "workshops"
}

// RemainingSeats derives the free seat count from the preloaded confirmed bookings
func (w *Workshop) RemainingSeats() int {
	return w.MaxSeats - len(w.Bookings)
}
