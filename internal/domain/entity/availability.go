package entity

import "time"

// Availability represents a bookable time slot for a service.
// IsBlocked only ever transitions false -> true, when the booking
// attached to the slot is confirmed.
type Availability struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ServiceID uint      `gorm:"not null;index" json:"service_id"`
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	StartTime string    `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime   string    `gorm:"type:varchar(5);not null" json:"end_time"`
	IsBlocked bool      `gorm:"not null;default:false;index" json:"is_blocked"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Service Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (Availability) TableName() string {
	return "availabilities"
}
