package entity

import "time"

// Lead is a consulting-plan funnel signup. It has no booking or payment rows;
// the webhook flips HasPaid directly when the plan purchase is approved.
type Lead struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone     string    `gorm:"type:varchar(50);not null" json:"phone"`
	Instagram string    `gorm:"type:varchar(255)" json:"instagram"`
	Notes     string    `gorm:"type:text" json:"notes"`
	PlanID    string    `gorm:"type:varchar(100);not null" json:"plan_id"`
	HasPaid   bool      `gorm:"not null;default:false;index" json:"has_paid"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Lead) TableName() string {
	return "leads"
}
