package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan is a consulting plan sold through the landing-page funnel
type Plan struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug        string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Features    string          `gorm:"type:text" json:"features"`
	Active      bool            `gorm:"not null;default:true;index" json:"active"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Plan) TableName() string {
	return "plans"
}
