package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceType categorizes the bookable services offered by the trainer
type ServiceType string

const (
	ServiceTypeIndividualLesson      ServiceType = "individual_lesson"
	ServiceTypePairedLesson          ServiceType = "paired_lesson"
	ServiceTypePhysicalAssessment    ServiceType = "physical_assessment"
	ServiceTypeTechnicalConsultation ServiceType = "technical_consultation"
)

// Service represents a bookable service (lesson, assessment, consultation)
type Service struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	DurationMin int             `gorm:"not null" json:"duration_min"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"base_price"`
	Type        ServiceType     `gorm:"type:varchar(50);not null" json:"type"`
	Active      bool            `gorm:"not null;default:true;index" json:"active"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Service) TableName() string {
	return "services"
}
