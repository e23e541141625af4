package entity

import "time"

// Setting holds the public site copy. The table has at most one row,
// created lazily on first read (get-or-create semantics).
type Setting struct {
	ID                 uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SiteTitle          string    `gorm:"type:varchar(255)" json:"site_title"`
	ContactEmail       string    `gorm:"type:varchar(255)" json:"contact_email"`
	ContactPhone       string    `gorm:"type:varchar(50)" json:"contact_phone"`
	CancellationPolicy string    `gorm:"type:text" json:"cancellation_policy"`
	HeroTitle          string    `gorm:"type:varchar(255)" json:"hero_title"`
	HeroSubtitle       string    `gorm:"type:varchar(255)" json:"hero_subtitle"`
	AboutMe            string    `gorm:"type:varchar(190)" json:"about_me"`
	WorkshopsIntroText string    `gorm:"type:text" json:"workshops_intro_text"`
	WorkshopsEmptyText string    `gorm:"type:text" json:"workshops_empty_text"`
	AvatarURL          string    `gorm:"type:text" json:"avatar_url"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}
