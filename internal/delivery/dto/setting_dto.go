package dto

// UpdateSettingRequest uses pointers so absent fields keep their stored value
type UpdateSettingRequest struct {
	SiteTitle          *string `json:"siteTitle"`
	ContactEmail       *string `json:"contactEmail"`
	ContactPhone       *string `json:"contactPhone"`
	CancellationPolicy *string `json:"cancellationPolicy"`
	HeroTitle          *string `json:"heroTitle"`
	HeroSubtitle       *string `json:"heroSubtitle"`
	AboutMe            *string `json:"aboutMe"`
	WorkshopsIntroText *string `json:"workshopsIntroText"`
	WorkshopsEmptyText *string `json:"workshopsEmptyText"`
	AvatarURL          *string `json:"avatarUrl"`
}

type SettingResponse struct {
	ID                 uint   `json:"id"`
	SiteTitle          string `json:"siteTitle"`
	ContactEmail       string `json:"contactEmail"`
	ContactPhone       string `json:"contactPhone"`
	CancellationPolicy string `json:"cancellationPolicy"`
	HeroTitle          string `json:"heroTitle"`
	HeroSubtitle       string `json:"heroSubtitle"`
	AboutMe            string `json:"aboutMe"`
	WorkshopsIntroText string `json:"workshopsIntroText"`
	WorkshopsEmptyText string `json:"workshopsEmptyText"`
	AvatarURL          string `json:"avatarUrl"`
}
