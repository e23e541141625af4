package converter

import (
	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/domain/entity"
)

func SettingToResponse(setting *entity.Setting) *dto.SettingResponse {
	return &dto.SettingResponse{
		ID:                 setting.ID,
		SiteTitle:          setting.SiteTitle,
		ContactEmail:       setting.ContactEmail,
		ContactPhone:       setting.ContactPhone,
		CancellationPolicy: setting.CancellationPolicy,
		HeroTitle:          setting.HeroTitle,
		HeroSubtitle:       setting.HeroSubtitle,
		AboutMe:            setting.AboutMe,
		WorkshopsIntroText: setting.WorkshopsIntroText,
		WorkshopsEmptyText: setting.WorkshopsEmptyText,
		AvatarURL:          setting.AvatarURL,
	}
}
