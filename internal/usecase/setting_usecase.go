package usecase

import (
	"context"

	"go-trainer-booking/internal/converter"
	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// aboutMeMaxLen matches the column width; longer input is truncated
// rather than rejected.
const aboutMeMaxLen = 190

type SettingUsecase interface {
	Get(ctx context.Context) (*dto.SettingResponse, error)
	Update(ctx context.Context, req *dto.UpdateSettingRequest) (*dto.SettingResponse, error)
}

type settingUsecase struct {
	log         *logrus.Logger
	settingRepo repository.SettingRepository
}

func NewSettingUsecase(log *logrus.Logger, settingRepo repository.SettingRepository) SettingUsecase {
	return &settingUsecase{log: log, settingRepo: settingRepo}
}

func (u *settingUsecase) Get(ctx context.Context) (*dto.SettingResponse, error) {
	setting, err := u.settingRepo.GetOrCreate(ctx)
	if err != nil {
		u.log.Warnf("Failed to load settings: %+v", err)
		return nil, err
	}
	return converter.SettingToResponse(setting), nil
}

func (u *settingUsecase) Update(ctx context.Context, req *dto.UpdateSettingRequest) (*dto.SettingResponse, error) {
	setting, err := u.settingRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	if req.SiteTitle != nil {
		setting.SiteTitle = *req.SiteTitle
	}
	if req.ContactEmail != nil {
		setting.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		setting.ContactPhone = *req.ContactPhone
	}
	if req.CancellationPolicy != nil {
		setting.CancellationPolicy = *req.CancellationPolicy
	}
	if req.HeroTitle != nil {
		setting.HeroTitle = *req.HeroTitle
	}
	if req.HeroSubtitle != nil {
		setting.HeroSubtitle = *req.HeroSubtitle
	}
	if req.AboutMe != nil {
		about := *req.AboutMe
		if len([]rune(about)) > aboutMeMaxLen {
			about = string([]rune(about)[:aboutMeMaxLen])
		}
		setting.AboutMe = about
	}
	if req.WorkshopsIntroText != nil {
		setting.WorkshopsIntroText = *req.WorkshopsIntroText
	}
	if req.WorkshopsEmptyText != nil {
		setting.WorkshopsEmptyText = *req.WorkshopsEmptyText
	}
	if req.AvatarURL != nil {
		setting.AvatarURL = *req.AvatarURL
	}

	if err := u.settingRepo.Update(ctx, setting); err != nil {
		u.log.Warnf("Failed to update settings: %+v", err)
		return nil, err
	}
	return converter.SettingToResponse(setting), nil
}
