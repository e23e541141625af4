package repository

import (
	"context"
	"errors"

	"go-trainer-booking/internal/domain/entity"
	domainRepo "go-trainer-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) domainRepo.SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) GetOrCreate(ctx context.Context) (*entity.Setting, error) {
	var setting entity.Setting
	err := r.db.WithContext(ctx).First(&setting).Error
	if err == nil {
		return &setting, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	setting = entity.Setting{}
	if err := r.db.WithContext(ctx).Create(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepository) Update(ctx context.Context, setting *entity.Setting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}
