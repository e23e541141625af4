package repository

import (
	"context"
	"errors"

	"go-trainer-booking/internal/domain/entity"
	domainRepo "go-trainer-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) domainRepo.PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(ctx context.Context, plan *entity.Plan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *planRepository) FindAll(ctx context.Context) ([]entity.Plan, error) {
	var plans []entity.Plan
	err := r.db.WithContext(ctx).Order("id ASC").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) FindAllActive(ctx context.Context) ([]entity.Plan, error) {
	var plans []entity.Plan
	err := r.db.WithContext(ctx).Where("active = ?", true).Order("id ASC").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) FindByID(ctx context.Context, id uint) (*entity.Plan, error) {
	var plan entity.Plan
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) FindBySlug(ctx context.Context, slug string) (*entity.Plan, error) {
	var plan entity.Plan
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) Update(ctx context.Context, plan *entity.Plan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}
