package repository

import (
	"context"
	"errors"

	"go-trainer-booking/internal/domain/entity"
	domainRepo "go-trainer-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) domainRepo.LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *leadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	var leads []entity.Lead
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&leads).Error
	if err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *leadRepository) FindByID(ctx context.Context, id uint) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&lead).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &lead, nil
}

// MarkPaid flips has_paid false -> true exactly once.
// Returns affected rows: 0 means a previous delivery already marked the lead.
func (r *leadRepository) MarkPaid(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Lead{}).
		Where("id = ? AND has_paid = ?", id, false).
		Update("has_paid", true)
	return result.RowsAffected, result.Error
}
