package repository

import (
	"context"

	"go-trainer-booking/internal/domain/entity"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindAll(ctx context.Context) ([]entity.Lead, error)
	FindByID(ctx context.Context, id uint) (*entity.Lead, error)
	// MarkPaid atomically flips has_paid false -> true.
	// Returns affected rows: 0 means the lead was already marked.
	MarkPaid(ctx context.Context, id uint) (int64, error)
}
