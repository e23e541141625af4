package repository

import (
	"context"

	"go-trainer-booking/internal/domain/entity"
)

type SettingRepository interface {
	// GetOrCreate returns the singleton settings row, creating an
	// empty one if the table is empty.
	GetOrCreate(ctx context.Context) (*entity.Setting, error)
	Update(ctx context.Context, setting *entity.Setting) error
}
