package repository

import (
	"context"

	"go-trainer-booking/internal/domain/entity"
)

type WorkshopRepository interface {
	Create(ctx context.Context, workshop *entity.Workshop) error
	// FindAllActive returns active workshops ordered by date ascending,
	// with confirmed bookings preloaded for seat accounting.
	FindAllActive(ctx context.Context) ([]entity.Workshop, error)
	// FindAll returns every workshop ordered by date descending,
	// with confirmed bookings preloaded.
	FindAll(ctx context.Context) ([]entity.Workshop, error)
	FindByID(ctx context.Context, id uint) (*entity.Workshop, error)
	Update(ctx context.Context, workshop *entity.Workshop) error
	Delete(ctx context.Context, id uint) error
	CountConfirmedBookings(ctx context.Context, id uint) (int64, error)
	// FindRegistrations returns all bookings against a workshop with
	// their payments preloaded, newest first.
	FindRegistrations(ctx context.Context, id uint) ([]entity.Booking, error)
}
