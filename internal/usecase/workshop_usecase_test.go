package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/domain/entity"
	mock_repository "go-trainer-booking/internal/domain/repository/mocks"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

func newWorkshopUsecase(t *testing.T, ctrl *gomock.Controller) (WorkshopUsecase, *mock_repository.MockWorkshopRepository) {
	t.Helper()
	repo := mock_repository.NewMockWorkshopRepository(ctrl)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewWorkshopUsecase(log, repo), repo
}

func intPtr(v int) *int { return &v }

func TestWorkshopUsecase_Create(t *testing.T) {
	t.Run("applies duration and seat defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newWorkshopUsecase(t, ctrl)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, workshop *entity.Workshop) error {
				if workshop.DurationMin != 240 || workshop.MaxSeats != 10 {
					t.Fatalf("expected defaults 240/10, got %d/%d", workshop.DurationMin, workshop.MaxSeats)
				}
				if !workshop.Active {
					t.Fatal("expected new workshop to be active")
				}
				workshop.ID = 2
				return nil
			})

		resp, err := uc.Create(context.Background(), &dto.CreateWorkshopRequest{
			Title: "Mobility Basics",
			Date:  time.Now().UTC().Add(72 * time.Hour).Format(time.RFC3339),
			Price: decimal.NewFromInt(80),
		})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if resp.ID != 2 || resp.RemainingSeats != 10 {
			t.Fatalf("unexpected response %+v", resp)
		}
	})

	t.Run("rejects a past date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newWorkshopUsecase(t, ctrl)

		_, err := uc.Create(context.Background(), &dto.CreateWorkshopRequest{
			Title: "Mobility Basics",
			Date:  "2020-01-01T10:00:00Z",
			Price: decimal.NewFromInt(80),
		})
		if !errors.Is(err, ErrWorkshopPastDate) {
			t.Fatalf("expected ErrWorkshopPastDate, got %v", err)
		}
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newWorkshopUsecase(t, ctrl)

		_, err := uc.Create(context.Background(), &dto.CreateWorkshopRequest{
			Title: "Mobility Basics",
			Date:  "next friday",
			Price: decimal.NewFromInt(80),
		})
		if !errors.Is(err, ErrWorkshopDate) {
			t.Fatalf("expected ErrWorkshopDate, got %v", err)
		}
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newWorkshopUsecase(t, ctrl)

		_, err := uc.Create(context.Background(), &dto.CreateWorkshopRequest{
			Title: "Mobility Basics",
			Date:  time.Now().UTC().Add(72 * time.Hour).Format(time.RFC3339),
			Price: decimal.NewFromInt(-1),
		})
		if !errors.Is(err, ErrWorkshopPriceNegative) {
			t.Fatalf("expected ErrWorkshopPriceNegative, got %v", err)
		}
	})
}

func TestWorkshopUsecase_Update(t *testing.T) {
	existing := func() *entity.Workshop {
		return &entity.Workshop{
			ID:       2,
			Title:    "Mobility Basics",
			Date:     time.Now().UTC().Add(72 * time.Hour),
			MaxSeats: 10,
			Price:    decimal.NewFromInt(80),
			Active:   true,
		}
	}

	t.Run("seats cannot drop below confirmed registrations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newWorkshopUsecase(t, ctrl)

		repo.EXPECT().FindByID(gomock.Any(), uint(2)).Return(existing(), nil)
		repo.EXPECT().CountConfirmedBookings(gomock.Any(), uint(2)).Return(int64(6), nil)

		_, err := uc.Update(context.Background(), 2, &dto.UpdateWorkshopRequest{MaxSeats: intPtr(4)})
		if !errors.Is(err, ErrWorkshopSeatsBelowTaken) {
			t.Fatalf("expected ErrWorkshopSeatsBelowTaken, got %v", err)
		}
	})

	t.Run("seats can shrink down to the confirmed count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newWorkshopUsecase(t, ctrl)

		repo.EXPECT().FindByID(gomock.Any(), uint(2)).Return(existing(), nil)
		repo.EXPECT().CountConfirmedBookings(gomock.Any(), uint(2)).Return(int64(6), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, workshop *entity.Workshop) error {
				if workshop.MaxSeats != 6 {
					t.Fatalf("expected 6 seats, got %d", workshop.MaxSeats)
				}
				return nil
			})

		if _, err := uc.Update(context.Background(), 2, &dto.UpdateWorkshopRequest{MaxSeats: intPtr(6)}); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("unknown workshop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newWorkshopUsecase(t, ctrl)

		repo.EXPECT().FindByID(gomock.Any(), uint(404)).Return(nil, nil)

		_, err := uc.Update(context.Background(), 404, &dto.UpdateWorkshopRequest{})
		if !errors.Is(err, ErrWorkshopNotFound) {
			t.Fatalf("expected ErrWorkshopNotFound, got %v", err)
		}
	})
}

func TestWorkshopUsecase_Delete(t *testing.T) {
	t.Run("refuses while confirmed registrations exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newWorkshopUsecase(t, ctrl)

		repo.EXPECT().FindByID(gomock.Any(), uint(2)).Return(&entity.Workshop{ID: 2}, nil)
		repo.EXPECT().CountConfirmedBookings(gomock.Any(), uint(2)).Return(int64(1), nil)

		if err := uc.Delete(context.Background(), 2); !errors.Is(err, ErrWorkshopHasRegistrants) {
			t.Fatalf("expected ErrWorkshopHasRegistrants, got %v", err)
		}
	})

	t.Run("deletes when empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newWorkshopUsecase(t, ctrl)

		repo.EXPECT().FindByID(gomock.Any(), uint(2)).Return(&entity.Workshop{ID: 2}, nil)
		repo.EXPECT().CountConfirmedBookings(gomock.Any(), uint(2)).Return(int64(0), nil)
		repo.EXPECT().Delete(gomock.Any(), uint(2)).Return(nil)

		if err := uc.Delete(context.Background(), 2); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})
}
