package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"go-trainer-booking/config"
	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/domain/entity"
	"go-trainer-booking/internal/domain/gateway"
	mock_gateway "go-trainer-booking/internal/domain/gateway/mocks"
	mock_repository "go-trainer-booking/internal/domain/repository/mocks"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type bookingMocks struct {
	bookingRepo      *mock_repository.MockBookingRepository
	paymentRepo      *mock_repository.MockPaymentRepository
	availabilityRepo *mock_repository.MockAvailabilityRepository
	serviceRepo      *mock_repository.MockServiceRepository
	workshopRepo     *mock_repository.MockWorkshopRepository
	gateway          *mock_gateway.MockPaymentGateway
}

func newBookingUsecase(t *testing.T, ctrl *gomock.Controller) (BookingUsecase, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		bookingRepo:      mock_repository.NewMockBookingRepository(ctrl),
		paymentRepo:      mock_repository.NewMockPaymentRepository(ctrl),
		availabilityRepo: mock_repository.NewMockAvailabilityRepository(ctrl),
		serviceRepo:      mock_repository.NewMockServiceRepository(ctrl),
		workshopRepo:     mock_repository.NewMockWorkshopRepository(ctrl),
		gateway:          mock_gateway.NewMockPaymentGateway(ctrl),
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{}
	cfg.App.BackendBaseURL = "http://localhost:4000"
	cfg.App.FrontendBaseURL = "http://localhost:3000"
	cfg.MercadoPago.WebhookToken = "hook-token"

	uc := NewBookingUsecase(
		newTestDB(t), log, cfg,
		m.bookingRepo, m.paymentRepo, m.availabilityRepo, m.serviceRepo, m.workshopRepo,
		m.gateway,
	)
	return uc, m
}

func validBookingRequest() *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		ServiceID:   uintPtr(1),
		ScheduledAt: "2026-09-10T14:00:00Z",
		Customer: dto.BookingCustomer{
			Name:  "Ana",
			Email: "ana@example.com",
			Phone: "+5511999990000",
		},
	}
}

func activeService() *entity.Service {
	return &entity.Service{
		ID:        1,
		Name:      "Personal Training",
		BasePrice: decimal.NewFromInt(150),
		Active:    true,
	}
}

func TestBookingUsecase_CreateBooking(t *testing.T) {
	t.Run("service booking with catalog price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBookingUsecase(t, ctrl)

		m.serviceRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(activeService(), nil)
		m.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ *gorm.DB, booking *entity.Booking) error {
				if booking.Status != entity.BookingStatusPending {
					t.Fatalf("expected PENDING booking, got %s", booking.Status)
				}
				booking.ID = 3
				return nil
			})
		m.paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ *gorm.DB, payment *entity.Payment) error {
				if payment.BookingID != 3 {
					t.Fatalf("expected payment bound to booking 3, got %d", payment.BookingID)
				}
				if !payment.Amount.Equal(decimal.NewFromInt(150)) {
					t.Fatalf("expected catalog price 150, got %s", payment.Amount)
				}
				payment.ID = 7
				return nil
			})
		m.gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *gateway.PreferenceRequest) (*gateway.Preference, error) {
				if len(req.Items) != 1 || req.Items[0].UnitPrice != 150 {
					t.Fatalf("expected unit price 150, got %+v", req.Items)
				}
				if req.Metadata["bookingId"] != uint(3) || req.Metadata["paymentId"] != uint(7) {
					t.Fatalf("unexpected metadata %+v", req.Metadata)
				}
				if req.NotificationURL != "http://localhost:4000/api/payments/webhook?token=hook-token" {
					t.Fatalf("unexpected notification url %q", req.NotificationURL)
				}
				return &gateway.Preference{ID: "pref-3", InitPoint: "https://mp/init", SandboxInitPoint: "https://mp/sandbox"}, nil
			})
		m.paymentRepo.EXPECT().SetProviderID(gomock.Any(), uint(7), "pref-3").Return(nil)

		resp, err := uc.CreateBooking(context.Background(), validBookingRequest())
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if resp.BookingID != 3 || resp.PaymentID != 7 {
			t.Fatalf("unexpected ids in response: %+v", resp)
		}
		if resp.InitPoint != "https://mp/init" {
			t.Fatalf("unexpected init point %q", resp.InitPoint)
		}
	})

	t.Run("rejects both targets set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newBookingUsecase(t, ctrl)

		req := validBookingRequest()
		req.WorkshopID = uintPtr(2)

		if _, err := uc.CreateBooking(context.Background(), req); !errors.Is(err, ErrBookingTarget) {
			t.Fatalf("expected ErrBookingTarget, got %v", err)
		}
	})

	t.Run("rejects no target set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newBookingUsecase(t, ctrl)

		req := validBookingRequest()
		req.ServiceID = nil

		if _, err := uc.CreateBooking(context.Background(), req); !errors.Is(err, ErrBookingTarget) {
			t.Fatalf("expected ErrBookingTarget, got %v", err)
		}
	})

	t.Run("rejects malformed scheduledAt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newBookingUsecase(t, ctrl)

		req := validBookingRequest()
		req.ScheduledAt = "2026-09-10 14:00"

		if _, err := uc.CreateBooking(context.Background(), req); !errors.Is(err, ErrInvalidScheduledAt) {
			t.Fatalf("expected ErrInvalidScheduledAt, got %v", err)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBookingUsecase(t, ctrl)

		m.serviceRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(nil, nil)

		if _, err := uc.CreateBooking(context.Background(), validBookingRequest()); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("inactive service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBookingUsecase(t, ctrl)

		service := activeService()
		service.Active = false
		m.serviceRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(service, nil)

		if _, err := uc.CreateBooking(context.Background(), validBookingRequest()); !errors.Is(err, ErrServiceInactive) {
			t.Fatalf("expected ErrServiceInactive, got %v", err)
		}
	})

	t.Run("full workshop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBookingUsecase(t, ctrl)

		req := validBookingRequest()
		req.ServiceID = nil
		req.WorkshopID = uintPtr(2)

		m.workshopRepo.EXPECT().FindByID(gomock.Any(), uint(2)).Return(&entity.Workshop{
			ID:       2,
			Title:    "Mobility Basics",
			Price:    decimal.NewFromInt(80),
			MaxSeats: 10,
			Active:   true,
		}, nil)
		m.workshopRepo.EXPECT().CountConfirmedBookings(gomock.Any(), uint(2)).Return(int64(10), nil)

		if _, err := uc.CreateBooking(context.Background(), req); !errors.Is(err, ErrWorkshopFull) {
			t.Fatalf("expected ErrWorkshopFull, got %v", err)
		}
	})

	t.Run("blocked availability slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBookingUsecase(t, ctrl)

		req := validBookingRequest()
		req.AvailabilityID = uintPtr(5)

		m.serviceRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(activeService(), nil)
		m.availabilityRepo.EXPECT().FindByID(gomock.Any(), uint(5)).Return(&entity.Availability{ID: 5, IsBlocked: true}, nil)

		if _, err := uc.CreateBooking(context.Background(), req); !errors.Is(err, ErrSlotBlocked) {
			t.Fatalf("expected ErrSlotBlocked, got %v", err)
		}
	})

	t.Run("gateway failure keeps the pending rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBookingUsecase(t, ctrl)

		m.serviceRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(activeService(), nil)
		m.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ *gorm.DB, booking *entity.Booking) error {
				booking.ID = 3
				return nil
			})
		m.paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ *gorm.DB, payment *entity.Payment) error {
				payment.ID = 7
				return nil
			})
		m.gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(nil, errors.New("mp down"))
		// No SetProviderID call and no cleanup: the rows stay PENDING for a retry.

		if _, err := uc.CreateBooking(context.Background(), validBookingRequest()); !errors.Is(err, ErrCheckoutUnavailable) {
			t.Fatalf("expected ErrCheckoutUnavailable, got %v", err)
		}
	})
}

func TestBookingUsecase_GetOccupiedTimes(t *testing.T) {
	t.Run("formats occupied slots as HH:MM", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBookingUsecase(t, ctrl)

		dayStart := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		m.bookingRepo.EXPECT().
			FindOccupiedTimes(gomock.Any(), dayStart, dayStart.Add(24*time.Hour), uintPtr(1), nil).
			Return([]time.Time{
				time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC),
				time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC),
			}, nil)

		resp, err := uc.GetOccupiedTimes(context.Background(), "2026-09-10", uintPtr(1), nil)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if len(resp.OccupiedTimes) != 2 {
			t.Fatalf("expected 2 occupied times, got %d", len(resp.OccupiedTimes))
		}
		if resp.OccupiedTimes[0] != "14:00" {
			t.Fatalf("unexpected first slot %q", resp.OccupiedTimes[0])
		}
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newBookingUsecase(t, ctrl)

		if _, err := uc.GetOccupiedTimes(context.Background(), "10/09/2026", nil, nil); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}

func TestBookingUsecase_GetUpcoming(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newBookingUsecase(t, ctrl)

	m.bookingRepo.EXPECT().FindUpcoming(gomock.Any(), gomock.Any(), 20).Return([]entity.Booking{
		{ID: 3, UserName: "Ana", Status: entity.BookingStatusConfirmed, ScheduledAt: time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)},
	}, nil)

	resp, err := uc.GetUpcoming(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(resp) != 1 || resp[0].ID != 3 {
		t.Fatalf("unexpected upcoming bookings %+v", resp)
	}
}
