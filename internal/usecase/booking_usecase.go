package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go-trainer-booking/config"
	"go-trainer-booking/internal/converter"
	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/domain/entity"
	"go-trainer-booking/internal/domain/gateway"
	"go-trainer-booking/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBookingTarget       = errors.New("exactly one of serviceId or workshopId must be provided")
	ErrInvalidScheduledAt  = errors.New("scheduledAt must be a valid RFC3339 timestamp")
	ErrInvalidDate         = errors.New("date must be in YYYY-MM-DD format")
	ErrServiceNotFound     = errors.New("service not found")
	ErrServiceInactive     = errors.New("service is not available for booking")
	ErrWorkshopNotFound    = errors.New("workshop not found")
	ErrWorkshopInactive    = errors.New("workshop is not open for registration")
	ErrWorkshopFull        = errors.New("workshop has no remaining seats")
	ErrSlotNotFound        = errors.New("availability slot not found")
	ErrSlotBlocked         = errors.New("availability slot is no longer open")
	ErrCheckoutUnavailable = errors.New("failed to start checkout, please try again")
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error)
	GetOccupiedTimes(ctx context.Context, date string, serviceID, workshopID *uint) (*dto.OccupiedTimesResponse, error)
	GetUpcoming(ctx context.Context) ([]dto.UpcomingBookingResponse, error)
}

type bookingUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	cfg              *config.Config
	bookingRepo      repository.BookingRepository
	paymentRepo      repository.PaymentRepository
	availabilityRepo repository.AvailabilityRepository
	serviceRepo      repository.ServiceRepository
	workshopRepo     repository.WorkshopRepository
	paymentGateway   gateway.PaymentGateway
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg *config.Config,
	bookingRepo repository.BookingRepository,
	paymentRepo repository.PaymentRepository,
	availabilityRepo repository.AvailabilityRepository,
	serviceRepo repository.ServiceRepository,
	workshopRepo repository.WorkshopRepository,
	paymentGateway gateway.PaymentGateway,
) BookingUsecase {
	return &bookingUsecase{
		db:               db,
		log:              log,
		cfg:              cfg,
		bookingRepo:      bookingRepo,
		paymentRepo:      paymentRepo,
		availabilityRepo: availabilityRepo,
		serviceRepo:      serviceRepo,
		workshopRepo:     workshopRepo,
		paymentGateway:   paymentGateway,
	}
}

// CreateBooking creates a PENDING booking plus its PENDING payment and opens
// a hosted checkout session for it.
//
// Flow:
// 1. Validate the target: exactly one of serviceId/workshopId
// 2. Resolve price and title from the server-side catalog (never from the client)
// 3. Insert booking + payment in one transaction
// 4. Create the gateway preference carrying {bookingId, paymentId} metadata
// 5. Store the preference id on the payment for later reconciliation
//
// If step 4 fails the PENDING rows are kept; they are harmless and the
// customer can simply retry.
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
	if (req.ServiceID == nil) == (req.WorkshopID == nil) {
		return nil, ErrBookingTarget
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, ErrInvalidScheduledAt
	}

	var (
		price decimal.Decimal
		title string
	)
	switch {
	case req.ServiceID != nil:
		service, err := u.serviceRepo.FindByID(ctx, *req.ServiceID)
		if err != nil {
			u.log.Warnf("Failed to find service %d: %+v", *req.ServiceID, err)
			return nil, err
		}
		if service == nil {
			return nil, ErrServiceNotFound
		}
		if !service.Active {
			return nil, ErrServiceInactive
		}
		price = service.BasePrice
		title = service.Name

	case req.WorkshopID != nil:
		workshop, err := u.workshopRepo.FindByID(ctx, *req.WorkshopID)
		if err != nil {
			u.log.Warnf("Failed to find workshop %d: %+v", *req.WorkshopID, err)
			return nil, err
		}
		if workshop == nil {
			return nil, ErrWorkshopNotFound
		}
		if !workshop.Active {
			return nil, ErrWorkshopInactive
		}
		confirmed, err := u.workshopRepo.CountConfirmedBookings(ctx, workshop.ID)
		if err != nil {
			return nil, err
		}
		if confirmed >= int64(workshop.MaxSeats) {
			return nil, ErrWorkshopFull
		}
		price = workshop.Price
		title = workshop.Title
	}

	if req.AvailabilityID != nil {
		slot, err := u.availabilityRepo.FindByID(u.db.WithContext(ctx), *req.AvailabilityID)
		if err != nil {
			return nil, err
		}
		if slot == nil {
			return nil, ErrSlotNotFound
		}
		if slot.IsBlocked {
			return nil, ErrSlotBlocked
		}
	}

	booking := &entity.Booking{
		UserName:       req.Customer.Name,
		UserEmail:      req.Customer.Email,
		UserPhone:      req.Customer.Phone,
		Gender:         req.Customer.Gender,
		Notes:          req.Notes,
		CustomField:    req.CustomField,
		Status:         entity.BookingStatusPending,
		ScheduledAt:    scheduledAt,
		ServiceID:      req.ServiceID,
		WorkshopID:     req.WorkshopID,
		AvailabilityID: req.AvailabilityID,
	}
	payment := &entity.Payment{
		Amount: price,
		Status: entity.PaymentStatusPending,
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	if err := u.bookingRepo.Create(tx, booking); err != nil {
		tx.Rollback()
		u.log.Errorf("Failed to insert booking: %+v", err)
		return nil, err
	}
	payment.BookingID = booking.ID
	if err := u.paymentRepo.Create(tx, payment); err != nil {
		tx.Rollback()
		u.log.Errorf("Failed to insert payment for booking %d: %+v", booking.ID, err)
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	preference, err := u.paymentGateway.CreatePreference(ctx, &gateway.PreferenceRequest{
		Items: []gateway.PreferenceItem{
			{
				ID:         strconv.FormatUint(uint64(booking.ID), 10),
				Title:      title,
				Quantity:   1,
				UnitPrice:  price.InexactFloat64(),
				CurrencyID: "BRL",
			},
		},
		Payer: &gateway.PreferencePayer{
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
		},
		BackURLs: gateway.BackURLs{
			Success: u.cfg.App.FrontendBaseURL + "/booking/success",
			Pending: u.cfg.App.FrontendBaseURL + "/booking/pending",
			Failure: u.cfg.App.FrontendBaseURL + "/booking/failure",
		},
		NotificationURL: u.webhookURL(),
		Metadata: map[string]any{
			"bookingId": booking.ID,
			"paymentId": payment.ID,
		},
	})
	if err != nil {
		u.log.Errorf("Failed to create checkout preference for booking %d: %+v", booking.ID, err)
		return nil, ErrCheckoutUnavailable
	}

	if err := u.paymentRepo.SetProviderID(u.db.WithContext(ctx), payment.ID, preference.ID); err != nil {
		u.log.Warnf("Failed to store preference id on payment %d: %+v", payment.ID, err)
	}

	u.log.Infof("Booking created: id=%d, payment=%d, amount=%s", booking.ID, payment.ID, price.String())
	return &dto.CreateBookingResponse{
		BookingID:        booking.ID,
		PaymentID:        payment.ID,
		InitPoint:        preference.InitPoint,
		SandboxInitPoint: preference.SandboxInitPoint,
	}, nil
}

// GetOccupiedTimes lists the taken time-of-day slots on a calendar day so
// the booking form can grey them out.
func (u *bookingUsecase) GetOccupiedTimes(ctx context.Context, date string, serviceID, workshopID *uint) (*dto.OccupiedTimesResponse, error) {
	dayStart, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	dayEnd := dayStart.Add(24 * time.Hour)

	times, err := u.bookingRepo.FindOccupiedTimes(u.db.WithContext(ctx), dayStart, dayEnd, serviceID, workshopID)
	if err != nil {
		u.log.Warnf("Failed to list occupied times for %s: %+v", date, err)
		return nil, err
	}

	occupied := make([]string, 0, len(times))
	for _, t := range times {
		occupied = append(occupied, t.UTC().Format("15:04"))
	}
	return &dto.OccupiedTimesResponse{OccupiedTimes: occupied}, nil
}

// GetUpcoming returns the next bookings for the admin dashboard.
func (u *bookingUsecase) GetUpcoming(ctx context.Context) ([]dto.UpcomingBookingResponse, error) {
	bookings, err := u.bookingRepo.FindUpcoming(u.db.WithContext(ctx), time.Now(), 20)
	if err != nil {
		u.log.Warnf("Failed to list upcoming bookings: %+v", err)
		return nil, err
	}
	return converter.BookingsToUpcomingResponses(bookings), nil
}

func (u *bookingUsecase) webhookURL() string {
	return fmt.Sprintf("%s/api/payments/webhook?token=%s", u.cfg.App.BackendBaseURL, u.cfg.MercadoPago.WebhookToken)
}
