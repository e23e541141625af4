package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go-trainer-booking/config"
	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/domain/entity"
	"go-trainer-booking/internal/domain/gateway"
	"go-trainer-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrPlanNotFound    = errors.New("plan not found")
	ErrPlanInactive    = errors.New("plan is not available")
	ErrLeadNotFound    = errors.New("lead not found")
)

// consultingPlanTag marks preferences created by the plan funnel so the
// webhook can tell them apart from booking payments.
const consultingPlanTag = "consulting_plan"

type PaymentUsecase interface {
	// ProcessWebhook reconciles a gateway notification. Only the payment id
	// is taken from the notification; everything else is re-fetched from
	// the gateway. Returning nil means the notification was consumed
	// (including the no-op cases); an error means the delivery should be
	// retried by the provider.
	ProcessWebhook(ctx context.Context, providerPaymentID int) error
	CreatePlanPreference(ctx context.Context, req *dto.CreatePlanPreferenceRequest) (*dto.PlanPreferenceResponse, error)
	// ForceApprove applies the approval transition without a gateway
	// round-trip. Development helper only.
	ForceApprove(ctx context.Context, paymentID uint) error
}

type paymentUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	cfg              *config.Config
	paymentRepo      repository.PaymentRepository
	bookingRepo      repository.BookingRepository
	availabilityRepo repository.AvailabilityRepository
	leadRepo         repository.LeadRepository
	planRepo         repository.PlanRepository
	paymentGateway   gateway.PaymentGateway
	mailer           gateway.Mailer
}

func NewPaymentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg *config.Config,
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	availabilityRepo repository.AvailabilityRepository,
	leadRepo repository.LeadRepository,
	planRepo repository.PlanRepository,
	paymentGateway gateway.PaymentGateway,
	mailer gateway.Mailer,
) PaymentUsecase {
	return &paymentUsecase{
		db:               db,
		log:              log,
		cfg:              cfg,
		paymentRepo:      paymentRepo,
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		leadRepo:         leadRepo,
		planRepo:         planRepo,
		paymentGateway:   paymentGateway,
		mailer:           mailer,
	}
}

// ProcessWebhook is the reconciliation core.
//
// Flow:
// 1. Re-fetch the payment from the gateway; the notification body is never trusted
// 2. Consulting-plan purchases (leadId in metadata) flip the lead flag and return
// 3. Resolve the local payment by provider id, falling back to metadata
// 4. approved  -> payment APPROVED + booking CONFIRMED + slot blocked, one tx
//    rejected  -> payment REJECTED, booking stays PENDING
//    otherwise -> no-op
//
// Every transition is a conditional update checked by affected rows, so
// duplicate deliveries settle on the same final state and send no second email.
func (u *paymentUsecase) ProcessWebhook(ctx context.Context, providerPaymentID int) error {
	info, err := u.paymentGateway.GetPayment(ctx, providerPaymentID)
	if err != nil {
		u.log.Errorf("Failed to fetch payment %d from gateway: %+v", providerPaymentID, err)
		return err
	}

	if metadataString(info.Metadata, "type") == consultingPlanTag {
		leadID, ok := metadataUint(info.Metadata, "leadId", "lead_id")
		if !ok {
			u.log.Warnf("Consulting plan webhook without a lead id, provider id %s, ignoring", info.ID)
			return nil
		}
		return u.processLeadPayment(ctx, leadID, info)
	}

	payment, err := u.resolvePayment(ctx, info)
	if err != nil {
		return err
	}
	if payment == nil {
		u.log.Warnf("Webhook for unknown payment, provider id %s, ignoring", info.ID)
		return nil
	}
	if payment.IsApproved() {
		u.log.Infof("Payment %d already approved, skipping delivery", payment.ID)
		return nil
	}

	switch info.Status {
	case gateway.PaymentStatusApproved:
		return u.applyApproval(ctx, payment, info.Method, datatypes.JSON(info.Raw), info.ID)

	case gateway.PaymentStatusRejected:
		rows, err := u.paymentRepo.Reject(u.db.WithContext(ctx), payment.ID, info.Method, datatypes.JSON(info.Raw))
		if err != nil {
			u.log.Errorf("Failed to reject payment %d: %+v", payment.ID, err)
			return err
		}
		if rows == 0 {
			return nil
		}
		u.log.Infof("Payment rejected: id=%d, provider=%s", payment.ID, info.ID)
		u.sendRejectionEmail(ctx, payment)
		return nil

	default:
		u.log.Infof("Payment %d in status %q, nothing to do", payment.ID, info.Status)
		return nil
	}
}

// processLeadPayment handles the consulting-plan funnel branch. Leads have no
// booking or payment rows; an approved purchase just flips has_paid once.
func (u *paymentUsecase) processLeadPayment(ctx context.Context, leadID uint, info *gateway.PaymentInfo) error {
	if info.Status != gateway.PaymentStatusApproved {
		u.log.Infof("Plan payment for lead %d in status %q, nothing to do", leadID, info.Status)
		return nil
	}

	rows, err := u.leadRepo.MarkPaid(ctx, leadID)
	if err != nil {
		u.log.Errorf("Failed to mark lead %d as paid: %+v", leadID, err)
		return err
	}
	if rows == 0 {
		u.log.Infof("Lead %d already marked as paid, skipping delivery", leadID)
		return nil
	}

	u.log.Infof("Consulting plan purchase approved: lead=%d, provider=%s", leadID, info.ID)

	lead, err := u.leadRepo.FindByID(ctx, leadID)
	if err != nil || lead == nil {
		u.log.Warnf("Failed to load lead %d for confirmation email: %+v", leadID, err)
		return nil
	}
	if err := u.mailer.Send(ctx, lead.Email, "Consulting plan confirmed",
		fmt.Sprintf("<p>Hi %s,</p><p>Your consulting plan purchase was approved. Welcome aboard!</p>", lead.Name)); err != nil {
		u.log.Warnf("Failed to send plan confirmation email to %s: %+v", lead.Email, err)
	}
	return nil
}

// resolvePayment matches the gateway payment back to a local row. The
// preference id is stored as provider id at checkout time and replaced with
// the real payment id on the first delivery, so later deliveries hit the
// direct lookup and earlier ones fall back to the metadata.
func (u *paymentUsecase) resolvePayment(ctx context.Context, info *gateway.PaymentInfo) (*entity.Payment, error) {
	payment, err := u.paymentRepo.FindByProviderID(u.db.WithContext(ctx), info.ID)
	if err != nil {
		return nil, err
	}
	if payment != nil {
		return payment, nil
	}

	if paymentID, ok := metadataUint(info.Metadata, "paymentId", "payment_id"); ok {
		return u.paymentRepo.FindByID(u.db.WithContext(ctx), paymentID)
	}
	return nil, nil
}

// applyApproval runs the confirmation transaction: payment approved, booking
// confirmed, slot blocked. The conditional payment update is the idempotence
// gate; losing it means another delivery already completed the whole block.
func (u *paymentUsecase) applyApproval(ctx context.Context, payment *entity.Payment, method string, raw datatypes.JSON, providerID string) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	rows, err := u.paymentRepo.Approve(tx, payment.ID, method, raw)
	if err != nil {
		tx.Rollback()
		u.log.Errorf("Failed to approve payment %d: %+v", payment.ID, err)
		return err
	}
	if rows == 0 {
		tx.Rollback()
		u.log.Infof("Payment %d approval already applied, skipping delivery", payment.ID)
		return nil
	}

	if _, err := u.bookingRepo.Confirm(tx, payment.BookingID); err != nil {
		tx.Rollback()
		u.log.Errorf("Failed to confirm booking %d: %+v", payment.BookingID, err)
		return err
	}

	booking := payment.Booking
	if booking == nil {
		booking, err = u.bookingRepo.FindByID(tx, payment.BookingID)
		if err != nil || booking == nil {
			tx.Rollback()
			u.log.Errorf("Failed to load booking %d during approval: %+v", payment.BookingID, err)
			return err
		}
	}
	if booking.AvailabilityID != nil {
		if _, err := u.availabilityRepo.Block(tx, *booking.AvailabilityID); err != nil {
			tx.Rollback()
			u.log.Errorf("Failed to block slot %d: %+v", *booking.AvailabilityID, err)
			return err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	if providerID != "" && providerID != payment.ProviderID {
		if err := u.paymentRepo.SetProviderID(u.db.WithContext(ctx), payment.ID, providerID); err != nil {
			u.log.Warnf("Failed to update provider id on payment %d: %+v", payment.ID, err)
		}
	}

	u.log.Infof("Payment approved: id=%d, booking=%d, provider=%s", payment.ID, payment.BookingID, providerID)
	u.sendConfirmationEmail(ctx, booking)
	return nil
}

// CreatePlanPreference opens a hosted checkout for a consulting plan. Price
// always comes from the plans table, never from the client.
func (u *paymentUsecase) CreatePlanPreference(ctx context.Context, req *dto.CreatePlanPreferenceRequest) (*dto.PlanPreferenceResponse, error) {
	plan, err := u.planRepo.FindBySlug(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	if !plan.Active {
		return nil, ErrPlanInactive
	}

	lead, err := u.leadRepo.FindByID(ctx, req.LeadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}

	preference, err := u.paymentGateway.CreatePreference(ctx, &gateway.PreferenceRequest{
		Items: []gateway.PreferenceItem{
			{
				ID:         plan.Slug,
				Title:      plan.Name,
				Quantity:   1,
				UnitPrice:  plan.Price.InexactFloat64(),
				CurrencyID: "BRL",
			},
		},
		Payer: &gateway.PreferencePayer{
			Name:  lead.Name,
			Email: lead.Email,
		},
		BackURLs: gateway.BackURLs{
			Success: u.cfg.App.FrontendBaseURL + "/plans/success",
			Pending: u.cfg.App.FrontendBaseURL + "/plans/pending",
			Failure: u.cfg.App.FrontendBaseURL + "/plans/failure",
		},
		NotificationURL: fmt.Sprintf("%s/api/payments/webhook?token=%s", u.cfg.App.BackendBaseURL, u.cfg.MercadoPago.WebhookToken),
		Metadata: map[string]any{
			"type":   consultingPlanTag,
			"leadId": lead.ID,
			"planId": plan.Slug,
		},
	})
	if err != nil {
		u.log.Errorf("Failed to create plan preference for lead %d: %+v", lead.ID, err)
		return nil, ErrCheckoutUnavailable
	}

	return &dto.PlanPreferenceResponse{
		InitPoint:        preference.InitPoint,
		SandboxInitPoint: preference.SandboxInitPoint,
	}, nil
}

func (u *paymentUsecase) ForceApprove(ctx context.Context, paymentID uint) error {
	payment, err := u.paymentRepo.FindByID(u.db.WithContext(ctx), paymentID)
	if err != nil {
		return err
	}
	if payment == nil {
		return ErrPaymentNotFound
	}
	return u.applyApproval(ctx, payment, "forced", datatypes.JSON(`{"forced":true}`), "")
}

func (u *paymentUsecase) sendConfirmationEmail(ctx context.Context, booking *entity.Booking) {
	if booking == nil {
		return
	}
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your payment was approved and your booking for %s is confirmed. See you there!</p>",
		booking.UserName, booking.ScheduledAt.Format("02 Jan 2006 15:04"),
	)
	if err := u.mailer.Send(ctx, booking.UserEmail, "Booking confirmed", body); err != nil {
		u.log.Warnf("Failed to send confirmation email to %s: %+v", booking.UserEmail, err)
	}
}

func (u *paymentUsecase) sendRejectionEmail(ctx context.Context, payment *entity.Payment) {
	booking := payment.Booking
	if booking == nil {
		return
	}
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your payment was not approved. Your booking is still held; you can try paying again.</p>",
		booking.UserName,
	)
	if err := u.mailer.Send(ctx, booking.UserEmail, "Payment not approved", body); err != nil {
		u.log.Warnf("Failed to send rejection email to %s: %+v", booking.UserEmail, err)
	}
}

func metadataString(md map[string]any, key string) string {
	if v, ok := md[key].(string); ok {
		return v
	}
	return ""
}

// metadataUint reads a numeric id out of gateway metadata, which arrives as
// float64 from JSON or as a string depending on how the preference was created.
func metadataUint(md map[string]any, keys ...string) (uint, bool) {
	for _, key := range keys {
		v, ok := md[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			if n > 0 {
				return uint(n), true
			}
		case int:
			if n > 0 {
				return uint(n), true
			}
		case string:
			if parsed, err := strconv.ParseUint(n, 10, 64); err == nil && parsed > 0 {
				return uint(parsed), true
			}
		}
	}
	return 0, false
}
