package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"go-trainer-booking/config"
	"go-trainer-booking/internal/delivery/dto"
	"go-trainer-booking/internal/domain/entity"
	"go-trainer-booking/internal/domain/gateway"
	mock_gateway "go-trainer-booking/internal/domain/gateway/mocks"
	mock_repository "go-trainer-booking/internal/domain/repository/mocks"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	paymentRepo      *mock_repository.MockPaymentRepository
	bookingRepo      *mock_repository.MockBookingRepository
	availabilityRepo *mock_repository.MockAvailabilityRepository
	leadRepo         *mock_repository.MockLeadRepository
	planRepo         *mock_repository.MockPlanRepository
	gateway          *mock_gateway.MockPaymentGateway
	mailer           *mock_gateway.MockMailer
}

func newPaymentUsecase(t *testing.T, ctrl *gomock.Controller) (PaymentUsecase, paymentMocks) {
	t.Helper()
	m := paymentMocks{
		paymentRepo:      mock_repository.NewMockPaymentRepository(ctrl),
		bookingRepo:      mock_repository.NewMockBookingRepository(ctrl),
		availabilityRepo: mock_repository.NewMockAvailabilityRepository(ctrl),
		leadRepo:         mock_repository.NewMockLeadRepository(ctrl),
		planRepo:         mock_repository.NewMockPlanRepository(ctrl),
		gateway:          mock_gateway.NewMockPaymentGateway(ctrl),
		mailer:           mock_gateway.NewMockMailer(ctrl),
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{}
	cfg.App.BackendBaseURL = "http://localhost:4000"
	cfg.App.FrontendBaseURL = "http://localhost:3000"
	cfg.MercadoPago.WebhookToken = "hook-token"

	uc := NewPaymentUsecase(
		newTestDB(t), log, cfg,
		m.paymentRepo, m.bookingRepo, m.availabilityRepo, m.leadRepo, m.planRepo,
		m.gateway, m.mailer,
	)
	return uc, m
}

func pendingPayment() *entity.Payment {
	return &entity.Payment{
		ID:         7,
		BookingID:  3,
		Amount:     decimal.NewFromInt(150),
		Status:     entity.PaymentStatusPending,
		ProviderID: "pref-abc",
		Booking: &entity.Booking{
			ID:             3,
			UserName:       "Ana",
			UserEmail:      "ana@example.com",
			Status:         entity.BookingStatusPending,
			ServiceID:      uintPtr(1),
			AvailabilityID: uintPtr(5),
		},
	}
}

func approvedInfo() *gateway.PaymentInfo {
	return &gateway.PaymentInfo{
		ID:     "123",
		Status: "approved",
		Method: "pix",
		Raw:    json.RawMessage(`{"id":123,"status":"approved"}`),
	}
}

func TestPaymentUsecase_ProcessWebhook_Approved(t *testing.T) {
	t.Run("full confirmation flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUsecase(t, ctrl)

		m.gateway.EXPECT().GetPayment(gomock.Any(), 123).Return(approvedInfo(), nil)
		m.paymentRepo.EXPECT().FindByProviderID(gomock.Any(), "123").Return(pendingPayment(), nil)
		m.paymentRepo.EXPECT().Approve(gomock.Any(), uint(7), "pix", gomock.Any()).Return(int64(1), nil)
		m.bookingRepo.EXPECT().Confirm(gomock.Any(), uint(3)).Return(int64(1), nil)
		m.availabilityRepo.EXPECT().Block(gomock.Any(), uint(5)).Return(int64(1), nil)
		m.paymentRepo.EXPECT().SetProviderID(gomock.Any(), uint(7), "123").Return(nil)
		m.mailer.EXPECT().Send(gomock.Any(), "ana@example.com", gomock.Any(), gomock.Any()).Return(nil).Times(1)

		if err := uc.ProcessWebhook(context.Background(), 123); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("booking without slot skips blocking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUsecase(t, ctrl)

		payment := pendingPayment()
		payment.Booking.AvailabilityID = nil

		m.gateway.EXPECT().GetPayment(gomock.Any(), 123).Return(approvedInfo(), nil)
		m.paymentRepo.EXPECT().FindByProviderID(gomock.Any(), "123").Return(payment, nil)
		m.paymentRepo.EXPECT().Approve(gomock.Any(), uint(7), "pix", gomock.Any()).Return(int64(1), nil)
		m.bookingRepo.EXPECT().Confirm(gomock.Any(), uint(3)).Return(int64(1), nil)
		m.paymentRepo.EXPECT().SetProviderID(gomock.Any(), uint(7), "123").Return(nil)
		m.mailer.EXPECT().Send(gomock.Any(), "ana@example.com", gomock.Any(), gomock.Any()).Return(nil)

		if err := uc.ProcessWebhook(context.Background(), 123); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("duplicate delivery loses the conditional update and stops", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUsecase(t, ctrl)

		m.gateway.EXPECT().GetPayment(gomock.Any(), 123).Return(approvedInfo(), nil)
		m.paymentRepo.EXPECT().FindByProviderID(gomock.Any(), "123").Return(pendingPayment(), nil)
		m.paymentRepo.EXPECT().Approve(gomock.Any(), uint(7), "pix", gomock.Any()).Return(int64(0), nil)
		// No Confirm, no Block, no email.

		if err := uc.ProcessWebhook(context.Background(), 123); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("already approved payment short-circuits before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUsecase(t, ctrl)

		payment := pendingPayment()
		payment.Status = entity.PaymentStatusApproved

		m.gateway.EXPECT().GetPayment(gomock.Any(), 123).Return(approvedInfo(), nil)
		m.paymentRepo.EXPECT().FindByProviderID(gomock.Any(), "123").Return(payment, nil)

		if err := uc.ProcessWebhook(context.Background(), 123); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("resolves through metadata when provider id is unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUsecase(t, ctrl)

		info := approvedInfo()
		info.Metadata = map[string]any{"payment_id": float64(7)}

		m.gateway.EXPECT().GetPayment(gomock.Any(), 123).Return(info, nil)
		m.paymentRepo.EXPECT().FindByProviderID(gomock.Any(), "123").Return(nil, nil)
		m.paymentRepo.EXPECT().FindByID(gomock.Any(), uint(7)).Return(pendingPayment(), nil)
		m.paymentRepo.EXPECT().Approve(gomock.Any(), uint(7), "pix", gomock.Any()).Return(int64(1), nil)
		m.bookingRepo.EXPECT().Confirm(gomock.Any(), uint(3)).Return(int64(1), nil)
		m.availabilityRepo.EXPECT().Block(gomock.Any(), uint(5)).Return(int64(1), nil)
		m.paymentRepo.EXPECT().SetProviderID(gomock.Any(), uint(7), "123").Return(nil)
		m.mailer.EXPECT().Send(gomock.Any(), "ana@example.com", gomock.Any(), gomock.Any()).Return(nil)

		if err := uc.ProcessWebhook(context.Background(), 123); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("mailer failure does not fail the webhook", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUsecase(t, ctrl)

		m.gateway.EXPECT().GetPayment(gomock.Any(), 123).Return(approvedInfo(), nil)
		m.paymentRepo.EXPECT().FindByProviderID(gomock.Any(), "123").Return(pendingPayment(), nil)
		m.paymentRepo.EXPECT().Approve(gomock.Any(), uint(7), "pix", gomock.Any()).Return(int64(1), nil)
		m.bookingRepo.EXPECT().Confirm(gomock.Any(), uint(3)).Return(int64(1), nil)
		m.availabilityRepo.EXPECT().Block(gomock.Any(), uint(5)).Return(int64(1), nil)
		m.paymentRepo.EXPECT().SetProviderID(gomock.Any(), uint(7), "123").Return(nil)
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		if err := uc.ProcessWebhook(context.Background(), 123); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})
}

func TestPaymentUsecase_ProcessWebhook_Rejected(t *testing.T) {
	t.Run("payment rejected, booking left pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUsecase(t, ctrl)

		info := approvedInfo()
		info.Status = "rejected"
		info.Method = "credit_card"

		m.gateway.EXPECT().GetPayment(gomock.Any(), 123).Return(info, nil)
		m.paymentRepo.EXPECT().FindByProviderID(gomock.Any(), "123").Return(pendingPayment(), nil)
		m.paymentRepo.EXPECT().Reject(gomock.Any(), uint(7), "credit_card", gomock.Any()).Return(int64(1), nil)
		m.mailer.EXPECT().Send(gomock.Any(), "ana@example.com", gomock.Any(), gomock.Any()).Return(nil)
		// No Confirm and no Block: the booking stays PENDING for a retry.

		if err := uc.ProcessWebhook(context.Background(), 123); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("repeated rejection sends no second email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUsecase(t, ctrl)

		info := approvedInfo()
		info.Status = "rejected"

		m.gateway.EXPECT().GetPayment(gomock.Any(), 123).Return(info, nil)
		m.paymentRepo.EXPECT().FindByProviderID(gomock.Any(), "123").Return(pendingPayment(), nil)
		m.paymentRepo.EXPECT().Reject(gomock.Any(), uint(7), "pix", gomock.Any()).Return(int64(0), nil)

		if err := uc.ProcessWebhook(context.Background(), 123); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})
}

func TestPaymentUsecase_ProcessWebhook_Edges(t *testing.T) {
	t.Run("gateway fetch failure propagates for a retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUsecase(t, ctrl)

		m.gateway.EXPECT().GetPayment(gomock.Any(), 123).Return(nil, errors.New("gateway down"))

		if err := uc.ProcessWebhook(context.Background(), 123); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("unresolvable payment is consumed as a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUsecase(t, ctrl)

		m.gateway.EXPECT().GetPayment(gomock.Any(), 123).Return(approvedInfo(), nil)
		m.paymentRepo.EXPECT().FindByProviderID(gomock.Any(), "123").Return(nil, nil)

		if err := uc.ProcessWebhook(context.Background(), 123); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("unknown status is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUsecase(t, ctrl)

		info := approvedInfo()
		info.Status = "in_process"

		m.gateway.EXPECT().GetPayment(gomock.Any(), 123).Return(info, nil)
		m.paymentRepo.EXPECT().FindByProviderID(gomock.Any(), "123").Return(pendingPayment(), nil)

		if err := uc.ProcessWebhook(context.Background(), 123); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})
}

func TestPaymentUsecase_ProcessWebhook_ConsultingPlan(t *testing.T) {
	leadInfo := func(status string) *gateway.PaymentInfo {
		return &gateway.PaymentInfo{
			ID:     "555",
			Status: status,
			Metadata: map[string]any{
				"type":    "consulting_plan",
				"lead_id": float64(9),
				"plan_id": "starter",
			},
			Raw: json.RawMessage(`{"id":555}`),
		}
	}

	t.Run("approved plan purchase marks the lead once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUsecase(t, ctrl)

		m.gateway.EXPECT().GetPayment(gomock.Any(), 555).Return(leadInfo("approved"), nil)
		m.leadRepo.EXPECT().MarkPaid(gomock.Any(), uint(9)).Return(int64(1), nil)
		m.leadRepo.EXPECT().FindByID(gomock.Any(), uint(9)).Return(&entity.Lead{ID: 9, Name: "Bia", Email: "bia@example.com"}, nil)
		m.mailer.EXPECT().Send(gomock.Any(), "bia@example.com", gomock.Any(), gomock.Any()).Return(nil).Times(1)

		if err := uc.ProcessWebhook(context.Background(), 555); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("duplicate plan delivery sends no second email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUsecase(t, ctrl)

		m.gateway.EXPECT().GetPayment(gomock.Any(), 555).Return(leadInfo("approved"), nil)
		m.leadRepo.EXPECT().MarkPaid(gomock.Any(), uint(9)).Return(int64(0), nil)

		if err := uc.ProcessWebhook(context.Background(), 555); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("plan tag without a lead id is consumed as a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUsecase(t, ctrl)

		info := leadInfo("approved")
		delete(info.Metadata, "lead_id")

		m.gateway.EXPECT().GetPayment(gomock.Any(), 555).Return(info, nil)

		if err := uc.ProcessWebhook(context.Background(), 555); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("non approved plan payment is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUsecase(t, ctrl)

		m.gateway.EXPECT().GetPayment(gomock.Any(), 555).Return(leadInfo("rejected"), nil)

		if err := uc.ProcessWebhook(context.Background(), 555); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})
}

func TestPaymentUsecase_CreatePlanPreference(t *testing.T) {
	t.Run("uses the stored plan price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUsecase(t, ctrl)

		plan := &entity.Plan{ID: 1, Slug: "starter", Name: "Starter", Price: decimal.NewFromInt(299), Active: true}
		lead := &entity.Lead{ID: 9, Name: "Bia", Email: "bia@example.com"}

		m.planRepo.EXPECT().FindBySlug(gomock.Any(), "starter").Return(plan, nil)
		m.leadRepo.EXPECT().FindByID(gomock.Any(), uint(9)).Return(lead, nil)
		m.gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *gateway.PreferenceRequest) (*gateway.Preference, error) {
				if len(req.Items) != 1 || req.Items[0].UnitPrice != 299 {
					t.Fatalf("expected unit price 299, got %+v", req.Items)
				}
				if req.Metadata["type"] != "consulting_plan" || req.Metadata["leadId"] != uint(9) {
					t.Fatalf("expected consulting plan metadata, got %+v", req.Metadata)
				}
				return &gateway.Preference{ID: "pref-9", InitPoint: "https://mp/init", SandboxInitPoint: "https://mp/sandbox"}, nil
			})

		resp, err := uc.CreatePlanPreference(context.Background(), &dto.CreatePlanPreferenceRequest{PlanID: "starter", LeadID: 9})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if resp.InitPoint != "https://mp/init" {
			t.Fatalf("unexpected init point %q", resp.InitPoint)
		}
	})

	t.Run("unknown plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUsecase(t, ctrl)

		m.planRepo.EXPECT().FindBySlug(gomock.Any(), "ghost").Return(nil, nil)

		_, err := uc.CreatePlanPreference(context.Background(), &dto.CreatePlanPreferenceRequest{PlanID: "ghost", LeadID: 9})
		if !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
	})

	t.Run("inactive plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUsecase(t, ctrl)

		m.planRepo.EXPECT().FindBySlug(gomock.Any(), "starter").Return(&entity.Plan{Slug: "starter", Active: false}, nil)

		_, err := uc.CreatePlanPreference(context.Background(), &dto.CreatePlanPreferenceRequest{PlanID: "starter", LeadID: 9})
		if !errors.Is(err, ErrPlanInactive) {
			t.Fatalf("expected ErrPlanInactive, got %v", err)
		}
	})
}

func TestPaymentUsecase_ForceApprove(t *testing.T) {
	t.Run("applies the full approval transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUsecase(t, ctrl)

		m.paymentRepo.EXPECT().FindByID(gomock.Any(), uint(7)).Return(pendingPayment(), nil)
		m.paymentRepo.EXPECT().Approve(gomock.Any(), uint(7), "forced", gomock.Any()).Return(int64(1), nil)
		m.bookingRepo.EXPECT().Confirm(gomock.Any(), uint(3)).Return(int64(1), nil)
		m.availabilityRepo.EXPECT().Block(gomock.Any(), uint(5)).Return(int64(1), nil)
		m.mailer.EXPECT().Send(gomock.Any(), "ana@example.com", gomock.Any(), gomock.Any()).Return(nil)

		if err := uc.ForceApprove(context.Background(), 7); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("unknown payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUsecase(t, ctrl)

		m.paymentRepo.EXPECT().FindByID(gomock.Any(), uint(404)).Return(nil, nil)

		if err := uc.ForceApprove(context.Background(), 404); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}
