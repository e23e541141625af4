package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-trainer-booking/config"
	"go-trainer-booking/internal/delivery/dto"
)

// stubPaymentUsecase records the webhook calls the handler lets through.
type stubPaymentUsecase struct {
	processedIDs []int
	processErr   error
}

func (s *stubPaymentUsecase) ProcessWebhook(ctx context.Context, providerPaymentID int) error {
	s.processedIDs = append(s.processedIDs, providerPaymentID)
	return s.processErr
}

func (s *stubPaymentUsecase) CreatePlanPreference(ctx context.Context, req *dto.CreatePlanPreferenceRequest) (*dto.PlanPreferenceResponse, error) {
	return nil, errors.New("not implemented")
}

func (s *stubPaymentUsecase) ForceApprove(ctx context.Context, paymentID uint) error {
	return errors.New("not implemented")
}

func webhookConfig(token string) *config.Config {
	cfg := &config.Config{}
	cfg.MercadoPago.WebhookToken = token
	return cfg
}

func postWebhook(h *PaymentHandler, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Webhook(rec, req)
	return rec
}

func TestPaymentHandler_Webhook(t *testing.T) {
	validBody := `{"action":"payment.updated","type":"payment","data":{"id":123}}`

	t.Run("accepts a valid notification", func(t *testing.T) {
		stub := &stubPaymentUsecase{}
		h := NewPaymentHandler(stub, nil, webhookConfig("secret"))

		rec := postWebhook(h, "/api/payments/webhook?token=secret", validBody)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var ack dto.WebhookAck
		if err := json.Unmarshal(rec.Body.Bytes(), &ack); err != nil || !ack.Received {
			t.Fatalf("expected received ack, got %s", rec.Body.String())
		}
		if len(stub.processedIDs) != 1 || stub.processedIDs[0] != 123 {
			t.Fatalf("expected payment 123 processed, got %v", stub.processedIDs)
		}
	})

	t.Run("accepts the token from the header", func(t *testing.T) {
		stub := &stubPaymentUsecase{}
		h := NewPaymentHandler(stub, nil, webhookConfig("secret"))

		req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", strings.NewReader(validBody))
		req.Header.Set("x-webhook-token", "secret")
		rec := httptest.NewRecorder()
		h.Webhook(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("accepts a numeric string data.id", func(t *testing.T) {
		stub := &stubPaymentUsecase{}
		h := NewPaymentHandler(stub, nil, webhookConfig("secret"))

		rec := postWebhook(h, "/api/payments/webhook?token=secret",
			`{"type":"payment","data":{"id":"456"}}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if len(stub.processedIDs) != 1 || stub.processedIDs[0] != 456 {
			t.Fatalf("expected payment 456 processed, got %v", stub.processedIDs)
		}
	})

	t.Run("rejects a wrong token", func(t *testing.T) {
		stub := &stubPaymentUsecase{}
		h := NewPaymentHandler(stub, nil, webhookConfig("secret"))

		rec := postWebhook(h, "/api/payments/webhook?token=wrong", validBody)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if len(stub.processedIDs) != 0 {
			t.Fatalf("expected no processing, got %v", stub.processedIDs)
		}
	})

	t.Run("rejects a missing token", func(t *testing.T) {
		h := NewPaymentHandler(&stubPaymentUsecase{}, nil, webhookConfig("secret"))

		rec := postWebhook(h, "/api/payments/webhook", validBody)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("rejects everything when the server token is unset", func(t *testing.T) {
		h := NewPaymentHandler(&stubPaymentUsecase{}, nil, webhookConfig(""))

		rec := postWebhook(h, "/api/payments/webhook?token=", validBody)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		h := NewPaymentHandler(&stubPaymentUsecase{}, nil, webhookConfig("secret"))

		rec := postWebhook(h, "/api/payments/webhook?token=secret", `{"data":`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("rejects a missing data.id", func(t *testing.T) {
		h := NewPaymentHandler(&stubPaymentUsecase{}, nil, webhookConfig("secret"))

		rec := postWebhook(h, "/api/payments/webhook?token=secret", `{"type":"payment","data":{}}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("rejects a non numeric data.id", func(t *testing.T) {
		h := NewPaymentHandler(&stubPaymentUsecase{}, nil, webhookConfig("secret"))

		rec := postWebhook(h, "/api/payments/webhook?token=secret",
			`{"type":"payment","data":{"id":"not-a-number"}}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 500 when processing fails so the provider retries", func(t *testing.T) {
		stub := &stubPaymentUsecase{processErr: errors.New("gateway down")}
		h := NewPaymentHandler(stub, nil, webhookConfig("secret"))

		rec := postWebhook(h, "/api/payments/webhook?token=secret", validBody)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

func TestPaymentHandler_ForceApprove(t *testing.T) {
	t.Run("disabled in production", func(t *testing.T) {
		cfg := webhookConfig("secret")
		cfg.App.Env = "production"
		h := NewPaymentHandler(&stubPaymentUsecase{}, nil, cfg)

		req := httptest.NewRequest(http.MethodPost, "/api/payments/dev/force-approve",
			strings.NewReader(`{"paymentId":7}`))
		rec := httptest.NewRecorder()
		h.ForceApprove(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}
