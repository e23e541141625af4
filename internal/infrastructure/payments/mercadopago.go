package payments

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	appconfig "go-trainer-booking/config"
	"go-trainer-booking/internal/domain/gateway"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/sirupsen/logrus"
)

var ErrMissingAccessToken = errors.New("missing MERCADO_PAGO_ACCESS_TOKEN")

// MercadoPagoGateway implements gateway.PaymentGateway on top of the
// official Mercado Pago SDK.
type MercadoPagoGateway struct {
	preferences preference.Client
	payments    payment.Client
	log         *logrus.Logger
}

func NewMercadoPagoGateway(cfg appconfig.MercadoPagoConfig, log *logrus.Logger) (*MercadoPagoGateway, error) {
	if cfg.AccessToken == "" {
		return nil, ErrMissingAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		return nil, err
	}

	log.Info("Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(sdkCfg),
		payments:    payment.NewClient(sdkCfg),
		log:         log,
	}, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, req *gateway.PreferenceRequest) (*gateway.Preference, error) {
	items := make([]preference.ItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, preference.ItemRequest{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			CurrencyID:  item.CurrencyID,
		})
	}

	sdkReq := preference.Request{
		Items: items,
		BackURLs: &preference.BackURLsRequest{
			Success: req.BackURLs.Success,
			Pending: req.BackURLs.Pending,
			Failure: req.BackURLs.Failure,
		},
		NotificationURL: req.NotificationURL,
		Metadata:        req.Metadata,
	}

	if req.Payer != nil {
		sdkReq.Payer = &preference.PayerRequest{
			Name:  req.Payer.Name,
			Email: req.Payer.Email,
		}
	}

	resp, err := g.preferences.Create(ctx, sdkReq)
	if err != nil {
		g.log.Warnf("Mercado Pago preference create failed: %+v", err)
		return nil, err
	}

	return &gateway.Preference{
		ID:               resp.ID,
		InitPoint:        resp.InitPoint,
		SandboxInitPoint: resp.SandboxInitPoint,
	}, nil
}

// paymentFields is the slice of the provider payment object this system
// reads beyond id/status. Extracted from the marshaled response instead of
// the SDK struct so the audit copy and the parsed fields can never diverge.
type paymentFields struct {
	PaymentMethodID string         `json:"payment_method_id"`
	Metadata        map[string]any `json:"metadata"`
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, id int) (*gateway.PaymentInfo, error) {
	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		g.log.Warnf("Mercado Pago payment lookup failed for id %d: %+v", id, err)
		return nil, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}

	var fields paymentFields
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	return &gateway.PaymentInfo{
		ID:       strconv.Itoa(resp.ID),
		Status:   resp.Status,
		Method:   fields.PaymentMethodID,
		Metadata: fields.Metadata,
		Raw:      raw,
	}, nil
}
