package gateway

import (
	"context"
	"encoding/json"
)

// PreferenceItem is a single line item on a checkout preference
type PreferenceItem struct {
	ID          string
	Title       string
	Description string
	Quantity    int
	UnitPrice   float64
	CurrencyID  string
}

// PreferencePayer identifies the customer redirected to the hosted checkout
type PreferencePayer struct {
	Name  string
	Email string
}

// BackURLs are the redirect targets after the hosted checkout finishes
type BackURLs struct {
	Success string
	Pending string
	Failure string
}

// PreferenceRequest describes the provider-side "intent to pay" object
type PreferenceRequest struct {
	Items           []PreferenceItem
	Payer           *PreferencePayer
	BackURLs        BackURLs
	NotificationURL string
	Metadata        map[string]any
}

// Preference is the created provider preference
type Preference struct {
	ID               string
	InitPoint        string
	SandboxInitPoint string
}

// PaymentInfo is the authoritative payment state fetched from the provider.
// Raw carries the provider's full payment object for audit storage.
type PaymentInfo struct {
	ID       string
	Status   string
	Method   string
	Metadata map[string]any
	Raw      json.RawMessage
}

// Provider payment statuses this system acts on; anything else is a no-op.
const (
	PaymentStatusApproved = "approved"
	PaymentStatusRejected = "rejected"
)

// PaymentGateway abstracts the external payment provider (Mercado Pago).
//
// CreatePreference opens a checkout session; GetPayment re-fetches the
// authoritative payment state, which the webhook flow always trusts over
// the notification body.
type PaymentGateway interface {
	CreatePreference(ctx context.Context, req *PreferenceRequest) (*Preference, error)
	GetPayment(ctx context.Context, id int) (*PaymentInfo, error)
}
