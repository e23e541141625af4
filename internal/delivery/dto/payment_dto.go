package dto

// WebhookRequest is the gateway notification body. Only data.id is used;
// everything else about the payment is re-fetched from the gateway.
// The id arrives as a string or a number depending on the event source,
// so it is decoded loosely and coerced later.
type WebhookRequest struct {
	Action string      `json:"action"`
	Type   string      `json:"type"`
	Data   WebhookData `json:"data"`
}

type WebhookData struct {
	ID any `json:"id"`
}

type WebhookAck struct {
	Received bool `json:"received"`
}

type CreatePlanPreferenceRequest struct {
	PlanID string `json:"planId" validate:"required"`
	LeadID uint   `json:"leadId" validate:"required"`
}

type PlanPreferenceResponse struct {
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

type ForceApproveRequest struct {
	PaymentID uint `json:"paymentId" validate:"required"`
}
