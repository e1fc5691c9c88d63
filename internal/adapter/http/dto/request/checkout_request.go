package request

import (
	"encoding/json"
	"strings"

	"rede_saude/internal/domain/entities"
)

// StartCheckoutRequest begins a session. PlanID is optional: when present the
// plan step is skipped.
type StartCheckoutRequest struct {
	PlanID string `json:"plan_id"`
}

type SelectPlanRequest struct {
	PlanID string `json:"plan_id" binding:"required"`
}

type CustomerRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	TaxID     string `json:"tax_id" binding:"required"`
	TaxIDKind string `json:"tax_id_kind" binding:"required"`
	Phone     string `json:"phone" binding:"required"`

	Street     string `json:"street"`
	Number     string `json:"number"`
	District   string `json:"district"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code" binding:"required"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		Name:      r.Name,
		Email:     r.Email,
		TaxID:     r.TaxID,
		TaxIDKind: entities.TaxIDKind(r.TaxIDKind),
		Phone:     r.Phone,
		Address: entities.Address{
			Street:     r.Street,
			Number:     r.Number,
			District:   r.District,
			City:       r.City,
			Region:     r.Region,
			PostalCode: r.PostalCode,
		},
	}
}

type PaymentMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

// CardRequest carries raw card fields. It is converted to a CardDraft, handed
// to the orchestrator and never stored or echoed back.
type CardRequest struct {
	HolderName   string `json:"holder_name" binding:"required"`
	Number       string `json:"number" binding:"required"`
	ExpiryMonth  int    `json:"expiry_month" binding:"required"`
	ExpiryYear   int    `json:"expiry_year" binding:"required"`
	CVV          string `json:"cvv" binding:"required"`
	Installments int    `json:"installments"`
}

func (r CardRequest) ToDraft() entities.CardDraft {
	return entities.CardDraft{
		HolderName:   r.HolderName,
		Number:       r.Number,
		ExpiryMonth:  r.ExpiryMonth,
		ExpiryYear:   r.ExpiryYear,
		CVV:          r.CVV,
		Installments: r.Installments,
	}
}

// WebhookRequest is the provider's payment notification shape. The data id
// arrives as a JSON number or string depending on the event source, so it is
// decoded leniently.
type WebhookRequest struct {
	Type string `json:"type"`
	Data struct {
		ID json.Number `json:"id"`
	} `json:"data"`
}

func (r WebhookRequest) TransactionID() string {
	return strings.TrimSpace(r.Data.ID.String())
}
