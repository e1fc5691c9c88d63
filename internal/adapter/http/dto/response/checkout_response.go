package response

import (
	"time"

	"rede_saude/internal/domain/entities"
)

type PlanSummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Features []string `json:"features,omitempty"`
}

type TokenizedCardView struct {
	Brand        string `json:"brand"`
	LastFour     string `json:"last_four"`
	Installments int    `json:"installments"`
}

type PendingTransactionView struct {
	TransactionID string    `json:"transaction_id"`
	Method        string    `json:"method"`
	DueAt         time.Time `json:"due_at"`
	QRCode        string    `json:"qr_code,omitempty"`
	QRCodeBase64  string    `json:"qr_code_base64,omitempty"`
	TicketURL     string    `json:"ticket_url,omitempty"`
	DocumentURL   string    `json:"document_url,omitempty"`
	Barcode       string    `json:"barcode,omitempty"`
}

type TerminalResultView struct {
	Approved bool   `json:"approved"`
	Kind     string `json:"kind,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// CheckoutSessionResponse is the UI-facing view of a session. Raw card data
// and the gateway token are never part of it.
type CheckoutSessionResponse struct {
	SessionID     string                  `json:"session_id"`
	Step          string                  `json:"step"`
	Plan          *PlanSummary            `json:"plan,omitempty"`
	PaymentMethod string                  `json:"payment_method,omitempty"`
	Card          *TokenizedCardView      `json:"card,omitempty"`
	Pending       *PendingTransactionView `json:"pending_transaction,omitempty"`
	Result        *TerminalResultView     `json:"result,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
}

func FromCheckoutSession(s entities.CheckoutSession) CheckoutSessionResponse {
	resp := CheckoutSessionResponse{
		SessionID:     s.ID,
		Step:          string(s.Step),
		PaymentMethod: string(s.PaymentMethod),
		CreatedAt:     s.CreatedAt,
	}

	if s.Plan != nil {
		resp.Plan = &PlanSummary{
			ID:       s.Plan.ID,
			Name:     s.Plan.Name,
			Price:    s.Plan.Price,
			Features: s.Plan.Features,
		}
	}
	if s.TokenizedCard != nil {
		resp.Card = &TokenizedCardView{
			Brand:        s.TokenizedCard.Brand,
			LastFour:     s.TokenizedCard.LastFour,
			Installments: s.TokenizedCard.Installments,
		}
	}
	if s.Pending != nil {
		resp.Pending = &PendingTransactionView{
			TransactionID: s.Pending.TransactionID,
			Method:        string(s.Pending.Method),
			DueAt:         s.Pending.DueAt,
			QRCode:        s.Pending.Artifacts.QRCode,
			QRCodeBase64:  s.Pending.Artifacts.QRCodeBase64,
			TicketURL:     s.Pending.Artifacts.TicketURL,
			DocumentURL:   s.Pending.Artifacts.DocumentURL,
			Barcode:       s.Pending.Artifacts.Barcode,
		}
	}
	if s.Result != nil {
		resp.Result = &TerminalResultView{
			Approved: s.Result.Approved,
			Kind:     string(s.Result.Kind),
			Reason:   s.Result.Reason,
		}
	}

	return resp
}
