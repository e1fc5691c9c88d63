package entities

import "time"

// CheckoutStep is the closed set of states the checkout session moves through.
//
// Forward order: plan -> customer -> payment-method -> payment -> processing ->
// {awaiting-payment | approved} -> success. "error" is reachable from processing
// and awaiting-payment; an explicit retry goes error -> payment-method.
type CheckoutStep string

const (
	StepPlan            CheckoutStep = "plan"
	StepCustomer        CheckoutStep = "customer"
	StepPaymentMethod   CheckoutStep = "payment-method"
	StepPayment         CheckoutStep = "payment"
	StepProcessing      CheckoutStep = "processing"
	StepAwaitingPayment CheckoutStep = "awaiting-payment"
	StepApproved        CheckoutStep = "approved"
	StepSuccess         CheckoutStep = "success"
	StepError           CheckoutStep = "error"
)

// PaymentMethod is the instrument chosen on the payment-method step.
type PaymentMethod string

const (
	MethodCreditCard PaymentMethod = "credit_card"
	MethodPix        PaymentMethod = "pix"
	MethodBoleto     PaymentMethod = "boleto"
)

// ChargeStatus is the provider's settlement status for a charge.
type ChargeStatus string

const (
	ChargeStatusPaid    ChargeStatus = "paid"
	ChargeStatusPending ChargeStatus = "pending"
	ChargeStatusFailed  ChargeStatus = "failed"
)

// FailureKind classifies a terminal checkout failure.
type FailureKind string

const (
	FailureCustomerSync    FailureKind = "customer_sync_failed"
	FailureChargeDeclined  FailureKind = "charge_declined"
	FailureChargeTransport FailureKind = "charge_transport_failed"
	FailureExpired         FailureKind = "expired"
)

// CardDraft holds raw card fields while the session sits on the payment step.
//
// It is constructed from user input, handed to the tokenizer exactly once per
// attempt, and dropped as soon as a token is obtained. It must never be logged,
// serialized or stored; the json tags are deliberately absent.
type CardDraft struct {
	HolderName   string
	Number       string
	ExpiryMonth  int
	ExpiryYear   int
	CVV          string
	Installments int
}

// TokenizedCard is the opaque single-use gateway token plus display data.
// Immutable once set on the session.
type TokenizedCard struct {
	Token        string `json:"-"`
	Brand        string `json:"brand"`
	LastFour     string `json:"last_four"`
	Installments int    `json:"installments"`
}

// PaymentArtifacts is the canonical, method-specific payload the customer needs
// to settle an asynchronous charge. The gateway client normalizes the
// provider's assorted response shapes into this single type.
type PaymentArtifacts struct {
	// PIX
	QRCode       string `json:"qr_code,omitempty"`        // copy-paste payload
	QRCodeBase64 string `json:"qr_code_base64,omitempty"` // rendered image
	TicketURL    string `json:"ticket_url,omitempty"`

	// Boleto
	DocumentURL string `json:"document_url,omitempty"`
	Barcode     string `json:"barcode,omitempty"`
}

// PendingTransaction records the provider-issued charge while settlement is
// awaited out-of-band.
type PendingTransaction struct {
	TransactionID string           `json:"transaction_id"`
	Method        PaymentMethod    `json:"method"`
	DueAt         time.Time        `json:"due_at"`
	Artifacts     PaymentArtifacts `json:"artifacts"`
}

// ChargeResult is what the gateway client returns from charge creation.
type ChargeResult struct {
	TransactionID string
	Status        ChargeStatus
	DueAt         time.Time
	Artifacts     PaymentArtifacts
}

// TerminalResult is set once the session reaches approved or error.
type TerminalResult struct {
	Approved bool        `json:"approved"`
	Kind     FailureKind `json:"kind,omitempty"`
	Reason   string      `json:"reason,omitempty"`
}

// CheckoutSession is the orchestrator's owned, mutable root. It represents one
// payment attempt: at most one of TokenizedCard / PendingTransaction is set at
// a time, and CardDraft never coexists with TokenizedCard.
//
// Only the orchestrator's event loop mutates a session; everything handed out
// of the loop is a copy.
type CheckoutSession struct {
	ID                string              `json:"id"`
	Step              CheckoutStep        `json:"step"`
	Plan              *Plan               `json:"plan,omitempty"`
	Customer          *Customer           `json:"customer,omitempty"`
	GatewayCustomerID string              `json:"-"`
	PaymentMethod     PaymentMethod       `json:"payment_method,omitempty"`
	CardDraft         *CardDraft          `json:"-"`
	TokenizedCard     *TokenizedCard      `json:"tokenized_card,omitempty"`
	Pending           *PendingTransaction `json:"pending_transaction,omitempty"`
	Result            *TerminalResult     `json:"terminal_result,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
}

// Terminal reports whether no further automatic transition can occur.
func (s CheckoutSession) Terminal() bool {
	return s.Step == StepSuccess || s.Step == StepError
}
