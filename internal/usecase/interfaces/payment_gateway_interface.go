package interfaces

import (
	"context"
	"fmt"

	"rede_saude/internal/domain/entities"
)

// ChargeInput carries everything the provider needs to materialize a charge
// for the chosen method. Card is nil for pix/boleto.
type ChargeInput struct {
	GatewayCustomerID string
	Plan              entities.Plan
	Customer          entities.Customer
	Method            entities.PaymentMethod
	Card              *entities.TokenizedCard
}

// DeclinedError is a provider-side refusal (card declined, insufficient
// limit). Its Reason is surfaced verbatim to the customer, unlike transport
// failures which are presented generically.
type DeclinedError struct {
	Reason string
}

func (e *DeclinedError) Error() string {
	return fmt.Sprintf("charge declined by provider: %s", e.Reason)
}

// IPaymentGateway abstracts the external billing provider (e.g. Mercado Pago).
//
// Both write operations are idempotent by intent: UpsertCustomer keys on the
// tax id and CreateCharge represents exactly one checkout attempt.
type IPaymentGateway interface {
	UpsertCustomer(ctx context.Context, c entities.Customer) (gatewayCustomerID string, err error)
	CreateCharge(ctx context.Context, in ChargeInput) (entities.ChargeResult, error)
	GetChargeStatus(ctx context.Context, transactionID string) (entities.ChargeStatus, error)
}
