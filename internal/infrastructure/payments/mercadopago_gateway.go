package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"rede_saude/internal/domain/entities"
	"rede_saude/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/customer"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const (
	pixPaymentWindow    = 30 * time.Minute
	boletoPaymentWindow = 3 * 24 * time.Hour
)

// MercadoPagoGateway implements IPaymentGateway on top of the Mercado Pago
// SDK: customers API for the upsert, payments API for charges and settlement
// status.
type MercadoPagoGateway struct {
	customers customer.Client
	payments  payment.Client
	mockMode  bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		customers: customer.NewClient(cfg),
		payments:  payment.NewClient(cfg),
	}, nil
}

// UpsertCustomer creates or updates the provider-side customer record. The
// provider's search API keys on email; the tax id travels in the
// identification block (digits only).
func (g *MercadoPagoGateway) UpsertCustomer(ctx context.Context, c entities.Customer) (string, error) {
	if g.mockMode {
		id := "mock-cus-" + c.TaxID
		log.Printf("[payment][gateway] mock upsert customer gateway_customer_id=%s", id)
		return id, nil
	}
	if g.customers == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	req := customerRequestFrom(c)

	search, err := g.customers.Search(ctx, customer.SearchRequest{
		Filters: map[string]string{"email": c.Email},
	})
	if err != nil {
		log.Printf("[payment][gateway] customer search failed err=%v", err)
		return "", fmt.Errorf("customer sync: %w", err)
	}

	if len(search.Results) > 0 {
		existing := search.Results[0].ID
		if _, err := g.customers.Update(ctx, existing, req); err != nil {
			log.Printf("[payment][gateway] customer update failed gateway_customer_id=%s err=%v", existing, err)
			return "", fmt.Errorf("customer sync: %w", err)
		}
		log.Printf("[payment][gateway] customer updated gateway_customer_id=%s", existing)
		return existing, nil
	}

	created, err := g.customers.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] customer create failed err=%v", err)
		return "", fmt.Errorf("customer sync: %w", err)
	}
	log.Printf("[payment][gateway] customer created gateway_customer_id=%s", created.ID)
	return created.ID, nil
}

// CreateCharge materializes the subscription charge for the chosen method. A
// provider refusal (rejected status) comes back as *interfaces.DeclinedError
// carrying the provider's status detail verbatim; everything else is a
// transport error.
func (g *MercadoPagoGateway) CreateCharge(ctx context.Context, in interfaces.ChargeInput) (entities.ChargeResult, error) {
	if g.mockMode {
		return g.mockCharge(in), nil
	}
	if g.payments == nil {
		return entities.ChargeResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	req, err := chargeRequestFrom(in)
	if err != nil {
		return entities.ChargeResult{}, err
	}

	resp, err := g.payments.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] charge create failed method=%s err=%v", in.Method, err)
		return entities.ChargeResult{}, fmt.Errorf("charge creation: %w", err)
	}
	log.Printf("[payment][gateway] charge created transaction_id=%d status=%s detail=%s", resp.ID, resp.Status, resp.StatusDetail)

	if resp.Status == "rejected" {
		return entities.ChargeResult{}, &interfaces.DeclinedError{Reason: resp.StatusDetail}
	}

	return chargeResultFrom(resp), nil
}

// GetChargeStatus fetches the settlement status of a charge. Consumed by the
// webhook path, never polled by the orchestrator.
func (g *MercadoPagoGateway) GetChargeStatus(ctx context.Context, transactionID string) (entities.ChargeStatus, error) {
	if g.mockMode {
		return entities.ChargeStatusPaid, nil
	}
	if g.payments == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(transactionID)
	if err != nil {
		return "", fmt.Errorf("invalid transaction id %q", transactionID)
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("charge status: %w", err)
	}
	return mapChargeStatus(resp.Status), nil
}

func customerRequestFrom(c entities.Customer) customer.Request {
	first, last := splitName(c.Name)
	number, _ := strconv.Atoi(c.Address.Number)

	return customer.Request{
		Email:     c.Email,
		FirstName: first,
		LastName:  last,
		Identification: &customer.IdentificationRequest{
			Type:   strings.ToUpper(string(c.TaxIDKind)),
			Number: c.TaxID,
		},
		Phone: phoneRequestFrom(c.Phone),
		Address: &customer.AddressRequest{
			ZipCode:      onlyDigits(c.Address.PostalCode),
			StreetName:   c.Address.Street,
			StreetNumber: number,
		},
	}
}

// phoneRequestFrom splits an already-validated Brazilian phone (10 or 11
// digits) into the provider's area code + number shape.
func phoneRequestFrom(phone string) *customer.PhoneRequest {
	digits := onlyDigits(phone)
	if len(digits) < 3 {
		return &customer.PhoneRequest{Number: digits}
	}
	return &customer.PhoneRequest{
		AreaCode: digits[:2],
		Number:   digits[2:],
	}
}

func chargeRequestFrom(in interfaces.ChargeInput) (payment.Request, error) {
	first, last := splitName(in.Customer.Name)
	req := payment.Request{
		TransactionAmount: in.Plan.Price,
		Description:       fmt.Sprintf("Assinatura %s", in.Plan.Name),
		ExternalReference: in.Plan.ID,
		Payer: &payment.PayerRequest{
			Email:     in.Customer.Email,
			FirstName: first,
			LastName:  last,
			Identification: &payment.IdentificationRequest{
				Type:   strings.ToUpper(string(in.Customer.TaxIDKind)),
				Number: in.Customer.TaxID,
			},
		},
	}

	switch in.Method {
	case entities.MethodCreditCard:
		if in.Card == nil {
			return payment.Request{}, errors.New("credit card charge requires a tokenized card")
		}
		req.Token = in.Card.Token
		req.PaymentMethodID = providerMethodID(in.Card.Brand)
		req.Installments = in.Card.Installments
		if req.Installments < 1 {
			req.Installments = 1
		}
	case entities.MethodPix:
		req.PaymentMethodID = "pix"
		due := time.Now().UTC().Add(pixPaymentWindow)
		req.DateOfExpiration = &due
	case entities.MethodBoleto:
		req.PaymentMethodID = "bolbradesco"
		due := time.Now().UTC().Add(boletoPaymentWindow)
		req.DateOfExpiration = &due
	default:
		return payment.Request{}, fmt.Errorf("unsupported payment method %q", in.Method)
	}

	return req, nil
}

// chargeResultFrom flattens the provider's assorted artifact fields into the
// one canonical shape the rest of the system consumes.
func chargeResultFrom(resp *payment.Response) entities.ChargeResult {
	return entities.ChargeResult{
		TransactionID: strconv.Itoa(resp.ID),
		Status:        mapChargeStatus(resp.Status),
		DueAt:         resp.DateOfExpiration,
		Artifacts: entities.PaymentArtifacts{
			QRCode:       resp.PointOfInteraction.TransactionData.QRCode,
			QRCodeBase64: resp.PointOfInteraction.TransactionData.QRCodeBase64,
			TicketURL:    resp.PointOfInteraction.TransactionData.TicketURL,
			DocumentURL:  resp.TransactionDetails.ExternalResourceURL,
			Barcode:      resp.TransactionDetails.Barcode.Content,
		},
	}
}

func mapChargeStatus(providerStatus string) entities.ChargeStatus {
	switch providerStatus {
	case "approved":
		return entities.ChargeStatusPaid
	case "pending", "in_process", "authorized":
		return entities.ChargeStatusPending
	default:
		return entities.ChargeStatusFailed
	}
}

func providerMethodID(brand string) string {
	switch brand {
	case "mastercard":
		return "master"
	default:
		return brand
	}
}

func (g *MercadoPagoGateway) mockCharge(in interfaces.ChargeInput) entities.ChargeResult {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)

	switch in.Method {
	case entities.MethodPix:
		log.Printf("[payment][gateway] mock pix charge transaction_id=%s", id)
		return entities.ChargeResult{
			TransactionID: id,
			Status:        entities.ChargeStatusPending,
			DueAt:         time.Now().UTC().Add(pixPaymentWindow),
			Artifacts: entities.PaymentArtifacts{
				QRCode:       "00020126580014br.gov.bcb.pix" + id,
				QRCodeBase64: "aVZCT1J3MEtHZ29BQUFBTlN",
			},
		}
	case entities.MethodBoleto:
		log.Printf("[payment][gateway] mock boleto charge transaction_id=%s", id)
		return entities.ChargeResult{
			TransactionID: id,
			Status:        entities.ChargeStatusPending,
			DueAt:         time.Now().UTC().Add(boletoPaymentWindow),
			Artifacts: entities.PaymentArtifacts{
				DocumentURL: "https://example.com/boletos/" + id + ".pdf",
				Barcode:     "23790000012345678901234567890123456789012345",
			},
		}
	default:
		log.Printf("[payment][gateway] mock card charge approved transaction_id=%s", id)
		return entities.ChargeResult{
			TransactionID: id,
			Status:        entities.ChargeStatusPaid,
		}
	}
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(strings.TrimSpace(full))
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
