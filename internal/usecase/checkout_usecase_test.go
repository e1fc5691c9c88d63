package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rede_saude/internal/domain/entities"
	"rede_saude/internal/infrastructure/settlement"
	"rede_saude/internal/usecase/interfaces"
	mock_interfaces "rede_saude/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type checkoutFixture struct {
	uc        *CheckoutUseCase
	planRepo  *mock_interfaces.MockIPlanRepository
	gateway   *mock_interfaces.MockIPaymentGateway
	tokenizer *mock_interfaces.MockICardTokenizer
	hub       *settlement.Hub
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &checkoutFixture{
		planRepo:  mock_interfaces.NewMockIPlanRepository(ctrl),
		gateway:   mock_interfaces.NewMockIPaymentGateway(ctrl),
		tokenizer: mock_interfaces.NewMockICardTokenizer(ctrl),
		hub:       settlement.NewHub(),
	}
	f.uc = NewCheckoutUseCase(f.planRepo, f.gateway, f.tokenizer, f.hub)
	// Keep async transitions fast enough to observe in tests.
	f.uc.successDelay = 20 * time.Millisecond
	f.uc.paymentWindow = time.Minute
	return f
}

func testPlan() entities.Plan {
	return entities.Plan{ID: "plan-1", Name: "Essencial", Price: 149.90, Active: true}
}

func testCustomer() entities.Customer {
	return entities.Customer{
		Name:      "Maria Souza",
		Email:     "maria@test.com",
		TaxID:     "529.982.247-25",
		TaxIDKind: entities.TaxIDIndividual,
		Phone:     "11987654321",
		Address:   entities.Address{Street: "Avenida Paulista", Number: "1000", City: "São Paulo", Region: "SP", PostalCode: "01310100"},
	}
}

func testCard() entities.CardDraft {
	return entities.CardDraft{
		HolderName:   "Maria Souza",
		Number:       "4111 1111 1111 1111",
		ExpiryMonth:  12,
		ExpiryYear:   2030,
		CVV:          "123",
		Installments: 1,
	}
}

// advanceToPaymentMethod walks a fresh session through plan and customer.
func (f *checkoutFixture) advanceToPaymentMethod(t *testing.T) entities.CheckoutSession {
	t.Helper()
	ctx := context.Background()

	f.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(testPlan(), nil)

	session, err := f.uc.Start(ctx, "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if session.Step != entities.StepPlan {
		t.Fatalf("expected step plan, got %s", session.Step)
	}

	session, err = f.uc.SelectPlan(ctx, session.ID, "plan-1")
	if err != nil {
		t.Fatalf("select plan: %v", err)
	}
	if session.Step != entities.StepCustomer {
		t.Fatalf("expected step customer, got %s", session.Step)
	}

	session, err = f.uc.SubmitCustomer(ctx, session.ID, testCustomer())
	if err != nil {
		t.Fatalf("submit customer: %v", err)
	}
	if session.Step != entities.StepPaymentMethod {
		t.Fatalf("expected step payment-method, got %s", session.Step)
	}
	return session
}

// waitForStep polls the session until it reaches the wanted step.
func (f *checkoutFixture) waitForStep(t *testing.T, sessionID string, want entities.CheckoutStep) entities.CheckoutSession {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		session, err := f.uc.Get(context.Background(), sessionID)
		if err != nil {
			t.Fatalf("get session: %v", err)
		}
		if session.Step == want {
			return session
		}
		if time.Now().After(deadline) {
			t.Fatalf("session never reached %s, stuck on %s", want, session.Step)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestCheckoutUseCase_Start(t *testing.T) {
	t.Run("without plan starts on plan step", func(t *testing.T) {
		f := newCheckoutFixture(t)

		session, err := f.uc.Start(context.Background(), "")
		if err != nil {
			t.Fatalf("start: %v", err)
		}
		if session.ID == "" || session.Step != entities.StepPlan {
			t.Fatalf("unexpected session: %+v", session)
		}
	})

	t.Run("with preselected plan skips to customer", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(testPlan(), nil)

		session, err := f.uc.Start(context.Background(), "plan-1")
		if err != nil {
			t.Fatalf("start: %v", err)
		}
		if session.Step != entities.StepCustomer || session.Plan == nil || session.Plan.ID != "plan-1" {
			t.Fatalf("unexpected session: %+v", session)
		}
	})

	t.Run("with inactive plan fails", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.planRepo.EXPECT().GetByID(gomock.Any(), "plan-old").Return(entities.Plan{ID: "plan-old", Active: false}, nil)

		_, err := f.uc.Start(context.Background(), "plan-old")
		if !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
	})

	t.Run("unknown session id", func(t *testing.T) {
		f := newCheckoutFixture(t)

		_, err := f.uc.Get(context.Background(), "nope")
		if !errors.Is(err, ErrCheckoutSessionNotFound) {
			t.Fatalf("expected ErrCheckoutSessionNotFound, got %v", err)
		}
	})
}

func TestCheckoutUseCase_StepGuards(t *testing.T) {
	f := newCheckoutFixture(t)
	session, err := f.uc.Start(context.Background(), "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	t.Run("customer before plan", func(t *testing.T) {
		_, err := f.uc.SubmitCustomer(context.Background(), session.ID, testCustomer())
		if !errors.Is(err, ErrStepNotAllowed) {
			t.Fatalf("expected ErrStepNotAllowed, got %v", err)
		}
	})

	t.Run("card before payment step", func(t *testing.T) {
		_, err := f.uc.SubmitCard(context.Background(), session.ID, testCard())
		if !errors.Is(err, ErrStepNotAllowed) {
			t.Fatalf("expected ErrStepNotAllowed, got %v", err)
		}
	})

	t.Run("retry outside error", func(t *testing.T) {
		_, err := f.uc.Retry(context.Background(), session.ID)
		if !errors.Is(err, ErrStepNotAllowed) {
			t.Fatalf("expected ErrStepNotAllowed, got %v", err)
		}
	})

	t.Run("continue outside approved", func(t *testing.T) {
		_, err := f.uc.Continue(context.Background(), session.ID)
		if !errors.Is(err, ErrStepNotAllowed) {
			t.Fatalf("expected ErrStepNotAllowed, got %v", err)
		}
	})
}

func TestCheckoutUseCase_SubmitCustomer_Validation(t *testing.T) {
	f := newCheckoutFixture(t)
	f.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(testPlan(), nil)

	session, err := f.uc.Start(context.Background(), "plan-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	bad := testCustomer()
	bad.TaxID = "111.111.111-11"
	_, err = f.uc.SubmitCustomer(context.Background(), session.ID, bad)

	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected FieldError, got %v", err)
	}
	if fieldErr.Field != "tax_id" {
		t.Fatalf("expected tax_id field, got %s", fieldErr.Field)
	}

	// The rejected submission must not advance the session.
	got, _ := f.uc.Get(context.Background(), session.ID)
	if got.Step != entities.StepCustomer {
		t.Fatalf("expected session to stay on customer, got %s", got.Step)
	}
}

func TestCheckoutUseCase_CardFlow_SyncApproval(t *testing.T) {
	f := newCheckoutFixture(t)
	session := f.advanceToPaymentMethod(t)
	ctx := context.Background()

	session, err := f.uc.ChooseMethod(ctx, session.ID, entities.MethodCreditCard)
	if err != nil {
		t.Fatalf("choose method: %v", err)
	}
	if session.Step != entities.StepPayment {
		t.Fatalf("expected step payment, got %s", session.Step)
	}

	f.tokenizer.EXPECT().Tokenize(gomock.Any(), gomock.Any()).
		Return(entities.TokenizedCard{Token: "tok-1", Brand: "visa", LastFour: "1111"}, nil)
	f.gateway.EXPECT().UpsertCustomer(gomock.Any(), gomock.Any()).Return("cus-1", nil)
	f.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in interfaces.ChargeInput) (entities.ChargeResult, error) {
			if in.GatewayCustomerID != "cus-1" || in.Card == nil || in.Card.Token != "tok-1" {
				t.Fatalf("unexpected charge input: %+v", in)
			}
			return entities.ChargeResult{TransactionID: "tx-1", Status: entities.ChargeStatusPaid}, nil
		})

	session, err = f.uc.SubmitCard(ctx, session.ID, testCard())
	if err != nil {
		t.Fatalf("submit card: %v", err)
	}
	if session.Step != entities.StepApproved {
		t.Fatalf("expected step approved, got %s", session.Step)
	}
	if session.Result == nil || !session.Result.Approved {
		t.Fatalf("expected approved result, got %+v", session.Result)
	}
	if session.CardDraft != nil {
		t.Fatal("raw card draft must be dropped after tokenization")
	}
	if session.TokenizedCard == nil || session.TokenizedCard.LastFour != "1111" {
		t.Fatalf("expected tokenized card on session, got %+v", session.TokenizedCard)
	}
	if session.Pending != nil {
		t.Fatalf("synchronous approval must not leave a pending transaction: %+v", session.Pending)
	}

	// Card sessions hold on approved until an explicit continue.
	time.Sleep(3 * f.uc.successDelay)
	got, _ := f.uc.Get(ctx, session.ID)
	if got.Step != entities.StepApproved {
		t.Fatalf("card session advanced on its own to %s", got.Step)
	}

	session, err = f.uc.Continue(ctx, session.ID)
	if err != nil {
		t.Fatalf("continue: %v", err)
	}
	if session.Step != entities.StepSuccess {
		t.Fatalf("expected step success, got %s", session.Step)
	}
}

func TestCheckoutUseCase_CardFlow_TokenizationFailure(t *testing.T) {
	f := newCheckoutFixture(t)
	session := f.advanceToPaymentMethod(t)
	ctx := context.Background()

	if _, err := f.uc.ChooseMethod(ctx, session.ID, entities.MethodCreditCard); err != nil {
		t.Fatalf("choose method: %v", err)
	}

	f.tokenizer.EXPECT().Tokenize(gomock.Any(), gomock.Any()).
		Return(entities.TokenizedCard{}, errors.New("provider unavailable"))

	_, err := f.uc.SubmitCard(ctx, session.ID, testCard())
	if !errors.Is(err, ErrTokenizationFailed) {
		t.Fatalf("expected ErrTokenizationFailed, got %v", err)
	}

	got, _ := f.uc.Get(ctx, session.ID)
	if got.Step != entities.StepPayment {
		t.Fatalf("expected session to stay on payment, got %s", got.Step)
	}
	if got.CardDraft == nil {
		t.Fatal("draft must be retained so the customer can correct it")
	}
}

func TestCheckoutUseCase_CardFlow_Declined(t *testing.T) {
	f := newCheckoutFixture(t)
	session := f.advanceToPaymentMethod(t)
	ctx := context.Background()

	if _, err := f.uc.ChooseMethod(ctx, session.ID, entities.MethodCreditCard); err != nil {
		t.Fatalf("choose method: %v", err)
	}

	f.tokenizer.EXPECT().Tokenize(gomock.Any(), gomock.Any()).
		Return(entities.TokenizedCard{Token: "tok-1", Brand: "visa", LastFour: "1111"}, nil)
	f.gateway.EXPECT().UpsertCustomer(gomock.Any(), gomock.Any()).Return("cus-1", nil)
	f.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).
		Return(entities.ChargeResult{}, &interfaces.DeclinedError{Reason: "insufficient_funds"})

	session, err := f.uc.SubmitCard(ctx, session.ID, testCard())
	if err != nil {
		t.Fatalf("submit card: %v", err)
	}
	if session.Step != entities.StepError {
		t.Fatalf("expected step error, got %s", session.Step)
	}
	if session.Result == nil || session.Result.Kind != entities.FailureChargeDeclined {
		t.Fatalf("expected charge_declined failure, got %+v", session.Result)
	}
	if session.Result.Reason != "insufficient_funds" {
		t.Fatalf("provider reason must pass through verbatim, got %q", session.Result.Reason)
	}

	// Retry keeps plan and customer but resets the failed attempt.
	session, err = f.uc.Retry(ctx, session.ID)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if session.Step != entities.StepPaymentMethod {
		t.Fatalf("expected step payment-method after retry, got %s", session.Step)
	}
	if session.Plan == nil || session.Customer == nil {
		t.Fatal("retry must keep plan and customer")
	}
	if session.PaymentMethod != "" || session.TokenizedCard != nil || session.Pending != nil || session.Result != nil {
		t.Fatalf("retry must reset the failed attempt: %+v", session)
	}
}

func TestCheckoutUseCase_CustomerSyncFailure(t *testing.T) {
	f := newCheckoutFixture(t)
	session := f.advanceToPaymentMethod(t)
	ctx := context.Background()

	f.gateway.EXPECT().UpsertCustomer(gomock.Any(), gomock.Any()).Return("", errors.New("timeout"))

	session, err := f.uc.ChooseMethod(ctx, session.ID, entities.MethodPix)
	if err != nil {
		t.Fatalf("choose method: %v", err)
	}
	if session.Step != entities.StepError {
		t.Fatalf("expected step error, got %s", session.Step)
	}
	if session.Result == nil || session.Result.Kind != entities.FailureCustomerSync {
		t.Fatalf("expected customer_sync_failed, got %+v", session.Result)
	}
}

func TestCheckoutUseCase_PixFlow_Settlement(t *testing.T) {
	f := newCheckoutFixture(t)
	session := f.advanceToPaymentMethod(t)
	ctx := context.Background()

	dueAt := time.Now().UTC().Add(time.Hour)
	f.gateway.EXPECT().UpsertCustomer(gomock.Any(), gomock.Any()).Return("cus-1", nil)
	f.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).
		Return(entities.ChargeResult{
			TransactionID: "tx-pix-1",
			Status:        entities.ChargeStatusPending,
			DueAt:         dueAt,
			Artifacts:     entities.PaymentArtifacts{QRCode: "00020126pix", QRCodeBase64: "aW1n"},
		}, nil)

	session, err := f.uc.ChooseMethod(ctx, session.ID, entities.MethodPix)
	if err != nil {
		t.Fatalf("choose method: %v", err)
	}
	if session.Step != entities.StepAwaitingPayment {
		t.Fatalf("expected step awaiting-payment, got %s", session.Step)
	}
	if session.Pending == nil || session.Pending.TransactionID != "tx-pix-1" {
		t.Fatalf("expected pending transaction, got %+v", session.Pending)
	}
	if session.Pending.Artifacts.QRCode == "" || session.Pending.Artifacts.QRCodeBase64 == "" {
		t.Fatalf("expected pix artifacts, got %+v", session.Pending.Artifacts)
	}
	if session.TokenizedCard != nil {
		t.Fatal("pix session must not carry a tokenized card")
	}

	f.hub.Publish("tx-pix-1")

	session = f.waitForStep(t, session.ID, entities.StepApproved)
	if session.Result == nil || !session.Result.Approved {
		t.Fatalf("expected approved result, got %+v", session.Result)
	}

	// Pix confirmation advances to success on its own.
	f.waitForStep(t, session.ID, entities.StepSuccess)
}

func TestCheckoutUseCase_BoletoFlow_Expiry(t *testing.T) {
	f := newCheckoutFixture(t)
	session := f.advanceToPaymentMethod(t)
	ctx := context.Background()

	dueAt := time.Now().UTC().Add(30 * time.Millisecond)
	f.gateway.EXPECT().UpsertCustomer(gomock.Any(), gomock.Any()).Return("cus-1", nil)
	f.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).
		Return(entities.ChargeResult{
			TransactionID: "tx-bol-1",
			Status:        entities.ChargeStatusPending,
			DueAt:         dueAt,
			Artifacts:     entities.PaymentArtifacts{DocumentURL: "https://provider/boleto.pdf", Barcode: "34191"},
		}, nil)

	session, err := f.uc.ChooseMethod(ctx, session.ID, entities.MethodBoleto)
	if err != nil {
		t.Fatalf("choose method: %v", err)
	}
	if session.Step != entities.StepAwaitingPayment {
		t.Fatalf("expected step awaiting-payment, got %s", session.Step)
	}

	session = f.waitForStep(t, session.ID, entities.StepError)
	if session.Result == nil || session.Result.Kind != entities.FailureExpired {
		t.Fatalf("expected expired failure, got %+v", session.Result)
	}

	// A webhook arriving after expiry loses the race and changes nothing.
	f.hub.Publish("tx-bol-1")
	time.Sleep(50 * time.Millisecond)
	got, _ := f.uc.Get(ctx, session.ID)
	if got.Step != entities.StepError {
		t.Fatalf("late settlement must not revive the session, got %s", got.Step)
	}
}

func TestCheckoutUseCase_SettlementWinsOverExpiry(t *testing.T) {
	f := newCheckoutFixture(t)
	session := f.advanceToPaymentMethod(t)
	ctx := context.Background()

	f.gateway.EXPECT().UpsertCustomer(gomock.Any(), gomock.Any()).Return("cus-1", nil)
	f.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).
		Return(entities.ChargeResult{
			TransactionID: "tx-race-1",
			Status:        entities.ChargeStatusPending,
			DueAt:         time.Now().UTC().Add(time.Hour),
		}, nil)

	session, err := f.uc.ChooseMethod(ctx, session.ID, entities.MethodPix)
	if err != nil {
		t.Fatalf("choose method: %v", err)
	}

	f.hub.Publish("tx-race-1")
	session = f.waitForStep(t, session.ID, entities.StepApproved)

	// Exactly one terminal transition: once approved, the session can only
	// move forward to success, never flip to error.
	f.waitForStep(t, session.ID, entities.StepSuccess)
}

func TestCheckoutUseCase_CardPendingUsesSettlementChannel(t *testing.T) {
	f := newCheckoutFixture(t)
	session := f.advanceToPaymentMethod(t)
	ctx := context.Background()

	if _, err := f.uc.ChooseMethod(ctx, session.ID, entities.MethodCreditCard); err != nil {
		t.Fatalf("choose method: %v", err)
	}

	f.tokenizer.EXPECT().Tokenize(gomock.Any(), gomock.Any()).
		Return(entities.TokenizedCard{Token: "tok-1", Brand: "visa", LastFour: "1111"}, nil)
	f.gateway.EXPECT().UpsertCustomer(gomock.Any(), gomock.Any()).Return("cus-1", nil)
	f.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).
		Return(entities.ChargeResult{TransactionID: "tx-rev-1", Status: entities.ChargeStatusPending}, nil)

	session, err := f.uc.SubmitCard(ctx, session.ID, testCard())
	if err != nil {
		t.Fatalf("submit card: %v", err)
	}
	if session.Step != entities.StepAwaitingPayment {
		t.Fatalf("non-final card charge must wait for settlement, got %s", session.Step)
	}

	f.hub.Publish("tx-rev-1")
	f.waitForStep(t, session.ID, entities.StepApproved)
}

func TestCheckoutUseCase_Abandon(t *testing.T) {
	f := newCheckoutFixture(t)
	session := f.advanceToPaymentMethod(t)
	ctx := context.Background()

	f.gateway.EXPECT().UpsertCustomer(gomock.Any(), gomock.Any()).Return("cus-1", nil)
	f.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).
		Return(entities.ChargeResult{
			TransactionID: "tx-gone-1",
			Status:        entities.ChargeStatusPending,
			DueAt:         time.Now().UTC().Add(time.Hour),
		}, nil)

	if _, err := f.uc.ChooseMethod(ctx, session.ID, entities.MethodPix); err != nil {
		t.Fatalf("choose method: %v", err)
	}

	if err := f.uc.Abandon(ctx, session.ID); err != nil {
		t.Fatalf("abandon: %v", err)
	}

	if _, err := f.uc.Get(ctx, session.ID); !errors.Is(err, ErrCheckoutSessionNotFound) {
		t.Fatalf("expected ErrCheckoutSessionNotFound, got %v", err)
	}

	// The settlement subscription went down with the session.
	f.hub.Publish("tx-gone-1")
}
