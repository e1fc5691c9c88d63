package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"rede_saude/internal/domain/entities"
	"rede_saude/internal/domain/validation"
	"rede_saude/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCheckoutSessionNotFound = errors.New("checkout session not found")
	ErrPlanNotFound            = errors.New("plan not found")
	ErrStepNotAllowed          = errors.New("action not allowed on current step")
	ErrInvalidPaymentMethod    = errors.New("invalid payment method")
	ErrTokenizationFailed      = errors.New("card tokenization failed")
)

const (
	// Fallback payment window when the provider response carries no due time.
	defaultPaymentWindow = 30 * time.Minute
	// How long the approved confirmation screen shows before pix/boleto
	// sessions auto-advance to success. Card sessions require an explicit
	// continue instead.
	defaultSuccessDelay = 3 * time.Second

	mailboxSize = 16
)

// FieldError is a recoverable, field-level validation failure. It never leaves
// the step that raised it: the session does not advance.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return fmt.Sprintf("%s: %v", e.Field, e.Err) }
func (e *FieldError) Unwrap() error { return e.Err }

// ICheckoutUseCase drives one beneficiary through plan selection, customer
// data, payment capture and settlement confirmation.
//
// Every method returns a copy of the session after the attempted transition.

type ICheckoutUseCase interface {
	Start(ctx context.Context, planID string) (entities.CheckoutSession, error)
	Get(ctx context.Context, sessionID string) (entities.CheckoutSession, error)
	SelectPlan(ctx context.Context, sessionID, planID string) (entities.CheckoutSession, error)
	SubmitCustomer(ctx context.Context, sessionID string, c entities.Customer) (entities.CheckoutSession, error)
	ChooseMethod(ctx context.Context, sessionID string, m entities.PaymentMethod) (entities.CheckoutSession, error)
	SubmitCard(ctx context.Context, sessionID string, card entities.CardDraft) (entities.CheckoutSession, error)
	Retry(ctx context.Context, sessionID string) (entities.CheckoutSession, error)
	Continue(ctx context.Context, sessionID string) (entities.CheckoutSession, error)
	Abandon(ctx context.Context, sessionID string) error
}

// CheckoutUseCase owns the live checkout sessions. Each session runs as an
// isolated actor: a goroutine draining a mailbox of commands and events, so
// all transition logic is single-threaded per session and two sessions never
// interact.
type CheckoutUseCase struct {
	planRepo    interfaces.IPlanRepository
	gateway     interfaces.IPaymentGateway
	tokenizer   interfaces.ICardTokenizer
	settlements interfaces.ISettlementEvents

	mu       sync.Mutex
	sessions map[string]*checkout

	paymentWindow time.Duration
	successDelay  time.Duration
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(planRepo interfaces.IPlanRepository, gateway interfaces.IPaymentGateway, tokenizer interfaces.ICardTokenizer, settlements interfaces.ISettlementEvents) *CheckoutUseCase {
	return &CheckoutUseCase{
		planRepo:      planRepo,
		gateway:       gateway,
		tokenizer:     tokenizer,
		settlements:   settlements,
		sessions:      make(map[string]*checkout),
		paymentWindow: defaultPaymentWindow,
		successDelay:  defaultSuccessDelay,
	}
}

func (u *CheckoutUseCase) Start(ctx context.Context, planID string) (entities.CheckoutSession, error) {
	session := entities.CheckoutSession{
		ID:        uuid.NewString(),
		Step:      entities.StepPlan,
		CreatedAt: time.Now().UTC(),
	}

	if planID = strings.TrimSpace(planID); planID != "" {
		plan, err := u.loadPlan(ctx, planID)
		if err != nil {
			return entities.CheckoutSession{}, err
		}
		session.Plan = &plan
		session.Step = entities.StepCustomer
	}

	c := newCheckout(u, session)

	u.mu.Lock()
	u.sessions[session.ID] = c
	u.mu.Unlock()

	go c.run()

	log.Printf("[checkout][usecase] session started session_id=%s step=%s plan_id=%q", session.ID, session.Step, planID)
	return c.snapshot(), nil
}

func (u *CheckoutUseCase) Get(_ context.Context, sessionID string) (entities.CheckoutSession, error) {
	c, err := u.lookup(sessionID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	return c.snapshot(), nil
}

func (u *CheckoutUseCase) SelectPlan(ctx context.Context, sessionID, planID string) (entities.CheckoutSession, error) {
	c, err := u.lookup(sessionID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	plan, err := u.loadPlan(ctx, planID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	return c.command(cmdSelectPlan{ctx: ctx, plan: plan, reply: make(chan cmdResult, 1)})
}

func (u *CheckoutUseCase) SubmitCustomer(ctx context.Context, sessionID string, customer entities.Customer) (entities.CheckoutSession, error) {
	c, err := u.lookup(sessionID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	return c.command(cmdSubmitCustomer{ctx: ctx, customer: customer, reply: make(chan cmdResult, 1)})
}

func (u *CheckoutUseCase) ChooseMethod(ctx context.Context, sessionID string, method entities.PaymentMethod) (entities.CheckoutSession, error) {
	c, err := u.lookup(sessionID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	return c.command(cmdChooseMethod{ctx: ctx, method: method, reply: make(chan cmdResult, 1)})
}

func (u *CheckoutUseCase) SubmitCard(ctx context.Context, sessionID string, card entities.CardDraft) (entities.CheckoutSession, error) {
	c, err := u.lookup(sessionID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	return c.command(cmdSubmitCard{ctx: ctx, card: card, reply: make(chan cmdResult, 1)})
}

func (u *CheckoutUseCase) Retry(_ context.Context, sessionID string) (entities.CheckoutSession, error) {
	c, err := u.lookup(sessionID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	return c.command(cmdRetry{reply: make(chan cmdResult, 1)})
}

func (u *CheckoutUseCase) Continue(_ context.Context, sessionID string) (entities.CheckoutSession, error) {
	c, err := u.lookup(sessionID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	return c.command(cmdContinue{reply: make(chan cmdResult, 1)})
}

// Abandon tears the session down: settlement subscription and expiration
// timer are released before the session is dropped, so no stray late event
// can reach a discarded session.
func (u *CheckoutUseCase) Abandon(_ context.Context, sessionID string) error {
	c, err := u.lookup(sessionID)
	if err != nil {
		return err
	}

	u.mu.Lock()
	delete(u.sessions, sessionID)
	u.mu.Unlock()

	_, err = c.command(cmdAbandon{reply: make(chan cmdResult, 1)})
	log.Printf("[checkout][usecase] session abandoned session_id=%s", sessionID)
	return err
}

func (u *CheckoutUseCase) lookup(sessionID string) (*checkout, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	c, ok := u.sessions[strings.TrimSpace(sessionID)]
	if !ok {
		return nil, ErrCheckoutSessionNotFound
	}
	return c, nil
}

func (u *CheckoutUseCase) loadPlan(ctx context.Context, planID string) (entities.Plan, error) {
	if u.planRepo == nil {
		return entities.Plan{}, errors.New("plan repository not configured")
	}
	plan, err := u.planRepo.GetByID(ctx, strings.TrimSpace(planID))
	if err != nil {
		return entities.Plan{}, err
	}
	if plan.ID == "" || !plan.Active {
		return entities.Plan{}, ErrPlanNotFound
	}
	return plan, nil
}

// checkout is the per-session actor. Only run() touches session; everything
// else goes through the mailbox or reads the published snapshot.
type checkout struct {
	uc      *CheckoutUseCase
	mailbox chan checkoutMsg
	closed  chan struct{}

	session entities.CheckoutSession

	sub     interfaces.ISettlementSubscription
	timer   *expirationTimer
	watcher chan struct{} // closes the settlement watcher goroutine

	viewMu sync.RWMutex
	view   entities.CheckoutSession
}

func newCheckout(uc *CheckoutUseCase, session entities.CheckoutSession) *checkout {
	c := &checkout{
		uc:      uc,
		mailbox: make(chan checkoutMsg, mailboxSize),
		closed:  make(chan struct{}),
		session: session,
	}
	c.publish()
	return c
}

// snapshot returns the last published view of the session. It does not go
// through the mailbox so the UI can read state while a network call has the
// loop suspended on the processing step.
func (c *checkout) snapshot() entities.CheckoutSession {
	c.viewMu.RLock()
	defer c.viewMu.RUnlock()
	return c.view
}

func (c *checkout) publish() {
	c.viewMu.Lock()
	c.view = c.session
	c.viewMu.Unlock()
}

// command posts a synchronous message and waits for the loop's reply.
func (c *checkout) command(msg checkoutMsg) (entities.CheckoutSession, error) {
	var reply chan cmdResult
	switch m := msg.(type) {
	case cmdSelectPlan:
		reply = m.reply
	case cmdSubmitCustomer:
		reply = m.reply
	case cmdChooseMethod:
		reply = m.reply
	case cmdSubmitCard:
		reply = m.reply
	case cmdRetry:
		reply = m.reply
	case cmdContinue:
		reply = m.reply
	case cmdAbandon:
		reply = m.reply
	}

	select {
	case c.mailbox <- msg:
	case <-c.closed:
		return entities.CheckoutSession{}, ErrCheckoutSessionNotFound
	}

	select {
	case res := <-reply:
		return res.session, res.err
	case <-c.closed:
		return c.snapshot(), nil
	}
}

// post delivers an asynchronous event, dropping it if the session is gone.
func (c *checkout) post(msg checkoutMsg) {
	select {
	case c.mailbox <- msg:
	case <-c.closed:
	}
}

func (c *checkout) run() {
	for msg := range c.mailbox {
		if c.dispatch(msg) {
			return
		}
	}
}

// dispatch is the single transition function: (current step, message) -> new
// state. It returns true when the session is torn down and the loop must end.
func (c *checkout) dispatch(msg checkoutMsg) (done bool) {
	switch m := msg.(type) {
	case cmdSelectPlan:
		m.reply <- c.reply(c.handleSelectPlan(m))
	case cmdSubmitCustomer:
		m.reply <- c.reply(c.handleSubmitCustomer(m))
	case cmdChooseMethod:
		m.reply <- c.reply(c.handleChooseMethod(m))
	case cmdSubmitCard:
		m.reply <- c.reply(c.handleSubmitCard(m))
	case cmdRetry:
		m.reply <- c.reply(c.handleRetry())
	case cmdContinue:
		m.reply <- c.reply(c.handleContinue())
	case cmdAbandon:
		c.teardownListeners()
		close(c.closed)
		m.reply <- c.reply(nil)
		return true
	case evtSettled:
		c.handleSettled(m)
	case evtExpired:
		c.handleExpired(m)
	case evtAutoAdvance:
		c.handleAutoAdvance()
	}
	return false
}

func (c *checkout) reply(err error) cmdResult {
	c.publish()
	return cmdResult{session: c.snapshot(), err: err}
}

func (c *checkout) handleSelectPlan(m cmdSelectPlan) error {
	if c.session.Step != entities.StepPlan {
		return ErrStepNotAllowed
	}
	plan := m.plan
	c.session.Plan = &plan
	c.session.Step = entities.StepCustomer
	log.Printf("[checkout][session] plan selected session_id=%s plan_id=%s", c.session.ID, plan.ID)
	return nil
}

func (c *checkout) handleSubmitCustomer(m cmdSubmitCustomer) error {
	if c.session.Step != entities.StepCustomer {
		return ErrStepNotAllowed
	}
	if err := validateCustomer(m.customer); err != nil {
		log.Printf("[checkout][session] customer rejected session_id=%s err=%v", c.session.ID, err)
		return err
	}
	customer := m.customer
	customer.TaxID = validation.Digits(customer.TaxID)
	c.session.Customer = &customer
	c.session.Step = entities.StepPaymentMethod
	log.Printf("[checkout][session] customer accepted session_id=%s", c.session.ID)
	return nil
}

func (c *checkout) handleChooseMethod(m cmdChooseMethod) error {
	if c.session.Step != entities.StepPaymentMethod {
		return ErrStepNotAllowed
	}
	switch m.method {
	case entities.MethodCreditCard:
		c.session.PaymentMethod = m.method
		c.session.Step = entities.StepPayment
		return nil
	case entities.MethodPix, entities.MethodBoleto:
		c.session.PaymentMethod = m.method
		log.Printf("[checkout][session] method chosen session_id=%s method=%s", c.session.ID, m.method)
		c.process(m.ctx)
		return nil
	default:
		return ErrInvalidPaymentMethod
	}
}

func (c *checkout) handleSubmitCard(m cmdSubmitCard) error {
	if c.session.Step != entities.StepPayment {
		return ErrStepNotAllowed
	}
	if err := validateCard(m.card); err != nil {
		return err
	}

	draft := m.card
	c.session.CardDraft = &draft

	tokenized, err := c.uc.tokenizer.Tokenize(m.ctx, draft)
	if err != nil {
		// Draft stays on the session so the customer can correct it; the
		// step does not advance.
		log.Printf("[checkout][session] tokenization failed session_id=%s err=%v", c.session.ID, err)
		return fmt.Errorf("%w: %v", ErrTokenizationFailed, err)
	}

	tokenized.Installments = draft.Installments
	c.session.CardDraft = nil
	c.session.TokenizedCard = &tokenized
	log.Printf("[checkout][session] card tokenized session_id=%s brand=%s last_four=%s", c.session.ID, tokenized.Brand, tokenized.LastFour)

	c.process(m.ctx)
	return nil
}

// process runs the strict charge sequence: customer upsert, then charge
// creation. A failure at either point is terminal for the attempt; nothing is
// retried automatically.
func (c *checkout) process(ctx context.Context) {
	c.session.Step = entities.StepProcessing
	c.publish()

	gatewayCustomerID := c.session.GatewayCustomerID
	if gatewayCustomerID == "" {
		id, err := c.uc.gateway.UpsertCustomer(ctx, *c.session.Customer)
		if err != nil {
			log.Printf("[checkout][session] customer upsert failed session_id=%s err=%v", c.session.ID, err)
			c.fail(entities.FailureCustomerSync, "we could not register your data with the payment provider, please try again")
			return
		}
		gatewayCustomerID = id
		c.session.GatewayCustomerID = id
	}

	result, err := c.uc.gateway.CreateCharge(ctx, interfaces.ChargeInput{
		GatewayCustomerID: gatewayCustomerID,
		Plan:              *c.session.Plan,
		Customer:          *c.session.Customer,
		Method:            c.session.PaymentMethod,
		Card:              c.session.TokenizedCard,
	})
	if err != nil {
		var declined *interfaces.DeclinedError
		if errors.As(err, &declined) {
			log.Printf("[checkout][session] charge declined session_id=%s reason=%s", c.session.ID, declined.Reason)
			c.fail(entities.FailureChargeDeclined, declined.Reason)
			return
		}
		log.Printf("[checkout][session] charge creation failed session_id=%s err=%v", c.session.ID, err)
		c.fail(entities.FailureChargeTransport, "we could not reach the payment provider, please try again")
		return
	}

	switch result.Status {
	case entities.ChargeStatusPaid:
		log.Printf("[checkout][session] charge settled synchronously session_id=%s transaction_id=%s", c.session.ID, result.TransactionID)
		c.approve()
	case entities.ChargeStatusFailed:
		c.fail(entities.FailureChargeDeclined, "the payment was refused by the provider")
	default:
		// pending: card charges that come back non-final wait on the same
		// settlement channel as pix/boleto.
		c.awaitSettlement(result)
	}
}

func (c *checkout) awaitSettlement(result entities.ChargeResult) {
	dueAt := result.DueAt
	if dueAt.IsZero() {
		dueAt = time.Now().UTC().Add(c.uc.paymentWindow)
	}

	c.session.Pending = &entities.PendingTransaction{
		TransactionID: result.TransactionID,
		Method:        c.session.PaymentMethod,
		DueAt:         dueAt,
		Artifacts:     result.Artifacts,
	}
	c.session.Step = entities.StepAwaitingPayment

	txID := result.TransactionID
	c.sub = c.uc.settlements.Subscribe(txID)
	c.watcher = make(chan struct{})
	go c.watchSettlement(c.sub, c.watcher, txID)
	c.timer = armExpiration(dueAt, func() { c.post(evtExpired{transactionID: txID}) })

	log.Printf("[checkout][session] awaiting payment session_id=%s transaction_id=%s due_at=%s", c.session.ID, txID, dueAt.Format(time.RFC3339))
}

// watchSettlement funnels the subscription's single paid notification into the
// mailbox. stop unblocks it on teardown.
func (c *checkout) watchSettlement(sub interfaces.ISettlementSubscription, stop chan struct{}, txID string) {
	select {
	case _, ok := <-sub.Paid():
		if ok {
			c.post(evtSettled{transactionID: txID})
		}
	case <-stop:
	}
}

func (c *checkout) handleSettled(m evtSettled) {
	if c.session.Step != entities.StepAwaitingPayment || c.session.Pending == nil || c.session.Pending.TransactionID != m.transactionID {
		// Late or duplicate event after the race was already decided.
		return
	}
	log.Printf("[checkout][session] settlement confirmed session_id=%s transaction_id=%s", c.session.ID, m.transactionID)
	c.teardownListeners()
	c.approve()
	c.publish()
}

func (c *checkout) handleExpired(m evtExpired) {
	if c.session.Step != entities.StepAwaitingPayment || c.session.Pending == nil || c.session.Pending.TransactionID != m.transactionID {
		return
	}
	log.Printf("[checkout][session] payment window expired session_id=%s transaction_id=%s", c.session.ID, m.transactionID)
	c.teardownListeners()
	c.fail(entities.FailureExpired, "the payment window expired, generate a new charge to continue")
	c.publish()
}

func (c *checkout) handleAutoAdvance() {
	if c.session.Step != entities.StepApproved {
		return
	}
	c.session.Step = entities.StepSuccess
	c.publish()
}

func (c *checkout) handleRetry() error {
	if c.session.Step != entities.StepError {
		return ErrStepNotAllowed
	}
	// A retry starts a fresh attempt from payment-method: everything the
	// failed attempt introduced is reset, the session identity (plan,
	// customer) is kept.
	c.session.PaymentMethod = ""
	c.session.CardDraft = nil
	c.session.TokenizedCard = nil
	c.session.Pending = nil
	c.session.Result = nil
	c.session.Step = entities.StepPaymentMethod
	log.Printf("[checkout][session] retry session_id=%s", c.session.ID)
	return nil
}

func (c *checkout) handleContinue() error {
	if c.session.Step != entities.StepApproved {
		return ErrStepNotAllowed
	}
	c.session.Step = entities.StepSuccess
	return nil
}

func (c *checkout) approve() {
	c.session.CardDraft = nil
	c.session.Step = entities.StepApproved
	c.session.Result = &entities.TerminalResult{Approved: true}

	if c.session.PaymentMethod != entities.MethodCreditCard {
		// The pix/boleto confirmation screen advances on its own; card
		// checkouts wait for an explicit continue.
		time.AfterFunc(c.uc.successDelay, func() { c.post(evtAutoAdvance{}) })
	}
}

func (c *checkout) fail(kind entities.FailureKind, reason string) {
	c.session.CardDraft = nil
	c.session.Step = entities.StepError
	c.session.Result = &entities.TerminalResult{Approved: false, Kind: kind, Reason: reason}
}

// teardownListeners releases the settlement subscription and expiration timer.
// Safe to call repeatedly; both sides are idempotent.
func (c *checkout) teardownListeners() {
	if c.sub != nil {
		c.sub.Unsubscribe()
		c.sub = nil
	}
	if c.watcher != nil {
		close(c.watcher)
		c.watcher = nil
	}
	if c.timer != nil {
		c.timer.cancel()
		c.timer = nil
	}
}

func validateCustomer(c entities.Customer) error {
	if err := validation.Name(c.Name); err != nil {
		return &FieldError{Field: "name", Err: err}
	}
	if err := validation.Email(c.Email); err != nil {
		return &FieldError{Field: "email", Err: err}
	}
	switch c.TaxIDKind {
	case entities.TaxIDIndividual:
		if err := validation.CPF(c.TaxID); err != nil {
			return &FieldError{Field: "tax_id", Err: err}
		}
	case entities.TaxIDOrganization:
		if err := validation.CNPJ(c.TaxID); err != nil {
			return &FieldError{Field: "tax_id", Err: err}
		}
	default:
		return &FieldError{Field: "tax_id_kind", Err: errors.New("must be cpf or cnpj")}
	}
	if err := validation.Phone(c.Phone); err != nil {
		return &FieldError{Field: "phone", Err: err}
	}
	if err := validation.PostalCode(c.Address.PostalCode); err != nil {
		return &FieldError{Field: "postal_code", Err: err}
	}
	return nil
}

func validateCard(card entities.CardDraft) error {
	if err := validation.Name(card.HolderName); err != nil {
		return &FieldError{Field: "holder_name", Err: err}
	}
	if err := validation.CardNumber(card.Number); err != nil {
		return &FieldError{Field: "card_number", Err: err}
	}
	if err := validation.CardExpiry(card.ExpiryMonth, card.ExpiryYear, time.Now()); err != nil {
		return &FieldError{Field: "expiry", Err: err}
	}
	if err := validation.CVV(card.CVV, validation.CardBrand(card.Number)); err != nil {
		return &FieldError{Field: "cvv", Err: err}
	}
	return nil
}
