package usecase

import (
	"context"

	"rede_saude/internal/domain/entities"
)

// checkoutMsg is the closed set of messages a checkout actor processes. User
// commands, settlement events and timer signals all arrive through the same
// mailbox, one at a time, so no two of them ever mutate the session
// concurrently.
type checkoutMsg interface {
	isCheckoutMsg()
}

// cmdResult is what a synchronous command replies with: a copy of the session
// after the transition, or the error that prevented it.
type cmdResult struct {
	session entities.CheckoutSession
	err     error
}

type cmdSelectPlan struct {
	ctx   context.Context
	plan  entities.Plan
	reply chan cmdResult
}

type cmdSubmitCustomer struct {
	ctx      context.Context
	customer entities.Customer
	reply    chan cmdResult
}

type cmdChooseMethod struct {
	ctx    context.Context
	method entities.PaymentMethod
	reply  chan cmdResult
}

type cmdSubmitCard struct {
	ctx   context.Context
	card  entities.CardDraft
	reply chan cmdResult
}

type cmdRetry struct {
	reply chan cmdResult
}

type cmdContinue struct {
	reply chan cmdResult
}

type cmdAbandon struct {
	reply chan cmdResult
}

// evtSettled is posted by the settlement subscription watcher when the
// provider confirms payment of the identified transaction.
type evtSettled struct {
	transactionID string
}

// evtExpired is posted by the expiration timer when the payment window for
// the identified transaction closes.
type evtExpired struct {
	transactionID string
}

// evtAutoAdvance moves approved pix/boleto sessions to success after the
// confirmation screen delay.
type evtAutoAdvance struct{}

func (cmdSelectPlan) isCheckoutMsg()     {}
func (cmdSubmitCustomer) isCheckoutMsg() {}
func (cmdChooseMethod) isCheckoutMsg()   {}
func (cmdSubmitCard) isCheckoutMsg()     {}
func (cmdRetry) isCheckoutMsg()          {}
func (cmdContinue) isCheckoutMsg()       {}
func (cmdAbandon) isCheckoutMsg()        {}
func (evtSettled) isCheckoutMsg()        {}
func (evtExpired) isCheckoutMsg()        {}
func (evtAutoAdvance) isCheckoutMsg()    {}
