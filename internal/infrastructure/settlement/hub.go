// Package settlement is the in-process push channel that confirms payment of
// pending transactions. Subscriptions are keyed by transaction id and deliver
// at most one paid notification; the provider webhook feeds the hub, the
// checkout orchestrator consumes it.
package settlement

import (
	"log"
	"sync"

	"rede_saude/internal/usecase/interfaces"
)

// Hub fans provider notifications out to per-transaction subscriptions.
//
// A transaction id has at most one live subscription: the checkout session is
// the channel's only consumer and each session owns one pending transaction.
type Hub struct {
	mu   sync.Mutex
	subs map[string]*Subscription
}

var _ interfaces.ISettlementEvents = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{subs: make(map[string]*Subscription)}
}

// Subscribe opens a subscription for the transaction. The orchestrator
// subscribes before exposing the pending transaction to anyone, so a paid
// notification can never race ahead of its subscription.
func (h *Hub) Subscribe(transactionID string) interfaces.ISettlementSubscription {
	sub := &Subscription{
		hub:           h,
		transactionID: transactionID,
		paid:          make(chan struct{}, 1),
	}

	h.mu.Lock()
	h.subs[transactionID] = sub
	h.mu.Unlock()

	log.Printf("[settlement][hub] subscribed transaction_id=%s", transactionID)
	return sub
}

// Publish delivers the terminal paid event for a transaction. Publishing to
// an unknown or already-completed transaction is a no-op: late webhooks after
// session teardown are silently ignored.
func (h *Hub) Publish(transactionID string) {
	h.mu.Lock()
	sub, ok := h.subs[transactionID]
	if ok {
		delete(h.subs, transactionID)
	}
	h.mu.Unlock()

	if !ok {
		log.Printf("[settlement][hub] no subscriber transaction_id=%s (ignored)", transactionID)
		return
	}

	sub.complete()
	log.Printf("[settlement][hub] paid delivered transaction_id=%s", transactionID)
}

// Subscription delivers at most one paid notification, then becomes inert.
type Subscription struct {
	hub           *Hub
	transactionID string

	once sync.Once
	paid chan struct{}
}

var _ interfaces.ISettlementSubscription = (*Subscription)(nil)

// Paid yields a single value when the provider confirms settlement, then the
// channel is closed. Silence means the charge is still pending.
func (s *Subscription) Paid() <-chan struct{} {
	return s.paid
}

// complete emits the one paid event. The once guard means a duplicate webhook
// can never double-deliver.
func (s *Subscription) complete() {
	s.once.Do(func() {
		s.paid <- struct{}{}
		close(s.paid)
	})
}

// Unsubscribe tears the subscription down. Idempotent, and a no-op after the
// paid event was already delivered.
func (s *Subscription) Unsubscribe() {
	s.hub.mu.Lock()
	if current, ok := s.hub.subs[s.transactionID]; ok && current == s {
		delete(s.hub.subs, s.transactionID)
	}
	s.hub.mu.Unlock()

	s.once.Do(func() { close(s.paid) })
}
