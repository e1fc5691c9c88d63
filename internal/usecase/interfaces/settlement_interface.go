package interfaces

// ISettlementSubscription is a live subscription for one pending transaction.
//
// Paid yields at most one value and is then closed; silence means the charge
// is still pending. Unsubscribe is idempotent and safe after natural
// completion.
type ISettlementSubscription interface {
	Paid() <-chan struct{}
	Unsubscribe()
}

// ISettlementEvents is the push channel that confirms settlement of pending
// transactions. The orchestrator is its only consumer; while a session waits,
// this channel is the sole source of truth for the paid transition.
type ISettlementEvents interface {
	Subscribe(transactionID string) ISettlementSubscription
}
