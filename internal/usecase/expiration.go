package usecase

import (
	"sync"
	"time"
)

// expirationTimer schedules a single callback at the provider-issued due time.
// Cancel is idempotent and is a no-op after the callback already fired.
type expirationTimer struct {
	timer *time.Timer
	once  sync.Once
}

// armExpiration fires fn once at dueAt. A due time already in the past fires
// immediately; the due time is advisory, so the session still honors a
// settlement event processed before the expiration signal.
func armExpiration(dueAt time.Time, fn func()) *expirationTimer {
	d := time.Until(dueAt)
	if d < 0 {
		d = 0
	}
	return &expirationTimer{timer: time.AfterFunc(d, fn)}
}

func (t *expirationTimer) cancel() {
	if t == nil {
		return
	}
	t.once.Do(func() { t.timer.Stop() })
}
