package usecase

import (
	"testing"
	"time"
)

func TestArmExpiration(t *testing.T) {
	t.Run("fires at due time", func(t *testing.T) {
		fired := make(chan struct{})
		armExpiration(time.Now().Add(10*time.Millisecond), func() { close(fired) })

		select {
		case <-fired:
		case <-time.After(time.Second):
			t.Fatal("timer never fired")
		}
	})

	t.Run("past due fires immediately", func(t *testing.T) {
		fired := make(chan struct{})
		armExpiration(time.Now().Add(-time.Minute), func() { close(fired) })

		select {
		case <-fired:
		case <-time.After(time.Second):
			t.Fatal("timer never fired")
		}
	})

	t.Run("cancel prevents the callback", func(t *testing.T) {
		fired := make(chan struct{}, 1)
		timer := armExpiration(time.Now().Add(30*time.Millisecond), func() { fired <- struct{}{} })
		timer.cancel()

		select {
		case <-fired:
			t.Fatal("cancelled timer fired")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		timer := armExpiration(time.Now().Add(time.Hour), func() {})
		timer.cancel()
		timer.cancel()
	})

	t.Run("cancel after fire is a no-op", func(t *testing.T) {
		fired := make(chan struct{})
		timer := armExpiration(time.Now().Add(-time.Second), func() { close(fired) })
		<-fired
		timer.cancel()
	})

	t.Run("nil timer cancel is safe", func(t *testing.T) {
		var timer *expirationTimer
		timer.cancel()
	})
}
