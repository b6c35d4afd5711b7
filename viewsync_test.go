package mbank

import (
	"context"
	"errors"
	"testing"

	"github.com/etnz/mbank/date"
	"github.com/shopspring/decimal"
)

func TestAfterMutationRefreshesActiveViewsOnly(t *testing.T) {
	svc := newFakeService()
	store := NewSessionStore(svc)
	sync := NewViewSync(store)

	var history, rates int
	sync.Handle(ViewHistory, func(context.Context) error { history++; return nil })
	sync.Handle(ViewRates, func(context.Context) error { rates++; return nil })
	sync.Activate(ViewHistory)

	if err := sync.AfterMutation(context.Background()); err != nil {
		t.Fatalf("AfterMutation() = %v, want nil", err)
	}

	if history != 1 {
		t.Errorf("active history view refreshed %d times, want 1", history)
	}
	if rates != 0 {
		t.Errorf("inactive rates view refreshed %d times, want 0", rates)
	}
	if n := svc.calls["Session"]; n != 1 {
		t.Errorf("session refreshed %d times, want 1", n)
	}
}

func TestAfterMutationSessionFailureIsTerminal(t *testing.T) {
	svc := newFakeService()
	svc.session.LoggedIn = false
	store := NewSessionStore(svc)
	sync := NewViewSync(store)

	var history int
	sync.Handle(ViewHistory, func(context.Context) error { history++; return nil })
	sync.Activate(ViewHistory)

	err := sync.AfterMutation(context.Background())
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("AfterMutation() = %v, want ErrSessionExpired", err)
	}
	if history != 0 {
		t.Errorf("view refreshed %d times after terminal session failure, want 0", history)
	}
}

func TestAfterMutationCollectsViewErrors(t *testing.T) {
	svc := newFakeService()
	store := NewSessionStore(svc)
	sync := NewViewSync(store)

	broken := errors.New("history fetch failed")
	var rates int
	sync.Handle(ViewHistory, func(context.Context) error { return broken })
	sync.Handle(ViewRates, func(context.Context) error { rates++; return nil })
	sync.Activate(ViewHistory)
	sync.Activate(ViewRates)

	err := sync.AfterMutation(context.Background())
	if !errors.Is(err, broken) {
		t.Fatalf("AfterMutation() = %v, want to contain %v", err, broken)
	}
	if rates != 1 {
		t.Errorf("rates view refreshed %d times, want 1: one broken view must not block the others", rates)
	}
}

func TestTransferRefreshesActiveHistory(t *testing.T) {
	svc := newFakeService()
	store := NewSessionStore(svc)
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	svc.calls = make(map[string]int)

	sync := NewViewSync(store)
	var history int
	sync.Handle(ViewHistory, func(context.Context) error { history++; return nil })
	sync.Activate(ViewHistory)

	d := NewActionDispatcher(svc, store, sync)
	if _, err := d.Transfer(context.Background(), "bob", decimal.NewFromInt(10), "TWD", date.Today(), ""); err != nil {
		t.Fatalf("Transfer() = %v, want nil", err)
	}

	if history != 1 {
		t.Errorf("history view refreshed %d times after transfer, want 1", history)
	}
	if n := svc.calls["Session"]; n != 1 {
		t.Errorf("session refreshed %d times after transfer, want 1", n)
	}
}
