package mbank

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRefreshDerivesHeldCurrencies(t *testing.T) {
	svc := newFakeService()
	svc.session.Wallets = []Wallet{
		{Currency: "TWD", Balance: decimal.NewFromInt(100)},
		{Currency: "USD", Balance: decimal.NewFromInt(5)},
		{Currency: "TWD", Balance: decimal.NewFromInt(1)}, // duplicate kept out
	}
	store := NewSessionStore(svc)

	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() = %v, want nil", err)
	}

	got := store.MyCurrencies()
	want := []string{"TWD", "USD"}
	if len(got) != len(want) {
		t.Fatalf("MyCurrencies() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MyCurrencies()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if !store.Holds("USD") {
		t.Errorf("Holds(USD) = false, want true")
	}
	if store.Holds("JPY") {
		t.Errorf("Holds(JPY) = true, want false")
	}
}

func TestRefreshExpiredSession(t *testing.T) {
	svc := newFakeService()
	store := NewSessionStore(svc)
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() = %v, want nil", err)
	}

	svc.session.LoggedIn = false
	err := store.Refresh(context.Background())
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("Refresh() = %v, want ErrSessionExpired", err)
	}
}

func TestRefreshReplacesSnapshotWholesale(t *testing.T) {
	svc := newFakeService()
	store := NewSessionStore(svc)
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	// A later refresh must not leave traces of the previous snapshot.
	svc.session.Wallets = []Wallet{{Currency: "JPY", Balance: decimal.NewFromInt(500)}}
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	if store.Holds("USD") {
		t.Errorf("Holds(USD) = true after USD wallet disappeared, want false")
	}
	if got := len(store.Session().Wallets); got != 1 {
		t.Errorf("len(Session().Wallets) = %d, want 1", got)
	}
}
