package mbank

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneySignedString(t *testing.T) {
	if got := M(0, "TWD").SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want %q", got, "-")
	}
	if got := M(100, "TWD").SignedString(); !strings.HasPrefix(got, "+") {
		t.Errorf("SignedString(100) = %q, want a + prefix", got)
	}
	if got := M(-100, "TWD").SignedString(); strings.HasPrefix(got, "+") {
		t.Errorf("SignedString(-100) = %q, want no + prefix", got)
	}
}

func TestMoneyAdd(t *testing.T) {
	sum := M(100, "TWD").Add(M(25, "TWD"))
	if !sum.Amount().Equal(decimal.NewFromInt(125)) {
		t.Errorf("Add() = %s, want 125", sum.Amount())
	}
	if sum.Currency() != "TWD" {
		t.Errorf("Add() currency = %q, want TWD", sum.Currency())
	}

	// The empty currency is weak: it takes the other operand's currency.
	weak := Money{}.Add(M(5, "USD"))
	if weak.Currency() != "USD" {
		t.Errorf("zero Add() currency = %q, want USD", weak.Currency())
	}
}

func TestMoneyAddMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Add() with mismatched currencies did not panic")
		}
	}()
	M(1, "TWD").Add(M(1, "USD"))
}

func TestWalletMoney(t *testing.T) {
	w := Wallet{Currency: "USD", Balance: decimal.NewFromFloat(12.5)}
	m := w.Money()
	if m.Currency() != "USD" || !m.Amount().Equal(decimal.NewFromFloat(12.5)) {
		t.Errorf("Money() = %s %s, want 12.5 USD", m.Amount(), m.Currency())
	}
}
