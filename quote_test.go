package mbank

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPreviewHiddenOnIncompleteInput(t *testing.T) {
	tests := []struct {
		name   string
		from   string
		to     string
		amount decimal.Decimal
	}{
		{"no from", "", "USD", decimal.NewFromInt(10)},
		{"no to", "TWD", "", decimal.NewFromInt(10)},
		{"zero amount", "TWD", "USD", decimal.Zero},
		{"negative amount", "TWD", "USD", decimal.NewFromInt(-1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newFakeService()
			p := NewQuotePreviewer(svc)

			_, shown, err := p.Preview(context.Background(), tc.from, tc.to, tc.amount)
			if err != nil {
				t.Fatalf("Preview() = %v, want nil", err)
			}
			if shown {
				t.Errorf("Preview() shown = true, want hidden")
			}
			if n := svc.calls["Quote"]; n != 0 {
				t.Errorf("Quote reached the server %d times, want 0", n)
			}
		})
	}
}

func TestPreviewQuotes(t *testing.T) {
	svc := newFakeService()
	svc.quote = Quote{ToAmount: decimal.NewFromInt(310), Rate: 31.0}
	p := NewQuotePreviewer(svc)

	q, shown, err := p.Preview(context.Background(), "USD", "TWD", decimal.NewFromInt(10))
	if err != nil {
		t.Fatalf("Preview() = %v, want nil", err)
	}
	if !shown {
		t.Fatalf("Preview() shown = false, want true")
	}
	if q.From != "USD" || q.To != "TWD" {
		t.Errorf("Preview() quote = %+v, want USD to TWD", q)
	}
	if !q.ToAmount.Equal(decimal.NewFromInt(310)) {
		t.Errorf("Preview() ToAmount = %s, want 310", q.ToAmount)
	}
}
