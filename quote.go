package mbank

import (
	"context"

	"github.com/shopspring/decimal"
)

// QuotePreviewer derives a live conversion estimate as the user edits an
// exchange form. It is a read-only lookup with no side effects: it may be
// fired on every input change, duplicate in-flight requests are tolerated
// and the last response wins.
type QuotePreviewer struct {
	svc Service
}

func NewQuotePreviewer(svc Service) *QuotePreviewer {
	return &QuotePreviewer{svc: svc}
}

// Preview returns the quote for the current form inputs. shown is false when
// a required input is missing or the amount is not positive: the preview is
// simply hidden, it is not an error state and no request is sent.
func (p *QuotePreviewer) Preview(ctx context.Context, from, to string, amount decimal.Decimal) (q Quote, shown bool, err error) {
	if from == "" || to == "" || !amount.IsPositive() {
		return Quote{}, false, nil
	}
	q, err = p.svc.Quote(ctx, from, to, amount)
	if err != nil {
		return Quote{}, true, err
	}
	return q, true, nil
}
