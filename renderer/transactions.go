package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/mbank"
)

// TransactionsMarkdown renders the ledger history as a table, newest last,
// exactly in server order.
func TransactionsMarkdown(records []mbank.TransactionRecord) string {
	if len(records) == 0 {
		return "_no transactions_\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "| Date | Type | Currency | Amount | Balance | Note | Rate |")
	fmt.Fprintln(&b, "|------|------|----------|-------:|--------:|------|-----:|")
	for _, r := range records {
		rate := "-"
		if r.Rate != 0 {
			rate = fmt.Sprintf("%.4f", r.Rate)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			r.Date, r.Type, r.Currency,
			mbank.M(r.Amount, r.Currency).SignedString(),
			mbank.M(r.BalanceAfter, r.Currency),
			r.Note, rate)
	}
	return b.String()
}
