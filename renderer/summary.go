package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/mbank"
)

// SessionMarkdown renders the account summary: identity, wallets and the
// total valuation in the reference currency.
func SessionMarkdown(s mbank.Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", s.Name)
	fmt.Fprintf(&b, "Role: %s", s.Role)
	if s.Email != "" {
		fmt.Fprintf(&b, " · %s", s.Email)
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b)

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintln(w, "| Currency | Balance |")
		fmt.Fprintln(w, "|----------|--------:|")
		for _, wallet := range s.Wallets {
			fmt.Fprintf(w, "| %s | %s |\n", wallet.Currency, wallet.Money())
		}
		return len(s.Wallets) > 0
	})
	if len(s.Wallets) == 0 {
		fmt.Fprintln(&b, "_no wallets yet_")
	}

	fmt.Fprintf(&b, "\n**Total assets**: %s\n", mbank.M(s.TotalValue, mbank.ReferenceCurrency))
	return b.String()
}
