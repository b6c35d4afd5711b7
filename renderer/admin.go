package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/etnz/mbank"
)

// UsersMarkdown renders the administrative roster.
func UsersMarkdown(users []mbank.User) string {
	if len(users) == 0 {
		return "_no users_\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "| ID | Name | Email | Role | Status |")
	fmt.Fprintln(&b, "|---:|------|-------|------|--------|")
	for _, u := range users {
		status := "active"
		if !u.Active {
			status = "suspended"
		}
		email := u.Email
		if email == "" {
			email = "-"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n", u.ID, u.Name, email, u.Role, status)
	}
	return b.String()
}

// UserDetailMarkdown renders one user's profile and wallets.
func UserDetailMarkdown(detail mbank.UserDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (#%d)\n\n", detail.Name, detail.ID)
	status := "active"
	if !detail.Active {
		status = "suspended"
	}
	fmt.Fprintf(&b, "Role: %s · Status: %s", detail.Role, status)
	if detail.Email != "" {
		fmt.Fprintf(&b, " · %s", detail.Email)
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b)
	if len(detail.Wallets) == 0 {
		fmt.Fprintln(&b, "_no wallets_")
		return b.String()
	}
	fmt.Fprintln(&b, "| Currency | Balance |")
	fmt.Fprintln(&b, "|----------|--------:|")
	for _, w := range detail.Wallets {
		fmt.Fprintf(&b, "| %s | %s |\n", w.Currency, w.Money())
	}
	return b.String()
}

// StatsMarkdown renders the system-wide dashboard summary.
func StatsMarkdown(stats mbank.Stats) string {
	var b strings.Builder
	fmt.Fprintln(&b, "# System Stats")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "- Users: %d (%d active)\n", stats.TotalUsers, stats.ActiveUsers)
	fmt.Fprintf(&b, "- Total assets: %.2f %s\n", stats.TotalAssets, mbank.ReferenceCurrency)
	for _, currency := range sortedFloatKeys(stats.AssetsByCurrency) {
		fmt.Fprintf(&b, "  - %s: %.2f\n", currency, stats.AssetsByCurrency[currency])
	}
	return b.String()
}

// ManualRatesMarkdown renders the manually-entered exchange-rate table.
func ManualRatesMarkdown(rates map[string]float64) string {
	if len(rates) == 0 {
		return "_no manual rates set_\n"
	}
	var b strings.Builder
	fmt.Fprintln(&b, "| Pair | Rate |")
	fmt.Fprintln(&b, "|------|-----:|")
	for _, pair := range sortedFloatKeys(rates) {
		fmt.Fprintf(&b, "| %s | %.6f |\n", pair, rates[pair])
	}
	return b.String()
}

// RatesMarkdown renders the public exchange-rate board.
func RatesMarkdown(rates []mbank.Rate) string {
	if len(rates) == 0 {
		return "_no rates available_\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Exchange Rates (base %s)\n\n", mbank.ReferenceCurrency)
	for _, r := range rates {
		fmt.Fprintf(&b, "- %s: %.6f\n", r.Name, r.Rate)
	}
	return b.String()
}

func sortedFloatKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
