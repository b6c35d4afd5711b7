// Package mbank is the client-side controller for a multi-currency personal
// banking service.
//
// The package holds the single source of truth for the authenticated session
// and its wallets (SessionStore), validates and submits money-moving intents
// (ActionDispatcher), derives live conversion previews (QuotePreviewer),
// assembles analytics series for the rendering layer (AnalyticsCoordinator),
// and reconciles dependent views after every successful mutation (ViewSync).
//
// Balances, transaction history, exchange rates and budgets are owned by the
// remote ledger service; this package only gathers inputs, rejects requests
// that are locally checkable, dispatches the rest, and keeps the visible state
// consistent. The HTTP binding lives in the bankapi subpackage, terminal
// rendering in renderer, and the CLI in cmd.
package mbank
