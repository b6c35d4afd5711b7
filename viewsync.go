package mbank

import (
	"context"
	"errors"
)

// View enumerates the dependent views a mutation can invalidate. Each view
// has at most one refresh handler, invoked by ViewSync when the view is
// active; "what changed" is decoupled from "what is visible".
type View int

const (
	ViewWallets View = iota
	ViewHistory
	ViewCashFlow
	ViewFrequencies
	ViewBudget
	ViewRates
)

func (v View) String() string {
	switch v {
	case ViewWallets:
		return "wallets"
	case ViewHistory:
		return "history"
	case ViewCashFlow:
		return "cash-flow"
	case ViewFrequencies:
		return "frequencies"
	case ViewBudget:
		return "budget"
	case ViewRates:
		return "rates"
	default:
		return "unknown"
	}
}

// ViewSync is the reconciliation rule: after any successful mutating action
// the session is re-pulled unconditionally, and any currently active view is
// re-fetched with its last-used scoping inputs. Inactive views are not
// refreshed (pull-based consistency, not push).
type ViewSync struct {
	store    *SessionStore
	handlers map[View]func(context.Context) error
	active   map[View]bool
}

func NewViewSync(store *SessionStore) *ViewSync {
	return &ViewSync{
		store:    store,
		handlers: make(map[View]func(context.Context) error),
		active:   make(map[View]bool),
	}
}

// Handle registers the refresh handler for a view. Handlers are expected to
// re-run their fetch with the scoping inputs they last used.
func (s *ViewSync) Handle(v View, refresh func(context.Context) error) {
	s.handlers[v] = refresh
}

// Activate marks a view visible. Only active views take part in reconciliation.
func (s *ViewSync) Activate(v View)   { s.active[v] = true }
func (s *ViewSync) Deactivate(v View) { delete(s.active, v) }

// Active reports whether the view currently takes part in reconciliation.
func (s *ViewSync) Active(v View) bool { return s.active[v] }

// Refresh runs one view's handler immediately, whether or not the view is
// active. Views without a handler are a no-op.
func (s *ViewSync) Refresh(ctx context.Context, v View) error {
	if refresh, ok := s.handlers[v]; ok {
		return refresh(ctx)
	}
	return nil
}

// AfterMutation runs the reconciliation. It is only called after the mutating
// action's response was received, so it always observes post-mutation state.
// A session failure is terminal and returned immediately; view refresh
// failures are collected so one broken view does not hide the others.
func (s *ViewSync) AfterMutation(ctx context.Context) error {
	if err := s.store.Refresh(ctx); err != nil {
		return err
	}
	var errs []error
	for v, refresh := range s.handlers {
		if !s.active[v] {
			continue
		}
		if err := refresh(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
