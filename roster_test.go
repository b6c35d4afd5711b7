package mbank

import (
	"context"
	"testing"

	"github.com/etnz/mbank/date"
	"github.com/shopspring/decimal"
)

// fakeAdminService counts admin calls the same way fakeService does.
type fakeAdminService struct {
	calls map[string]int
}

func newFakeAdminService() *fakeAdminService {
	return &fakeAdminService{calls: make(map[string]int)}
}

func (f *fakeAdminService) count(method string) error {
	f.calls[method]++
	return nil
}

func (f *fakeAdminService) Users(ctx context.Context) ([]User, error) {
	return []User{{ID: 1, Name: "alice"}}, f.count("Users")
}

func (f *fakeAdminService) UserDetail(ctx context.Context, id int) (UserDetail, error) {
	return UserDetail{User: User{ID: id}}, f.count("UserDetail")
}

func (f *fakeAdminService) UserTransactions(ctx context.Context, id int, month date.Month) ([]TransactionRecord, error) {
	return nil, f.count("UserTransactions")
}

func (f *fakeAdminService) UpdateUser(ctx context.Context, id int, email, role string, active bool) error {
	return f.count("UpdateUser")
}

func (f *fakeAdminService) ResetPassword(ctx context.Context, id int) (string, error) {
	return "s3cret", f.count("ResetPassword")
}

func (f *fakeAdminService) ManualAdjustment(ctx context.Context, id int, currency string, amount decimal.Decimal, note string) error {
	return f.count("ManualAdjustment")
}

func (f *fakeAdminService) Stats(ctx context.Context) (Stats, error) {
	return Stats{}, f.count("Stats")
}

func (f *fakeAdminService) ManualRates(ctx context.Context) (map[string]float64, error) {
	return nil, f.count("ManualRates")
}

func (f *fakeAdminService) SaveManualRates(ctx context.Context, rates map[string]float64) error {
	return f.count("SaveManualRates")
}

var _ AdminService = (*fakeAdminService)(nil)

func TestUpdateRejectsUnknownRole(t *testing.T) {
	svc := newFakeAdminService()
	c := NewAdminRosterController(svc)

	err := c.Update(context.Background(), 1, "a@b.c", "superuser", true)
	if !IsValidation(err) {
		t.Fatalf("Update() = %v, want a validation error", err)
	}
	if n := svc.calls["UpdateUser"]; n != 0 {
		t.Errorf("UpdateUser reached the server %d times, want 0", n)
	}

	if err := c.Update(context.Background(), 1, "a@b.c", "admin", false); err != nil {
		t.Fatalf("Update() = %v, want nil", err)
	}
}

func TestAdjustValidations(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		amount   decimal.Decimal
		note     string
	}{
		{"missing currency", "", decimal.NewFromInt(10), "fix"},
		{"zero amount", "TWD", decimal.Zero, "fix"},
		{"missing note", "TWD", decimal.NewFromInt(10), ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newFakeAdminService()
			c := NewAdminRosterController(svc)

			err := c.Adjust(context.Background(), 1, tc.currency, tc.amount, tc.note)
			if !IsValidation(err) {
				t.Fatalf("Adjust() = %v, want a validation error", err)
			}
			if n := svc.calls["ManualAdjustment"]; n != 0 {
				t.Errorf("ManualAdjustment reached the server %d times, want 0", n)
			}
		})
	}

	// The sign only decides direction, a negative adjustment is valid.
	svc := newFakeAdminService()
	c := NewAdminRosterController(svc)
	if err := c.Adjust(context.Background(), 1, "TWD", decimal.NewFromInt(-500), "correction"); err != nil {
		t.Fatalf("Adjust() = %v, want nil", err)
	}
}

func TestSaveManualRatesRejectsNonPositive(t *testing.T) {
	svc := newFakeAdminService()
	c := NewAdminRosterController(svc)

	err := c.SaveManualRates(context.Background(), map[string]float64{"USD_TWD": 0})
	if !IsValidation(err) {
		t.Fatalf("SaveManualRates() = %v, want a validation error", err)
	}
	if n := svc.calls["SaveManualRates"]; n != 0 {
		t.Errorf("SaveManualRates reached the server %d times, want 0", n)
	}
}
