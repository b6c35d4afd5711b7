package mbank

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a single currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal(v any) decimal.Decimal {
	switch x := v.(type) {
	case decimal.Decimal:
		return x
	case float32:
		return decimal.NewFromFloat32(x)
	case float64:
		return decimal.NewFromFloat(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt32(x)
	case int64:
		return decimal.NewFromInt(x)
	}
	panic(fmt.Sprintf("unsupported decimal source %T", v))
}

// currency returns the money's currency metadata.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the money formatted with its currency symbol and fraction.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string      { return m.cur }
func (m Money) Amount() decimal.Decimal { return m.value }
func (m Money) IsZero() bool          { return m.value.IsZero() }
func (m Money) IsPositive() bool      { return m.value.IsPositive() }
func (m Money) IsNegative() bool      { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) Add(n Money) Money     { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Neg() Money            { return Money{value: m.value.Neg(), cur: m.cur} }

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}
