package money_test

import (
	"testing"

	"github.com/purposeinplay/go-money/money"
	"github.com/shopspring/decimal"
)

// FuzzFromAmount checks that every parsed amount survives
// the canonical record round trip.
func FuzzFromAmount(f *testing.F) {
	f.Add("12", "TRY")
	f.Add("-3", "USD")
	f.Add("0.15", "EUR")
	f.Add("-0", "GBP")
	f.Add("asasdasd", "TRY")
	f.Add("99999999999999999999.999", "NOK")

	f.Add("1e999999999", "TRY")
	f.Add("1.5e-20", "USD")

	f.Fuzz(func(t *testing.T, amount, currency string) {
		m, err := money.FromAmount(amount, currency)
		if err != nil {
			return
		}

		if !m.IsValid() {
			t.Fatalf("FromAmount(%q, %q) returned an invalid money", amount, currency)
		}

		d, err := decimal.NewFromString(m.Amount())
		if err != nil {
			t.Fatalf("Amount() %q does not parse: %v", m.Amount(), err)
		}

		if !d.Equal(decimal.RequireFromString(amount)) {
			t.Errorf("Amount() = %q, want the value of %q", m.Amount(), amount)
		}

		back, err := money.FromRecord(m.ToJSON())
		if err != nil {
			t.Fatalf("FromRecord(%+v): %v", m.ToJSON(), err)
		}

		if !back.Equal(m) {
			t.Errorf("round trip of %q gave %q", m, back)
		}

		if m.IsPositive() == m.IsNegative() {
			t.Errorf("%q is both or neither positive and negative", amount)
		}
	})
}
