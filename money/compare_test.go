package money_test

import (
	"testing"

	"github.com/matryer/is"
	"github.com/pkg/errors"
	"github.com/purposeinplay/go-money/money"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	var (
		m1 = money.FromInt(15, "TRY")
		m2 = money.FromInt(13, "TRY")
		m3 = money.FromInt(10, "USD")
		m4 = money.Record{Amount: "18", Currency: "TRY"}
		m5 = money.FromInt(13, "TRY")
		m6 = money.Record{Amount: "-19", Currency: "TRY"}
	)

	t.Run("Greater", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		c, err := m1.Compare(m2)
		i.NoErr(err)
		i.Equal(1, c)

		c, err = m2.Compare(m6)
		i.NoErr(err)
		i.Equal(1, c)
	})

	t.Run("Lesser", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		c, err := m1.Compare(m4)
		i.NoErr(err)
		i.Equal(-1, c)
	})

	t.Run("Equal", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		c, err := m2.Compare(m5)
		i.NoErr(err)
		i.Equal(0, c)

		c, err = m1.Compare(m1)
		i.NoErr(err)
		i.Equal(0, c)
	})

	t.Run("DifferentScale", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		c, err := money.Must(money.FromAmount("13.00", "TRY")).Compare(m2)
		i.NoErr(err)
		i.Equal(0, c)
	})

	t.Run("NegativeZero", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		negZero := money.Must(money.FromAmount("-0", "TRY"))

		c, err := negZero.Compare(money.FromInt(0, "TRY"))
		i.NoErr(err)
		i.Equal(0, c)
	})

	t.Run("CurrencyMismatch", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		_, err := m1.Compare(m3)

		i.True(errors.Is(err, money.ErrCurrencyMismatch))
		i.Equal("currency mismatch: cannot compare TRY and USD", err.Error())
	})

	t.Run("InvalidOperand", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		_, err := m2.Compare(money.Record{Currency: "TRY"})

		i.True(errors.Is(err, money.ErrInvalidOperand))
	})

	t.Run("Clamp", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		maxAllowed := money.Must(money.FromAmount("100", "TRY"))

		entered := money.Must(money.FromAmount("150.75", "TRY"))

		c, err := entered.Compare(maxAllowed)
		i.NoErr(err)

		if c > 0 {
			entered = maxAllowed
		}

		i.Equal("100", entered.Amount())
	})
}
