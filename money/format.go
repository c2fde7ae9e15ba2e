package money

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap/zapcore"
)

var (
	// ensure Money implements valuer and scanner interface.
	_ sql.Scanner   = (*Money)(nil)
	_ driver.Valuer = Money{}

	// ensure Money implements json marshaller and unmarshaler interface.
	_ json.Marshaler   = Money{}
	_ json.Unmarshaler = (*Money)(nil)

	// ensure Money implements yaml marshaller and unmarshaler interface.
	_ yaml.InterfaceMarshaler   = Money{}
	_ yaml.InterfaceUnmarshaler = (*Money)(nil)
	_ yaml.InterfaceUnmarshaler = (*Record)(nil)

	_ zapcore.ObjectMarshaler = Money{}
	_ fmt.Stringer            = Money{}
)

// ToDisplay returns the amount with a comma decimal separator
// followed by the currency symbol, eg. "12,5 ₺".
func (m Money) ToDisplay() string {
	return strings.Replace(m.Amount(), ".", ",", 1) + " " + m.Symbol()
}

// String implements fmt.Stringer, see ToDisplay.
func (m Money) String() string {
	return m.ToDisplay()
}

// ToJSON returns the canonical record of m.
func (m Money) ToJSON() Record {
	return Record{
		Amount:   m.Amount(),
		Currency: m.currency,
	}
}

// MarshalJSON implements the json.Marshaler interface.
// The zero value is encoded as null.
func (m Money) MarshalJSON() ([]byte, error) {
	if !m.IsValid() {
		return []byte("null"), nil
	}

	return json.Marshal(m.ToJSON())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (m *Money) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var r Record

	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	v, err := FromRecord(r)
	if err != nil {
		return err
	}

	*m = v

	return nil
}

// MarshalYAML implements the yaml.InterfaceMarshaler interface.
func (m Money) MarshalYAML() (any, error) {
	if !m.IsValid() {
		return nil, nil
	}

	return m.ToJSON(), nil
}

// UnmarshalYAML implements the yaml.InterfaceUnmarshaler interface.
func (m *Money) UnmarshalYAML(unmarshal func(any) error) error {
	var r Record

	if err := r.UnmarshalYAML(unmarshal); err != nil {
		return err
	}

	v, err := FromRecord(r)
	if err != nil {
		return err
	}

	*m = v

	return nil
}

// Value stores the canonical JSON record, eg. in a jsonb column.
func (m Money) Value() (driver.Value, error) {
	if !m.IsValid() {
		return nil, nil
	}

	b, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}

	return string(b), nil
}

// Scan reads the canonical JSON record.
// A nil value resets m to the zero value.
func (m *Money) Scan(value any) error {
	switch t := value.(type) {
	case []byte:
		return m.UnmarshalJSON(t)

	case string:
		return m.UnmarshalJSON([]byte(t))

	case nil:
		*m = Money{}

	default:
		return fmt.Errorf(
			"%w: could not scan type %T into Money",
			ErrInvalidAmount,
			t,
		)
	}

	return nil
}

// MarshalLogObject implements the zapcore.ObjectMarshaler interface,
// so a Money can be logged with zap.Object.
func (m Money) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("amount", m.Amount())
	enc.AddString("currency", m.currency)

	return nil
}
