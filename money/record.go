package money

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is the canonical serialized form of a Money.
//
// Amount is always encoded as a decimal string. Decoding also accepts
// a JSON or YAML number, which is converted to its decimal string.
type Record struct {
	Amount   string `json:"amount" yaml:"amount"`
	Currency string `json:"currency" yaml:"currency"`
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw struct {
		Amount   json.RawMessage `json:"amount"`
		Currency string          `json:"currency"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}

	amount, err := rawAmount(raw.Amount)
	if err != nil {
		return err
	}

	r.Amount = amount
	r.Currency = raw.Currency

	return nil
}

// UnmarshalYAML implements the yaml.InterfaceUnmarshaler interface.
func (r *Record) UnmarshalYAML(unmarshal func(any) error) error {
	var raw struct {
		Amount   any    `yaml:"amount"`
		Currency string `yaml:"currency"`
	}

	if err := unmarshal(&raw); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}

	r.Currency = raw.Currency
	r.Amount = ""

	if raw.Amount == nil {
		return nil
	}

	amount, ok := amountString(raw.Amount)
	if !ok {
		return fmt.Errorf(
			"%w: unsupported amount type %T",
			ErrInvalidAmount,
			raw.Amount,
		)
	}

	r.Amount = amount

	return nil
}

// operand implements Operand.
func (r Record) operand() (Money, bool) {
	m, err := FromRecord(r)
	if err != nil {
		return Money{}, false
	}

	return m, true
}

func rawAmount(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)

	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	if raw[0] != '"' {
		return string(raw), nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("unmarshal amount: %w", err)
	}

	return s, nil
}

// recordFromMap reads a record out of a decoded JSON object.
// Both keys must be present and non-empty.
func recordFromMap(m map[string]any) (Record, bool) {
	v, ok := m["amount"]
	if !ok || v == nil {
		return Record{}, false
	}

	amount, ok := amountString(v)
	if !ok || amount == "" {
		return Record{}, false
	}

	currencyCode, ok := m["currency"].(string)
	if !ok || currencyCode == "" {
		return Record{}, false
	}

	return Record{
		Amount:   amount,
		Currency: currencyCode,
	}, true
}
