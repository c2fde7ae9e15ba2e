// Package money implements a Money type used to represent
// a monetary amount defined by the following properties:
//
// - amount, an arbitrary precision decimal, eg. 12.5.
//
// - currency code, the shorthand for
// the currency, eg. TRY for Turkish Lira.
//
// - symbol, the display glyph derived from the currency code,
// eg. ₺ for TRY. Codes without a known glyph display as themselves.
//
// Money values are immutable: arithmetic and adjustments return new
// values. The canonical serialized form is a Record:
//
//	{"amount": "12.5", "currency": "TRY"}
package money
