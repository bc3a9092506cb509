package domain

import "github.com/shopspring/decimal"

// FormatCents renders integer cents as a signed currency string, e.g. -12000 -> "-$120.00".
// Arithmetic stays in integer cents; this is display only.
func FormatCents(cents int64) string {
	d := decimal.New(cents, -2)
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}
