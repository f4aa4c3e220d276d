package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

const rupiahMarker = "Rp. "

// FormatRupiah formats an amount as "Rp. 1.234.567": the fractional part is
// truncated (not rounded) and thousands are grouped with '.'.
// Negative amounts carry the sign ahead of the marker: "-Rp. 50.000".
func FormatRupiah(amount decimal.Decimal) string {
	truncated := amount.Truncate(0)
	digits := truncated.Abs().String()

	var b strings.Builder
	if truncated.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(rupiahMarker)
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}
