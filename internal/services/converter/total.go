package converter

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// maxTotalLength bounds the digits accepted for a total so parsing and
// formatting stay cheap and the value fits a float64.
const maxTotalLength = 32

// ParseTotal parses an order total. Empty, malformed, negative, exponent
// notation and overlong input yields zero.
func ParseTotal(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxTotalLength || strings.ContainsAny(raw, "eE") {
		return decimal.Zero
	}

	total, err := decimal.NewFromString(raw)
	if err != nil || total.IsNegative() {
		return decimal.Zero
	}

	if value := total.InexactFloat64(); math.IsInf(value, 0) || math.IsNaN(value) {
		return decimal.Zero
	}

	return total
}

func FormatTotal(total decimal.Decimal) string {
	return total.String() + "€"
}
