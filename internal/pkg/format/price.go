// internal/pkg/format/price.go
package format

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when the caller does not specify one.
const DefaultCurrency = "PLN"

// PriceDecimalPlaces is the number of decimal places shown for prices.
const PriceDecimalPlaces = 2

// Price formats a price for display as "<amount> <currency>".
// A nil price (product without a price) renders as "- <currency>".
// Amounts are rounded, not truncated, to two decimal places.
func Price(price *float64, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}

	if price == nil {
		return fmt.Sprintf("- %s", currency)
	}

	amount := decimal.NewFromFloat(*price).StringFixed(PriceDecimalPlaces)
	return fmt.Sprintf("%s %s", amount, currency)
}
