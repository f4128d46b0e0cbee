package fintrack

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Rates maps an upper-case currency code to its exchange rate against a
// common base currency.
type Rates map[string]decimal.Decimal

// Convert converts an amount from one currency to another using a table of
// rates expressed against a common base: the amount is first brought back to
// the base currency, then into the target one.
//
// It is a pure function; a missing table or rate fails with a
// *ValidationError.
func Convert(amount decimal.Decimal, from, to string, rates Rates) (decimal.Decimal, error) {
	if len(rates) == 0 {
		return decimal.Zero, &ValidationError{Reason: "exchange rates not loaded"}
	}
	fromRate, ok := rates[strings.ToUpper(from)]
	if !ok || !fromRate.IsPositive() {
		return decimal.Zero, &ValidationError{Reason: fmt.Sprintf("no exchange rate available for %q", from)}
	}
	toRate, ok := rates[strings.ToUpper(to)]
	if !ok || !toRate.IsPositive() {
		return decimal.Zero, &ValidationError{Reason: fmt.Sprintf("no exchange rate available for %q", to)}
	}
	return amount.Div(fromRate).Mul(toRate), nil
}
