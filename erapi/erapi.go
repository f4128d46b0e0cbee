// Package erapi fetches live currency exchange rates from open.er-api.com.
//
// Rates are quoted against a base currency and cached on disk for a day,
// which is plenty for a converter widget and stays well within the service's
// free usage terms. The fetch is best effort and is never consumed by the
// ledger itself.
package erapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/etnz/fintrack"
	"github.com/shopspring/decimal"
)

const apiURL = "https://open.er-api.com/v6/latest"

// DefaultBase is the base currency used when none is given.
const DefaultBase = "USD"

// FetchLatest returns the latest exchange rates quoted against the given
// base currency.
func FetchLatest(base string) (fintrack.Rates, error) {
	return fetchLatest(newDailyCachingClient(), apiURL, base)
}

func fetchLatest(client *http.Client, apiURL, base string) (fintrack.Rates, error) {
	if base == "" {
		base = DefaultBase
	}
	base = strings.ToUpper(base)
	addr := fmt.Sprintf("%s/%s", apiURL, base)

	// https://open.er-api.com/v6/latest/USD
	// {
	//   "result": "success",
	//   "base_code": "USD",
	//   "rates": { "USD": 1, "EUR": 0.93, ... }
	// }
	var content struct {
		Result    string                     `json:"result"`
		ErrorType string                     `json:"error-type"`
		Rates     map[string]decimal.Decimal `json:"rates"`
	}
	if err := jwget(client, addr, &content); err != nil {
		return nil, fmt.Errorf("cannot fetch exchange rates for %s: %w", base, err)
	}
	if content.Result != "success" {
		return nil, fmt.Errorf("exchange rate service answered %q for base %s", content.ErrorType, base)
	}

	rates := make(fintrack.Rates, len(content.Rates))
	for code, rate := range content.Rates {
		rates[strings.ToUpper(code)] = rate
	}
	return rates, nil
}
