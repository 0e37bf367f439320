package money

import (
	"errors"
	"math"
	"sort"
)

// rates holds units-of-currency-per-1-USD for every supported code.
// Fixed mock averages; there is no live market feed.
var rates = map[string]float64{
	"USD": 1,
	"UYU": 40,  // 40 UYU = 1 USD
	"EUR": 0.92, // 0.92 EUR = 1 USD
	"ARS": 900, // 900 ARS = 1 USD
	"BRL": 5,   // 5 BRL = 1 USD
}

// ErrUnknownCurrency is returned by Rate for codes outside the table.
var ErrUnknownCurrency = errors.New("unknown currency code")

// Rate returns the units-per-USD rate for a currency code, or
// ErrUnknownCurrency. Callers that can tolerate unknown codes should use
// ToUSD/FromUSD, which assume parity instead of failing.
func Rate(code string) (float64, error) {
	rate, ok := rates[code]
	if !ok {
		return 0, ErrUnknownCurrency
	}
	return rate, nil
}

// Currencies returns the supported currency codes in sorted order.
func Currencies() []string {
	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Rates returns a copy of the full rate table.
func Rates() map[string]float64 {
	out := make(map[string]float64, len(rates))
	for code, rate := range rates {
		out[code] = rate
	}
	return out
}

// ToUSD converts an amount in the given currency to USD. Unknown codes are
// treated as rate 1. No rounding is applied; callers round for display only.
func ToUSD(amount float64, code string) float64 {
	if code == "USD" {
		return amount
	}
	rate, ok := rates[code]
	if !ok {
		rate = 1
	}
	return amount / rate
}

// FromUSD converts a USD amount to the given currency. Unknown codes are
// treated as rate 1.
func FromUSD(amountUSD float64, code string) float64 {
	if code == "USD" {
		return amountUSD
	}
	rate, ok := rates[code]
	if !ok {
		rate = 1
	}
	return amountUSD * rate
}

// Round2 rounds to 2 decimal places. Used at aggregation boundaries (pack
// base/total); conversions themselves stay unrounded.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
