package money

import "serviciosmarket/core/internal/models"

// QuoteTotalUSD normalizes a quote's authoritative total to USD. An empty
// currency is read as USD.
func QuoteTotalUSD(q models.Quote) float64 {
	currency := q.Currency
	if currency == "" {
		currency = "USD"
	}
	return ToUSD(q.TotalPrice, currency)
}

// QuoteRange returns the (min, max) of the USD-normalized totals across a set
// of quotes, the "range of proposals". An empty set yields (0, 0). Ties are
// not specially broken.
func QuoteRange(quotes []models.Quote) (min, max float64) {
	if len(quotes) == 0 {
		return 0, 0
	}
	min = QuoteTotalUSD(quotes[0])
	max = min
	for _, q := range quotes[1:] {
		total := QuoteTotalUSD(q)
		if total < min {
			min = total
		}
		if total > max {
			max = total
		}
	}
	return min, max
}

// PackPrice computes a pack's USD base and discounted total from its supplies.
// Each supply contributes ToUSD(price, currency) × quantity, with quantity
// defaulting to 1 when absent from quantities. The base is rounded to 2
// decimals, the discount percentage is clamped to [0, 100], and the total is
// Round2(base × (1 − discount/100)). A zero base yields a zero total.
func PackPrice(supplies []models.Supply, quantities map[string]int, discountPct float64) (base, total float64) {
	for _, supply := range supplies {
		quantity := 1
		if q, ok := quantities[supply.ID]; ok && q > 0 {
			quantity = q
		}
		base += ToUSD(supply.Price, supply.Currency) * float64(quantity)
	}
	base = Round2(base)

	if discountPct < 0 {
		discountPct = 0
	} else if discountPct > 100 {
		discountPct = 100
	}
	if base > 0 {
		total = Round2(base * (1 - discountPct/100))
	}
	return base, total
}

// LineAmount is a quote-line subtotal in the line's effective currency plus
// its USD display equivalent.
type LineAmount struct {
	Currency    string  `json:"currency"`
	Subtotal    float64 `json:"subtotal"`
	SubtotalUSD float64 `json:"subtotalUsd"`
}

// LineSubtotal computes a breakdown line's subtotal, quantity × price in the
// line's own currency or the parent quote's when the line has none.
func LineSubtotal(line models.QuoteLine, quoteCurrency string) LineAmount {
	currency := line.Currency
	if currency == "" {
		currency = quoteCurrency
	}
	if currency == "" {
		currency = "USD"
	}
	subtotal := float64(line.Quantity) * line.Price
	return LineAmount{
		Currency:    currency,
		Subtotal:    subtotal,
		SubtotalUSD: ToUSD(subtotal, currency),
	}
}
