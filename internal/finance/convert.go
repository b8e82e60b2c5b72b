package finance

import "github.com/koboapp/kobo/internal/domain"

// Converter converts record amounts into a single display currency using
// one USD→NGN rate. The display currency is threaded explicitly so view
// computations stay pure and testable.
type Converter struct {
	display  domain.Currency
	usdToNGN float64
}

// NewConverter creates a converter targeting the given display currency.
// usdToNGN is the cached NGN-per-USD rate; pass 0 when no rate is available
// and conversion degrades to a no-op.
func NewConverter(display domain.Currency, usdToNGN float64) Converter {
	return Converter{display: display, usdToNGN: usdToNGN}
}

// Display returns the converter's target currency.
func (c Converter) Display() domain.Currency {
	return c.display
}

// Convert converts amount from the source currency into the display
// currency. When the source already matches, or no rate is available, the
// amount passes through unchanged rather than silently zeroing.
func (c Converter) Convert(amount float64, from domain.Currency) float64 {
	if from == c.display || c.usdToNGN <= 0 {
		return amount
	}

	switch {
	case from == domain.CurrencyUSD && c.display == domain.CurrencyNGN:
		return amount * c.usdToNGN
	case from == domain.CurrencyNGN && c.display == domain.CurrencyUSD:
		return amount / c.usdToNGN
	default:
		// Only the NGN/USD pair is supported. Extending beyond two
		// currencies means replacing this with a rate-graph lookup.
		return amount
	}
}

// Format renders amount in the display currency, or in the explicitly
// given currency when one is provided.
func (c Converter) Format(amount float64, currency ...domain.Currency) string {
	target := c.display
	if len(currency) > 0 {
		target = currency[0]
	}
	return Format(amount, target)
}

// PairRate returns the exchange rate for a from→to currency pair given the
// NGN-per-USD rate. Same-currency pairs are always 1.
func PairRate(from, to domain.Currency, usdToNGN float64) float64 {
	if from == to {
		return 1
	}
	if usdToNGN <= 0 {
		return 1
	}
	if from == domain.CurrencyUSD && to == domain.CurrencyNGN {
		return usdToNGN
	}
	return 1 / usdToNGN
}
