package finance

import (
	"math"
	"strconv"
	"strings"

	"github.com/koboapp/kobo/internal/domain"
)

// Round2 rounds to 2 decimal places, half away from zero on the cent.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ParseAmount parses a stored decimal amount string into a float64 for
// calculation. Malformed or non-finite amounts contribute zero: a single bad
// record must never poison a whole aggregate.
func ParseAmount(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Format renders an amount as a currency string with grouped thousands and
// exactly two fraction digits, matching en-NG and en-US number formatting.
func Format(amount float64, currency domain.Currency) string {
	symbol := "$"
	if currency == domain.CurrencyNGN {
		symbol = "₦" // ₦
	}

	negative := amount < 0 || (amount == 0 && math.Signbit(amount))
	cents := math.Round(math.Abs(amount) * 100)
	whole := int64(cents / 100)
	frac := int64(cents) % 100

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	b.WriteString(groupThousands(whole))
	b.WriteByte('.')
	if frac < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(frac, 10))

	return b.String()
}

func groupThousands(n int64) string {
	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
