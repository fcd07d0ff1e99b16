package mask

import "strings"

// Currency is an ISO 4217 code
type Currency string

const (
	BRL Currency = "BRL"
	USD Currency = "USD"
)

type currencyFormat struct {
	symbol    string
	thousands string
	decimal   string
	spaced    bool
}

var currencyFormats = map[Currency]currencyFormat{
	BRL: {symbol: "R$", thousands: ".", decimal: ",", spaced: true},
	USD: {symbol: "$", thousands: ",", decimal: "."},
}

// Symbol returns the display symbol for currency, or the code itself when it
// is not known.
func Symbol(currency Currency) string {
	if f, ok := currencyFormats[currency]; ok {
		return f.symbol
	}
	return string(currency)
}

// FormatCurrency reads the digits of input as an amount in cents and formats
// it with two decimals. Unknown currencies use the BRL layout with their code
// as the symbol.
func FormatCurrency(input string, currency Currency) string {
	f, ok := currencyFormats[currency]
	if !ok {
		f = currencyFormats[BRL]
		f.symbol = string(currency)
	}

	digits := strings.TrimLeft(Digits(input), "0")
	if len(digits) < 3 {
		digits = strings.Repeat("0", 3-len(digits)) + digits
	}
	units, cents := digits[:len(digits)-2], digits[len(digits)-2:]

	var b strings.Builder
	b.WriteString(f.symbol)
	if f.spaced {
		b.WriteByte(' ')
	}
	for i := range units {
		if i > 0 && (len(units)-i)%3 == 0 {
			b.WriteString(f.thousands)
		}
		b.WriteByte(units[i])
	}
	b.WriteString(f.decimal)
	b.WriteString(cents)
	return b.String()
}
