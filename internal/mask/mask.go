// Package mask formats digit strings into fixed patterns such as documents,
// phone numbers and currency amounts.
package mask

import (
	"sort"
	"strings"
	"unicode"
)

// Patterns. Each 9 stands for one digit, everything else is copied as is.
const (
	CPF        = "999.999.999-99"
	CNPJ       = "99.999.999/9999-99"
	Phone      = "(99) 99999-9999"
	CEP        = "99999-999"
	Date       = "99/99/9999"
	CreditCard = "9999 9999 9999 9999"
)

const digitSlot = '9'

var patterns = map[string]string{
	"cpf":         CPF,
	"cnpj":        CNPJ,
	"phone":       Phone,
	"cep":         CEP,
	"date":        Date,
	"credit-card": CreditCard,
}

// Lookup returns the pattern registered under name
func Lookup(name string) (string, bool) {
	p, ok := patterns[strings.ToLower(name)]
	return p, ok
}

// Names lists the registered pattern names
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Digits strips everything but ASCII digits from s
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Apply lays the digits of input into pattern. Formatting stops as soon as the
// digits run out, so partial input yields a partial mask; surplus digits are
// dropped.
func Apply(input, pattern string) string {
	digits := Digits(input)
	if digits == "" {
		return ""
	}

	var b strings.Builder
	next := 0
	for _, r := range pattern {
		if next >= len(digits) {
			break
		}
		if r == digitSlot {
			b.WriteByte(digits[next])
			next++
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Complete reports whether input fills every digit slot of pattern
func Complete(input, pattern string) bool {
	return len(Digits(input)) == strings.Count(pattern, string(digitSlot))
}
