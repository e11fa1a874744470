// Package format renders numbers, prices and phone numbers for display.
package format

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale is the display locale for numbers and prices.
var Locale = language.Korean

const (
	currencySuffix  = "원"
	phoneMaxDigits  = 11
	phoneHeadDigits = 3
	phoneMidDigits  = 4
)

// Number groups thousands and keeps up to three fraction digits,
// e.g. 1234.56 becomes "1,234.56".
func Number[T ~int | ~int32 | ~int64 | ~float32 | ~float64](n T) string {
	return message.NewPrinter(Locale).Sprintf("%v", number.Decimal(n))
}

// Price formats a won amount, e.g. 10000 becomes "10,000원".
func Price[T ~int | ~int32 | ~int64 | ~float32 | ~float64](n T) string {
	return Number(n) + currencySuffix
}

// Phone keeps the first 11 digits of s and hyphenates them progressively as
// 010-1234-5678. Partial input is formatted as far as it goes.
func Phone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if b.Len() == phoneMaxDigits {
			break
		}
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case len(digits) <= phoneHeadDigits:
		return digits
	case len(digits) <= phoneHeadDigits+phoneMidDigits:
		return digits[:phoneHeadDigits] + "-" + digits[phoneHeadDigits:]
	default:
		mid := phoneHeadDigits + phoneMidDigits
		return digits[:phoneHeadDigits] + "-" + digits[phoneHeadDigits:mid] + "-" + digits[mid:]
	}
}
