// Package format renders scorecard figures for Brazilian Portuguese readers.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

func decimal(v float64, digits int) string {
	return printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits),
	))
}

// BRL formats a currency amount with two decimals, e.g. "R$ 12.345,60".
func BRL(v float64) string {
	if v < 0 {
		return "-R$ " + decimal(math.Abs(v), 2)
	}
	return "R$ " + decimal(v, 2)
}

// Percent formats a value already expressed in percent with one decimal, e.g. "12,5%".
func Percent(v float64) string {
	return decimal(v, 1) + "%"
}

// Number formats v as a whole number with thousands separators.
func Number(v float64) string {
	return decimal(v, 0)
}

// Delta formats a percent change with an explicit sign, e.g. "+4,2%".
func Delta(v float64) string {
	if v > 0 {
		return "+" + Percent(v)
	}
	return Percent(v)
}
