package web

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const DefaultCurrency = "EGP"

var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders a decimal string with en-US digit grouping followed by
// the currency code, e.g. "25,000,000 USD". Unparseable prices are shown
// as stored.
func FormatPrice(price, currency string) string {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		currency = DefaultCurrency
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil {
		return strings.TrimSpace(price + " " + currency)
	}
	return pricePrinter.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(2))) + " " + currency
}
