// Package currency formats monetary amounts for display with locale-aware
// digit grouping. INR uses the Indian numbering system (1,23,456.00).
package currency

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	vo "github.com/famvest-inc/famvest/internal/domain/payment/valueobjects"
)

var symbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

var locales = map[string]language.Tag{
	"INR": language.MustParse("en-IN"),
	"USD": language.AmericanEnglish,
	"EUR": language.German,
	"GBP": language.BritishEnglish,
}

// Format renders the amount with the currency's symbol, locale-aware
// grouping, and fixed 2-decimal precision. Unknown currencies fall back
// to the ISO code.
func Format(m vo.Money) string {
	code := m.Currency()

	tag, ok := locales[code]
	if !ok {
		tag = language.English
	}
	printer := message.NewPrinter(tag)
	formatted := printer.Sprint(number.Decimal(m.AmountInRupees(),
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))

	if symbol, ok := symbols[code]; ok {
		return symbol + formatted
	}
	return code + " " + formatted
}

// ParseAmount converts a user-entered amount string into Money in the
// given currency, failing on non-numeric input. Grouping separators and a
// leading symbol are tolerated.
func ParseAmount(input, code string) (vo.Money, error) {
	cleaned := strings.TrimSpace(input)
	if symbol, ok := symbols[code]; ok {
		cleaned = strings.TrimPrefix(cleaned, symbol)
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return vo.Money{}, fmt.Errorf("invalid amount %q: %w", input, err)
	}

	paise := int64(value*100 + 0.5)
	if value < 0 {
		paise = int64(value*100 - 0.5)
	}
	return vo.NewMoney(paise, code), nil
}
