package valueobjects

import "fmt"

// DefaultCurrency is assumed when a caller omits the currency code.
const DefaultCurrency = "INR"

type Money struct {
	amountInPaise int64
	currency      string
}

// NewMoney builds a Money from an amount in the currency's minor unit
// (paise for INR).
func NewMoney(amountInPaise int64, currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{
		amountInPaise: amountInPaise,
		currency:      currency,
	}
}

func (m Money) AmountInPaise() int64 {
	return m.amountInPaise
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) AmountInRupees() float64 {
	return float64(m.amountInPaise) / 100.0
}

func (m Money) Equals(other Money) bool {
	return m.amountInPaise == other.amountInPaise && m.currency == other.currency
}

func (m Money) IsPositive() bool {
	return m.amountInPaise > 0
}

func (m Money) IsNegative() bool {
	return m.amountInPaise < 0
}

// MultiplyQuantity returns the total for quantity units at this unit amount.
func (m Money) MultiplyQuantity(quantity int64) Money {
	return Money{
		amountInPaise: m.amountInPaise * quantity,
		currency:      m.currency,
	}
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.AmountInRupees(), m.currency)
}
