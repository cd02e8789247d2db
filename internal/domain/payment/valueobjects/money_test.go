package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMoney(t *testing.T) {
	m := NewMoney(15000, "")
	assert.Equal(t, int64(15000), m.AmountInPaise())
	assert.Equal(t, DefaultCurrency, m.Currency())
	assert.InDelta(t, 150.0, m.AmountInRupees(), 0.0001)
}

func TestMoney_MultiplyQuantity(t *testing.T) {
	unit := NewMoney(15000, "INR")
	total := unit.MultiplyQuantity(3)

	assert.Equal(t, int64(45000), total.AmountInPaise())
	assert.InDelta(t, 450.0, total.AmountInRupees(), 0.0001)
	assert.Equal(t, "INR", total.Currency())
	// Original is unchanged.
	assert.Equal(t, int64(15000), unit.AmountInPaise())
}

func TestMoney_Predicates(t *testing.T) {
	assert.True(t, NewMoney(1, "INR").IsPositive())
	assert.False(t, NewMoney(0, "INR").IsPositive())
	assert.True(t, NewMoney(-1, "INR").IsNegative())
	assert.False(t, NewMoney(0, "INR").IsNegative())
}

func TestMoney_Equals(t *testing.T) {
	assert.True(t, NewMoney(100, "INR").Equals(NewMoney(100, "INR")))
	assert.False(t, NewMoney(100, "INR").Equals(NewMoney(100, "USD")))
	assert.False(t, NewMoney(100, "INR").Equals(NewMoney(101, "INR")))
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "450.00 INR", NewMoney(45000, "INR").String())
	assert.Equal(t, "0.50 INR", NewMoney(50, "INR").String())
}
